package subtitle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vietthanhnv/lyrics-master-sub001/internal/align"
	"github.com/vietthanhnv/lyrics-master-sub001/internal/validate"
)

// Options selects the export variant and styling for one Generate call.
type Options struct {
	WordLevel        bool
	WordsPerSubtitle int // > 0 enables grouped-word mode
	Bilingual        bool
	TargetLanguage   string
	Style            *StyleOverrides
	OutputPath       string // defaults to source file name + format extension
}

// Generator dispatches to the per-format exporters, validates the produced
// content, and assembles the output record. It holds no state between
// calls.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate encodes the alignment data in the requested format and variant.
// The produced content is structurally validated before it is returned;
// content that fails its own format validator is never handed out.
func (g *Generator) Generate(
	data *align.AlignmentData,
	format Format,
	opts Options,
) (*File, error) {
	content, err := g.export(data, format, opts)
	if err != nil {
		return nil, err
	}

	result := validate.Content(string(format), content)
	if !result.IsValid {
		return nil, fmt.Errorf(
			"generated %s content failed validation: %s",
			format,
			firstFailure(result),
		)
	}

	return &File{
		Path:      g.outputPath(data, format, opts),
		Format:    format,
		Content:   content,
		WordCount: countWords(format, content),
		Duration:  data.AudioDuration,
	}, nil
}

// Save writes the file content to its path. This is the engine's single
// persistence boundary; write errors propagate unchanged and are never
// retried here.
func (g *Generator) Save(file *File) error {
	if err := os.MkdirAll(filepath.Dir(file.Path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return os.WriteFile(file.Path, []byte(file.Content), 0644)
}

func (g *Generator) export(
	data *align.AlignmentData,
	format Format,
	opts Options,
) (string, error) {
	switch format {
	case FormatSRT:
		exporter := &SRTExporter{}
		switch {
		case opts.Bilingual:
			return exporter.BilingualSentenceLevel(data)
		case opts.WordsPerSubtitle > 0:
			return exporter.GroupedWords(data, opts.WordsPerSubtitle)
		case opts.WordLevel:
			return exporter.WordLevel(data)
		default:
			return exporter.SentenceLevel(data)
		}

	case FormatVTT:
		exporter := &VTTExporter{}
		switch {
		case opts.Bilingual:
			return exporter.BilingualSentenceLevel(data)
		case opts.WordsPerSubtitle > 0:
			return exporter.GroupedWords(data, opts.WordsPerSubtitle)
		case opts.WordLevel:
			return exporter.WordLevel(data)
		default:
			return exporter.SentenceLevel(data)
		}

	case FormatASS:
		exporter := NewASSExporter(DefaultStyle().Merge(opts.Style))
		switch {
		case opts.Bilingual:
			return exporter.BilingualSentenceLevel(data)
		case opts.WordsPerSubtitle > 0:
			return exporter.GroupedWords(data, opts.WordsPerSubtitle)
		case opts.WordLevel:
			return exporter.WordLevel(data)
		default:
			return exporter.SentenceLevel(data)
		}

	case FormatJSON:
		exporter := &JSONExporter{}
		switch {
		case opts.Bilingual:
			return exporter.Bilingual(data, opts.TargetLanguage)
		case opts.WordsPerSubtitle > 0:
			return exporter.GroupedWords(data, opts.WordsPerSubtitle)
		case opts.WordLevel:
			return exporter.WordLevel(data)
		default:
			return exporter.SentenceLevel(data)
		}

	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func (g *Generator) outputPath(
	data *align.AlignmentData,
	format Format,
	opts Options,
) string {
	if opts.OutputPath != "" {
		return opts.OutputPath
	}
	base := data.SourceFile
	if base == "" {
		base = "subtitles"
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + format.Extension()
}

func firstFailure(result validate.Result) string {
	for _, issue := range result.Issues {
		if issue.Severity >= validate.SeverityError {
			return issue.Message
		}
	}
	return "unknown validation failure"
}

// countWords counts the words a viewer would actually see, skipping each
// format's structural framing.
func countWords(format Format, content string) int {
	switch format {
	case FormatSRT:
		return countSRTWords(content, false)
	case FormatVTT:
		return countSRTWords(content, true)
	case FormatASS:
		return countASSWords(content)
	case FormatJSON:
		return countJSONWords(content)
	default:
		return len(strings.Fields(content))
	}
}

// countSRTWords walks SRT-shaped block content; with vtt set it also skips
// the WEBVTT header and strips voice spans.
func countSRTWords(content string, vtt bool) int {
	count := 0
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.Contains(trimmed, "-->") {
			continue
		}
		if isNumeric(trimmed) {
			continue
		}
		if vtt && strings.HasPrefix(trimmed, "WEBVTT") {
			continue
		}
		if vtt {
			if idx := strings.Index(trimmed, ">"); strings.HasPrefix(trimmed, "<v ") && idx >= 0 {
				trimmed = trimmed[idx+1:]
			}
		}
		count += len(strings.Fields(trimmed))
	}
	return count
}

func countASSWords(content string) int {
	count := 0
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "Dialogue:") {
			continue
		}
		parts := strings.SplitN(trimmed, ",", 10)
		if len(parts) < 10 {
			continue
		}
		count += len(strings.Fields(stripASSTags(parts[9])))
	}
	return count
}

// stripASSTags removes {...} override blocks from dialogue text.
func stripASSTags(text string) string {
	var sb strings.Builder
	depth := 0
	for _, r := range text {
		switch r {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				sb.WriteRune(r)
			}
		}
	}
	return strings.ReplaceAll(sb.String(), `\N`, " ")
}

func countJSONWords(content string) int {
	var doc struct {
		Segments []struct {
			Text string `json:"text"`
		} `json:"segments"`
	}
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return 0
	}
	count := 0
	for _, seg := range doc.Segments {
		count += len(strings.Fields(seg.Text))
	}
	return count
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
