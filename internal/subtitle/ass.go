package subtitle

import (
	"fmt"
	"strings"

	"github.com/vietthanhnv/lyrics-master-sub001/internal/align"
)

// ASS style names emitted in the [V4+ Styles] section
const (
	assStyleDefault     = "Default"
	assStyleKaraoke     = "Karaoke"
	assStyleOriginal    = "Original"
	assStyleTranslation = "Translation"
)

// ASSExporter renders Advanced SubStation Alpha v4.00+ output with Script
// Info, Styles, and Events sections. Word-level output uses \k karaoke tags;
// sentence-level output uses a fade transition instead.
type ASSExporter struct {
	Title string
	Style Style
}

func NewASSExporter(style Style) *ASSExporter {
	return &ASSExporter{
		Title: "Generated Subtitles",
		Style: style,
	}
}

// SentenceLevel emits one fading dialogue per segment.
func (e *ASSExporter) SentenceLevel(data *align.AlignmentData) (string, error) {
	if len(data.Segments) == 0 {
		return "", fmt.Errorf("%w: no segments", ErrEmptyInput)
	}

	var events []string
	for _, seg := range data.Segments {
		text := fmt.Sprintf(
			"{\\fad(%d,%d)}%s",
			e.Style.FadeMillis,
			e.Style.FadeMillis,
			SanitizeASS(seg.Text),
		)
		event, err := e.dialogue(assStyleDefault, seg.StartTime, seg.EndTime, text)
		if err != nil {
			return "", err
		}
		events = append(events, event)
	}

	return e.script(events), nil
}

// WordLevel emits one karaoke dialogue per segment, highlighting each word
// for its aligned duration.
func (e *ASSExporter) WordLevel(data *align.AlignmentData) (string, error) {
	if len(data.WordSegments) == 0 {
		return "", fmt.Errorf("%w: no word segments", ErrEmptyInput)
	}

	groups := GroupWordsBySegment(data)
	if len(groups) == 0 {
		return "", fmt.Errorf("%w: no segment has word timings", ErrEmptyInput)
	}

	var events []string
	for _, g := range groups {
		event, err := e.dialogue(
			assStyleKaraoke,
			g.Segment.StartTime,
			g.Segment.EndTime,
			KaraokeLine(g.Words),
		)
		if err != nil {
			return "", err
		}
		events = append(events, event)
	}

	return e.script(events), nil
}

// GroupedWords emits one karaoke dialogue per window of windowSize
// consecutive words.
func (e *ASSExporter) GroupedWords(
	data *align.AlignmentData,
	windowSize int,
) (string, error) {
	if len(data.WordSegments) == 0 {
		return "", fmt.Errorf("%w: no word segments", ErrEmptyInput)
	}

	windows, err := WindowWords(sortedWords(data.WordSegments), windowSize)
	if err != nil {
		return "", err
	}

	var events []string
	for _, window := range windows {
		event, err := e.dialogue(
			assStyleKaraoke,
			window[0].StartTime,
			window[len(window)-1].EndTime,
			KaraokeLine(window),
		)
		if err != nil {
			return "", err
		}
		events = append(events, event)
	}

	return e.script(events), nil
}

// BilingualSentenceLevel emits two stacked dialogues per segment, the
// original in the Original style and the translation in the Translation
// style above it.
func (e *ASSExporter) BilingualSentenceLevel(
	data *align.AlignmentData,
) (string, error) {
	if len(data.Segments) == 0 {
		return "", fmt.Errorf("%w: no segments", ErrEmptyInput)
	}

	var events []string
	for _, seg := range data.Segments {
		original, translation := splitBilingual(seg.Text)

		event, err := e.dialogue(
			assStyleOriginal,
			seg.StartTime,
			seg.EndTime,
			SanitizeASS(original),
		)
		if err != nil {
			return "", err
		}
		events = append(events, event)

		if translation == "" {
			continue
		}
		event, err = e.dialogue(
			assStyleTranslation,
			seg.StartTime,
			seg.EndTime,
			SanitizeASS(translation),
		)
		if err != nil {
			return "", err
		}
		events = append(events, event)
	}

	return e.script(events), nil
}

func (e *ASSExporter) dialogue(
	style string,
	start, end float64,
	text string,
) (string, error) {
	startStamp, err := FormatASSTime(start)
	if err != nil {
		return "", err
	}
	endStamp, err := FormatASSTime(end)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"Dialogue: 0,%s,%s,%s,,0,0,0,,%s",
		startStamp,
		endStamp,
		style,
		text,
	), nil
}

func (e *ASSExporter) script(events []string) string {
	var sb strings.Builder

	sb.WriteString("[Script Info]\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", e.Title))
	sb.WriteString("ScriptType: v4.00+\n")
	sb.WriteString("Collisions: Normal\n")
	sb.WriteString("PlayDepth: 0\n\n")

	sb.WriteString("[V4+ Styles]\n")
	sb.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	for _, line := range e.styleLines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	sb.WriteString("[Events]\n")
	sb.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	for _, event := range events {
		sb.WriteString(event)
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (e *ASSExporter) styleLines() []string {
	s := e.Style

	// translation stacks above the original line
	translation := s
	translation.Italic = true
	translation.MarginV = s.MarginV + s.FontSize + 6

	return []string{
		styleLine(assStyleDefault, s),
		styleLine(assStyleKaraoke, s),
		styleLine(assStyleOriginal, s),
		styleLine(assStyleTranslation, translation),
	}
}

func styleLine(name string, s Style) string {
	return fmt.Sprintf(
		"Style: %s,%s,%d,%s,%s,%s,%s,%d,%d,0,0,100,100,0,0,1,%d,%d,%d,%d,%d,%d,1",
		name,
		s.FontName,
		s.FontSize,
		ASSColor(s.PrimaryColor),
		ASSColor(s.SecondaryColor),
		ASSColor(s.OutlineColor),
		ASSColor(s.BackColor),
		assBool(s.Bold),
		assBool(s.Italic),
		s.Outline,
		s.Shadow,
		s.Alignment,
		s.MarginL,
		s.MarginR,
		s.MarginV,
	)
}

// ASS encodes booleans as -1 (true) and 0 (false)
func assBool(b bool) int {
	if b {
		return -1
	}
	return 0
}
