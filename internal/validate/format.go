package validate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	srtTimingRegex = regexp.MustCompile(
		`^\d{2}:\d{2}:\d{2},\d{3} --> \d{2}:\d{2}:\d{2},\d{3}$`,
	)
	vttTimingRegex = regexp.MustCompile(
		`^\d{2}:\d{2}:\d{2}\.\d{3} --> \d{2}:\d{2}:\d{2}\.\d{3}`,
	)
	blockSplitRegex = regexp.MustCompile(`\n\s*\n`)
)

// SRT reports structural problems in SRT content: blocks must carry
// sequential 1-based numbering, a valid timing line, and non-empty text.
func SRT(content string) Result {
	var issues []Issue

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		issues = append(issues, Issue{
			Severity: SeverityCritical,
			Category: "format",
			Message:  "SRT content is empty",
		})
		return newResult(issues, 1.0, map[string]any{"blocks": 0})
	}

	blocks := blockSplitRegex.Split(trimmed, -1)
	for i, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		location := fmt.Sprintf("block %d", i+1)

		if len(lines) < 3 {
			issues = append(issues, Issue{
				Severity:   SeverityError,
				Category:   "format",
				Message:    "SRT block must have index, timing, and text lines",
				Location:   location,
				Suggestion: "Each block needs at least three lines",
			})
			continue
		}

		index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil || index != i+1 {
			issues = append(issues, Issue{
				Severity:   SeverityError,
				Category:   "format",
				Message:    fmt.Sprintf("expected block index %d, got %q", i+1, lines[0]),
				Location:   location,
				Suggestion: "Renumber blocks sequentially starting at 1",
			})
		}

		if !srtTimingRegex.MatchString(strings.TrimSpace(lines[1])) {
			issues = append(issues, Issue{
				Severity:   SeverityError,
				Category:   "format",
				Message:    fmt.Sprintf("invalid SRT timing line %q", lines[1]),
				Location:   location,
				Suggestion: "Use HH:MM:SS,mmm --> HH:MM:SS,mmm",
			})
		}

		if strings.TrimSpace(strings.Join(lines[2:], "\n")) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Category: "format",
				Message:  "SRT block has no text",
				Location: location,
			})
		}
	}

	return newResult(issues, 1.0, map[string]any{"blocks": len(blocks)})
}

// VTT reports structural problems in WebVTT content: the literal WEBVTT
// header must come first and every cue timing line must be well formed.
func VTT(content string) Result {
	var issues []Issue

	lines := strings.Split(content, "\n")
	header := ""
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			header = strings.TrimSpace(line)
			break
		}
	}

	if !strings.HasPrefix(header, "WEBVTT") {
		issues = append(issues, Issue{
			Severity:   SeverityCritical,
			Category:   "format",
			Message:    "Missing WEBVTT header",
			Suggestion: "The first non-blank line must be WEBVTT",
		})
	}

	cues := 0
	for i, line := range lines {
		if !strings.Contains(line, "-->") {
			continue
		}
		cues++
		if !vttTimingRegex.MatchString(strings.TrimSpace(line)) {
			issues = append(issues, Issue{
				Severity:   SeverityError,
				Category:   "format",
				Message:    fmt.Sprintf("invalid VTT timing line %q", line),
				Location:   fmt.Sprintf("line %d", i+1),
				Suggestion: "Use HH:MM:SS.mmm --> HH:MM:SS.mmm",
			})
		}
	}

	return newResult(issues, 1.0, map[string]any{"cues": cues})
}

// ASS reports structural problems in ASS content: the Script Info, V4+
// Styles, and Events sections must all be present, with at least one Style
// and one Dialogue line.
func ASS(content string) Result {
	var issues []Issue

	for _, section := range []string{"[Script Info]", "[V4+ Styles]", "[Events]"} {
		if !strings.Contains(content, section) {
			issues = append(issues, Issue{
				Severity:   SeverityCritical,
				Category:   "format",
				Message:    fmt.Sprintf("missing %s section", section),
				Suggestion: fmt.Sprintf("Add a %s section", section),
			})
		}
	}

	styles := 0
	dialogues := 0
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "Style:") {
			styles++
		}
		if strings.HasPrefix(trimmed, "Dialogue:") {
			dialogues++
		}
	}

	if styles == 0 {
		issues = append(issues, Issue{
			Severity:   SeverityError,
			Category:   "format",
			Message:    "no Style lines in [V4+ Styles] section",
			Suggestion: "Define at least one Style line",
		})
	}
	if dialogues == 0 {
		issues = append(issues, Issue{
			Severity:   SeverityError,
			Category:   "format",
			Message:    "no Dialogue lines in [Events] section",
			Suggestion: "Emit at least one Dialogue line",
		})
	}

	return newResult(issues, 1.0, map[string]any{
		"styles":    styles,
		"dialogues": dialogues,
	})
}

// JSON reports structural problems in the JSON subtitle document: the
// top-level segments, words, and metadata fields must exist, and every
// segment needs start, end, and text.
func JSON(content string) Result {
	var issues []Issue

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		issues = append(issues, Issue{
			Severity: SeverityCritical,
			Category: "format",
			Message:  fmt.Sprintf("content is not valid JSON: %v", err),
		})
		return newResult(issues, 1.0, nil)
	}

	for _, field := range []string{"segments", "words", "metadata"} {
		if _, ok := doc[field]; !ok {
			issues = append(issues, Issue{
				Severity:   SeverityCritical,
				Category:   "format",
				Message:    fmt.Sprintf("missing top-level %q field", field),
				Suggestion: fmt.Sprintf("Add a %q field", field),
			})
		}
	}

	segmentCount := 0
	if raw, ok := doc["segments"]; ok {
		var segments []map[string]json.RawMessage
		if err := json.Unmarshal(raw, &segments); err != nil {
			issues = append(issues, Issue{
				Severity: SeverityCritical,
				Category: "format",
				Message:  "segments field is not an array of objects",
			})
		} else {
			segmentCount = len(segments)
			for i, seg := range segments {
				for _, field := range []string{"start", "end", "text"} {
					if _, ok := seg[field]; !ok {
						issues = append(issues, Issue{
							Severity: SeverityError,
							Category: "format",
							Message:  fmt.Sprintf("segment missing %q field", field),
							Location: fmt.Sprintf("segments[%d]", i),
						})
					}
				}
			}
		}
	}

	return newResult(issues, 1.0, map[string]any{"segments": segmentCount})
}

// Content dispatches to the structural validator for the named format.
func Content(format, content string) Result {
	switch strings.ToLower(format) {
	case "srt":
		return SRT(content)
	case "vtt":
		return VTT(content)
	case "ass":
		return ASS(content)
	case "json":
		return JSON(content)
	default:
		return newResult([]Issue{{
			Severity: SeverityCritical,
			Category: "format",
			Message:  fmt.Sprintf("unknown subtitle format %q", format),
		}}, 1.0, nil)
	}
}
