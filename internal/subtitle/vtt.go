package subtitle

import (
	"fmt"
	"strings"

	"github.com/vietthanhnv/lyrics-master-sub001/internal/align"
)

// VTTExporter renders WebVTT output: the literal WEBVTT header, numeric cue
// identifiers, and HH:MM:SS.mmm --> HH:MM:SS.mmm timing lines. Speaker, when
// set, prefixes each cue with a <v Speaker> voice span.
type VTTExporter struct {
	Speaker string
}

// SentenceLevel emits one cue per segment.
func (e *VTTExporter) SentenceLevel(data *align.AlignmentData) (string, error) {
	if len(data.Segments) == 0 {
		return "", fmt.Errorf("%w: no segments", ErrEmptyInput)
	}

	cues := make([]string, 0, len(data.Segments))
	for i, seg := range data.Segments {
		cue, err := e.cue(i+1, seg.StartTime, seg.EndTime, SanitizeVTT(seg.Text))
		if err != nil {
			return "", err
		}
		cues = append(cues, cue)
	}

	return vttDocument(cues), nil
}

// WordLevel emits one cue per word segment.
func (e *VTTExporter) WordLevel(data *align.AlignmentData) (string, error) {
	if len(data.WordSegments) == 0 {
		return "", fmt.Errorf("%w: no word segments", ErrEmptyInput)
	}

	words := sortedWords(data.WordSegments)
	cues := make([]string, 0, len(words))
	for i, w := range words {
		cue, err := e.cue(i+1, w.StartTime, w.EndTime, SanitizeVTT(w.Word))
		if err != nil {
			return "", err
		}
		cues = append(cues, cue)
	}

	return vttDocument(cues), nil
}

// GroupedWords emits one cue per window of windowSize consecutive words.
func (e *VTTExporter) GroupedWords(
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

	cues := make([]string, 0, len(windows))
	for i, window := range windows {
		text := make([]string, 0, len(window))
		for _, w := range window {
			text = append(text, w.Word)
		}
		cue, err := e.cue(
			i+1,
			window[0].StartTime,
			window[len(window)-1].EndTime,
			SanitizeVTT(strings.Join(text, " ")),
		)
		if err != nil {
			return "", err
		}
		cues = append(cues, cue)
	}

	return vttDocument(cues), nil
}

// BilingualSentenceLevel emits one cue per segment with original and
// translation stacked as two caption lines.
func (e *VTTExporter) BilingualSentenceLevel(
	data *align.AlignmentData,
) (string, error) {
	if len(data.Segments) == 0 {
		return "", fmt.Errorf("%w: no segments", ErrEmptyInput)
	}

	cues := make([]string, 0, len(data.Segments))
	for i, seg := range data.Segments {
		original, translation := splitBilingual(seg.Text)
		text := SanitizeVTT(original)
		if translation != "" {
			text += "\n" + SanitizeVTT(translation)
		}
		cue, err := e.cue(i+1, seg.StartTime, seg.EndTime, text)
		if err != nil {
			return "", err
		}
		cues = append(cues, cue)
	}

	return vttDocument(cues), nil
}

func (e *VTTExporter) cue(id int, start, end float64, text string) (string, error) {
	startStamp, err := FormatVTTTime(start)
	if err != nil {
		return "", err
	}
	endStamp, err := FormatVTTTime(end)
	if err != nil {
		return "", err
	}
	if e.Speaker != "" {
		text = fmt.Sprintf("<v %s>%s", e.Speaker, text)
	}
	return fmt.Sprintf("%d\n%s --> %s\n%s\n", id, startStamp, endStamp, text), nil
}

func vttDocument(cues []string) string {
	return "WEBVTT\n\n" + strings.Join(cues, "\n")
}
