package subtitle

import (
	"fmt"
	"strings"

	"github.com/vietthanhnv/lyrics-master-sub001/internal/align"
)

// SRTExporter renders SubRip output: 1-based sequential numbering, a
// HH:MM:SS,mmm --> HH:MM:SS,mmm timing line, then the text, with blocks
// separated by a blank line.
type SRTExporter struct{}

// SentenceLevel emits one block per segment.
func (e *SRTExporter) SentenceLevel(data *align.AlignmentData) (string, error) {
	if len(data.Segments) == 0 {
		return "", fmt.Errorf("%w: no segments", ErrEmptyInput)
	}

	blocks := make([]string, 0, len(data.Segments))
	for i, seg := range data.Segments {
		block, err := srtBlock(i+1, seg.StartTime, seg.EndTime, SanitizeSRT(seg.Text))
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}

	return strings.Join(blocks, "\n"), nil
}

// WordLevel emits one block per word segment.
func (e *SRTExporter) WordLevel(data *align.AlignmentData) (string, error) {
	if len(data.WordSegments) == 0 {
		return "", fmt.Errorf("%w: no word segments", ErrEmptyInput)
	}

	words := sortedWords(data.WordSegments)
	blocks := make([]string, 0, len(words))
	for i, w := range words {
		block, err := srtBlock(i+1, w.StartTime, w.EndTime, SanitizeSRT(w.Word))
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}

	return strings.Join(blocks, "\n"), nil
}

// GroupedWords emits one block per window of windowSize consecutive words.
func (e *SRTExporter) GroupedWords(
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

	blocks := make([]string, 0, len(windows))
	for i, window := range windows {
		text := make([]string, 0, len(window))
		for _, w := range window {
			text = append(text, w.Word)
		}
		block, err := srtBlock(
			i+1,
			window[0].StartTime,
			window[len(window)-1].EndTime,
			SanitizeSRT(strings.Join(text, " ")),
		)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}

	return strings.Join(blocks, "\n"), nil
}

// BilingualSentenceLevel emits one block per segment with the original text
// on the first line and the translation on the second.
func (e *SRTExporter) BilingualSentenceLevel(
	data *align.AlignmentData,
) (string, error) {
	if len(data.Segments) == 0 {
		return "", fmt.Errorf("%w: no segments", ErrEmptyInput)
	}

	blocks := make([]string, 0, len(data.Segments))
	for i, seg := range data.Segments {
		original, translation := splitBilingual(seg.Text)
		text := SanitizeSRT(original)
		if translation != "" {
			text += "\n" + SanitizeSRT(translation)
		}
		block, err := srtBlock(i+1, seg.StartTime, seg.EndTime, text)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}

	return strings.Join(blocks, "\n"), nil
}

func srtBlock(index int, start, end float64, text string) (string, error) {
	startStamp, err := FormatSRTTime(start)
	if err != nil {
		return "", err
	}
	endStamp, err := FormatSRTTime(end)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d\n%s --> %s\n%s\n", index, startStamp, endStamp, text), nil
}

// splitBilingual splits a bilingual segment text into its original line and
// translation line. A single-line text has no translation.
func splitBilingual(text string) (original, translation string) {
	parts := strings.SplitN(text, "\n", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
