package subtitle

import (
	"fmt"
	"sort"

	"github.com/vietthanhnv/lyrics-master-sub001/internal/align"
)

// segment paired with its words, sorted by word start time
type SegmentWords struct {
	Segment align.Segment
	Words   []align.WordSegment
}

// GroupWordsBySegment pairs each segment with its word segments, in segment
// order. Segments without any words are omitted here; the quality validator
// reports them as a warning instead.
func GroupWordsBySegment(data *align.AlignmentData) []SegmentWords {
	byID := make(map[int][]align.WordSegment, len(data.Segments))
	for _, w := range data.WordSegments {
		byID[w.SegmentID] = append(byID[w.SegmentID], w)
	}

	groups := make([]SegmentWords, 0, len(data.Segments))
	for _, seg := range data.Segments {
		words := byID[seg.SegmentID]
		if len(words) == 0 {
			continue
		}
		sort.SliceStable(words, func(i, j int) bool {
			return words[i].StartTime < words[j].StartTime
		})
		groups = append(groups, SegmentWords{Segment: seg, Words: words})
	}

	return groups
}

// WindowWords splits words into consecutive windows of size words each; the
// last window may be shorter. A window's timing span runs from its first
// word's start to its last word's end.
func WindowWords(
	words []align.WordSegment,
	size int,
) ([][]align.WordSegment, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidWindow, size)
	}

	var windows [][]align.WordSegment
	for i := 0; i < len(words); i += size {
		end := i + size
		if end > len(words) {
			end = len(words)
		}
		windows = append(windows, words[i:end])
	}

	return windows, nil
}

// sortedWords returns the word segments ordered by start time without
// mutating the input.
func sortedWords(words []align.WordSegment) []align.WordSegment {
	out := make([]align.WordSegment, len(words))
	copy(out, words)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out
}
