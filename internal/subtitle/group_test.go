package subtitle

import (
	"errors"
	"testing"

	"github.com/vietthanhnv/lyrics-master-sub001/internal/align"
)

func testWords(n int) []align.WordSegment {
	words := make([]align.WordSegment, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, align.WordSegment{
			Word:      "w",
			StartTime: float64(i),
			EndTime:   float64(i) + 0.5,
			SegmentID: 0,
		})
	}
	return words
}

func TestGroupWordsBySegment(t *testing.T) {
	data := &align.AlignmentData{
		Segments: []align.Segment{
			{SegmentID: 0, StartTime: 0, EndTime: 2, Text: "first"},
			{SegmentID: 1, StartTime: 2, EndTime: 4, Text: "second"},
			{SegmentID: 2, StartTime: 4, EndTime: 6, Text: "wordless"},
		},
		WordSegments: []align.WordSegment{
			{Word: "b", StartTime: 1.0, EndTime: 1.5, SegmentID: 0},
			{Word: "a", StartTime: 0.0, EndTime: 0.5, SegmentID: 0},
			{Word: "c", StartTime: 2.0, EndTime: 2.5, SegmentID: 1},
		},
	}

	groups := GroupWordsBySegment(data)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Segment.SegmentID != 0 || groups[1].Segment.SegmentID != 1 {
		t.Errorf("groups out of segment order: %d, %d",
			groups[0].Segment.SegmentID, groups[1].Segment.SegmentID)
	}
	if groups[0].Words[0].Word != "a" || groups[0].Words[1].Word != "b" {
		t.Errorf("words not sorted by start time: %+v", groups[0].Words)
	}
}

func TestWindowWords(t *testing.T) {
	tests := []struct {
		name      string
		wordCount int
		size      int
		wantLens  []int
	}{
		{"even split", 9, 3, []int{3, 3, 3}},
		{"short tail", 10, 3, []int{3, 3, 3, 1}},
		{"size larger than input", 2, 5, []int{2}},
		{"empty input", 0, 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows, err := WindowWords(testWords(tt.wordCount), tt.size)
			if err != nil {
				t.Fatalf("WindowWords: %v", err)
			}
			if len(windows) != len(tt.wantLens) {
				t.Fatalf("expected %d windows, got %d", len(tt.wantLens), len(windows))
			}
			for i, want := range tt.wantLens {
				if len(windows[i]) != want {
					t.Errorf("window %d: expected %d words, got %d", i, want, len(windows[i]))
				}
			}
		})
	}
}

func TestWindowWordsRejectsInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := WindowWords(testWords(3), size); !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("size %d: expected ErrInvalidWindow, got %v", size, err)
		}
	}
}
