package subtitle

import (
	"testing"

	"github.com/vietthanhnv/lyrics-master-sub001/internal/align"
)

func TestKaraokeDuration(t *testing.T) {
	tests := []struct {
		name string
		word align.WordSegment
		want int
	}{
		{"one second", align.WordSegment{StartTime: 0, EndTime: 1.0}, 100},
		{"half second", align.WordSegment{StartTime: 1.0, EndTime: 1.5}, 50},
		{"floored to minimum", align.WordSegment{StartTime: 0, EndTime: 0.02}, 10},
		{"rounded", align.WordSegment{StartTime: 0, EndTime: 0.456}, 46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KaraokeDuration(tt.word); got != tt.want {
				t.Errorf("KaraokeDuration = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKaraokeLine(t *testing.T) {
	words := []align.WordSegment{
		{Word: "One", StartTime: 0.0, EndTime: 1.0},
		{Word: "Two", StartTime: 1.0, EndTime: 2.0},
		{Word: "Three", StartTime: 2.0, EndTime: 3.0},
	}

	want := `{\k100}One {\k100}Two {\k100}Three`
	if got := KaraokeLine(words); got != want {
		t.Errorf("KaraokeLine = %q, want %q", got, want)
	}
}

func TestKaraokeLineSanitizesWords(t *testing.T) {
	words := []align.WordSegment{
		{Word: "{oh}", StartTime: 0.0, EndTime: 0.5},
	}

	want := `{\k50}\{oh\}`
	if got := KaraokeLine(words); got != want {
		t.Errorf("KaraokeLine = %q, want %q", got, want)
	}
}

func TestKaraokeLineDurationSum(t *testing.T) {
	words := []align.WordSegment{
		{Word: "a", StartTime: 0.0, EndTime: 0.8},
		{Word: "b", StartTime: 0.8, EndTime: 1.73},
		{Word: "c", StartTime: 1.73, EndTime: 2.5},
	}

	var sum int
	for _, w := range words {
		sum += KaraokeDuration(w)
	}
	if sum != 250 {
		t.Errorf("durations should sum to the span in centiseconds, got %d", sum)
	}
}
