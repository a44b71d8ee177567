package subtitle

import (
	"errors"
	"strings"
	"testing"

	"github.com/vietthanhnv/lyrics-master-sub001/internal/align"
)

func TestSRTSentenceLevel(t *testing.T) {
	data := &align.AlignmentData{
		Segments: []align.Segment{
			{SegmentID: 0, StartTime: 0.0, EndTime: 3.0, Text: "Hello world", Confidence: 0.95},
		},
	}

	e := &SRTExporter{}
	got, err := e.SentenceLevel(data)
	if err != nil {
		t.Fatalf("SentenceLevel: %v", err)
	}

	want := "1\n00:00:00,000 --> 00:00:03,000\nHello world\n"
	if got != want {
		t.Errorf("SentenceLevel = %q, want %q", got, want)
	}
}

func TestSRTSentenceLevelMultipleBlocks(t *testing.T) {
	data := &align.AlignmentData{
		Segments: []align.Segment{
			{SegmentID: 0, StartTime: 0.0, EndTime: 2.5, Text: "First line"},
			{SegmentID: 1, StartTime: 2.5, EndTime: 5.0, Text: "Second line"},
		},
	}

	e := &SRTExporter{}
	got, err := e.SentenceLevel(data)
	if err != nil {
		t.Fatalf("SentenceLevel: %v", err)
	}

	want := "1\n00:00:00,000 --> 00:00:02,500\nFirst line\n" +
		"\n" +
		"2\n00:00:02,500 --> 00:00:05,000\nSecond line\n"
	if got != want {
		t.Errorf("SentenceLevel = %q, want %q", got, want)
	}
}

func TestSRTWordLevel(t *testing.T) {
	data := &align.AlignmentData{
		Segments: []align.Segment{
			{SegmentID: 0, StartTime: 0.0, EndTime: 1.0, Text: "Hi there"},
		},
		WordSegments: []align.WordSegment{
			{Word: "there", StartTime: 0.5, EndTime: 1.0, SegmentID: 0},
			{Word: "Hi", StartTime: 0.0, EndTime: 0.5, SegmentID: 0},
		},
	}

	e := &SRTExporter{}
	got, err := e.WordLevel(data)
	if err != nil {
		t.Fatalf("WordLevel: %v", err)
	}

	want := "1\n00:00:00,000 --> 00:00:00,500\nHi\n" +
		"\n" +
		"2\n00:00:00,500 --> 00:00:01,000\nthere\n"
	if got != want {
		t.Errorf("WordLevel = %q, want %q", got, want)
	}
}

func TestSRTGroupedWords(t *testing.T) {
	words := []align.WordSegment{
		{Word: "one", StartTime: 0.0, EndTime: 0.5, SegmentID: 0},
		{Word: "two", StartTime: 0.5, EndTime: 1.0, SegmentID: 0},
		{Word: "three", StartTime: 1.0, EndTime: 1.5, SegmentID: 0},
		{Word: "four", StartTime: 1.5, EndTime: 2.0, SegmentID: 0},
	}
	data := &align.AlignmentData{
		Segments:     []align.Segment{{SegmentID: 0, StartTime: 0, EndTime: 2, Text: "one two three four"}},
		WordSegments: words,
	}

	e := &SRTExporter{}
	got, err := e.GroupedWords(data, 3)
	if err != nil {
		t.Fatalf("GroupedWords: %v", err)
	}

	want := "1\n00:00:00,000 --> 00:00:01,500\none two three\n" +
		"\n" +
		"2\n00:00:01,500 --> 00:00:02,000\nfour\n"
	if got != want {
		t.Errorf("GroupedWords = %q, want %q", got, want)
	}

	if _, err := e.GroupedWords(data, 0); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("expected ErrInvalidWindow for size 0, got %v", err)
	}
}

func TestSRTBilingualSentenceLevel(t *testing.T) {
	data := &align.AlignmentData{
		Segments: []align.Segment{
			{SegmentID: 0, StartTime: 0.0, EndTime: 2.0, Text: "Hello\nHola"},
			{SegmentID: 1, StartTime: 2.0, EndTime: 4.0, Text: "Untranslated"},
		},
	}

	e := &SRTExporter{}
	got, err := e.BilingualSentenceLevel(data)
	if err != nil {
		t.Fatalf("BilingualSentenceLevel: %v", err)
	}

	if !strings.Contains(got, "Hello\nHola\n") {
		t.Errorf("expected stacked bilingual lines, got %q", got)
	}
	if !strings.Contains(got, "\nUntranslated\n") {
		t.Errorf("segment without translation should keep a single line, got %q", got)
	}
}

func TestSRTEmptyInput(t *testing.T) {
	e := &SRTExporter{}
	empty := &align.AlignmentData{}

	if _, err := e.SentenceLevel(empty); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("SentenceLevel: expected ErrEmptyInput, got %v", err)
	}
	if _, err := e.WordLevel(empty); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("WordLevel: expected ErrEmptyInput, got %v", err)
	}
	if _, err := e.GroupedWords(empty, 3); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("GroupedWords: expected ErrEmptyInput, got %v", err)
	}
}
