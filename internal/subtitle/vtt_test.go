package subtitle

import (
	"errors"
	"strings"
	"testing"

	"github.com/vietthanhnv/lyrics-master-sub001/internal/align"
)

func TestVTTSentenceLevel(t *testing.T) {
	data := &align.AlignmentData{
		Segments: []align.Segment{
			{SegmentID: 0, StartTime: 0.0, EndTime: 3.0, Text: "Hello world"},
		},
	}

	e := &VTTExporter{}
	got, err := e.SentenceLevel(data)
	if err != nil {
		t.Fatalf("SentenceLevel: %v", err)
	}

	want := "WEBVTT\n\n1\n00:00:00.000 --> 00:00:03.000\nHello world\n"
	if got != want {
		t.Errorf("SentenceLevel = %q, want %q", got, want)
	}
}

func TestVTTSpeakerVoiceSpan(t *testing.T) {
	data := &align.AlignmentData{
		Segments: []align.Segment{
			{SegmentID: 0, StartTime: 0.0, EndTime: 2.0, Text: "Hello"},
		},
	}

	e := &VTTExporter{Speaker: "Singer"}
	got, err := e.SentenceLevel(data)
	if err != nil {
		t.Fatalf("SentenceLevel: %v", err)
	}

	if !strings.Contains(got, "<v Singer>Hello") {
		t.Errorf("expected voice span prefix, got %q", got)
	}
}

func TestVTTWordLevel(t *testing.T) {
	data := &align.AlignmentData{
		WordSegments: []align.WordSegment{
			{Word: "world", StartTime: 0.5, EndTime: 1.0, SegmentID: 0},
			{Word: "Hello", StartTime: 0.0, EndTime: 0.5, SegmentID: 0},
		},
	}

	e := &VTTExporter{}
	got, err := e.WordLevel(data)
	if err != nil {
		t.Fatalf("WordLevel: %v", err)
	}

	if !strings.HasPrefix(got, "WEBVTT\n\n") {
		t.Errorf("missing WEBVTT header: %q", got)
	}
	helloIdx := strings.Index(got, "Hello")
	worldIdx := strings.Index(got, "world")
	if helloIdx == -1 || worldIdx == -1 || helloIdx > worldIdx {
		t.Errorf("cues not in start time order: %q", got)
	}
}

func TestVTTGroupedWords(t *testing.T) {
	data := &align.AlignmentData{
		WordSegments: []align.WordSegment{
			{Word: "a", StartTime: 0.0, EndTime: 0.5, SegmentID: 0},
			{Word: "b", StartTime: 0.5, EndTime: 1.0, SegmentID: 0},
			{Word: "c", StartTime: 1.0, EndTime: 1.5, SegmentID: 0},
		},
	}

	e := &VTTExporter{}
	got, err := e.GroupedWords(data, 2)
	if err != nil {
		t.Fatalf("GroupedWords: %v", err)
	}

	if !strings.Contains(got, "00:00:00.000 --> 00:00:01.000\na b\n") {
		t.Errorf("first window cue missing: %q", got)
	}
	if !strings.Contains(got, "00:00:01.000 --> 00:00:01.500\nc\n") {
		t.Errorf("tail window cue missing: %q", got)
	}
}

func TestVTTEmptyInput(t *testing.T) {
	e := &VTTExporter{}
	if _, err := e.SentenceLevel(&align.AlignmentData{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}
