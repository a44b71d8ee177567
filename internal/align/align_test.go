package align

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewSegmentValidation(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		confidence float64
		wantErr    bool
	}{
		{"valid", 0.0, 3.0, 0.95, false},
		{"zero duration", 1.0, 1.0, 0.9, true},
		{"end before start", 2.0, 1.0, 0.9, true},
		{"negative start", -0.5, 1.0, 0.9, true},
		{"confidence above one", 0.0, 1.0, 1.5, true},
		{"confidence below zero", 0.0, 1.0, -0.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSegment(0, tt.start, tt.end, "text", tt.confidence)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSegment error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewWordSegmentRejectsEmptyWord(t *testing.T) {
	if _, err := NewWordSegment("", 0.0, 1.0, 0.9, 0); err == nil {
		t.Error("expected error for empty word")
	}
}

func TestWordsForSegmentSortsByStartTime(t *testing.T) {
	data := &AlignmentData{
		Segments: []Segment{
			{SegmentID: 0, StartTime: 0, EndTime: 3, Text: "Hello world", Confidence: 0.9},
		},
		WordSegments: []WordSegment{
			{Word: "world", StartTime: 1.0, EndTime: 2.0, Confidence: 0.9, SegmentID: 0},
			{Word: "Hello", StartTime: 0.0, EndTime: 1.0, Confidence: 0.9, SegmentID: 0},
			{Word: "other", StartTime: 5.0, EndTime: 6.0, Confidence: 0.9, SegmentID: 1},
		},
	}

	words := data.WordsForSegment(0)
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	if words[0].Word != "Hello" || words[1].Word != "world" {
		t.Errorf("words not sorted by start time: %v", words)
	}
}

func TestAverageConfidence(t *testing.T) {
	data := &AlignmentData{
		Segments: []Segment{
			{SegmentID: 0, StartTime: 0, EndTime: 1, Confidence: 0.8},
			{SegmentID: 1, StartTime: 1, EndTime: 2, Confidence: 0.6},
		},
	}

	if got := data.AverageConfidence(); got != 0.7 {
		t.Errorf("expected average 0.7, got %v", got)
	}

	empty := &AlignmentData{}
	if got := empty.AverageConfidence(); got != 0 {
		t.Errorf("expected 0 for empty data, got %v", got)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	data := &AlignmentData{
		Segments: []Segment{
			{SegmentID: 0, StartTime: 0, EndTime: 3, Text: "Hello world", Confidence: 0.95},
		},
		WordSegments: []WordSegment{
			{Word: "Hello", StartTime: 0, EndTime: 1, Confidence: 0.9, SegmentID: 0},
			{Word: "world", StartTime: 1, EndTime: 2, Confidence: 0.92, SegmentID: 0},
		},
		AudioDuration: 3.5,
		SourceFile:    "song.wav",
	}

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "alignment.json")

	if err := Save(data, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded.Segments) != 1 || len(loaded.WordSegments) != 2 {
		t.Fatalf(
			"unexpected counts: %d segments, %d words",
			len(loaded.Segments),
			len(loaded.WordSegments),
		)
	}
	if loaded.Segments[0].Text != "Hello world" {
		t.Errorf("expected 'Hello world', got %q", loaded.Segments[0].Text)
	}
	if loaded.AudioDuration != 3.5 {
		t.Errorf("expected duration 3.5, got %v", loaded.AudioDuration)
	}
	if loaded.SourceFile != "song.wav" {
		t.Errorf("expected source 'song.wav', got %q", loaded.SourceFile)
	}
}

func TestLoadRejectsEmptySegments(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "empty.json")
	content := `{"segments": [], "word_segments": [], "audio_duration": 1.0}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for alignment file without segments")
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
