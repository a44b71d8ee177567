package validate

import (
	"math"
	"testing"
)

func TestQualityCleanData(t *testing.T) {
	q := NewQuality()
	result := q.AlignmentData(cleanTimingData())

	if !result.IsValid {
		t.Errorf("clean data rejected: %+v", result.Issues)
	}
	// timing score 1.0, text score is the 0.9 average confidence
	want := (1.0 + 0.9) / 2
	if math.Abs(result.Score-want) > 1e-9 {
		t.Errorf("Score = %v, want %v", result.Score, want)
	}
	if result.Metadata["timing_score"] != 1.0 {
		t.Errorf("timing_score = %v, want 1.0", result.Metadata["timing_score"])
	}
}

func TestQualityMergesIssues(t *testing.T) {
	data := cleanTimingData()
	data.Segments[0].EndTime = 2.5   // timing overlap error
	data.Segments[1].Text = "Hi"     // text warning

	q := NewQuality()
	result := q.AlignmentData(data)

	if result.IsValid {
		t.Error("timing error should invalidate the combined result")
	}

	categories := map[string]bool{}
	for _, issue := range result.Issues {
		categories[issue.Category] = true
	}
	if !categories["timing"] || !categories["text"] {
		t.Errorf("expected both timing and text issues, got %+v", result.Issues)
	}
}

func TestQualityInvalidWhenEitherComponentFails(t *testing.T) {
	data := cleanTimingData()
	data.WordSegments[0].EndTime = 3.5 // outside its segment

	q := NewQuality()
	result := q.AlignmentData(data)
	if result.IsValid {
		t.Error("word containment error should invalidate the combined result")
	}
}

func TestQualityCustomConfig(t *testing.T) {
	timingCfg := DefaultTimingConfig()
	timingCfg.MaxSegmentDuration = 1.0

	q := NewQualityWithConfig(timingCfg, DefaultTextQualityConfig())
	result := q.AlignmentData(cleanTimingData())

	// the 2s segments now exceed the tightened maximum
	found := false
	for _, issue := range result.Issues {
		if issue.Category == "timing" && issue.Severity == SeverityWarning {
			found = true
		}
	}
	if !found {
		t.Errorf("tightened config should produce duration warnings: %+v", result.Issues)
	}
}
