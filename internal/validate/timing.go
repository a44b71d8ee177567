package validate

import (
	"fmt"
	"unicode/utf8"

	"github.com/vietthanhnv/lyrics-master-sub001/internal/align"
)

// TimingConfig holds the timing tolerances. The defaults are empirically
// chosen policy values, so they are configurable rather than hard constants.
type TimingConfig struct {
	Tolerance          float64 // overlap and containment tolerance, seconds
	MinSegmentDuration float64
	MaxSegmentDuration float64
	MinWordDuration    float64
	MaxWordDuration    float64
	MaxGap             float64 // silence between segments before an Info finding
}

func DefaultTimingConfig() TimingConfig {
	return TimingConfig{
		Tolerance:          0.1,
		MinSegmentDuration: 0.1,
		MaxSegmentDuration: 10.0,
		MinWordDuration:    0.05,
		MaxWordDuration:    3.0,
		MaxGap:             2.0,
	}
}

// TimingValidator checks segment and word timing consistency.
type TimingValidator struct {
	cfg TimingConfig
}

func NewTimingValidator(cfg TimingConfig) *TimingValidator {
	return &TimingValidator{cfg: cfg}
}

// Validate runs all timing checks over the alignment data.
func (v *TimingValidator) Validate(data *align.AlignmentData) Result {
	var issues []Issue

	issues = append(issues, v.segmentIssues(data.Segments)...)
	issues = append(issues, v.adjacencyIssues(data.Segments)...)
	issues = append(issues, v.wordIssues(data.WordSegments)...)
	issues = append(issues, v.containmentIssues(data)...)

	return newResult(issues, 1.0, map[string]any{
		"segments": len(data.Segments),
		"words":    len(data.WordSegments),
	})
}

func (v *TimingValidator) segmentIssues(segments []align.Segment) []Issue {
	var issues []Issue
	for _, seg := range segments {
		location := fmt.Sprintf("segment %d", seg.SegmentID)

		if seg.EndTime <= seg.StartTime {
			issues = append(issues, Issue{
				Severity:   SeverityCritical,
				Category:   "timing",
				Message:    fmt.Sprintf("segment ends at %.3f before it starts at %.3f", seg.EndTime, seg.StartTime),
				Location:   location,
				Suggestion: "Fix the segment boundaries upstream",
			})
			continue
		}

		duration := seg.Duration()
		if duration < v.cfg.MinSegmentDuration {
			issues = append(issues, Issue{
				Severity:   SeverityWarning,
				Category:   "timing",
				Message:    fmt.Sprintf("segment duration %.3fs is below %.2fs", duration, v.cfg.MinSegmentDuration),
				Location:   location,
				Suggestion: "Very short segments flash by; consider merging",
			})
		}
		if duration > v.cfg.MaxSegmentDuration {
			issues = append(issues, Issue{
				Severity:   SeverityWarning,
				Category:   "timing",
				Message:    fmt.Sprintf("segment duration %.3fs exceeds %.1fs", duration, v.cfg.MaxSegmentDuration),
				Location:   location,
				Suggestion: "Long segments are hard to read; consider splitting",
			})
		}
	}
	return issues
}

func (v *TimingValidator) adjacencyIssues(segments []align.Segment) []Issue {
	var issues []Issue
	for i := 0; i < len(segments)-1; i++ {
		current, next := segments[i], segments[i+1]
		location := fmt.Sprintf("segments %d-%d", current.SegmentID, next.SegmentID)

		if current.EndTime > next.StartTime+v.cfg.Tolerance {
			issues = append(issues, Issue{
				Severity:   SeverityError,
				Category:   "timing",
				Message:    fmt.Sprintf("segments overlap by %.3fs", current.EndTime-next.StartTime),
				Location:   location,
				Suggestion: "Adjust boundaries so segments do not overlap",
			})
		}

		if gap := next.StartTime - current.EndTime; gap > v.cfg.MaxGap {
			issues = append(issues, Issue{
				Severity: SeverityInfo,
				Category: "timing",
				Message:  fmt.Sprintf("gap of %.3fs between segments", gap),
				Location: location,
			})
		}
	}
	return issues
}

func (v *TimingValidator) wordIssues(words []align.WordSegment) []Issue {
	var issues []Issue
	for _, w := range words {
		location := fmt.Sprintf("word %q in segment %d", w.Word, w.SegmentID)

		if w.EndTime <= w.StartTime {
			issues = append(issues, Issue{
				Severity:   SeverityCritical,
				Category:   "timing",
				Message:    fmt.Sprintf("word ends at %.3f before it starts at %.3f", w.EndTime, w.StartTime),
				Location:   location,
				Suggestion: "Fix the word boundaries upstream",
			})
			continue
		}

		duration := w.Duration()
		if duration < v.cfg.MinWordDuration && utf8.RuneCountInString(w.Word) > 2 {
			issues = append(issues, Issue{
				Severity:   SeverityWarning,
				Category:   "timing",
				Message:    fmt.Sprintf("word duration %.3fs is too short for its length", duration),
				Location:   location,
				Suggestion: "Alignment may have clipped this word",
			})
		}
		if duration > v.cfg.MaxWordDuration {
			issues = append(issues, Issue{
				Severity:   SeverityWarning,
				Category:   "timing",
				Message:    fmt.Sprintf("word duration %.3fs exceeds %.1fs", duration, v.cfg.MaxWordDuration),
				Location:   location,
				Suggestion: "Alignment may have stretched this word",
			})
		}
	}
	return issues
}

func (v *TimingValidator) containmentIssues(data *align.AlignmentData) []Issue {
	var issues []Issue

	segByID := make(map[int]align.Segment, len(data.Segments))
	wordCounts := make(map[int]int, len(data.Segments))
	for _, seg := range data.Segments {
		segByID[seg.SegmentID] = seg
	}

	for _, w := range data.WordSegments {
		wordCounts[w.SegmentID]++

		seg, ok := segByID[w.SegmentID]
		if !ok {
			issues = append(issues, Issue{
				Severity:   SeverityWarning,
				Category:   "timing",
				Message:    fmt.Sprintf("word %q references unknown segment %d", w.Word, w.SegmentID),
				Suggestion: "Word segments must reference an existing segment",
			})
			continue
		}

		if w.StartTime < seg.StartTime-v.cfg.Tolerance ||
			w.EndTime > seg.EndTime+v.cfg.Tolerance {
			issues = append(issues, Issue{
				Severity:   SeverityError,
				Category:   "timing",
				Message:    fmt.Sprintf("word spans %.3f-%.3f outside segment %.3f-%.3f", w.StartTime, w.EndTime, seg.StartTime, seg.EndTime),
				Location:   fmt.Sprintf("word %q in segment %d", w.Word, w.SegmentID),
				Suggestion: "Word timings must fall within their segment",
			})
		}
	}

	for _, seg := range data.Segments {
		if wordCounts[seg.SegmentID] == 0 {
			issues = append(issues, Issue{
				Severity:   SeverityWarning,
				Category:   "timing",
				Message:    "segment has no associated word segments",
				Location:   fmt.Sprintf("segment %d", seg.SegmentID),
				Suggestion: "Word-level export will skip this segment",
			})
		}
	}

	return issues
}
