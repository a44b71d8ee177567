package validate

import (
	"github.com/vietthanhnv/lyrics-master-sub001/internal/align"
)

// Quality combines the timing and text quality validators into a single
// alignment-wide quality report. All validators are pure functions of their
// input; a Quality value is safe for concurrent use.
type Quality struct {
	timing *TimingValidator
	text   *TextQualityValidator
}

// NewQuality builds a Quality validator with the default thresholds.
func NewQuality() *Quality {
	return NewQualityWithConfig(DefaultTimingConfig(), DefaultTextQualityConfig())
}

func NewQualityWithConfig(
	timingCfg TimingConfig,
	textCfg TextQualityConfig,
) *Quality {
	return &Quality{
		timing: NewTimingValidator(timingCfg),
		text:   NewTextQualityValidator(textCfg),
	}
}

// AlignmentData validates timing and text quality and merges the results:
// issues are concatenated, the score is the arithmetic mean of the two
// component scores, and the data is valid only when both components are.
func (q *Quality) AlignmentData(data *align.AlignmentData) Result {
	timing := q.timing.Validate(data)
	text := q.text.Validate(data)

	issues := make([]Issue, 0, len(timing.Issues)+len(text.Issues))
	issues = append(issues, timing.Issues...)
	issues = append(issues, text.Issues...)

	return Result{
		IsValid: timing.IsValid && text.IsValid,
		Issues:  issues,
		Score:   (timing.Score + text.Score) / 2,
		Metadata: map[string]any{
			"timing_score": timing.Score,
			"text_score":   text.Score,
		},
	}
}
