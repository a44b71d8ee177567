package validate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vietthanhnv/lyrics-master-sub001/internal/align"
)

// TextQualityConfig holds the text quality thresholds, configurable with
// the source policy values as defaults.
type TextQualityConfig struct {
	MinTextLength            int     // below this, segment text counts as short
	RepeatRunLength          int     // consecutive identical characters before a warning
	LowSegmentConfidence     float64
	LowSegmentRatio          float64 // share of low-confidence segments before a warning
	LowWordConfidence        float64
	LowWordRatio             float64 // share of low-confidence words before a warning
	UppercaseMinLength       int     // all-caps text longer than this gets an Info
}

func DefaultTextQualityConfig() TextQualityConfig {
	return TextQualityConfig{
		MinTextLength:        3,
		RepeatRunLength:      5,
		LowSegmentConfidence: 0.5,
		LowSegmentRatio:      0.3,
		LowWordConfidence:    0.4,
		LowWordRatio:         0.2,
		UppercaseMinLength:   10,
	}
}

// TextQualityValidator checks transcription text plausibility and
// confidence distribution.
type TextQualityValidator struct {
	cfg TextQualityConfig
}

func NewTextQualityValidator(cfg TextQualityConfig) *TextQualityValidator {
	return &TextQualityValidator{cfg: cfg}
}

// Validate runs all text checks. The score starts from the average segment
// confidence scaled by the share of usable (non-empty, non-short) segments,
// then takes the usual per-issue deductions.
func (v *TextQualityValidator) Validate(data *align.AlignmentData) Result {
	var issues []Issue

	emptyOrShort := 0
	lowConfidence := 0

	for _, seg := range data.Segments {
		location := fmt.Sprintf("segment %d", seg.SegmentID)
		text := strings.TrimSpace(seg.Text)
		runeCount := utf8.RuneCountInString(text)

		if runeCount < v.cfg.MinTextLength {
			emptyOrShort++
			message := "segment text is empty"
			if runeCount > 0 {
				message = fmt.Sprintf("segment text %q is shorter than %d characters", text, v.cfg.MinTextLength)
			}
			issues = append(issues, Issue{
				Severity:   SeverityWarning,
				Category:   "text",
				Message:    message,
				Location:   location,
				Suggestion: "Check the transcription for dropped words",
			})
		}

		if run := longestRun(text); run >= v.cfg.RepeatRunLength {
			issues = append(issues, Issue{
				Severity:   SeverityWarning,
				Category:   "text",
				Message:    fmt.Sprintf("%d consecutive repeated characters", run),
				Location:   location,
				Suggestion: "Repeated characters often indicate a recognition glitch",
			})
		}

		if unusual := unusualRunes(text); unusual > 0 {
			issues = append(issues, Issue{
				Severity: SeverityInfo,
				Category: "text",
				Message:  fmt.Sprintf("%d unusual characters in text", unusual),
				Location: location,
			})
		}

		if runeCount > v.cfg.UppercaseMinLength && isAllUppercase(text) {
			issues = append(issues, Issue{
				Severity: SeverityInfo,
				Category: "text",
				Message:  "text is entirely uppercase",
				Location: location,
			})
		}

		if seg.Confidence < v.cfg.LowSegmentConfidence {
			lowConfidence++
		}
	}

	if len(data.Segments) > 0 {
		ratio := float64(lowConfidence) / float64(len(data.Segments))
		if ratio > v.cfg.LowSegmentRatio {
			issues = append(issues, Issue{
				Severity:   SeverityWarning,
				Category:   "confidence",
				Message:    fmt.Sprintf("%.0f%% of segments have confidence below %.2f", ratio*100, v.cfg.LowSegmentConfidence),
				Suggestion: "Consider re-running recognition with a larger model",
			})
		} else {
			for _, seg := range data.Segments {
				if seg.Confidence < v.cfg.LowSegmentConfidence {
					issues = append(issues, Issue{
						Severity: SeverityInfo,
						Category: "confidence",
						Message:  fmt.Sprintf("segment confidence %.2f is low", seg.Confidence),
						Location: fmt.Sprintf("segment %d", seg.SegmentID),
					})
				}
			}
		}
	}

	if len(data.WordSegments) > 0 {
		lowWords := 0
		for _, w := range data.WordSegments {
			if w.Confidence < v.cfg.LowWordConfidence {
				lowWords++
			}
		}
		ratio := float64(lowWords) / float64(len(data.WordSegments))
		if ratio > v.cfg.LowWordRatio {
			issues = append(issues, Issue{
				Severity:   SeverityWarning,
				Category:   "confidence",
				Message:    fmt.Sprintf("%.0f%% of words have confidence below %.2f", ratio*100, v.cfg.LowWordConfidence),
				Suggestion: "Word-level timing may be unreliable",
			})
		}
	}

	baseScore := 1.0
	if len(data.Segments) > 0 {
		baseScore = data.AverageConfidence() *
			(1 - float64(emptyOrShort)/float64(len(data.Segments)))
	}

	return newResult(issues, baseScore, map[string]any{
		"segments":                len(data.Segments),
		"empty_or_short_segments": emptyOrShort,
		"low_confidence_segments": lowConfidence,
	})
}

// longestRun returns the longest run of one repeated rune. Go's regexp has
// no backreferences, so this is a plain scan.
func longestRun(text string) int {
	var prev rune
	run, longest := 0, 0
	for _, r := range text {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// unusualRunes counts runes outside letters, digits, whitespace, and
// punctuation.
func unusualRunes(text string) int {
	count := 0
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) ||
			unicode.IsSpace(r) || unicode.IsPunct(r) {
			continue
		}
		count++
	}
	return count
}

func isAllUppercase(text string) bool {
	hasLetter := false
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return hasLetter
}
