package align

import (
	"fmt"
	"sort"
)

// sentence level timed span of text
type Segment struct {
	SegmentID  int     `json:"segment_id"`
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// single word with its own timed span, belonging to one segment
type WordSegment struct {
	Word       string  `json:"word"`
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`
	Confidence float64 `json:"confidence"`
	SegmentID  int     `json:"segment_id"`
}

// timed transcription result produced by the upstream aligner
type AlignmentData struct {
	Segments      []Segment     `json:"segments"`
	WordSegments  []WordSegment `json:"word_segments"`
	AudioDuration float64       `json:"audio_duration"`
	SourceFile    string        `json:"source_file,omitempty"`
}

// NewSegment validates the segment invariants before construction.
func NewSegment(
	id int,
	start, end float64,
	text string,
	confidence float64,
) (Segment, error) {
	if start < 0 {
		return Segment{}, fmt.Errorf(
			"segment %d: start time %.3f is negative",
			id,
			start,
		)
	}
	if end <= start {
		return Segment{}, fmt.Errorf(
			"segment %d: end time %.3f must be after start time %.3f",
			id,
			end,
			start,
		)
	}
	if confidence < 0 || confidence > 1 {
		return Segment{}, fmt.Errorf(
			"segment %d: confidence %.3f outside [0, 1]",
			id,
			confidence,
		)
	}
	return Segment{
		SegmentID:  id,
		StartTime:  start,
		EndTime:    end,
		Text:       text,
		Confidence: confidence,
	}, nil
}

// NewWordSegment validates the word segment invariants before construction.
func NewWordSegment(
	word string,
	start, end float64,
	confidence float64,
	segmentID int,
) (WordSegment, error) {
	if word == "" {
		return WordSegment{}, fmt.Errorf(
			"word segment in segment %d: word is empty",
			segmentID,
		)
	}
	if start < 0 {
		return WordSegment{}, fmt.Errorf(
			"word %q: start time %.3f is negative",
			word,
			start,
		)
	}
	if end <= start {
		return WordSegment{}, fmt.Errorf(
			"word %q: end time %.3f must be after start time %.3f",
			word,
			end,
			start,
		)
	}
	if confidence < 0 || confidence > 1 {
		return WordSegment{}, fmt.Errorf(
			"word %q: confidence %.3f outside [0, 1]",
			word,
			confidence,
		)
	}
	return WordSegment{
		Word:       word,
		StartTime:  start,
		EndTime:    end,
		Confidence: confidence,
		SegmentID:  segmentID,
	}, nil
}

// Duration returns the segment span in seconds.
func (s Segment) Duration() float64 {
	return s.EndTime - s.StartTime
}

// Duration returns the word span in seconds.
func (w WordSegment) Duration() float64 {
	return w.EndTime - w.StartTime
}

// WordsForSegment returns the words owned by segmentID, sorted by start time.
func (d *AlignmentData) WordsForSegment(segmentID int) []WordSegment {
	var words []WordSegment
	for _, w := range d.WordSegments {
		if w.SegmentID == segmentID {
			words = append(words, w)
		}
	}
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].StartTime < words[j].StartTime
	})
	return words
}

// AverageConfidence returns the mean segment confidence, 0 when empty.
func (d *AlignmentData) AverageConfidence() float64 {
	if len(d.Segments) == 0 {
		return 0
	}
	var sum float64
	for _, s := range d.Segments {
		sum += s.Confidence
	}
	return sum / float64(len(d.Segments))
}
