package subtitle

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vietthanhnv/lyrics-master-sub001/internal/align"
)

// JSONExporter renders the structured JSON form: top-level segments, words,
// and metadata objects. Output is deterministic for identical input, so no
// generation timestamps appear anywhere.
type JSONExporter struct{}

type jsonSegment struct {
	Start       float64 `json:"start"`
	End         float64 `json:"end"`
	Text        string  `json:"text"`
	Confidence  float64 `json:"confidence"`
	Original    string  `json:"original,omitempty"`
	Translation string  `json:"translation,omitempty"`
}

type jsonWord struct {
	Word       string  `json:"word"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence"`
	SegmentID  int     `json:"segment_id"`
}

type jsonMetadata struct {
	SourceFile         string  `json:"source_file,omitempty"`
	AudioDuration      float64 `json:"audio_duration"`
	SegmentCount       int     `json:"segment_count"`
	WordCount          int     `json:"word_count"`
	Mode               string  `json:"mode"`
	TargetLanguage     string  `json:"target_language,omitempty"`
	TranslatedSegments int     `json:"translated_segments,omitempty"`
}

type jsonDocument struct {
	Segments []jsonSegment `json:"segments"`
	Words    []jsonWord    `json:"words"`
	Metadata jsonMetadata  `json:"metadata"`
}

// SentenceLevel emits one segment object per alignment segment, plus the
// full word list.
func (e *JSONExporter) SentenceLevel(data *align.AlignmentData) (string, error) {
	if len(data.Segments) == 0 {
		return "", fmt.Errorf("%w: no segments", ErrEmptyInput)
	}

	segments := make([]jsonSegment, 0, len(data.Segments))
	for _, seg := range data.Segments {
		segments = append(segments, jsonSegment{
			Start:      seg.StartTime,
			End:        seg.EndTime,
			Text:       SanitizeVTT(seg.Text),
			Confidence: seg.Confidence,
		})
	}

	return e.encode(data, segments, "sentence", "")
}

// WordLevel emits one segment object per word segment.
func (e *JSONExporter) WordLevel(data *align.AlignmentData) (string, error) {
	if len(data.WordSegments) == 0 {
		return "", fmt.Errorf("%w: no word segments", ErrEmptyInput)
	}

	words := sortedWords(data.WordSegments)
	segments := make([]jsonSegment, 0, len(words))
	for _, w := range words {
		segments = append(segments, jsonSegment{
			Start:      w.StartTime,
			End:        w.EndTime,
			Text:       SanitizeVTT(w.Word),
			Confidence: w.Confidence,
		})
	}

	return e.encode(data, segments, "word", "")
}

// GroupedWords emits one segment object per window of windowSize
// consecutive words.
func (e *JSONExporter) GroupedWords(
	data *align.AlignmentData,
	windowSize int,
) (string, error) {
	if len(data.WordSegments) == 0 {
		return "", fmt.Errorf("%w: no word segments", ErrEmptyInput)
	}

	windows, err := WindowWords(sortedWords(data.WordSegments), windowSize)
	if err != nil {
		return "", err
	}

	segments := make([]jsonSegment, 0, len(windows))
	for _, window := range windows {
		text := make([]string, 0, len(window))
		var confidence float64
		for _, w := range window {
			text = append(text, w.Word)
			confidence += w.Confidence
		}
		segments = append(segments, jsonSegment{
			Start:      window[0].StartTime,
			End:        window[len(window)-1].EndTime,
			Text:       SanitizeVTT(strings.Join(text, " ")),
			Confidence: confidence / float64(len(window)),
		})
	}

	return e.encode(data, segments, "grouped", "")
}

// Bilingual emits one segment object per alignment segment carrying both
// the original and translation lines, plus translation statistics in the
// metadata.
func (e *JSONExporter) Bilingual(
	data *align.AlignmentData,
	targetLanguage string,
) (string, error) {
	if len(data.Segments) == 0 {
		return "", fmt.Errorf("%w: no segments", ErrEmptyInput)
	}

	segments := make([]jsonSegment, 0, len(data.Segments))
	translated := 0
	for _, seg := range data.Segments {
		original, translation := splitBilingual(seg.Text)
		if translation != "" {
			translated++
		}
		segments = append(segments, jsonSegment{
			Start:       seg.StartTime,
			End:         seg.EndTime,
			Text:        SanitizeVTT(seg.Text),
			Confidence:  seg.Confidence,
			Original:    SanitizeVTT(original),
			Translation: SanitizeVTT(translation),
		})
	}

	doc := e.document(data, segments, "bilingual")
	doc.Metadata.TargetLanguage = targetLanguage
	doc.Metadata.TranslatedSegments = translated

	return marshalDocument(doc)
}

func (e *JSONExporter) encode(
	data *align.AlignmentData,
	segments []jsonSegment,
	mode string,
	targetLanguage string,
) (string, error) {
	doc := e.document(data, segments, mode)
	doc.Metadata.TargetLanguage = targetLanguage
	return marshalDocument(doc)
}

func (e *JSONExporter) document(
	data *align.AlignmentData,
	segments []jsonSegment,
	mode string,
) jsonDocument {
	words := make([]jsonWord, 0, len(data.WordSegments))
	for _, w := range sortedWords(data.WordSegments) {
		words = append(words, jsonWord{
			Word:       w.Word,
			Start:      w.StartTime,
			End:        w.EndTime,
			Confidence: w.Confidence,
			SegmentID:  w.SegmentID,
		})
	}

	return jsonDocument{
		Segments: segments,
		Words:    words,
		Metadata: jsonMetadata{
			SourceFile:    data.SourceFile,
			AudioDuration: data.AudioDuration,
			SegmentCount:  len(data.Segments),
			WordCount:     len(data.WordSegments),
			Mode:          mode,
		},
	}
}

func marshalDocument(doc jsonDocument) (string, error) {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode subtitle JSON: %w", err)
	}
	return string(raw) + "\n", nil
}
