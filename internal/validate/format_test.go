package validate

import (
	"strings"
	"testing"
)

const validSRT = "1\n00:00:00,000 --> 00:00:02,500\nFirst line\n" +
	"\n" +
	"2\n00:00:02,500 --> 00:00:05,000\nSecond line\n"

func TestSRTValid(t *testing.T) {
	result := SRT(validSRT)
	if !result.IsValid {
		t.Errorf("valid SRT rejected: %+v", result.Issues)
	}
	if result.Score != 1.0 {
		t.Errorf("Score = %v, want 1.0", result.Score)
	}
	if result.Metadata["blocks"] != 2 {
		t.Errorf("blocks = %v, want 2", result.Metadata["blocks"])
	}
}

func TestSRTEmpty(t *testing.T) {
	result := SRT("")
	if result.IsValid {
		t.Error("empty content should not be valid")
	}
	if len(result.Issues) != 1 || result.Issues[0].Severity != SeverityCritical {
		t.Errorf("expected one critical issue, got %+v", result.Issues)
	}
}

func TestSRTProblems(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{
			"wrong index",
			"7\n00:00:00,000 --> 00:00:02,000\nText\n",
			"expected block index 1",
		},
		{
			"bad timing line",
			"1\n0:00:00.000 --> 0:00:02.000\nText\n",
			"invalid SRT timing line",
		},
		{
			"missing text line",
			"1\n00:00:00,000 --> 00:00:02,000\n",
			"index, timing, and text lines",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SRT(tt.content)
			if result.IsValid {
				t.Fatal("expected invalid result")
			}
			found := false
			for _, issue := range result.Issues {
				if strings.Contains(issue.Message, tt.message) {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue mentioning %q in %+v", tt.message, result.Issues)
			}
		})
	}
}

func TestVTTValid(t *testing.T) {
	content := "WEBVTT\n\n1\n00:00:00.000 --> 00:00:02.000\nHello\n"
	result := VTT(content)
	if !result.IsValid {
		t.Errorf("valid VTT rejected: %+v", result.Issues)
	}
	if result.Metadata["cues"] != 1 {
		t.Errorf("cues = %v, want 1", result.Metadata["cues"])
	}
}

func TestVTTMissingHeader(t *testing.T) {
	result := VTT("not vtt")
	if result.IsValid {
		t.Error("content without header should not be valid")
	}
	if len(result.Issues) != 1 {
		t.Fatalf("expected exactly one issue, got %+v", result.Issues)
	}
	issue := result.Issues[0]
	if issue.Severity != SeverityCritical || issue.Message != "Missing WEBVTT header" {
		t.Errorf("unexpected issue: %+v", issue)
	}
}

func TestVTTBadTimingLine(t *testing.T) {
	content := "WEBVTT\n\n1\n00:00:00,000 --> 00:00:02,000\nHello\n"
	result := VTT(content)
	if result.IsValid {
		t.Error("comma timestamps should fail VTT validation")
	}
}

const validASS = `[Script Info]
Title: Test
ScriptType: v4.00+

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Default,Arial,24,&H00FFFFFF,&H0000FFFF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,1,2,10,10,20,1

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:00.00,0:00:02.00,Default,,0,0,0,,Hello world
`

func TestASSValid(t *testing.T) {
	result := ASS(validASS)
	if !result.IsValid {
		t.Errorf("valid ASS rejected: %+v", result.Issues)
	}
	if result.Metadata["styles"] != 1 || result.Metadata["dialogues"] != 1 {
		t.Errorf("metadata wrong: %v", result.Metadata)
	}
}

func TestASSMissingSections(t *testing.T) {
	result := ASS("just some text")
	if result.IsValid {
		t.Error("expected invalid result")
	}

	critical := 0
	for _, issue := range result.Issues {
		if issue.Severity == SeverityCritical {
			critical++
		}
	}
	if critical != 3 {
		t.Errorf("expected 3 critical issues for 3 missing sections, got %d", critical)
	}
}

func TestASSNoDialogues(t *testing.T) {
	content := strings.Replace(validASS, "Dialogue: 0,0:00:00.00,0:00:02.00,Default,,0,0,0,,Hello world\n", "", 1)
	result := ASS(content)
	if result.IsValid {
		t.Error("ASS without dialogues should not be valid")
	}
}

func TestJSONValid(t *testing.T) {
	content := `{
  "segments": [{"start": 0, "end": 2, "text": "Hello", "confidence": 0.9}],
  "words": [],
  "metadata": {"audio_duration": 2, "segment_count": 1, "word_count": 0, "mode": "sentence"}
}`
	result := JSON(content)
	if !result.IsValid {
		t.Errorf("valid JSON rejected: %+v", result.Issues)
	}
	if result.Metadata["segments"] != 1 {
		t.Errorf("segments = %v, want 1", result.Metadata["segments"])
	}
}

func TestJSONProblems(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "definitely not json"},
		{"missing top level fields", `{"segments": []}`},
		{"segment missing fields", `{"segments": [{"start": 0}], "words": [], "metadata": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := JSON(tt.content); result.IsValid {
				t.Error("expected invalid result")
			}
		})
	}
}

func TestContentDispatch(t *testing.T) {
	if result := Content("srt", validSRT); !result.IsValid {
		t.Errorf("srt dispatch failed: %+v", result.Issues)
	}
	if result := Content("SRT", validSRT); !result.IsValid {
		t.Error("format name should be case insensitive")
	}
	if result := Content("sub", "anything"); result.IsValid {
		t.Error("unknown format should not be valid")
	}
}
