package subtitle

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// longest SRT line before soft wrapping kicks in
const maxSRTLineLength = 80

// single pass, so decoded ampersands are not re-scanned
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// sanitizeBase trims the text, collapses runs of spaces and tabs to a
// single space, and strips non printable control characters. Newlines
// survive so multi line (bilingual) texts stay multi line.
func sanitizeBase(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	pendingSpace := false
	for _, r := range text {
		switch {
		case r == '\n':
			sb.WriteByte('\n')
			pendingSpace = false
		case r == ' ' || r == '\t':
			pendingSpace = true
		case unicode.IsControl(r):
			// dropped
		default:
			if pendingSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(r)
			pendingSpace = false
		}
	}

	return strings.TrimSpace(sb.String())
}

// SanitizeSRT cleans text for SRT output: base pass, HTML entity decoding,
// then soft wrapping of lines longer than 80 characters at word boundaries.
func SanitizeSRT(text string) string {
	cleaned := entityReplacer.Replace(sanitizeBase(text))
	if cleaned == "" {
		return ""
	}

	var out []string
	for _, line := range strings.Split(cleaned, "\n") {
		out = append(out, wrapLine(line, maxSRTLineLength)...)
	}
	return strings.Join(out, "\n")
}

// SanitizeVTT cleans text for WebVTT output: base pass plus HTML entity
// decoding. VTT renderers wrap on their own, so no line length limit.
func SanitizeVTT(text string) string {
	return entityReplacer.Replace(sanitizeBase(text))
}

// SanitizeASS cleans and escapes text for ASS dialogue. Line breaks become
// \N markers, then backslashes and braces are escaped. The backslash pass
// runs first and catches the markers we just inserted, so those are
// restored at the end.
func SanitizeASS(text string) string {
	cleaned := sanitizeBase(text)
	if cleaned == "" {
		return ""
	}

	cleaned = strings.ReplaceAll(cleaned, "\n", `\N`)
	cleaned = strings.ReplaceAll(cleaned, `\`, `\\`)
	cleaned = strings.ReplaceAll(cleaned, "{", `\{`)
	cleaned = strings.ReplaceAll(cleaned, "}", `\}`)
	cleaned = strings.ReplaceAll(cleaned, `\\N`, `\N`)

	return cleaned
}

// wrapLine greedily wraps a single line at word boundaries. Words longer
// than the limit are emitted on their own line rather than broken apart.
func wrapLine(line string, limit int) []string {
	if utf8.RuneCountInString(line) <= limit {
		return []string{line}
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}

	var lines []string
	var current strings.Builder
	currentLen := 0

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		if currentLen > 0 && currentLen+1+wordLen > limit {
			lines = append(lines, current.String())
			current.Reset()
			currentLen = 0
		}
		if currentLen > 0 {
			current.WriteByte(' ')
			currentLen++
		}
		current.WriteString(word)
		currentLen += wordLen
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return lines
}
