package subtitle

import (
	"fmt"
	"math"
	"strings"

	"github.com/vietthanhnv/lyrics-master-sub001/internal/align"
)

// shortest visible highlight, in centiseconds
const minKaraokeCentis = 10

// KaraokeDuration returns the word's highlight duration in centiseconds,
// floored to the minimum visible duration.
func KaraokeDuration(word align.WordSegment) int {
	cs := int(math.Round((word.EndTime - word.StartTime) * 100))
	if cs < minKaraokeCentis {
		cs = minKaraokeCentis
	}
	return cs
}

// KaraokeLine assembles the ASS karaoke tag sequence for one segment's
// words: {\k<centiseconds>}<word> joined by single spaces. Highlight timing
// is relative to the owning segment's start, which is what the \k tag
// expects.
func KaraokeLine(words []align.WordSegment) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, fmt.Sprintf(
			"{\\k%d}%s",
			KaraokeDuration(w),
			SanitizeASS(w.Word),
		))
	}
	return strings.Join(parts, " ")
}
