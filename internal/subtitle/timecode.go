package subtitle

import (
	"fmt"
	"math"
)

// nudges values sitting a hair below a half step, so 1.2345 (stored as
// 1.23449999...) still rounds up to 1235 milliseconds
const roundingEpsilon = 1e-6

// FormatSRTTime renders seconds as the SRT timestamp HH:MM:SS,mmm.
// The value is rounded to millisecond precision before decomposition so
// 1.2345 becomes ,235 rather than a truncated ,234.
func FormatSRTTime(seconds float64) (string, error) {
	h, m, s, ms, err := splitMillis(seconds)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms), nil
}

// FormatVTTTime renders seconds as the WebVTT timestamp HH:MM:SS.mmm.
func FormatVTTTime(seconds float64) (string, error) {
	h, m, s, ms, err := splitMillis(seconds)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms), nil
}

// FormatASSTime renders seconds as the ASS timestamp H:MM:SS.cc, rounded
// to centisecond precision. The hour field is not zero padded and not
// clamped, matching what ASS renderers accept.
func FormatASSTime(seconds float64) (string, error) {
	if seconds < 0 {
		return "", fmt.Errorf("%w: %.3f seconds", ErrInvalidTime, seconds)
	}

	totalCentis := int64(math.Round(seconds*100 + roundingEpsilon))
	h := totalCentis / 360000
	m := totalCentis / 6000 % 60
	s := totalCentis / 100 % 60
	cs := totalCentis % 100

	return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, cs), nil
}

func splitMillis(seconds float64) (h, m, s, ms int64, err error) {
	if seconds < 0 {
		return 0, 0, 0, 0, fmt.Errorf(
			"%w: %.3f seconds",
			ErrInvalidTime,
			seconds,
		)
	}

	totalMillis := int64(math.Round(seconds*1000 + roundingEpsilon))
	h = totalMillis / 3600000
	m = totalMillis / 60000 % 60
	s = totalMillis / 1000 % 60
	ms = totalMillis % 1000

	return h, m, s, ms, nil
}
