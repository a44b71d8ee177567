package subtitle

import (
	"errors"
	"fmt"
	"strings"
)

// supported subtitle output formats
type Format string

const (
	FormatSRT  Format = "srt"
	FormatVTT  Format = "vtt"
	FormatASS  Format = "ass"
	FormatJSON Format = "json"
)

var (
	// required segments or word segments are missing
	ErrEmptyInput = errors.New("alignment data is empty")

	// negative or otherwise unrepresentable timestamp
	ErrInvalidTime = errors.New("invalid timestamp")

	// grouped-word window size below one
	ErrInvalidWindow = errors.New("invalid window size")

	// requested format or option combination is not implemented
	ErrUnsupportedFormat = errors.New("unsupported subtitle format")
)

// ParseFormat maps a user supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatSRT:
		return FormatSRT, nil
	case FormatVTT:
		return FormatVTT, nil
	case FormatASS:
		return FormatASS, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q (use srt, vtt, ass, or json)", ErrUnsupportedFormat, s)
	}
}

// Extension returns the file extension for the format, dot included.
func (f Format) Extension() string {
	switch f {
	case FormatSRT:
		return ".srt"
	case FormatVTT:
		return ".vtt"
	case FormatASS:
		return ".ass"
	case FormatJSON:
		return ".json"
	default:
		return ".srt"
	}
}

// File is the output record handed to the persistence layer.
type File struct {
	Path      string
	Format    Format
	Content   string
	WordCount int
	Duration  float64
}
