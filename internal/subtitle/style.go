package subtitle

import (
	"fmt"
	"strconv"
	"strings"
)

// Style holds the ASS rendering configuration. Colors accept #RGB or
// #RRGGBB hex values, or pre-encoded ASS &H.. values which pass through
// untouched.
type Style struct {
	FontName       string
	FontSize       int
	PrimaryColor   string
	SecondaryColor string
	OutlineColor   string
	BackColor      string
	Bold           bool
	Italic         bool
	Alignment      int // numpad alignment code, 2 = bottom center
	MarginL        int
	MarginR        int
	MarginV        int
	Outline        int
	Shadow         int
	FadeMillis     int // fade in/out for sentence mode
}

// DefaultStyle returns the documented style defaults.
func DefaultStyle() Style {
	return Style{
		FontName:       "Arial",
		FontSize:       24,
		PrimaryColor:   "#FFFFFF",
		SecondaryColor: "#FFFF00",
		OutlineColor:   "#000000",
		BackColor:      "#000000",
		Alignment:      2,
		MarginL:        10,
		MarginR:        10,
		MarginV:        20,
		Outline:        2,
		Shadow:         1,
		FadeMillis:     300,
	}
}

// StyleOverrides carries optional per-call replacements for Style fields.
// Nil fields keep the base value.
type StyleOverrides struct {
	FontName       *string
	FontSize       *int
	PrimaryColor   *string
	SecondaryColor *string
	OutlineColor   *string
	BackColor      *string
	Bold           *bool
	Italic         *bool
	Alignment      *int
	MarginL        *int
	MarginR        *int
	MarginV        *int
	Outline        *int
	Shadow         *int
	FadeMillis     *int
}

// Merge applies the non-nil override fields on top of the base style and
// returns the result. The base is never mutated.
func (s Style) Merge(o *StyleOverrides) Style {
	if o == nil {
		return s
	}
	if o.FontName != nil {
		s.FontName = *o.FontName
	}
	if o.FontSize != nil {
		s.FontSize = *o.FontSize
	}
	if o.PrimaryColor != nil {
		s.PrimaryColor = *o.PrimaryColor
	}
	if o.SecondaryColor != nil {
		s.SecondaryColor = *o.SecondaryColor
	}
	if o.OutlineColor != nil {
		s.OutlineColor = *o.OutlineColor
	}
	if o.BackColor != nil {
		s.BackColor = *o.BackColor
	}
	if o.Bold != nil {
		s.Bold = *o.Bold
	}
	if o.Italic != nil {
		s.Italic = *o.Italic
	}
	if o.Alignment != nil {
		s.Alignment = *o.Alignment
	}
	if o.MarginL != nil {
		s.MarginL = *o.MarginL
	}
	if o.MarginR != nil {
		s.MarginR = *o.MarginR
	}
	if o.MarginV != nil {
		s.MarginV = *o.MarginV
	}
	if o.Outline != nil {
		s.Outline = *o.Outline
	}
	if o.Shadow != nil {
		s.Shadow = *o.Shadow
	}
	if o.FadeMillis != nil {
		s.FadeMillis = *o.FadeMillis
	}
	return s
}

// ASSColor converts a color value to ASS's &H00BBGGRR encoding. ASS stores
// bytes in blue-green-red order, the reverse of hex RGB. Values already in
// &H form pass through; unparseable values fall back to white.
func ASSColor(value string) string {
	v := strings.TrimSpace(value)
	if strings.HasPrefix(v, "&H") || strings.HasPrefix(v, "&h") {
		return v
	}

	hex := strings.TrimPrefix(v, "#")
	if len(hex) == 3 {
		hex = string([]byte{
			hex[0], hex[0],
			hex[1], hex[1],
			hex[2], hex[2],
		})
	}
	if len(hex) != 6 {
		return "&H00FFFFFF"
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "&H00FFFFFF"
	}

	r := rgb >> 16 & 0xFF
	g := rgb >> 8 & 0xFF
	b := rgb & 0xFF

	return fmt.Sprintf("&H00%02X%02X%02X", b, g, r)
}
