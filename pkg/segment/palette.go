package segment

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an opaque color token in "#RRGGBB" form.
type Color string

// Palette is an ordered list of colors assigned cyclically to segments.
type Palette []Color

var defaultPalette = Palette{
	"#FFB6C1", // light pink
	"#87CEFA", // light sky blue
	"#90EE90", // light green
	"#FFA500", // orange
	"#BA55D3", // medium orchid
	"#F08080", // light coral
	"#7B68EE", // medium slate blue
	"#20B2AA", // light sea green
	"#FF6347", // tomato
	"#7FFF00", // chartreuse
}

// DefaultPalette returns a copy of the built-in ten color palette.
func DefaultPalette() Palette {
	return append(Palette(nil), defaultPalette...)
}

// At returns the palette color for segment index i, wrapping around.
// An empty palette falls back to the default one.
func (p Palette) At(i int) Color {
	if len(p) == 0 {
		p = defaultPalette
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

// ParseColor normalizes a user supplied color into "#RRGGBB".
// The leading '#' is optional and the short "#RGB" form is expanded.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return "", fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return "", fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color("#" + strings.ToUpper(hex)), nil
}

// NRGBA converts the token into an opaque color for renderers.
// Malformed tokens render as opaque black.
func (c Color) NRGBA() color.NRGBA {
	parsed, err := ParseColor(string(c))
	if err != nil {
		return color.NRGBA{A: 255}
	}
	v, _ := strconv.ParseUint(string(parsed[1:]), 16, 32)
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}
