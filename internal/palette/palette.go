// Package palette holds the colours shared by the window, preview and
// terminal renderers.
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"chosenoffset.com/mirrormaze/internal/core/shapes"
)

var (
	Background = color.RGBA{18, 18, 28, 255}
	Grid       = color.RGBA{48, 48, 64, 255}
	Beam       = color.RGBA{255, 70, 70, 255}
	SolvedBeam = color.RGBA{255, 215, 0, 255}
	Highlight  = color.RGBA{255, 255, 255, 255}
)

// ShapeColor resolves the colour named by a puzzle file, falling back to a
// per-kind default.
func ShapeColor(s shapes.Shape) color.RGBA {
	if c, ok := ParseColor(s.Color); ok {
		return c
	}
	return KindColor(s.Kind)
}

// KindColor is the default colour for shapes of kind k.
func KindColor(k shapes.Kind) color.RGBA {
	switch k {
	case shapes.Emitter:
		return colornames.Orangered
	case shapes.Receptor:
		return colornames.Limegreen
	case shapes.Mirror:
		return colornames.Lightsteelblue
	case shapes.Blocker:
		return colornames.Dimgray
	default:
		panic(fmt.Sprintf("palette: unknown shape kind %d", int(k)))
	}
}

// ParseColor accepts "#rgb", "#rrggbb" or an SVG colour name.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return color.RGBA{}, false
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[s]
		return c, ok
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
