package tui

import (
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/mirrormaze/internal/core/scene"
	"chosenoffset.com/mirrormaze/internal/core/shapes"
	"chosenoffset.com/mirrormaze/internal/core/trace"
	"chosenoffset.com/mirrormaze/internal/palette"
)

const (
	emptyGlyph = '.'
	beamGlyph  = '*'
	beamStep   = 0.1 // board units between beam samples
)

// Glyphs renders the board as one rune per cell, row 0 first. Shapes win
// over the beam.
func Glyphs(sc *scene.Scene, path trace.Path) [][]rune {
	cols, rows := sc.Size()
	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = make([]rune, cols)
		for x := range grid[y] {
			grid[y][x] = emptyGlyph
		}
	}

	for _, leg := range path.Legs {
		n := int(math.Ceil(leg.Length() / beamStep))
		for i := 0; i <= n; i++ {
			t := 0.0
			if n > 0 {
				t = float64(i) / float64(n)
			}
			x := int(math.Floor(leg.A.X + (leg.B.X-leg.A.X)*t))
			y := int(math.Floor(leg.A.Y + (leg.B.Y-leg.A.Y)*t))
			if x < 0 || y < 0 || x >= cols || y >= rows {
				continue
			}
			grid[y][x] = beamGlyph
		}
	}

	for _, sh := range sc.Shapes() {
		x, y := sh.Cell()
		if x < 0 || y < 0 || x >= cols || y >= rows {
			continue
		}
		grid[y][x] = Glyph(sh)
	}
	return grid
}

// Glyph is the rune drawn for a shape: its label's first rune, or a
// per-kind mark for unlabelled shapes.
func Glyph(sh shapes.Shape) rune {
	if sh.Label != "" {
		r, _ := utf8.DecodeRuneInString(sh.Label)
		return r
	}
	switch sh.Kind {
	case shapes.Emitter:
		return '>'
	case shapes.Receptor:
		return '@'
	case shapes.Mirror:
		if sh.Variant == shapes.Square {
			return '#'
		}
		return '^'
	case shapes.Blocker:
		return 'X'
	default:
		panic("tui: unknown shape kind " + sh.Kind.String())
	}
}

func shapeStyle(sh shapes.Shape) tcell.Style {
	c := palette.ShapeColor(sh)
	return tcell.StyleDefault.Bold(true).Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
