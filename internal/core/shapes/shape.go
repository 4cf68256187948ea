// Package shapes turns declarative puzzle objects into polygons.
package shapes

import (
	"fmt"
	"math"

	"chosenoffset.com/mirrormaze/internal/core/geom"
)

// Kind identifies what a shape does to light.
type Kind int

const (
	Emitter Kind = iota
	Receptor
	Mirror
	Blocker
)

func (k Kind) String() string {
	switch k {
	case Emitter:
		return "emitter"
	case Receptor:
		return "receptor"
	case Mirror:
		return "mirror"
	case Blocker:
		return "blocker"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Absorbs reports whether edges of this kind stop the ray.
func (k Kind) Absorbs() bool {
	switch k {
	case Emitter, Receptor, Blocker:
		return true
	case Mirror:
		return false
	default:
		panic(fmt.Sprintf("shapes: unknown kind %d", int(k)))
	}
}

// Variant is the outline of a mirror.
type Variant int

const (
	Triangle Variant = iota
	Square
)

func (v Variant) String() string {
	switch v {
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Shape is one object on the board.
type Shape struct {
	ID      int
	Kind    Kind
	Variant Variant // mirrors only
	Center  geom.Point
	Angle   float64 // degrees, always in [0, 360)
	Label   string
	Color   string // cosmetic
	Movable bool

	// Blocker dimensions in grid units.
	Width, Height float64
}

// Cell returns the grid cell containing the shape's centre.
func (s Shape) Cell() (int, int) {
	return int(math.Floor(s.Center.X)), int(math.Floor(s.Center.Y))
}

// Token is the path entry recorded when the ray touches this shape.
func (s Shape) Token() string {
	x, y := s.Cell()
	return fmt.Sprintf("%s,%d,%d", s.Label, x, y)
}

// Tracked reports whether touching the shape adds to the solution path:
// it must carry a label and be neither the emitter nor the receptor.
func (s Shape) Tracked() bool {
	return s.Label != "" && s.Kind != Emitter && s.Kind != Receptor
}

// NormalizeDegrees maps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
