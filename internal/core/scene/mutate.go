package scene

import (
	"fmt"

	"chosenoffset.com/mirrormaze/internal/core/geom"
	"chosenoffset.com/mirrormaze/internal/core/shapes"
)

// Move returns a snapshot with shape id centred at p. The receiver is left
// untouched.
func (s *Scene) Move(id int, p geom.Point) (*Scene, error) {
	return s.update(id, func(sh *shapes.Shape) {
		sh.Center = p
	})
}

// Rotate returns a snapshot with shape id turned by delta degrees.
func (s *Scene) Rotate(id int, delta float64) (*Scene, error) {
	return s.update(id, func(sh *shapes.Shape) {
		sh.Angle = shapes.NormalizeDegrees(sh.Angle + delta)
	})
}

// SetAngle returns a snapshot with shape id at an absolute angle.
func (s *Scene) SetAngle(id int, deg float64) (*Scene, error) {
	return s.update(id, func(sh *shapes.Shape) {
		sh.Angle = shapes.NormalizeDegrees(deg)
	})
}

func (s *Scene) update(id int, fn func(*shapes.Shape)) (*Scene, error) {
	if id < 0 || id >= len(s.shapes) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, id)
	}
	if !s.shapes[id].Movable {
		return nil, fmt.Errorf("%w: %d", ErrImmovable, id)
	}

	list := make([]shapes.Shape, len(s.shapes))
	copy(list, s.shapes)
	fn(&list[id])

	polys := make([]shapes.Polygon, len(s.polygons))
	copy(polys, s.polygons)
	polys[id] = shapes.Build(list[id])

	return &Scene{cols: s.cols, rows: s.rows, expected: s.expected, shapes: list, polygons: polys}, nil
}
