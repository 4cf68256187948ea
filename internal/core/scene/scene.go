// Package scene holds an immutable snapshot of one puzzle board.
//
// A Scene is never modified after construction. Move and Rotate return a new
// snapshot with freshly built polygons, so a trace always sees one consistent
// board.
package scene

import (
	"errors"
	"fmt"

	"chosenoffset.com/mirrormaze/internal/core/geom"
	"chosenoffset.com/mirrormaze/internal/core/shapes"
)

var (
	// ErrMissingSceneElement means the board has no emitter or no receptor.
	ErrMissingSceneElement = errors.New("scene has no emitter or receptor")
	ErrInvalidBoard        = errors.New("invalid board")
	ErrUnknownShape        = errors.New("unknown shape")
	ErrImmovable           = errors.New("shape is not movable")
)

// Description is the declarative input for a scene.
type Description struct {
	Cols, Rows             int
	Shapes                 []shapes.Shape
	ExpectedSolutionLength int
}

// Scene is one immutable board snapshot.
type Scene struct {
	cols, rows int
	expected   int
	shapes     []shapes.Shape
	polygons   []shapes.Polygon
}

// New validates a description and builds its first snapshot. Shape IDs are
// reassigned to the shapes' positions in the description.
func New(d Description) (*Scene, error) {
	if d.Cols <= 0 || d.Rows <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidBoard, d.Cols, d.Rows)
	}
	if d.ExpectedSolutionLength < 0 {
		return nil, fmt.Errorf("%w: expected solution length %d", ErrInvalidBoard, d.ExpectedSolutionLength)
	}

	list := make([]shapes.Shape, len(d.Shapes))
	var emitters, receptors int
	for i, s := range d.Shapes {
		s.ID = i
		s.Angle = shapes.NormalizeDegrees(s.Angle)
		switch s.Kind {
		case shapes.Emitter:
			emitters++
		case shapes.Receptor:
			receptors++
		case shapes.Blocker:
			if s.Width <= 0 || s.Height <= 0 {
				return nil, fmt.Errorf("%w: blocker %d has size %gx%g", ErrInvalidBoard, i, s.Width, s.Height)
			}
		case shapes.Mirror:
			if s.Variant != shapes.Triangle && s.Variant != shapes.Square {
				return nil, fmt.Errorf("%w: mirror %d has variant %d", ErrInvalidBoard, i, int(s.Variant))
			}
		default:
			return nil, fmt.Errorf("%w: shape %d has kind %d", ErrInvalidBoard, i, int(s.Kind))
		}
		list[i] = s
	}
	if emitters == 0 || receptors == 0 {
		return nil, ErrMissingSceneElement
	}

	return build(d.Cols, d.Rows, d.ExpectedSolutionLength, list), nil
}

func build(cols, rows, expected int, list []shapes.Shape) *Scene {
	polys := make([]shapes.Polygon, len(list))
	for i, s := range list {
		polys[i] = shapes.Build(s)
	}
	return &Scene{cols: cols, rows: rows, expected: expected, shapes: list, polygons: polys}
}

// Size returns the board dimensions in cells.
func (s *Scene) Size() (cols, rows int) {
	return s.cols, s.rows
}

// ExpectedSolutionLength is the number of path tokens a solution has.
func (s *Scene) ExpectedSolutionLength() int {
	return s.expected
}

// Len returns the number of shapes.
func (s *Scene) Len() int {
	return len(s.shapes)
}

// Shape returns the shape with the given ID.
func (s *Scene) Shape(id int) (shapes.Shape, bool) {
	if id < 0 || id >= len(s.shapes) {
		return shapes.Shape{}, false
	}
	return s.shapes[id], true
}

// Shapes returns a copy of all shapes in ID order.
func (s *Scene) Shapes() []shapes.Shape {
	out := make([]shapes.Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// Polygon returns the outline of the shape with the given ID. The returned
// slices are shared with the snapshot and must not be modified.
func (s *Scene) Polygon(id int) shapes.Polygon {
	return s.polygons[id]
}

// Polygons returns the outlines of all shapes in ID order. The returned slices
// are shared with the snapshot and must not be modified.
func (s *Scene) Polygons() []shapes.Polygon {
	return s.polygons
}

// Emitters returns the IDs of all emitters in ID order.
func (s *Scene) Emitters() []int {
	return s.idsOf(shapes.Emitter)
}

// Receptors returns the IDs of all receptors in ID order.
func (s *Scene) Receptors() []int {
	return s.idsOf(shapes.Receptor)
}

func (s *Scene) idsOf(kind shapes.Kind) []int {
	var ids []int
	for _, sh := range s.shapes {
		if sh.Kind == kind {
			ids = append(ids, sh.ID)
		}
	}
	return ids
}

// InBounds reports whether p lies on the board.
func (s *Scene) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < float64(s.cols) && p.Y < float64(s.rows)
}

// Occupant returns the ID of the shape whose centre is in cell (x, y).
func (s *Scene) Occupant(x, y int) (int, bool) {
	for _, sh := range s.shapes {
		cx, cy := sh.Cell()
		if cx == x && cy == y {
			return sh.ID, true
		}
	}
	return 0, false
}
