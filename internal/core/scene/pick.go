package scene

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"

	"chosenoffset.com/mirrormaze/internal/core/geom"
	"chosenoffset.com/mirrormaze/internal/core/shapes"
)

// ShapeAt returns the topmost shape whose outline contains p, expanded by
// slop grid units. Later shapes are drawn on top of earlier ones.
func (s *Scene) ShapeAt(p geom.Point, slop float64) (shapes.Shape, bool) {
	q := v2.Vec{X: p.X, Y: p.Y}
	for i := len(s.polygons) - 1; i >= 0; i-- {
		outline, err := outlineSDF(s.polygons[i])
		if err != nil {
			continue
		}
		if outline.Evaluate(q) <= slop {
			return s.shapes[i], true
		}
	}
	return shapes.Shape{}, false
}

// outlineSDF converts a polygon into a signed distance field: negative
// inside, positive outside.
func outlineSDF(p shapes.Polygon) (sdf.SDF2, error) {
	verts := make([]v2.Vec, len(p.Vertices))
	for i, v := range p.Vertices {
		verts[i] = v2.Vec{X: v.X, Y: v.Y}
	}
	return sdf.Polygon2D(verts)
}
