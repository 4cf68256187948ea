package shapes

import (
	"fmt"
	"math"

	"chosenoffset.com/mirrormaze/internal/core/geom"
)

const (
	// MirrorSize is the nominal side of a mirror relative to a cell.
	MirrorSize = 0.5

	// ReceptorSides approximates the receptor disk.
	ReceptorSides = 256
)

var (
	triangleRadius = math.Sqrt(3) / 2.5 * MirrorSize
	squareRadius   = math.Sqrt(2*MirrorSize*MirrorSize) / 2
	receptorRadius = 1.1 * triangleRadius

	triangleOffsets = []float64{0, 2 * math.Pi / 3, 4 * math.Pi / 3}
	squareOffsets   = []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}
	receptorOffsets = func() []float64 {
		offs := make([]float64, ReceptorSides)
		for k := range offs {
			offs[k] = float64(k) * math.Pi / 128
		}
		return offs
	}()
)

// Edge is one side of a polygon.
type Edge struct {
	geom.Segment
	Owner int  // ID of the owning shape
	Kind  Kind // kind of the owning shape
	Index int  // position within the polygon
}

// Polygon is the closed outline of a shape.
type Polygon struct {
	Owner    int
	Kind     Kind
	Vertices []geom.Point
	Edges    []Edge
}

// Build computes the polygon for a shape at its current centre and angle.
func Build(s Shape) Polygon {
	angle := geom.Radians(s.Angle)

	var radius float64
	var offsets []float64
	switch s.Kind {
	case Emitter:
		radius, offsets = triangleRadius, triangleOffsets
	case Receptor:
		radius, offsets = receptorRadius, receptorOffsets
	case Blocker:
		radius, offsets = blockerTemplate(s.Width, s.Height)
	case Mirror:
		switch s.Variant {
		case Triangle:
			radius, offsets = triangleRadius, triangleOffsets
		case Square:
			radius, offsets = squareRadius, squareOffsets
		default:
			panic(fmt.Sprintf("shapes: unknown mirror variant %d", int(s.Variant)))
		}
	default:
		panic(fmt.Sprintf("shapes: unknown kind %d", int(s.Kind)))
	}

	vertices := make([]geom.Point, len(offsets))
	for i, off := range offsets {
		vertices[i] = s.Center.Add(geom.Direction(angle+off, radius))
	}

	edges := make([]Edge, len(vertices))
	for i := range vertices {
		edges[i] = Edge{
			Segment: geom.Segment{A: vertices[i], B: vertices[(i+1)%len(vertices)]},
			Owner:   s.ID,
			Kind:    s.Kind,
			Index:   i,
		}
	}

	return Polygon{Owner: s.ID, Kind: s.Kind, Vertices: vertices, Edges: edges}
}

// blockerTemplate returns the half diagonal and corner offsets of a
// width x height rectangle.
func blockerTemplate(width, height float64) (float64, []float64) {
	d := math.Hypot(width, height) / 2
	a := math.Atan(width / height)
	return d, []float64{a, math.Pi - a, math.Pi + a, -a}
}
