// Package geom holds the 2D primitives the tracer works with: points,
// segments, rays and the segment intersection test.
package geom

import "math"

// Point represents a 2D point in grid units. One grid cell is 1.0 wide.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Segment represents a line segment between two points.
type Segment struct {
	A, B Point
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return Distance(s.A, s.B)
}

// RayLength is how far a ray reaches from its origin. Boards are at most
// tens of cells wide, so this is effectively infinite.
const RayLength = 100.0

// Ray is a half-line approximated by a long segment starting at Origin.
// Angle is in radians; 0 points along +Y and angles grow towards +X.
type Ray struct {
	Origin Point
	Angle  float64
	End    Point
}

// NewRay creates a ray of RayLength from origin in the given direction.
func NewRay(origin Point, angle float64) Ray {
	return NewRayLength(origin, angle, RayLength)
}

// NewRayLength creates a ray with an explicit reach.
func NewRayLength(origin Point, angle, length float64) Ray {
	return Ray{
		Origin: origin,
		Angle:  angle,
		End:    origin.Add(Direction(angle, length)),
	}
}

// Segment returns the ray as a segment from its origin to its far end.
func (r Ray) Segment() Segment {
	return Segment{A: r.Origin, B: r.End}
}

// Intersection is the result of a successful segment test.
type Intersection struct {
	Point    Point
	Angle    float64 // incidence angle of the first segment on the second, radians
	Distance float64 // distance from the first segment's start point
}

// Direction returns the offset of length r in direction angle, using the
// grid convention (sin for X, cos for Y).
func Direction(angle, r float64) Point {
	return Point{X: r * math.Sin(angle), Y: r * math.Cos(angle)}
}
