package geom

import "math"

// line returns the slope and intercept of the infinite line through s.
// Vertical lines have a NaN slope and carry their constant X in b.
func line(s Segment) (m, b float64) {
	if Round8(s.A.X) == Round8(s.B.X) {
		return math.NaN(), s.A.X
	}
	m = (s.B.Y - s.A.Y) / (s.B.X - s.A.X)
	return m, s.A.Y - m*s.A.X
}

func degenerate(s Segment) bool {
	return Round8(s.A.X) == Round8(s.B.X) && Round8(s.A.Y) == Round8(s.B.Y)
}

// Intersect tests segment a (usually a ray) against segment b.
//
// The returned angle is the incidence of a on b and the distance is measured
// from a.A. Parallel, collinear and zero-length segments never intersect.
func Intersect(a, b Segment) (Intersection, bool) {
	if degenerate(a) || degenerate(b) {
		return Intersection{}, false
	}

	ma, ba := line(a)
	mb, bb := line(b)
	aVertical := math.IsNaN(ma)
	bVertical := math.IsNaN(mb)

	var x, y, angle float64
	switch {
	case aVertical && bVertical:
		return Intersection{}, false

	case aVertical:
		x = ba
		y = mb*x + bb
		if !within(x, b.A.X, b.B.X) || !within(y, a.A.Y, a.B.Y) {
			return Intersection{}, false
		}
		angle = math.Atan(1 / mb)

	case bVertical:
		x = bb
		y = ma*x + ba
		if !within(y, b.A.Y, b.B.Y) || !within(x, a.A.X, a.B.X) {
			return Intersection{}, false
		}
		angle = math.Atan(ma) + math.Pi/2

	default:
		if Round8(ma) == Round8(mb) {
			return Intersection{}, false
		}
		x = (bb - ba) / (ma - mb)
		y = ma*x + ba
		if !within(x, a.A.X, a.B.X) || !within(x, b.A.X, b.B.X) {
			return Intersection{}, false
		}
		angle = math.Atan((ma - mb) / (1 + ma*mb))
	}

	p := Point{X: x, Y: y}
	return Intersection{
		Point:    p,
		Angle:    angle,
		Distance: Distance(a.A, p),
	}, true
}

// Reflect returns the outgoing direction of a ray travelling at angle after
// hitting an edge with the given incidence angle. Each quarter turn of
// incidence becomes a half turn of direction.
func Reflect(angle, incidence float64) float64 {
	return NormalizeRadians(angle + math.Pi*(incidence/(math.Pi/2)))
}
