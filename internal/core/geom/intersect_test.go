package geom

import (
	"math"
	"testing"
)

const eps = 1e-6

func seg(ax, ay, bx, by float64) Segment {
	return Segment{A: Point{ax, ay}, B: Point{bx, by}}
}

func TestIntersectAnalytic(t *testing.T) {
	tests := []struct {
		name string
		a, b Segment
		want Point
	}{
		{"diagonals", seg(0, 0, 4, 4), seg(0, 4, 4, 0), Point{2, 2}},
		{"a vertical", seg(1, -5, 1, 5), seg(0, 0, 3, 3), Point{1, 1}},
		{"b vertical", seg(0, 1, 4, 3), seg(2, -1, 2, 5), Point{2, 2}},
		{"a vertical b horizontal", seg(0.5, 0.8, 0.5, 100.8), seg(1, 3, 0, 3), Point{0.5, 3}},
		{"shallow", seg(0, 0, 10, 1), seg(3, -2, 7, 4), Point{6.5 / 1.4, 0.65 / 1.4}},
		{"endpoint touch", seg(0, 0, 2, 2), seg(2, 2, 4, 0), Point{2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.want
			hit, ok := Intersect(tt.a, tt.b)
			if !ok {
				t.Fatalf("Intersect(%v, %v) found nothing, want %v", tt.a, tt.b, want)
			}
			if math.Abs(hit.Point.X-want.X) > eps || math.Abs(hit.Point.Y-want.Y) > eps {
				t.Errorf("Intersect point = %v, want %v", hit.Point, want)
			}
			if d := Distance(tt.a.A, want); math.Abs(hit.Distance-d) > eps {
				t.Errorf("Distance = %f, want %f", hit.Distance, d)
			}
		})
	}
}

func TestIntersectMisses(t *testing.T) {
	tests := []struct {
		name string
		a, b Segment
	}{
		{"parallel", seg(0, 0, 4, 4), seg(0, 1, 4, 5)},
		{"collinear", seg(0, 0, 4, 4), seg(1, 1, 3, 3)},
		{"both vertical", seg(1, 0, 1, 5), seg(2, 0, 2, 5)},
		{"same vertical", seg(1, 0, 1, 5), seg(1, 2, 1, 8)},
		{"both horizontal", seg(0, 1, 5, 1), seg(0, 2, 5, 2)},
		{"outside a", seg(0, 0, 1, 1), seg(0, 4, 4, 0)},
		{"outside b", seg(0, 0, 4, 4), seg(0, 4, 1, 3)},
		{"vertical a outside range", seg(1, 5, 1, 9), seg(0, 0, 3, 3)},
		{"vertical b outside range", seg(0, 1, 4, 3), seg(2, 3, 2, 8)},
		{"degenerate a", seg(1, 1, 1, 1), seg(0, 0, 2, 2)},
		{"degenerate b", seg(0, 2, 2, 0), seg(1, 1, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, ok := Intersect(tt.a, tt.b); ok {
				t.Errorf("Intersect(%v, %v) = %v, want no hit", tt.a, tt.b, hit)
			}
		})
	}
}

func TestIntersectRoundsNearVertical(t *testing.T) {
	// sin(π) is not exactly zero; the ray must still count as vertical.
	r := NewRay(Point{0.5, 5}, math.Pi)
	hit, ok := Intersect(r.Segment(), seg(0, 2, 1, 2))
	if !ok {
		t.Fatal("expected hit on horizontal edge below the origin")
	}
	if math.Abs(hit.Point.Y-2) > eps || math.Abs(hit.Distance-3) > eps {
		t.Errorf("hit = %+v, want (0.5, 2) at distance 3", hit)
	}
}

// reflectLaw is the law of reflection written in the grid angle convention
// (0 along +Y, growing towards +X) for an edge at math angle psi.
func reflectLaw(theta, psi float64) float64 {
	return NormalizeRadians(math.Pi - theta - 2*psi)
}

func angleDiff(a, b float64) float64 {
	d := math.Abs(NormalizeRadians(a) - NormalizeRadians(b))
	return math.Min(d, 2*math.Pi-d)
}

func TestReflectMatchesLawOfReflection(t *testing.T) {
	edges := []Segment{
		seg(-1, -1, 1, 1),
		seg(-1, 1, 1, -1),
		seg(-1, 0, 1, 0),
		seg(0, -1, 0, 1),
		seg(-1, -0.3, 1, 0.3),
		seg(-0.2, -1, 0.2, 1),
		seg(-1, 0.577, 1, -0.577),
	}
	for _, e := range edges {
		psi := math.Atan2(e.B.Y-e.A.Y, e.B.X-e.A.X)
		for deg := 5.0; deg < 360; deg += 10 {
			theta := Radians(deg)
			origin := Point{}.Add(Direction(theta+math.Pi, 3))
			hit, ok := Intersect(NewRay(origin, theta).Segment(), e)
			if !ok {
				continue
			}
			got := Reflect(theta, hit.Angle)
			want := reflectLaw(theta, psi)
			if angleDiff(got, want) > 1e-9 {
				t.Errorf("edge %v, ray %.0f°: reflect = %.6f, law = %.6f", e, deg, got, want)
			}
		}
	}
}

func TestReflectPerpendicularReverses(t *testing.T) {
	r := NewRay(Point{0.5, 0}, 0)
	hit, ok := Intersect(r.Segment(), seg(0, 2, 1, 2))
	if !ok {
		t.Fatal("expected hit")
	}
	if got := Reflect(r.Angle, hit.Angle); angleDiff(got, math.Pi) > 1e-9 {
		t.Errorf("Reflect = %f, want π", got)
	}
}

func TestNormalizeRadians(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{2 * math.Pi, 0},
	}
	for _, tt := range tests {
		if got := NormalizeRadians(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("NormalizeRadians(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
