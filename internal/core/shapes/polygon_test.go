package shapes

import (
	"math"
	"testing"

	"chosenoffset.com/mirrormaze/internal/core/geom"
)

const eps = 1e-6

func near(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestBuildVertexCounts(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"emitter", Shape{Kind: Emitter}, 3},
		{"receptor", Shape{Kind: Receptor}, ReceptorSides},
		{"triangle", Shape{Kind: Mirror, Variant: Triangle}, 3},
		{"square", Shape{Kind: Mirror, Variant: Square}, 4},
		{"blocker", Shape{Kind: Blocker, Width: 1, Height: 1}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Build(tt.shape)
			if len(p.Vertices) != tt.want || len(p.Edges) != tt.want {
				t.Errorf("Build() = %d vertices / %d edges, want %d", len(p.Vertices), len(p.Edges), tt.want)
			}
		})
	}
}

func TestBuildEdgesCloseAndCarryOwner(t *testing.T) {
	s := Shape{ID: 7, Kind: Mirror, Variant: Square, Center: geom.Point{X: 2.5, Y: 3.5}, Angle: 30}
	p := Build(s)
	for i, e := range p.Edges {
		if e.Owner != 7 || e.Kind != Mirror || e.Index != i {
			t.Errorf("edge %d tagged %+v", i, e)
		}
		if e.A != p.Vertices[i] || e.B != p.Vertices[(i+1)%len(p.Vertices)] {
			t.Errorf("edge %d does not join consecutive vertices", i)
		}
	}
}

func TestEmitterTipPointsAlongAngle(t *testing.T) {
	tests := []struct {
		angle float64
		want  geom.Point
	}{
		{0, geom.Point{X: 0.5, Y: 0.5 + triangleRadius}},
		{90, geom.Point{X: 0.5 + triangleRadius, Y: 0.5}},
		{180, geom.Point{X: 0.5, Y: 0.5 - triangleRadius}},
	}
	for _, tt := range tests {
		p := Build(Shape{Kind: Emitter, Center: geom.Point{X: 0.5, Y: 0.5}, Angle: tt.angle})
		if !near(p.Vertices[0], tt.want) {
			t.Errorf("angle %.0f: tip = %v, want %v", tt.angle, p.Vertices[0], tt.want)
		}
	}
}

func TestSquareIsAxisAlignedAt45(t *testing.T) {
	p := Build(Shape{Kind: Mirror, Variant: Square, Center: geom.Point{X: 0.5, Y: 1}, Angle: 45})
	want := []geom.Point{{X: 0.75, Y: 1.25}, {X: 0.75, Y: 0.75}, {X: 0.25, Y: 0.75}, {X: 0.25, Y: 1.25}}
	for i := range want {
		if !near(p.Vertices[i], want[i]) {
			t.Errorf("vertex %d = %v, want %v", i, p.Vertices[i], want[i])
		}
	}
}

func TestBlockerCorners(t *testing.T) {
	p := Build(Shape{Kind: Blocker, Center: geom.Point{X: 1.5, Y: 1.5}, Width: 1, Height: 0.5})
	want := []geom.Point{{X: 2, Y: 1.75}, {X: 2, Y: 1.25}, {X: 1, Y: 1.25}, {X: 1, Y: 1.75}}
	for i := range want {
		if !near(p.Vertices[i], want[i]) {
			t.Errorf("vertex %d = %v, want %v", i, p.Vertices[i], want[i])
		}
	}
}

func TestReceptorRadius(t *testing.T) {
	c := geom.Point{X: 3.5, Y: 2.5}
	p := Build(Shape{Kind: Receptor, Center: c})
	for i, v := range p.Vertices {
		if d := geom.Distance(c, v); math.Abs(d-receptorRadius) > eps {
			t.Fatalf("vertex %d at distance %f, want %f", i, d, receptorRadius)
		}
	}
}

func TestBuildRotationConsistent(t *testing.T) {
	base := []Shape{
		{Kind: Emitter},
		{Kind: Receptor},
		{Kind: Mirror, Variant: Triangle},
		{Kind: Mirror, Variant: Square},
		{Kind: Blocker, Width: 1, Height: 0.6},
	}
	for _, s := range base {
		for _, angle := range []float64{0, 17, 45, 120, 300} {
			s.Center = geom.Point{X: 4.5, Y: 1.5}
			s.Angle = angle
			a := Build(s)
			s.Angle = angle + 360
			b := Build(s)
			for i := range a.Vertices {
				if !near(a.Vertices[i], b.Vertices[i]) {
					t.Errorf("%s at %.0f°: vertex %d %v != %v after full turn", s.Kind, angle, i, a.Vertices[i], b.Vertices[i])
					break
				}
			}
		}
	}
}

func TestTracked(t *testing.T) {
	tests := []struct {
		shape Shape
		want  bool
	}{
		{Shape{Kind: Mirror, Label: "A"}, true},
		{Shape{Kind: Mirror}, false},
		{Shape{Kind: Blocker, Label: "B"}, true},
		{Shape{Kind: Emitter, Label: "A"}, false},
		{Shape{Kind: Receptor, Label: "A"}, false},
	}
	for _, tt := range tests {
		if got := tt.shape.Tracked(); got != tt.want {
			t.Errorf("Tracked(%s %q) = %v, want %v", tt.shape.Kind, tt.shape.Label, got, tt.want)
		}
	}
}

func TestToken(t *testing.T) {
	s := Shape{Label: "A", Center: geom.Point{X: 2.5, Y: 4.5}}
	if got := s.Token(); got != "A,2,4" {
		t.Errorf("Token() = %q, want %q", got, "A,2,4")
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0}, {360, 0}, {-15, 345}, {725, 5},
	}
	for _, tt := range tests {
		if got := NormalizeDegrees(tt.in); got != tt.want {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
