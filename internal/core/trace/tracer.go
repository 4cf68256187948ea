package trace

import (
	"fmt"

	"chosenoffset.com/mirrormaze/internal/core/geom"
	"chosenoffset.com/mirrormaze/internal/core/scene"
	"chosenoffset.com/mirrormaze/internal/core/shapes"
)

// MaxBounces caps the number of reflections in one trace.
const MaxBounces = 50

// Options tune a trace. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	MaxBounces  int
	RayLength   float64
	MinDistance float64
}

// DefaultOptions returns the standard tracing limits.
func DefaultOptions() Options {
	return Options{
		MaxBounces:  MaxBounces,
		RayLength:   geom.RayLength,
		MinDistance: geom.MinHitDistance,
	}
}

// State is a step of the tracing state machine.
type State int

const (
	Traveling State = iota
	Reflected
	StateAbsorbed
	StateEscaped
	StateBounceLimit
)

// Done reports whether the state is terminal.
func (s State) Done() bool {
	return s == StateAbsorbed || s == StateEscaped || s == StateBounceLimit
}

type edgeRef struct {
	owner, index int
}

var noEdge = edgeRef{owner: -1, index: -1}

type hit struct {
	geom.Intersection
	edge shapes.Edge
}

type tracer struct {
	sc    *scene.Scene
	opts  Options
	path  Path
	ray   geom.Ray
	state State

	first    bool    // still on the ray leaving the emitter
	prevHit  int     // owner of the last edge hit, -1 before any hit
	lastEdge edgeRef // edge the ray just reflected from
	current  hit
}

// Trace follows the ray leaving the scene's first emitter.
//
// A scene without an emitter or receptor yields an empty escaped path and an
// error wrapping scene.ErrMissingSceneElement.
func Trace(sc *scene.Scene, opts Options) (Path, error) {
	if sc == nil || len(sc.Emitters()) == 0 || len(sc.Receptors()) == 0 {
		return Path{Emitter: -1, Outcome: Outcome{Terminal: Escaped}}, fmt.Errorf("trace: %w", scene.ErrMissingSceneElement)
	}
	return TraceEmitter(sc, sc.Emitters()[0], opts)
}

// TraceAll follows every emitter independently, in ID order.
func TraceAll(sc *scene.Scene, opts Options) ([]Path, error) {
	if sc == nil || len(sc.Emitters()) == 0 || len(sc.Receptors()) == 0 {
		return nil, fmt.Errorf("trace: %w", scene.ErrMissingSceneElement)
	}
	var paths []Path
	for _, id := range sc.Emitters() {
		p, err := TraceEmitter(sc, id, opts)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// TraceEmitter follows the ray leaving emitter id.
func TraceEmitter(sc *scene.Scene, id int, opts Options) (Path, error) {
	em, ok := sc.Shape(id)
	if !ok || em.Kind != shapes.Emitter {
		return Path{Emitter: -1, Outcome: Outcome{Terminal: Escaped}}, fmt.Errorf("trace: %w: %d is not an emitter", scene.ErrMissingSceneElement, id)
	}
	if opts.RayLength <= 0 {
		opts.RayLength = geom.RayLength
	}

	t := &tracer{
		sc:       sc,
		opts:     opts,
		path:     Path{Emitter: id},
		ray:      geom.NewRayLength(sc.Polygon(id).Vertices[0], geom.Radians(em.Angle), opts.RayLength),
		state:    Traveling,
		first:    true,
		prevHit:  -1,
		lastEdge: noEdge,
	}
	t.run()
	return t.path, nil
}

func (t *tracer) run() {
	for !t.state.Done() {
		switch t.state {
		case Traveling:
			t.travel()
		case Reflected:
			t.reflect()
		default:
			panic(fmt.Sprintf("trace: unexpected state %d", int(t.state)))
		}
	}
}

// travel finds the next hit along the current ray and decides what it does.
func (t *tracer) travel() {
	h, ok := t.nearest()
	if !ok {
		t.path.Legs = append(t.path.Legs, t.ray.Segment())
		t.path.Outcome = Outcome{Terminal: Escaped}
		t.state = StateEscaped
		return
	}

	t.path.Legs = append(t.path.Legs, geom.Segment{A: t.ray.Origin, B: h.Point})
	if h.edge.Owner != t.prevHit {
		if sh, _ := t.sc.Shape(h.edge.Owner); sh.Tracked() {
			t.path.Tokens = append(t.path.Tokens, sh.Token())
		}
	}
	t.prevHit = h.edge.Owner
	t.current = h

	if h.edge.Kind.Absorbs() {
		t.path.Outcome = AbsorbedBy(h.edge.Kind)
		t.state = StateAbsorbed
		return
	}
	if t.path.Bounces >= t.opts.MaxBounces {
		t.path.Outcome = Outcome{Terminal: BounceLimitReached}
		t.state = StateBounceLimit
		return
	}
	t.state = Reflected
}

// reflect turns the ray at the current hit and sends it on.
func (t *tracer) reflect() {
	h := t.current
	angle := geom.Reflect(t.ray.Angle, h.Angle)
	t.ray = geom.NewRayLength(h.Point, angle, t.opts.RayLength)
	t.lastEdge = edgeRef{owner: h.edge.Owner, index: h.edge.Index}
	t.first = false
	t.path.Bounces++
	t.state = Traveling
}

// nearest returns the closest valid hit along the current ray. Ties keep the
// edge that comes first in scene order.
func (t *tracer) nearest() (hit, bool) {
	ray := t.ray.Segment()
	var best hit
	found := false
	for _, poly := range t.sc.Polygons() {
		if t.first && poly.Owner == t.path.Emitter {
			continue
		}
		for _, e := range poly.Edges {
			if e.Owner == t.lastEdge.owner && e.Index == t.lastEdge.index {
				continue
			}
			in, ok := geom.Intersect(ray, e.Segment)
			if !ok || in.Distance <= t.opts.MinDistance {
				continue
			}
			if !found || in.Distance < best.Distance {
				best = hit{Intersection: in, edge: e}
				found = true
			}
		}
	}
	return best, found
}
