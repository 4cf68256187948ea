// Package trace marches a light ray across a scene.
package trace

import (
	"fmt"
	"strings"

	"chosenoffset.com/mirrormaze/internal/core/geom"
	"chosenoffset.com/mirrormaze/internal/core/shapes"
)

// Terminal is how a trace ended.
type Terminal int

const (
	Escaped Terminal = iota
	Absorbed
	BounceLimitReached
)

func (t Terminal) String() string {
	switch t {
	case Escaped:
		return "escaped"
	case Absorbed:
		return "absorbed"
	case BounceLimitReached:
		return "bounce limit reached"
	default:
		return fmt.Sprintf("Terminal(%d)", int(t))
	}
}

// Outcome is the terminal state of a trace. Kind is only meaningful when
// Terminal is Absorbed.
type Outcome struct {
	Terminal Terminal
	Kind     shapes.Kind
}

// AbsorbedBy returns the outcome of the ray stopping on a shape of kind k.
func AbsorbedBy(k shapes.Kind) Outcome {
	return Outcome{Terminal: Absorbed, Kind: k}
}

// ReachedReceptor reports whether the ray ended on a receptor.
func (o Outcome) ReachedReceptor() bool {
	return o.Terminal == Absorbed && o.Kind == shapes.Receptor
}

func (o Outcome) String() string {
	if o.Terminal == Absorbed {
		return fmt.Sprintf("absorbed by %s", o.Kind)
	}
	return o.Terminal.String()
}

// Path is everything a trace produced.
type Path struct {
	Emitter int            // ID of the emitter the ray left
	Tokens  []string       // "label,cellX,cellY" per distinct consecutive object touched
	Legs    []geom.Segment // straight pieces of the ray, in order
	Bounces int            // reflections performed
	Outcome Outcome
}

// Solution joins the tokens with ";".
func (p Path) Solution() string {
	return strings.Join(p.Tokens, ";")
}
