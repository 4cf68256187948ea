// Package session ties a puzzle definition to the tracing engine. It owns the
// current board snapshot and recomputes the trace after every committed
// gesture.
package session

import (
	"errors"
	"fmt"
	"math"

	"chosenoffset.com/mirrormaze/internal/core/geom"
	"chosenoffset.com/mirrormaze/internal/core/scene"
	"chosenoffset.com/mirrormaze/internal/core/shapes"
	"chosenoffset.com/mirrormaze/internal/core/solution"
	"chosenoffset.com/mirrormaze/internal/core/trace"
	"chosenoffset.com/mirrormaze/internal/puzzle"
)

var (
	ErrNotAllowed = errors.New("action not allowed by puzzle")
	ErrOffBoard   = errors.New("cell is off the board")
	ErrOccupied   = errors.New("cell is occupied")
)

// Session is one play-through of a puzzle.
type Session struct {
	config  *puzzle.Config
	initial *scene.Scene
	scene   *scene.Scene
	opts    trace.Options

	path    trace.Path
	verdict solution.Verdict

	onResult func(solved bool, solution string)
	onSolved func(solution string)
}

// New builds the initial board for config and traces it once.
func New(config *puzzle.Config) (*Session, error) {
	desc, err := config.Description()
	if err != nil {
		return nil, err
	}
	sc, err := scene.New(desc)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	s := &Session{
		config:  config,
		initial: sc,
		scene:   sc,
		opts:    trace.DefaultOptions(),
	}
	s.recompute()
	return s, nil
}

// SetOnResult registers a callback invoked after every committed gesture.
func (s *Session) SetOnResult(fn func(solved bool, solution string)) {
	s.onResult = fn
}

// SetOnSolved registers a callback invoked after every committed gesture that
// leaves the puzzle solved.
func (s *Session) SetOnSolved(fn func(solution string)) {
	s.onSolved = fn
}

// Config returns the puzzle definition.
func (s *Session) Config() *puzzle.Config {
	return s.config
}

// Scene returns the current snapshot.
func (s *Session) Scene() *scene.Scene {
	return s.scene
}

// Path returns the trace of the current snapshot.
func (s *Session) Path() trace.Path {
	return s.path
}

// Verdict returns the evaluation of the current snapshot.
func (s *Session) Verdict() solution.Verdict {
	return s.verdict
}

// CanMove reports whether the player may drag shape id.
func (s *Session) CanMove(id int) bool {
	sh, ok := s.scene.Shape(id)
	return ok && sh.Movable && s.config.CanMove(sh.Kind)
}

// CanRotate reports whether the player may rotate shape id. The receptor is
// round, so turning it is never offered.
func (s *Session) CanRotate(id int) bool {
	sh, ok := s.scene.Shape(id)
	return ok && sh.Movable && s.config.AllowRotate && sh.Kind != shapes.Receptor
}

// Move drops shape id into cell (x, y).
func (s *Session) Move(id, x, y int) error {
	if !s.CanMove(id) {
		return fmt.Errorf("%w: move shape %d", ErrNotAllowed, id)
	}
	cols, rows := s.scene.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return fmt.Errorf("%w: (%d, %d)", ErrOffBoard, x, y)
	}
	if other, ok := s.scene.Occupant(x, y); ok && other != id {
		return fmt.Errorf("%w: (%d, %d) holds shape %d", ErrOccupied, x, y, other)
	}

	next, err := s.scene.Move(id, geom.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
	if err != nil {
		return err
	}
	s.commit(next)
	return nil
}

// MoveTo drops shape id into the cell containing board point p.
func (s *Session) MoveTo(id int, p geom.Point) error {
	return s.Move(id, int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// Rotate turns shape id by steps multiples of the puzzle's rotate step.
// Negative steps turn the other way.
func (s *Session) Rotate(id, steps int) error {
	if !s.CanRotate(id) {
		return fmt.Errorf("%w: rotate shape %d", ErrNotAllowed, id)
	}
	next, err := s.scene.Rotate(id, float64(steps)*s.config.RotateStep)
	if err != nil {
		return err
	}
	s.commit(next)
	return nil
}

// Reset restores the initial board.
func (s *Session) Reset() {
	s.commit(s.initial)
}

func (s *Session) commit(next *scene.Scene) {
	s.scene = next
	s.recompute()

	if s.onResult != nil {
		s.onResult(s.verdict.Solved, s.verdict.Solution)
	}
	if s.verdict.Solved && s.onSolved != nil {
		s.onSolved(s.verdict.Solution)
	}
}

func (s *Session) recompute() {
	// scene.New guarantees an emitter and a receptor, so Trace cannot fail here.
	s.path, _ = trace.Trace(s.scene, s.opts)
	s.verdict = solution.Evaluate(s.path, s.scene.ExpectedSolutionLength())
}
