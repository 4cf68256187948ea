package game

import (
	"errors"
	"log"
	"math"

	"chosenoffset.com/mirrormaze/internal/core/geom"
	"chosenoffset.com/mirrormaze/internal/render"
	"chosenoffset.com/mirrormaze/internal/session"
)

const (
	tickSeconds = 1.0 / 60.0
	pickSlop    = 0.05 // board units of tolerance around a shape outline
)

// Chime plays feedback sounds. audio.Chime satisfies it.
type Chime interface {
	PlaySolved()
	PlayMove()
}

// Game is one puzzle on screen.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Title        string

	Session  *session.Session
	Renderer render.Renderer
	InputMgr render.InputManager
	Chime    Chime

	Board    Board
	Drag     Drag
	Selected int // shape targeted by keyboard rotation, -1 for none
	Messages []Message
}

// NewGame creates the view for a running session.
func NewGame(s *session.Session, r render.Renderer, input render.InputManager, width, height int) *Game {
	g := &Game{
		ScreenWidth:  width,
		ScreenHeight: height,
		Title:        s.Config().Name,
		Session:      s,
		Renderer:     r,
		InputMgr:     input,
		Selected:     -1,
	}
	g.fit()
	return g
}

func (g *Game) fit() {
	cols, rows := g.Session.Scene().Size()
	g.Board = FitBoard(cols, rows, g.ScreenWidth, g.ScreenHeight)
}

// Update handles one tick of input.
func (g *Game) Update() error {
	g.updateMessages(tickSeconds)

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	cx, cy := g.InputMgr.GetCursorPosition()
	cursor := g.Board.ToBoard(cx, cy)

	g.updateDrag(cursor)
	g.updateRotation(cursor)
	return nil
}

func (g *Game) updateDrag(cursor geom.Point) {
	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		sh, ok := g.Session.Scene().ShapeAt(cursor, pickSlop)
		if !ok {
			g.Selected = -1
			return
		}
		g.Selected = sh.ID
		if g.Session.CanMove(sh.ID) {
			g.Drag = Drag{
				Active: true,
				ID:     sh.ID,
				Grab:   geom.Point{X: cursor.X - sh.Center.X, Y: cursor.Y - sh.Center.Y},
				Cursor: cursor,
			}
		}
		return
	}

	if !g.Drag.Active {
		return
	}
	g.Drag.Cursor = cursor

	if g.InputMgr.IsMouseButtonJustReleased(render.MouseButtonLeft) || !g.InputMgr.IsMouseButtonPressed(render.MouseButtonLeft) {
		id := g.Drag.ID
		target := geom.Point{X: cursor.X - g.Drag.Grab.X, Y: cursor.Y - g.Drag.Grab.Y}
		g.Drag = Drag{}
		g.drop(id, target)
	}
}

func (g *Game) drop(id int, target geom.Point) {
	sh, _ := g.Session.Scene().Shape(id)
	x, y := sh.Cell()
	if x == int(math.Floor(target.X)) && y == int(math.Floor(target.Y)) {
		return
	}

	err := g.Session.MoveTo(id, target)
	switch {
	case err == nil:
		g.playMove()
	case errors.Is(err, session.ErrOccupied):
		g.ShowMessage("That cell is taken")
	case errors.Is(err, session.ErrOffBoard):
		// dropped outside the board; the shape stays put
	default:
		log.Printf("Move failed: %v", err)
	}
}

func (g *Game) updateRotation(cursor geom.Point) {
	steps := 0
	target := g.Selected

	if g.InputMgr.IsKeyJustPressed(render.KeyQ) {
		steps--
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyE) {
		steps++
	}

	_, dy := g.InputMgr.Wheel()
	right := g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonRight)
	if dy != 0 || right {
		sh, ok := g.Session.Scene().ShapeAt(cursor, pickSlop)
		if !ok {
			return
		}
		target = sh.ID
		switch {
		case right:
			steps = 1
		case dy > 0:
			steps = 1
		default:
			steps = -1
		}
	}

	if steps == 0 || target < 0 || g.Drag.Active {
		return
	}
	if err := g.Session.Rotate(target, steps); err != nil {
		if errors.Is(err, session.ErrNotAllowed) {
			return
		}
		log.Printf("Rotate failed: %v", err)
		return
	}
	g.Selected = target
	g.playMove()
}

func (g *Game) playMove() {
	if g.Chime != nil && !g.Session.Verdict().Solved {
		g.Chime.PlayMove()
	}
}

// Layout recomputes the board for a new window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.ScreenWidth || outsideHeight != g.ScreenHeight {
		g.ScreenWidth = outsideWidth
		g.ScreenHeight = outsideHeight
		g.fit()
	}
	return outsideWidth, outsideHeight
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})

	log.Printf("Message: %s", text)
}
