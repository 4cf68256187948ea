// Package tui plays a puzzle in the terminal.
package tui

import (
	"errors"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/mirrormaze/internal/session"
)

// Each board cell is drawn this many columns wide so the grid looks square.
const cellWidth = 2

// Chime plays feedback sounds. audio.Chime satisfies it.
type Chime interface {
	PlaySolved()
	PlayMove()
}

// App is the terminal frontend for one session.
type App struct {
	screen  tcell.Screen
	session *session.Session
	chime   Chime

	cursorX, cursorY int
	held             int // shape being carried, -1 for none
	status           string
}

// New opens the terminal and builds an App on it.
func New(s *session.Session, chime Chime) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	return NewWithScreen(screen, s, chime), nil
}

// NewWithScreen builds an App on an initialised screen.
func NewWithScreen(screen tcell.Screen, s *session.Session, chime Chime) *App {
	a := &App{
		screen:  screen,
		session: s,
		chime:   chime,
		held:    -1,
	}
	s.SetOnSolved(func(solution string) {
		log.Printf("Puzzle %q solved: %s", s.Config().Name, solution)
		if a.chime != nil {
			a.chime.PlaySolved()
		}
	})
	s.SetOnResult(func(solved bool, solution string) {
		if solved {
			a.status = "Solved! " + solution
		}
	})
	return a
}

// Cursor returns the board cell under the cursor.
func (a *App) Cursor() (x, y int) {
	return a.cursorX, a.cursorY
}

// Held returns the ID of the carried shape, or -1.
func (a *App) Held() int {
	return a.held
}

// Status returns the current status message.
func (a *App) Status() string {
	return a.status
}

// Run draws and handles events until the player quits. The screen is
// finalised on return.
func (a *App) Run() error {
	defer a.screen.Fini()

	a.Draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !a.HandleEvent(ev) {
			return nil
		}
		a.Draw()
	}
}

// HandleEvent processes one terminal event. It returns false when the
// player asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// HandleKey applies one key press. It returns false when the player asked
// to quit.
func (a *App) HandleKey(key tcell.Key, r rune) bool {
	cols, rows := a.session.Scene().Size()

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.cursorY = max(a.cursorY-1, 0)
	case tcell.KeyDown:
		a.cursorY = min(a.cursorY+1, rows-1)
	case tcell.KeyLeft:
		a.cursorX = max(a.cursorX-1, 0)
	case tcell.KeyRight:
		a.cursorX = min(a.cursorX+1, cols-1)
	case tcell.KeyEnter:
		a.toggleHold()
	case tcell.KeyRune:
		switch r {
		case ' ':
			a.toggleHold()
		case 'q', '[':
			a.rotate(-1)
		case 'e', ']':
			a.rotate(1)
		case 'r':
			a.session.Reset()
			a.held = -1
			a.status = "Puzzle reset"
		case 'h':
			a.HandleKey(tcell.KeyLeft, 0)
		case 'j':
			a.HandleKey(tcell.KeyDown, 0)
		case 'k':
			a.HandleKey(tcell.KeyUp, 0)
		case 'l':
			a.HandleKey(tcell.KeyRight, 0)
		}
	}
	return true
}

func (a *App) toggleHold() {
	if a.held < 0 {
		id, ok := a.session.Scene().Occupant(a.cursorX, a.cursorY)
		switch {
		case !ok:
			a.status = "Nothing to pick up"
		case !a.session.CanMove(id):
			a.status = "That piece is fixed"
		default:
			a.held = id
			a.status = "Carrying; move and press space to drop"
		}
		return
	}

	id := a.held
	a.held = -1
	err := a.session.Move(id, a.cursorX, a.cursorY)
	switch {
	case err == nil:
		a.playMove()
		if !a.session.Verdict().Solved {
			a.status = ""
		}
	case errors.Is(err, session.ErrOccupied):
		a.held = id
		a.status = "That cell is taken"
	default:
		log.Printf("Move failed: %v", err)
		a.status = err.Error()
	}
}

func (a *App) rotate(steps int) {
	id, ok := a.session.Scene().Occupant(a.cursorX, a.cursorY)
	if !ok {
		return
	}
	if err := a.session.Rotate(id, steps); err != nil {
		a.status = "That piece does not turn"
		return
	}
	a.playMove()
	if !a.session.Verdict().Solved {
		sh, _ := a.session.Scene().Shape(id)
		a.status = fmt.Sprintf("%s at %.0f°", sh.Kind, sh.Angle)
	}
}

func (a *App) playMove() {
	if a.chime != nil && !a.session.Verdict().Solved {
		a.chime.PlayMove()
	}
}

// Draw paints the board, cursor and status lines.
func (a *App) Draw() {
	a.screen.Clear()

	sc := a.session.Scene()
	path := a.session.Path()
	grid := Glyphs(sc, path)

	beamStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
	if a.session.Verdict().Solved {
		beamStyle = tcell.StyleDefault.Foreground(tcell.ColorGold)
	}
	dotStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)

	for y, row := range grid {
		for x, r := range row {
			style := dotStyle
			if id, ok := sc.Occupant(x, y); ok {
				sh, _ := sc.Shape(id)
				style = shapeStyle(sh)
				if id == a.held {
					style = style.Blink(true)
				}
			} else if r == beamGlyph {
				style = beamStyle
			}
			if x == a.cursorX && y == a.cursorY {
				style = style.Reverse(true)
			}
			a.screen.SetContent(x*cellWidth, y, r, nil, style)
		}
	}

	verdict := a.session.Verdict()
	line := fmt.Sprintf("%s  %s  %d/%d", a.session.Config().Name, path.Outcome, len(path.Tokens), sc.ExpectedSolutionLength())
	if verdict.Solution != "" {
		line += "  " + verdict.Solution
	}
	_, rows := sc.Size()
	a.drawText(0, rows+1, line, tcell.StyleDefault)
	a.drawText(0, rows+2, a.status, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	a.drawText(0, rows+3, "arrows/hjkl move  space pick/drop  q/e rotate  r reset  esc quit", dotStyle)

	a.screen.Show()
}

func (a *App) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
