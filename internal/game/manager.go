package game

import (
	"fmt"
	"log"

	"chosenoffset.com/mirrormaze/internal/palette"
	"chosenoffset.com/mirrormaze/internal/puzzle"
	"chosenoffset.com/mirrormaze/internal/puzzlescanner"
	"chosenoffset.com/mirrormaze/internal/render"
	"chosenoffset.com/mirrormaze/internal/session"
)

// Manager owns the puzzle list and swaps games as the player moves
// through it.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Chime        Chime

	Puzzles []puzzlescanner.PuzzleEntry
	Current int
	Game    *Game
}

// NewManager creates a new game manager.
func NewManager(r render.Renderer, input render.InputManager, chime Chime, width, height int) *Manager {
	return &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		Renderer:     r,
		InputMgr:     input,
		Chime:        chime,
	}
}

// LoadPuzzles scans dataPath for puzzle files and opens the first one that
// loads.
func (m *Manager) LoadPuzzles(dataPath string) error {
	entries, err := puzzlescanner.ScanDataDirectory(dataPath)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no puzzles found in %s", dataPath)
	}
	m.Puzzles = entries
	log.Printf("Found %d puzzles in %s", len(entries), dataPath)

	for i := range entries {
		if err := m.LoadPuzzle(i); err != nil {
			log.Printf("Warning: %v", err)
			continue
		}
		return nil
	}
	return fmt.Errorf("no loadable puzzles in %s", dataPath)
}

// LoadPuzzle opens entry index of the puzzle list.
func (m *Manager) LoadPuzzle(index int) error {
	if index < 0 || index >= len(m.Puzzles) {
		return fmt.Errorf("puzzle index %d out of range", index)
	}
	entry := m.Puzzles[index]
	log.Printf("Loading puzzle: %s", entry.Path)

	config, err := puzzle.LoadConfig(entry.Path)
	if err != nil {
		return fmt.Errorf("failed to load puzzle %s: %w", entry.Name, err)
	}
	if err := m.Start(config); err != nil {
		return fmt.Errorf("failed to start puzzle %s: %w", entry.Name, err)
	}
	m.Current = index
	return nil
}

// Start replaces the running game with a fresh session of config.
func (m *Manager) Start(config *puzzle.Config) error {
	s, err := session.New(config)
	if err != nil {
		return err
	}

	g := NewGame(s, m.Renderer, m.InputMgr, m.ScreenWidth, m.ScreenHeight)
	g.Chime = m.Chime
	s.SetOnSolved(func(solution string) {
		log.Printf("Puzzle %q solved: %s", config.Name, solution)
		g.ShowMessage("Solved!")
		if m.Chime != nil {
			m.Chime.PlaySolved()
		}
	})

	m.Game = g
	log.Printf("Started puzzle %q (%dx%d, %d objects expected)", config.Name, config.Cols, config.Rows, config.ExpectedSolutionLength)
	return nil
}

// Update updates the current state.
func (m *Manager) Update() error {
	if m.Game == nil {
		if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			return render.ErrQuit
		}
		return nil
	}

	switch {
	case m.InputMgr.IsKeyJustPressed(render.KeyR):
		m.Game.Session.Reset()
		m.Game.Drag = Drag{}
		m.Game.ShowMessage("Puzzle reset")
		return nil
	case m.InputMgr.IsKeyJustPressed(render.KeyN):
		m.step(1)
		return nil
	case m.InputMgr.IsKeyJustPressed(render.KeyP):
		m.step(-1)
		return nil
	}

	return m.Game.Update()
}

func (m *Manager) step(delta int) {
	n := len(m.Puzzles)
	if n < 2 {
		return
	}
	next := ((m.Current+delta)%n + n) % n
	if err := m.LoadPuzzle(next); err != nil {
		log.Printf("Error loading puzzle: %v", err)
		m.Game.ShowMessage("Could not load " + m.Puzzles[next].Name)
	}
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	if m.Game == nil {
		screen.Fill(palette.Background)
		m.Renderer.DrawText(screen, "No puzzle loaded (press ESC to quit)", 50, 50)
		return
	}
	m.Game.Draw(screen)
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	m.ScreenWidth = outsideWidth
	m.ScreenHeight = outsideHeight
	if m.Game != nil {
		m.Game.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
