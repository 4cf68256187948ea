package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"chosenoffset.com/mirrormaze/internal/audio"
	"chosenoffset.com/mirrormaze/internal/core/scene"
	"chosenoffset.com/mirrormaze/internal/core/solution"
	"chosenoffset.com/mirrormaze/internal/core/trace"
	"chosenoffset.com/mirrormaze/internal/game"
	"chosenoffset.com/mirrormaze/internal/puzzle"
	"chosenoffset.com/mirrormaze/internal/puzzlescanner"
	ebitenrender "chosenoffset.com/mirrormaze/internal/render/ebiten"
	"chosenoffset.com/mirrormaze/internal/session"
	"chosenoffset.com/mirrormaze/internal/tui"
)

func main() {
	puzzlePath := flag.String("puzzle", "", "Puzzle file to open (default: every puzzle in -data)")
	dataDir := flag.String("data", "data/puzzles", "Directory of puzzle files")
	useTUI := flag.Bool("tui", false, "Play in the terminal instead of a window")
	traceOnly := flag.Bool("trace", false, "Print the trace of each puzzle and exit")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	if *traceOnly {
		if err := printTraces(os.Stdout, *puzzlePath, *dataDir); err != nil {
			log.Fatalf("Trace failed: %v", err)
		}
		return
	}

	chime := audio.NewChime()
	if !*mute {
		if err := chime.Initialize(); err != nil {
			log.Printf("Warning: audio initialization failed: %v", err)
		}
	}
	defer chime.Close()

	if *useTUI {
		if err := runTUI(*puzzlePath, *dataDir, chime); err != nil {
			log.Fatalf("Terminal game failed: %v", err)
		}
		return
	}

	if err := runWindow(*puzzlePath, *dataDir, chime); err != nil {
		log.Fatal(err)
	}
}

func runWindow(puzzlePath, dataDir string, chime *audio.Chime) error {
	screenWidth := 960
	screenHeight := 720

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	manager := game.NewManager(renderer, inputMgr, chime, screenWidth, screenHeight)
	if puzzlePath != "" {
		manager.Puzzles = []puzzlescanner.PuzzleEntry{{
			Name: strings.TrimSuffix(filepath.Base(puzzlePath), filepath.Ext(puzzlePath)),
			Path: puzzlePath,
		}}
		if err := manager.LoadPuzzle(0); err != nil {
			return err
		}
	} else {
		log.Println("Scanning data directory for puzzles...")
		if err := manager.LoadPuzzles(dataDir); err != nil {
			return err
		}
	}

	engine.SetWindowSize(screenWidth, screenHeight)
	engine.SetWindowTitle("Mirror Maze")
	engine.SetWindowResizable(true)

	log.Println("Starting game...")
	return engine.RunGame(manager)
}

func runTUI(puzzlePath, dataDir string, chime *audio.Chime) error {
	configs, err := loadConfigs(puzzlePath, dataDir)
	if err != nil {
		return err
	}
	s, err := session.New(configs[0])
	if err != nil {
		return err
	}

	app, err := tui.New(s, chime)
	if err != nil {
		return err
	}
	// the terminal owns stderr while the board is up
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)
	return app.Run()
}

// printTraces traces every emitter of each puzzle without opening a window.
func printTraces(w io.Writer, puzzlePath, dataDir string) error {
	configs, err := loadConfigs(puzzlePath, dataDir)
	if err != nil {
		return err
	}

	for _, config := range configs {
		desc, err := config.Description()
		if err != nil {
			return err
		}
		sc, err := scene.New(desc)
		if err != nil {
			return fmt.Errorf("puzzle %q: %w", config.Name, err)
		}
		paths, err := trace.TraceAll(sc, trace.DefaultOptions())
		if err != nil {
			return fmt.Errorf("puzzle %q: %w", config.Name, err)
		}

		fmt.Fprintf(w, "%s (%dx%d, expects %d)\n", config.Name, config.Cols, config.Rows, config.ExpectedSolutionLength)
		for _, p := range paths {
			v := solution.Evaluate(p, sc.ExpectedSolutionLength())
			fmt.Fprintf(w, "  emitter %d: %s after %d bounces, path %q, solved=%t\n",
				p.Emitter, p.Outcome, p.Bounces, v.Solution, v.Solved)
		}
	}
	return nil
}

func loadConfigs(puzzlePath, dataDir string) ([]*puzzle.Config, error) {
	if puzzlePath != "" {
		config, err := puzzle.LoadConfig(puzzlePath)
		if err != nil {
			return nil, err
		}
		return []*puzzle.Config{config}, nil
	}

	entries, err := puzzlescanner.ScanDataDirectory(dataDir)
	if err != nil {
		return nil, err
	}
	var configs []*puzzle.Config
	for _, e := range entries {
		config, err := puzzle.LoadConfig(e.Path)
		if err != nil {
			log.Printf("Warning: skipping %s: %v", e.Name, err)
			continue
		}
		configs = append(configs, config)
	}
	if len(configs) == 0 {
		return nil, fmt.Errorf("no puzzles found in %s", dataDir)
	}
	return configs, nil
}
