package preview

import (
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/mirrormaze/internal/core/geom"
	"chosenoffset.com/mirrormaze/internal/core/shapes"
	"chosenoffset.com/mirrormaze/internal/palette"
	"chosenoffset.com/mirrormaze/internal/puzzle"
)

const onePuzzle = `{
	"name": "one mirror",
	"cols": 6,
	"rows": 6,
	"expected_solution_length": 1,
	"transmitter": {"label": "T", "x": 2, "y": 0, "angle": 0},
	"receptor": {"label": "R", "x": 0, "y": 4},
	"objects": [
		{"label": "A", "type": "TRIANGLE", "x": 3, "y": 4, "angle": 15, "allow_move": true}
	]
}`

func TestRenderPuzzle(t *testing.T) {
	config, err := puzzle.Parse([]byte(onePuzzle))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	img, verdict, err := RenderPuzzle(config)
	if err != nil {
		t.Fatalf("RenderPuzzle: %v", err)
	}
	if verdict.Solved {
		t.Error("initial board should be unsolved")
	}
	if b := img.Bounds(); b.Dx() != 6*CellSize || b.Dy() != 6*CellSize {
		t.Fatalf("bounds = %v", b)
	}

	tests := []struct {
		name string
		cell geom.Point
		want color.RGBA
	}{
		{"empty cell", geom.Point{X: 1.5, Y: 1.5}, palette.Background},
		{"receptor", geom.Point{X: 0.5, Y: 4.5}, palette.KindColor(shapes.Receptor)},
		{"beam", geom.Point{X: 2.5, Y: 3.5}, palette.Beam},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := int(tt.cell.X*CellSize), int(tt.cell.Y*CellSize)
			if got := img.RGBAAt(x, y); !near(got, tt.want) {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, tt.want)
			}
		})
	}
}

// near allows for antialiasing round-off.
func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool { return x-y <= 2 || y-x <= 2 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestClip(t *testing.T) {
	a, b, ok := clip(geom.Segment{A: geom.Point{X: 2.5, Y: 0.85}, B: geom.Point{X: 2.5, Y: 100.85}}, 6, 6)
	if !ok {
		t.Fatal("segment crossing the board was dropped")
	}
	if a != (geom.Point{X: 2.5, Y: 0.85}) || b.X != 2.5 || math.Abs(b.Y-6) > 1e-9 {
		t.Errorf("clip = %v, %v", a, b)
	}

	if _, _, ok := clip(geom.Segment{A: geom.Point{X: 7, Y: 1}, B: geom.Point{X: 9, Y: 1}}, 6, 6); ok {
		t.Error("segment beside the board should be dropped")
	}
}

func TestGenerateAll(t *testing.T) {
	dataDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dataDir, "one.json"), []byte(onePuzzle), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(t.TempDir(), "previews")

	written, err := GenerateAll(dataDir, outDir)
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	if len(written) != 1 || written[0] != filepath.Join(outDir, "one.png") {
		t.Fatalf("written = %v", written)
	}

	f, err := os.Open(written[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 6*CellSize || cfg.Height != 6*CellSize {
		t.Errorf("png is %dx%d", cfg.Width, cfg.Height)
	}
}
