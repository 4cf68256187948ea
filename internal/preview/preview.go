// Package preview rasterizes puzzle boards to PNG thumbnails.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/vector"

	"chosenoffset.com/mirrormaze/internal/core/geom"
	"chosenoffset.com/mirrormaze/internal/core/scene"
	"chosenoffset.com/mirrormaze/internal/core/solution"
	"chosenoffset.com/mirrormaze/internal/core/trace"
	"chosenoffset.com/mirrormaze/internal/palette"
	"chosenoffset.com/mirrormaze/internal/puzzle"
	"chosenoffset.com/mirrormaze/internal/puzzlescanner"
)

// CellSize is the side of one board cell in pixels
const CellSize = 48

const (
	gridWidth = 1.0
	beamWidth = 3.0
)

// Render draws the board, its shapes and the traced beam.
func Render(sc *scene.Scene, path trace.Path, solved bool) *image.RGBA {
	cols, rows := sc.Size()
	w, h := cols*CellSize, rows*CellSize
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{palette.Background}, image.Point{}, draw.Src)

	r := &rasterizer{z: vector.NewRasterizer(w, h), dst: img}

	for x := 0; x <= cols; x++ {
		r.line(geom.Point{X: float64(x)}, geom.Point{X: float64(x), Y: float64(rows)}, gridWidth, palette.Grid)
	}
	for y := 0; y <= rows; y++ {
		r.line(geom.Point{Y: float64(y)}, geom.Point{X: float64(cols), Y: float64(y)}, gridWidth, palette.Grid)
	}

	for _, sh := range sc.Shapes() {
		r.polygon(sc.Polygon(sh.ID).Vertices, palette.ShapeColor(sh))
	}

	beam := palette.Beam
	if solved {
		beam = palette.SolvedBeam
	}
	for _, leg := range path.Legs {
		if a, b, ok := clip(leg, float64(cols), float64(rows)); ok {
			r.line(a, b, beamWidth, beam)
		}
	}
	return img
}

type rasterizer struct {
	z   *vector.Rasterizer
	dst *image.RGBA
}

func toPixels(p geom.Point) (float32, float32) {
	return float32(p.X * CellSize), float32(p.Y * CellSize)
}

func (r *rasterizer) polygon(vertices []geom.Point, clr color.Color) {
	if len(vertices) < 3 {
		return
	}
	b := r.dst.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.MoveTo(toPixels(vertices[0]))
	for _, v := range vertices[1:] {
		r.z.LineTo(toPixels(v))
	}
	r.z.ClosePath()
	r.z.Draw(r.dst, b, image.NewUniform(clr), image.Point{})
}

// line strokes a segment as a quad width pixels wide.
func (r *rasterizer) line(a, b geom.Point, width float64, clr color.Color) {
	length := geom.Distance(a, b)
	if length == 0 {
		return
	}
	half := width / 2 / CellSize
	n := geom.Point{X: -(b.Y - a.Y) / length * half, Y: (b.X - a.X) / length * half}
	neg := geom.Point{X: -n.X, Y: -n.Y}

	r.polygon([]geom.Point{a.Add(n), b.Add(n), b.Add(neg), a.Add(neg)}, clr)
}

// clip cuts a beam leg down to the w x h board (Liang-Barsky).
func clip(s geom.Segment, w, h float64) (geom.Point, geom.Point, bool) {
	dx, dy := s.B.X-s.A.X, s.B.Y-s.A.Y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, s.A.X},
		{dx, w - s.A.X},
		{-dy, s.A.Y},
		{dy, h - s.A.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return geom.Point{}, geom.Point{}, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
	}
	if t0 > t1 {
		return geom.Point{}, geom.Point{}, false
	}
	return geom.Point{X: s.A.X + t0*dx, Y: s.A.Y + t0*dy},
		geom.Point{X: s.A.X + t1*dx, Y: s.A.Y + t1*dy}, true
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// RenderPuzzle builds config's initial board, traces it and draws it.
func RenderPuzzle(config *puzzle.Config) (*image.RGBA, solution.Verdict, error) {
	desc, err := config.Description()
	if err != nil {
		return nil, solution.Verdict{}, err
	}
	sc, err := scene.New(desc)
	if err != nil {
		return nil, solution.Verdict{}, fmt.Errorf("failed to build scene: %w", err)
	}
	path, err := trace.Trace(sc, trace.DefaultOptions())
	if err != nil {
		return nil, solution.Verdict{}, err
	}
	verdict := solution.Evaluate(path, sc.ExpectedSolutionLength())
	return Render(sc, path, verdict.Solved), verdict, nil
}

// GenerateAll writes one PNG per puzzle in dataDir into outDir and returns
// the files written.
func GenerateAll(dataDir, outDir string) ([]string, error) {
	entries, err := puzzlescanner.ScanDataDirectory(dataDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	var written []string
	for _, e := range entries {
		config, err := puzzle.LoadConfig(e.Path)
		if err != nil {
			return written, err
		}
		img, _, err := RenderPuzzle(config)
		if err != nil {
			return written, fmt.Errorf("puzzle %s: %w", e.Name, err)
		}
		out := filepath.Join(outDir, e.Name+".png")
		if err := SavePNG(img, out); err != nil {
			return written, fmt.Errorf("failed to save %s: %w", out, err)
		}
		written = append(written, out)
	}
	return written, nil
}
