package game

import (
	"math"

	"chosenoffset.com/mirrormaze/internal/core/geom"
	"chosenoffset.com/mirrormaze/internal/render"
)

const (
	boardMargin  = 16.0 // pixels around the board
	statusHeight = 24.0 // pixels reserved for the status line
)

// Board maps board units (one unit per cell) onto screen pixels.
type Board struct {
	Cols     int
	Rows     int
	CellSize float64
	OffsetX  float64
	OffsetY  float64
}

// FitBoard sizes a cols x rows board to the largest square cells that fit
// a screen of w x h pixels, centred horizontally above the status line.
func FitBoard(cols, rows, w, h int) Board {
	b := Board{Cols: cols, Rows: rows}
	if cols <= 0 || rows <= 0 {
		return b
	}

	availW := float64(w) - 2*boardMargin
	availH := float64(h) - 2*boardMargin - statusHeight
	b.CellSize = math.Max(0, math.Min(availW/float64(cols), availH/float64(rows)))

	b.OffsetX = (float64(w) - b.CellSize*float64(cols)) / 2
	b.OffsetY = boardMargin + (availH-b.CellSize*float64(rows))/2
	return b
}

// ToScreen converts a board point to pixels.
func (b Board) ToScreen(p geom.Point) render.Vec2 {
	return render.Vec2{
		X: float32(b.OffsetX + p.X*b.CellSize),
		Y: float32(b.OffsetY + p.Y*b.CellSize),
	}
}

// ToBoard converts a pixel position to a board point.
func (b Board) ToBoard(x, y int) geom.Point {
	if b.CellSize == 0 {
		return geom.Point{X: -1, Y: -1}
	}
	return geom.Point{
		X: (float64(x) - b.OffsetX) / b.CellSize,
		Y: (float64(y) - b.OffsetY) / b.CellSize,
	}
}

// Drag tracks a shape being carried by the pointer.
type Drag struct {
	Active bool
	ID     int
	Grab   geom.Point // pointer position minus shape centre when picked up
	Cursor geom.Point // current pointer position in board units
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}
