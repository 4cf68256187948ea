package game

import (
	"fmt"

	"chosenoffset.com/mirrormaze/internal/core/geom"
	"chosenoffset.com/mirrormaze/internal/palette"
	"chosenoffset.com/mirrormaze/internal/render"
)

// Draw renders the board, the beam and the status line.
func (g *Game) Draw(screen render.Image) {
	if w, h := screen.Size(); w != g.ScreenWidth || h != g.ScreenHeight {
		g.Layout(w, h)
	}
	screen.Fill(palette.Background)

	g.drawGrid(screen)
	g.drawShapes(screen)
	g.drawBeam(screen)
	g.drawDrag(screen)
	g.drawStatus(screen)
	g.drawUI(screen)
}

func (g *Game) drawGrid(screen render.Image) {
	b := g.Board
	if b.CellSize == 0 {
		return
	}
	for x := 0; x <= b.Cols; x++ {
		p0 := b.ToScreen(geom.Point{X: float64(x), Y: 0})
		p1 := b.ToScreen(geom.Point{X: float64(x), Y: float64(b.Rows)})
		g.Renderer.StrokeLine(screen, p0.X, p0.Y, p1.X, p1.Y, 1, palette.Grid)
	}
	for y := 0; y <= b.Rows; y++ {
		p0 := b.ToScreen(geom.Point{X: 0, Y: float64(y)})
		p1 := b.ToScreen(geom.Point{X: float64(b.Cols), Y: float64(y)})
		g.Renderer.StrokeLine(screen, p0.X, p0.Y, p1.X, p1.Y, 1, palette.Grid)
	}
}

func (g *Game) drawShapes(screen render.Image) {
	sc := g.Session.Scene()
	for _, sh := range sc.Shapes() {
		points := g.toScreen(sc.Polygon(sh.ID).Vertices, geom.Point{})
		clr := palette.ShapeColor(sh)
		if g.Drag.Active && g.Drag.ID == sh.ID {
			clr = palette.Darken(clr, 0.4)
		}
		g.Renderer.FillPolygon(screen, points, clr)
		if sh.ID == g.Selected {
			g.Renderer.StrokePolygon(screen, points, 2, palette.Highlight)
		}
		if sh.Label != "" {
			c := g.Board.ToScreen(sh.Center)
			tw, th := g.Renderer.MeasureText(sh.Label)
			g.Renderer.DrawText(screen, sh.Label, int(c.X)-tw/2, int(c.Y)-th/2)
		}
	}
}

func (g *Game) drawBeam(screen render.Image) {
	clr := palette.Beam
	if g.Session.Verdict().Solved {
		clr = palette.SolvedBeam
	}
	legs := g.Session.Path().Legs
	for i, leg := range legs {
		a := g.Board.ToScreen(leg.A)
		b := g.Board.ToScreen(leg.B)
		g.Renderer.StrokeLine(screen, a.X, a.Y, b.X, b.Y, 2, clr)
		// mark bounce points
		if i < len(legs)-1 {
			g.Renderer.FillCircle(screen, b.X, b.Y, 3, clr)
		}
	}
}

// drawDrag draws the carried shape under the pointer.
func (g *Game) drawDrag(screen render.Image) {
	if !g.Drag.Active {
		return
	}
	sc := g.Session.Scene()
	sh, ok := sc.Shape(g.Drag.ID)
	if !ok {
		return
	}
	shift := geom.Point{
		X: g.Drag.Cursor.X - g.Drag.Grab.X - sh.Center.X,
		Y: g.Drag.Cursor.Y - g.Drag.Grab.Y - sh.Center.Y,
	}
	points := g.toScreen(sc.Polygon(sh.ID).Vertices, shift)
	g.Renderer.StrokePolygon(screen, points, 2, palette.Lighten(palette.ShapeColor(sh), 0.3))
}

func (g *Game) drawStatus(screen render.Image) {
	verdict := g.Session.Verdict()
	path := g.Session.Path()

	var status string
	if verdict.Solved {
		status = fmt.Sprintf("%s - solved: %s", g.Title, verdict.Solution)
	} else {
		status = fmt.Sprintf("%s - %s, %d/%d objects", g.Title, path.Outcome, len(path.Tokens), g.Session.Scene().ExpectedSolutionLength())
	}
	g.Renderer.DrawText(screen, status, int(boardMargin), g.ScreenHeight-int(statusHeight))

	help := "drag: move  Q/E/wheel: rotate  R: reset  N/P: puzzle"
	tw, _ := g.Renderer.MeasureText(help)
	g.Renderer.DrawText(screen, help, g.ScreenWidth-tw-int(boardMargin), g.ScreenHeight-int(statusHeight))
}

func (g *Game) drawUI(screen render.Image) {
	// Draw on-screen messages
	y := boardMargin
	for _, msg := range g.Messages {
		g.Renderer.DrawText(screen, msg.Text, int(boardMargin), int(y))
		y += 20
	}
}

func (g *Game) toScreen(vertices []geom.Point, shift geom.Point) []render.Vec2 {
	points := make([]render.Vec2, len(vertices))
	for i, v := range vertices {
		points[i] = g.Board.ToScreen(v.Add(shift))
	}
	return points
}
