package ebiten

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/mirrormaze/internal/render"
)

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct {
	white *ebiten.Image
}

// NewRenderer creates a new Ebiten-based render.
func NewRenderer() render.Renderer {
	src := ebiten.NewImage(3, 3)
	src.Fill(color.White)
	return &EbitenRenderer{
		// Sampling the centre pixel avoids bleeding at the edges.
		white: src.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// FillPolygon fills a convex polygon as a triangle fan.
func (r *EbitenRenderer) FillPolygon(dst render.Image, points []render.Vec2, clr color.Color) {
	if len(points) < 3 {
		return
	}
	ebitenImg := dst.(*EbitenImage).img

	cr, cg, cb, ca := clr.RGBA()
	vertices := make([]ebiten.Vertex, len(points))
	for i, p := range points {
		vertices[i] = ebiten.Vertex{
			DstX:   p.X,
			DstY:   p.Y,
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(cr) / 0xffff,
			ColorG: float32(cg) / 0xffff,
			ColorB: float32(cb) / 0xffff,
			ColorA: float32(ca) / 0xffff,
		}
	}
	indices := make([]uint16, 0, (len(points)-2)*3)
	for i := 1; i < len(points)-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}

	ebitenImg.DrawTriangles(vertices, indices, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// StrokePolygon outlines a closed polygon.
func (r *EbitenRenderer) StrokePolygon(dst render.Image, points []render.Vec2, strokeWidth float32, clr color.Color) {
	for i := range points {
		a, b := points[i], points[(i+1)%len(points)]
		r.StrokeLine(dst, a.X, a.Y, b.X, b.Y, strokeWidth, clr)
	}
}

// StrokeLine draws a line segment.
func (r *EbitenRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.StrokeLine(ebitenImg, x0, y0, x1, y1, strokeWidth, clr, true)
}

// FillCircle draws a filled circle on the destination image.
func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.DrawFilledCircle(ebitenImg, x, y, radius, clr, true)
}

// DrawText draws text with the debug font. The debug font is always white.
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int) {
	ebitenutil.DebugPrintAt(dst.(*EbitenImage).img, str, x, y)
}

// MeasureText approximates text size from the debug font's 6x16 glyphs.
func (r *EbitenRenderer) MeasureText(str string) (width, height int) {
	return len(str) * 6, 16
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	return inpututil.IsKeyJustPressed(keyToEbitenKey(key))
}

// GetCursorPosition returns the current cursor position.
func (m *EbitenInputManager) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// IsMouseButtonPressed returns whether the specified mouse button is currently pressed.
func (m *EbitenInputManager) IsMouseButtonPressed(button render.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(mouseButtonToEbiten(button))
}

// IsMouseButtonJustPressed returns whether the button went down this frame.
func (m *EbitenInputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(mouseButtonToEbiten(button))
}

// IsMouseButtonJustReleased returns whether the button came up this frame.
func (m *EbitenInputManager) IsMouseButtonJustReleased(button render.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(mouseButtonToEbiten(button))
}

// Wheel returns the wheel movement since the last frame.
func (m *EbitenInputManager) Wheel() (dx, dy float64) {
	return ebiten.Wheel()
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyQ:
		return ebiten.KeyQ
	case render.KeyE:
		return ebiten.KeyE
	case render.KeyR:
		return ebiten.KeyR
	case render.KeyN:
		return ebiten.KeyN
	case render.KeyP:
		return ebiten.KeyP
	case render.KeyEscape:
		return ebiten.KeyEscape
	default:
		return 0
	}
}

// mouseButtonToEbiten converts a render.MouseButton to an ebiten.MouseButton.
func mouseButtonToEbiten(button render.MouseButton) ebiten.MouseButton {
	switch button {
	case render.MouseButtonLeft:
		return ebiten.MouseButtonLeft
	case render.MouseButtonRight:
		return ebiten.MouseButtonRight
	case render.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
