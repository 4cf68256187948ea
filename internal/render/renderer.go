package render

import (
	"errors"
	"image/color"
)

// ErrQuit is returned from Game.Update to end the game loop cleanly.
var ErrQuit = errors.New("quit")

// Vec2 is a point in screen pixels.
type Vec2 struct {
	X, Y float32
}

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. The puzzle only draws flat shapes, lines and debug text.
type Renderer interface {
	// Vector operations (for drawing shapes)
	FillPolygon(dst Image, points []Vec2, clr color.Color)
	StrokePolygon(dst Image, points []Vec2, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int)
	MeasureText(text string) (width, height int)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
}

// InputManager handles input from the user (keyboard, mouse, wheel).
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
	IsMouseButtonJustPressed(button MouseButton) bool
	IsMouseButtonJustReleased(button MouseButton) bool
	Wheel() (dx, dy float64)
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the puzzle listens to
const (
	KeyQ Key = iota // rotate counter-clockwise
	KeyE            // rotate clockwise
	KeyR            // reset puzzle
	KeyN            // next puzzle
	KeyP            // previous puzzle
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
