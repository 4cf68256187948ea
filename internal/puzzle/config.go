// Package puzzle loads puzzle definitions from JSON files.
// Each file describes one board: its size, the emitter, the receptor, the
// mirrors and the obstacles, plus what the player may move or rotate.
package puzzle

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"chosenoffset.com/mirrormaze/internal/core/geom"
	"chosenoffset.com/mirrormaze/internal/core/scene"
	"chosenoffset.com/mirrormaze/internal/core/shapes"
)

// Config holds one puzzle definition
type Config struct {
	Name string `json:"name"`
	Cols int    `json:"cols"`
	Rows int    `json:"rows"`

	// Player permissions
	AllowRotate        bool    `json:"allow_rotate"`
	AllowMoveObjects   bool    `json:"allow_move_objects"`   // mirrors
	AllowMoveObstacles bool    `json:"allow_move_obstacles"` // blockers
	RotateStep         float64 `json:"rotate_step"`          // degrees per rotate action

	// Number of tracked objects the ray must touch to solve the puzzle
	ExpectedSolutionLength int `json:"expected_solution_length"`

	Transmitter *Placement `json:"transmitter"`
	Receptor    *Placement `json:"receptor"`
	Objects     []Object   `json:"objects"`
	Obstacles   []Obstacle `json:"obstacles"`
}

// Placement positions an emitter or receptor on a cell
type Placement struct {
	Label     string  `json:"label"`
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Angle     float64 `json:"angle"`
	AllowMove bool    `json:"allow_move"`
}

// Object is a mirror
type Object struct {
	Label     string  `json:"label"`
	Type      string  `json:"type"` // "TRIANGLE" or "SQUARE"
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Angle     float64 `json:"angle"`
	Color     string  `json:"color,omitempty"`
	AllowMove bool    `json:"allow_move"`
}

// Obstacle is a blocker. Width and height default to one cell.
type Obstacle struct {
	Label     string  `json:"label"`
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Angle     float64 `json:"angle"`
	Color     string  `json:"color,omitempty"`
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
	AllowMove bool    `json:"allow_move"`
}

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid puzzle config")

// DefaultBlockerSize is the side of an obstacle with no explicit size
const DefaultBlockerSize = 1.0

// DefaultConfig returns an empty 6x6 board with every permission granted
func DefaultConfig() *Config {
	return &Config{
		Name:               "untitled",
		Cols:               6,
		Rows:               6,
		AllowRotate:        true,
		AllowMoveObjects:   true,
		AllowMoveObstacles: true,
		RotateStep:         15,
	}
}

// LoadConfig loads a puzzle from a JSON file. Fields missing from the file
// keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle %s: %w", path, err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("puzzle %s: %w", path, err)
	}
	return config, nil
}

// Parse decodes and validates a puzzle definition. Unknown keys are
// rejected so a misspelt permission cannot silently keep its default.
func Parse(data []byte) (*Config, error) {
	config := DefaultConfig() // Start with defaults
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse puzzle: %w", ErrInvalidConfig, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks dimensions, required elements and placements
func (c *Config) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("%w: board dimensions %dx%d", ErrInvalidConfig, c.Cols, c.Rows)
	}
	if c.ExpectedSolutionLength < 0 {
		return fmt.Errorf("%w: expected_solution_length %d", ErrInvalidConfig, c.ExpectedSolutionLength)
	}
	if c.RotateStep <= 0 {
		return fmt.Errorf("%w: rotate_step %g", ErrInvalidConfig, c.RotateStep)
	}
	if c.Transmitter == nil || c.Receptor == nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, scene.ErrMissingSceneElement)
	}

	occupied := make(map[[2]int]string)
	place := func(what string, x, y int) error {
		if x < 0 || x >= c.Cols || y < 0 || y >= c.Rows {
			return fmt.Errorf("%w: %s at (%d, %d) is off the %dx%d board", ErrInvalidConfig, what, x, y, c.Cols, c.Rows)
		}
		if other, ok := occupied[[2]int{x, y}]; ok {
			return fmt.Errorf("%w: %s at (%d, %d) overlaps %s", ErrInvalidConfig, what, x, y, other)
		}
		occupied[[2]int{x, y}] = what
		return nil
	}

	if err := place("transmitter", c.Transmitter.X, c.Transmitter.Y); err != nil {
		return err
	}
	if err := place("receptor", c.Receptor.X, c.Receptor.Y); err != nil {
		return err
	}
	for i, o := range c.Objects {
		if _, err := parseVariant(o.Type); err != nil {
			return fmt.Errorf("%w: object %d: %w", ErrInvalidConfig, i, err)
		}
		if err := place(fmt.Sprintf("object %d", i), o.X, o.Y); err != nil {
			return err
		}
	}
	for i, o := range c.Obstacles {
		if o.Width < 0 || o.Height < 0 {
			return fmt.Errorf("%w: obstacle %d has size %gx%g", ErrInvalidConfig, i, o.Width, o.Height)
		}
		if err := place(fmt.Sprintf("obstacle %d", i), o.X, o.Y); err != nil {
			return err
		}
	}
	return nil
}

func parseVariant(s string) (shapes.Variant, error) {
	switch strings.ToUpper(s) {
	case "TRIANGLE":
		return shapes.Triangle, nil
	case "SQUARE":
		return shapes.Square, nil
	default:
		return 0, fmt.Errorf("unknown object type %q", s)
	}
}

func cellCenter(x, y int) geom.Point {
	return geom.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// Description converts the puzzle into a scene description. Shapes are
// ordered transmitter, receptor, objects, obstacles, so the transmitter is
// always shape 0 and the receptor shape 1.
func (c *Config) Description() (scene.Description, error) {
	if err := c.Validate(); err != nil {
		return scene.Description{}, err
	}

	list := []shapes.Shape{
		{
			Kind:    shapes.Emitter,
			Center:  cellCenter(c.Transmitter.X, c.Transmitter.Y),
			Angle:   c.Transmitter.Angle,
			Label:   c.Transmitter.Label,
			Movable: c.Transmitter.AllowMove,
		},
		{
			Kind:    shapes.Receptor,
			Center:  cellCenter(c.Receptor.X, c.Receptor.Y),
			Label:   c.Receptor.Label,
			Movable: c.Receptor.AllowMove,
		},
	}
	for _, o := range c.Objects {
		variant, _ := parseVariant(o.Type)
		list = append(list, shapes.Shape{
			Kind:    shapes.Mirror,
			Variant: variant,
			Center:  cellCenter(o.X, o.Y),
			Angle:   o.Angle,
			Label:   o.Label,
			Color:   o.Color,
			Movable: o.AllowMove,
		})
	}
	for _, o := range c.Obstacles {
		w, h := o.Width, o.Height
		if w == 0 {
			w = DefaultBlockerSize
		}
		if h == 0 {
			h = DefaultBlockerSize
		}
		list = append(list, shapes.Shape{
			Kind:    shapes.Blocker,
			Center:  cellCenter(o.X, o.Y),
			Angle:   o.Angle,
			Label:   o.Label,
			Color:   o.Color,
			Width:   w,
			Height:  h,
			Movable: o.AllowMove,
		})
	}

	return scene.Description{
		Cols:                   c.Cols,
		Rows:                   c.Rows,
		Shapes:                 list,
		ExpectedSolutionLength: c.ExpectedSolutionLength,
	}, nil
}

// CanMove reports whether the player may drag a shape of the given kind
func (c *Config) CanMove(kind shapes.Kind) bool {
	switch kind {
	case shapes.Mirror:
		return c.AllowMoveObjects
	case shapes.Blocker:
		return c.AllowMoveObstacles
	case shapes.Emitter, shapes.Receptor:
		return true
	default:
		panic(fmt.Sprintf("puzzle: unknown kind %d", int(kind)))
	}
}
