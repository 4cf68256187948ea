package palette

import (
	"image/color"
	"testing"

	"chosenoffset.com/mirrormaze/internal/core/shapes"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#ff8000", color.RGBA{255, 128, 0, 255}, true},
		{"#F80", color.RGBA{255, 136, 0, 255}, true},
		{"red", color.RGBA{255, 0, 0, 255}, true},
		{" SteelBlue ", color.RGBA{70, 130, 180, 255}, true},
		{"", color.RGBA{}, false},
		{"#12345", color.RGBA{}, false},
		{"#gggggg", color.RGBA{}, false},
		{"notacolour", color.RGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseColor(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseColor(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestShapeColor(t *testing.T) {
	yellow := shapes.Shape{Kind: shapes.Mirror, Color: "yellow"}
	if got := ShapeColor(yellow); got != (color.RGBA{255, 255, 0, 255}) {
		t.Errorf("ShapeColor(yellow) = %v", got)
	}

	bogus := shapes.Shape{Kind: shapes.Blocker, Color: "bogus"}
	if got := ShapeColor(bogus); got != KindColor(shapes.Blocker) {
		t.Errorf("unknown colour should fall back to the blocker default, got %v", got)
	}
}

func TestKindColorPanicsOnUnknownKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	KindColor(shapes.Kind(99))
}

func TestDarkenLighten(t *testing.T) {
	c := color.RGBA{100, 200, 50, 255}
	if got := Darken(c, 0.5); got != (color.RGBA{50, 100, 25, 255}) {
		t.Errorf("Darken = %v", got)
	}
	if got := Lighten(c, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Lighten = %v", got)
	}
}
