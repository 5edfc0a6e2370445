// Package theme holds the style values the layout and drawing code consume:
// margins, border width, corner radius, label size and the color palette.
//
// Themes come from Default or from a YAML or TOML file via Load.
package theme

import (
	"fmt"
	"image/color"
	"strings"
)

// Mode selects the light or dark palette.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	switch m {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "light" or "dark".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("unknown theme mode %q (use light or dark)", s)
	}
}

// Theme is a resolved set of style values.
type Theme struct {
	Name string
	Mode Mode

	// Margin is the space kept around every widget inside its parent.
	Margin float64
	// BorderWidth is the stroke width of boxes; clipping rectangles extend
	// this far past a widget's window rectangle.
	BorderWidth float64
	// RoundingRadius is the corner radius of buttons and tabs.
	RoundingRadius float64
	// LabelSize is the point size used for labels.
	LabelSize float64

	AccentColor color.RGBA
	LabelColor  color.RGBA
	BorderColor color.RGBA
	// FillColors holds one shade per semantic layer, cycled.
	FillColors []color.RGBA
}

// Default returns the built-in theme for a mode.
func Default(mode Mode) *Theme {
	t := &Theme{
		Name:           "default-" + mode.String(),
		Mode:           mode,
		Margin:         6,
		BorderWidth:    1,
		RoundingRadius: 5,
		LabelSize:      13,
		AccentColor:    color.RGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff},
	}
	switch mode {
	case Dark:
		t.LabelColor = color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
		t.BorderColor = color.RGBA{R: 0x5a, G: 0x5a, B: 0x5a, A: 0xff}
		t.FillColors = []color.RGBA{
			{R: 0x10, G: 0x10, B: 0x10, A: 0xff},
			{R: 0x1c, G: 0x1c, B: 0x1c, A: 0xff},
			{R: 0x28, G: 0x28, B: 0x28, A: 0xff},
			{R: 0x34, G: 0x34, B: 0x34, A: 0xff},
			{R: 0x40, G: 0x40, B: 0x40, A: 0xff},
		}
	default:
		t.LabelColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
		t.BorderColor = color.RGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}
		t.FillColors = []color.RGBA{
			{R: 0xf4, G: 0xf4, B: 0xf4, A: 0xff},
			{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff},
			{R: 0xdc, G: 0xdc, B: 0xdc, A: 0xff},
			{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff},
			{R: 0xc4, G: 0xc4, B: 0xc4, A: 0xff},
		}
	}
	return t
}

// FillColor returns the fill shade for a semantic layer. Negative layers
// use the first shade; layers past the palette wrap around.
func (t *Theme) FillColor(semanticLayer int) color.RGBA {
	if len(t.FillColors) == 0 {
		return color.RGBA{}
	}
	if semanticLayer < 0 {
		semanticLayer = 0
	}
	return t.FillColors[semanticLayer%len(t.FillColors)]
}

// Validate checks that the values can drive layout.
func (t *Theme) Validate() error {
	switch {
	case t.Margin < 0:
		return fmt.Errorf("margin must be non-negative, got %g", t.Margin)
	case t.BorderWidth < 0:
		return fmt.Errorf("border width must be non-negative, got %g", t.BorderWidth)
	case t.RoundingRadius < 0:
		return fmt.Errorf("rounding radius must be non-negative, got %g", t.RoundingRadius)
	case t.LabelSize <= 0:
		return fmt.Errorf("label size must be positive, got %g", t.LabelSize)
	case len(t.FillColors) == 0:
		return fmt.Errorf("at least one fill color is required")
	}
	return nil
}

// Clone returns a deep copy.
func (t *Theme) Clone() *Theme {
	c := *t
	c.FillColors = append([]color.RGBA(nil), t.FillColors...)
	return &c
}
