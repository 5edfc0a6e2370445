package text

import (
	"image/color"
	"testing"

	"github.com/go-strata/strata/pkg/geometry"
)

func TestBasicMeasure(t *testing.T) {
	m := Basic()
	got := m.Measure("abcd").Extent
	if got.Width != 28 {
		t.Errorf("width = %g, want 28 (4 glyphs of 7)", got.Width)
	}
	if got.Height != 13 {
		t.Errorf("height = %g, want 13", got.Height)
	}
	if m.Measure("").Extent.Width != 0 {
		t.Error("empty string should have zero width")
	}
}

func TestGoRegularMeasure(t *testing.T) {
	m, err := GoRegular(16)
	if err != nil {
		t.Fatal(err)
	}
	short := m.Measure("i").Extent.Width
	long := m.Measure("iiii").Extent.Width
	if short <= 0 || long <= short {
		t.Errorf("widths %g, %g should be positive and grow with length", short, long)
	}
	if h := m.Measure("x").Extent.Height; h < 16 {
		t.Errorf("line height %g below font size", h)
	}
}

func TestCellMeasurer(t *testing.T) {
	m := CellMeasurer{CellWidth: 8, CellHeight: 16}
	tests := map[string]struct {
		s    string
		want float64
	}{
		"ascii": {"tab", 24},
		"wide":  {"日本", 32},
		"empty": {"", 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := m.Measure(tt.s).Extent
			if got.Width != tt.want || got.Height != 16 {
				t.Errorf("Measure(%q) = %v, want %gx16", tt.s, got, tt.want)
			}
		})
	}
}

func TestCellOrigin(t *testing.T) {
	cell := NewCell(CellMeasurer{CellWidth: 10, CellHeight: 10}, "ab", color.RGBA{A: 0xff})
	if cell.Face() != nil {
		t.Error("cell measurer should not provide a face")
	}
	if got := cell.PreferredExtent(); got != geometry.Ext(20, 10) {
		t.Fatalf("PreferredExtent = %v", got)
	}

	rect := geometry.RectFromXYWH(0, 0, 100, 40)
	origin := cell.Origin(rect, geometry.MiddleCenter, geometry.Baseline{Anchor: geometry.Middle})
	if origin.X != 40 {
		t.Errorf("origin x = %g, want 40", origin.X)
	}
	// Ascent equals the full cell height, so the baseline sits half a line
	// below the middle.
	if origin.Y != 15 {
		t.Errorf("origin y = %g, want 15", origin.Y)
	}

	origin = cell.Origin(rect, geometry.BottomLeft, geometry.Baseline{Anchor: geometry.Bottom, Offset: 3})
	if origin != geometry.Pt(0, 3) {
		t.Errorf("bottom origin = %v, want (0, 3)", origin)
	}
}

func TestNewCellKeepsFace(t *testing.T) {
	cell := NewCell(Basic(), "x", color.RGBA{})
	if cell.Face() == nil {
		t.Error("face measurer should provide its face")
	}
}
