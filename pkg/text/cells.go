package text

import (
	"github.com/mattn/go-runewidth"

	"github.com/go-strata/strata/pkg/geometry"
)

// CellMeasurer measures strings in fixed-size character cells, the way a
// terminal backend lays text out. East Asian wide runes take two cells.
type CellMeasurer struct {
	CellWidth  float64
	CellHeight float64
}

// Measure returns the cell extent of s.
func (m CellMeasurer) Measure(s string) Metrics {
	cols := runewidth.StringWidth(s)
	return Metrics{
		Extent: geometry.Extent{
			Width:  float64(cols) * m.CellWidth,
			Height: m.CellHeight,
		},
		Ascent: m.CellHeight,
	}
}
