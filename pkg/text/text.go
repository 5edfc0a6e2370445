// Package text measures labels for the constraint pass and positions them
// for drawing. Shaping is out of scope: a Measurer is an opaque sizing
// oracle.
package text

import (
	"image/color"

	"golang.org/x/image/font"

	"github.com/go-strata/strata/pkg/geometry"
)

// Metrics describes the extent of a measured string.
type Metrics struct {
	// Extent is the advance width and line height.
	Extent geometry.Extent
	// Ascent is the distance from the baseline to the top of the line.
	Ascent float64
}

// Measurer sizes strings.
type Measurer interface {
	Measure(s string) Metrics
}

// FaceProvider is implemented by measurers backed by a font face that a
// rasterizer can draw with.
type FaceProvider interface {
	Face() font.Face
}

// Cell is a measured label ready to be laid out and drawn.
type Cell struct {
	Content string
	Color   color.RGBA
	metrics Metrics
	face    font.Face
}

// NewCell measures content with m.
func NewCell(m Measurer, content string, c color.RGBA) *Cell {
	cell := &Cell{Content: content, Color: c, metrics: m.Measure(content)}
	if fp, ok := m.(FaceProvider); ok {
		cell.face = fp.Face()
	}
	return cell
}

// PreferredExtent returns the size the label needs.
func (c *Cell) PreferredExtent() geometry.Extent {
	return c.metrics.Extent
}

// Metrics returns the measured metrics.
func (c *Cell) Metrics() Metrics {
	return c.metrics
}

// Face returns the face the cell was measured with, or nil.
func (c *Cell) Face() font.Face {
	return c.face
}

// Origin returns the baseline-left point at which to draw the label inside
// rect. The text box is aligned horizontally by alignment; vertically its
// baseline is placed at baseline resolved against rect.
func (c *Cell) Origin(rect geometry.Rect, alignment geometry.Alignment, baseline geometry.Baseline) geometry.Point {
	box := geometry.Align(rect, geometry.RectFromExtent(c.metrics.Extent), alignment)
	y := baseline.Position(rect.Min.Y, rect.Max.Y)
	// Baseline.Position points at the middle of the line for a Middle
	// anchor; move down to the glyph baseline.
	if baseline.Anchor == geometry.Middle {
		y -= c.metrics.Ascent - c.metrics.Extent.Height*0.5
	}
	return geometry.Point{X: box.Min.X, Y: y}
}
