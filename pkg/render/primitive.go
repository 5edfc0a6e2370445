// Package render defines the draw primitives widgets submit and a software
// backend that composites them. Primitives carry their paint-order depth;
// ordering them is the backend's job, never the widget tree's.
package render

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font"

	"github.com/go-strata/strata/pkg/geometry"
)

// Transform places a primitive: a 2D translation plus the paint-order depth.
type Transform struct {
	Translate geometry.Point
	Depth     float64
}

// Primitive is a single draw operation.
type Primitive interface {
	// Depth returns the paint-order depth. Larger depths paint later.
	Depth() float64
	// Clip returns the window-space rectangle outside of which the primitive
	// is not visible.
	Clip() geometry.Rect
	// Bounds returns the window-space area the primitive covers.
	Bounds() geometry.Rect
}

// Sink receives primitives from widgets.
type Sink interface {
	Submit(p Primitive)
}

// Quad is a filled rectangle with per-corner radii and an optional border.
// Corners are indexed like geometry.Corner.
type Quad struct {
	Rect        geometry.Rect
	Corners     [4]float64
	Fill        color.RGBA
	Border      color.RGBA
	BorderWidth float64
	Transform   Transform
	ClipRect    geometry.Rect
}

func (q Quad) Depth() float64        { return q.Transform.Depth }
func (q Quad) Clip() geometry.Rect   { return q.ClipRect }
func (q Quad) Bounds() geometry.Rect { return q.Rect.Translate(q.Transform.Translate) }

func (q Quad) String() string {
	return fmt.Sprintf("quad %v depth=%g", q.Bounds(), q.Depth())
}

// Text is a single run of text drawn from its baseline origin.
type Text struct {
	Content   string
	Origin    geometry.Point
	Extent    geometry.Extent
	Ascent    float64
	Color     color.RGBA
	Face      font.Face
	Transform Transform
	ClipRect  geometry.Rect
}

func (t Text) Depth() float64      { return t.Transform.Depth }
func (t Text) Clip() geometry.Rect { return t.ClipRect }

// Bounds returns the line box of the run.
func (t Text) Bounds() geometry.Rect {
	o := t.Origin.Add(t.Transform.Translate)
	descent := t.Extent.Height - t.Ascent
	return geometry.RectFromXYWH(o.X, o.Y-descent, t.Extent.Width, t.Extent.Height)
}

func (t Text) String() string {
	return fmt.Sprintf("text %q at %v depth=%g", t.Content, t.Origin, t.Depth())
}
