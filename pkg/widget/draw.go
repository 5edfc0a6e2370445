package widget

import (
	"image/color"

	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/paintorder"
	"github.com/go-strata/strata/pkg/render"
	"github.com/go-strata/strata/pkg/text"
	"github.com/go-strata/strata/pkg/theme"
)

// DrawContext carries the drawing state for one widget. It is a value:
// widgets adjust copies of it and never affect their siblings.
type DrawContext struct {
	Sink        render.Sink
	Theme       *theme.Theme
	Layers      paintorder.Layers
	Depth       paintorder.Depth
	Translate   geometry.Point
	Clip        geometry.Rect
	Fill        color.RGBA
	Border      color.RGBA
	Corners     [4]float64
	BorderWidth float64
}

// NewDrawContext returns the context the window hands to its root.
func NewDrawContext(sink render.Sink, th *theme.Theme, clip geometry.Rect) DrawContext {
	return DrawContext{
		Sink:        sink,
		Theme:       th,
		Clip:        clip,
		Fill:        th.FillColor(0),
		Border:      th.BorderColor,
		Corners:     uniformCorners(th.RoundingRadius),
		BorderWidth: th.BorderWidth,
	}
}

// MakeDrawContext returns the context for w: clipped to w's clipping
// rectangle, at w's layers, with the fill shade of w's semantic layer.
func (c DrawContext) MakeDrawContext(w Widget) DrawContext {
	n := w.Node()
	out := c
	out.Layers = n.layers
	out.Depth = n.layers.Depth(paintorder.Base, 0)
	out.Clip = n.clipRect
	out.Fill = c.Theme.FillColor(n.layers.Semantic)
	out.Border = c.Theme.BorderColor
	out.Corners = uniformCorners(c.Theme.RoundingRadius)
	out.BorderWidth = c.Theme.BorderWidth
	return out
}

// WithSlot returns a copy drawing at slot, raised by above whole layers.
func (c DrawContext) WithSlot(slot paintorder.Slot, above int) DrawContext {
	c.Depth = c.Layers.Depth(slot, above)
	return c
}

// WithFill returns a copy with a different fill color.
func (c DrawContext) WithFill(fill color.RGBA) DrawContext {
	c.Fill = fill
	return c
}

// WithCorners returns a copy with per-corner radii, indexed like
// geometry.Corner.
func (c DrawContext) WithCorners(corners [4]float64) DrawContext {
	c.Corners = corners
	return c
}

// WithClip returns a copy clipped to clip.
func (c DrawContext) WithClip(clip geometry.Rect) DrawContext {
	c.Clip = clip
	return c
}

func (c DrawContext) transform() render.Transform {
	return render.Transform{Translate: c.Translate, Depth: float64(c.Depth)}
}

// DrawFilledQuad fills rect without a border.
func (c DrawContext) DrawFilledQuad(rect geometry.Rect) {
	c.Sink.Submit(render.Quad{
		Rect:      rect,
		Corners:   c.Corners,
		Fill:      c.Fill,
		Transform: c.transform(),
		ClipRect:  c.Clip,
	})
}

// DrawBoxIncludeBorder fills rect and draws the border inside it.
func (c DrawContext) DrawBoxIncludeBorder(rect geometry.Rect) {
	c.Sink.Submit(render.Quad{
		Rect:        rect,
		Corners:     c.Corners,
		Fill:        c.Fill,
		Border:      c.Border,
		BorderWidth: c.BorderWidth,
		Transform:   c.transform(),
		ClipRect:    c.Clip,
	})
}

// DrawBoxExcludeBorder fills rect and draws the border just outside it.
func (c DrawContext) DrawBoxExcludeBorder(rect geometry.Rect) {
	c.DrawBoxIncludeBorder(geometry.Expand(rect, c.BorderWidth))
}

// DrawText draws cell inside rect.
func (c DrawContext) DrawText(cell *text.Cell, rect geometry.Rect, alignment geometry.Alignment, baseline geometry.Baseline) {
	m := cell.Metrics()
	c.Sink.Submit(render.Text{
		Content:   cell.Content,
		Origin:    cell.Origin(rect, alignment, baseline),
		Extent:    m.Extent,
		Ascent:    m.Ascent,
		Color:     cell.Color,
		Face:      cell.Face(),
		Transform: c.transform(),
		ClipRect:  c.Clip,
	})
}

func uniformCorners(r float64) [4]float64 {
	return [4]float64{r, r, r, r}
}
