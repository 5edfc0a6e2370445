package widgets

import (
	"time"

	"github.com/go-strata/strata/pkg/errors"
	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/paintorder"
	"github.com/go-strata/strata/pkg/treelock"
	"github.com/go-strata/strata/pkg/widget"
)

// Overlay is a floating region, such as a menu or a popup, that hosts
// exactly one child. It paints OverlayOffset draw layers above its logical
// parent and is kept inside the window regardless of where the parent is.
//
// Without an explicit position an overlay opens below its parent, left
// edges aligned. An overlay at the root of a window takes the rectangle the
// window gives it.
type Overlay struct {
	widget.Base

	child    widget.Widget
	position *geometry.Point
}

// NewOverlay creates an overlay under parent, which may be nil for a root
// overlay. Create its content with the overlay as parent.
func NewOverlay(tok *treelock.Token, win widget.Window, parent widget.Widget) *Overlay {
	o := &Overlay{}
	o.InitOverlay(tok, o, win, parent)
	return o
}

// AdoptChild makes child the content, destroying any previous content.
func (o *Overlay) AdoptChild(tok *treelock.Token, child widget.Widget) {
	if o.child != nil {
		widget.Destroy(tok, o.child)
	}
	o.child = child
	o.AddChild(tok, child)
}

// Child returns the content, or nil before one is created.
func (o *Overlay) Child() widget.Widget {
	return o.child
}

// Floating reports whether the overlay positions itself, which is the
// case whenever it has a parent.
func (o *Overlay) Floating() bool {
	return o.Parent() != nil
}

// SetPosition places the overlay's left-top corner at p.
func (o *Overlay) SetPosition(tok *treelock.Token, p geometry.Point) {
	o.position = &p
	o.RequestRelayout(tok)
}

// ClearPosition restores the default placement below the parent.
func (o *Overlay) ClearPosition(tok *treelock.Token) {
	o.position = nil
	o.RequestRelayout(tok)
}

func (o *Overlay) mustChild(op string) widget.Widget {
	errors.Assert(o.child != nil && !o.child.Node().Destroyed(), op, "overlay has no child")
	return o.child
}

// UpdateConstraints copies the child's preferred size and baseline.
func (o *Overlay) UpdateConstraints(tok *treelock.Token) bool {
	child := o.mustChild("widgets.Overlay.UpdateConstraints")
	changed := child.UpdateConstraints(tok)
	if o.Base.UpdateConstraints(tok) {
		changed = true
	}
	if changed {
		n := child.Node()
		o.SetPreferred(n.PreferredSize(), n.PreferredBaseline())
	}
	return changed
}

// UpdateLayout places the overlay, clamps it with its margin into the
// window, and gives the child the same rectangle.
func (o *Overlay) UpdateLayout(tok *treelock.Token, displayTime time.Time, force bool) bool {
	child := o.mustChild("widgets.Overlay.UpdateLayout")
	force = o.ConsumeRelayout(force)

	rect := o.placement()
	if !rect.IsEmpty() {
		window := geometry.RectFromExtent(o.Window().Extent())
		rect = geometry.Shrink(geometry.Fit(window, geometry.Expand(rect, o.Margin())), o.Margin())
	}
	clip := geometry.Expand(rect, o.Window().Theme().BorderWidth)
	if !rect.Eq(o.WindowRect()) || !clip.Eq(o.ClipRect()) {
		o.SetBounds(rect, clip)
		force = true
	}

	child.SetLayoutParameters(tok, rect, clip)
	return child.UpdateLayout(tok, displayTime, force) || force
}

// placement returns the unclamped rectangle. While the parent has no
// rectangle yet the overlay is empty.
func (o *Overlay) placement() geometry.Rect {
	parent := o.Parent()
	if parent == nil {
		return o.WindowRect()
	}
	size := o.PreferredSize().Min
	if o.position != nil {
		p := *o.position
		return geometry.RectFromXYWH(p.X, p.Y-size.Height, size.Width, size.Height)
	}
	pr := parent.Node().WindowRect()
	if pr.IsEmpty() {
		return geometry.Rect{}
	}
	return geometry.RectFromXYWH(pr.Min.X, pr.Min.Y-size.Height, size.Width, size.Height)
}

func (o *Overlay) Draw(tok *treelock.Token, ctx widget.DrawContext, displayTime time.Time) {
	tok.MustHold("widgets.Overlay.Draw")
	child := o.mustChild("widgets.Overlay.Draw")
	if o.WindowRect().IsEmpty() {
		return
	}
	ctx.WithSlot(paintorder.Background, 0).DrawBoxExcludeBorder(o.WindowRect())
	child.Draw(tok, ctx.MakeDrawContext(child), displayTime)
}
