package widget

import (
	"slices"
	"time"

	"github.com/go-strata/strata/pkg/errors"
	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/observable"
	"github.com/go-strata/strata/pkg/paintorder"
	"github.com/go-strata/strata/pkg/treelock"
)

// Base provides the state and default pass behavior shared by all widgets.
type Base struct {
	self     Widget
	window   Window
	parent   Widget // non-owning
	children []Widget
	subs     []observable.Subscription

	preferredSize     geometry.ExtentRange
	preferredBaseline geometry.Baseline
	windowRect        geometry.Rect
	clipRect          geometry.Rect
	layers            paintorder.Layers
	margin            float64

	requestReconstrain bool
	requestRelayout    bool

	hover     bool
	focus     bool
	enabled   bool
	destroyed bool
}

// Init registers self, derives its paint layers from parent and attaches
// it. parent is nil for the root widget. Both passes start dirty.
func (b *Base) Init(tok *treelock.Token, self Widget, window Window, parent Widget) {
	b.init(tok, self, window, parent, false)
}

// InitOverlay is Init for the root of an overlay subtree: the semantic
// layer restarts at zero and the draw layer jumps above the parent.
func (b *Base) InitOverlay(tok *treelock.Token, self Widget, window Window, parent Widget) {
	b.init(tok, self, window, parent, true)
}

func (b *Base) init(tok *treelock.Token, self Widget, window Window, parent Widget, overlay bool) {
	const op = "widget.Base.Init"
	errors.Assert(window != nil, op, "widget created without a window")
	tok.MustHoldLock(op, window.Lock())
	errors.Assert(self != nil && self.Node() == b, op, "self does not embed this base")

	b.self = self
	b.window = window
	b.parent = parent
	b.enabled = true
	b.margin = window.Theme().Margin
	b.requestReconstrain = true
	b.requestRelayout = true

	parentLayers := paintorder.Root()
	if parent != nil {
		parentLayers = parent.Node().layers
	}
	switch {
	case overlay:
		b.layers = paintorder.Overlay(parentLayers)
	case parent != nil:
		b.layers = paintorder.Child(parentLayers)
	default:
		b.layers = paintorder.Root()
	}

	if parent == nil {
		return
	}
	if a, ok := parent.(Adopter); ok {
		a.AdoptChild(tok, self)
		return
	}
	parent.Node().AddChild(tok, self)
}

// Node returns b.
func (b *Base) Node() *Base {
	return b
}

// Self returns the concrete widget registered by Init.
func (b *Base) Self() Widget {
	return b.self
}

// AddChild appends a child that was initialized with this widget as its
// parent. Adopters call it after enforcing their own rules.
func (b *Base) AddChild(tok *treelock.Token, child Widget) {
	const op = "widget.Base.AddChild"
	tok.MustHold(op)
	errors.Assert(child.Node().parent == b.self, op, "child was initialized under another parent")
	b.children = append(b.children, child)
	b.requestReconstrain = true
	b.requestRelayout = true
}

// RemoveChild detaches child and destroys its subtree.
func (b *Base) RemoveChild(tok *treelock.Token, child Widget) {
	const op = "widget.Base.RemoveChild"
	tok.MustHold(op)
	errors.Assert(child.Node().parent == b.self, op, "not a child of this widget")
	Destroy(tok, child)
}

// Destroy tears down w: children first, then its subscriptions, then the
// link to its parent. Destroying a widget twice does nothing.
func Destroy(tok *treelock.Token, w Widget) {
	tok.MustHold("widget.Destroy")
	b := w.Node()
	if b.destroyed {
		return
	}
	children := slices.Clone(b.children)
	for i := len(children) - 1; i >= 0; i-- {
		Destroy(tok, children[i])
	}
	b.children = nil

	for _, s := range b.subs {
		s.Cancel()
	}
	b.subs = nil

	if p := b.parent; p != nil {
		pb := p.Node()
		pb.children = slices.DeleteFunc(pb.children, func(c Widget) bool { return c == w })
		pb.requestReconstrain = true
		pb.requestRelayout = true
	}
	b.parent = nil
	b.destroyed = true
}

// Observe ties a subscription to the widget's lifetime.
func (b *Base) Observe(s observable.Subscription) {
	b.subs = append(b.subs, s)
}

// Parent returns the parent, or nil for the root and destroyed widgets.
func (b *Base) Parent() Widget { return b.parent }

// Children returns a copy of the children in order.
func (b *Base) Children() []Widget { return slices.Clone(b.children) }

// Window returns the window the widget belongs to.
func (b *Base) Window() Window { return b.window }

func (b *Base) PreferredSize() geometry.ExtentRange  { return b.preferredSize }
func (b *Base) PreferredBaseline() geometry.Baseline { return b.preferredBaseline }
func (b *Base) WindowRect() geometry.Rect            { return b.windowRect }
func (b *Base) ClipRect() geometry.Rect              { return b.clipRect }
func (b *Base) Layers() paintorder.Layers            { return b.layers }
func (b *Base) Margin() float64                      { return b.margin }
func (b *Base) Hover() bool                          { return b.hover }
func (b *Base) Focus() bool                          { return b.focus }
func (b *Base) Enabled() bool                        { return b.enabled }
func (b *Base) Destroyed() bool                      { return b.destroyed }

// NeedsReconstrain reports whether the next constraint pass will recompute
// this widget.
func (b *Base) NeedsReconstrain() bool { return b.requestReconstrain }

// NeedsRelayout reports whether the next layout pass will be forced here.
func (b *Base) NeedsRelayout() bool { return b.requestRelayout }

// SetPreferred stores the result of a constraint pass. A change marks the
// widget and its parent for relayout.
func (b *Base) SetPreferred(size geometry.ExtentRange, baseline geometry.Baseline) {
	if size == b.preferredSize && baseline == b.preferredBaseline {
		return
	}
	b.preferredSize = size
	b.preferredBaseline = baseline
	b.requestRelayout = true
	if b.parent != nil {
		b.parent.Node().requestRelayout = true
	}
}

// SetBounds changes both rectangles without requesting a relayout. Widgets
// that position themselves call it from their own layout pass.
func (b *Base) SetBounds(rect, clip geometry.Rect) {
	b.windowRect = rect
	b.clipRect = clip
}

// RequestReconstrain marks the widget for the next constraint pass. The
// layout is invalidated with it.
func (b *Base) RequestReconstrain(tok *treelock.Token) {
	tok.MustHold("widget.Base.RequestReconstrain")
	b.requestReconstrain = true
	b.requestRelayout = true
}

// RequestRelayout marks the widget for the next layout pass, which also
// reports it as needing a redraw.
func (b *Base) RequestRelayout(tok *treelock.Token) {
	tok.MustHold("widget.Base.RequestRelayout")
	b.requestRelayout = true
}

// SetHover updates the hover state.
func (b *Base) SetHover(tok *treelock.Token, v bool) {
	tok.MustHold("widget.Base.SetHover")
	if b.hover != v {
		b.hover = v
		b.requestRelayout = true
	}
}

// SetFocus updates the keyboard focus state.
func (b *Base) SetFocus(tok *treelock.Token, v bool) {
	tok.MustHold("widget.Base.SetFocus")
	if b.focus != v {
		b.focus = v
		b.requestRelayout = true
	}
}

// SetEnabled updates whether the widget accepts input.
func (b *Base) SetEnabled(tok *treelock.Token, v bool) {
	tok.MustHold("widget.Base.SetEnabled")
	if b.enabled != v {
		b.enabled = v
		b.requestRelayout = true
	}
}

// UpdateConstraints consumes the reconstrain flag and returns it. Leaf
// widgets recompute their preferred values when it returns true.
func (b *Base) UpdateConstraints(tok *treelock.Token) bool {
	tok.MustHold("widget.Base.UpdateConstraints")
	changed := b.requestReconstrain
	b.requestReconstrain = false
	return changed
}

// UpdateChildConstraints runs the constraint pass on every child and
// reports whether any of them changed.
func (b *Base) UpdateChildConstraints(tok *treelock.Token) bool {
	changed := false
	for _, c := range b.children {
		if c.UpdateConstraints(tok) {
			changed = true
		}
	}
	return changed
}

// ConsumeRelayout returns force ORed with the relayout flag and clears the
// flag.
func (b *Base) ConsumeRelayout(force bool) bool {
	force = force || b.requestRelayout
	b.requestRelayout = false
	return force
}

// UpdateLayout consumes the relayout flag and lays out every child with the
// rectangle it already has.
func (b *Base) UpdateLayout(tok *treelock.Token, displayTime time.Time, force bool) bool {
	tok.MustHold("widget.Base.UpdateLayout")
	force = b.ConsumeRelayout(force)
	return b.UpdateChildLayout(tok, displayTime, force) || force
}

// UpdateChildLayout runs the layout pass on every child and reports
// whether any of them needs a redraw.
func (b *Base) UpdateChildLayout(tok *treelock.Token, displayTime time.Time, force bool) bool {
	redraw := false
	for _, c := range b.children {
		if c.UpdateLayout(tok, displayTime, force) {
			redraw = true
		}
	}
	return redraw
}

// SetLayoutParameters stores the rectangles and marks the widget for
// relayout when either changed.
func (b *Base) SetLayoutParameters(tok *treelock.Token, rect, clip geometry.Rect) {
	tok.MustHold("widget.Base.SetLayoutParameters")
	if rect.Eq(b.windowRect) && clip.Eq(b.clipRect) {
		return
	}
	b.windowRect = rect
	b.clipRect = clip
	b.requestRelayout = true
}

// PlaceChild assigns child the cell rectangle kept inside this widget:
// the cell plus its margin is fitted into the window rectangle, then the
// margin is taken off again. The child clips to its rectangle expanded by
// the border width.
func (b *Base) PlaceChild(tok *treelock.Token, child Widget, cell geometry.Rect) geometry.Rect {
	rect := b.FitChild(cell)
	child.SetLayoutParameters(tok, rect, geometry.Expand(rect, b.window.Theme().BorderWidth))
	return rect
}

// FitChild returns the rectangle PlaceChild would assign for cell.
func (b *Base) FitChild(cell geometry.Rect) geometry.Rect {
	return geometry.Shrink(geometry.Fit(b.windowRect, geometry.Expand(cell, b.margin)), b.margin)
}

// Draw draws the children.
func (b *Base) Draw(tok *treelock.Token, ctx DrawContext, displayTime time.Time) {
	tok.MustHold("widget.Base.Draw")
	b.DrawChildren(tok, ctx, displayTime)
}

// DrawChildren draws every child with its own context.
func (b *Base) DrawChildren(tok *treelock.Token, ctx DrawContext, displayTime time.Time) {
	for _, c := range b.children {
		c.Draw(tok, ctx.MakeDrawContext(c), displayTime)
	}
}

// AsTabContainer reports false; containers of tab buttons override it.
func (b *Base) AsTabContainer() (TabContainer, bool) {
	return nil, false
}
