// Package widget defines the widget tree: the node every widget embeds, the
// two layout passes, hit testing and the draw context widgets paint with.
//
// Every method that reads or writes layout state takes the tree lock token.
// Accessors without a token are for code that already holds one.
package widget

import (
	"time"

	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/text"
	"github.com/go-strata/strata/pkg/theme"
	"github.com/go-strata/strata/pkg/treelock"
)

// Widget is the capability set every node of the tree implements. Embed
// Base and override the passes that need widget-specific behavior.
type Widget interface {
	// Node returns the embedded state shared by all widgets.
	Node() *Base

	// UpdateConstraints recomputes the preferred size bottom-up. It returns
	// true when this widget's preferred values were recomputed.
	UpdateConstraints(tok *treelock.Token) bool

	// UpdateLayout assigns rectangles top-down. It returns true when
	// anything in the subtree needs to be redrawn.
	UpdateLayout(tok *treelock.Token, displayTime time.Time, force bool) bool

	// SetLayoutParameters is called by the parent to assign the window
	// rectangle and clipping rectangle.
	SetLayoutParameters(tok *treelock.Token, rect, clip geometry.Rect)

	// Draw submits primitives for the widget and its children.
	Draw(tok *treelock.Token, ctx DrawContext, displayTime time.Time)

	// HitTest returns the topmost widget of the subtree under p.
	HitTest(tok *treelock.Token, p geometry.Point) (HitBox, bool)

	// AsTabContainer reports whether the widget hosts tab buttons.
	AsTabContainer() (TabContainer, bool)
}

// Window is what widgets read from the top-level window they belong to.
type Window interface {
	Lock() *treelock.Lock
	Extent() geometry.Extent
	Active() bool
	Theme() *theme.Theme
	Measurer() text.Measurer
}

// Adopter is implemented by containers that restrict how children attach,
// such as an overlay that hosts exactly one child.
type Adopter interface {
	AdoptChild(tok *treelock.Token, child Widget)
}

// Floating is implemented by widgets that position themselves instead of
// taking a cell from their parent's layout.
type Floating interface {
	Floating() bool
}

// IsFloating reports whether w lays itself out.
func IsFloating(w Widget) bool {
	f, ok := w.(Floating)
	return ok && f.Floating()
}

// Walk visits w and its descendants in tree order.
func Walk(w Widget, fn func(Widget)) {
	fn(w)
	for _, c := range w.Node().children {
		Walk(c, fn)
	}
}
