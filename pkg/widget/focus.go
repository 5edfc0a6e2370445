package widget

import (
	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/treelock"
)

// Activatable is implemented by widgets that react to a click or a key
// press.
type Activatable interface {
	Widget
	Activate(tok *treelock.Token)
}

// KeyboardFocusable is implemented by widgets that can take keyboard focus.
type KeyboardFocusable interface {
	Widget
	AcceptsKeyboardFocus() bool
}

// TabContainer is the capability a toolbar exposes to its tab buttons.
type TabContainer interface {
	Widget
	// TabStrip returns the rectangle tab buttons clip to and draw their
	// focus line along.
	TabStrip() geometry.Rect
}

// FindTabContainer returns the tab container hosting w, if its parent is
// one.
func FindTabContainer(w Widget) (TabContainer, bool) {
	p := w.Node().Parent()
	if p == nil {
		return nil, false
	}
	return p.AsTabContainer()
}

func focusable(w Widget) bool {
	kf, ok := w.(KeyboardFocusable)
	return ok && w.Node().enabled && kf.AcceptsKeyboardFocus()
}

// NextKeyboardWidget returns the focusable widget after current in tree
// order, or before it when reverse is set. The order wraps. A nil current
// starts from the beginning, or from the end when reverse is set. It
// returns nil when nothing under root accepts focus.
func NextKeyboardWidget(tok *treelock.Token, root, current Widget, reverse bool) Widget {
	tok.MustHold("widget.NextKeyboardWidget")
	var order []Widget
	Walk(root, func(w Widget) {
		if focusable(w) {
			order = append(order, w)
		}
	})
	if len(order) == 0 {
		return nil
	}

	idx := -1
	for i, w := range order {
		if w == current {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && reverse:
		return order[len(order)-1]
	case idx < 0:
		return order[0]
	case reverse:
		return order[(idx-1+len(order))%len(order)]
	default:
		return order[(idx+1)%len(order)]
	}
}
