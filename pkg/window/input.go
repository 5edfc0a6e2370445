package window

import (
	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/treelock"
	"github.com/go-strata/strata/pkg/widget"
)

// PointerPhase is the phase of a pointer event.
type PointerPhase int

const (
	PointerPhaseMove PointerPhase = iota
	PointerPhaseDown
	PointerPhaseUp
	// PointerPhaseCancel is sent when the pointer leaves the window.
	PointerPhaseCancel
)

// PointerEvent is a pointer update in window coordinates.
type PointerEvent struct {
	Phase    PointerPhase
	Position geometry.Point
}

// HandlePointer routes a pointer event. The hit widget becomes hovered; a
// press focuses an activatable widget, and releasing over the same widget
// activates it.
func (w *Window) HandlePointer(ev PointerEvent) {
	w.lock.Do(func(tok *treelock.Token) {
		w.dropDestroyed()

		if ev.Phase == PointerPhaseCancel {
			w.setHovered(tok, nil)
			w.pressed = nil
			return
		}

		var target widget.Widget
		if hb, ok := w.hitTest(tok, ev.Position); ok {
			target = hb.Widget
		}
		w.setHovered(tok, target)

		switch ev.Phase {
		case PointerPhaseDown:
			if a, ok := target.(widget.Activatable); ok && a.Node().Enabled() {
				w.pressed = a
				w.setFocused(tok, a)
			}
		case PointerPhaseUp:
			pressed := w.pressed
			w.pressed = nil
			if pressed != nil && pressed == target {
				pressed.(widget.Activatable).Activate(tok)
			}
		}
	})
}

// FocusNext moves keyboard focus to the next focusable widget in tree
// order, or to the previous one when reverse is set.
func (w *Window) FocusNext(reverse bool) widget.Widget {
	var next widget.Widget
	w.lock.Do(func(tok *treelock.Token) {
		w.dropDestroyed()
		if w.root == nil {
			return
		}
		next = widget.NextKeyboardWidget(tok, w.root, w.focused, reverse)
		w.setFocused(tok, next)
	})
	return next
}

// ActivateFocused activates the focused widget, as a key press would.
func (w *Window) ActivateFocused() bool {
	activated := false
	w.lock.Do(func(tok *treelock.Token) {
		w.dropDestroyed()
		if a, ok := w.focused.(widget.Activatable); ok {
			a.Activate(tok)
			activated = true
		}
	})
	return activated
}

// Hovered returns the widget under the pointer.
func (w *Window) Hovered() widget.Widget {
	var h widget.Widget
	w.lock.Do(func(*treelock.Token) { h = w.hovered })
	return h
}

// Focused returns the widget with keyboard focus.
func (w *Window) Focused() widget.Widget {
	var f widget.Widget
	w.lock.Do(func(*treelock.Token) { f = w.focused })
	return f
}

func (w *Window) setHovered(tok *treelock.Token, target widget.Widget) {
	if w.hovered == target {
		return
	}
	if w.hovered != nil {
		w.hovered.Node().SetHover(tok, false)
	}
	w.hovered = target
	if target != nil {
		target.Node().SetHover(tok, true)
	}
}

func (w *Window) setFocused(tok *treelock.Token, target widget.Widget) {
	if w.focused == target {
		return
	}
	if w.focused != nil {
		w.focused.Node().SetFocus(tok, false)
	}
	w.focused = target
	if target != nil {
		target.Node().SetFocus(tok, true)
	}
}

// dropDestroyed forgets widgets that were destroyed since the last event.
func (w *Window) dropDestroyed() {
	gone := func(x widget.Widget) bool { return x != nil && x.Node().Destroyed() }
	if gone(w.hovered) {
		w.hovered = nil
	}
	if gone(w.pressed) {
		w.pressed = nil
	}
	if gone(w.focused) {
		w.focused = nil
	}
}
