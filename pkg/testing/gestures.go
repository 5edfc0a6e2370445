package testing

import (
	"fmt"

	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/window"
)

// Tap presses and releases at the center of the first widget matched by
// finder, then pumps a frame.
func (t *WindowTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no widgets: %s", finder.Description())
	}
	r := t.Rect(result.First())
	if r.IsEmpty() {
		return fmt.Errorf("Tap: widget has no rectangle: %s", finder.Description())
	}
	t.TapAt(r.Center())
	return nil
}

// TapAt presses and releases at p, then pumps a frame.
func (t *WindowTester) TapAt(p geometry.Point) {
	t.win.HandlePointer(window.PointerEvent{Phase: window.PointerPhaseDown, Position: p})
	t.win.HandlePointer(window.PointerEvent{Phase: window.PointerPhaseUp, Position: p})
	t.Pump()
}

// HoverAt moves the pointer to p, then pumps a frame.
func (t *WindowTester) HoverAt(p geometry.Point) {
	t.win.HandlePointer(window.PointerEvent{Phase: window.PointerPhaseMove, Position: p})
	t.Pump()
}

// Leave moves the pointer out of the window, then pumps a frame.
func (t *WindowTester) Leave() {
	t.win.HandlePointer(window.PointerEvent{Phase: window.PointerPhaseCancel})
	t.Pump()
}

// Tab moves keyboard focus forward, or backward when reverse is set, then
// pumps a frame.
func (t *WindowTester) Tab(reverse bool) {
	t.win.FocusNext(reverse)
	t.Pump()
}

// PressEnter activates the focused widget, then pumps a frame.
func (t *WindowTester) PressEnter() bool {
	ok := t.win.ActivateFocused()
	t.Pump()
	return ok
}
