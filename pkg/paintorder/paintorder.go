// Package paintorder assigns every widget and every primitive a depth so
// overlapping content composites in a fixed order without sorting the tree.
//
// A widget's Layers are derived from its parent in O(1): a nested widget
// sits one draw layer and one semantic layer above its parent, and an
// overlay root jumps OverlayOffset draw layers above its logical parent
// while restarting the semantic nesting at zero. Within the unit interval
// [draw, draw+1) each primitive takes a Slot from a fixed budget, so two
// primitives of one widget that must stay independently visible never share
// a depth.
package paintorder

import (
	"cmp"
	"fmt"

	"github.com/go-strata/strata/pkg/errors"
)

// OverlayOffset is the number of draw layers an overlay root is placed
// above its logical parent.
const OverlayOffset = 20

// Layers is the stacking position of a widget.
type Layers struct {
	// Semantic is the nesting depth used to pick fill shades. It restarts at
	// zero at the root of an overlay.
	Semantic int
	// Draw is the paint priority bucket.
	Draw float64
}

// Root returns the layers of a top-level widget.
func Root() Layers {
	return Layers{}
}

// Child returns the layers of a widget nested directly inside parent.
func Child(parent Layers) Layers {
	return Layers{Semantic: parent.Semantic + 1, Draw: parent.Draw + 1}
}

// Overlay returns the layers of an overlay root whose logical parent is
// parent.
func Overlay(parent Layers) Layers {
	return Layers{Semantic: 0, Draw: parent.Draw + OverlayOffset}
}

// Less reports whether l paints below o.
func (l Layers) Less(o Layers) bool {
	return l.Draw < o.Draw
}

// Depth returns the depth of a primitive drawn by a widget at these
// layers in the given slot, raised by above whole layers.
func (l Layers) Depth(slot Slot, above int) Depth {
	return Depth(l.Draw + float64(above) + slot.Offset())
}

func (l Layers) String() string {
	return fmt.Sprintf("semantic=%d draw=%g", l.Semantic, l.Draw)
}

// Depth is the paint-order key of one primitive. Larger depths paint on
// top.
type Depth float64

// Compare orders two depths.
func Compare(a, b Depth) int {
	return cmp.Compare(a, b)
}

// Slot is a reserved fractional offset within one draw layer.
type Slot int

// The slot budget. Offsets are strictly increasing and lie in [0, 1).
//
// FocusLine is reserved for a child's focus indicator drawn through its
// parent's context one layer up: parent.Draw + 1 + 0.7 lands between the
// child's SelectedFill and FocusedFill, above every sibling's base fill.
const (
	Base Slot = iota
	Background
	Border
	SelectedFill
	FocusLine
	FocusedFill
	Label
	numSlots
)

var slotOffsets = [numSlots]float64{
	Base:         0.0,
	Background:   0.1,
	Border:       0.2,
	SelectedFill: 0.6,
	FocusLine:    0.7,
	FocusedFill:  0.8,
	Label:        0.9,
}

var slotNames = [numSlots]string{
	Base:         "base",
	Background:   "background",
	Border:       "border",
	SelectedFill: "selected-fill",
	FocusLine:    "focus-line",
	FocusedFill:  "focused-fill",
	Label:        "label",
}

func init() {
	validateBudget(slotOffsets[:])
}

func validateBudget(offsets []float64) {
	for i, off := range offsets {
		errors.Assert(off >= 0 && off < 1, "paintorder.validateBudget", "slot %d offset %g outside [0, 1)", i, off)
		if i > 0 {
			errors.Assert(off > offsets[i-1], "paintorder.validateBudget",
				"slot %d offset %g does not exceed slot %d offset %g", i, off, i-1, offsets[i-1])
		}
	}
}

// Offset returns the fractional depth reserved for the slot.
func (s Slot) Offset() float64 {
	if s < 0 || s >= numSlots {
		errors.Violation("paintorder.Slot.Offset", "slot %d out of range", int(s))
	}
	return slotOffsets[s]
}

func (s Slot) String() string {
	if s < 0 || s >= numSlots {
		return fmt.Sprintf("Slot(%d)", int(s))
	}
	return slotNames[s]
}

// Slots returns the budget in increasing depth order.
func Slots() []Slot {
	out := make([]Slot, 0, numSlots)
	for s := Base; s < numSlots; s++ {
		out = append(out, s)
	}
	return out
}
