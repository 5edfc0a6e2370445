package widget

import (
	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/treelock"
)

// HitKind classifies what was hit.
type HitKind int

const (
	// HitInert is a widget that does not react to pointer input.
	HitInert HitKind = iota
	// HitControl is an Activatable widget.
	HitControl
)

func (k HitKind) String() string {
	switch k {
	case HitInert:
		return "inert"
	case HitControl:
		return "control"
	default:
		return "unknown"
	}
}

// HitBox is the result of a hit test.
type HitBox struct {
	Widget Widget
	// Elevation is the draw layer of the hit widget. Higher elevations paint
	// on top.
	Elevation float64
	Kind      HitKind
}

// HitBox returns the hit result describing this widget.
func (b *Base) HitBox() HitBox {
	kind := HitInert
	if _, ok := b.self.(Activatable); ok && b.enabled {
		kind = HitControl
	}
	return HitBox{Widget: b.self, Elevation: b.layers.Draw, Kind: kind}
}

// HitTest returns a hit from the children if there is one, and otherwise
// tests the widget's own window rectangle.
func (b *Base) HitTest(tok *treelock.Token, p geometry.Point) (HitBox, bool) {
	tok.MustHold("widget.Base.HitTest")
	if hb, ok := b.HitTestChildren(tok, p); ok {
		return hb, true
	}
	if b.windowRect.Contains(p) {
		return b.HitBox(), true
	}
	return HitBox{}, false
}

// HitTestChildren queries every child and returns the hit with the highest
// elevation. On equal elevation the later child wins, since it paints later.
func (b *Base) HitTestChildren(tok *treelock.Token, p geometry.Point) (HitBox, bool) {
	var best HitBox
	found := false
	for _, c := range b.children {
		hb, ok := c.HitTest(tok, p)
		if ok && (!found || hb.Elevation >= best.Elevation) {
			best, found = hb, true
		}
	}
	return best, found
}
