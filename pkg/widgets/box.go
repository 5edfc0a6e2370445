package widgets

import (
	"time"

	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/paintorder"
	"github.com/go-strata/strata/pkg/treelock"
	"github.com/go-strata/strata/pkg/widget"
)

// Box is a filled panel with a fixed preferred size. It may host overlays.
type Box struct {
	widget.Base
	size geometry.ExtentRange
}

// NewBox creates a box that asks for size.
func NewBox(tok *treelock.Token, win widget.Window, parent widget.Widget, size geometry.ExtentRange) *Box {
	b := &Box{size: size}
	b.Init(tok, b, win, parent)
	return b
}

// SetSize changes the preferred size.
func (b *Box) SetSize(tok *treelock.Token, size geometry.ExtentRange) {
	if size == b.size {
		return
	}
	b.size = size
	b.RequestReconstrain(tok)
}

func (b *Box) UpdateConstraints(tok *treelock.Token) bool {
	changed := b.UpdateChildConstraints(tok)
	if b.Base.UpdateConstraints(tok) {
		changed = true
	}
	if changed {
		b.SetPreferred(b.size, geometry.Baseline{Anchor: geometry.Middle})
	}
	return changed
}

func (b *Box) Draw(tok *treelock.Token, ctx widget.DrawContext, displayTime time.Time) {
	tok.MustHold("widgets.Box.Draw")
	ctx.WithSlot(paintorder.Background, 0).DrawFilledQuad(b.WindowRect())
	b.DrawChildren(tok, ctx, displayTime)
}
