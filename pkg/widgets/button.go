package widgets

import (
	"time"

	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/observable"
	"github.com/go-strata/strata/pkg/paintorder"
	"github.com/go-strata/strata/pkg/text"
	"github.com/go-strata/strata/pkg/treelock"
	"github.com/go-strata/strata/pkg/widget"
)

// Button is a bordered box with a centered label that runs a callback when
// activated.
type Button struct {
	widget.Base

	label      *observable.Observable[string]
	cell       *text.Cell
	onActivate func(tok *treelock.Token)
}

// NewButton creates a button under parent. onActivate may be nil.
func NewButton(tok *treelock.Token, win widget.Window, parent widget.Widget, label *observable.Observable[string], onActivate func(tok *treelock.Token)) *Button {
	b := &Button{label: label, onActivate: onActivate}
	b.Init(tok, b, win, parent)
	b.Observe(label.Subscribe(func(tok *treelock.Token, _ string) {
		b.RequestReconstrain(tok)
	}))
	return b
}

// Text returns the current label.
func (b *Button) Text() string {
	return b.label.Value()
}

// UpdateConstraints asks for the label plus a margin on every side. Child
// overlays, such as a menu opened by the button, are constrained too.
func (b *Button) UpdateConstraints(tok *treelock.Token) bool {
	changed := b.UpdateChildConstraints(tok)
	if b.Base.UpdateConstraints(tok) {
		b.cell = measureLabel(b.Window(), b.label.Value())
		changed = true
	}
	if !changed {
		return false
	}
	m := b.Margin()
	ext := b.cell.PreferredExtent()
	minExt := geometry.Ext(ext.Width+2*m, ext.Height+2*m)
	b.SetPreferred(
		geometry.ExtentRange{Min: minExt, Max: geometry.Ext(geometry.Unbounded, geometry.Unbounded)},
		geometry.Baseline{Anchor: geometry.Middle},
	)
	return true
}

func (b *Button) Draw(tok *treelock.Token, ctx widget.DrawContext, displayTime time.Time) {
	tok.MustHold("widgets.Button.Draw")
	th := ctx.Theme
	rect := b.WindowRect()

	box := ctx.WithSlot(paintorder.Background, 0)
	if b.Hover() && b.Enabled() {
		box = box.WithFill(th.FillColor(b.Layers().Semantic + 1))
	}
	if b.Focus() && b.Window().Active() {
		box.Border = th.AccentColor
	}
	box.DrawBoxIncludeBorder(rect)

	if b.cell != nil {
		ctx.WithSlot(paintorder.Label, 0).DrawText(b.cell, rect, geometry.MiddleCenter, b.PreferredBaseline())
	}
	b.DrawChildren(tok, ctx, displayTime)
}

// Activate runs the callback when the button is enabled.
func (b *Button) Activate(tok *treelock.Token) {
	tok.MustHold("widgets.Button.Activate")
	if b.Enabled() && b.onActivate != nil {
		b.onActivate(tok)
	}
}

func (b *Button) AcceptsKeyboardFocus() bool {
	return true
}
