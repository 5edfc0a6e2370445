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

// TabButton selects one value of a shared observable. The tab is selected
// while the observable holds its own value. Tabs sharing an observable form
// a group.
type TabButton[T comparable] struct {
	widget.Base

	label     *observable.Observable[string]
	value     *observable.Observable[T]
	trueValue T
	cell      *text.Cell
}

// NewTabButton creates a tab under parent, normally a Toolbar.
func NewTabButton[T comparable](tok *treelock.Token, win widget.Window, parent widget.Widget, label *observable.Observable[string], value *observable.Observable[T], trueValue T) *TabButton[T] {
	b := &TabButton[T]{label: label, value: value, trueValue: trueValue}
	b.Init(tok, b, win, parent)
	b.Observe(label.Subscribe(func(tok *treelock.Token, _ string) {
		b.RequestReconstrain(tok)
	}))
	b.Observe(value.Subscribe(func(tok *treelock.Token, _ T) {
		b.RequestRelayout(tok)
	}))
	return b
}

// Selected reports whether the shared value equals this tab's value.
func (b *TabButton[T]) Selected() bool {
	return b.value.Value() == b.trueValue
}

// Text returns the current label.
func (b *TabButton[T]) Text() string {
	return b.label.Value()
}

// Value returns the value this tab selects.
func (b *TabButton[T]) Value() T {
	return b.trueValue
}

// UpdateConstraints asks for the label plus a margin on the left and right.
// The width is fixed; the height may grow.
func (b *TabButton[T]) UpdateConstraints(tok *treelock.Token) bool {
	if !b.Base.UpdateConstraints(tok) {
		return false
	}
	m := b.Margin()
	b.cell = measureLabel(b.Window(), b.label.Value())
	ext := b.cell.PreferredExtent()
	minExt := geometry.Ext(ext.Width+2*m, ext.Height)
	b.SetPreferred(
		geometry.ExtentRange{Min: minExt, Max: geometry.Ext(minExt.Width, geometry.Unbounded)},
		geometry.Baseline{Anchor: geometry.Middle, Offset: -m},
	)
	return true
}

// buttonRect is the drawn tab: the window rectangle extended down past the
// bottom of the toolbar, which clips it.
func (b *TabButton[T]) buttonRect() geometry.Rect {
	r := b.WindowRect()
	r.Min.Y -= b.Margin() + b.Window().Theme().BorderWidth
	return r
}

func (b *TabButton[T]) Draw(tok *treelock.Token, ctx widget.DrawContext, displayTime time.Time) {
	tok.MustHold("widgets.TabButton.Draw")
	th := ctx.Theme
	layer := b.Layers().Semantic
	focused := b.Focus() && b.Window().Active()
	selected := b.Selected()

	slot := paintorder.SelectedFill
	if focused {
		slot = paintorder.FocusedFill
	}
	fill := th.FillColor(layer - 1)
	if b.Hover() || selected {
		fill = th.FillColor(layer - 2)
	}
	r := th.RoundingRadius
	ctx.WithSlot(slot, 0).
		WithFill(fill).
		WithCorners([4]float64{0, 0, r, r}).
		DrawBoxIncludeBorder(b.buttonRect())

	if b.cell != nil {
		ctx.WithSlot(paintorder.Label, 0).DrawText(b.cell, b.WindowRect(), geometry.MiddleCenter, b.PreferredBaseline())
	}

	if !focused || !selected {
		return
	}
	bar, ok := widget.FindTabContainer(b)
	if !ok {
		return
	}
	strip := bar.TabStrip()
	line := geometry.RectFromXYWH(strip.Min.X, strip.Min.Y, strip.Width(), th.BorderWidth)
	ctx.MakeDrawContext(bar).
		WithSlot(paintorder.FocusLine, 1).
		WithFill(th.AccentColor).
		WithCorners([4]float64{}).
		DrawFilledQuad(line)
}

// Activate selects the tab.
func (b *TabButton[T]) Activate(tok *treelock.Token) {
	tok.MustHold("widgets.TabButton.Activate")
	if b.Enabled() {
		b.value.Set(tok, b.trueValue)
	}
}

func (b *TabButton[T]) AcceptsKeyboardFocus() bool {
	return true
}
