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

// Label draws one line of text taken from an observable string.
type Label struct {
	widget.Base

	// Alignment positions the text inside the label's rectangle.
	Alignment geometry.Alignment

	content *observable.Observable[string]
	cell    *text.Cell
}

// NewLabel creates a label under parent. A change of content schedules a
// constraint pass.
func NewLabel(tok *treelock.Token, win widget.Window, parent widget.Widget, content *observable.Observable[string]) *Label {
	l := &Label{Alignment: geometry.MiddleCenter, content: content}
	l.Init(tok, l, win, parent)
	l.Observe(content.Subscribe(func(tok *treelock.Token, _ string) {
		l.RequestReconstrain(tok)
	}))
	return l
}

// Text returns the current content.
func (l *Label) Text() string {
	return l.content.Value()
}

func (l *Label) UpdateConstraints(tok *treelock.Token) bool {
	if !l.Base.UpdateConstraints(tok) {
		return false
	}
	l.cell = measureLabel(l.Window(), l.content.Value())
	ext := l.cell.PreferredExtent()
	l.SetPreferred(
		geometry.ExtentRange{Min: ext, Max: geometry.Ext(geometry.Unbounded, geometry.Unbounded)},
		geometry.Baseline{Anchor: geometry.Middle},
	)
	return true
}

func (l *Label) Draw(tok *treelock.Token, ctx widget.DrawContext, displayTime time.Time) {
	tok.MustHold("widgets.Label.Draw")
	if l.cell == nil {
		return
	}
	ctx.WithSlot(paintorder.Label, 0).DrawText(l.cell, l.WindowRect(), l.Alignment, l.PreferredBaseline())
}

func measureLabel(win widget.Window, s string) *text.Cell {
	return text.NewCell(win.Measurer(), s, win.Theme().LabelColor)
}
