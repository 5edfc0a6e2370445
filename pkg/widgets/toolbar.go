package widgets

import (
	"math"
	"time"

	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/paintorder"
	"github.com/go-strata/strata/pkg/treelock"
	"github.com/go-strata/strata/pkg/widget"
)

// Toolbar lays its children out left to right at their minimum width and
// clips them to its own rectangle. Tab buttons find it through
// AsTabContainer.
type Toolbar struct {
	widget.Base
}

// NewToolbar creates an empty toolbar.
func NewToolbar(tok *treelock.Token, win widget.Window, parent widget.Widget) *Toolbar {
	t := &Toolbar{}
	t.Init(tok, t, win, parent)
	return t
}

func (t *Toolbar) AsTabContainer() (widget.TabContainer, bool) {
	return t, true
}

// TabStrip returns the toolbar's rectangle.
func (t *Toolbar) TabStrip() geometry.Rect {
	return t.WindowRect()
}

func (t *Toolbar) UpdateConstraints(tok *treelock.Token) bool {
	changed := t.UpdateChildConstraints(tok)
	if t.Base.UpdateConstraints(tok) {
		changed = true
	}
	if !changed {
		return false
	}

	m := t.Margin()
	width, height := m, 0.0
	for _, c := range t.Children() {
		if widget.IsFloating(c) {
			continue
		}
		ps := c.Node().PreferredSize()
		width += ps.Min.Width + m
		height = math.Max(height, ps.Min.Height)
	}
	height += 2 * m
	t.SetPreferred(geometry.ExtentRange{
		Min: geometry.Ext(width, height),
		Max: geometry.Ext(geometry.Unbounded, height),
	}, geometry.Baseline{Anchor: geometry.Middle})
	return true
}

func (t *Toolbar) UpdateLayout(tok *treelock.Token, displayTime time.Time, force bool) bool {
	tok.MustHold("widgets.Toolbar.UpdateLayout")
	force = t.ConsumeRelayout(force)

	rect := t.WindowRect()
	m := t.Margin()
	x := rect.Min.X + m
	for _, c := range t.Children() {
		if widget.IsFloating(c) {
			continue
		}
		w := c.Node().PreferredSize().Min.Width
		cell := geometry.RectFromXYWH(x, rect.Min.Y+m, w, rect.Height()-2*m)
		c.SetLayoutParameters(tok, t.FitChild(cell), rect)
		x += w + m
	}
	return t.UpdateChildLayout(tok, displayTime, force) || force
}

func (t *Toolbar) Draw(tok *treelock.Token, ctx widget.DrawContext, displayTime time.Time) {
	tok.MustHold("widgets.Toolbar.Draw")
	ctx.WithSlot(paintorder.Background, 0).DrawFilledQuad(t.WindowRect())
	t.DrawChildren(tok, ctx, displayTime)
}
