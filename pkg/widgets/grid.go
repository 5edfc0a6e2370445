package widgets

import (
	"math"
	"time"

	"github.com/go-strata/strata/pkg/errors"
	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/paintorder"
	"github.com/go-strata/strata/pkg/treelock"
	"github.com/go-strata/strata/pkg/widget"
)

// Grid arranges its children row by row into a fixed number of columns.
// Rows run from the top of the grid down.
type Grid struct {
	widget.Base

	columns             int
	colMin, colMax      []float64
	rowMin, rowMax      []float64
	colWidth, rowHeight []float64
}

// NewGrid creates a grid with the given number of columns.
func NewGrid(tok *treelock.Token, win widget.Window, parent widget.Widget, columns int) *Grid {
	errors.Assert(columns > 0, "widgets.NewGrid", "grid needs at least one column, got %d", columns)
	g := &Grid{columns: columns}
	g.Init(tok, g, win, parent)
	return g
}

// Columns returns the number of columns.
func (g *Grid) Columns() int {
	return g.columns
}

// cells returns the children that take a grid cell.
func (g *Grid) cells() []widget.Widget {
	var out []widget.Widget
	for _, c := range g.Children() {
		if !widget.IsFloating(c) {
			out = append(out, c)
		}
	}
	return out
}

// UpdateConstraints sizes every column to its widest child and every row
// to its tallest child, with one margin between cells and around the edge.
func (g *Grid) UpdateConstraints(tok *treelock.Token) bool {
	changed := g.UpdateChildConstraints(tok)
	if g.Base.UpdateConstraints(tok) {
		changed = true
	}
	if !changed {
		return false
	}

	cells := g.cells()
	rows := (len(cells) + g.columns - 1) / g.columns
	g.colMin, g.colMax = make([]float64, g.columns), make([]float64, g.columns)
	g.rowMin, g.rowMax = make([]float64, rows), make([]float64, rows)
	for i, c := range cells {
		col, row := i%g.columns, i/g.columns
		ps := c.Node().PreferredSize()
		g.colMin[col] = math.Max(g.colMin[col], ps.Min.Width)
		g.colMax[col] = math.Max(g.colMax[col], ps.Max.Width)
		g.rowMin[row] = math.Max(g.rowMin[row], ps.Min.Height)
		g.rowMax[row] = math.Max(g.rowMax[row], ps.Max.Height)
	}

	m := g.Margin()
	gapsX := float64(g.columns+1) * m
	gapsY := float64(rows+1) * m
	g.SetPreferred(geometry.ExtentRange{
		Min: geometry.Ext(sum(g.colMin)+gapsX, sum(g.rowMin)+gapsY),
		Max: geometry.Ext(sum(g.colMax)+gapsX, sum(g.rowMax)+gapsY),
	}, geometry.Baseline{Anchor: geometry.Middle})
	return true
}

// UpdateLayout distributes the grid's rectangle over the tracks and places
// every child in its cell.
func (g *Grid) UpdateLayout(tok *treelock.Token, displayTime time.Time, force bool) bool {
	tok.MustHold("widgets.Grid.UpdateLayout")
	force = g.ConsumeRelayout(force)

	rect := g.WindowRect()
	m := g.Margin()
	g.colWidth = distribute(g.colMin, g.colMax, rect.Width()-float64(len(g.colMin)+1)*m)
	g.rowHeight = distribute(g.rowMin, g.rowMax, rect.Height()-float64(len(g.rowMin)+1)*m)

	for i, c := range g.cells() {
		col, row := i%g.columns, i/g.columns
		if row >= len(g.rowHeight) {
			// Added since the last constraint pass; placed next frame.
			break
		}
		x := rect.Min.X + m
		for _, w := range g.colWidth[:col] {
			x += w + m
		}
		top := rect.Max.Y - m
		for _, h := range g.rowHeight[:row] {
			top -= h + m
		}
		cell := geometry.RectFromXYWH(x, top-g.rowHeight[row], g.colWidth[col], g.rowHeight[row])
		g.PlaceChild(tok, c, cell)
	}
	return g.UpdateChildLayout(tok, displayTime, force) || force
}

func (g *Grid) Draw(tok *treelock.Token, ctx widget.DrawContext, displayTime time.Time) {
	tok.MustHold("widgets.Grid.Draw")
	ctx.WithSlot(paintorder.Background, 0).DrawFilledQuad(g.WindowRect())
	g.DrawChildren(tok, ctx, displayTime)
}

// distribute grows every track from its minimum by an even share of the
// space left in avail, never past the track's maximum.
func distribute(minimum, maximum []float64, avail float64) []float64 {
	out := append([]float64(nil), minimum...)
	extra := avail - sum(minimum)
	for range len(out) {
		if extra <= 1e-9 {
			break
		}
		var open []int
		for i := range out {
			if out[i] < maximum[i] {
				open = append(open, i)
			}
		}
		if len(open) == 0 {
			break
		}
		share := extra / float64(len(open))
		for _, i := range open {
			add := math.Min(share, maximum[i]-out[i])
			out[i] += add
			extra -= add
		}
	}
	return out
}

func sum(v []float64) float64 {
	total := 0.0
	for _, x := range v {
		total += x
	}
	return total
}
