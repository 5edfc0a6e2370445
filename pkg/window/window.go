// Package window owns a widget tree and exposes the entry points a frame
// driver and an input source call. Every entry point takes the tree lock
// for its whole duration.
package window

import (
	"time"

	"github.com/go-strata/strata/pkg/errors"
	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/render"
	"github.com/go-strata/strata/pkg/text"
	"github.com/go-strata/strata/pkg/theme"
	"github.com/go-strata/strata/pkg/treelock"
	"github.com/go-strata/strata/pkg/widget"
)

// Window is a top-level window: a host, a theme and one root widget.
type Window struct {
	lock     *treelock.Lock
	host     Host
	theme    *theme.Theme
	measurer text.Measurer

	root   widget.Widget
	extent geometry.Extent

	hovered widget.Widget
	pressed widget.Widget
	focused widget.Widget

	needsRedraw bool
	recorder    render.Recorder
	frames      uint64
}

// Option configures a Window.
type Option func(*Window)

// WithTheme sets the theme. The default is theme.Default(theme.Light).
func WithTheme(th *theme.Theme) Option {
	return func(w *Window) { w.theme = th }
}

// WithMeasurer sets the text measurer. The default is text.Basic().
func WithMeasurer(m text.Measurer) Option {
	return func(w *Window) { w.measurer = m }
}

// WithLock sets the tree lock, for example treelock.NewCooperative() for a
// single-threaded driver.
func WithLock(l *treelock.Lock) Option {
	return func(w *Window) { w.lock = l }
}

// New creates a window without a root.
func New(host Host, opts ...Option) *Window {
	w := &Window{host: host, needsRedraw: true}
	for _, opt := range opts {
		opt(w)
	}
	if w.lock == nil {
		w.lock = treelock.New()
	}
	if w.theme == nil {
		w.theme = theme.Default(theme.Light)
	}
	if w.measurer == nil {
		w.measurer = text.Basic()
	}
	return w
}

func (w *Window) Lock() *treelock.Lock    { return w.lock }
func (w *Window) Extent() geometry.Extent { return w.host.Extent() }
func (w *Window) Active() bool            { return w.host.Active() }
func (w *Window) Theme() *theme.Theme     { return w.theme }
func (w *Window) Measurer() text.Measurer { return w.measurer }

// Root returns the root widget.
func (w *Window) Root() widget.Widget {
	return w.root
}

// Update runs fn under the tree lock. Widgets are created and mutated
// from inside it.
func (w *Window) Update(fn func(tok *treelock.Token)) {
	w.lock.Do(fn)
}

// SetRoot installs root, which must have been created with no parent, and
// destroys the previous root.
func (w *Window) SetRoot(tok *treelock.Token, root widget.Widget) {
	const op = "window.Window.SetRoot"
	tok.MustHoldLock(op, w.lock)
	errors.Assert(root.Node().Parent() == nil, op, "root widget has a parent")
	if w.root != nil && w.root != root {
		widget.Destroy(tok, w.root)
	}
	w.root = root
	w.hovered, w.pressed, w.focused = nil, nil, nil
	w.needsRedraw = true
}

// UpdateConstraints runs the constraint pass over the tree.
func (w *Window) UpdateConstraints() bool {
	var changed bool
	w.lock.Do(func(tok *treelock.Token) {
		changed = w.updateConstraints(tok)
	})
	return changed
}

// UpdateLayout runs the layout pass. The root is given the whole window;
// a changed window extent forces the layout of every widget.
func (w *Window) UpdateLayout(displayTime time.Time) bool {
	var redraw bool
	w.lock.Do(func(tok *treelock.Token) {
		redraw = w.updateLayout(tok, displayTime)
	})
	return redraw
}

// Draw submits the tree's primitives to sink.
func (w *Window) Draw(sink render.Sink, displayTime time.Time) {
	w.lock.Do(func(tok *treelock.Token) {
		w.draw(tok, sink, displayTime)
	})
}

// Frame runs the three passes in order under one acquisition of the lock.
// It returns the recorded display list, or nil when nothing changed since
// the previous frame.
func (w *Window) Frame(displayTime time.Time) *render.DisplayList {
	var list *render.DisplayList
	w.lock.Do(func(tok *treelock.Token) {
		if w.updateConstraints(tok) {
			w.needsRedraw = true
		}
		if w.updateLayout(tok, displayTime) {
			w.needsRedraw = true
		}
		if !w.needsRedraw {
			return
		}
		sink := w.recorder.BeginRecording(w.extent)
		w.draw(tok, sink, displayTime)
		list = w.recorder.EndRecording()
		w.needsRedraw = false
		w.frames++
	})
	return list
}

// Frames returns the number of frames that produced a display list.
func (w *Window) Frames() uint64 {
	var n uint64
	w.lock.Do(func(*treelock.Token) { n = w.frames })
	return n
}

func (w *Window) updateConstraints(tok *treelock.Token) bool {
	if w.root == nil {
		return false
	}
	return w.root.UpdateConstraints(tok)
}

func (w *Window) updateLayout(tok *treelock.Token, displayTime time.Time) bool {
	if w.root == nil {
		return false
	}
	ext := w.host.Extent()
	force := ext != w.extent
	w.extent = ext
	rect := geometry.RectFromExtent(ext)
	w.root.SetLayoutParameters(tok, rect, geometry.Expand(rect, w.theme.BorderWidth))
	return w.root.UpdateLayout(tok, displayTime, force) || force
}

func (w *Window) draw(tok *treelock.Token, sink render.Sink, displayTime time.Time) {
	if w.root == nil {
		return
	}
	ctx := widget.NewDrawContext(sink, w.theme, geometry.RectFromExtent(w.extent))
	w.root.Draw(tok, ctx.MakeDrawContext(w.root), displayTime)
}

// HitTest returns the topmost widget at p.
func (w *Window) HitTest(p geometry.Point) (widget.HitBox, bool) {
	var (
		hb widget.HitBox
		ok bool
	)
	w.lock.Do(func(tok *treelock.Token) {
		hb, ok = w.hitTest(tok, p)
	})
	return hb, ok
}

func (w *Window) hitTest(tok *treelock.Token, p geometry.Point) (widget.HitBox, bool) {
	if w.root == nil {
		return widget.HitBox{}, false
	}
	return w.root.HitTest(tok, p)
}
