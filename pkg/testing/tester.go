package testing

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/render"
	"github.com/go-strata/strata/pkg/theme"
	"github.com/go-strata/strata/pkg/treelock"
	"github.com/go-strata/strata/pkg/widget"
	"github.com/go-strata/strata/pkg/window"
)

const (
	// DefaultTestWidth is the default width of the test window.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test window.
	DefaultTestHeight = 600
	// FrameDuration is how far the clock advances per settled frame.
	FrameDuration = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its frame limit.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: tree did not settle")

// FakeClock provides the display time passed to frames.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a clock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// WindowTester owns a headless window and records every frame it draws.
type WindowTester struct {
	host  *window.StaticHost
	win   *window.Window
	clock *FakeClock
	last  *render.DisplayList
}

// NewWindowTester creates a tester with an 800x600 active window.
func NewWindowTester(opts ...window.Option) *WindowTester {
	host := window.NewStaticHost(geometry.Ext(DefaultTestWidth, DefaultTestHeight))
	return &WindowTester{
		host:  host,
		win:   window.New(host, opts...),
		clock: NewFakeClock(),
	}
}

// NewWindowTesterWithT creates a tester whose tree is destroyed when the
// test ends.
func NewWindowTesterWithT(t *testing.T, opts ...window.Option) *WindowTester {
	tester := NewWindowTester(opts...)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup destroys the mounted tree.
func (t *WindowTester) Cleanup() {
	t.win.Update(func(tok *treelock.Token) {
		if root := t.win.Root(); root != nil {
			widget.Destroy(tok, root)
		}
	})
}

// Window returns the window under test.
func (t *WindowTester) Window() *window.Window {
	return t.win
}

// Theme returns the window's theme.
func (t *WindowTester) Theme() *theme.Theme {
	return t.win.Theme()
}

// Clock returns the clock that supplies display times.
func (t *WindowTester) Clock() *FakeClock {
	return t.clock
}

// SetSize resizes the window. The next frame lays out the whole tree.
func (t *WindowTester) SetSize(ext geometry.Extent) {
	t.host.Resize(ext)
}

// SetActive changes whether the window has input focus.
func (t *WindowTester) SetActive(active bool) {
	t.host.SetActive(active)
}

// Update runs fn under the tree lock.
func (t *WindowTester) Update(fn func(tok *treelock.Token)) {
	t.win.Update(fn)
}

// Mount installs the tree returned by build as the root and pumps one
// frame.
func (t *WindowTester) Mount(build func(tok *treelock.Token, win widget.Window) widget.Widget) {
	t.win.Update(func(tok *treelock.Token) {
		t.win.SetRoot(tok, build(tok, t.win))
	})
	t.Pump()
}

// Pump runs one frame at the current clock time and reports whether it
// drew anything.
func (t *WindowTester) Pump() bool {
	list := t.win.Frame(t.clock.Now())
	if list == nil {
		return false
	}
	t.last = list
	return true
}

// PumpAndSettle pumps frames, advancing the clock by FrameDuration, until
// a frame draws nothing.
func (t *WindowTester) PumpAndSettle(maxFrames int) error {
	for range maxFrames {
		if !t.Pump() {
			return nil
		}
		t.clock.Advance(FrameDuration)
	}
	return ErrSettleTimeout
}

// LastFrame returns the most recent display list, or nil before the first
// frame.
func (t *WindowTester) LastFrame() *render.DisplayList {
	return t.last
}

// Primitives returns the primitives of the most recent frame in paint
// order.
func (t *WindowTester) Primitives() []render.Primitive {
	if t.last == nil {
		return nil
	}
	return t.last.InPaintOrder()
}

// Texts returns the text primitives of the most recent frame in paint
// order.
func (t *WindowTester) Texts() []render.Text {
	var out []render.Text
	for _, p := range t.Primitives() {
		if tx, ok := p.(render.Text); ok {
			out = append(out, tx)
		}
	}
	return out
}

// Find evaluates a finder against the mounted tree.
func (t *WindowTester) Find(finder Finder) FinderResult {
	var found []widget.Widget
	t.win.Update(func(*treelock.Token) {
		if root := t.win.Root(); root != nil {
			found = finder.Evaluate(root)
		}
	})
	return FinderResult{widgets: found, finder: finder}
}

// Rect returns the window rectangle of w.
func (t *WindowTester) Rect(w widget.Widget) geometry.Rect {
	var r geometry.Rect
	t.win.Update(func(*treelock.Token) { r = w.Node().WindowRect() })
	return r
}
