package testing

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/observable"
	"github.com/go-strata/strata/pkg/treelock"
	"github.com/go-strata/strata/pkg/widget"
	"github.com/go-strata/strata/pkg/widgets"
)

type form struct {
	clicks   int
	status   *observable.Observable[string]
	selected *observable.Observable[string]
}

func mountForm(t *testing.T) (*WindowTester, *form) {
	t.Helper()
	tester := NewWindowTesterWithT(t)
	f := &form{status: observable.New("idle"), selected: observable.New("a")}
	tester.Mount(func(tok *treelock.Token, win widget.Window) widget.Widget {
		grid := widgets.NewGrid(tok, win, nil, 1)
		bar := widgets.NewToolbar(tok, win, grid)
		widgets.NewTabButton(tok, win, bar, observable.New("Alpha"), f.selected, "a")
		widgets.NewTabButton(tok, win, bar, observable.New("Beta"), f.selected, "b")
		widgets.NewButton(tok, win, grid, observable.New("Submit"), func(tok *treelock.Token) {
			f.clicks++
			f.status.Set(tok, fmt.Sprintf("sent %d", f.clicks))
		})
		widgets.NewLabel(tok, win, grid, f.status)
		return grid
	})
	return tester, f
}

func TestMountDrawsFrame(t *testing.T) {
	tester, _ := mountForm(t)
	if tester.LastFrame() == nil {
		t.Fatal("Mount should pump a frame")
	}
	if err := tester.PumpAndSettle(3); err != nil {
		t.Errorf("PumpAndSettle() = %v", err)
	}

	var texts []string
	for _, tx := range tester.Texts() {
		texts = append(texts, tx.Content)
	}
	if got := strings.Join(texts, ","); !strings.Contains(got, "Submit") || !strings.Contains(got, "idle") {
		t.Errorf("drawn texts = %s", got)
	}

	prims := tester.Primitives()
	for i := 1; i < len(prims); i++ {
		if prims[i].Depth() < prims[i-1].Depth() {
			t.Fatalf("primitive %d out of paint order", i)
		}
	}
}

func TestFinders(t *testing.T) {
	tester, _ := mountForm(t)

	tests := []struct {
		name   string
		finder Finder
		want   int
	}{
		{"labels", ByType[*widgets.Label](), 1},
		{"tabs", ByType[*widgets.TabButton[string]](), 2},
		{"text", ByText("Beta"), 1},
		{"substring", ByTextContaining("a"), 2},
		{"tabs in toolbar", Descendant(ByType[*widgets.Toolbar](), ByTextContaining("")), 2},
		{"enabled", ByPredicate(func(w widget.Widget) bool { return w.Node().Enabled() }), 6},
		{"missing", ByText("nope"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tester.Find(tt.finder).Count(); got != tt.want {
				t.Errorf("%s found %d, want %d", tt.finder.Description(), got, tt.want)
			}
		})
	}
}

func TestTap(t *testing.T) {
	tester, f := mountForm(t)
	if err := tester.Tap(ByText("Submit")); err != nil {
		t.Fatal(err)
	}
	if f.clicks != 1 {
		t.Errorf("clicks = %d, want 1", f.clicks)
	}
	if !tester.Find(ByText("sent 1")).Exists() {
		t.Error("status label did not update")
	}
	found := false
	for _, tx := range tester.Texts() {
		found = found || tx.Content == "sent 1"
	}
	if !found {
		t.Error("updated status was not drawn")
	}

	if err := tester.Tap(ByText("Beta")); err != nil {
		t.Fatal(err)
	}
	if f.selected.Value() != "b" {
		t.Errorf("selected = %q, want b", f.selected.Value())
	}

	if err := tester.Tap(ByText("nope")); err == nil {
		t.Error("Tap on a missing widget should fail")
	}
}

func TestKeyboard(t *testing.T) {
	tester, f := mountForm(t)
	tester.Tab(false)
	tester.Tab(false)
	if !tester.PressEnter() || f.selected.Value() != "b" {
		t.Errorf("selected = %q after activating the second tab", f.selected.Value())
	}
	tester.Tab(false)
	tester.PressEnter()
	if f.clicks != 1 {
		t.Errorf("clicks = %d, want 1", f.clicks)
	}
}

func TestHoverRedraws(t *testing.T) {
	tester, _ := mountForm(t)
	tester.Pump()
	r := tester.Rect(tester.Find(ByText("Submit")).First())
	tester.HoverAt(r.Center())
	if tester.Window().Hovered() == nil {
		t.Fatal("nothing hovered")
	}
	if tester.Pump() {
		t.Error("hover should settle after one frame")
	}
	tester.Leave()
	if tester.Window().Hovered() != nil {
		t.Error("leave should clear the hover")
	}
}

func TestSnapshot(t *testing.T) {
	tester, _ := mountForm(t)
	snap := tester.CaptureSnapshot()
	if snap.Extent != [2]float64{DefaultTestWidth, DefaultTestHeight} {
		t.Errorf("extent = %v", snap.Extent)
	}
	if snap.Root == nil || snap.Root.ID != "Grid#0" || len(snap.Root.Children) != 3 {
		t.Fatalf("root = %+v", snap.Root)
	}
	if tab := snap.Root.Children[0].Children[1]; tab.ID != "TabButton#1" || tab.Text != "Beta" || tab.Layers != [2]float64{2, 2} {
		t.Errorf("tab node = %+v", tab)
	}

	path := filepath.Join(t.TempDir(), "form.snapshot.yaml")
	if err := snap.UpdateFile(path); err != nil {
		t.Fatal(err)
	}
	snap.MatchesFile(t, path)

	tester.SetSize(geometry.Ext(400, 300))
	tester.Pump()
	rec := &recordingT{name: t.Name()}
	tester.CaptureSnapshot().MatchesFile(rec, path)
	if len(rec.errors) != 1 || !strings.Contains(rec.errors[0], "+extent") {
		t.Errorf("resized snapshot errors = %v", rec.errors)
	}
}

func TestPrimitivesBeforeFrame(t *testing.T) {
	tester := NewWindowTesterWithT(t)
	if tester.Primitives() != nil || tester.LastFrame() != nil {
		t.Error("no frame has been drawn")
	}
}

type recordingT struct {
	name   string
	errors []string
}

func (r *recordingT) Helper() {}
func (r *recordingT) Name() string { return r.name }
func (r *recordingT) Fatalf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}
func (r *recordingT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}
