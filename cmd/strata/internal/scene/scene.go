// Package scene builds the demo tree rendered by the CLI.
//
// The scene is a toolbar with three tabs above a grid of buttons and
// labels. The Menu button opens an overlay menu hanging below it.
package scene

import (
	"fmt"

	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/observable"
	"github.com/go-strata/strata/pkg/treelock"
	"github.com/go-strata/strata/pkg/widget"
	"github.com/go-strata/strata/pkg/widgets"
)

// Tabs are the toolbar entries, in order.
var Tabs = []string{"Layout", "Paint", "Input"}

// Scene holds the demo tree and the observables it is driven by.
type Scene struct {
	Root     *widgets.Grid
	Selected *observable.Observable[string]
	Status   *observable.Observable[string]
	Counter  *observable.Observable[int]

	win      widget.Window
	menuHost *widgets.Button
	menu     *widgets.Overlay
	subs     []observable.Subscription
}

// Build creates the scene in win. The root is not installed; pass it to
// window.Window.SetRoot.
func Build(tok *treelock.Token, win widget.Window, title string, menuOpen bool) *Scene {
	s := &Scene{
		Selected: observable.New(Tabs[0]),
		Status:   observable.New("ready"),
		Counter:  observable.New(0),
		win:      win,
	}
	s.Root = widgets.NewGrid(tok, win, nil, 1)

	bar := widgets.NewToolbar(tok, win, s.Root)
	for _, name := range Tabs {
		widgets.NewTabButton(tok, win, bar, observable.New(name), s.Selected, name)
	}

	body := widgets.NewGrid(tok, win, s.Root, 3)
	widgets.NewLabel(tok, win, body, observable.New(title))
	widgets.NewLabel(tok, win, body, s.Status)
	s.menuHost = widgets.NewButton(tok, win, body, observable.New("Menu"), s.ToggleMenu)

	count := observable.New("count: 0")
	widgets.NewButton(tok, win, body, observable.New("Count"), func(tok *treelock.Token) {
		s.Counter.Set(tok, s.Counter.Value()+1)
	})
	widgets.NewLabel(tok, win, body, count)
	widgets.NewBox(tok, win, body, geometry.AtLeast(geometry.Ext(40, 20)))

	s.subs = append(s.subs,
		s.Counter.Subscribe(func(tok *treelock.Token, n int) {
			count.Set(tok, fmt.Sprintf("count: %d", n))
		}),
		s.Selected.Subscribe(func(tok *treelock.Token, tab string) {
			s.Status.Set(tok, "tab: "+tab)
		}),
	)

	if menuOpen {
		s.ToggleMenu(tok)
	}
	return s
}

// MenuOpen reports whether the overlay menu is shown.
func (s *Scene) MenuOpen() bool {
	return s.menu != nil
}

// Menu returns the overlay menu, or nil while it is closed.
func (s *Scene) Menu() *widgets.Overlay {
	return s.menu
}

// ToggleMenu opens the menu below the Menu button, or closes it.
func (s *Scene) ToggleMenu(tok *treelock.Token) {
	if s.menu != nil {
		widget.Destroy(tok, s.menu)
		s.menu = nil
		s.Status.Set(tok, "menu closed")
		return
	}
	s.menu = widgets.NewOverlay(tok, s.win, s.menuHost)
	items := widgets.NewGrid(tok, s.win, s.menu, 1)
	for _, name := range []string{"Open", "Save", "Close"} {
		widgets.NewButton(tok, s.win, items, observable.New(name), func(tok *treelock.Token) {
			s.Status.Set(tok, "menu: "+name)
			if name == "Close" {
				s.ToggleMenu(tok)
			}
		})
	}
	s.Status.Set(tok, "menu open")
}

// Close cancels the scene's subscriptions.
func (s *Scene) Close() {
	for _, sub := range s.subs {
		sub.Cancel()
	}
	s.subs = nil
}
