// Package widgets provides the concrete widgets built on package widget.
//
// Constructors take the caller's lock token, the window and the parent, and
// attach the new widget immediately:
//
//	win.Lock().Do(func(tok *treelock.Token) {
//	    bar := widgets.NewToolbar(tok, win, root)
//	    selected := observable.New("files")
//	    widgets.NewTabButton(tok, win, bar, observable.New("Files"), selected, "files")
//	    widgets.NewTabButton(tok, win, bar, observable.New("Edit"), selected, "edit")
//	})
//
// Containers ask each child for its preferred size in the constraint pass
// and hand each child a rectangle in the layout pass. Overlays position
// themselves and are skipped by their parent's layout.
package widgets
