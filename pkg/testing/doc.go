// Package testing drives a window headlessly for widget tests.
//
// # Quick Start
//
// Create a tester, mount a tree, and make assertions:
//
//	func TestSubmit(t *testing.T) {
//	    tester := strtest.NewWindowTesterWithT(t)
//	    submitted := false
//	    tester.Mount(func(tok *treelock.Token, win widget.Window) widget.Widget {
//	        return widgets.NewButton(tok, win, nil, observable.New("Submit"),
//	            func(*treelock.Token) { submitted = true })
//	    })
//
//	    tester.Tap(strtest.ByText("Submit"))
//	    if !submitted {
//	        t.Error("button was not activated")
//	    }
//	}
//
// Every gesture pumps a frame, so Primitives reflects the tree after it.
//
// # Snapshot Testing
//
// Capture and compare the laid-out tree:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/form.snapshot.yaml")
//
// Update snapshots with:
//
//	STRATA_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import strtest "github.com/go-strata/strata/pkg/testing"
package testing
