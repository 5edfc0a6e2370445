package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-strata/strata/pkg/widget"
)

// Finder locates widgets in the tree.
type Finder interface {
	// Evaluate returns all matching widgets under root in depth-first
	// pre-order.
	Evaluate(root widget.Widget) []widget.Widget
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	widgets []widget.Widget
	finder  Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() widget.Widget {
	if len(r.widgets) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.description()))
	}
	return r.widgets[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() widget.Widget {
	if len(r.widgets) == 0 {
		return nil
	}
	return r.widgets[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) widget.Widget {
	if index < 0 || index >= len(r.widgets) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.widgets), r.description()))
	}
	return r.widgets[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []widget.Widget {
	return r.widgets
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.widgets)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.widgets) > 0
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

type typeFinder struct {
	widgetType reflect.Type
}

func (f *typeFinder) Evaluate(root widget.Widget) []widget.Widget {
	return collectMatches(root, func(w widget.Widget) bool {
		return reflect.TypeOf(w) == f.widgetType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.widgetType)
}

// ByType returns a finder that matches widgets of type T, for example
// ByType[*widgets.Button]().
func ByType[T widget.Widget]() Finder {
	return &typeFinder{widgetType: reflect.TypeFor[T]()}
}

// texter is implemented by widgets that show a line of text.
type texter interface {
	Text() string
}

type textFinder struct {
	match func(string) bool
	desc  string
}

func (f *textFinder) Evaluate(root widget.Widget) []widget.Widget {
	return collectMatches(root, func(w widget.Widget) bool {
		t, ok := w.(texter)
		return ok && f.match(t.Text())
	})
}

func (f *textFinder) Description() string {
	return f.desc
}

// ByText returns a finder that matches labels, buttons and tabs whose text
// equals text.
func ByText(text string) Finder {
	return &textFinder{
		match: func(s string) bool { return s == text },
		desc:  fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining returns a finder that matches widgets whose text
// contains substring.
func ByTextContaining(substring string) Finder {
	return &textFinder{
		match: func(s string) bool { return strings.Contains(s, substring) },
		desc:  fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

type predicateFinder struct {
	fn func(widget.Widget) bool
}

func (f *predicateFinder) Evaluate(root widget.Widget) []widget.Widget {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return "ByPredicate(...)"
}

// ByPredicate returns a finder that matches widgets satisfying fn.
func ByPredicate(fn func(widget.Widget) bool) Finder {
	return &predicateFinder{fn: fn}
}

type descendantFinder struct {
	of, matching Finder
}

func (f *descendantFinder) Evaluate(root widget.Widget) []widget.Widget {
	var results []widget.Widget
	seen := make(map[widget.Widget]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		for _, child := range ancestor.Node().Children() {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches widgets satisfying matching
// below a widget satisfying of.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

func collectMatches(root widget.Widget, predicate func(widget.Widget) bool) []widget.Widget {
	var results []widget.Widget
	widget.Walk(root, func(w widget.Widget) {
		if predicate(w) {
			results = append(results, w)
		}
	})
	return results
}
