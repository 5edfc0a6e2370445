package testing

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-strata/strata/pkg/treelock"
	"github.com/go-strata/strata/pkg/widget"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the laid-out widget tree.
type Snapshot struct {
	Extent [2]float64 `yaml:"extent,flow"`
	Root   *Node      `yaml:"root,omitempty"`
}

// Node is one widget in a snapshot.
type Node struct {
	ID       string     `yaml:"id"`
	Rect     [4]float64 `yaml:"rect,flow"`
	Layers   [2]float64 `yaml:"layers,flow"`
	Text     string     `yaml:"text,omitempty"`
	Floating bool       `yaml:"floating,omitempty"`
	Children []*Node    `yaml:"children,omitempty"`
}

// CaptureSnapshot records every widget's rectangle and layers. Rectangles
// are x, y, width, height; layers are semantic and draw.
func (t *WindowTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	t.win.Update(func(*treelock.Token) {
		ext := t.win.Extent()
		snap.Extent = [2]float64{round2(ext.Width), round2(ext.Height)}
		if root := t.win.Root(); root != nil {
			snap.Root = captureNode(root, &typeCounter{})
		}
	})
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// STRATA_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("STRATA_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: STRATA_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: STRATA_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other, or the empty
// string when they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

// typeCounter assigns stable IDs like "Button#0", "Button#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureNode(w widget.Widget, counter *typeCounter) *Node {
	b := w.Node()
	r := b.WindowRect()
	l := b.Layers()
	node := &Node{
		ID:       counter.next(widgetTypeName(w)),
		Rect:     [4]float64{round2(r.Min.X), round2(r.Min.Y), round2(r.Width()), round2(r.Height())},
		Layers:   [2]float64{float64(l.Semantic), round2(l.Draw)},
		Floating: widget.IsFloating(w),
	}
	if t, ok := w.(texter); ok {
		node.Text = t.Text()
	}
	for _, c := range b.Children() {
		node.Children = append(node.Children, captureNode(c, counter))
	}
	return node
}

func widgetTypeName(w widget.Widget) string {
	t := reflect.TypeOf(w)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	// Generic types carry their arguments in the name.
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot YAML: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// lineDiff lists the lines that differ at each position.
func lineDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")
	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}
	return buf.String()
}
