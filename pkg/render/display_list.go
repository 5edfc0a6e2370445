package render

import (
	"cmp"
	"slices"

	"github.com/go-strata/strata/pkg/geometry"
)

// DisplayList is an immutable list of primitives in submission order.
type DisplayList struct {
	prims  []Primitive
	extent geometry.Extent
}

// Extent returns the window extent recorded when the list was created.
func (d *DisplayList) Extent() geometry.Extent {
	return d.extent
}

// Len returns the number of primitives.
func (d *DisplayList) Len() int {
	return len(d.prims)
}

// Primitives returns a copy of the primitives in submission order.
func (d *DisplayList) Primitives() []Primitive {
	return slices.Clone(d.prims)
}

// InPaintOrder returns the primitives sorted by depth. Primitives with equal
// depth keep their submission order.
func (d *DisplayList) InPaintOrder() []Primitive {
	out := slices.Clone(d.prims)
	slices.SortStableFunc(out, func(a, b Primitive) int {
		return cmp.Compare(a.Depth(), b.Depth())
	})
	return out
}

// Recorder records primitives into a display list. It implements Sink.
type Recorder struct {
	prims     []Primitive
	recording bool
	extent    geometry.Extent
}

// BeginRecording starts a new recording session for a window of extent.
func (r *Recorder) BeginRecording(extent geometry.Extent) Sink {
	r.prims = r.prims[:0]
	r.recording = true
	r.extent = extent
	return r
}

// Submit appends p. Primitives submitted outside a session are dropped.
func (r *Recorder) Submit(p Primitive) {
	if !r.recording {
		return
	}
	r.prims = append(r.prims, p)
}

// EndRecording finishes the session and returns the display list.
func (r *Recorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{extent: r.extent}
	}
	r.recording = false
	return &DisplayList{
		prims:  slices.Clone(r.prims),
		extent: r.extent,
	}
}
