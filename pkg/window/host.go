package window

import (
	"sync"

	"github.com/go-strata/strata/pkg/geometry"
)

// Host is the window-system side of a window. It is read, never called
// back.
type Host interface {
	// Extent returns the current client area.
	Extent() geometry.Extent
	// Active reports whether the window has input focus.
	Active() bool
}

// StaticHost is a Host whose values are set by the program. It backs
// headless rendering and tests.
type StaticHost struct {
	mu     sync.Mutex
	extent geometry.Extent
	active bool
}

// NewStaticHost returns an active host of the given extent.
func NewStaticHost(extent geometry.Extent) *StaticHost {
	return &StaticHost{extent: extent, active: true}
}

func (h *StaticHost) Extent() geometry.Extent {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.extent
}

func (h *StaticHost) Active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

// Resize changes the extent. The next layout pass is forced.
func (h *StaticHost) Resize(extent geometry.Extent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.extent = extent
}

// SetActive changes the focus state.
func (h *StaticHost) SetActive(active bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.active = active
}
