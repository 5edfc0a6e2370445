package frame

import (
	"fmt"
	"sync"
	"time"

	"github.com/aclements/go-moremath/stats"
)

// Stats summarizes recent frame durations in milliseconds.
type Stats struct {
	Count    int
	Mean     float64
	P50      float64
	P99      float64
	Max      float64
	Overruns int
}

func (s Stats) String() string {
	return fmt.Sprintf("frames=%d mean=%.2fms p50=%.2fms p99=%.2fms max=%.2fms overruns=%d",
		s.Count, s.Mean, s.P50, s.P99, s.Max, s.Overruns)
}

// Timings is a ring buffer of frame durations.
type Timings struct {
	mu       sync.RWMutex
	samples  []time.Duration
	index    int
	count    int
	overruns int
}

// NewTimings creates a buffer holding the last capacity frames.
func NewTimings(capacity int) *Timings {
	if capacity <= 0 {
		capacity = 240
	}
	return &Timings{samples: make([]time.Duration, capacity)}
}

// Add records one frame. overrun marks a frame that missed its refresh.
func (t *Timings) Add(d time.Duration, overrun bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.samples[t.index] = d
	t.index = (t.index + 1) % len(t.samples)
	if t.count < len(t.samples) {
		t.count++
	}
	if overrun {
		t.overruns++
	}
}

// Samples returns the recorded durations, oldest first.
func (t *Timings) Samples() []time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]time.Duration, t.count)
	if t.count < len(t.samples) {
		copy(out, t.samples[:t.count])
	} else {
		n := copy(out, t.samples[t.index:])
		copy(out[n:], t.samples[:t.index])
	}
	return out
}

// Stats summarizes the buffer. Overruns counts every overrun since the
// buffer was created, not only the retained window.
func (t *Timings) Stats() Stats {
	samples := t.Samples()
	t.mu.RLock()
	overruns := t.overruns
	t.mu.RUnlock()

	if len(samples) == 0 {
		return Stats{Overruns: overruns}
	}
	xs := make([]float64, len(samples))
	for i, d := range samples {
		xs[i] = float64(d) / float64(time.Millisecond)
	}
	s := stats.Sample{Xs: xs}
	s.Sort()
	_, max := s.Bounds()
	return Stats{
		Count:    len(xs),
		Mean:     s.Mean(),
		P50:      s.Quantile(0.5),
		P99:      s.Quantile(0.99),
		Max:      max,
		Overruns: overruns,
	}
}
