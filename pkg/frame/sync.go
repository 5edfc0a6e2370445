package frame

import (
	"context"
	"time"
)

// Sync waits for the next display refresh.
type Sync interface {
	// Wait blocks until the next refresh and returns its display time.
	Wait(ctx context.Context) (time.Time, error)
	// Stop releases the underlying resources.
	Stop()
}

// TickerSync paces frames with a timer. It is the fallback when no display
// refresh signal is available.
type TickerSync struct {
	ticker *time.Ticker
}

// NewTickerSync returns a Sync that fires every interval.
func NewTickerSync(interval time.Duration) *TickerSync {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &TickerSync{ticker: time.NewTicker(interval)}
}

func (s *TickerSync) Wait(ctx context.Context) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	case t := <-s.ticker.C:
		return t, nil
	}
}

func (s *TickerSync) Stop() {
	s.ticker.Stop()
}
