// Package frame runs a window's frame passes once per display refresh.
//
// A Driver owns a goroutine that waits on a Sync, calls Frame on its
// Target, and hands each new display list to Present. A panic inside a
// frame is reported through the errors package and stops the driver.
package frame

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-strata/strata/pkg/errors"
	"github.com/go-strata/strata/pkg/render"
)

// DefaultInterval is one refresh at 60Hz.
const DefaultInterval = 16667 * time.Microsecond

// Target runs one frame. window.Window implements it.
type Target interface {
	Frame(displayTime time.Time) *render.DisplayList
}

// Driver calls a Target once per refresh.
type Driver struct {
	// Interval is the expected refresh period. Frames that take longer are
	// counted as overruns.
	Interval time.Duration
	// Sync paces the loop. When nil, Run uses a TickerSync at Interval.
	Sync Sync
	// Present receives every display list the target produces.
	Present func(*render.DisplayList)

	target  Target
	timings *Timings
}

// NewDriver creates a driver for target at DefaultInterval.
func NewDriver(target Target) *Driver {
	return &Driver{
		Interval: DefaultInterval,
		target:   target,
		timings:  NewTimings(0),
	}
}

// Timings returns the recorded frame durations.
func (d *Driver) Timings() *Timings {
	return d.timings
}

// Run drives frames until ctx is done or a frame panics. It returns nil
// when ctx ends the loop.
func (d *Driver) Run(ctx context.Context) error {
	sync := d.Sync
	if sync == nil {
		sync = NewTickerSync(d.Interval)
	}
	defer sync.Stop()

	for {
		now, err := sync.Wait(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return &errors.Error{Op: "frame.Driver.Run", Kind: errors.KindFrame, Err: err, Timestamp: time.Now()}
		}
		if err := d.Step(now); err != nil {
			return err
		}
	}
}

// Step runs a single frame for displayTime.
func (d *Driver) Step(displayTime time.Time) (err error) {
	const op = "frame.Driver.Step"
	start := time.Now()
	defer errors.RecoverWithCallback(op, func(r any) {
		err = &errors.Error{
			Op:         op,
			Kind:       errors.KindFrame,
			Err:        fmt.Errorf("frame panicked: %v", r),
			StackTrace: errors.CaptureStack(),
			Timestamp:  time.Now(),
		}
	})

	list := d.target.Frame(displayTime)
	elapsed := time.Since(start)
	overrun := d.Interval > 0 && elapsed > d.Interval
	if overrun {
		log.Printf("frame: %v frame overran the %v interval", elapsed, d.Interval)
	}
	d.timings.Add(elapsed, overrun)

	if list != nil && d.Present != nil {
		d.Present(list)
	}
	return nil
}
