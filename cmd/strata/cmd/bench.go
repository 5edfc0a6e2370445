package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/go-strata/strata/pkg/frame"
	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/render"
	"github.com/go-strata/strata/pkg/window"
)

func init() {
	RegisterCommand(&Command{
		Name:  "bench",
		Short: "Drive the demo scene with a frame loop and report timings",
		Long: `Run the frame driver over the demo scene while a synthetic pointer sweeps
across the window, then print frame time statistics.

Flags:
  --frames N         Number of frames to run (default 240)
  --interval D       Frame interval, e.g. 4ms (default 16.667ms)
  --size WxH         Window size (default: first size from strata.yaml)
  --theme FILE       Theme file
  --font NAME        basic, goregular or cells`,
		Usage: "strata bench [--frames N] [--interval D] [--size WxH]",
		Run:   runBench,
	})
}

type benchOptions struct {
	sceneOptions
	frames   int
	interval time.Duration
	size     geometry.Extent
}

func runBench(args []string) error {
	cfg, err := loadProject()
	if err != nil {
		return err
	}
	opts := benchOptions{
		sceneOptions: defaultSceneOptions(cfg),
		frames:       240,
		interval:     frame.DefaultInterval,
	}
	sizeArg := cfg.Sizes[0]

	for i := 0; i < len(args); i++ {
		n, ok, err := opts.parseSceneFlag(args, i)
		if err != nil {
			return err
		}
		if ok {
			i += n
			continue
		}
		if v, n, ok, err := flagValue(args, i, "--frames"); ok {
			if err != nil {
				return err
			}
			if opts.frames, err = strconv.Atoi(v); err != nil || opts.frames <= 0 {
				return fmt.Errorf("invalid --frames %q", v)
			}
			i += n
			continue
		}
		if v, n, ok, err := flagValue(args, i, "--interval"); ok {
			if err != nil {
				return err
			}
			if opts.interval, err = time.ParseDuration(v); err != nil || opts.interval <= 0 {
				return fmt.Errorf("invalid --interval %q", v)
			}
			i += n
			continue
		}
		if v, n, ok, err := flagValue(args, i, "--size"); ok {
			if err != nil {
				return err
			}
			sizeArg = v
			i += n
			continue
		}
		return fmt.Errorf("unknown flag %q", args[i])
	}
	if opts.size, err = parseSize(sizeArg); err != nil {
		return err
	}

	stats, err := bench(context.Background(), opts)
	if err != nil {
		return err
	}
	return printStats(os.Stdout, stats)
}

// sweepTarget moves the pointer one step along the window diagonal before
// every frame so hover changes keep the tree busy.
type sweepTarget struct {
	win    *window.Window
	size   geometry.Extent
	step   int
	steps  int
	frames int
	limit  int
	done   func()
}

func (s *sweepTarget) Frame(displayTime time.Time) *render.DisplayList {
	t := (float64(s.step%s.steps) + 0.5) / float64(s.steps)
	s.step++
	s.win.HandlePointer(window.PointerEvent{
		Phase:    window.PointerPhaseMove,
		Position: geometry.Pt(t*s.size.Width, (1-t)*s.size.Height),
	})
	list := s.win.Frame(displayTime)
	s.frames++
	if s.frames >= s.limit {
		s.done()
	}
	return list
}

func bench(ctx context.Context, opts benchOptions) (frame.Stats, error) {
	th, err := opts.theme()
	if err != nil {
		return frame.Stats{}, err
	}
	win, sc, err := opts.newSceneWindow(th, opts.size)
	if err != nil {
		return frame.Stats{}, err
	}
	defer sc.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	target := &sweepTarget{win: win, size: opts.size, steps: 64, limit: opts.frames, done: cancel}

	driver := frame.NewDriver(target)
	driver.Interval = opts.interval
	driver.Sync = frame.NewTickerSync(opts.interval)
	if err := driver.Run(ctx); err != nil {
		return frame.Stats{}, err
	}
	return driver.Timings().Stats(), nil
}

func printStats(w io.Writer, s frame.Stats) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
