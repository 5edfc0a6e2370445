package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/treelock"
)

func init() {
	RegisterCommand(&Command{
		Name:  "hittest",
		Short: "Print the topmost widget at a point",
		Long: `Lay out the demo scene and print the topmost widget at a point.

Coordinates are window coordinates with the origin at the bottom-left
corner and y growing upward.

Flags:
  --size WxH       Window size (default: first size from strata.yaml)
  --theme FILE     Theme file
  --font NAME      basic, goregular or cells
  --no-menu        Hit-test with the overlay menu closed`,
		Usage: "strata hittest [--size WxH] [--no-menu] <x> <y>",
		Run:   runHitTest,
	})
}

func runHitTest(args []string) error {
	cfg, err := loadProject()
	if err != nil {
		return err
	}
	opts := defaultSceneOptions(cfg)
	sizeArg := cfg.Sizes[0]
	var coords []string

	for i := 0; i < len(args); i++ {
		n, ok, err := opts.parseSceneFlag(args, i)
		if err != nil {
			return err
		}
		if ok {
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
		coords = append(coords, args[i])
	}
	if len(coords) != 2 {
		return fmt.Errorf("expected <x> <y>\n\nUsage: strata hittest [--size WxH] <x> <y>")
	}

	size, err := parseSize(sizeArg)
	if err != nil {
		return err
	}
	p, err := parsePoint(coords[0], coords[1])
	if err != nil {
		return err
	}
	return hitTest(os.Stdout, opts, size, p)
}

// describer is implemented by widgets that show a line of text.
type describer interface {
	Text() string
}

func hitTest(w io.Writer, opts sceneOptions, size geometry.Extent, p geometry.Point) error {
	th, err := opts.theme()
	if err != nil {
		return err
	}
	win, sc, err := opts.newSceneWindow(th, size)
	if err != nil {
		return err
	}
	defer sc.Close()
	win.Frame(time.Now())

	hb, ok := win.HitTest(p)
	if !ok {
		fmt.Fprintf(w, "%v: nothing\n", p)
		return nil
	}
	var rect geometry.Rect
	var label string
	win.Update(func(*treelock.Token) {
		rect = hb.Widget.Node().WindowRect()
		if d, ok := hb.Widget.(describer); ok {
			label = d.Text()
		}
	})
	fmt.Fprintf(w, "%v: %T kind=%s elevation=%g rect=%v", p, hb.Widget, hb.Kind, hb.Elevation, rect)
	if label != "" {
		fmt.Fprintf(w, " text=%q", label)
	}
	fmt.Fprintln(w)
	return nil
}
