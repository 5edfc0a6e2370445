package cmd

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/sync/errgroup"

	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/render"
	"github.com/go-strata/strata/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render the demo scene to image files",
		Long: `Render the demo scene once per window size and write one image per size.

Sizes render concurrently, each in its own window. Defaults come from
strata.yaml when present.

Flags:
  --sizes WxH[,WxH...]   Window sizes (default 640x480)
  --out DIR              Output directory (default .)
  --format NAME          png, bmp or tiff (default png)
  --theme FILE           Theme file (.yaml, .yml or .toml)
  --dark                 Use the dark default theme
  --font NAME            basic, goregular or cells
  --title TEXT           Scene title
  --no-menu              Render with the overlay menu closed`,
		Usage: "strata render [--sizes WxH,...] [--out DIR] [--format png|bmp|tiff] [--theme FILE]",
		Run:   runRender,
	})
}

type renderOptions struct {
	sceneOptions
	sizes  []string
	out    string
	format string
}

func runRender(args []string) error {
	cfg, err := loadProject()
	if err != nil {
		return err
	}
	opts := renderOptions{
		sceneOptions: defaultSceneOptions(cfg),
		out:          cfg.OutDir,
		format:       cfg.Format,
	}
	var flagSizes []string

	for i := 0; i < len(args); i++ {
		n, ok, err := opts.parseSceneFlag(args, i)
		if err != nil {
			return err
		}
		if ok {
			i += n
			continue
		}
		if v, n, ok, err := flagValue(args, i, "--sizes"); ok {
			if err != nil {
				return err
			}
			flagSizes = append(flagSizes, v)
			i += n
			continue
		}
		if v, n, ok, err := flagValue(args, i, "--out"); ok {
			if err != nil {
				return err
			}
			opts.out = v
			i += n
			continue
		}
		if v, n, ok, err := flagValue(args, i, "--format"); ok {
			if err != nil {
				return err
			}
			opts.format = strings.ToLower(v)
			i += n
			continue
		}
		return fmt.Errorf("unknown flag %q", args[i])
	}
	opts.sizes = cfg.Sizes
	if len(flagSizes) > 0 {
		opts.sizes = flagSizes
	}

	paths, err := renderAll(context.Background(), opts)
	for _, p := range paths {
		if p != "" {
			fmt.Printf("wrote %s\n", p)
		}
	}
	return err
}

// renderAll renders every size concurrently and returns the written paths
// in size order.
func renderAll(ctx context.Context, opts renderOptions) ([]string, error) {
	if err := checkFormat(opts.format); err != nil {
		return nil, err
	}
	sizes, err := parseSizes(opts.sizes)
	if err != nil {
		return nil, err
	}
	th, err := opts.theme()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, len(sizes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, size := range sizes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := renderScene(opts.sceneOptions, th, size)
			if err != nil {
				return fmt.Errorf("render %v: %w", size, err)
			}
			path := filepath.Join(opts.out, imageName(opts.title, size, opts.format))
			if err := writeImage(path, img, opts.format); err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	return paths, g.Wait()
}

// renderScene runs one frame of the demo scene and rasterizes it.
func renderScene(opts sceneOptions, th *theme.Theme, size geometry.Extent) (*image.RGBA, error) {
	win, sc, err := opts.newSceneWindow(th, size)
	if err != nil {
		return nil, err
	}
	defer sc.Close()

	list := win.Frame(time.Now())
	if list == nil {
		return nil, fmt.Errorf("first frame produced no display list")
	}
	r := render.Rasterizer{Background: th.FillColor(0)}
	return r.Rasterize(list), nil
}

func imageName(title string, size geometry.Extent, format string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ' || r == '_' || r == '.':
			return '-'
		}
		return -1
	}, title)
	if slug == "" {
		slug = "scene"
	}
	return fmt.Sprintf("%s-%dx%d.%s", slug, int(size.Width), int(size.Height), format)
}

func checkFormat(format string) error {
	switch format {
	case "png", "bmp", "tiff":
		return nil
	}
	return fmt.Errorf("unknown image format %q (use png, bmp or tiff)", format)
}

func writeImage(path string, img image.Image, format string) (err error) {
	if err := checkFormat(format); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	switch format {
	case "png":
		err = png.Encode(w, img)
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return w.Flush()
}
