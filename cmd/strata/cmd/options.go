package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-strata/strata/cmd/strata/internal/config"
	"github.com/go-strata/strata/cmd/strata/internal/scene"
	"github.com/go-strata/strata/pkg/geometry"
	"github.com/go-strata/strata/pkg/text"
	"github.com/go-strata/strata/pkg/theme"
	"github.com/go-strata/strata/pkg/treelock"
	"github.com/go-strata/strata/pkg/window"
)

// sceneOptions are the flags shared by every command that builds the demo
// scene.
type sceneOptions struct {
	themePath string
	dark      bool
	font      string
	menu      bool
	title     string
}

// loadProject resolves strata.yaml for the current directory.
func loadProject() (*config.Resolved, error) {
	root, err := config.FindProjectRoot()
	if err != nil {
		return nil, err
	}
	return config.Resolve(root)
}

func defaultSceneOptions(cfg *config.Resolved) sceneOptions {
	return sceneOptions{
		themePath: cfg.ThemePath,
		font:      cfg.Font,
		menu:      true,
		title:     cfg.Title,
	}
}

// parseSceneFlag consumes a shared flag at args[i]. It reports whether the
// flag was recognized and how many extra arguments it used.
func (o *sceneOptions) parseSceneFlag(args []string, i int) (int, bool, error) {
	switch args[i] {
	case "--dark":
		o.dark = true
		return 0, true, nil
	case "--no-menu":
		o.menu = false
		return 0, true, nil
	}
	if v, n, ok, err := flagValue(args, i, "--theme"); ok {
		o.themePath = v
		return n, true, err
	}
	if v, n, ok, err := flagValue(args, i, "--font"); ok {
		o.font = strings.ToLower(v)
		return n, true, err
	}
	if v, n, ok, err := flagValue(args, i, "--title"); ok {
		o.title = v
		return n, true, err
	}
	return 0, false, nil
}

func (o sceneOptions) theme() (*theme.Theme, error) {
	if o.themePath == "" {
		if o.dark {
			return theme.Default(theme.Dark), nil
		}
		return theme.Default(theme.Light), nil
	}
	return theme.Load(o.themePath)
}

// measurer returns a new measurer. Font faces are not safe for concurrent
// use, so every window gets its own.
func (o sceneOptions) measurer(th *theme.Theme) (text.Measurer, error) {
	switch o.font {
	case "", "basic":
		return text.Basic(), nil
	case "goregular":
		return text.GoRegular(th.LabelSize)
	case "cells":
		return text.CellMeasurer{CellWidth: 8, CellHeight: 16}, nil
	default:
		return nil, fmt.Errorf("unknown font %q (use basic, goregular or cells)", o.font)
	}
}

// newSceneWindow creates a window of the given size holding the demo
// scene.
func (o sceneOptions) newSceneWindow(th *theme.Theme, size geometry.Extent) (*window.Window, *scene.Scene, error) {
	m, err := o.measurer(th)
	if err != nil {
		return nil, nil, err
	}
	win := window.New(window.NewStaticHost(size), window.WithTheme(th), window.WithMeasurer(m))
	var sc *scene.Scene
	win.Update(func(tok *treelock.Token) {
		sc = scene.Build(tok, win, o.title, o.menu)
		win.SetRoot(tok, sc.Root)
	})
	return win, sc, nil
}

// parseSize parses "WxH".
func parseSize(s string) (geometry.Extent, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return geometry.Extent{}, fmt.Errorf("invalid size %q (want WxH)", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return geometry.Extent{}, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return geometry.Extent{}, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return geometry.Extent{}, fmt.Errorf("invalid size %q: both sides must be positive", s)
	}
	return geometry.Ext(float64(w), float64(h)), nil
}

// parseSizes parses sizes given as a comma separated list or as separate
// entries.
func parseSizes(list []string) ([]geometry.Extent, error) {
	var out []geometry.Extent
	for _, entry := range list {
		for _, s := range strings.Split(entry, ",") {
			if strings.TrimSpace(s) == "" {
				continue
			}
			ext, err := parseSize(s)
			if err != nil {
				return nil, err
			}
			out = append(out, ext)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return out, nil
}

// parsePoint parses two coordinates.
func parsePoint(xs, ys string) (geometry.Point, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("invalid x %q: %w", xs, err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("invalid y %q: %w", ys, err)
	}
	return geometry.Pt(x, y), nil
}
