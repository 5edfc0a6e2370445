// Package config reads the optional strata.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the project file looked up by the CLI.
const FileName = "strata.yaml"

// Config represents strata.yaml.
type Config struct {
	Scene  SceneConfig  `yaml:"scene"`
	Theme  string       `yaml:"theme,omitempty"`
	Render RenderConfig `yaml:"render"`
}

// SceneConfig contains demo scene settings.
type SceneConfig struct {
	Title string `yaml:"title,omitempty"`
}

// RenderConfig contains defaults for the render command.
type RenderConfig struct {
	Sizes  []string `yaml:"sizes,omitempty"`
	Out    string   `yaml:"out,omitempty"`
	Font   string   `yaml:"font,omitempty"`
	Format string   `yaml:"format,omitempty"`
}

// Resolved contains configuration with defaults applied.
type Resolved struct {
	Root       string
	ModulePath string
	Title      string
	ThemePath  string
	Sizes      []string
	OutDir     string
	Font       string
	Format     string
}

// LoadOptional reads strata.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads strata.yaml (if present) from dir and applies defaults.
// Relative paths in the file are taken relative to dir.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	modPath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Root:       dir,
		ModulePath: modPath,
		Title:      strings.TrimSpace(cfg.Scene.Title),
		Sizes:      cfg.Render.Sizes,
		OutDir:     cfg.Render.Out,
		Font:       strings.ToLower(strings.TrimSpace(cfg.Render.Font)),
		Format:     strings.ToLower(strings.TrimSpace(cfg.Render.Format)),
	}
	if r.Title == "" {
		r.Title = defaultTitle(modPath, dir)
	}
	if cfg.Theme != "" {
		r.ThemePath = resolvePath(dir, cfg.Theme)
	}
	if len(r.Sizes) == 0 {
		r.Sizes = []string{"640x480"}
	}
	if r.OutDir == "" {
		r.OutDir = "."
	}
	r.OutDir = resolvePath(dir, r.OutDir)
	if r.Font == "" {
		r.Font = "basic"
	}
	if r.Format == "" {
		r.Format = "png"
	}

	if err := validateFont(r.Font); err != nil {
		return nil, err
	}
	if err := validateFormat(r.Format); err != nil {
		return nil, err
	}
	return r, nil
}

// FindProjectRoot walks up from the current directory to the first
// directory holding strata.yaml or go.mod. Outside any project it returns
// the current directory.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for dir := cwd; ; {
		for _, name := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// modulePath returns the module path declared by dir's go.mod, or the
// empty string when there is none.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	if err := module.CheckImportPath(path); err != nil {
		return "", fmt.Errorf("go.mod: %w", err)
	}
	return path, nil
}

// defaultTitle names the scene after the last element of the module path
// without its major version suffix, or after dir.
func defaultTitle(modPath, dir string) string {
	base := filepath.Base(dir)
	if prefix, _, ok := module.SplitPathVersion(modPath); ok && prefix != "" {
		parts := strings.Split(prefix, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "strata"
	}
	return base
}

func resolvePath(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func validateFont(name string) error {
	switch name {
	case "basic", "goregular", "cells":
		return nil
	}
	return fmt.Errorf("render.font must be basic, goregular or cells (got %q)", name)
}

func validateFormat(name string) error {
	switch name {
	case "png", "bmp", "tiff":
		return nil
	}
	return fmt.Errorf("render.format must be png, bmp or tiff (got %q)", name)
}
