package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-strata/strata/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Validate a theme file and print the resolved theme",
		Long: `Load a theme file, validate it and print every resolved value.

Without a file the theme named in strata.yaml is used, or the default
theme when there is none.

Flags:
  --dark     Start from the dark default theme when no file is given
  --toml     Print TOML instead of YAML`,
		Usage: "strata theme [--dark] [--toml] [file]",
		Run:   runTheme,
	})
}

func runTheme(args []string) error {
	cfg, err := loadProject()
	if err != nil {
		return err
	}
	opts := defaultSceneOptions(cfg)
	asTOML := false
	for _, arg := range args {
		switch arg {
		case "--dark":
			opts.dark = true
		case "--toml":
			asTOML = true
		default:
			opts.themePath = arg
		}
	}
	return printTheme(os.Stdout, opts, asTOML)
}

func printTheme(w io.Writer, opts sceneOptions, asTOML bool) error {
	th, err := opts.theme()
	if err != nil {
		return err
	}
	if err := th.Validate(); err != nil {
		return err
	}

	var data []byte
	if asTOML {
		data, err = theme.MarshalTOML(th)
	} else {
		data, err = theme.MarshalYAML(th)
	}
	if err != nil {
		return fmt.Errorf("failed to encode theme: %w", err)
	}
	_, err = w.Write(data)
	return err
}
