package theme

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-strata/strata/pkg/errors"
)

// SchemaVersion is the newest theme file schema this package understands.
// Files must declare a schema with the same major version.
const SchemaVersion = "v1.1.0"

// File is the on-disk form of a theme. Unset fields keep the value of the
// default theme for the file's mode.
type File struct {
	Schema         string     `yaml:"schema" toml:"schema"`
	Name           string     `yaml:"name,omitempty" toml:"name,omitempty"`
	Mode           string     `yaml:"mode,omitempty" toml:"mode,omitempty"`
	Margin         *float64   `yaml:"margin,omitempty" toml:"margin,omitempty"`
	BorderWidth    *float64   `yaml:"border_width,omitempty" toml:"border_width,omitempty"`
	RoundingRadius *float64   `yaml:"rounding_radius,omitempty" toml:"rounding_radius,omitempty"`
	LabelSize      *float64   `yaml:"label_size,omitempty" toml:"label_size,omitempty"`
	Colors         ColorsFile `yaml:"colors,omitempty" toml:"colors,omitempty"`
}

// ColorsFile is the color section of a theme file.
type ColorsFile struct {
	Accent string   `yaml:"accent,omitempty" toml:"accent,omitempty"`
	Label  string   `yaml:"label,omitempty" toml:"label,omitempty"`
	Border string   `yaml:"border,omitempty" toml:"border,omitempty"`
	Fill   []string `yaml:"fill,omitempty" toml:"fill,omitempty"`
}

// Load reads a theme file. The format is chosen by extension: .yaml, .yml
// or .toml. A missing file yields the light default theme.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return Default(Light), nil
		}
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, &f)
	case ".toml":
		err = decodeTOML(data, &f)
	default:
		return nil, configError("theme.Load", fmt.Errorf("unsupported theme file extension %q", ext))
	}
	if err != nil {
		return nil, configError("theme.Load", fmt.Errorf("failed to parse %s: %w", path, err))
	}

	t, err := f.Resolve()
	if err != nil {
		return nil, configError("theme.Load", fmt.Errorf("%s: %w", path, err))
	}
	return t, nil
}

// Parse decodes theme bytes in the given format ("yaml" or "toml").
func Parse(data []byte, format string) (*Theme, error) {
	var f File
	var err error
	switch format {
	case "yaml", "yml":
		err = decodeYAML(data, &f)
	case "toml":
		err = decodeTOML(data, &f)
	default:
		return nil, configError("theme.Parse", fmt.Errorf("unsupported theme format %q", format))
	}
	if err != nil {
		return nil, configError("theme.Parse", err)
	}
	t, err := f.Resolve()
	if err != nil {
		return nil, configError("theme.Parse", err)
	}
	return t, nil
}

func decodeYAML(data []byte, f *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func decodeTOML(data []byte, f *File) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(f)
}

// Resolve validates the schema version and applies the file over the
// default theme for its mode.
func (f *File) Resolve() (*Theme, error) {
	if err := checkSchema(f.Schema); err != nil {
		return nil, err
	}
	mode, err := ParseMode(f.Mode)
	if err != nil {
		return nil, err
	}

	t := Default(mode)
	if name := strings.TrimSpace(f.Name); name != "" {
		t.Name = name
	}
	setFloat(&t.Margin, f.Margin)
	setFloat(&t.BorderWidth, f.BorderWidth)
	setFloat(&t.RoundingRadius, f.RoundingRadius)
	setFloat(&t.LabelSize, f.LabelSize)

	if err := setColor(&t.AccentColor, "accent", f.Colors.Accent); err != nil {
		return nil, err
	}
	if err := setColor(&t.LabelColor, "label", f.Colors.Label); err != nil {
		return nil, err
	}
	if err := setColor(&t.BorderColor, "border", f.Colors.Border); err != nil {
		return nil, err
	}
	if len(f.Colors.Fill) > 0 {
		t.FillColors = t.FillColors[:0]
		for i, s := range f.Colors.Fill {
			c, err := ParseColor(s)
			if err != nil {
				return nil, fmt.Errorf("fill color %d: %w", i, err)
			}
			t.FillColors = append(t.FillColors, c)
		}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func checkSchema(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return fmt.Errorf("schema version is required (current is %s)", SchemaVersion)
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("schema %q is not a semantic version", v)
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return fmt.Errorf("schema %s is incompatible with %s", v, SchemaVersion)
	}
	if semver.Compare(v, SchemaVersion) > 0 {
		log.Printf("theme: schema %s is newer than supported %s", v, SchemaVersion)
	}
	return nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setColor(dst *color.RGBA, field, src string) error {
	if strings.TrimSpace(src) == "" {
		return nil
	}
	c, err := ParseColor(src)
	if err != nil {
		return fmt.Errorf("%s color: %w", field, err)
	}
	*dst = c
	return nil
}

// ToFile converts a resolved theme back to its file form.
func (t *Theme) ToFile() *File {
	f := &File{
		Schema:         SchemaVersion,
		Name:           t.Name,
		Mode:           t.Mode.String(),
		Margin:         &t.Margin,
		BorderWidth:    &t.BorderWidth,
		RoundingRadius: &t.RoundingRadius,
		LabelSize:      &t.LabelSize,
		Colors: ColorsFile{
			Accent: FormatColor(t.AccentColor),
			Label:  FormatColor(t.LabelColor),
			Border: FormatColor(t.BorderColor),
		},
	}
	for _, c := range t.FillColors {
		f.Colors.Fill = append(f.Colors.Fill, FormatColor(c))
	}
	return f
}

// MarshalYAML encodes the theme in its YAML file form.
func MarshalYAML(t *Theme) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t.ToFile()); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalTOML encodes the theme in its TOML file form.
func MarshalTOML(t *Theme) ([]byte, error) {
	return toml.Marshal(t.ToFile())
}

func configError(op string, err error) error {
	return &errors.Error{Op: op, Kind: errors.KindConfig, Err: err}
}
