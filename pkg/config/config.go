// Package config reads chart options from TOML, YAML or JSON files.
//
// Keys follow the option names of package sketch:
//
//	title = "Commits by hour"
//	legend_scale = 0.8
//	legend_font_size = 12
//	legend_position = "upRight"
//
//	[chart_margins]
//	left = 60
//	bottom = 40
//
// Unknown keys are rejected so a typo does not silently fall back to a
// default.
package config

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/sketchfit/pkg/errors"
	"github.com/matzehuels/sketchfit/pkg/sketch"
)

// Format is an option file format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported option file extension %q (want .toml, .yaml or .json)", ext)
	}
}

// LoadFile reads and validates the options in path.
func LoadFile(path string) (*sketch.Options, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "option file %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read option file %s", path)
	}
	return Parse(data, format)
}

// Load reads options in the given format from r.
func Load(r io.Reader, format Format) (*sketch.Options, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read options")
	}
	return Parse(data, format)
}

// Parse decodes and validates options.
func Parse(data []byte, format Format) (*sketch.Options, error) {
	var opts sketch.Options
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &opts)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse TOML options")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown option %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&opts); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse YAML options")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&opts); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse JSON options")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported option format %q", format)
	}

	if err := Validate(&opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

// Validate checks option values that the layout pass cannot recover from.
func Validate(opts *sketch.Options) error {
	if opts == nil {
		return nil
	}
	if err := errors.ValidateScale(opts.LegendScale); err != nil {
		return err
	}
	if err := errors.ValidateLegendPosition(string(opts.LegendPosition)); err != nil {
		return err
	}
	if opts.InnerRadius < 0 || opts.InnerRadius >= 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "inner_radius must be in [0, 1) (got %v)", opts.InnerRadius)
	}
	for name, m := range map[string]*sketch.MarginConfig{"chart_margins": opts.ChartMargins, "margins": opts.Margins} {
		if err := validateMargins(name, m); err != nil {
			return err
		}
	}
	return nil
}

func validateMargins(name string, m *sketch.MarginConfig) error {
	if m == nil {
		return nil
	}
	sides := map[string]*float64{"top": m.Top, "right": m.Right, "bottom": m.Bottom, "left": m.Left}
	for side, v := range sides {
		if v == nil {
			continue
		}
		if err := errors.ValidateDimension(name+"."+side, *v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid %s", name)
		}
	}
	return nil
}
