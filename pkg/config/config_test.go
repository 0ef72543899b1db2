package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/sketchfit/pkg/errors"
	"github.com/matzehuels/sketchfit/pkg/sketch"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"opts.toml", FormatTOML, false},
		{"opts.yaml", FormatYAML, false},
		{"OPTS.YML", FormatYAML, false},
		{"dir/opts.json", FormatJSON, false},
		{"opts.ini", "", true},
		{"opts", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"toml", FormatTOML, `
title = "Commits"
legend_scale = 0.8
legend_font_size = 12
legend_position = "upRight"

[chart_margins]
left = 60
bottom = 40
`},
		{"yaml", FormatYAML, `
title: Commits
legend_scale: 0.8
legend_font_size: 12
legend_position: upRight
chart_margins:
  left: 60
  bottom: 40
`},
		{"json", FormatJSON, `{
  "title": "Commits",
  "legend_scale": 0.8,
  "legend_font_size": 12,
  "legend_position": "upRight",
  "chart_margins": {"left": 60, "bottom": 40}
}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Parse([]byte(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if opts.Title != "Commits" {
				t.Errorf("Title = %q", opts.Title)
			}
			if opts.LegendScale != 0.8 || opts.LegendFontSize != 12 {
				t.Errorf("legend = (%v, %v), want (0.8, 12)", opts.LegendScale, opts.LegendFontSize)
			}
			if opts.LegendPosition != sketch.UpRight {
				t.Errorf("LegendPosition = %q", opts.LegendPosition)
			}
			m := opts.MarginConfig()
			if m == nil || m.Left == nil || *m.Left != 60 || m.Bottom == nil || *m.Bottom != 40 {
				t.Fatalf("chart_margins not decoded: %+v", m)
			}
			if m.Top != nil || m.Right != nil {
				t.Error("unset sides should stay nil")
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, f := range []Format{FormatTOML, FormatYAML} {
		opts, err := Parse(nil, f)
		if err != nil {
			t.Errorf("Parse(empty, %s): %v", f, err)
			continue
		}
		if opts.Scale() != 1 {
			t.Errorf("empty %s options scale = %v, want 1", f, opts.Scale())
		}
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		code   errors.Code
	}{
		{"unknown toml key", FormatTOML, `legend_scal = 2`, errors.ErrCodeInvalidConfig},
		{"unknown yaml key", FormatYAML, "legendScale: 2\n", errors.ErrCodeInvalidConfig},
		{"unknown json key", FormatJSON, `{"legendScale": 2}`, errors.ErrCodeInvalidConfig},
		{"malformed toml", FormatTOML, `title = `, errors.ErrCodeInvalidConfig},
		{"negative scale", FormatTOML, `legend_scale = -1`, errors.ErrCodeInvalidConfig},
		{"bad position", FormatYAML, "legend_position: middle\n", errors.ErrCodeInvalidConfig},
		{"negative margin", FormatTOML, "[margins]\ntop = -5\n", errors.ErrCodeInvalidConfig},
		{"donut too wide", FormatJSON, `{"inner_radius": 1}`, errors.ErrCodeInvalidConfig},
		{"unsupported format", Format("ini"), ``, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input), tt.format)
			if err == nil {
				t.Fatal("Parse should fail")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opts.yml")
	if err := os.WriteFile(path, []byte("legend_scale: 1.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if opts.Scale() != 1.5 {
		t.Errorf("Scale() = %v, want 1.5", opts.Scale())
	}

	_, err = LoadFile(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestLoad(t *testing.T) {
	opts, err := Load(strings.NewReader(`inner_radius = 0.5`), FormatTOML)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.InnerRadius != 0.5 {
		t.Errorf("InnerRadius = %v, want 0.5", opts.InnerRadius)
	}
}
