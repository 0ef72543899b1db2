package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchfit/pkg/errors"
)

const ratioDoc = `{"ai_lines": 10, "human_lines": 30, "projects": 1}`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derived from input", "", "data/summary.json", "data/summary.svg"},
		{"explicit", "chart.svg", "summary.json", "chart.svg"},
		{"stdout flag", "-", "summary.json", ""},
		{"stdin input", "", "-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, tt.input); got != tt.want {
				t.Errorf("outputPath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		w, h    float64
		wantErr bool
	}{
		{"400x300", 400, 300, false},
		{" 640X360 ", 640, 360, false},
		{"800x0", 800, 0, false},
		{"400", 0, 0, true},
		{"ax300", 0, 0, true},
		{"400x-1", 0, 0, true},
		{"99999x1", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, h, err := parseSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
				}
				return
			}
			if w != tt.w || h != tt.h {
				t.Errorf("parseSize(%q) = %vx%v, want %vx%v", tt.input, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestChartFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "chart.toml", "title = \"From file\"\nlegend_scale = 0.8\nlegend_font_size = 12\n")

	var f chartFlags
	cmd := &cobra.Command{Use: "chart"}
	f.register(cmd)
	if err := cmd.Flags().Parse([]string{"--kind", "pie", "-c", cfg, "--legend-scale", "1.5"}); err != nil {
		t.Fatal(err)
	}

	opts, err := f.options(cmd)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Kind != "pie" {
		t.Errorf("Kind = %q", opts.Kind)
	}
	if opts.Chart.Title != "From file" {
		t.Errorf("Title = %q, want the file value", opts.Chart.Title)
	}
	if opts.Chart.LegendScale != 1.5 {
		t.Errorf("LegendScale = %v, want the flag value 1.5", opts.Chart.LegendScale)
	}
	if opts.Chart.LegendFontSize != 12 {
		t.Errorf("LegendFontSize = %v, want the file value 12", opts.Chart.LegendFontSize)
	}
}

func TestChartFlagsRejectBadKind(t *testing.T) {
	var f chartFlags
	cmd := &cobra.Command{Use: "chart"}
	f.register(cmd)
	if err := cmd.Flags().Parse([]string{"--kind", "line"}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.options(cmd); !errors.Is(err, errors.ErrCodeInvalidKind) {
		t.Errorf("options() error = %v, want %v", err, errors.ErrCodeInvalidKind)
	}
}

func TestRenderCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	input := writeFile(t, dir, "ai_ratio.json", ratioDoc)
	output := filepath.Join(dir, "out.svg")

	var logs bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetArgs([]string{"render", input, "--kind", "pie", "--width", "400", "--height", "300", "-o", output})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.Contains(string(svg), `viewBox="0 0 400 300"`) {
		t.Errorf("unexpected SVG: %.160s", svg)
	}
	if !strings.Contains(string(svg), "translate(200,150)") {
		t.Error("pie should be centred in the container")
	}
	if !strings.Contains(logs.String(), "rendered chart") {
		t.Errorf("expected render log, got %q", logs.String())
	}
}

func TestRenderCommandMissingInput(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"render", filepath.Join(t.TempDir(), "missing.json"), "--no-cache"})
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("render error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestInspectCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "ai_ratio.json", ratioDoc)

	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"inspect", input, "--kind", "pie", "--size", "400x300", "--size", "200x200"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("inspect: %v", err)
	}

	root = New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"inspect", input, "--kind", "pie", "--size", "wide"})
	root.SetErr(&bytes.Buffer{})
	if err := root.ExecuteContext(context.Background()); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("inspect with a bad size error = %v", err)
	}
}
