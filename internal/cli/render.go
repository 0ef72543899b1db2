package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchfit/pkg/config"
	"github.com/matzehuels/sketchfit/pkg/dashboard"
	"github.com/matzehuels/sketchfit/pkg/errors"
	"github.com/matzehuels/sketchfit/pkg/pipeline"
	"github.com/matzehuels/sketchfit/pkg/sketch"
)

// chartFlags holds the flags shared by render and inspect.
type chartFlags struct {
	kind           string  // chart kind: "bar" or "pie"
	series         string  // summary series for bar charts
	width          float64 // container width in pixels
	height         float64 // container height in pixels
	configPath     string  // option file (.toml, .yaml, .json)
	title          string  // chart title override
	legendScale    float64 // legend scale override
	legendFontSize float64 // legend font size override
	legendPosition string  // legend corner override
}

// register adds the chart flags to cmd.
func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.kind, "kind", "k", pipeline.KindBar, "chart kind: bar, pie")
	cmd.Flags().StringVar(&f.series, "series", "", "summary series for bar charts: hour (default), week, work_hour, work_week")
	cmd.Flags().Float64Var(&f.width, "width", pipeline.DefaultWidth, "container width")
	cmd.Flags().Float64Var(&f.height, "height", pipeline.DefaultHeight, "container height (0 keeps the drawn height)")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "chart option file (.toml, .yaml or .json)")
	cmd.Flags().StringVar(&f.title, "title", "", "chart title")
	cmd.Flags().Float64Var(&f.legendScale, "legend-scale", 0, "legend scale factor (overrides the option file)")
	cmd.Flags().Float64Var(&f.legendFontSize, "legend-font-size", 0, "legend font size in pixels (overrides the option file)")
	cmd.Flags().StringVar(&f.legendPosition, "legend-position", "", "legend corner: upLeft, upRight, downLeft, downRight")
	_ = cmd.RegisterFlagCompletionFunc("kind", cobra.FixedCompletions(
		[]string{pipeline.KindBar, pipeline.KindPie}, cobra.ShellCompDirectiveNoFileComp))
}

// options builds pipeline options from the flags. Flags set on the command
// line win over the option file.
func (f *chartFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	chart := &sketch.Options{}
	if f.configPath != "" {
		loaded, err := config.LoadFile(f.configPath)
		if err != nil {
			return pipeline.Options{}, err
		}
		chart = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		chart.Title = f.title
	}
	if flags.Changed("legend-scale") {
		chart.LegendScale = f.legendScale
	}
	if flags.Changed("legend-font-size") {
		chart.LegendFontSize = f.legendFontSize
	}
	if flags.Changed("legend-position") {
		chart.LegendPosition = sketch.Position(f.legendPosition)
	}

	opts := pipeline.Options{
		Kind:   f.kind,
		Series: dashboard.Series(f.series),
		Width:  f.width,
		Height: f.height,
		Chart:  chart,
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	chartFlags
	output  string // output file path ("-" for stdout)
	noCache bool   // disable the render cache
	refresh bool   // re-render even when cached
}

// renderCommand creates the render command for drawing a chart to SVG.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a dashboard document as a fitted SVG chart",
		Long: `Render a dashboard document as a fitted SVG chart.

Bar charts are drawn from a summary document (hour_data, week_data, ...),
pie charts from an AI ratio document. The chart is laid out for a container
of --width x --height pixels.`,
		Example: `  sketchfit render summary.json --kind bar --series week --width 640 --height 360
  sketchfit render ai_ratio.json --kind pie -c chart.toml -o ai.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeOpts, err := opts.options(cmd)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], pipeOpts, &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with .svg, - for stdout)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when a cached chart exists")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, pipeOpts pipeline.Options, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	data, err := readInput(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	pipeOpts.Refresh = opts.refresh
	pipeOpts.Logger = logger
	result, err := runner.Execute(ctx, data, pipeOpts)
	if err != nil {
		return err
	}

	path := outputPath(opts.output, input)
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(result.SVG); err != nil {
		return err
	}

	if path != "" {
		prog.done("Rendered "+path, "kind", result.Geometry.Kind,
			"canvas", formatSize(result.Geometry.CanvasWidth, result.Geometry.CanvasHeight))
		printStats(result.Geometry, result.CacheHit)
		printFile(path)
	}
	return nil
}

// readInput reads the document at path, or stdin for "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, nil
}

// outputPath resolves the -o flag. An empty flag derives the name from the
// input; "-" (or stdin input) writes to stdout, reported as "".
func outputPath(output, input string) string {
	switch {
	case output == "-":
		return ""
	case output != "":
		return output
	case input == "-":
		return ""
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
}

// nopCloser wraps a writer that must not be closed, such as stdout.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// openOutput opens path for writing, or stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
