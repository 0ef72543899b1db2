package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchfit/pkg/errors"
	"github.com/matzehuels/sketchfit/pkg/pipeline"
	"github.com/matzehuels/sketchfit/pkg/svgdom"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	chartFlags
	sizes  []string // extra container sizes, "WxH"
	asJSON bool     // print geometry as JSON
}

// inspectCommand creates the inspect command, which prints the geometry a
// fit pass computes without writing the chart.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the fitted geometry of a chart",
		Long: `Print the canvas, plot area and legend geometry a chart gets when fitted
to one or more container sizes.`,
		Example: `  sketchfit inspect ai_ratio.json --kind pie --size 400x300 --size 800x450`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeOpts, err := opts.options(cmd)
			if err != nil {
				return err
			}
			return runInspect(cmd.Context(), args[0], pipeOpts, &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringSliceVar(&opts.sizes, "size", nil, "container size as WIDTHxHEIGHT (repeatable, overrides --width/--height)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print geometry as JSON")

	return cmd
}

func runInspect(ctx context.Context, input string, pipeOpts pipeline.Options, opts *inspectOpts) error {
	data, err := readInput(input)
	if err != nil {
		return err
	}

	sizes := [][2]float64{{pipeOpts.Width, pipeOpts.Height}}
	if len(opts.sizes) > 0 {
		sizes = sizes[:0]
		for _, s := range opts.sizes {
			w, h, err := parseSize(s)
			if err != nil {
				return err
			}
			sizes = append(sizes, [2]float64{w, h})
		}
	}

	geometries := make([]pipeline.Geometry, 0, len(sizes))
	for _, size := range sizes {
		run := pipeOpts
		run.Width, run.Height = size[0], size[1]
		run.Logger = loggerFromContext(ctx)
		result, err := pipeline.Render(ctx, data, run)
		if err != nil {
			return err
		}
		geometries = append(geometries, result.Geometry)
	}

	if opts.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(geometries)
	}

	for i, g := range geometries {
		if i > 0 {
			printNewline()
		}
		printGeometry(sizes[i][0], sizes[i][1], g)
	}
	return nil
}

// printGeometry prints one fitted layout.
func printGeometry(containerW, containerH float64, g pipeline.Geometry) {
	fmt.Println(StyleTitle.Render(fmt.Sprintf("%s chart in %s", g.Kind, formatSize(containerW, containerH))))
	printKeyValue("canvas", formatSize(g.CanvasWidth, g.CanvasHeight))
	printKeyValue("plot", formatSize(g.PlotWidth, g.PlotHeight))
	if g.Transform != "" {
		printKeyValue("transform", g.Transform)
	}
	if g.ViewBox != "" {
		printKeyValue("viewBox", g.ViewBox)
	}
	if g.LegendScale != 0 {
		legend := "scale " + svgdom.FormatNumber(g.LegendScale)
		if g.LegendFontSize > 0 {
			legend += ", font " + svgdom.FormatNumber(g.LegendFontSize) + "px"
		}
		printKeyValue("legend", legend)
	}
}

// parseSize parses "WIDTHxHEIGHT".
func parseSize(s string) (float64, float64, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "size %q must be WIDTHxHEIGHT", s)
	}
	w, err := strconv.ParseFloat(ws, 64)
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "size %q has an invalid width", s)
	}
	h, err := strconv.ParseFloat(hs, 64)
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "size %q has an invalid height", s)
	}
	if err := errors.ValidateDimension("width", w); err != nil {
		return 0, 0, err
	}
	if err := errors.ValidateDimension("height", h); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

func formatSize(w, h float64) string {
	return svgdom.FormatNumber(w) + "x" + svgdom.FormatNumber(h)
}
