package pipeline

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchfit/pkg/dashboard"
	"github.com/matzehuels/sketchfit/pkg/errors"
	"github.com/matzehuels/sketchfit/pkg/fit"
	"github.com/matzehuels/sketchfit/pkg/observability"
	"github.com/matzehuels/sketchfit/pkg/sketch"
	"github.com/matzehuels/sketchfit/pkg/svgdom"
)

// Render decodes data and draws it as a fitted chart without caching.
func Render(ctx context.Context, data []byte, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	start := time.Now()
	observability.Render().OnRenderStart(ctx, opts.Kind)
	result, err := render(ctx, data, opts)
	elapsed := time.Since(start)
	observability.Render().OnRenderComplete(ctx, opts.Kind, elapsed, err)
	if err != nil {
		return nil, err
	}
	result.RenderTime = elapsed
	return result, nil
}

func render(ctx context.Context, data []byte, opts Options) (*Result, error) {
	container := svgdom.NewContainer(opts.Width, opts.Height)
	frames := &fit.FrameQueue{}

	chart, err := build(container, data, opts, frames)
	if err != nil {
		return nil, err
	}
	if err := chart.Render(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s chart", opts.Kind)
	}
	if n := frames.Flush(); n > 0 {
		opts.Logger.Debug("flushed deferred layout passes", "count", n)
	}

	var buf bytes.Buffer
	if err := container.Render(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize %s chart", opts.Kind)
	}
	return &Result{
		SVG:      buf.Bytes(),
		Geometry: measure(opts.Kind, chart),
	}, nil
}

// build mounts the chart for opts.Kind into c and wraps it for fitting.
func build(c *svgdom.Container, data []byte, opts Options, frames fit.Scheduler) (sketch.Chart, error) {
	fitOpts := []fit.Option{fit.WithLogger(opts.Logger), fit.WithScheduler(frames)}

	switch opts.Kind {
	case KindBar:
		summary, err := dashboard.ReadSummary(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		bars, err := dashboard.Bars(summary, opts.Series)
		if err != nil {
			return nil, err
		}
		chart, err := sketch.NewBar(c, bars, opts.Chart)
		if err != nil {
			return nil, err
		}
		return fit.Bar(chart, fitOpts...), nil

	case KindPie:
		ratio, err := dashboard.ReadAIRatio(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		chart, err := sketch.NewPie(c, dashboard.Pie(ratio), opts.Chart)
		if err != nil {
			return nil, err
		}
		return fit.Pie(chart, fitOpts...), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidKind, "unknown chart kind %q", opts.Kind)
}

// measure reads the geometry back from a rendered chart.
func measure(kind string, chart sketch.Chart) Geometry {
	g := Geometry{Kind: kind}
	if canvas := chart.Canvas(); canvas != nil {
		g.CanvasWidth = canvas.NumberAttr("width")
		g.CanvasHeight = canvas.NumberAttr("height")
		g.ViewBox = canvas.AttrOr("viewBox", "")
	}
	g.PlotWidth, g.PlotHeight = chart.Size()
	if plot := chart.Plot(); plot != nil {
		g.Transform = plot.AttrOr("transform", "")
	}
	g.LegendScale, g.LegendFontSize, _ = fit.AppliedLegend(chart.Container())
	return g
}

func formatSize(w, h float64) string {
	return svgdom.FormatNumber(w) + "x" + svgdom.FormatNumber(h)
}
