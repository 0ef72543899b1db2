package fit

import (
	"context"

	"github.com/matzehuels/sketchfit/pkg/observability"
	"github.com/matzehuels/sketchfit/pkg/sketch"
	"github.com/matzehuels/sketchfit/pkg/svgdom"
)

type barChart struct {
	sketch.Chart
	settings
}

// Bar wraps a bar chart so every Render first fits the canvas to its
// container and re-derives the plot area from the chart's margins.
//
// Wrapping an already wrapped chart returns it unchanged.
func Bar(c sketch.Chart, opts ...Option) sketch.Chart {
	if c == nil {
		return nil
	}
	if _, ok := c.(*barChart); ok {
		return c
	}
	return &barChart{Chart: c, settings: newSettings(opts)}
}

// Unwrap returns the chart Bar was given.
func (b *barChart) Unwrap() sketch.Chart { return b.Chart }

// Render resizes the canvas and plot area, then draws.
func (b *barChart) Render(ctx context.Context) error {
	canvas, plot := b.Canvas(), b.Plot()
	if canvas == nil || plot == nil {
		observability.Layout().OnResizeSkipped(ctx, "bar", "chart not mounted")
		return b.Chart.Render(ctx)
	}

	var containerW, containerH float64
	if c := b.Container(); c != nil {
		containerW, containerH = c.ClientWidth, c.ClientHeight
	}
	plotW, plotH := b.Size()

	l := BarGeometry(BarInput{
		ContainerWidth:  containerW,
		ContainerHeight: containerH,
		MarginInput: MarginInput{
			DeclaredWidth:  canvas.NumberAttr("width"),
			DeclaredHeight: canvas.NumberAttr("height"),
			PlotWidth:      plotW,
			PlotHeight:     plotH,
			Translate:      ExtractTranslate(plot.AttrOr("transform", "")),
			Config:         b.Options().MarginConfig(),
		},
	})

	canvas.SetAttr("width", svgdom.FormatNumber(l.CanvasWidth))
	canvas.SetAttr("height", svgdom.FormatNumber(l.CanvasHeight))
	plot.SetAttr("transform", l.Transform())
	b.SetSize(l.PlotWidth, l.PlotHeight)

	b.logger.Debug("fitted bar chart",
		"canvas", sizeString(l.CanvasWidth, l.CanvasHeight),
		"plot", sizeString(l.PlotWidth, l.PlotHeight),
		"margins", l.Margins)
	observability.Layout().OnResize(ctx, "bar", l.CanvasWidth, l.CanvasHeight, l.PlotWidth, l.PlotHeight)

	return b.Chart.Render(ctx)
}

func sizeString(w, h float64) string {
	return svgdom.FormatNumber(w) + "x" + svgdom.FormatNumber(h)
}
