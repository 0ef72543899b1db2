package fit

import (
	"context"

	"github.com/matzehuels/sketchfit/pkg/observability"
	"github.com/matzehuels/sketchfit/pkg/sketch"
	"github.com/matzehuels/sketchfit/pkg/svgdom"
)

type pieChart struct {
	sketch.Chart
	settings
}

// Pie wraps a pie chart so every Render draws a square plot area fitted to
// the container, recentres it, and hands a legend pass to the scheduler
// (synchronous unless WithScheduler says otherwise).
//
// Wrapping an already wrapped chart returns it unchanged.
func Pie(c sketch.Chart, opts ...Option) sketch.Chart {
	if c == nil {
		return nil
	}
	if _, ok := c.(*pieChart); ok {
		return c
	}
	return &pieChart{Chart: c, settings: newSettings(opts)}
}

// Unwrap returns the chart Pie was given.
func (p *pieChart) Unwrap() sketch.Chart { return p.Chart }

// Render resizes the canvas, draws, and recentres the plot.
func (p *pieChart) Render(ctx context.Context) error {
	canvas := p.Canvas()
	if canvas == nil {
		observability.Layout().OnResizeSkipped(ctx, "pie", "chart not mounted")
		return p.Chart.Render(ctx)
	}

	container := p.Container()
	var containerW, containerH float64
	if container != nil {
		containerW, containerH = container.ClientWidth, container.ClientHeight
	}
	plotW, _ := p.Size()

	l := PieGeometry(PieInput{
		ContainerWidth:  containerW,
		ContainerHeight: containerH,
		DeclaredWidth:   canvas.NumberAttr("width"),
		DeclaredHeight:  canvas.NumberAttr("height"),
		PlotWidth:       plotW,
		Config:          p.Options().MarginConfig(),
	})

	p.SetSize(l.PlotWidth, l.PlotHeight)
	canvas.SetAttr("width", svgdom.FormatNumber(l.CanvasWidth))
	canvas.SetAttr("height", svgdom.FormatNumber(l.CanvasHeight))
	canvas.SetAttr("viewBox", l.ViewBox)

	if err := p.Chart.Render(ctx); err != nil {
		return err
	}

	if plot := p.Plot(); plot != nil {
		plot.SetAttr("transform", l.Transform())
	}
	p.logger.Debug("fitted pie chart",
		"canvas", sizeString(l.CanvasWidth, l.CanvasHeight),
		"plot", sizeString(l.PlotWidth, l.PlotHeight),
		"origin", l.Transform())
	observability.Layout().OnResize(ctx, "pie", l.CanvasWidth, l.CanvasHeight, l.PlotWidth, l.PlotHeight)

	if container != nil {
		opts := p.Options()
		frameCtx := context.WithoutCancel(ctx)
		p.scheduler.Schedule(func() {
			if !container.Attached() {
				p.logger.Debug("skipped legend pass for detached container")
				return
			}
			applyLegend(frameCtx, container, opts)
		})
	}
	return nil
}
