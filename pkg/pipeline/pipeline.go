// Package pipeline turns a dashboard document into a fitted chart.
//
// This package implements the decode → build → fit → render pipeline used by
// both the CLI and the preview server, so the two produce identical output
// for identical input.
//
// # Stages
//
//  1. Decode: read a summary (bar) or AI ratio (pie) document
//  2. Build: mount a sketch chart into a container of the requested size
//  3. Fit: wrap the chart with [fit.Bar] or [fit.Pie] and render it
//  4. Settle: flush the chart's frame queue so deferred legend passes run
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, data, pipeline.Options{
//	    Kind:   pipeline.KindPie,
//	    Width:  400,
//	    Height: 300,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.SVG)
//
// [Render] runs the same stages without a cache.
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchfit/pkg/cache"
	"github.com/matzehuels/sketchfit/pkg/config"
	"github.com/matzehuels/sketchfit/pkg/dashboard"
	"github.com/matzehuels/sketchfit/pkg/errors"
	"github.com/matzehuels/sketchfit/pkg/sketch"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the container width used when none is given.
	DefaultWidth = 800.0

	// DefaultHeight is the container height used by the CLI. A zero height
	// lets the chart keep the height it was drawn with.
	DefaultHeight = 600.0
)

// Chart kinds.
const (
	KindBar = "bar"
	KindPie = "pie"
)

// =============================================================================
// Options
// =============================================================================

// Options configures one pipeline run.
type Options struct {
	Kind   string           `json:"kind"`
	Series dashboard.Series `json:"series,omitempty"` // bar charts only
	Width  float64          `json:"width"`
	Height float64          `json:"height"`

	// Chart holds title, margins and legend settings.
	Chart *sketch.Options `json:"chart,omitempty"`

	// Refresh skips the cache lookup but still stores the result.
	Refresh bool `json:"-"`

	Logger *log.Logger `json:"-"`
}

// ValidateAndSetDefaults checks opts and fills in defaults. It is safe to
// call more than once.
func (o *Options) ValidateAndSetDefaults() error {
	if err := errors.ValidateChartKind(o.Kind); err != nil {
		return err
	}
	if err := errors.ValidateDimension("width", o.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("height", o.Height); err != nil {
		return err
	}
	if o.Kind == KindPie && o.Series != "" {
		return errors.New(errors.ErrCodeInvalidInput, "series only applies to bar charts")
	}
	if err := config.Validate(o.Chart); err != nil {
		return err
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Chart == nil {
		o.Chart = &sketch.Options{}
	}
	return nil
}

// KeyOpts returns the cache key options for o.
func (o Options) KeyOpts() cache.RenderKeyOpts {
	chart := cache.HashJSON(struct {
		Series dashboard.Series `json:"series"`
		Chart  *sketch.Options  `json:"chart"`
	}{o.Series, o.Chart})
	return cache.RenderKeyOpts{
		Kind:    o.Kind,
		Width:   o.Width,
		Height:  o.Height,
		Options: chart,
	}
}

// =============================================================================
// Results
// =============================================================================

// Geometry is the layout the fit pass wrote to a chart.
type Geometry struct {
	Kind         string  `json:"kind"`
	CanvasWidth  float64 `json:"canvas_width"`
	CanvasHeight float64 `json:"canvas_height"`
	PlotWidth    float64 `json:"plot_width"`
	PlotHeight   float64 `json:"plot_height"`
	Transform    string  `json:"transform,omitempty"`
	ViewBox      string  `json:"view_box,omitempty"`

	// LegendScale and LegendFontSize are zero when no legend pass changed
	// the chart.
	LegendScale    float64 `json:"legend_scale,omitempty"`
	LegendFontSize float64 `json:"legend_font_size,omitempty"`
}

// Result is the output of a pipeline run.
type Result struct {
	SVG      []byte   `json:"svg"`
	Geometry Geometry `json:"geometry"`

	DataHash   string        `json:"-"`
	CacheHit   bool          `json:"-"`
	RenderTime time.Duration `json:"-"`
}
