// Package pkg provides the core libraries for sketchfit, a responsive re-layout
// engine for hand-drawn (xkcd style) SVG charts.
//
// # Overview
//
// A sketch chart is drawn once at a fixed size. When its host container changes
// size, sketchfit recomputes the plotting area from the drawn markup and redraws
// the chart so it fills the new space. The pkg directory is organized into
// three areas:
//
//  1. [svgdom], [sketch] and [fit] - the SVG document, the charts, and the
//     resizing decorators that wrap them
//  2. [config] and [dashboard] - chart options and the dashboard documents
//     charts are built from
//  3. [pipeline], [cache], [observability] and [errors] - orchestration and
//     the infrastructure around it
//
// # Architecture
//
// The typical data flow through sketchfit:
//
//	Dashboard JSON (summary or ai_ratio)
//	         ↓
//	    [dashboard] package (decode + aggregate)
//	         ↓
//	    [sketch] package (draw bar or pie chart into an svgdom.Container)
//	         ↓
//	    [fit] package (infer margins, resize, scale the legend)
//	         ↓
//	    SVG markup + measured geometry
//
// # Quick Start
//
// Render a bar chart that fills a 900x450 container:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/sketchfit/pkg/pipeline"
//	)
//
//	res, err := pipeline.Render(context.Background(), summaryJSON, pipeline.Options{
//	    Kind:   pipeline.KindBar,
//	    Width:  900,
//	    Height: 450,
//	})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(res.SVG)
//
// Or drive the decorators directly:
//
//	c := svgdom.NewContainer(600, 0)
//	bar, _ := sketch.NewBar(c, data, nil)
//	chart := fit.Bar(bar)
//	c.Resize(900, 450)
//	_ = chart.Render(ctx)
//
// # Caching
//
// [pipeline.Runner] stores rendered results through a [cache.Cache]. The CLI
// uses the file cache and the preview server can use Redis:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	res, err := runner.Execute(ctx, data, opts)
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/fit/...       # Specific package
//	go test -run Example ./...  # Examples only
//
// [svgdom]: https://pkg.go.dev/github.com/matzehuels/sketchfit/pkg/svgdom
// [sketch]: https://pkg.go.dev/github.com/matzehuels/sketchfit/pkg/sketch
// [fit]: https://pkg.go.dev/github.com/matzehuels/sketchfit/pkg/fit
// [config]: https://pkg.go.dev/github.com/matzehuels/sketchfit/pkg/config
// [dashboard]: https://pkg.go.dev/github.com/matzehuels/sketchfit/pkg/dashboard
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/sketchfit/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/sketchfit/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/sketchfit/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/sketchfit/pkg/errors
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/sketchfit/pkg/pipeline#Runner
// [cache.Cache]: https://pkg.go.dev/github.com/matzehuels/sketchfit/pkg/cache#Cache
package pkg
