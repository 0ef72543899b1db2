// Package fit makes sketch charts responsive.
//
// # Overview
//
// A [sketch.Chart] computes its canvas and plot size once, when it is mounted.
// [Bar] and [Pie] wrap a chart so that every Render first rewrites that
// geometry from the container's measured size and the configured margins,
// then lets the chart draw as usual. The drawing code is never modified.
//
//	c := svgdom.NewContainer(800, 360)
//	bar, _ := sketch.NewBar(c, data, opts)
//	chart := fit.Bar(bar)
//	c.Resize(640, 300)
//	err := chart.Render(ctx)
//
// # Margins
//
// Bar charts keep whatever margins they were drawn with: the left and top
// margin are read back from the plot group's translate(), the right and
// bottom from what is left of the declared canvas. Sides set in
// [sketch.Options.ChartMargins] (or Margins) override the inferred values.
// Pie charts only use configured margins. Either way the plot never shrinks
// below 10 pixels on a side.
//
// The inference is exposed as pure functions ([InferMargins], [BarGeometry],
// [PieGeometry], [InferAnchor]) that work on plain numbers.
//
// # Legends
//
// After a pie chart renders, a legend pass is handed to the wrapper's scheduler.
// [ApplyLegendEnhancements] scales the legend box, swatches and labels by
// [sketch.Options.LegendScale] and optionally pins the label size to
// LegendFontSize. Original values are cached on the elements themselves in
// data-legend-orig-* attributes, so repeated passes always scale from the
// first-seen geometry; a legend already carrying the requested scale is left
// untouched. A legend drawn against the right or bottom edge stays pinned to
// that edge.
//
// # Frames
//
// Deferred work goes through a [Scheduler]. By default that is [Immediate],
// so the legend pass runs before Render returns. Hosts with a paint loop
// pass WithScheduler with a [FrameQueue], such as the shared one returned by
// [NextFrame], and drain it with Flush once per paint. Callbacks whose
// container was detached in the meantime do nothing.
package fit
