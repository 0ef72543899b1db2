// Package sketch draws xkcd-style bar and pie charts into an SVG tree.
//
// # Overview
//
// Charts are mounted into an [svgdom.Container] at construction time. The
// canvas gets the container's width and two thirds of it as height, and the
// plot extent is fixed from that: bar charts keep a constant margin around a
// translated plot group, pie charts centre a circle in the canvas. Nothing is
// recomputed when the container later changes size; package fit wraps a
// [Chart] to do that.
//
// # Hand-drawn look
//
// Lines and bar outlines are chains of quadratic curves whose control points
// are jittered by a deterministic generator seeded from [Options.Seed] and the
// element id, so the same chart always wobbles the same way. A displacement
// filter in <defs> roughens strokes further.
//
// # Usage
//
//	c := svgdom.NewContainer(800, 0)
//	bar, err := sketch.NewBar(c, sketch.BarData{
//	    Labels: []string{"Mon", "Tue"},
//	    Values: []float64{12, 30},
//	}, &sketch.Options{Title: "Commits"})
//	if err != nil {
//	    return err
//	}
//	err = bar.Render(ctx)
//
// # Legends
//
// Pie charts draw their legend as a nested <svg> placed in one corner of the
// canvas. The box has a single background rect carrying fill-opacity, one
// swatch rect and one text label per slice.
package sketch
