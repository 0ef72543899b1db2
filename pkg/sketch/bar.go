package sketch

import (
	"context"
	"fmt"
	"math"

	"github.com/matzehuels/sketchfit/pkg/errors"
	"github.com/matzehuels/sketchfit/pkg/svgdom"
)

const (
	barMargin     = 50.0
	barPadding    = 0.4 // fraction of each band left empty
	axisFontSize  = 13.0
	titleFontSize = 20.0
	yTicks        = 5
)

// BarData is one series of labelled values.
type BarData struct {
	Labels []string
	Values []float64
}

// Bar is a sketch-style bar chart.
type Bar struct {
	base
	data BarData
}

// NewBar mounts a bar chart into c. The plot group is offset by a fixed
// margin and the plot extent is the canvas minus that margin on every side.
func NewBar(c *svgdom.Container, data BarData, opts *Options) (*Bar, error) {
	if c == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "bar chart needs a container")
	}
	if len(data.Labels) != len(data.Values) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"bar chart has %d labels but %d values", len(data.Labels), len(data.Values))
	}

	b := &Bar{base: mount(c, opts), data: data}
	b.plot = b.svg.Append(svgdom.New("g").
		Set("transform", fmt.Sprintf("translate(%s,%s)", num(barMargin), num(barMargin))))
	b.width = b.width - barMargin*2
	b.height = b.height - barMargin*2
	return b, nil
}

// Render redraws axes, bars and labels into the plot group using the current
// plot extent.
func (b *Bar) Render(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.plot.Clear()

	w, h := b.width, b.height
	seed := b.opts.Seed

	b.plot.Append(svgdom.New("path").
		Set("class", "domain").
		Set("d", wobbledLine(0, h, w, h, seed, "x-axis")).
		Set("fill", "none").
		Set("stroke", strokeColor).
		Set("filter", b.filterURL()))
	b.plot.Append(svgdom.New("path").
		Set("class", "domain").
		Set("d", wobbledLine(0, 0, 0, h, seed, "y-axis")).
		Set("fill", "none").
		Set("stroke", strokeColor).
		Set("filter", b.filterURL()))

	top := niceMax(b.data.Values)
	for i := 0; i <= yTicks; i++ {
		v := top * float64(i) / yTicks
		y := h - h*float64(i)/yTicks
		b.plot.Append(text(-8, y+4, svgdom.FormatNumber(math.Round(v*100)/100), "end", axisFontSize))
	}

	if n := len(b.data.Values); n > 0 {
		colors := b.opts.colors()
		band := w / float64(n)
		barW := band * (1 - barPadding)
		for i, v := range b.data.Values {
			x := band*float64(i) + (band-barW)/2
			bh := 0.0
			if top > 0 {
				bh = math.Max(v, 0) / top * h
			}
			b.plot.Append(svgdom.New("path").
				Set("class", "bar").
				Set("d", wobbledRect(x, h-bh, barW, bh, seed, b.data.Labels[i])).
				Set("fill", colors[i%len(colors)]).
				Set("stroke", strokeColor).
				Set("filter", b.filterURL()))
			b.plot.Append(text(x+barW/2, h+18, b.data.Labels[i], "middle", axisFontSize))
		}
	}

	if b.opts.Title != "" {
		b.plot.Append(text(w/2, -barMargin/2, b.opts.Title, "middle", titleFontSize))
	}
	if b.opts.XLabel != "" {
		b.plot.Append(text(w/2, h+barMargin-8, b.opts.XLabel, "middle", axisFontSize+2))
	}
	if b.opts.YLabel != "" {
		yl := text(0, 0, b.opts.YLabel, "middle", axisFontSize+2)
		yl.SetAttr("transform", fmt.Sprintf("translate(%s,%s) rotate(-90)", num(-barMargin+12), num(h/2)))
		b.plot.Append(yl)
	}
	return nil
}

// niceMax rounds the largest value up to a 1/2/5 step so ticks stay readable.
func niceMax(values []float64) float64 {
	top := 0.0
	for _, v := range values {
		top = math.Max(top, v)
	}
	if top <= 0 {
		return 0
	}
	mag := math.Pow(10, math.Floor(math.Log10(top)))
	for _, step := range []float64{1, 2, 5, 10} {
		if top <= step*mag {
			return step * mag
		}
	}
	return top
}
