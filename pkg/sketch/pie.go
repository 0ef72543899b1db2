package sketch

import (
	"context"
	"fmt"
	"math"

	"github.com/matzehuels/sketchfit/pkg/errors"
	"github.com/matzehuels/sketchfit/pkg/svgdom"
)

const pieMargin = 10.0

// PieData is a set of labelled shares. Values need not sum to anything.
type PieData struct {
	Labels []string
	Values []float64
}

// Pie is a sketch-style pie (or donut) chart with a legend.
type Pie struct {
	base
	data   PieData
	title  *svgdom.Element
	legend *svgdom.Element
}

// NewPie mounts a pie chart into c, centred in the canvas.
func NewPie(c *svgdom.Container, data PieData, opts *Options) (*Pie, error) {
	if c == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "pie chart needs a container")
	}
	if len(data.Labels) != len(data.Values) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"pie chart has %d labels but %d values", len(data.Labels), len(data.Values))
	}
	for i, v := range data.Values {
		if v < 0 || math.IsNaN(v) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "pie slice %q has invalid value %v", data.Labels[i], v)
		}
	}

	p := &Pie{base: mount(c, opts), data: data}
	p.plot = p.svg.Append(svgdom.New("g"))
	return p, nil
}

// Render redraws the slices around the plot centre and rebuilds the legend.
func (p *Pie) Render(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.plot.Clear()
	p.title.Remove()
	p.legend.Remove()
	p.title, p.legend = nil, nil

	w, h := p.width, p.height
	p.plot.SetAttr("transform", fmt.Sprintf("translate(%s,%s)", num(w/2), num(h/2)))

	radius := max(min(w, h)/2-pieMargin, 1)
	inner := radius * min(max(p.opts.InnerRadius, 0), 0.95)

	total := 0.0
	for _, v := range p.data.Values {
		total += v
	}

	colors := p.opts.colors()
	items := make([]legendItem, 0, len(p.data.Labels))
	angle := 0.0
	for i, v := range p.data.Values {
		color := colors[i%len(colors)]
		items = append(items, legendItem{color: color, label: p.data.Labels[i]})
		if total <= 0 || v == 0 {
			continue
		}
		sweep := v / total * 2 * math.Pi
		end := angle + sweep
		if sweep >= 2*math.Pi {
			end = angle + 2*math.Pi - 1e-6
		}
		p.plot.Append(svgdom.New("path").
			Set("class", "slice").
			Set("d", arcPath(inner, radius, angle, end)).
			Set("fill", color).
			Set("stroke", strokeColor).
			Set("filter", p.filterURL()))
		angle += sweep
	}

	canvasW := p.svg.NumberAttr("width")
	canvasH := p.svg.NumberAttr("height")
	if p.opts.Title != "" {
		p.title = p.svg.Append(text(canvasW/2, titleFontSize+4, p.opts.Title, "middle", titleFontSize).
			Set("class", "title"))
	}
	if len(items) > 0 {
		p.legend = drawLegend(p.svg, items, p.opts.position(), canvasW, canvasH, p.filterURL())
	}
	return nil
}
