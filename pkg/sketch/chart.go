package sketch

import (
	"context"

	"github.com/google/uuid"

	"github.com/matzehuels/sketchfit/pkg/svgdom"
)

// Chart is a drawable chart bound to a container.
//
// Size reports the plot extent the drawing code lays marks out in; Canvas is
// the root <svg> and Plot the group the marks are drawn into. Either handle
// may be nil for charts that were never mounted.
type Chart interface {
	Size() (width, height float64)
	SetSize(width, height float64)
	Canvas() *svgdom.Element
	Plot() *svgdom.Element
	Container() *svgdom.Container
	Options() *Options
	Render(ctx context.Context) error
}

// MarginConfig holds per-side margins in canvas pixels. Nil sides are unset.
type MarginConfig struct {
	Top    *float64 `toml:"top" yaml:"top" json:"top,omitempty"`
	Right  *float64 `toml:"right" yaml:"right" json:"right,omitempty"`
	Bottom *float64 `toml:"bottom" yaml:"bottom" json:"bottom,omitempty"`
	Left   *float64 `toml:"left" yaml:"left" json:"left,omitempty"`
}

// Uniform returns a MarginConfig with every side set to v.
func Uniform(v float64) *MarginConfig {
	return &MarginConfig{Top: &v, Right: &v, Bottom: &v, Left: &v}
}

// Position selects the corner a legend is drawn in.
type Position string

const (
	UpLeft    Position = "upLeft"
	UpRight   Position = "upRight"
	DownLeft  Position = "downLeft"
	DownRight Position = "downRight"
)

// Options configures a chart. The geometry fields (margins, legend scale and
// font size) are read by the responsive layout pass, not by the drawing code.
type Options struct {
	Title  string `toml:"title" yaml:"title" json:"title,omitempty"`
	XLabel string `toml:"x_label" yaml:"x_label" json:"x_label,omitempty"`
	YLabel string `toml:"y_label" yaml:"y_label" json:"y_label,omitempty"`

	// ChartMargins takes precedence over Margins when both are set.
	ChartMargins *MarginConfig `toml:"chart_margins" yaml:"chart_margins" json:"chart_margins,omitempty"`
	Margins      *MarginConfig `toml:"margins" yaml:"margins" json:"margins,omitempty"`

	// LegendScale multiplies legend geometry; 0 means unset (1).
	LegendScale float64 `toml:"legend_scale" yaml:"legend_scale" json:"legend_scale,omitempty"`

	// LegendFontSize is an absolute label size; <= 0 derives it from LegendScale.
	LegendFontSize float64 `toml:"legend_font_size" yaml:"legend_font_size" json:"legend_font_size,omitempty"`

	LegendPosition Position `toml:"legend_position" yaml:"legend_position" json:"legend_position,omitempty"`

	// InnerRadius is the donut hole of pie charts as a fraction of the radius.
	InnerRadius float64 `toml:"inner_radius" yaml:"inner_radius" json:"inner_radius,omitempty"`

	Colors []string `toml:"colors" yaml:"colors" json:"colors,omitempty"`
	Seed   uint64   `toml:"seed" yaml:"seed" json:"seed,omitempty"`
}

// MarginConfig returns ChartMargins, falling back to Margins.
func (o *Options) MarginConfig() *MarginConfig {
	if o == nil {
		return nil
	}
	if o.ChartMargins != nil {
		return o.ChartMargins
	}
	return o.Margins
}

// Scale returns the effective legend scale.
func (o *Options) Scale() float64 {
	if o == nil || o.LegendScale == 0 {
		return 1
	}
	return o.LegendScale
}

func (o *Options) colors() []string {
	if o == nil || len(o.Colors) == 0 {
		return defaultColors
	}
	return o.Colors
}

func (o *Options) position() Position {
	if o == nil || o.LegendPosition == "" {
		return UpLeft
	}
	return o.LegendPosition
}

// base holds the state shared by every chart kind.
type base struct {
	container *svgdom.Container
	svg       *svgdom.Element
	plot      *svgdom.Element
	opts      *Options
	width     float64
	height    float64
	filterID  string
}

func (b *base) Size() (float64, float64)     { return b.width, b.height }
func (b *base) SetSize(w, h float64)         { b.width, b.height = w, h }
func (b *base) Canvas() *svgdom.Element      { return b.svg }
func (b *base) Plot() *svgdom.Element        { return b.plot }
func (b *base) Container() *svgdom.Container { return b.container }
func (b *base) Options() *Options            { return b.opts }

const (
	defaultCanvasWidth = 600.0
	strokeWidth        = "3"
)

// mount creates the root <svg> inside c, sized the way the library always has:
// the container's width (or a default) and two thirds of it for the height.
func mount(c *svgdom.Container, opts *Options) base {
	width := c.ClientWidth
	if width <= 0 {
		width = defaultCanvasWidth
	}
	height := width * 2 / 3

	filterID := "xkcdify-" + uuid.NewString()[:8]
	svg := svgdom.New("svg").
		Set("xmlns", "http://www.w3.org/2000/svg").
		Set("width", svgdom.FormatNumber(width)).
		Set("height", svgdom.FormatNumber(height)).
		Set("style", "stroke-width: "+strokeWidth+"; font-family: "+fontFamily)
	c.Append(svg)
	svg.Append(filterDefs(filterID))

	if opts == nil {
		opts = &Options{}
	}
	return base{
		container: c,
		svg:       svg,
		opts:      opts,
		width:     width,
		height:    height,
		filterID:  filterID,
	}
}

// filterDefs builds the displacement filter that gives strokes their wobble.
func filterDefs(id string) *svgdom.Element {
	defs := svgdom.New("defs")
	filter := defs.Append(svgdom.New("filter").Set("id", id))
	filter.Append(svgdom.New("feTurbulence").
		Set("type", "fractalNoise").
		Set("baseFrequency", "0.05").
		Set("result", "noise"))
	filter.Append(svgdom.New("feDisplacementMap").
		Set("scale", "5").
		Set("xChannelSelector", "R").
		Set("yChannelSelector", "G").
		Set("in", "SourceGraphic").
		Set("in2", "noise"))
	return defs
}

func (b *base) filterURL() string {
	return "url(#" + b.filterID + ")"
}

func text(x, y float64, label, anchor string, fontSize float64) *svgdom.Element {
	t := svgdom.New("text").
		Set("x", num(x)).
		Set("y", num(y)).
		Set("text-anchor", anchor).
		Set("style", "font-size: "+num(fontSize)+"px; stroke: none; fill: "+strokeColor)
	t.AppendText(label)
	return t
}
