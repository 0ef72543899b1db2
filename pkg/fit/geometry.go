package fit

import (
	"fmt"
	"math"

	"github.com/matzehuels/sketchfit/pkg/sketch"
	"github.com/matzehuels/sketchfit/pkg/svgdom"
)

const (
	// minPlotSize keeps the plot area drawable when margins exceed the canvas.
	minPlotSize = 10.0

	// anchorEpsilon is how far from the origin a legend must sit to count as
	// pushed against the far edge.
	anchorEpsilon = 0.1
)

// Margins separates the canvas edge from the plot area, in canvas pixels.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// withConfig returns m with every side set in c replacing the inferred one.
func (m Margins) withConfig(c *sketch.MarginConfig) Margins {
	if c == nil {
		return m
	}
	if c.Left != nil {
		m.Left = *c.Left
	}
	if c.Right != nil {
		m.Right = *c.Right
	}
	if c.Top != nil {
		m.Top = *c.Top
	}
	if c.Bottom != nil {
		m.Bottom = *c.Bottom
	}
	return m
}

// ConfiguredMargins returns the margins set in c, with unset sides at 0.
func ConfiguredMargins(c *sketch.MarginConfig) Margins {
	return Margins{}.withConfig(c)
}

// MarginInput is what can be read back from an already rendered bar chart.
type MarginInput struct {
	DeclaredWidth  float64 // canvas width attribute, 0 if unknown
	DeclaredHeight float64 // canvas height attribute, 0 if unknown
	PlotWidth      float64 // chart width field
	PlotHeight     float64 // chart height field
	Translate      Point   // current plot group offset
	Config         *sketch.MarginConfig
}

// InferMargins recovers the margins a chart was drawn with.
//
// Left and top are the plot group offset. Right and bottom are whatever is
// left of the declared canvas after the plot and the leading margin; without
// a declared size the margins are assumed symmetric. Sides set in Config
// override the inferred value.
func InferMargins(in MarginInput) Margins {
	totalX := in.Translate.X * 2
	if in.DeclaredWidth > 0 {
		totalX = in.DeclaredWidth - in.PlotWidth
	}
	totalY := in.Translate.Y * 2
	if in.DeclaredHeight > 0 {
		totalY = in.DeclaredHeight - in.PlotHeight
	}
	m := Margins{
		Left:   in.Translate.X,
		Right:  totalX - in.Translate.X,
		Top:    in.Translate.Y,
		Bottom: totalY - in.Translate.Y,
	}
	return m.withConfig(in.Config)
}

// UsableSize is the plot extent left on one axis of a canvas after both
// margins, never less than minPlotSize.
func UsableSize(canvas, start, end float64) float64 {
	return math.Max(canvas-(start+end), minPlotSize)
}

// Layout is the geometry a resize pass writes back to a chart.
type Layout struct {
	CanvasWidth  float64
	CanvasHeight float64
	PlotWidth    float64
	PlotHeight   float64
	Margins      Margins
	Origin       Point // plot group translation
	ViewBox      string
}

// Transform is the plot group transform for l.
func (l Layout) Transform() string {
	return translate(l.Origin.X, l.Origin.Y)
}

// BarInput collects the measurements a bar resize pass starts from.
type BarInput struct {
	ContainerWidth  float64
	ContainerHeight float64
	MarginInput
}

// BarGeometry computes the canvas and plot extent of a bar chart.
//
// The canvas takes the container size when measured and keeps its declared
// size otherwise; an unknown height follows a 3:2 aspect ratio.
func BarGeometry(in BarInput) Layout {
	width := firstPositive(in.ContainerWidth, in.DeclaredWidth)
	height := firstPositive(in.ContainerHeight, in.DeclaredHeight, width*2/3)
	width = math.Max(width, 0)
	height = math.Max(height, 0)

	m := InferMargins(in.MarginInput)
	return Layout{
		CanvasWidth:  width,
		CanvasHeight: height,
		PlotWidth:    UsableSize(width, m.Left, m.Right),
		PlotHeight:   UsableSize(height, m.Top, m.Bottom),
		Margins:      m,
		Origin:       Point{X: m.Left, Y: m.Top},
	}
}

// PieInput collects the measurements a pie resize pass starts from.
type PieInput struct {
	ContainerWidth  float64
	ContainerHeight float64
	DeclaredWidth   float64
	DeclaredHeight  float64
	PlotWidth       float64 // last known plot extent
	Config          *sketch.MarginConfig
}

// PieGeometry computes a square plot area centred in the margin box.
//
// Margins come from configuration only. The canvas takes the container size,
// then the declared size, then the last plot extent plus margins; a missing
// height makes the canvas square. The plot side is the smaller usable extent
// and the plot is centred in the usable box, so on the constrained axis the
// centre sits at margin + inner/2.
func PieGeometry(in PieInput) Layout {
	m := ConfiguredMargins(in.Config)

	width := firstPositive(in.ContainerWidth, in.DeclaredWidth)
	if width == 0 {
		width = math.Max(in.PlotWidth+m.Left+m.Right, 1)
	}
	height := firstPositive(in.ContainerHeight, in.DeclaredHeight, width)
	width = math.Max(width, 1)
	height = math.Max(height, 1)

	usableW := UsableSize(width, m.Left, m.Right)
	usableH := UsableSize(height, m.Top, m.Bottom)
	inner := math.Max(math.Min(usableW, usableH), minPlotSize)

	return Layout{
		CanvasWidth:  width,
		CanvasHeight: height,
		PlotWidth:    inner,
		PlotHeight:   inner,
		Margins:      m,
		// Centre of the usable box, not left+inner/2 on both axes: a 400x300
		// canvas with no margins must put the origin at (200,150).
		Origin:       Point{X: m.Left + usableW/2, Y: m.Top + usableH/2},
		ViewBox: fmt.Sprintf("0 0 %s %s",
			svgdom.FormatNumber(width), svgdom.FormatNumber(height)),
	}
}

// Anchor records which far edges a legend box is pushed against.
type Anchor struct {
	Right  bool
	Bottom bool
}

// InferAnchor derives the anchor from a legend's original position: a legend
// placed away from the origin on an axis was pushed to the far edge of it.
func InferAnchor(x, y float64) Anchor {
	return Anchor{
		Right:  math.Abs(x) > anchorEpsilon,
		Bottom: math.Abs(y) > anchorEpsilon,
	}
}

// AnchoredOffset moves a box's leading edge so its trailing edge stays where
// it was after the box changed from origExtent to newExtent.
func AnchoredOffset(orig, origExtent, newExtent float64) float64 {
	return orig + origExtent - newExtent
}

func firstPositive(values ...float64) float64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
