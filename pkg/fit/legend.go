package fit

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/sketchfit/pkg/observability"
	"github.com/matzehuels/sketchfit/pkg/sketch"
	"github.com/matzehuels/sketchfit/pkg/svgdom"
)

const (
	appliedScaleAttr = "data-legend-applied-scale"
	appliedFontAttr  = "data-legend-applied-font"
)

// boxAttrs are the legend rect attributes that scale with the legend.
var boxAttrs = []string{"width", "height", "x", "y", "rx", "ry"}

// ApplyLegendEnhancements scales the legend drawn in container by the
// options' legend scale and font size, keeping the legend pinned to the
// canvas edges it was drawn against. It reports whether anything changed.
//
// Every value is scaled from the original cached on first contact, so
// applying the same options twice is a no-op and applying new options never
// compounds an earlier scale.
func ApplyLegendEnhancements(container *svgdom.Container, opts *sketch.Options) bool {
	return applyLegend(context.Background(), container, opts)
}

func applyLegend(ctx context.Context, container *svgdom.Container, opts *sketch.Options) bool {
	if container == nil || opts == nil {
		return false
	}
	scale := opts.Scale()
	fontSize := opts.LegendFontSize
	if scale == 1 && fontSize <= 0 {
		return false
	}

	root := legendRoot(container)
	if root == nil {
		return false
	}

	prevScale, _ := svgdom.Number(root.AttrOr(appliedScaleAttr, "0"))
	prevFont, _ := svgdom.Number(root.AttrOr(appliedFontAttr, "0"))
	if prevScale == scale && (fontSize <= 0 || prevFont == fontSize) {
		observability.Layout().OnLegendScaled(ctx, scale, fontSize, false)
		return false
	}

	background := root.Find(".//rect[@fill-opacity]")
	if background == nil {
		return false
	}

	for _, rect := range root.FindAll(".//rect") {
		if rect.Is(background) {
			continue
		}
		for _, attr := range boxAttrs {
			setScaledAttr(rect, attr, scale)
		}
	}

	for _, text := range root.FindAll(".//text") {
		setScaledAttr(text, "x", scale)
		setScaledAttr(text, "y", scale)
		if orig, ok := CacheFontSize(text); ok {
			size := orig * scale
			if fontSize > 0 {
				size = fontSize
			}
			text.SetStyleProperty("font-size", svgdom.FormatNumber(size)+"px", "important")
		}
	}

	for _, attr := range boxAttrs {
		setScaledAttr(background, attr, scale)
	}
	setScaledAttr(background, "stroke-width", scale)

	origW, _ := CacheNumericAttr(background, "width")
	origH, _ := CacheNumericAttr(background, "height")
	newW := numberOr(background.AttrOr("width", ""), origW)
	newH := numberOr(background.AttrOr("height", ""), origH)

	origX, _ := CacheNumericAttr(root, "x")
	origY, _ := CacheNumericAttr(root, "y")
	anchor := InferAnchor(origX, origY)
	if anchor.Right {
		root.SetAttr("x", formatScaled(AnchoredOffset(origX, origW, newW)))
	}
	if anchor.Bottom {
		root.SetAttr("y", formatScaled(AnchoredOffset(origY, origH, newH)))
	}

	root.SetAttr(appliedScaleAttr, svgdom.FormatNumber(scale))
	if fontSize > 0 {
		root.SetAttr(appliedFontAttr, svgdom.FormatNumber(fontSize))
	}
	observability.Layout().OnLegendScaled(ctx, scale, fontSize, true)
	return true
}

// AppliedLegend reports the scale and font size the last legend pass wrote
// to the legend in container. ok is false until a pass has changed it.
func AppliedLegend(container *svgdom.Container) (scale, fontSize float64, ok bool) {
	if container == nil {
		return 0, 0, false
	}
	root := legendRoot(container)
	if root == nil || !root.HasAttr(appliedScaleAttr) {
		return 0, 0, false
	}
	scale, _ = svgdom.Number(root.AttrOr(appliedScaleAttr, ""))
	fontSize, _ = svgdom.Number(root.AttrOr(appliedFontAttr, ""))
	return scale, fontSize, true
}

// legendRoot returns the last <svg> in document order that holds a
// translucent background rect.
func legendRoot(container *svgdom.Container) *svgdom.Element {
	svgs := container.SVGs()
	for i := len(svgs) - 1; i >= 0; i-- {
		if svgs[i].Find(".//rect[@fill-opacity]") != nil {
			return svgs[i]
		}
	}
	return nil
}

// setScaledAttr rewrites attr on el as its original value times scale.
// Elements without a numeric original are left alone.
func setScaledAttr(el *svgdom.Element, attr string, scale float64) {
	orig, ok := CacheNumericAttr(el, attr)
	if !ok {
		return
	}
	el.SetAttr(attr, formatScaled(orig*scale))
}

// formatScaled renders v with two decimals, dropping an all-zero fraction.
func formatScaled(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.TrimSuffix(strconv.FormatFloat(v, 'f', 2, 64), ".00")
}

func numberOr(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	if v, ok := svgdom.Number(s); ok {
		return v
	}
	return math.NaN()
}
