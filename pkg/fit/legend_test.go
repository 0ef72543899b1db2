package fit

import (
	"strings"
	"testing"

	"github.com/matzehuels/sketchfit/pkg/sketch"
	"github.com/matzehuels/sketchfit/pkg/svgdom"
)

// legendFixture is a canvas with a right-anchored legend box at x=100.
const legendFixture = `<svg width="400" height="300">` +
	`<g transform="translate(200,150)"></g>` +
	`<svg class="legend" x="100" y="0">` +
	`<rect fill-opacity="0.85" stroke-width="2" rx="5" ry="5" width="80" height="40" x="7" y="6"></rect>` +
	`<rect width="8" height="8" rx="2" ry="2" x="22" y="19"></rect>` +
	`<text x="34" y="26" style="font-size: 15px; fill: #000">ai</text>` +
	`</svg></svg>`

func parseFixture(t *testing.T, markup string) *svgdom.Container {
	t.Helper()
	c, err := svgdom.ParseContainer(strings.NewReader(markup), 400, 300)
	if err != nil {
		t.Fatalf("ParseContainer: %v", err)
	}
	return c
}

func legendParts(t *testing.T, c *svgdom.Container) (root, bg, swatch, text *svgdom.Element) {
	t.Helper()
	root = c.Root().Find("//svg[@class='legend']")
	if root == nil {
		t.Fatal("fixture has no legend")
	}
	rects := root.FindAll(".//rect")
	if len(rects) != 2 {
		t.Fatalf("legend rects = %d, want 2", len(rects))
	}
	return root, rects[0], rects[1], root.Find(".//text")
}

func TestApplyLegendEnhancementsScales(t *testing.T) {
	c := parseFixture(t, legendFixture)
	if !ApplyLegendEnhancements(c, &sketch.Options{LegendScale: 0.5}) {
		t.Fatal("ApplyLegendEnhancements() = false, want true")
	}
	root, bg, swatch, text := legendParts(t, c)

	attrs := []struct {
		el   *svgdom.Element
		attr string
		want string
	}{
		{bg, "width", "40"},
		{bg, "height", "20"},
		{bg, "x", "3.50"},
		{bg, "y", "3"},
		{bg, "rx", "2.50"},
		{bg, "stroke-width", "1"},
		{swatch, "width", "4"},
		{swatch, "x", "11"},
		{swatch, "y", "9.50"},
		{swatch, "rx", "1"},
		{text, "x", "17"},
		{text, "y", "13"},
		{root, "x", "140"},
		{root, "y", "0"},
		{root, "data-legend-applied-scale", "0.5"},
	}
	for _, a := range attrs {
		if got := a.el.AttrOr(a.attr, ""); got != a.want {
			t.Errorf("<%s> %s = %q, want %q", a.el.Tag(), a.attr, got, a.want)
		}
	}
	if got := text.StyleProperty("font-size"); got != "7.5px" {
		t.Errorf("text font-size = %q, want 7.5px", got)
	}
	if got := text.StylePriority("font-size"); got != "important" {
		t.Errorf("text font-size priority = %q, want important", got)
	}
	if root.HasAttr("data-legend-applied-font") {
		t.Error("applied font marker should only be set for an explicit font size")
	}
}

func TestApplyLegendEnhancementsIdempotent(t *testing.T) {
	c := parseFixture(t, legendFixture)
	opts := &sketch.Options{LegendScale: 0.5, LegendFontSize: 11}

	if !ApplyLegendEnhancements(c, opts) {
		t.Fatal("first pass should change the legend")
	}
	first := c.Markup()

	if ApplyLegendEnhancements(c, opts) {
		t.Error("second pass with the same options should be a no-op")
	}
	if got := c.Markup(); got != first {
		t.Errorf("markup changed on second pass:\n%s\nwant\n%s", got, first)
	}

	_, _, _, text := legendParts(t, c)
	if got := text.StyleProperty("font-size"); got != "11px" {
		t.Errorf("text font-size = %q, want explicit 11px", got)
	}
}

func TestAppliedLegend(t *testing.T) {
	c := parseFixture(t, legendFixture)
	if _, _, ok := AppliedLegend(c); ok {
		t.Error("AppliedLegend() ok before any pass")
	}

	ApplyLegendEnhancements(c, &sketch.Options{LegendScale: 0.5, LegendFontSize: 11})
	scale, font, ok := AppliedLegend(c)
	if !ok || scale != 0.5 || font != 11 {
		t.Errorf("AppliedLegend() = (%v, %v, %v), want (0.5, 11, true)", scale, font, ok)
	}

	if _, _, ok := AppliedLegend(nil); ok {
		t.Error("AppliedLegend(nil) ok")
	}
}

func TestApplyLegendEnhancementsScalesFromBaseline(t *testing.T) {
	c := parseFixture(t, legendFixture)

	ApplyLegendEnhancements(c, &sketch.Options{LegendScale: 0.5})
	if !ApplyLegendEnhancements(c, &sketch.Options{LegendScale: 2}) {
		t.Fatal("a new scale should change the legend")
	}

	root, bg, _, text := legendParts(t, c)
	if got := bg.AttrOr("width", ""); got != "160" {
		t.Errorf("background width = %q, want 160 (80 x 2, not 40 x 2)", got)
	}
	if got := root.AttrOr("x", ""); got != "20" {
		t.Errorf("legend x = %q, want 20 (100 + 80 - 160)", got)
	}
	if got := text.StyleProperty("font-size"); got != "30px" {
		t.Errorf("text font-size = %q, want 30px", got)
	}
}

func TestApplyLegendEnhancementsBottomAnchor(t *testing.T) {
	markup := strings.Replace(legendFixture, `x="100" y="0"`, `x="0" y="200"`, 1)
	c := parseFixture(t, markup)

	ApplyLegendEnhancements(c, &sketch.Options{LegendScale: 1.5})
	root, _, _, _ := legendParts(t, c)
	if got := root.AttrOr("x", ""); got != "0" {
		t.Errorf("left-anchored x = %q, want 0", got)
	}
	// 200 + 40 - 60
	if got := root.AttrOr("y", ""); got != "180" {
		t.Errorf("bottom-anchored y = %q, want 180", got)
	}
}

func TestApplyLegendEnhancementsNoop(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		opts   *sketch.Options
	}{
		{"nil options", legendFixture, nil},
		{"default scale", legendFixture, &sketch.Options{}},
		{"unit scale", legendFixture, &sketch.Options{LegendScale: 1}},
		{"no legend", `<svg width="400" height="300"><rect width="10"></rect></svg>`, &sketch.Options{LegendScale: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := parseFixture(t, tt.markup)
			before := c.Markup()
			if ApplyLegendEnhancements(c, tt.opts) {
				t.Error("ApplyLegendEnhancements() = true, want false")
			}
			if c.Markup() != before {
				t.Error("markup should be untouched")
			}
		})
	}

	if ApplyLegendEnhancements(nil, &sketch.Options{LegendScale: 2}) {
		t.Error("nil container should be a no-op")
	}
}

func TestLegendRootPicksLastCandidate(t *testing.T) {
	markup := `<svg><svg id="first" x="0"><rect fill-opacity="1" width="10"></rect></svg>` +
		`<svg id="plain"><rect width="5"></rect></svg>` +
		`<svg id="last" x="0"><rect fill-opacity="1" width="10"></rect></svg></svg>`
	c := parseFixture(t, markup)
	root := legendRoot(c)
	if got := root.AttrOr("id", ""); got != "last" {
		t.Errorf("legendRoot() id = %q, want last", got)
	}
}

func TestFormatScaled(t *testing.T) {
	tests := map[float64]string{
		40:     "40",
		3.5:    "3.50",
		2.126:  "2.13",
		0.004:  "0",
		-12:    "-12",
		100.01: "100.01",
	}
	for in, want := range tests {
		if got := formatScaled(in); got != want {
			t.Errorf("formatScaled(%v) = %q, want %q", in, got, want)
		}
	}
}
