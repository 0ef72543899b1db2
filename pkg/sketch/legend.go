package sketch

import "github.com/matzehuels/sketchfit/pkg/svgdom"

const (
	legendPadX       = 7.0
	legendPadY       = 6.0
	legendInset      = 15.0
	legendSwatch     = 8.0
	legendGap        = 4.0
	legendRowHeight  = 20.0
	legendFontSize   = 15.0
	legendBackground = 0.85
)

type legendItem struct {
	color string
	label string
}

// drawLegend appends the legend as a nested <svg> to parent. The box is laid
// out at the origin of the nested svg and the nested svg is placed against
// the corner named by pos: x/y stay 0 for left/top placement and are pushed
// to the far edge for right/bottom placement.
func drawLegend(parent *svgdom.Element, items []legendItem, pos Position, canvasW, canvasH float64, filter string) *svgdom.Element {
	textW := 0.0
	for _, it := range items {
		textW = max(textW, textWidth(it.label, legendFontSize))
	}
	bgW := legendInset + legendSwatch + legendGap + textW + legendInset
	bgH := legendRowHeight*float64(len(items)) + legendInset/2
	outerW := bgW + legendPadX*2
	outerH := bgH + legendPadY*2

	x, y := 0.0, 0.0
	if pos == UpRight || pos == DownRight {
		x = max(canvasW-outerW, 0)
	}
	if pos == DownLeft || pos == DownRight {
		y = max(canvasH-outerH, 0)
	}

	legend := svgdom.New("svg").
		Set("class", "legend").
		Set("x", num(x)).
		Set("y", num(y))

	legend.Append(svgdom.New("rect").
		Set("fill", backgroundFill).
		Set("fill-opacity", num(legendBackground)).
		Set("stroke", strokeColor).
		Set("stroke-width", "2").
		Set("rx", "5").
		Set("ry", "5").
		Set("filter", filter).
		Set("width", num(bgW)).
		Set("height", num(bgH)).
		Set("x", num(legendPadX)).
		Set("y", num(legendPadY)))

	for i, it := range items {
		rowTop := legendPadY + legendInset/2 + legendRowHeight*float64(i)
		legend.Append(svgdom.New("rect").
			Set("fill", it.color).
			Set("width", num(legendSwatch)).
			Set("height", num(legendSwatch)).
			Set("rx", "2").
			Set("ry", "2").
			Set("x", num(legendPadX+legendInset)).
			Set("y", num(rowTop+(legendRowHeight-legendSwatch)/2-2)))
		legend.Append(text(legendPadX+legendInset+legendSwatch+legendGap, rowTop+legendRowHeight/2+3,
			it.label, "start", legendFontSize))
	}

	return parent.Append(legend)
}
