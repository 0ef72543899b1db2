// Package svgdom is a small mutable SVG tree used by the chart renderer and
// the responsive layout pass.
//
// # Overview
//
// Charts are drawn into a [Container], the Go stand-in for the host element a
// dashboard view mounts a chart into. A container carries the measured client
// size of that host and an attachment flag; the tree below it is a regular
// golang.org/x/net/html node tree, so SVG produced elsewhere can be parsed
// back in with [ParseContainer] and mutated in place.
//
// # Elements
//
// [Element] wraps an *html.Node and exposes the handful of operations the
// layout code needs: attribute get/set, inline style properties, child
// management and XPath lookups through github.com/antchfx/htmlquery.
//
//	c := svgdom.NewContainer(640, 480)
//	svg := svgdom.New("svg").Set("width", "640")
//	c.Append(svg)
//	for _, rect := range c.Root().FindAll(".//rect[@fill-opacity]") {
//	    rect.SetAttr("width", "10")
//	}
//
// Nil elements are valid receivers for read operations and return zero
// values, which lets callers read optional handles without guards.
package svgdom
