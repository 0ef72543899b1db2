package fit

import (
	"fmt"
	"regexp"

	"github.com/matzehuels/sketchfit/pkg/svgdom"
)

var translatePattern = regexp.MustCompile(`translate\(([^,]+),\s*([^)]+)\)`)

// Point is an offset in canvas pixels.
type Point struct {
	X, Y float64
}

// ExtractTranslate returns the translation of an SVG transform string.
// Missing, empty or unparseable input yields the origin; each component is
// parsed from its numeric prefix and falls back to 0 on its own.
func ExtractTranslate(transform string) Point {
	m := translatePattern.FindStringSubmatch(transform)
	if m == nil {
		return Point{}
	}
	x, _ := svgdom.LeadingNumber(m[1])
	y, _ := svgdom.LeadingNumber(m[2])
	return Point{X: x, Y: y}
}

// translate formats a translate() transform with plain number formatting.
func translate(x, y float64) string {
	return fmt.Sprintf("translate(%s,%s)", svgdom.FormatNumber(x), svgdom.FormatNumber(y))
}
