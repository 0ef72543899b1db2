package fit

import (
	"strings"

	"github.com/matzehuels/sketchfit/pkg/svgdom"
)

// cachePrefix marks attributes that hold a value as it was before any
// scaling pass touched the element.
const cachePrefix = "data-legend-orig-"

// CacheNumericAttr returns the original numeric value of attr on el.
//
// The first call copies the live value verbatim into a data-legend-orig-*
// attribute; every later call reads that copy instead of the live attribute,
// so a value is always scaled from the same baseline no matter how often it
// has been rewritten since. It returns false when the attribute is absent or
// not a finite number, in which case the caller should leave it alone.
func CacheNumericAttr(el *svgdom.Element, attr string) (float64, bool) {
	if el == nil {
		return 0, false
	}
	cacheAttr := cachePrefix + attr
	value, ok := el.Attr(cacheAttr)
	if !ok {
		value, ok = el.Attr(attr)
		if !ok {
			return 0, false
		}
		el.SetAttr(cacheAttr, value)
	}
	return svgdom.Number(value)
}

// CacheFontSize is CacheNumericAttr for text size, which SVG allows to be set
// through an inline style property or a font-size attribute. The numeric part
// of the first source found is cached; units are dropped.
func CacheFontSize(el *svgdom.Element) (float64, bool) {
	if el == nil {
		return 0, false
	}
	cacheAttr := cachePrefix + "font-size"
	value, ok := el.Attr(cacheAttr)
	if !ok {
		raw := firstNonEmpty(
			el.StyleProperty("font-size"),
			el.AttrOr("font-size", ""),
		)
		if raw == "" {
			return 0, false
		}
		n, ok := svgdom.LeadingNumber(raw)
		if !ok {
			el.SetAttr(cacheAttr, raw)
			return 0, false
		}
		value = svgdom.FormatNumber(n)
		el.SetAttr(cacheAttr, value)
	}
	return svgdom.Number(value)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
