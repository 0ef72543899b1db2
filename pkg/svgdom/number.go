package svgdom

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var leadingNumber = regexp.MustCompile(`^[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)

// Number parses an attribute value strictly: the whole trimmed string must be
// a finite number. An empty string is 0. Values such as "12px" are rejected.
func Number(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// LeadingNumber parses the numeric prefix of s, ignoring leading whitespace
// and any trailing unit or garbage ("12.5px" is 12.5).
func LeadingNumber(s string) (float64, bool) {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// NumberAttr returns the strictly parsed numeric value of an attribute, or 0
// when it is absent or not a number.
func (e *Element) NumberAttr(name string) float64 {
	s, ok := e.Attr(name)
	if !ok {
		return 0
	}
	v, ok := Number(s)
	if !ok {
		return 0
	}
	return v
}

// FormatNumber renders v without trailing zeros ("2", "0.5", "12.25").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
