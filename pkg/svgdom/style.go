package svgdom

import "strings"

// declaration is one `name: value [!important]` entry of an inline style.
type declaration struct {
	name      string
	value     string
	important bool
}

func parseStyle(s string) []declaration {
	var decls []declaration
	for _, part := range strings.Split(s, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		if name == "" {
			continue
		}
		d := declaration{name: name, value: value}
		if v, found := strings.CutSuffix(value, "!important"); found {
			d.value = strings.TrimSpace(v)
			d.important = true
		}
		decls = append(decls, d)
	}
	return decls
}

func formatStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		p := d.name + ": " + d.value
		if d.important {
			p += " !important"
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, "; ")
}

// StyleProperty returns the value of an inline style property, without any
// priority suffix. It returns "" when the property is not set.
func (e *Element) StyleProperty(name string) string {
	name = strings.ToLower(name)
	for _, d := range parseStyle(e.AttrOr("style", "")) {
		if d.name == name {
			return d.value
		}
	}
	return ""
}

// StylePriority returns "important" when the property carries !important.
func (e *Element) StylePriority(name string) string {
	name = strings.ToLower(name)
	for _, d := range parseStyle(e.AttrOr("style", "")) {
		if d.name == name && d.important {
			return "important"
		}
	}
	return ""
}

// SetStyleProperty sets an inline style property. A priority of "important"
// appends !important. Existing declarations keep their order.
func (e *Element) SetStyleProperty(name, value, priority string) {
	if e == nil {
		return
	}
	name = strings.ToLower(name)
	decls := parseStyle(e.AttrOr("style", ""))
	d := declaration{name: name, value: value, important: priority == "important"}
	replaced := false
	for i := range decls {
		if decls[i].name == name {
			decls[i] = d
			replaced = true
		}
	}
	if !replaced {
		decls = append(decls, d)
	}
	e.SetAttr("style", formatStyle(decls))
}
