package svgdom

import (
	"bytes"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// svgNamespace is the x/net/html namespace tag for foreign SVG content.
const svgNamespace = "svg"

// Element is a handle to a single element node.
type Element struct {
	node *html.Node
}

// New creates a detached SVG element with the given tag name.
func New(tag string) *Element {
	return &Element{node: &html.Node{
		Type:      html.ElementNode,
		DataAtom:  atom.Lookup([]byte(tag)),
		Data:      tag,
		Namespace: svgNamespace,
	}}
}

// Wrap returns an Element for n, or nil if n is nil or not an element.
func Wrap(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &Element{node: n}
}

// Node returns the underlying node.
func (e *Element) Node() *html.Node {
	if e == nil {
		return nil
	}
	return e.node
}

// Tag returns the element name.
func (e *Element) Tag() string {
	if e == nil {
		return ""
	}
	return e.node.Data
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// AttrOr returns the named attribute or fallback when absent.
func (e *Element) AttrOr(name, fallback string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return fallback
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// SetAttr sets the named attribute, replacing any existing value.
func (e *Element) SetAttr(name, value string) {
	if e == nil {
		return
	}
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// Set is SetAttr in builder form.
func (e *Element) Set(name, value string) *Element {
	e.SetAttr(name, value)
	return e
}

// RemoveAttr deletes the named attribute if present.
func (e *Element) RemoveAttr(name string) {
	if e == nil {
		return
	}
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Key != name {
			attrs = append(attrs, a)
		}
	}
	e.node.Attr = attrs
}

// Append adds child as the last child of e and returns child.
func (e *Element) Append(child *Element) *Element {
	if e == nil || child == nil {
		return child
	}
	if child.node.Parent != nil {
		child.node.Parent.RemoveChild(child.node)
	}
	e.node.AppendChild(child.node)
	return child
}

// AppendText adds a text node child.
func (e *Element) AppendText(text string) {
	if e == nil {
		return
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Text returns the concatenated text content of e.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	return htmlquery.InnerText(e.node)
}

// Clear removes all children.
func (e *Element) Clear() {
	if e == nil {
		return
	}
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
}

// Remove detaches e from its parent.
func (e *Element) Remove() {
	if e == nil || e.node.Parent == nil {
		return
	}
	e.node.Parent.RemoveChild(e.node)
}

// Parent returns the parent element, or nil at the top of the tree.
func (e *Element) Parent() *Element {
	if e == nil {
		return nil
	}
	return Wrap(e.node.Parent)
}

// Children returns the element children of e in document order.
func (e *Element) Children() []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if el := Wrap(c); el != nil {
			out = append(out, el)
		}
	}
	return out
}

// Find returns the first element matching the XPath expression, or nil.
// Invalid expressions match nothing.
func (e *Element) Find(expr string) *Element {
	if e == nil {
		return nil
	}
	n, err := htmlquery.Query(e.node, expr)
	if err != nil {
		return nil
	}
	return Wrap(n)
}

// FindAll returns all elements matching the XPath expression in document order.
// Invalid expressions match nothing.
func (e *Element) FindAll(expr string) []*Element {
	if e == nil {
		return nil
	}
	nodes, err := htmlquery.QueryAll(e.node, expr)
	if err != nil {
		return nil
	}
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if el := Wrap(n); el != nil {
			out = append(out, el)
		}
	}
	return out
}

// Is reports whether e and other refer to the same node.
func (e *Element) Is(other *Element) bool {
	return e.Node() == other.Node()
}

// String renders e and its subtree as markup.
func (e *Element) String() string {
	if e == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, e.node); err != nil {
		return ""
	}
	return buf.String()
}

