package svgdom

import (
	"bytes"
	"fmt"
	"io"
	"sync/atomic"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Container is the host element a chart is mounted into.
//
// ClientWidth and ClientHeight hold the measured size of the host; zero means
// "not measured". A container starts attached and becomes detached once the
// view that owns it is torn down; deferred work checks [Container.Attached]
// before touching the tree.
type Container struct {
	root         *Element
	ClientWidth  float64
	ClientHeight float64
	detached     atomic.Bool
}

// NewContainer creates an empty container with the given measured size.
func NewContainer(width, height float64) *Container {
	return &Container{
		root: &Element{node: &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Div,
			Data:     "div",
		}},
		ClientWidth:  width,
		ClientHeight: height,
	}
}

// ParseContainer parses markup (typically one or more <svg> trees) into a new
// container with the given measured size.
func ParseContainer(r io.Reader, width, height float64) (*Container, error) {
	c := NewContainer(width, height)
	nodes, err := html.ParseFragment(r, &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
	})
	if err != nil {
		return nil, fmt.Errorf("parse container markup: %w", err)
	}
	for _, n := range nodes {
		c.root.node.AppendChild(n)
	}
	return c, nil
}

// Root returns the container element itself.
func (c *Container) Root() *Element {
	if c == nil {
		return nil
	}
	return c.root
}

// Append mounts el as the last child of the container.
func (c *Container) Append(el *Element) *Element {
	if c == nil {
		return el
	}
	return c.root.Append(el)
}

// SVGs returns every <svg> element in the container in document order,
// nested ones included.
func (c *Container) SVGs() []*Element {
	if c == nil {
		return nil
	}
	return c.root.FindAll("//svg")
}

// Resize records a new measured size, as a host does on a resize event.
func (c *Container) Resize(width, height float64) {
	c.ClientWidth = width
	c.ClientHeight = height
}

// Detach marks the container as removed from the page.
func (c *Container) Detach() {
	c.detached.Store(true)
}

// Attached reports whether the container is still mounted.
func (c *Container) Attached() bool {
	return c != nil && !c.detached.Load()
}

// Render writes the container's children as markup.
func (c *Container) Render(w io.Writer) error {
	for n := c.root.node.FirstChild; n != nil; n = n.NextSibling {
		if err := html.Render(w, n); err != nil {
			return err
		}
	}
	return nil
}

// Markup returns the rendered children as a string.
func (c *Container) Markup() string {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}
