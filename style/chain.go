package style

import (
	"fmt"
	"sort"
)

// Properties is the property map of a node, as set by a description
// document or by the host application.
type Properties map[string]Value

// Get returns the value of a property.
func (p Properties) Get(key string) (Value, bool) {
	if p == nil {
		return Value{}, false
	}
	v, ok := p[key]
	return v, ok
}

// Keys returns the property names in sorted order.
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Rect is an integer rectangle in the coordinate space of the parent node.
type Rect struct {
	X, Y          int32
	Width, Height int32
}

// IsEmpty is true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the overlap of two rectangles, which may be empty.
func (r Rect) Intersect(s Rect) Rect {
	x0, y0 := max32(r.X, s.X), max32(r.Y, s.Y)
	x1, y1 := min32(r.X+r.Width, s.X+s.Width), min32(r.Y+r.Height, s.Y+s.Height)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// NodeKind tells elements from text leaves.
type NodeKind uint8

// Node kinds.
const (
	ElementNode NodeKind = iota
	TextNode
)

// NodeChain is a view of a node and its ancestors, built while traversing
// the tree. It is used for rule matching and for expression evaluation.
type NodeChain struct {
	Kind       NodeKind
	Name       string // element name, empty for text
	Rect       Rect   // current draw rect of the node
	Properties Properties
	Parent     *NodeChain
}

// Ancestor returns the chain link depth steps up, with 0 being c itself.
func (c *NodeChain) Ancestor(depth int) *NodeChain {
	for ; c != nil && depth > 0; depth-- {
		c = c.Parent
	}
	return c
}

func (c *NodeChain) String() string {
	if c == nil {
		return "<nil>"
	}
	s := ""
	for l := c; l != nil; l = l.Parent {
		if s != "" {
			s = " > " + s
		}
		if l.Kind == TextNode {
			s = "@text" + s
		} else {
			s = l.Name + s
		}
	}
	return s
}
