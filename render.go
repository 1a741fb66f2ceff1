package uistyle

import (
	"github.com/npillmayer/uistyle/style"
)

// RenderNode is the resolved state of a node as presented to a renderer.
type RenderNode struct {
	ID           NodeID
	Name         string // element name, empty for text nodes
	Text         string
	IsText       bool
	Rect         style.Rect // relative to the parent
	ScrollX      float64
	ScrollY      float64
	ClipOverflow bool
	Properties   style.Properties // read-only
	Ext          ExtData
}

// RenderVisitor receives the nodes of a tree in depth-first order.
// VisitEnd is called after all children of a node were visited.
type RenderVisitor interface {
	Visit(n *RenderNode)
	VisitEnd(n *RenderNode)
}

// Render walks the node tree, starting with the root.
func (m *Manager) Render(v RenderVisitor) {
	var stack []*RenderNode
	m.nodes.Traverse(m.root, func(id NodeID) {
		rn := m.renderNode(id)
		stack = append(stack, rn)
		v.Visit(rn)
	}, func(NodeID) {
		rn := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		v.VisitEnd(rn)
	})
}

func (m *Manager) renderNode(id NodeID) *RenderNode {
	n := m.node(id)
	return &RenderNode{
		ID:           id,
		Name:         n.name,
		Text:         n.text,
		IsText:       n.kind == style.TextNode,
		Rect:         n.drawRect,
		ScrollX:      n.scrollX,
		ScrollY:      n.scrollY,
		ClipOverflow: n.clip,
		Properties:   n.props,
		Ext:          n.ext,
	}
}
