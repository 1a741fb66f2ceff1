package uistyle

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/uistyle/layout"
	"github.com/npillmayer/uistyle/rules"
	"github.com/npillmayer/uistyle/style"
	"github.com/npillmayer/uistyle/tree"
)

// NodeID addresses a node of a Manager.
type NodeID = tree.ID

// nodeData is the payload of a tree node.
type nodeData struct {
	kind  style.NodeKind
	name  string // element name
	text  string // text content
	props style.Properties

	candidates []*rules.Rule     // rules whose matcher kinds fit
	flags      layout.DirtyFlags // flags of the last update pass
	drawRect   style.Rect        // current geometry, relative to the parent
	prevRect   style.Rect        // geometry of the previous layout pass
	engine     layout.Engine     // lays out the children of this node
	childData  layout.ChildData  // owned by the parent's engine
	dataOwner  string            // name of the engine which created childData
	ext        ExtData

	scrollX, scrollY float64
	clip             bool
	usesParentSize   bool
	doneLayout       bool

	propsChanged bool
	rulesDirty   bool
	textChanged  bool
}

func (m *Manager) newNodeData(kind style.NodeKind) *nodeData {
	return &nodeData{
		kind:         kind,
		props:        style.Properties{},
		engine:       layout.NewAbsolute(),
		ext:          m.ext.NewData(),
		propsChanged: true,
		rulesDirty:   true,
	}
}

// layout.Node interface

func (n *nodeData) Name() string     { return n.name }
func (n *nodeData) IsText() bool     { return n.kind == style.TextNode }
func (n *nodeData) Text() string     { return n.text }
func (n *nodeData) Ext() interface{} { return n.ext }

var _ layout.Node = &nodeData{}

func (m *Manager) node(id NodeID) *nodeData {
	n, _ := m.nodes.Payload(id)
	return n
}

// ---- Creation ----------------------------------------------------------

// NewElement creates a detached element node.
func (m *Manager) NewElement(name string) NodeID {
	n := m.newNodeData(style.ElementNode)
	n.name = name
	return m.nodes.NewNode(n)
}

// NewText creates a detached text node.
func (m *Manager) NewText(text string) NodeID {
	n := m.newNodeData(style.TextNode)
	n.text = text
	return m.nodes.NewNode(n)
}

// DeleteNode detaches a node and frees it together with its descendants.
// IDs of deleted nodes become invalid.
func (m *Manager) DeleteNode(id NodeID) error {
	if !m.nodes.Valid(id) || id == m.root {
		return ErrInvalidNode
	}
	if p := m.nodes.Parent(id); !p.IsNone() {
		m.node(p).rulesDirty = true
	}
	m.nodes.Release(id)
	return nil
}

// ---- Structure ---------------------------------------------------------

// AddChild appends a detached node to the children of parent.
func (m *Manager) AddChild(parent, ch NodeID) error {
	return m.InsertChild(parent, -1, ch)
}

// AddChildFirst inserts a detached node before all other children of parent.
func (m *Manager) AddChildFirst(parent, ch NodeID) error {
	return m.InsertChild(parent, 0, ch)
}

// InsertChild inserts a detached node at position i of parent's children.
// A negative position appends.
func (m *Manager) InsertChild(parent NodeID, i int, ch NodeID) error {
	p, c := m.node(parent), m.node(ch)
	if p == nil || c == nil {
		return ErrInvalidNode
	}
	if p.kind == style.TextNode {
		return ErrTextNode
	}
	var err error
	if i < 0 {
		err = m.nodes.AddChild(parent, ch)
	} else {
		err = m.nodes.InsertChildAt(parent, i, ch)
	}
	if err != nil {
		return err
	}
	c.rulesDirty = true
	return nil
}

// RemoveChild detaches ch from parent. The node stays valid and may be
// attached elsewhere.
func (m *Manager) RemoveChild(parent, ch NodeID) error {
	if err := m.nodes.RemoveChild(parent, ch); err != nil {
		return err
	}
	c := m.node(ch)
	c.rulesDirty = true
	m.node(parent).rulesDirty = true
	return nil
}

// Parent returns the parent of a node. Top-level nodes have the root as
// their parent.
func (m *Manager) Parent(id NodeID) (NodeID, bool) {
	p := m.nodes.Parent(id)
	return p, !p.IsNone()
}

// Children returns the children of a node.
func (m *Manager) Children(id NodeID) []NodeID {
	return m.nodes.Children(id)
}

// ---- Content -----------------------------------------------------------

// Name returns the element name of a node. Text nodes have no name.
func (m *Manager) Name(id NodeID) (string, bool) {
	if n := m.node(id); n != nil && n.kind == style.ElementNode {
		return n.name, true
	}
	return "", false
}

// IsText is true for text nodes.
func (m *Manager) IsText(id NodeID) bool {
	n := m.node(id)
	return n != nil && n.kind == style.TextNode
}

// Text returns the content of a text node.
func (m *Manager) Text(id NodeID) (string, bool) {
	if n := m.node(id); n != nil && n.kind == style.TextNode {
		return n.text, true
	}
	return "", false
}

// SetText replaces the content of a text node. It is a no-op for
// elements and for unchanged text.
func (m *Manager) SetText(id NodeID, text string) {
	if n := m.node(id); n != nil && n.kind == style.TextNode && n.text != text {
		n.text = text
		n.textChanged = true
	}
}

// ---- Properties --------------------------------------------------------

// SetProperty sets a property and schedules the node for re-styling.
func (m *Manager) SetProperty(id NodeID, key string, v style.Value) {
	if n := m.node(id); n != nil {
		n.props[key] = v
		n.propsChanged = true
	}
}

// RawSetProperty sets a property without re-styling the node. Rules
// depending on the property will not notice the change until the node
// is re-styled for another reason.
func (m *Manager) RawSetProperty(id NodeID, key string, v style.Value) {
	if n := m.node(id); n != nil {
		n.props[key] = v
	}
}

// RemoveProperty deletes a property and schedules the node for re-styling.
func (m *Manager) RemoveProperty(id NodeID, key string) {
	if n := m.node(id); n != nil {
		if _, ok := n.props[key]; ok {
			delete(n.props, key)
			n.propsChanged = true
		}
	}
}

// Property returns the value of a property.
func (m *Manager) Property(id NodeID, key string) (style.Value, bool) {
	if n := m.node(id); n != nil {
		return n.props.Get(key)
	}
	return style.Value{}, false
}

// PropertyInt returns a property as an int32. Floats are truncated.
func (m *Manager) PropertyInt(id NodeID, key string) (int32, bool) {
	if v, ok := m.Property(id, key); ok {
		return v.AsInt()
	}
	return 0, false
}

// PropertyFloat returns a property as a float64.
func (m *Manager) PropertyFloat(id NodeID, key string) (float64, bool) {
	if v, ok := m.Property(id, key); ok {
		return v.AsFloat()
	}
	return 0, false
}

// PropertyBool returns a boolean property.
func (m *Manager) PropertyBool(id NodeID, key string) (bool, bool) {
	if v, ok := m.Property(id, key); ok {
		return v.AsBool()
	}
	return false, false
}

// PropertyString returns a string property.
func (m *Manager) PropertyString(id NodeID, key string) (string, bool) {
	if v, ok := m.Property(id, key); ok {
		return v.AsString()
	}
	return "", false
}

// Properties returns a copy of the property map of a node.
func (m *Manager) Properties(id NodeID) style.Properties {
	n := m.node(id)
	if n == nil {
		return nil
	}
	props := make(style.Properties, len(n.props))
	for k, v := range n.props {
		props[k] = v
	}
	return props
}

// ---- Resolved state ----------------------------------------------------

// HasLayout is true once a node took part in a layout pass.
func (m *Manager) HasLayout(id NodeID) bool {
	n := m.node(id)
	return n != nil && n.doneLayout
}

// RawPosition returns the rect of a node relative to its parent.
func (m *Manager) RawPosition(id NodeID) style.Rect {
	if n := m.node(id); n != nil {
		return n.drawRect
	}
	return style.Rect{}
}

// ScrollPosition returns the resolved scroll offsets of a node.
func (m *Manager) ScrollPosition(id NodeID) (x, y float64) {
	if n := m.node(id); n != nil {
		return n.scrollX, n.scrollY
	}
	return 0, 0
}

// ClipOverflow tells whether a node clips its children.
func (m *Manager) ClipOverflow(id NodeID) bool {
	n := m.node(id)
	return n != nil && n.clip
}

// LayoutEngine returns the name of the layout engine of a node.
func (m *Manager) LayoutEngine(id NodeID) string {
	if n := m.node(id); n != nil {
		return n.engine.Name()
	}
	return ""
}

// ExtData returns the extension data of a node.
func (m *Manager) ExtData(id NodeID) ExtData {
	if n := m.node(id); n != nil {
		return n.ext
	}
	return nil
}

// DirtyFlags returns the flags a node collected in the last update pass.
func (m *Manager) DirtyFlags(id NodeID) layout.DirtyFlags {
	if n := m.node(id); n != nil {
		return n.flags
	}
	return 0
}

// RenderPosition returns the rect of a node in root coordinates, after
// applying the scroll offsets and clipping of its ancestors. It returns
// false if nothing of the node is visible.
func (m *Manager) RenderPosition(id NodeID) (style.Rect, bool) {
	n := m.node(id)
	if n == nil {
		return style.Rect{}, false
	}
	rect := n.drawRect
	for _, pid := range m.nodes.Ancestors(id) {
		p := m.node(pid)
		rect.X += int32(p.scrollX)
		rect.Y += int32(p.scrollY)
		if p.clip {
			rect = rect.Intersect(style.Rect{Width: p.drawRect.Width, Height: p.drawRect.Height})
		}
		if rect.IsEmpty() {
			return style.Rect{}, false
		}
		rect.X += p.drawRect.X
		rect.Y += p.drawRect.Y
	}
	return rect, true
}
