package uistyle

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/uistyle/expr"
	"github.com/npillmayer/uistyle/layout"
	"github.com/npillmayer/uistyle/rules"
	"github.com/npillmayer/uistyle/style"
	"github.com/npillmayer/uistyle/syntax"
	"github.com/npillmayer/uistyle/tree"
)

// Built-in style keys, understood by every node.
var (
	KeyLayout       = style.Intern("layout")
	KeyScrollX      = style.Intern("scroll_x")
	KeyScrollY      = style.Intern("scroll_y")
	KeyClipOverflow = style.Intern("clip_overflow")
)

// RootName is the element name of the root node. Rules may match it as an
// ancestor of top-level nodes.
const RootName = "root"

// Manager owns a node tree together with the style rules, layout engines
// and functions used to lay it out. A Manager is not safe for concurrent
// use.
type Manager struct {
	nodes   *tree.Tree[*nodeData]
	root    NodeID
	index   *rules.Index
	engines *layout.Registry
	funcs   expr.Funcs
	keys    style.KeySet // keys style rules may assign
	ext     Extension

	rootEngine layout.Engine
	lastW      int32
	lastH      int32
	dirty      bool // styles were loaded or removed since the last Layout

	maxPasses   int
	quiet       bool
	diagnostics func(Diagnostic)
}

// New creates a Manager with the built-in layout engines "absolute" and
// "grid" registered.
func New(opts ...Option) *Manager {
	m := &Manager{
		nodes:      tree.New[*nodeData](),
		index:      rules.NewIndex(),
		engines:    layout.NewRegistry(),
		funcs:      make(expr.Funcs),
		keys:       style.KeySet{},
		ext:        NoExtension{},
		rootEngine: layout.NewAbsolute(),
		maxPasses:  DefaultMaxPasses,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.keys.Add(KeyLayout, KeyScrollX, KeyScrollY, KeyClipOverflow)
	m.keys.Add(m.ext.StyleKeys()...)
	m.keys.Add(m.engines.Keys()...)
	root := m.newNodeData(style.ElementNode)
	root.name = RootName
	m.root = m.nodes.NewNode(root)
	return m
}

// Root returns the root node. Top-level nodes are its children.
func (m *Manager) Root() NodeID {
	return m.root
}

// RegisterLayoutEngine makes a layout engine available under name.
// keys are the style keys the engine consumes, for its node or for the
// node's children.
func (m *Manager) RegisterLayoutEngine(name string, keys []style.Key, factory layout.Factory) {
	m.engines.Register(name, keys, factory)
	m.keys.Add(keys...)
}

// RegisterFunction makes a host function callable from style expressions.
// Functions must be registered before loading documents using them.
func (m *Manager) RegisterFunction(name string, fn expr.Func) {
	m.funcs[style.Intern(name)] = fn
}

// ---- Styles ------------------------------------------------------------

// env resolves names for the rule compiler.
type env struct {
	m *Manager
}

func (e env) StyleKey(name string) (style.Key, bool) {
	k, ok := style.Lookup(name)
	return k, ok && e.m.keys.Has(k)
}

func (e env) Function(name string) (style.Key, bool) {
	k, ok := style.Lookup(name)
	if !ok {
		return k, false
	}
	_, ok = e.m.funcs[k]
	return k, ok
}

// LoadStyles loads a style document under a name. Loading a name a second
// time replaces the rules loaded earlier. If the document contains an
// error, nothing is loaded and styles loaded before remain active.
func (m *Manager) LoadStyles(name string, doc *syntax.StyleDocument) error {
	reload := m.index.HasDocument(name)
	if err := m.index.Load(name, doc, env{m}); err != nil {
		return fmt.Errorf("style document %q: %w", name, err)
	}
	if reload {
		tracer().Infof("replaced style document %q", name)
	} else {
		tracer().Debugf("loaded style document %q", name)
	}
	m.dirty = true
	return nil
}

// RemoveStyles removes all rules loaded from a named style document.
func (m *Manager) RemoveStyles(name string) bool {
	if m.index.RemoveDocument(name) == 0 {
		return false
	}
	tracer().Infof("removed style document %q", name)
	m.dirty = true
	return true
}

// Rules returns the number of loaded rules.
func (m *Manager) Rules() int {
	return m.index.Len()
}

// ---- Top-level nodes ---------------------------------------------------

// AddNode attaches a detached node to the root.
func (m *Manager) AddNode(id NodeID) error {
	return m.AddChild(m.root, id)
}

// RemoveNode detaches a top-level node from the root.
func (m *Manager) RemoveNode(id NodeID) error {
	return m.RemoveChild(m.root, id)
}

// Build creates a detached node tree from a parsed element.
func (m *Manager) Build(el *syntax.Element) (NodeID, error) {
	if el == nil {
		return tree.None, syntax.Errorf(syntax.Position{}, "Missing element")
	}
	id := m.NewElement(el.Name)
	if err := m.buildProperties(id, el.Properties); err != nil {
		m.nodes.Release(id)
		return tree.None, err
	}
	for _, ch := range el.Nodes {
		var cid NodeID
		var err error
		switch x := ch.(type) {
		case *syntax.Element:
			cid, err = m.Build(x)
		case *syntax.Text:
			cid = m.NewText(syntax.Unescape(x.Text))
			err = m.buildProperties(cid, x.Properties)
		default:
			err = syntax.Errorf(ch.Position(), "Unsupported node %T", ch)
		}
		if err == nil {
			err = m.AddChild(id, cid)
		}
		if err != nil {
			m.nodes.Release(cid)
			m.nodes.Release(id)
			return tree.None, err
		}
	}
	return id, nil
}

func (m *Manager) buildProperties(id NodeID, props []syntax.Property) error {
	for _, p := range props {
		v, ok := p.Value.Value()
		if !ok {
			return syntax.Errorf(p.Pos, "Variable %s not allowed in description", p.Value.Text)
		}
		m.RawSetProperty(id, p.Key, v)
	}
	return nil
}

// BuildDocument creates the node tree of a description document and adds
// it as a top-level node.
func (m *Manager) BuildDocument(doc *syntax.Document) (NodeID, error) {
	if doc == nil {
		return tree.None, syntax.Errorf(syntax.Position{}, "Missing description document")
	}
	id, err := m.Build(doc.Root)
	if err != nil {
		return tree.None, err
	}
	return id, m.AddNode(id)
}
