package uistyle

import (
	"github.com/npillmayer/uistyle/layout"
	"github.com/npillmayer/uistyle/style"
)

// Layout styles and lays out all nodes for a viewport of size w×h.
//
// Style expressions may read the size of the parent, which is only known
// after layout. Layout therefore repeats updating and laying out nodes
// until no geometry a rule depends upon changes any more, but at most for
// the configured number of passes. If the geometry does not settle,
// Layout returns ErrNoConvergence; the result of the last pass is kept.
//
// changed tells if anything was re-styled or moved.
func (m *Manager) Layout(w, h int32) (changed bool, err error) {
	var flags layout.DirtyFlags
	sizeChanged := w != m.lastW || h != m.lastH
	if sizeChanged {
		m.lastW, m.lastH = w, h
		flags = layout.Size
	}
	root := m.node(m.root)
	root.drawRect = style.Rect{Width: w, Height: h}
	root.doneLayout = true
	chain := m.chainOf(root, nil)
	for pass := 1; pass <= m.maxPasses; pass++ {
		var passFlags layout.DirtyFlags
		for _, ch := range m.nodes.Children(m.root) {
			passFlags |= m.update(ch, chain, m.rootEngine, m.dirty, sizeChanged, flags)
		}
		m.dirty = false
		restyle, moved := false, false
		for _, ch := range m.nodes.Children(m.root) {
			r, mv := m.layoutNode(ch, m.rootEngine)
			restyle, moved = restyle || r, moved || mv
		}
		changed = changed || moved || !passFlags.IsEmpty()
		if !restyle {
			tracer().Debugf("layout %d×%d settled after %d passes", w, h, pass)
			return changed, nil
		}
		changed = true
		sizeChanged, flags = false, 0
	}
	tracer().Errorf("layout %d×%d did not settle within %d passes", w, h, m.maxPasses)
	return changed, ErrNoConvergence
}

// layoutNode positions a node and its subtree. restyle reports nodes which
// need to be re-styled because the size of their parent changed.
func (m *Manager) layoutNode(id NodeID, parentEngine layout.Engine) (restyle, moved bool) {
	n := m.node(id)
	n.doneLayout = true
	children := m.nodes.Children(id)
	rect := parentEngine.DoLayout(n, n.childData, n.drawRect, n.flags)
	rect = n.engine.StartLayout(n, rect, n.flags, m.childViews(children))
	n.drawRect = rect
	for _, ch := range children {
		r, mv := m.layoutNode(ch, n.engine)
		restyle, moved = restyle || r, moved || mv
	}
	rect = n.engine.FinishLayout(n, n.drawRect, n.flags, m.childViews(children))
	rect = parentEngine.DoLayoutEnd(n, n.childData, rect, n.flags)
	n.drawRect = rect
	if rect != n.prevRect {
		moved = true
		for _, ch := range children {
			if c := m.node(ch); c.usesParentSize {
				c.propsChanged = true
				restyle = true
			}
		}
	}
	n.prevRect = rect
	return restyle, moved
}

func (m *Manager) childViews(ids []NodeID) []layout.Child {
	views := make([]layout.Child, len(ids))
	for i, id := range ids {
		c := m.node(id)
		views[i] = layout.Child{Node: c, Rect: c.drawRect, Flags: c.flags, Data: c.childData}
	}
	return views
}
