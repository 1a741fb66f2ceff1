package uistyle

import (
	"github.com/npillmayer/uistyle/expr"
	"github.com/npillmayer/uistyle/layout"
	"github.com/npillmayer/uistyle/rules"
	"github.com/npillmayer/uistyle/style"
)

// ruleResolver hands the values of a single matching rule to the
// consumers of style keys. Keys already set by a rule of higher precedence
// are withheld.
type ruleResolver struct {
	m     *Manager
	id    NodeID
	chain *style.NodeChain
	rule  *rules.Rule
	used  style.KeySet // keys set by rules of higher precedence
	set   style.KeySet // keys set by rule
}

func (r *ruleResolver) Eval(key style.Key) (style.Value, bool) {
	if r.used.Has(key) {
		return style.Value{}, false
	}
	e, ok := r.rule.Style(key)
	if !ok {
		return style.Value{}, false
	}
	v, err := e.Eval(&expr.Context{Chain: r.chain, Funcs: r.m.funcs})
	if err != nil {
		r.m.report(Diagnostic{Node: r.id, Rule: r.rule, Key: key, Err: err})
		return style.Value{}, false
	}
	r.set.Add(key)
	return v, true
}

var _ layout.Resolver = &ruleResolver{}

func (m *Manager) chainOf(n *nodeData, parent *style.NodeChain) *style.NodeChain {
	return &style.NodeChain{
		Kind:       n.kind,
		Name:       n.name,
		Rect:       n.drawRect,
		Properties: n.props,
		Parent:     parent,
	}
}

// update re-styles a node and its subtree as far as needed and returns the
// node's dirty flags for this pass.
func (m *Manager) update(id NodeID, parent *style.NodeChain, parentEngine layout.Engine,
	stylesUpdated, parentDirty bool, parentFlags layout.DirtyFlags) layout.DirtyFlags {
	//
	n := m.node(id)
	propsDirty, rulesDirty := n.propsChanged, n.rulesDirty
	n.propsChanged, n.rulesDirty = false, false
	n.flags = 0
	if n.textChanged {
		n.flags |= layout.Text
		n.textChanged = false
	}
	if rulesDirty {
		n.flags |= layout.Children
	}
	if n.dataOwner != parentEngine.Name() {
		n.childData = parentEngine.NewChildData()
		n.dataOwner = parentEngine.Name()
		propsDirty = true
	}
	chain := m.chainOf(n, parent)
	if stylesUpdated || rulesDirty {
		stylesUpdated, parentDirty = true, true
		n.candidates = m.index.PossibleMatches(chain)
	}
	if parentDirty || propsDirty {
		parentDirty = true
		m.restyle(id, n, chain, parentEngine)
	}
	n.flags |= n.engine.CheckParentFlags(parentFlags)
	var childFlags layout.DirtyFlags
	for _, ch := range m.nodes.Children(id) {
		childFlags |= m.update(ch, chain, n.engine, stylesUpdated, parentDirty, n.flags)
	}
	n.flags |= n.engine.CheckChildFlags(childFlags)
	n.ext.CheckFlags(n.flags)
	return n.flags
}

// restyle applies the matching rules to a node, highest precedence first,
// and reverts everything no rule set.
func (m *Manager) restyle(id NodeID, n *nodeData, chain *style.NodeChain, parentEngine layout.Engine) {
	matched := rules.Select(n.candidates, chain)
	n.usesParentSize = false
	for _, r := range matched {
		n.usesParentSize = n.usesParentSize || r.UsesParentSize
	}
	used := style.KeySet{}
	m.selectEngine(id, n, chain, matched, used)
	res := &ruleResolver{m: m, id: id, chain: chain, used: used, set: style.KeySet{}}
	for _, r := range matched {
		res.rule = r
		if v, ok := res.Eval(KeyScrollX); ok {
			n.flags |= setScroll(&n.scrollX, v)
		}
		if v, ok := res.Eval(KeyScrollY); ok {
			n.flags |= setScroll(&n.scrollY, v)
		}
		if v, ok := res.Eval(KeyClipOverflow); ok {
			n.clip, _ = v.AsBool()
		}
		n.flags |= n.ext.UpdateData(res)
		n.flags |= n.engine.UpdateData(res)
		n.flags |= parentEngine.UpdateChildData(res, n.childData)
		for k := range res.set {
			used.Add(k)
		}
		res.set.Clear()
	}
	if !used.Has(KeyClipOverflow) {
		n.clip = false
	}
	if !used.Has(KeyScrollX) {
		n.flags |= setScroll(&n.scrollX, style.Flt(0))
	}
	if !used.Has(KeyScrollY) {
		n.flags |= setScroll(&n.scrollY, style.Flt(0))
	}
	n.flags |= n.ext.ResetUnsetData(used)
	n.flags |= n.engine.ResetUnsetData(used)
	n.flags |= parentEngine.ResetUnsetChildData(used, n.childData)
	tracer().Debugf("styled %s with %d rules: %s", chain, len(matched), n.flags)
}

// selectEngine resolves the layout key and switches the node's layout
// engine if required. Nodes without a layout rule use the absolute layout.
func (m *Manager) selectEngine(id NodeID, n *nodeData, chain *style.NodeChain, matched []*rules.Rule, used style.KeySet) {
	name := layout.AbsoluteName
	res := &ruleResolver{m: m, id: id, chain: chain, used: used, set: style.KeySet{}}
	for _, r := range matched {
		res.rule = r
		if v, ok := res.Eval(KeyLayout); ok {
			if s, isStr := v.AsString(); isStr {
				name = s
			}
			used.Add(KeyLayout)
			break
		}
	}
	if name == n.engine.Name() {
		return
	}
	engine, err := m.engines.New(name)
	if err != nil {
		tracer().Errorf("node %s keeps layout %q: %v", chain, n.engine.Name(), err)
		return
	}
	tracer().Debugf("node %s switches layout %q -> %q", chain, n.engine.Name(), name)
	n.engine = engine
	n.flags |= layout.Position | layout.Size | layout.Layout
}

func setScroll(field *float64, v style.Value) layout.DirtyFlags {
	f, _ := v.AsFloat()
	if *field == f {
		return 0
	}
	*field = f
	return layout.Scroll
}
