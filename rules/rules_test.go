package rules

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uistyle/style"
	"github.com/npillmayer/uistyle/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env map[string]bool

func (e env) StyleKey(name string) (style.Key, bool) {
	if !e[name] {
		return 0, false
	}
	return style.Intern(name), true
}

func (e env) Function(name string) (style.Key, bool) {
	return 0, false
}

var testEnv = env{"width": true, "height": true}

func el(name string, props ...syntax.Property) syntax.Matcher {
	return syntax.Matcher{Name: name, Properties: props}
}

func prop(key string, lit syntax.Literal) syntax.Property {
	return syntax.Property{Key: key, Value: lit}
}

func rule(styles []syntax.Style, matchers ...syntax.Matcher) *syntax.Rule {
	return &syntax.Rule{Matchers: matchers, Styles: styles}
}

func width(e syntax.Expr) []syntax.Style {
	return []syntax.Style{{Key: "width", Expr: e}}
}

func node(name string, parent *style.NodeChain, props style.Properties) *style.NodeChain {
	return &style.NodeChain{Name: name, Parent: parent, Properties: props}
}

func TestChainExactness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.rules")
	defer teardown()
	//
	ix := NewIndex()
	doc := &syntax.StyleDocument{Rules: []*syntax.Rule{
		rule(width(syntax.Int(1)), el("a"), el("b")),
	}}
	require.NoError(t, ix.Load("doc", doc, testEnv))
	//
	a := node("a", nil, nil)
	direct := node("b", a, nil)
	nested := node("b", node("x", a, nil), nil)
	assert.Len(t, ix.PossibleMatches(direct), 1)
	assert.Len(t, ix.PossibleMatches(nested), 0, "intervening element must prune the rule")
	r := ix.PossibleMatches(direct)[0]
	assert.True(t, r.Test(direct))
	assert.False(t, r.Test(nested))
	assert.Equal(t, "a > b", r.Selector())
}

func TestCandidatesSortedByID(t *testing.T) {
	ix := NewIndex()
	doc := &syntax.StyleDocument{Rules: []*syntax.Rule{
		rule(width(syntax.Int(1)), el("panel"), el("box")),
		rule(width(syntax.Int(2)), el("box")),
		rule(width(syntax.Int(3)), el("root"), el("panel"), el("box")),
	}}
	require.NoError(t, ix.Load("doc", doc, testEnv))
	c := node("box", node("panel", node("root", nil, nil), nil), nil)
	cands := ix.PossibleMatches(c)
	require.Len(t, cands, 3)
	for i := 1; i < len(cands); i++ {
		assert.Less(t, cands[i-1].ID, cands[i].ID)
	}
	sel := Select(cands, c)
	assert.Equal(t, uint64(3), sel[0].ID, "highest id first")
}

func TestConstraints(t *testing.T) {
	ix := NewIndex()
	doc := &syntax.StyleDocument{Rules: []*syntax.Rule{
		rule(width(syntax.Var("w")), el("box", prop("size", syntax.VarLit("w")))),
		rule(width(syntax.Int(0)), el("box", prop("mode", syntax.IntLit(2)))),
		rule(width(syntax.Int(0)), el("box", prop("title", syntax.StringLit("hi")))),
	}}
	require.NoError(t, ix.Load("doc", doc, testEnv))
	var bound, numeric, text *Rule
	ix.Walk(func(r *Rule) {
		switch r.ID {
		case 1:
			bound = r
		case 2:
			numeric = r
		case 3:
			text = r
		}
	})
	assert.True(t, bound.Test(node("box", nil, style.Properties{"size": style.Str("any")})))
	assert.False(t, bound.Test(node("box", nil, nil)), "bound property must exist")
	assert.True(t, numeric.Test(node("box", nil, style.Properties{"mode": style.Flt(2.0)})),
		"integer constraint matches numerically equal float")
	assert.False(t, numeric.Test(node("box", nil, style.Properties{"mode": style.Int(3)})))
	assert.True(t, text.Test(node("box", nil, style.Properties{"title": style.Str("hi")})))
	assert.False(t, text.Test(&style.NodeChain{Kind: style.TextNode}))
}

func TestTextMatcher(t *testing.T) {
	ix := NewIndex()
	doc := &syntax.StyleDocument{Rules: []*syntax.Rule{
		rule(width(syntax.Int(1)), el("label"), syntax.Matcher{Text: true}),
	}}
	require.NoError(t, ix.Load("doc", doc, testEnv))
	txt := &style.NodeChain{Kind: style.TextNode, Parent: node("label", nil, nil)}
	cands := ix.PossibleMatches(txt)
	require.Len(t, cands, 1)
	assert.True(t, cands[0].Test(txt))
}

func TestRemoveDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.rules")
	defer teardown()
	//
	ix := NewIndex()
	require.NoError(t, ix.Load("one", &syntax.StyleDocument{Rules: []*syntax.Rule{
		rule(width(syntax.Int(1)), el("a"), el("b")),
		rule(width(syntax.Int(1)), el("b")),
	}}, testEnv))
	require.NoError(t, ix.Load("two", &syntax.StyleDocument{Rules: []*syntax.Rule{
		rule(width(syntax.Int(2)), el("b")),
	}}, testEnv))
	assert.Equal(t, 3, ix.Len())
	assert.Equal(t, 2, ix.RemoveDocument("one"))
	assert.Equal(t, 1, ix.Len())
	assert.False(t, ix.HasDocument("one"))
	_, ok := ix.root.next[trieKey{name: "b"}].next[trieKey{name: "a"}]
	assert.False(t, ok, "empty branch should be pruned")
	assert.Equal(t, 0, ix.RemoveDocument("one"))
}

func TestLoadIsAtomic(t *testing.T) {
	ix := NewIndex()
	require.NoError(t, ix.Load("base", &syntax.StyleDocument{Rules: []*syntax.Rule{
		rule(width(syntax.Int(1)), el("b")),
	}}, testEnv))
	bad := &syntax.StyleDocument{Rules: []*syntax.Rule{
		rule(width(syntax.Int(2)), el("b")),
		rule([]syntax.Style{{Key: "colour", Expr: syntax.Int(1), Pos: syntax.Position{Line: 2, Column: 5}}}, el("b")),
	}}
	err := ix.Load("bad", bad, testEnv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2:5")
	assert.Equal(t, 1, ix.Len(), "failed load must not leave rules behind")
	//
	err = ix.Load("bad2", &syntax.StyleDocument{Rules: []*syntax.Rule{
		rule(width(syntax.Var("undefined")), el("b")),
	}}, testEnv)
	assert.Error(t, err)
}

func TestReloadReplaces(t *testing.T) {
	ix := NewIndex()
	doc := &syntax.StyleDocument{Rules: []*syntax.Rule{rule(width(syntax.Int(1)), el("b"))}}
	require.NoError(t, ix.Load("d", doc, testEnv))
	require.NoError(t, ix.Load("d", doc, testEnv))
	assert.Equal(t, 1, ix.Len())
	c := node("b", nil, nil)
	assert.Equal(t, uint64(2), ix.PossibleMatches(c)[0].ID)
}

func TestUsesParentSize(t *testing.T) {
	r, err := Compile(rule(width(syntax.Binary(syntax.OpDiv, syntax.Var("parent_width"), syntax.Int(2))),
		el("child")), "d", testEnv)
	require.NoError(t, err)
	assert.True(t, r.UsesParentSize)
	assert.Equal(t, []style.Key{style.Intern("width")}, r.Keys())
}
