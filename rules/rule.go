package rules

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/uistyle/expr"
	"github.com/npillmayer/uistyle/style"
	"github.com/npillmayer/uistyle/syntax"
)

// Constraint is a requirement on a property of a matched node.
type Constraint struct {
	Property  string
	Value     style.Value // required value, unless MustExist
	MustExist bool        // property is bound to a variable; any value will do
}

func (c Constraint) accepts(props style.Properties) bool {
	v, ok := props.Get(c.Property)
	if !ok {
		return false
	}
	return c.MustExist || c.Value.NumericEqual(v)
}

// Matcher selects one node of a chain.
type Matcher struct {
	Kind        style.NodeKind
	Name        string
	Constraints []Constraint
}

func (m Matcher) key() trieKey {
	if m.Kind == style.TextNode {
		return trieKey{kind: style.TextNode}
	}
	return trieKey{kind: style.ElementNode, name: m.Name}
}

func (m Matcher) String() string {
	var b strings.Builder
	if m.Kind == style.TextNode {
		b.WriteString("@text")
	} else {
		b.WriteString(m.Name)
	}
	if len(m.Constraints) > 0 {
		cs := make([]string, len(m.Constraints))
		for i, c := range m.Constraints {
			if c.MustExist {
				cs[i] = c.Property
			} else {
				cs[i] = c.Property + "=" + c.Value.String()
			}
		}
		b.WriteString("(" + strings.Join(cs, ",") + ")")
	}
	return b.String()
}

// Rule is a compiled style rule.
type Rule struct {
	ID             uint64
	Document       string    // name of the style document the rule came from
	Matchers       []Matcher // 0 is the target node, 1 its parent, …
	Styles         map[style.Key]expr.Expr
	UsesParentSize bool // some expression reads parent_width or parent_height
	Pos            syntax.Position
	keys           []style.Key
}

// Test checks if the rule matches the node at the head of chain.
func (r *Rule) Test(chain *style.NodeChain) bool {
	c := chain
	for _, m := range r.Matchers {
		if c == nil {
			return false
		}
		if m.Kind != c.Kind || (m.Kind == style.ElementNode && m.Name != c.Name) {
			return false
		}
		for _, con := range m.Constraints {
			if !con.accepts(c.Properties) {
				return false
			}
		}
		c = c.Parent
	}
	return true
}

// Style returns the expression the rule assigns to key.
func (r *Rule) Style(key style.Key) (expr.Expr, bool) {
	e, ok := r.Styles[key]
	return e, ok
}

// Keys returns the style keys the rule assigns, in a stable order.
func (r *Rule) Keys() []style.Key {
	if r.keys == nil {
		r.keys = make([]style.Key, 0, len(r.Styles))
		for k := range r.Styles {
			r.keys = append(r.keys, k)
		}
		sort.Slice(r.keys, func(i, j int) bool { return r.keys[i] < r.keys[j] })
	}
	return r.keys
}

// Selector renders the matcher chain the way it is written, outermost first.
func (r *Rule) Selector() string {
	parts := make([]string, len(r.Matchers))
	for i, m := range r.Matchers {
		parts[len(parts)-1-i] = m.String()
	}
	return strings.Join(parts, " > ")
}

func (r *Rule) String() string {
	return fmt.Sprintf("#%d %s {%d styles}", r.ID, r.Selector(), len(r.Styles))
}

// Select filters candidates down to the rules matching chain.
// The result is ordered by precedence, highest ID first.
func Select(candidates []*Rule, chain *style.NodeChain) []*Rule {
	matched := make([]*Rule, 0, len(candidates))
	for i := len(candidates) - 1; i >= 0; i-- {
		if candidates[i].Test(chain) {
			matched = append(matched, candidates[i])
		}
	}
	return matched
}
