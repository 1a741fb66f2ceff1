package rules

import (
	"github.com/npillmayer/uistyle/expr"
	"github.com/npillmayer/uistyle/style"
	"github.com/npillmayer/uistyle/syntax"
)

// Env resolves names while compiling rules.
type Env interface {
	StyleKey(name string) (style.Key, bool) // keys rules may assign
	Function(name string) (style.Key, bool) // registered host functions
}

// Compile turns a parsed rule into a rule of document doc. The rule's ID
// is assigned when it is inserted into an Index.
func Compile(r *syntax.Rule, doc string, env Env) (*Rule, error) {
	if len(r.Matchers) == 0 {
		return nil, syntax.Errorf(r.Pos, "Rule without matchers")
	}
	rule := &Rule{
		Document: doc,
		Matchers: make([]Matcher, len(r.Matchers)),
		Styles:   make(map[style.Key]expr.Expr, len(r.Styles)),
		Pos:      r.Pos,
	}
	bindings := make(map[string]expr.Binding)
	for i := range r.Matchers {
		sm := r.Matchers[len(r.Matchers)-1-i]
		depth := i
		m := Matcher{Name: sm.Name}
		if sm.Text {
			m.Kind = style.TextNode
			m.Name = ""
		}
		for _, p := range sm.Properties {
			if p.Value.IsVariable() {
				bindings[p.Value.Text] = expr.Binding{Depth: depth, Property: p.Key}
				m.Constraints = append(m.Constraints, Constraint{Property: p.Key, MustExist: true})
				continue
			}
			v, _ := p.Value.Value()
			m.Constraints = append(m.Constraints, Constraint{Property: p.Key, Value: v})
		}
		rule.Matchers[i] = m
	}
	comp := &expr.Compiler{Bindings: bindings, Functions: env.Function}
	for _, s := range r.Styles {
		key, ok := env.StyleKey(s.Key)
		if !ok {
			return nil, syntax.Errorf(s.Pos, "Unknown style key %s", s.Key)
		}
		e, err := comp.Compile(s.Expr)
		if err != nil {
			return nil, err
		}
		rule.Styles[key] = e
	}
	rule.UsesParentSize = comp.UsesParentSize()
	return rule, nil
}

// Load compiles all rules of a style document and inserts them in
// document order. Either all rules are loaded or none; a document
// already loaded under the same name is replaced.
func (ix *Index) Load(name string, doc *syntax.StyleDocument, env Env) error {
	if doc == nil {
		return syntax.Errorf(syntax.Position{}, "Missing style document %q", name)
	}
	compiled := make([]*Rule, 0, len(doc.Rules))
	for _, r := range doc.Rules {
		rule, err := Compile(r, name, env)
		if err != nil {
			return err
		}
		compiled = append(compiled, rule)
	}
	ix.RemoveDocument(name)
	for _, r := range compiled {
		ix.Insert(r)
	}
	tracer().Infof("loaded %d rules from style document %q", len(compiled), name)
	return nil
}
