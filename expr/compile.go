package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/uistyle/style"
	"github.com/npillmayer/uistyle/syntax"
)

// Binding maps a variable name to a property of a matched node.
type Binding struct {
	Depth    int    // 0 is the styled node, 1 its parent, …
	Property string // property name at that node
}

// Pseudo-variables.
const (
	ParentWidth  = "parent_width"
	ParentHeight = "parent_height"
)

// Compiler turns parsed expressions into evaluable ones.
type Compiler struct {
	Bindings  map[string]Binding
	Functions func(name string) (style.Key, bool)
	parentRef bool
}

// UsesParentSize is true if any expression compiled so far referenced
// parent_width or parent_height.
func (c *Compiler) UsesParentSize() bool {
	return c.parentRef
}

// Compile resolves identifiers and function names of e.
func (c *Compiler) Compile(e syntax.Expr) (Expr, error) {
	switch x := e.(type) {
	case *syntax.LitExpr:
		v, ok := x.Lit.Value()
		if !ok {
			return c.ident(x.Lit.Text, x.Lit.Pos)
		}
		return &Literal{Value: v}, nil
	case *syntax.Ident:
		return c.ident(x.Name, x.Pos)
	case *syntax.UnaryExpr:
		inner, err := c.Compile(x.X)
		if err != nil {
			return nil, err
		}
		return &Unary{Op: x.Op, X: inner}, nil
	case *syntax.BinaryExpr:
		l, err := c.Compile(x.L)
		if err != nil {
			return nil, err
		}
		r, err := c.Compile(x.R)
		if err != nil {
			return nil, err
		}
		return &Binary{Op: x.Op, L: l, R: r}, nil
	case *syntax.CallExpr:
		var key style.Key
		ok := false
		if c.Functions != nil {
			key, ok = c.Functions(x.Func)
		}
		if !ok {
			return nil, syntax.Errorf(x.Pos, "Unknown function %s", x.Func)
		}
		args := make([]Expr, len(x.Args))
		for i, a := range x.Args {
			arg, err := c.Compile(a)
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		return &Call{Key: key, Args: args}, nil
	case nil:
		return nil, syntax.Errorf(syntax.Position{}, "Missing expression")
	}
	return nil, syntax.Errorf(e.Position(), "Unsupported expression %T", e)
}

func (c *Compiler) ident(name string, pos syntax.Position) (Expr, error) {
	if b, ok := c.Bindings[name]; ok {
		if b.Depth == 0 {
			return &Var{Name: b.Property}, nil
		}
		return &AncestorVar{Depth: b.Depth, Name: b.Property}, nil
	}
	switch name {
	case ParentWidth:
		c.parentRef = true
		return &ParentRect{}, nil
	case ParentHeight:
		c.parentRef = true
		return &ParentRect{Height: true}, nil
	}
	tracer().Debugf("cannot resolve variable %q", name)
	return nil, syntax.Errorf(pos, "Unknown variable %s", name)
}
