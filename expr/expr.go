package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/uistyle/style"
	"github.com/npillmayer/uistyle/syntax"
)

// Context is the environment an expression is evaluated in.
type Context struct {
	Chain *style.NodeChain // node currently styled
	Funcs Funcs            // host functions
}

// Expr is a compiled expression.
type Expr interface {
	Eval(ctx *Context) (style.Value, error)
	String() string
}

// Eval evaluates e for the node at the head of chain.
func Eval(e Expr, funcs Funcs, chain *style.NodeChain) (style.Value, error) {
	return e.Eval(&Context{Chain: chain, Funcs: funcs})
}

// ---- Leaves ----------------------------------------------------------

// Literal is a constant value.
type Literal struct {
	Value style.Value
}

func (l *Literal) Eval(*Context) (style.Value, error) {
	return l.Value, nil
}

func (l *Literal) String() string {
	return l.Value.String()
}

// Var reads a property of the styled node itself.
type Var struct {
	Name string
}

func (v *Var) Eval(ctx *Context) (style.Value, error) {
	if val, ok := ctx.Chain.Properties.Get(v.Name); ok {
		return val, nil
	}
	return style.Value{}, &UnknownVariableError{Name: v.Name}
}

func (v *Var) String() string {
	return v.Name
}

// AncestorVar reads a property of an ancestor, Depth levels up.
type AncestorVar struct {
	Depth int
	Name  string
}

func (v *AncestorVar) Eval(ctx *Context) (style.Value, error) {
	if a := ctx.Chain.Ancestor(v.Depth); a != nil {
		if val, ok := a.Properties.Get(v.Name); ok {
			return val, nil
		}
	}
	return style.Value{}, &UnknownVariableError{Name: v.Name}
}

func (v *AncestorVar) String() string {
	return fmt.Sprintf("%s(%d)", v.Name, v.Depth)
}

// ParentRect reads the width or height of the parent's current draw rect.
type ParentRect struct {
	Height bool
}

func (p *ParentRect) Eval(ctx *Context) (style.Value, error) {
	parent := ctx.Chain.Parent
	if parent == nil {
		return style.Value{}, ErrNoParent
	}
	if p.Height {
		return style.Int(parent.Rect.Height), nil
	}
	return style.Int(parent.Rect.Width), nil
}

func (p *ParentRect) String() string {
	if p.Height {
		return "parent_height"
	}
	return "parent_width"
}

// ---- Operators -------------------------------------------------------

// Unary applies a unary operator or a cast.
type Unary struct {
	Op syntax.UnaryOp
	X  Expr
}

func (u *Unary) Eval(ctx *Context) (style.Value, error) {
	v, err := u.X.Eval(ctx)
	if err != nil {
		return v, err
	}
	switch u.Op {
	case syntax.OpNeg:
		switch v.Kind() {
		case style.Integer:
			i, _ := v.AsInt()
			return style.Int(-i), nil
		case style.Float:
			f, _ := v.AsFloat()
			return style.Flt(-f), nil
		}
	case syntax.OpNot:
		if b, ok := v.AsBool(); ok {
			return style.Bool(!b), nil
		}
	case syntax.OpIntToFloat:
		if v.Kind() == style.Integer {
			f, _ := v.AsFloat()
			return style.Flt(f), nil
		}
	case syntax.OpFloatToInt:
		if v.Kind() == style.Float {
			i, _ := v.AsInt()
			return style.Int(i), nil
		}
	}
	return style.Value{}, &IncompatibleTypeError{Op: u.Op.String(), Type: v.TypeName()}
}

func (u *Unary) String() string {
	return fmt.Sprintf("%s(%s)", u.Op, u.X)
}

// Binary applies a binary operator. Both operands are always evaluated.
type Binary struct {
	Op   syntax.BinaryOp
	L, R Expr
}

func (b *Binary) Eval(ctx *Context) (style.Value, error) {
	l, err := b.L.Eval(ctx)
	if err != nil {
		return l, err
	}
	r, err := b.R.Eval(ctx)
	if err != nil {
		return r, err
	}
	switch b.Op {
	case syntax.OpAnd, syntax.OpOr, syntax.OpXor:
		return b.logical(l, r)
	case syntax.OpEqual, syntax.OpNotEqual:
		if l.Kind() != r.Kind() {
			return style.Value{}, b.mismatch(l, r)
		}
		return style.Bool(l.Equal(r) == (b.Op == syntax.OpEqual)), nil
	case syntax.OpLess, syntax.OpLessEqual, syntax.OpGreater, syntax.OpGreaterEqual:
		c, ok := compare(l, r)
		if !ok {
			return style.Value{}, b.mismatch(l, r)
		}
		return style.Bool(ordered(b.Op, c)), nil
	}
	return b.arithmetic(l, r)
}

func (b *Binary) logical(l, r style.Value) (style.Value, error) {
	x, ok1 := l.AsBool()
	y, ok2 := r.AsBool()
	if !ok1 || !ok2 {
		return style.Value{}, b.mismatch(l, r)
	}
	switch b.Op {
	case syntax.OpAnd:
		return style.Bool(x && y), nil
	case syntax.OpOr:
		return style.Bool(x || y), nil
	}
	return style.Bool(x != y), nil
}

func (b *Binary) arithmetic(l, r style.Value) (style.Value, error) {
	switch {
	case l.Kind() == style.Integer && r.Kind() == style.Integer:
		x, _ := l.AsInt()
		y, _ := r.AsInt()
		switch b.Op {
		case syntax.OpAdd:
			return style.Int(x + y), nil
		case syntax.OpSub:
			return style.Int(x - y), nil
		case syntax.OpMul:
			return style.Int(x * y), nil
		case syntax.OpDiv, syntax.OpRem:
			if y == 0 {
				return style.Value{}, ErrDivisionByZero
			}
			if b.Op == syntax.OpDiv {
				return style.Int(x / y), nil
			}
			return style.Int(x % y), nil
		}
	case l.Kind() == style.Float && r.Kind() == style.Float:
		x, _ := l.AsFloat()
		y, _ := r.AsFloat()
		switch b.Op {
		case syntax.OpAdd:
			return style.Flt(x + y), nil
		case syntax.OpSub:
			return style.Flt(x - y), nil
		case syntax.OpMul:
			return style.Flt(x * y), nil
		case syntax.OpDiv:
			return style.Flt(x / y), nil
		case syntax.OpRem:
			return style.Flt(math.Mod(x, y)), nil
		}
	case l.Kind() == style.String && r.Kind() == style.String && b.Op == syntax.OpAdd:
		x, _ := l.AsString()
		y, _ := r.AsString()
		return style.Str(x + y), nil
	}
	return style.Value{}, b.mismatch(l, r)
}

func (b *Binary) mismatch(l, r style.Value) error {
	return &IncompatibleTypesError{Op: b.Op.String(), Left: l.TypeName(), Right: r.TypeName()}
}

func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.L, b.Op, b.R)
}

// unordered is the comparison result involving a NaN.
const unordered = 2

// compare returns -1, 0 or 1 for operands of the same orderable kind.
func compare(l, r style.Value) (int, bool) {
	if l.Kind() != r.Kind() {
		return 0, false
	}
	switch l.Kind() {
	case style.Boolean:
		x, _ := l.AsBool()
		y, _ := r.AsBool()
		return cmpBool(x, y), true
	case style.Integer:
		x, _ := l.AsInt()
		y, _ := r.AsInt()
		return cmp(x < y, x > y), true
	case style.Float:
		x, _ := l.AsFloat()
		y, _ := r.AsFloat()
		if math.IsNaN(x) || math.IsNaN(y) {
			return unordered, true
		}
		return cmp(x < y, x > y), true
	case style.String:
		x, _ := l.AsString()
		y, _ := r.AsString()
		return strings.Compare(x, y), true
	}
	return 0, false
}

func cmpBool(x, y bool) int {
	return cmp(!x && y, x && !y)
}

func cmp(less, greater bool) int {
	if less {
		return -1
	} else if greater {
		return 1
	}
	return 0
}

func ordered(op syntax.BinaryOp, c int) bool {
	if c == unordered {
		return false
	}
	switch op {
	case syntax.OpLess:
		return c < 0
	case syntax.OpLessEqual:
		return c <= 0
	case syntax.OpGreater:
		return c > 0
	}
	return c >= 0
}
