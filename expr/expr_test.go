package expr

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uistyle/style"
	"github.com/npillmayer/uistyle/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain() *style.NodeChain {
	root := &style.NodeChain{
		Name:       "root",
		Rect:       style.Rect{Width: 100, Height: 40},
		Properties: style.Properties{"offset": style.Int(5)},
	}
	return &style.NodeChain{
		Name:       "box",
		Parent:     root,
		Properties: style.Properties{"w": style.Int(7), "label": style.Str("ok")},
	}
}

func compile(t *testing.T, c *Compiler, e syntax.Expr) Expr {
	x, err := c.Compile(e)
	require.NoError(t, err)
	return x
}

func TestArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.expr")
	defer teardown()
	//
	c := &Compiler{}
	cases := []struct {
		e    syntax.Expr
		want style.Value
	}{
		{syntax.Binary(syntax.OpAdd, syntax.Int(2), syntax.Int(3)), style.Int(5)},
		{syntax.Binary(syntax.OpDiv, syntax.Int(7), syntax.Int(2)), style.Int(3)},
		{syntax.Binary(syntax.OpRem, syntax.Float(7.5), syntax.Float(2)), style.Flt(1.5)},
		{syntax.Binary(syntax.OpAdd, syntax.String("a"), syntax.String("b")), style.Str("ab")},
		{syntax.Unary(syntax.OpNeg, syntax.Int(4)), style.Int(-4)},
		{syntax.Unary(syntax.OpIntToFloat, syntax.Int(4)), style.Flt(4)},
		{syntax.Unary(syntax.OpFloatToInt, syntax.Float(4.7)), style.Int(4)},
		{syntax.Binary(syntax.OpXor, syntax.Bool(true), syntax.Bool(false)), style.Bool(true)},
		{syntax.Binary(syntax.OpMul, syntax.Int(2147483647), syntax.Int(2)), style.Int(-2)},
	}
	for i, tc := range cases {
		v, err := Eval(compile(t, c, tc.e), nil, chain())
		require.NoError(t, err, "case %d", i)
		if !v.Equal(tc.want) {
			t.Errorf("case %d: expected %v, is %v", i, tc.want, v)
		}
	}
}

func TestComparisons(t *testing.T) {
	c := &Compiler{}
	cases := []struct {
		e    syntax.Expr
		want bool
	}{
		{syntax.Binary(syntax.OpLess, syntax.Int(2), syntax.Int(3)), true},
		{syntax.Binary(syntax.OpGreaterEqual, syntax.Float(2), syntax.Float(3)), false},
		{syntax.Binary(syntax.OpLess, syntax.Bool(false), syntax.Bool(true)), true},
		{syntax.Binary(syntax.OpEqual, syntax.String("x"), syntax.String("x")), true},
		{syntax.Binary(syntax.OpNotEqual, syntax.Int(1), syntax.Int(1)), false},
		{syntax.Binary(syntax.OpLessEqual, syntax.String("a"), syntax.String("b")), true},
	}
	for i, tc := range cases {
		v, err := Eval(compile(t, c, tc.e), nil, chain())
		require.NoError(t, err, "case %d", i)
		b, ok := v.AsBool()
		assert.True(t, ok)
		assert.Equal(t, tc.want, b, "case %d", i)
	}
}

func TestTypeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.expr")
	defer teardown()
	//
	c := &Compiler{}
	_, err := Eval(compile(t, c, syntax.Binary(syntax.OpAdd, syntax.Int(1), syntax.Float(1))), nil, chain())
	var tserr *IncompatibleTypesError
	require.True(t, errors.As(err, &tserr))
	assert.Equal(t, "+", tserr.Op)
	assert.Equal(t, "integer", tserr.Left)
	assert.Equal(t, "float", tserr.Right)
	//
	_, err = Eval(compile(t, c, syntax.Binary(syntax.OpEqual, syntax.Int(1), syntax.Float(1))), nil, chain())
	assert.True(t, errors.As(err, &tserr), "mixed equality is a type error")
	//
	_, err = Eval(compile(t, c, syntax.Unary(syntax.OpNot, syntax.Int(1))), nil, chain())
	var terr *IncompatibleTypeError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, "integer", terr.Type)
	//
	_, err = Eval(compile(t, c, syntax.Binary(syntax.OpDiv, syntax.Int(1), syntax.Int(0))), nil, chain())
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestVariables(t *testing.T) {
	c := &Compiler{Bindings: map[string]Binding{
		"width":  {Depth: 0, Property: "w"},
		"offset": {Depth: 1, Property: "offset"},
		"ghost":  {Depth: 0, Property: "missing"},
	}}
	v, err := Eval(compile(t, c, syntax.Binary(syntax.OpAdd, syntax.Var("width"), syntax.Var("offset"))), nil, chain())
	require.NoError(t, err)
	assert.True(t, v.Equal(style.Int(12)))
	assert.False(t, c.UsesParentSize())
	//
	_, err = Eval(compile(t, c, syntax.Var("ghost")), nil, chain())
	var uerr *UnknownVariableError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "missing", uerr.Name)
	//
	_, err = c.Compile(syntax.Var("nowhere"))
	var serr *syntax.Error
	require.True(t, errors.As(err, &serr))
	assert.Contains(t, serr.Msg, "Unknown variable")
}

func TestParentRect(t *testing.T) {
	c := &Compiler{}
	e := compile(t, c, syntax.Binary(syntax.OpDiv, syntax.Var(ParentWidth), syntax.Int(2)))
	assert.True(t, c.UsesParentSize())
	v, err := Eval(e, nil, chain())
	require.NoError(t, err)
	assert.True(t, v.Equal(style.Int(50)))
	//
	_, err = Eval(e, nil, chain().Parent)
	assert.ErrorIs(t, err, ErrNoParent)
}

func TestLazyArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.expr")
	defer teardown()
	//
	first := style.Intern("first")
	addTwo := style.Intern("add_two")
	funcs := Funcs{
		first: func(args *Args) (style.Value, error) {
			return args.Next("x")
		},
		addTwo: func(args *Args) (style.Value, error) {
			v, err := args.Next("x")
			if err != nil {
				return v, err
			}
			i, ok := v.AsInt()
			if !ok {
				return v, Errorf("add_two expects a number, got %s", v.TypeName())
			}
			return style.Int(i + 2), nil
		},
	}
	c := &Compiler{Functions: func(name string) (style.Key, bool) {
		k, ok := style.Lookup(name)
		_, known := funcs[k]
		return k, ok && known
	}}
	// second argument would fail, but is never pulled
	e := compile(t, c, syntax.Call("first", syntax.Int(1), syntax.Var(ParentHeight)))
	v, err := Eval(e, funcs, chain().Parent)
	require.NoError(t, err)
	assert.True(t, v.Equal(style.Int(1)))
	//
	_, err = Eval(compile(t, c, syntax.Call("add_two")), funcs, chain())
	var merr *MissingParameterError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, 0, merr.Position)
	assert.Equal(t, "x", merr.Name)
	//
	_, err = Eval(compile(t, c, syntax.Call("add_two", syntax.String("s"))), funcs, chain())
	var cerr *CustomError
	assert.True(t, errors.As(err, &cerr))
	//
	_, err = c.Compile(syntax.Call("no_such_function"))
	assert.Error(t, err)
}

func TestArgsDirect(t *testing.T) {
	args := NewArgs(nil, chain(), &Literal{Value: style.Int(1)}, &Literal{Value: style.Int(2)})
	assert.Equal(t, 2, args.Len())
	assert.True(t, args.Skip())
	v, err := args.Next("second")
	require.NoError(t, err)
	assert.True(t, v.Equal(style.Int(2)))
	assert.Equal(t, 0, args.Remaining())
	assert.False(t, args.Skip())
}
