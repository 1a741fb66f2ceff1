package expr

import (
	"fmt"
	"strings"

	"github.com/npillmayer/uistyle/style"
)

// Func is a host function callable from style expressions.
// It pulls its arguments from args on demand.
type Func func(args *Args) (style.Value, error)

// Funcs is the table of host functions, keyed by interned name.
type Funcs map[style.Key]Func

// Lookup finds a function by key.
func (f Funcs) Lookup(key style.Key) (Func, bool) {
	fn, ok := f[key]
	return fn, ok
}

// Call invokes a host function.
type Call struct {
	Key  style.Key
	Args []Expr
}

func (c *Call) Eval(ctx *Context) (style.Value, error) {
	fn, ok := ctx.Funcs.Lookup(c.Key)
	if !ok {
		return style.Value{}, Errorf("Unknown function %s", c.Key.Name())
	}
	return fn(&Args{ctx: ctx, exprs: c.Args})
}

func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Key.Name(), strings.Join(args, ", "))
}

// Args is the lazy argument list of a function call. Each call to Next
// evaluates one more argument expression.
type Args struct {
	ctx   *Context
	exprs []Expr
	pos   int
}

// NewArgs creates an argument list over expressions, to be evaluated for
// the node at the head of chain. It is useful for calling a Func directly.
func NewArgs(funcs Funcs, chain *style.NodeChain, exprs ...Expr) *Args {
	return &Args{ctx: &Context{Chain: chain, Funcs: funcs}, exprs: exprs}
}

// Next evaluates the next argument. name is used for error reporting only.
// Pulling past the last argument yields a MissingParameterError.
func (a *Args) Next(name string) (style.Value, error) {
	if a.pos >= len(a.exprs) {
		return style.Value{}, &MissingParameterError{Position: a.pos, Name: name}
	}
	e := a.exprs[a.pos]
	a.pos++
	return e.Eval(a.ctx)
}

// Skip steps over the next argument without evaluating it.
func (a *Args) Skip() bool {
	if a.pos >= len(a.exprs) {
		return false
	}
	a.pos++
	return true
}

// Len is the number of arguments given at the call site.
func (a *Args) Len() int {
	return len(a.exprs)
}

// Remaining is the number of arguments not yet pulled.
func (a *Args) Remaining() int {
	return len(a.exprs) - a.pos
}
