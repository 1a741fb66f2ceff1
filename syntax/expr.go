package syntax

// Expr is a parsed expression of a style assignment.
type Expr interface {
	Position() Position
	isExpr()
}

// UnaryOp is an operator with a single operand. Casts count as unary
// operators.
type UnaryOp uint8

// Unary operators.
const (
	OpNeg UnaryOp = iota
	OpNot
	OpIntToFloat
	OpFloatToInt
)

var unaryNames = [...]string{"-", "!", "float", "int"}

func (op UnaryOp) String() string {
	if int(op) < len(unaryNames) {
		return unaryNames[op]
	}
	return "?"
}

// BinaryOp is an infix operator.
type BinaryOp uint8

// Binary operators.
const (
	OpAnd BinaryOp = iota
	OpOr
	OpXor
	OpEqual
	OpNotEqual
	OpLessEqual
	OpGreaterEqual
	OpLess
	OpGreater
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpRem
)

var binaryNames = [...]string{"&&", "||", "^", "==", "!=", "<=", ">=", "<", ">", "+", "-", "*", "/", "%"}

func (op BinaryOp) String() string {
	if int(op) < len(binaryNames) {
		return binaryNames[op]
	}
	return "?"
}

// LitExpr is a constant.
type LitExpr struct {
	Lit Literal
}

// Ident is a bare identifier, i.e. a variable reference.
type Ident struct {
	Name string
	Pos  Position
}

// UnaryExpr applies a unary operator.
type UnaryExpr struct {
	Op  UnaryOp
	X   Expr
	Pos Position
}

// BinaryExpr applies a binary operator.
type BinaryExpr struct {
	Op   BinaryOp
	L, R Expr
	Pos  Position
}

// CallExpr calls a host function.
type CallExpr struct {
	Func string
	Args []Expr
	Pos  Position
}

func (e *LitExpr) Position() Position    { return e.Lit.Pos }
func (e *Ident) Position() Position      { return e.Pos }
func (e *UnaryExpr) Position() Position  { return e.Pos }
func (e *BinaryExpr) Position() Position { return e.Pos }
func (e *CallExpr) Position() Position   { return e.Pos }

func (*LitExpr) isExpr()    {}
func (*Ident) isExpr()      {}
func (*UnaryExpr) isExpr()  {}
func (*BinaryExpr) isExpr() {}
func (*CallExpr) isExpr()   {}

// --- Construction helpers ---------------------------------------------

// Int creates an integer literal expression.
func Int(i int32) Expr { return &LitExpr{Lit: Literal{Kind: LitInt, Int: i}} }

// Float creates a float literal expression.
func Float(f float64) Expr { return &LitExpr{Lit: Literal{Kind: LitFloat, Float: f}} }

// Bool creates a boolean literal expression.
func Bool(b bool) Expr { return &LitExpr{Lit: Literal{Kind: LitBool, Bool: b}} }

// String creates a string literal expression from raw text.
func String(s string) Expr { return &LitExpr{Lit: Literal{Kind: LitString, Text: s}} }

// Var creates a variable reference.
func Var(name string) Expr { return &Ident{Name: name} }

// Binary creates a binary expression.
func Binary(op BinaryOp, l, r Expr) Expr { return &BinaryExpr{Op: op, L: l, R: r} }

// Unary creates a unary expression.
func Unary(op UnaryOp, x Expr) Expr { return &UnaryExpr{Op: op, X: x} }

// Call creates a function call.
func Call(name string, args ...Expr) Expr { return &CallExpr{Func: name, Args: args} }

// IntLit is a constant integer literal, e.g. for matcher properties.
func IntLit(i int32) Literal { return Literal{Kind: LitInt, Int: i} }

// StringLit is a constant string literal from raw text.
func StringLit(s string) Literal { return Literal{Kind: LitString, Text: s} }

// BoolLit is a constant boolean literal.
func BoolLit(b bool) Literal { return Literal{Kind: LitBool, Bool: b} }

// FloatLit is a constant float literal.
func FloatLit(f float64) Literal { return Literal{Kind: LitFloat, Float: f} }

// VarLit binds a matched property to a variable name.
func VarLit(name string) Literal { return Literal{Kind: LitVariable, Text: name} }
