package syntax

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/uistyle/style"
)

// Position is a location in a source document. Lines and columns count
// from 1; a zero Position means "unknown".
type Position struct {
	Line, Column int
}

// IsKnown is false for the zero position.
func (p Position) IsKnown() bool {
	return p.Line > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Error is an error bound to a source position.
type Error struct {
	Pos Position
	Msg string
}

// Errorf creates a positioned error.
func Errorf(pos Position, format string, args ...interface{}) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Pos.IsKnown() {
		return e.Pos.String() + ": " + e.Msg
	}
	return e.Msg
}

// --- Literals ---------------------------------------------------------

// LitKind is the type of a literal.
type LitKind uint8

// Literal kinds. LitVariable only occurs in matcher properties of style
// rules, where it binds a property value to a name.
const (
	LitBool LitKind = iota
	LitInt
	LitFloat
	LitString
	LitVariable
)

// Literal is a constant or a variable binding.
type Literal struct {
	Kind  LitKind
	Bool  bool
	Int   int32
	Float float64
	Text  string // raw string content or variable name
	Pos   Position
}

// IsVariable is true for a variable binding.
func (l Literal) IsVariable() bool {
	return l.Kind == LitVariable
}

// Value converts a constant literal into a value. Strings are unescaped.
// A variable binding has no value.
func (l Literal) Value() (style.Value, bool) {
	switch l.Kind {
	case LitBool:
		return style.Bool(l.Bool), true
	case LitInt:
		return style.Int(l.Int), true
	case LitFloat:
		return style.Flt(l.Float), true
	case LitString:
		return style.Str(Unescape(l.Text)), true
	}
	return style.Value{}, false
}

// Property is a key/value pair of an element or of a matcher.
type Property struct {
	Key   string
	Value Literal
	Pos   Position
}

// Unescape resolves \t, \n and \r. Any other escaped character stands
// for itself.
func Unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var b strings.Builder
	special := false
	for _, c := range s {
		if special {
			switch c {
			case 't':
				b.WriteRune('\t')
			case 'n':
				b.WriteRune('\n')
			case 'r':
				b.WriteRune('\r')
			default:
				b.WriteRune(c)
			}
			special = false
			continue
		}
		if c == '\\' {
			special = true
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// --- Description documents --------------------------------------------

// Document is a parsed description document.
type Document struct {
	Root *Element
}

// Node is either an *Element or a *Text.
type Node interface {
	Position() Position
	isNode()
}

// Element is a named node with properties and children.
type Element struct {
	Name       string
	Properties []Property
	Nodes      []Node
	Pos        Position
}

// Text is a text leaf. Text is kept raw, as written.
type Text struct {
	Text       string
	Properties []Property
	Pos        Position
}

func (e *Element) Position() Position { return e.Pos }
func (t *Text) Position() Position    { return t.Pos }
func (*Element) isNode()              {}
func (*Text) isNode()                 {}

// --- Style documents --------------------------------------------------

// StyleDocument is a parsed style document.
type StyleDocument struct {
	Rules []*Rule
}

// Rule is a matcher chain plus style assignments. Matchers are ordered
// from the outermost ancestor to the target node.
type Rule struct {
	Matchers []Matcher
	Styles   []Style
	Pos      Position
}

// Matcher selects an element by name or a text leaf, optionally
// constrained by properties.
type Matcher struct {
	Text       bool
	Name       string
	Properties []Property
	Pos        Position
}

// Style assigns an expression to a style key.
type Style struct {
	Key  string
	Expr Expr
	Pos  Position
}
