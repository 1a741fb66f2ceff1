package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
)

// Kind is the type tag of a Value.
type Kind uint8

// Kinds of values.
const (
	Boolean Kind = iota
	Integer
	Float
	String
	Extension
)

var kindNames = [...]string{"boolean", "integer", "float", "string", "extension value"}

// String returns the type name of a kind, as used in error messages.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ExtValue is a payload a host extension may store in a Value.
type ExtValue interface {
	Equal(other ExtValue) bool
	String() string
}

// Value is a scalar property value.
type Value struct {
	kind Kind
	b    bool
	i    int32
	f    float64
	s    string
	ext  ExtValue
}

// Bool creates a Boolean value.
func Bool(b bool) Value { return Value{kind: Boolean, b: b} }

// Int creates an Integer value.
func Int(i int32) Value { return Value{kind: Integer, i: i} }

// Flt creates a Float value.
func Flt(f float64) Value { return Value{kind: Float, f: f} }

// Str creates a String value.
func Str(s string) Value { return Value{kind: String, s: s} }

// Ext wraps an extension payload into a Value.
func Ext(x ExtValue) Value { return Value{kind: Extension, ext: x} }

// Kind returns the type tag of v.
func (v Value) Kind() Kind {
	return v.kind
}

// TypeName returns the name of v's type, e.g. "integer".
func (v Value) TypeName() string {
	return v.kind.String()
}

// Equal compares two values. Values of different kinds are never equal.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case Boolean:
		return v.b == w.b
	case Integer:
		return v.i == w.i
	case Float:
		return v.f == w.f
	case String:
		return v.s == w.s
	case Extension:
		if v.ext == nil || w.ext == nil {
			return v.ext == w.ext
		}
		return v.ext.Equal(w.ext)
	}
	return false
}

// NumericEqual is like Equal, but an Integer and a Float compare by numeric value.
func (v Value) NumericEqual(w Value) bool {
	switch {
	case v.kind == Integer && w.kind == Float:
		return float64(v.i) == w.f
	case v.kind == Float && w.kind == Integer:
		return v.f == float64(w.i)
	}
	return v.Equal(w)
}

// --- Conversions ------------------------------------------------------

// AsBool returns the boolean content of v.
func (v Value) AsBool() (bool, bool) {
	if v.kind == Boolean {
		return v.b, true
	}
	return false, false
}

// AsInt returns v as an int32. Floats are truncated.
func (v Value) AsInt() (int32, bool) {
	switch v.kind {
	case Integer:
		return v.i, true
	case Float:
		return int32(v.f), true
	}
	return 0, false
}

// AsFloat returns v as a float64. Integers are widened.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case Float:
		return v.f, true
	case Integer:
		return float64(v.i), true
	}
	return 0, false
}

// AsString returns the string content of v.
func (v Value) AsString() (string, bool) {
	if v.kind == String {
		return v.s, true
	}
	return "", false
}

// AsExt returns the extension payload of v.
func (v Value) AsExt() (ExtValue, bool) {
	if v.kind == Extension {
		return v.ext, true
	}
	return nil, false
}

func (v Value) String() string {
	switch v.kind {
	case Boolean:
		return strconv.FormatBool(v.b)
	case Integer:
		return strconv.FormatInt(int64(v.i), 10)
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case String:
		return strconv.Quote(v.s)
	case Extension:
		if v.ext == nil {
			return "<ext nil>"
		}
		return fmt.Sprintf("<ext %s>", v.ext.String())
	}
	return "<invalid>"
}
