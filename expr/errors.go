package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// ErrNoParent is returned when a parent rect is read at the root.
var ErrNoParent = errors.New("No parent")

// ErrDivisionByZero is returned for integer division or remainder by zero.
var ErrDivisionByZero = errors.New("division by zero")

// UnknownVariableError is returned if a variable is not a property of the
// node it refers to.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("Unknown variable: %s", e.Name)
}

// IncompatibleTypeError is returned if a unary operator cannot handle
// the type of its operand.
type IncompatibleTypeError struct {
	Op   string
	Type string
}

func (e *IncompatibleTypeError) Error() string {
	return fmt.Sprintf("Can't perform %s on %s", e.Op, e.Type)
}

// IncompatibleTypesError is returned if a binary operator cannot handle
// the types of its operands.
type IncompatibleTypesError struct {
	Op          string
	Left, Right string
}

func (e *IncompatibleTypesError) Error() string {
	return fmt.Sprintf("Can't perform %s %s %s", e.Left, e.Op, e.Right)
}

// MissingParameterError is returned when a function pulls more arguments
// than it was called with.
type MissingParameterError struct {
	Position int
	Name     string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("Missing parameter %q at position %d", e.Name, e.Position)
}

// CustomError carries a message of a host function.
type CustomError struct {
	Reason string
}

func (e *CustomError) Error() string {
	return e.Reason
}

// Errorf creates a CustomError. Host functions use it to report failures.
func Errorf(format string, args ...interface{}) error {
	return &CustomError{Reason: fmt.Sprintf(format, args...)}
}
