/*
Package maybe implements optional values.

Layout engines use optional values for style properties which may be left
unset, e.g. an absolute x position.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is either Just a value or Nothing.
type Maybe[T comparable] interface {
	Get() (T, bool)
	IsNothing() bool
	WithDefault(T) T
}

type maybe[T comparable] struct {
	value T
	tag   bool
}

// Just wraps a value.
func Just[T comparable](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T comparable]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Of is Just(x) if ok holds, Nothing otherwise.
func Of[T comparable](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Equal compares two optional values. A nil Maybe counts as Nothing.
func Equal[T comparable](a, b Maybe[T]) bool {
	var x, y T
	var okx, oky bool
	if a != nil {
		x, okx = a.Get()
	}
	if b != nil {
		y, oky = b.Get()
	}
	return okx == oky && (!okx || x == y)
}
