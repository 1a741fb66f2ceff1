/*
Package style holds the value model of the styling engine: scalar values,
interned property keys, property maps, rectangles and node chains.

Values

A Value is a closed union of Boolean, Integer (int32), Float (float64),
String and an opaque extension payload. There is no implicit numeric
coercion; conversions are explicit (see AsInt, AsFloat).

Keys

Style property names are interned into a process-wide symbol table.
Keys compare by slot, not by content. Layout engines and extensions
intern their property names once, usually during package initialization.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'uistyle.style'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.style")
}
