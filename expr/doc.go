/*
Package expr compiles and evaluates the expressions of style assignments.

Expressions are typed: values are Boolean, Integer, Float, String or an
extension payload, and operators never coerce between them. Integers and
floats are converted by explicit casts.

Expressions are compiled once, when a style document is loaded. Bare
identifiers are resolved at this point, either to properties bound by the
rule's matchers or to one of the pseudo-variables parent_width and
parent_height. Evaluation happens against a style.NodeChain, i.e. the
node currently styled plus its ancestors.

Host functions receive their arguments lazily (see Args). An argument which
is never pulled is never evaluated.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'uistyle.expr'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.expr")
}
