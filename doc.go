/*
Package uistyle is a declarative UI styling engine.

A UI is described as a tree of named elements and text leaves carrying
properties. How the tree is styled and positioned is defined separately,
by style rules loaded from style documents. Rules select nodes by their
chain of ancestors and assign typed expressions to style keys. Layout
engines turn the resulting style values into rectangles.

Overview

A Manager owns the node tree, the loaded rules, the registered layout
engines and host functions. Each frame, the client calls Layout, which
repeats two passes over the tree until nothing changes any more:

    update  : match rules, evaluate expressions, collect dirty flags
    layout  : compute rectangles, using the nodes' layout engines

Only nodes whose properties, structure or matching rules changed are
re-evaluated. Expressions may refer to the size of the parent
(parent_width, parent_height). Those need the parent's rect of the
previous pass, which is why Layout iterates up to a fixed point.

Finally, Render walks the tree in document order and hands the resolved
geometry to a RenderVisitor.

Errors

Errors while loading style documents are returned to the caller, and the
document is not loaded. Errors while evaluating an expression never
abort a frame: the assignment is skipped, and a Diagnostic is reported.
Structural errors, e.g. attaching a node which already has a parent, are
returned by the tree operations.

Configuration

A Manager may be configured with a schuko.Configuration (see WithConfig).
Recognized keys are

    uistyle.layout.maxpasses      maximum number of passes per Layout call
    uistyle.diagnostics.silent    trace evaluation errors at debug level only

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package uistyle

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'uistyle.engine'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.engine")
}
