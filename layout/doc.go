/*
Package layout defines the protocol between nodes and layout engines, and
implements the built-in engines "absolute" and "grid".

Every node owns a layout engine, which places the node's children. A parent's
engine may also keep data per child, e.g. the x and y position an absolute
layout reads from a child's styles. Per-child data is owned by the child
node, but typed and interpreted by the parent's engine only.

Layout runs in four phases per node:

    parent.DoLayout(node)        // parent places the node
    engine.StartLayout(node)     // node prepares to place its children
        … children, recursively …
    engine.FinishLayout(node)    // e.g. auto-size from the children
    parent.DoLayoutEnd(node)     // parent may correct the final rect

Engines are registered by name with a factory and the list of style keys
they consume.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'uistyle.layout'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.layout")
}
