/*
Package dbg implements helpers to inspect the node tree of a style manager.

ToGraphViz writes a diagram of the tree in GraphViz (DOT) format, with
the resolved geometry and layout engine of every node. Dump renders the
same information as indented text, which is handy in test logs.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dbg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uistyle.dbg'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.dbg")
}
