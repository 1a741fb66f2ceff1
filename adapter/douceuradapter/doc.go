/*
Package douceuradapter reads style documents written in CSS syntax.

Stylesheets are parsed by douceur; selectors are validated by cascadia.
A selector is a chain of element types joined by the child combinator
'>', e.g.

    panel[width] > button[kind="ok"] { width: width / 2; char: "+" }

The type 'text' matches text nodes. An attribute test with a value
constrains a property; an attribute test without a value requires the
property to exist and binds its value to a variable of the same name.
Descendant, sibling, class and pseudo-class selectors are not supported.

Declaration names map to style keys with hyphens replaced by
underscores. Declaration values are expressions over literals, bound
variables, parent_width and parent_height, the operators + - * / % and
calls of registered functions. A value which is not a valid expression
is taken as a string. Declarations marked !important take precedence
over all other declarations of the stylesheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uistyle.adapter'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.adapter")
}
