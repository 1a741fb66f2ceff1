/*
Package syntax defines the parsed form of the two input languages: node
description documents and style documents.

Parsers for the textual grammars live outside of this module. They hand
over the trees defined here. String literals are kept as written in the
source; escape sequences are resolved by Unescape when a literal is
converted to a value.

A description document

    panel(title="Hello") {
        button(id=1) {
            "Press me"
        }
    }

becomes a Document with an Element "panel" holding an Element "button",
which in turn holds a Text.

A style document holds rules. The matchers of a rule are listed from the
outermost ancestor to the target, just as written:

    panel(kind=k) > button {
        width = parent_width / 2,
        height = 20,
    }

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax
