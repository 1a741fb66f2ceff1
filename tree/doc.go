/*
Package tree implements an arena of mutable tree nodes.

Nodes carry a payload and are addressed by generation-checked IDs.
Parent links are plain IDs, so there are no ownership cycles and a
sub-tree may be moved by re-attaching its root. Tree operations are not
concurrency-safe; a tree is owned by a single goroutine.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree
