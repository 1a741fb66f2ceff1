package layout

import "strings"

// DirtyFlags records which categories of a node's state changed.
type DirtyFlags uint32

// Core categories.
const (
	Position DirtyFlags = 1 << iota
	Size
	Scroll
	Layout
	Text
	Children
)

// Bits reserved for private use by layout engines.
const (
	Layout1 DirtyFlags = 1 << (27 - iota)
	Layout2
	Layout3
	Layout4
)

// Bits reserved for private use by host extensions.
const (
	Ext1 DirtyFlags = 1 << (31 - iota)
	Ext2
	Ext3
	Ext4
)

// Groups of reserved bits.
const (
	LayoutAll = Layout1 | Layout2 | Layout3 | Layout4
	ExtAll    = Ext1 | Ext2 | Ext3 | Ext4
)

// Has is true if any of the bits of g are set in f.
func (f DirtyFlags) Has(g DirtyFlags) bool {
	return f&g != 0
}

// IsEmpty is true if no bit is set.
func (f DirtyFlags) IsEmpty() bool {
	return f == 0
}

var flagNames = []struct {
	f    DirtyFlags
	name string
}{
	{Position, "POSITION"}, {Size, "SIZE"}, {Scroll, "SCROLL"}, {Layout, "LAYOUT"},
	{Text, "TEXT"}, {Children, "CHILDREN"},
	{Layout1, "LAYOUT_1"}, {Layout2, "LAYOUT_2"}, {Layout3, "LAYOUT_3"}, {Layout4, "LAYOUT_4"},
	{Ext1, "EXT_1"}, {Ext2, "EXT_2"}, {Ext3, "EXT_3"}, {Ext4, "EXT_4"},
}

func (f DirtyFlags) String() string {
	if f == 0 {
		return "{}"
	}
	var names []string
	for _, fn := range flagNames {
		if f&fn.f != 0 {
			names = append(names, fn.name)
		}
	}
	return "{" + strings.Join(names, "|") + "}"
}
