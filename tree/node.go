package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

/*
We manage a tree of mutable nodes, stored in an arena. Nodes are addressed by
IDs, which carry the arena slot and a generation count. A slot is re-used
after its node has been released; IDs of released nodes are detected as
stale by their generation.

Parents are stored as IDs, children as slices of IDs. There are no pointers
between nodes.
*/

// Errors for structural tree operations.
var (
	ErrInvalidNode = errors.New("invalid or released tree node")
	ErrHasParent   = errors.New("node is already attached to a parent")
	ErrNotChild    = errors.New("node is not a child of this parent")
	ErrCycle       = errors.New("node may not become a descendant of itself")
)

// ID addresses a node of a Tree. The zero ID is None.
type ID struct {
	slot int32
	gen  uint32
}

// None is the ID of no node.
var None = ID{}

// IsNone is true for the zero ID.
func (id ID) IsNone() bool {
	return id.gen == 0
}

func (id ID) String() string {
	if id.IsNone() {
		return "#none"
	}
	return fmt.Sprintf("#%d.%d", id.slot, id.gen)
}

// node is an arena slot.
type node[T any] struct {
	gen      uint32
	live     bool
	parent   ID
	children []ID
	payload  T
}

// Tree is an arena of nodes carrying payloads of type T. A Tree may hold
// any number of disconnected sub-trees.
type Tree[T any] struct {
	slots []*node[T]
	free  []int32
	live  int
}

// New creates an empty tree arena.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// NewNode creates a detached node with a given payload.
func (t *Tree[T]) NewNode(payload T) ID {
	var n *node[T]
	var slot int32
	if l := len(t.free); l > 0 {
		slot = t.free[l-1]
		t.free = t.free[:l-1]
		n = t.slots[slot]
	} else {
		slot = int32(len(t.slots))
		n = &node[T]{}
		t.slots = append(t.slots, n)
	}
	n.gen++
	n.live = true
	n.parent = None
	n.children = n.children[:0]
	n.payload = payload
	t.live++
	return ID{slot: slot, gen: n.gen}
}

func (t *Tree[T]) get(id ID) *node[T] {
	if id.IsNone() || int(id.slot) >= len(t.slots) {
		return nil
	}
	n := t.slots[id.slot]
	if !n.live || n.gen != id.gen {
		return nil
	}
	return n
}

// Valid is true if id denotes a live node.
func (t *Tree[T]) Valid(id ID) bool {
	return t.get(id) != nil
}

// Payload returns the payload of a node.
func (t *Tree[T]) Payload(id ID) (T, bool) {
	if n := t.get(id); n != nil {
		return n.payload, true
	}
	var zero T
	return zero, false
}

// Len returns the number of live nodes.
func (t *Tree[T]) Len() int {
	return t.live
}

// AddChild appends ch to the children of parent. ch must be detached.
func (t *Tree[T]) AddChild(parent, ch ID) error {
	p, c, err := t.attachable(parent, ch)
	if err != nil {
		return err
	}
	p.children = append(p.children, ch)
	c.parent = parent
	return nil
}

// InsertChildAt inserts ch into the children of parent at position i,
// shifting children at later positions. Positions beyond the end append.
func (t *Tree[T]) InsertChildAt(parent ID, i int, ch ID) error {
	p, c, err := t.attachable(parent, ch)
	if err != nil {
		return err
	}
	if i < 0 {
		i = 0
	}
	if i >= len(p.children) {
		p.children = append(p.children, ch)
	} else {
		p.children = append(p.children, None)  // make room for one child
		copy(p.children[i+1:], p.children[i:]) // shift i+1..n
		p.children[i] = ch
	}
	c.parent = parent
	return nil
}

func (t *Tree[T]) attachable(parent, ch ID) (*node[T], *node[T], error) {
	p, c := t.get(parent), t.get(ch)
	if p == nil || c == nil {
		return nil, nil, ErrInvalidNode
	}
	if !c.parent.IsNone() {
		return nil, nil, ErrHasParent
	}
	for a := parent; !a.IsNone(); a = t.slots[a.slot].parent {
		if a == ch {
			return nil, nil, ErrCycle
		}
	}
	return p, c, nil
}

// RemoveChild detaches ch from parent.
func (t *Tree[T]) RemoveChild(parent, ch ID) error {
	p, c := t.get(parent), t.get(ch)
	if p == nil || c == nil {
		return ErrInvalidNode
	}
	if c.parent != parent {
		return ErrNotChild
	}
	for i, x := range p.children {
		if x == ch {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	c.parent = None
	return nil
}

// Isolate removes a node from its parent, if it has one.
func (t *Tree[T]) Isolate(id ID) error {
	n := t.get(id)
	if n == nil {
		return ErrInvalidNode
	}
	if n.parent.IsNone() {
		return nil
	}
	return t.RemoveChild(n.parent, id)
}

// Release isolates a node and frees it together with all of its
// descendants. It returns the number of nodes freed.
func (t *Tree[T]) Release(id ID) int {
	if err := t.Isolate(id); err != nil {
		return 0
	}
	return t.release(id)
}

func (t *Tree[T]) release(id ID) int {
	n := t.get(id)
	if n == nil {
		return 0
	}
	cnt := 1
	for _, ch := range n.children {
		cnt += t.release(ch)
	}
	var zero T
	n.live = false
	n.payload = zero
	n.parent = None
	n.children = n.children[:0]
	t.free = append(t.free, id.slot)
	t.live--
	return cnt
}

// Parent returns the parent of a node, or None.
func (t *Tree[T]) Parent(id ID) ID {
	if n := t.get(id); n != nil {
		return n.parent
	}
	return None
}

// ChildCount returns the number of children of a node.
func (t *Tree[T]) ChildCount(id ID) int {
	if n := t.get(id); n != nil {
		return len(n.children)
	}
	return 0
}

// Children returns a copy of the children of a node.
func (t *Tree[T]) Children(id ID) []ID {
	n := t.get(id)
	if n == nil || len(n.children) == 0 {
		return nil
	}
	chs := make([]ID, len(n.children))
	copy(chs, n.children)
	return chs
}

// IndexOfChild returns the position of ch within the children of its
// parent, or -1.
func (t *Tree[T]) IndexOfChild(parent, ch ID) int {
	if n := t.get(parent); n != nil {
		for i, x := range n.children {
			if x == ch {
				return i
			}
		}
	}
	return -1
}
