package tree

// Walk visits the sub-tree under id depth first, parents before children.
// If visit returns false, the children of that node are skipped.
func (t *Tree[T]) Walk(id ID, visit func(id ID, depth int) bool) {
	t.walk(id, 0, visit)
}

func (t *Tree[T]) walk(id ID, depth int, visit func(ID, int) bool) {
	n := t.get(id)
	if n == nil || !visit(id, depth) {
		return
	}
	for _, ch := range n.children {
		t.walk(ch, depth+1, visit)
	}
}

// Traverse visits the sub-tree under id in document order, calling enter
// before and leave after the children of a node.
func (t *Tree[T]) Traverse(id ID, enter, leave func(ID)) {
	n := t.get(id)
	if n == nil {
		return
	}
	if enter != nil {
		enter(id)
	}
	for _, ch := range n.children {
		t.Traverse(ch, enter, leave)
	}
	if leave != nil {
		leave(id)
	}
}

// Ancestors returns the parent of id, its grandparent, and so on up to the
// root of its sub-tree.
func (t *Tree[T]) Ancestors(id ID) []ID {
	var anc []ID
	for p := t.Parent(id); !p.IsNone(); p = t.Parent(p) {
		anc = append(anc, p)
	}
	return anc
}
