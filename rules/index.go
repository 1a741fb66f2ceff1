package rules

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"

	"github.com/npillmayer/uistyle/style"
)

type trieKey struct {
	kind style.NodeKind
	name string
}

func chainKey(c *style.NodeChain) trieKey {
	if c.Kind == style.TextNode {
		return trieKey{kind: style.TextNode}
	}
	return trieKey{kind: style.ElementNode, name: c.Name}
}

type trieNode struct {
	next  map[trieKey]*trieNode
	rules []*Rule
}

func (n *trieNode) child(k trieKey, create bool) *trieNode {
	if ch, ok := n.next[k]; ok || !create {
		return ch
	}
	if n.next == nil {
		n.next = make(map[trieKey]*trieNode)
	}
	ch := &trieNode{}
	n.next[k] = ch
	return ch
}

// prune drops the rules of a document and reports whether n became empty.
func (n *trieNode) prune(doc string) (removed int, empty bool) {
	kept := n.rules[:0]
	for _, r := range n.rules {
		if r.Document == doc {
			removed++
		} else {
			kept = append(kept, r)
		}
	}
	for i := len(kept); i < len(n.rules); i++ {
		n.rules[i] = nil
	}
	n.rules = kept
	for k, ch := range n.next {
		cnt, chEmpty := ch.prune(doc)
		removed += cnt
		if chEmpty {
			delete(n.next, k)
		}
	}
	return removed, len(n.rules) == 0 && len(n.next) == 0
}

// Index is the trie of loaded rules.
type Index struct {
	root   trieNode
	nextID uint64
	count  int
	docs   map[string]int // rule count per document
}

// NewIndex creates an empty rule index.
func NewIndex() *Index {
	return &Index{docs: make(map[string]int)}
}

// Insert adds a rule under its reversed matcher chain. The rule's ID is
// overwritten with the next ID in load order.
func (ix *Index) Insert(r *Rule) {
	ix.nextID++
	r.ID = ix.nextID
	n := &ix.root
	for _, m := range r.Matchers {
		n = n.child(m.key(), true)
	}
	n.rules = append(n.rules, r)
	ix.count++
	ix.docs[r.Document]++
	tracer().Debugf("inserted rule %v", r)
}

// PossibleMatches collects all rules whose matcher kinds fit the chain.
// The result is sorted ascending by rule ID.
func (ix *Index) PossibleMatches(chain *style.NodeChain) []*Rule {
	var out []*Rule
	n := &ix.root
	for c := chain; c != nil; c = c.Parent {
		if n = n.child(chainKey(c), false); n == nil {
			break
		}
		out = append(out, n.rules...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RemoveDocument drops every rule loaded from the named document and
// returns how many were removed.
func (ix *Index) RemoveDocument(name string) int {
	if ix.docs[name] == 0 {
		return 0
	}
	removed, _ := ix.root.prune(name)
	ix.count -= removed
	delete(ix.docs, name)
	tracer().Debugf("removed %d rules of document %q", removed, name)
	return removed
}

// HasDocument is true if rules from the named document are loaded.
func (ix *Index) HasDocument(name string) bool {
	return ix.docs[name] > 0
}

// Len returns the number of rules in the index.
func (ix *Index) Len() int {
	return ix.count
}

// Walk calls f for every rule, in ascending ID order.
func (ix *Index) Walk(f func(*Rule)) {
	var all []*Rule
	var collect func(n *trieNode)
	collect = func(n *trieNode) {
		all = append(all, n.rules...)
		for _, ch := range n.next {
			collect(ch)
		}
	}
	collect(&ix.root)
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	for _, r := range all {
		f(r)
	}
}
