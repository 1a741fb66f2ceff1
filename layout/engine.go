package layout

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/uistyle/style"
)

// Resolver hands out the value a matching rule assigns to a style key.
// It returns false if the rule does not set the key, if a rule of higher
// precedence already did, or if the expression failed to evaluate.
type Resolver interface {
	Eval(key style.Key) (style.Value, bool)
}

// Node is what a layout engine gets to see of a node.
type Node interface {
	Name() string // element name, empty for text
	IsText() bool
	Text() string
	Ext() interface{} // extension data of the node
}

// Child is a child node during StartLayout and FinishLayout.
// Its data belongs to the engine the callback is invoked on.
type Child struct {
	Node
	Rect  style.Rect
	Flags DirtyFlags
	Data  ChildData
}

// ChildData is the per-child state of a layout engine. Owner is the name
// of the engine which created it.
type ChildData interface {
	Owner() string
}

// Engine is a layout algorithm, instantiated per node.
type Engine interface {
	Name() string

	// NewChildData creates the per-child state for a new child.
	NewChildData() ChildData

	// UpdateData consumes the node's own style keys from a matching rule.
	UpdateData(r Resolver) DirtyFlags
	// UpdateChildData consumes a child's per-child style keys from a
	// rule matching the child.
	UpdateChildData(r Resolver, data ChildData) DirtyFlags
	// ResetUnsetData reverts state for keys no rule set in this pass.
	ResetUnsetData(used style.KeySet) DirtyFlags
	// ResetUnsetChildData reverts per-child state for keys no rule set.
	ResetUnsetChildData(used style.KeySet, data ChildData) DirtyFlags

	// CheckParentFlags maps the flags of the parent to extra flags.
	CheckParentFlags(flags DirtyFlags) DirtyFlags
	// CheckChildFlags maps the combined flags of the children.
	CheckChildFlags(flags DirtyFlags) DirtyFlags

	StartLayout(node Node, current style.Rect, flags DirtyFlags, children []Child) style.Rect
	DoLayout(child Node, data ChildData, current style.Rect, flags DirtyFlags) style.Rect
	DoLayoutEnd(child Node, data ChildData, current style.Rect, flags DirtyFlags) style.Rect
	FinishLayout(node Node, current style.Rect, flags DirtyFlags, children []Child) style.Rect
}

// Base provides do-nothing defaults for all methods of Engine except Name.
// Engines embed it and override what they need.
type Base struct{}

func (Base) NewChildData() ChildData                                { return nil }
func (Base) UpdateData(Resolver) DirtyFlags                         { return 0 }
func (Base) UpdateChildData(Resolver, ChildData) DirtyFlags         { return 0 }
func (Base) ResetUnsetData(style.KeySet) DirtyFlags                 { return 0 }
func (Base) ResetUnsetChildData(style.KeySet, ChildData) DirtyFlags { return 0 }
func (Base) CheckParentFlags(DirtyFlags) DirtyFlags                 { return 0 }
func (Base) CheckChildFlags(DirtyFlags) DirtyFlags                  { return 0 }

func (Base) StartLayout(_ Node, current style.Rect, _ DirtyFlags, _ []Child) style.Rect {
	return current
}

func (Base) DoLayout(_ Node, _ ChildData, current style.Rect, _ DirtyFlags) style.Rect {
	return current
}

func (Base) DoLayoutEnd(_ Node, _ ChildData, current style.Rect, _ DirtyFlags) style.Rect {
	return current
}

func (Base) FinishLayout(_ Node, current style.Rect, _ DirtyFlags, _ []Child) style.Rect {
	return current
}
