package uistyle

import (
	"github.com/npillmayer/uistyle/layout"
	"github.com/npillmayer/uistyle/style"
)

// Extension lets a host application attach its own style keys and
// per-node data, e.g. colors or fonts for a rendering backend.
type Extension interface {
	// StyleKeys lists the keys the extension consumes.
	StyleKeys() []style.Key
	// NewData creates the extension data of a new node.
	NewData() ExtData
}

// ExtData is the extension's state of a single node.
type ExtData interface {
	// UpdateData consumes the extension's keys from a matching rule.
	UpdateData(r layout.Resolver) layout.DirtyFlags
	// ResetUnsetData reverts state for keys no matching rule set.
	ResetUnsetData(used style.KeySet) layout.DirtyFlags
	// CheckFlags is called with the final flags of the node for a pass.
	CheckFlags(flags layout.DirtyFlags)
}

// NoExtension is the extension used if the host does not install one.
type NoExtension struct{}

func (NoExtension) StyleKeys() []style.Key { return nil }
func (NoExtension) NewData() ExtData       { return noData{} }

type noData struct{}

func (noData) UpdateData(layout.Resolver) layout.DirtyFlags  { return 0 }
func (noData) ResetUnsetData(style.KeySet) layout.DirtyFlags { return 0 }
func (noData) CheckFlags(layout.DirtyFlags)                  {}
