package layout

import (
	"github.com/npillmayer/uistyle/maybe"
	"github.com/npillmayer/uistyle/style"
)

// AbsoluteName is the name of the default layout engine.
const AbsoluteName = "absolute"

// Style keys of the absolute layout. They are set on the children.
var (
	KeyX      = style.Intern("x")
	KeyY      = style.Intern("y")
	KeyWidth  = style.Intern("width")
	KeyHeight = style.Intern("height")
)

// AbsoluteKeys returns the style keys the absolute layout consumes.
func AbsoluteKeys() []style.Key {
	return []style.Key{KeyX, KeyY, KeyWidth, KeyHeight}
}

// Absolute places children at the position and size their styles give,
// relative to the parent. Fields which are not set keep the value of the
// current rect.
type Absolute struct {
	Base
}

// NewAbsolute creates an absolute layout engine.
func NewAbsolute() Engine {
	return &Absolute{}
}

// AbsoluteChild is the per-child state of an absolute layout.
type AbsoluteChild struct {
	X, Y, Width, Height maybe.Maybe[int32]
}

// Owner is part of interface ChildData.
func (*AbsoluteChild) Owner() string { return AbsoluteName }

func (*Absolute) Name() string { return AbsoluteName }

func (*Absolute) NewChildData() ChildData {
	none := maybe.Nothing[int32]()
	return &AbsoluteChild{X: none, Y: none, Width: none, Height: none}
}

func (a *Absolute) UpdateChildData(r Resolver, data ChildData) DirtyFlags {
	d := a.childData(data)
	var flags DirtyFlags
	flags |= updateInt(r, KeyX, &d.X, Position)
	flags |= updateInt(r, KeyY, &d.Y, Position)
	flags |= updateInt(r, KeyWidth, &d.Width, Size)
	flags |= updateInt(r, KeyHeight, &d.Height, Size)
	return flags
}

func (a *Absolute) ResetUnsetChildData(used style.KeySet, data ChildData) DirtyFlags {
	d := a.childData(data)
	var flags DirtyFlags
	flags |= resetInt(used, KeyX, &d.X, Position)
	flags |= resetInt(used, KeyY, &d.Y, Position)
	flags |= resetInt(used, KeyWidth, &d.Width, Size)
	flags |= resetInt(used, KeyHeight, &d.Height, Size)
	return flags
}

func (a *Absolute) DoLayout(_ Node, data ChildData, current style.Rect, _ DirtyFlags) style.Rect {
	d := a.childData(data)
	current.X = d.X.WithDefault(current.X)
	current.Y = d.Y.WithDefault(current.Y)
	current.Width = d.Width.WithDefault(current.Width)
	current.Height = d.Height.WithDefault(current.Height)
	return current
}

func (a *Absolute) childData(data ChildData) *AbsoluteChild {
	if d, ok := data.(*AbsoluteChild); ok {
		return d
	}
	tracer().Errorf("absolute layout got foreign child data %T", data)
	return a.NewChildData().(*AbsoluteChild)
}

// ---- helpers shared by engines ---------------------------------------

// updateInt sets an optional int from a style key and returns flag if
// the value changed.
func updateInt(r Resolver, key style.Key, field *maybe.Maybe[int32], flag DirtyFlags) DirtyFlags {
	v, ok := r.Eval(key)
	if !ok {
		return 0
	}
	i, isInt := v.AsInt()
	n := maybe.Of(i, isInt)
	if maybe.Equal(*field, n) {
		return 0
	}
	*field = n
	return flag
}

// resetInt clears an optional int if key was not set by any rule.
func resetInt(used style.KeySet, key style.Key, field *maybe.Maybe[int32], flag DirtyFlags) DirtyFlags {
	if used.Has(key) || *field == nil || (*field).IsNothing() {
		return 0
	}
	*field = maybe.Nothing[int32]()
	return flag
}
