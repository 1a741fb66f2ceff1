package layout

import (
	"github.com/npillmayer/uistyle/maybe"
	"github.com/npillmayer/uistyle/style"
)

// GridName is the registered name of the grid layout.
const GridName = "grid"

// Style keys of the grid layout. They are set on the node holding the grid.
var (
	KeyColumns    = style.Intern("columns")
	KeyRows       = style.Intern("rows")
	KeyCellWidth  = style.Intern("cell_width")
	KeyCellHeight = style.Intern("cell_height")
	KeyMargin     = style.Intern("margin")
	KeySpacing    = style.Intern("spacing")
	KeyForceSize  = style.Intern("force_size")
	KeyAutoSize   = style.Intern("auto_size")
)

// gridChanged is raised when grid parameters change: the private
// grid bit plus LAYOUT.
const gridChanged = Layout1 | Layout

// GridKeys returns the style keys the grid layout consumes.
func GridKeys() []style.Key {
	return []style.Key{KeyColumns, KeyRows, KeyCellWidth, KeyCellHeight,
		KeyMargin, KeySpacing, KeyForceSize, KeyAutoSize}
}

// Grid places children into cells of equal size, filling rows from left
// to right. Cell sizes are either given or derived from the node's size,
// the number of columns and rows, margin and spacing.
type Grid struct {
	Base
	columns, rows         maybe.Maybe[int32]
	cellWidth, cellHeight maybe.Maybe[int32]
	margin, spacing       maybe.Maybe[int32]
	forceSize, autoSize   bool

	// layout state
	cw, ch int32
	col    int32
	row    int32
}

// NewGrid creates a grid layout engine.
func NewGrid() Engine {
	none := maybe.Nothing[int32]()
	return &Grid{columns: none, rows: none, cellWidth: none, cellHeight: none,
		margin: none, spacing: none}
}

func (*Grid) Name() string { return GridName }

func (g *Grid) UpdateData(r Resolver) DirtyFlags {
	var flags DirtyFlags
	flags |= updateInt(r, KeyColumns, &g.columns, gridChanged)
	flags |= updateInt(r, KeyRows, &g.rows, gridChanged)
	flags |= updateInt(r, KeyCellWidth, &g.cellWidth, gridChanged)
	flags |= updateInt(r, KeyCellHeight, &g.cellHeight, gridChanged)
	flags |= updateInt(r, KeyMargin, &g.margin, gridChanged)
	flags |= updateInt(r, KeySpacing, &g.spacing, gridChanged)
	flags |= updateBool(r, KeyForceSize, &g.forceSize, gridChanged)
	flags |= updateBool(r, KeyAutoSize, &g.autoSize, gridChanged|Size)
	return flags
}

func (g *Grid) ResetUnsetData(used style.KeySet) DirtyFlags {
	var flags DirtyFlags
	flags |= resetInt(used, KeyColumns, &g.columns, gridChanged)
	flags |= resetInt(used, KeyRows, &g.rows, gridChanged)
	flags |= resetInt(used, KeyCellWidth, &g.cellWidth, gridChanged)
	flags |= resetInt(used, KeyCellHeight, &g.cellHeight, gridChanged)
	flags |= resetInt(used, KeyMargin, &g.margin, gridChanged)
	flags |= resetInt(used, KeySpacing, &g.spacing, gridChanged)
	if !used.Has(KeyForceSize) && g.forceSize {
		g.forceSize = false
		flags |= gridChanged
	}
	if !used.Has(KeyAutoSize) && g.autoSize {
		g.autoSize = false
		flags |= gridChanged | Size
	}
	return flags
}

// CheckParentFlags re-arranges the cells if the node's own size may have
// changed.
func (g *Grid) CheckParentFlags(flags DirtyFlags) DirtyFlags {
	if flags.Has(Size) {
		return Layout
	}
	return 0
}

// CheckChildFlags turns private grid changes and changes in the set of
// children into a re-layout.
func (g *Grid) CheckChildFlags(flags DirtyFlags) DirtyFlags {
	if flags.Has(Children | Size) {
		return Layout
	}
	return 0
}

func (g *Grid) StartLayout(_ Node, current style.Rect, _ DirtyFlags, _ []Child) style.Rect {
	cols := g.columnCount()
	rows := g.rows.WithDefault(1)
	if rows < 1 {
		rows = 1
	}
	margin, spacing := g.margin.WithDefault(0), g.spacing.WithDefault(0)
	g.cw = g.cellWidth.WithDefault((current.Width - 2*margin - spacing*(cols-1)) / cols)
	g.ch = g.cellHeight.WithDefault((current.Height - 2*margin - spacing*(rows-1)) / rows)
	g.col, g.row = 0, 0
	return current
}

func (g *Grid) DoLayout(_ Node, _ ChildData, current style.Rect, _ DirtyFlags) style.Rect {
	margin, spacing := g.margin.WithDefault(0), g.spacing.WithDefault(0)
	current.X = margin + g.col*(g.cw+spacing)
	current.Y = margin + g.row*(g.ch+spacing)
	current.Width, current.Height = g.cw, g.ch
	g.col++
	if g.col >= g.columnCount() {
		g.col = 0
		g.row++
	}
	return current
}

func (g *Grid) DoLayoutEnd(_ Node, _ ChildData, current style.Rect, _ DirtyFlags) style.Rect {
	if g.forceSize {
		current.Width, current.Height = g.cw, g.ch
	}
	return current
}

// FinishLayout grows the node to enclose all cells if auto_size is set.
func (g *Grid) FinishLayout(_ Node, current style.Rect, _ DirtyFlags, children []Child) style.Rect {
	if !g.autoSize || len(children) == 0 {
		return current
	}
	cols := g.columnCount()
	n := int32(len(children))
	usedCols := cols
	if n < cols {
		usedCols = n
	}
	rows := (n + cols - 1) / cols
	margin, spacing := g.margin.WithDefault(0), g.spacing.WithDefault(0)
	current.Width = 2*margin + usedCols*g.cw + (usedCols-1)*spacing
	current.Height = 2*margin + rows*g.ch + (rows-1)*spacing
	return current
}

func (g *Grid) columnCount() int32 {
	if c := g.columns.WithDefault(1); c > 0 {
		return c
	}
	return 1
}

func updateBool(r Resolver, key style.Key, field *bool, flag DirtyFlags) DirtyFlags {
	v, ok := r.Eval(key)
	if !ok {
		return 0
	}
	b, _ := v.AsBool()
	if b == *field {
		return 0
	}
	*field = b
	return flag
}
