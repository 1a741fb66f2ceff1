package uistyle

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uistyle/expr"
	"github.com/npillmayer/uistyle/layout"
	"github.com/npillmayer/uistyle/style"
	"github.com/npillmayer/uistyle/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyChar = style.Intern("char")

// asciiExt lets rules pick the character a node is drawn with.
type asciiExt struct{}

func (asciiExt) StyleKeys() []style.Key { return []style.Key{keyChar} }
func (asciiExt) NewData() ExtData       { return &asciiData{char: '#'} }

type asciiData struct {
	char  rune
	flags layout.DirtyFlags
}

func (d *asciiData) UpdateData(r layout.Resolver) layout.DirtyFlags {
	if v, ok := r.Eval(keyChar); ok {
		if s, ok := v.AsString(); ok && s != "" {
			d.char = []rune(s)[0]
		}
	}
	return 0
}

func (d *asciiData) ResetUnsetData(used style.KeySet) layout.DirtyFlags {
	if !used.Has(keyChar) {
		d.char = '~'
	}
	return 0
}

func (d *asciiData) CheckFlags(flags layout.DirtyFlags) {
	d.flags = flags
}

type asciiRenderer struct {
	m    *Manager
	rows [][]rune
}

func newASCIIRenderer(m *Manager, w, h int) *asciiRenderer {
	r := &asciiRenderer{m: m, rows: make([][]rune, h)}
	for i := range r.rows {
		r.rows[i] = []rune(strings.Repeat(" ", w))
	}
	return r
}

func (r *asciiRenderer) Visit(n *RenderNode) {
	rect, ok := r.m.RenderPosition(n.ID)
	if !ok {
		return
	}
	c := n.Ext.(*asciiData).char
	for y := rect.Y; y < rect.Y+rect.Height; y++ {
		for x := rect.X; x < rect.X+rect.Width; x++ {
			if y >= 0 && int(y) < len(r.rows) && x >= 0 && int(x) < len(r.rows[y]) {
				r.rows[y][x] = c
			}
		}
	}
}

func (r *asciiRenderer) VisitEnd(*RenderNode) {}

func (r *asciiRenderer) String() string {
	lines := make([]string, len(r.rows))
	for i, row := range r.rows {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

func addTwo(args *expr.Args) (style.Value, error) {
	v, err := args.Next("x")
	if err != nil {
		return style.Value{}, err
	}
	i, ok := v.AsInt()
	if !ok {
		return style.Value{}, expr.Errorf("add_two expects an integer, got %s", v.TypeName())
	}
	return style.Int(i + 2), nil
}

func TestRenderASCII(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.engine")
	defer teardown()
	//
	m := New(WithExtension(asciiExt{}))
	m.RegisterFunction("add_two", addTwo)
	require.NoError(t, m.LoadStyles("test", sheet(
		rule(on(sel("basic_abs")), append(box(2, 1, 4, 3), set("char", syntax.String("@")))...),
		rule(on(sel("basic_abs", bind("offset", "ox"))),
			set("x", syntax.Call("add_two", syntax.Var("ox")))),
		rule(on(sel("inner")), append(box(1, 1, 1, 1), set("char", syntax.String("+")))...),
	)))
	top(t, m, "basic_abs")
	second := top(t, m, "basic_abs")
	m.SetProperty(second, "offset", style.Int(5))
	require.NoError(t, m.AddChild(second, m.NewElement("inner")))
	//
	_, err := m.Layout(20, 8)
	require.NoError(t, err)
	r := newASCIIRenderer(m, 20, 8)
	m.Render(r)
	expected := strings.Join([]string{
		"####################",
		"##@@@@#@@@@#########",
		"##@@@@#@+@@#########",
		"##@@@@#@@@@#########",
		"####################",
		"####################",
		"####################",
		"####################",
	}, "\n")
	assert.Equal(t, expected, r.String())
}

func TestRenderUnstyledNodeUsesResetChar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.engine")
	defer teardown()
	//
	m := New(WithExtension(asciiExt{}))
	require.NoError(t, m.LoadStyles("test", sheet(rule(on(sel("a")), box(0, 0, 2, 1)...))))
	a := top(t, m, "a")
	_, err := m.Layout(3, 1)
	require.NoError(t, err)
	r := newASCIIRenderer(m, 3, 1)
	m.Render(r)
	assert.Equal(t, "~~#", r.String())
	assert.True(t, m.ExtData(a).(*asciiData).flags.Has(layout.Position|layout.Size))
}

type recorder struct {
	events []string
}

func (r *recorder) Visit(n *RenderNode) {
	name := n.Name
	if n.IsText {
		name = "'" + n.Text + "'"
	}
	r.events = append(r.events, "+"+name)
}

func (r *recorder) VisitEnd(n *RenderNode) {
	name := n.Name
	if n.IsText {
		name = "'" + n.Text + "'"
	}
	r.events = append(r.events, "-"+name)
}

func TestRenderOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.engine")
	defer teardown()
	//
	m := New()
	a := top(t, m, "a")
	require.NoError(t, m.AddChild(a, m.NewText("x")))
	require.NoError(t, m.AddChildFirst(a, m.NewElement("b")))
	top(t, m, "c")
	rec := &recorder{}
	m.Render(rec)
	assert.Equal(t, []string{"+root", "+a", "+b", "-b", "+'x'", "-'x'", "-a", "+c", "-c", "-root"}, rec.events)
}

func TestRenderPositionScrollAndClip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.engine")
	defer teardown()
	//
	m := New()
	outer := append(box(10, 10, 20, 5),
		set("scroll_y", syntax.Float(2)), set("clip_overflow", syntax.Bool(true)))
	require.NoError(t, m.LoadStyles("test", sheet(
		rule(on(sel("outer")), outer...),
		rule(on(sel("outer"), sel("inner")), box(0, 0, 5, 5)...),
		rule(on(sel("outer"), sel("hidden")), box(25, 0, 5, 5)...),
	)))
	o := top(t, m, "outer")
	in, hidden := m.NewElement("inner"), m.NewElement("hidden")
	require.NoError(t, m.AddChild(o, in))
	require.NoError(t, m.AddChild(o, hidden))
	_, err := m.Layout(100, 100)
	require.NoError(t, err)
	//
	rect, ok := m.RenderPosition(o)
	assert.True(t, ok)
	assert.Equal(t, style.Rect{X: 10, Y: 10, Width: 20, Height: 5}, rect)
	rect, ok = m.RenderPosition(in)
	assert.True(t, ok)
	assert.Equal(t, style.Rect{X: 10, Y: 12, Width: 5, Height: 3}, rect)
	_, ok = m.RenderPosition(hidden)
	assert.False(t, ok)
}
