package dbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uistyle"
	"github.com/npillmayer/uistyle/style"
	"github.com/npillmayer/uistyle/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager(t *testing.T) *uistyle.Manager {
	m := uistyle.New()
	err := m.LoadStyles("test", &syntax.StyleDocument{Rules: []*syntax.Rule{{
		Matchers: []syntax.Matcher{{Name: "panel"}},
		Styles: []syntax.Style{
			{Key: "width", Expr: syntax.Int(30)},
			{Key: "height", Expr: syntax.Int(10)},
			{Key: "clip_overflow", Expr: syntax.Bool(true)},
		},
	}}})
	require.NoError(t, err)
	p := m.NewElement("panel")
	m.SetProperty(p, "title", style.Str("Hello"))
	require.NoError(t, m.AddChild(p, m.NewText("some long text")))
	require.NoError(t, m.AddNode(p))
	_, err = m.Layout(80, 24)
	require.NoError(t, err)
	return m
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.dbg")
	defer teardown()
	//
	m := testManager(t)
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(m, &buf))
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, "node00001 -> node00002")
	assert.Contains(t, dot, "node00002 -> node00003")
	assert.Contains(t, dot, `<td align="right">title:</td>`)
	assert.Contains(t, dot, `some␣long␣...`)
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.dbg")
	defer teardown()
	//
	m := testManager(t)
	s := Dump(m)
	t.Log("\n" + s)
	assert.Contains(t, s, "root (0,0 80x24) absolute")
	assert.Contains(t, s, `panel(title="Hello") (0,0 30x10) absolute clip`)
	assert.Contains(t, s, `"some long text"`)
	Trace(m)
}

func TestDumpValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.dbg")
	defer teardown()
	//
	s := DumpValue(style.Rect{X: 1, Width: 7})
	assert.Contains(t, s, "Width: (int32) 7")
}
