package htmladapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uistyle/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var page = `<!DOCTYPE html>
<html>
<head><style>panel { width: 10 }</style></head>
<body>
  <panel title="Hello" size="3" ratio="0.5" open="true">
    <label>Hi \o/</label>
    <script>ignored()</script>
  </panel>
</body>
</html>`

func TestFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.adapter")
	defer teardown()
	//
	h, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	doc, err := FromHTML(h)
	require.NoError(t, err)
	body := doc.Root
	assert.Equal(t, "body", body.Name)
	require.Len(t, body.Nodes, 1)
	panel := body.Nodes[0].(*syntax.Element)
	assert.Equal(t, "panel", panel.Name)
	require.Len(t, panel.Properties, 4)
	assert.Equal(t, syntax.StringLit("Hello"), panel.Properties[0].Value)
	assert.Equal(t, syntax.IntLit(3), panel.Properties[1].Value)
	assert.Equal(t, syntax.FloatLit(0.5), panel.Properties[2].Value)
	assert.Equal(t, syntax.BoolLit(true), panel.Properties[3].Value)
	require.Len(t, panel.Nodes, 1)
	label := panel.Nodes[0].(*syntax.Element)
	require.Len(t, label.Nodes, 1)
	text := label.Nodes[0].(*syntax.Text)
	assert.Equal(t, `Hi \o/`, syntax.Unescape(text.Text))
}

func TestLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.adapter")
	defer teardown()
	//
	assert.Equal(t, syntax.IntLit(-7), Literal("-7"))
	assert.Equal(t, syntax.FloatLit(1e3), Literal("1e3"))
	assert.Equal(t, syntax.BoolLit(false), Literal("false"))
	assert.Equal(t, syntax.StringLit("NaN"), Literal("NaN"))
	assert.Equal(t, syntax.StringLit("grid"), Literal("grid"))
}
