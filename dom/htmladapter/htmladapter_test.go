package htmladapter

import (
	"testing"

	"github.com/npillmayer/domrender/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html>
<head>
  <title>Test</title>
  <style>
    p { color: red; }
  </style>
</head>
<body>
  <!-- a comment -->
  <div id="main" class="a b">
    <p>Hello,
       <b>world</b>!</p>
  </div>
</body>
</html>`

func TestParseDropsCommentsAndWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domrender.dom")
	defer teardown()
	//
	doc, err := ParseString(page)
	require.NoError(t, err)
	root := doc.Node(doc.Root())
	assert.Equal(t, "html", root.Tag())
	require.Len(t, root.Children(), 2, "expected <head> and <body>")
	body := root.Children()[1]
	assert.Equal(t, "body", body.Tag())
	require.Len(t, body.Children(), 1, "comment and whitespace must be dropped")
	div := body.Children()[0]
	assert.Equal(t, "main", div.ID())
	assert.Equal(t, []string{"a", "b"}, div.Classes())
	p := div.Children()[0]
	require.Len(t, p.Children(), 3)
	assert.Equal(t, dom.TextNode, p.Children()[0].Kind())
	assert.Equal(t, "Hello, ", p.Children()[0].Data())
	assert.Equal(t, "b", p.Children()[1].Tag())
}

func TestExtractStyleElements(t *testing.T) {
	doc, err := ParseString(page)
	require.NoError(t, err)
	css := ExtractStyleElements(doc)
	require.Len(t, css, 1)
	assert.Equal(t, "p { color: red; }", css[0])
}

func TestFromHTMLNodeWithoutElements(t *testing.T) {
	_, err := FromHTMLNode(nil)
	assert.ErrorIs(t, err, ErrNoRootElement)
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, " a b ", collapseWhitespace("\n  a \t\n b  "))
	assert.Equal(t, "ab", collapseWhitespace("ab"))
}
