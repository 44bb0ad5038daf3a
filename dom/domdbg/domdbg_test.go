package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/domrender/dom"
	"github.com/npillmayer/domrender/dom/style"
	"github.com/npillmayer/domrender/dom/styledtree"
	"github.com/npillmayer/domrender/frame"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func styled() *styledtree.Tree {
	doc := dom.NewDocument(dom.Element("div", dom.Attrs{"id": "top"},
		dom.Element("p", nil, dom.Text("Hello World, how are you?"))))
	b := styledtree.NewBuilder(doc)
	block := style.NewPropertyMap()
	block.Set(style.Display, style.Keyword("block"))
	block.Set(style.MarginTop, style.Px(3))
	b.Add(0, styledtree.NoNode, block)
	b.Add(1, 0, block.Clone())
	b.Add(2, 1, nil)
	return b.Tree()
}

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domrender.dom")
	defer teardown()
	//
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(styled(), &buf, nil))
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `node00000	[ label="div"`)
	assert.Contains(t, dot, "node00001 -> node00002 [weight=1]")
	assert.Contains(t, dot, "Hello␣Worl...")
	assert.Contains(t, dot, "<td>3px</td>")
	assert.NotContains(t, dot, "pg00002", "text node has no styles")
}

func TestStyledTreeString(t *testing.T) {
	s := StyledTreeString(styled(), style.PGDisplay)
	t.Logf("\n%s", s)
	assert.Contains(t, s, "<div#top> display=block")
	assert.Contains(t, s, "<p> display=block")
	assert.Contains(t, s, `#text "Hello World, how ..."`)
	assert.NotContains(t, s, "margin-top")
}

func TestBoxTreeString(t *testing.T) {
	st := styled()
	root := &frame.Box{Type: frame.BlockBox, Styled: 0}
	root.Dimensions.Content = frame.Rect{Width: 100, Height: 20}
	root.Children = []*frame.Box{{Type: frame.AnonymousBox, Styled: styledtree.NoNode}}
	s := BoxTreeString(&frame.Tree{Root: root, Styles: st})
	t.Logf("\n%s", s)
	assert.Contains(t, s, "▩ block <div#top> (0,0 100x20)")
	assert.Contains(t, s, "– anonymous (0,0 0x0)")
}
