package displaylist

import (
	"testing"

	"github.com/npillmayer/domrender/dom"
	"github.com/npillmayer/domrender/dom/style"
	"github.com/npillmayer/domrender/dom/style/cssom"
	"github.com/npillmayer/domrender/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/domrender/frame"
	"github.com/npillmayer/domrender/frame/layout"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layoutOf(t *testing.T, root *dom.Node, source string) *frame.Tree {
	t.Helper()
	sheet, err := douceuradapter.Parse(source)
	require.NoError(t, err)
	st := cssom.Style(dom.NewDocument(root), sheet, nil)
	return layout.Layout(st, frame.Viewport{Width: 800, Height: 600})
}

func TestBackgroundCoversBorderBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domrender.frame")
	defer teardown()
	//
	tree := layoutOf(t, dom.Element("div", nil, dom.Element("p", nil)), `
		div, p { display: block }
		div { background-color: red; margin: 10px; border-width: 2px; padding: 3px }
		p { height: 20px; background-color: #0000ff }
	`)
	list := Build(tree)
	require.Len(t, list, 2)
	assert.Equal(t, SolidRectangle{
		Rect:  frame.Rect{X: 10, Y: 10, Width: 780, Height: 30},
		Color: style.Color{R: 255},
	}, list[0])
	assert.Equal(t, SolidRectangle{
		Rect:  frame.Rect{X: 15, Y: 15, Width: 770, Height: 20},
		Color: style.Color{B: 255},
	}, list[1])
	assert.Equal(t, "  0: rect (10,10 780x30) red\n  1: rect (15,15 770x20) blue\n", list.String())
}

func TestPaintOrderIsPreOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domrender.frame")
	defer teardown()
	//
	tree := layoutOf(t, dom.Element("div", dom.Attrs{"id": "a"},
		dom.Element("div", dom.Attrs{"id": "b"}, dom.Element("div", dom.Attrs{"id": "c"})),
		dom.Element("div", dom.Attrs{"id": "d"}),
	), `
		div { display: block; height: 10px }
		#a { height: auto; background-color: rgb(1, 0, 0) }
		#b { background-color: rgb(2, 0, 0) }
		#c { background-color: rgb(3, 0, 0) }
		#d { background-color: rgb(4, 0, 0) }
	`)
	list := Build(tree)
	var reds []uint8
	for _, cmd := range list {
		reds = append(reds, cmd.(SolidRectangle).Color.R)
	}
	assert.Equal(t, []uint8{1, 2, 3, 4}, reds)
}

func TestHiddenAndTransparentBoxes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domrender.frame")
	defer teardown()
	//
	tree := layoutOf(t, dom.Element("div", nil,
		dom.Element("p", dom.Attrs{"class": "hidden"},
			dom.Element("span", dom.Attrs{"class": "shown"}),
			dom.Element("em", nil),
		),
		dom.Element("p", dom.Attrs{"class": "clear"}),
	), `
		div, p { display: block }
		div { background-color: transparent }
		.hidden { visibility: hidden; background-color: green }
		em { background-color: green }
		.shown { visibility: visible; background-color: yellow }
		.clear { background-color: red; background-color: transparent }
	`)
	list := Build(tree)
	require.Len(t, list, 1, "hidden boxes and their inheriting children do not paint")
	assert.Equal(t, style.Color{R: 255, G: 255}, list[0].(SolidRectangle).Color)
}

func TestAnonymousBoxesDoNotPaint(t *testing.T) {
	tree := layoutOf(t, dom.Element("div", nil,
		dom.Element("span", nil),
		dom.Element("p", nil),
	), `div, p { display: block } div { background-color: white }`)
	require.Equal(t, frame.AnonymousBox, tree.Root.Children[0].Type)
	assert.Len(t, Build(tree), 1)
	assert.Empty(t, Build(nil))
	assert.Empty(t, Build(&frame.Tree{}))
}

func TestBuildIsDeterministic(t *testing.T) {
	tree := layoutOf(t, dom.Element("div", nil,
		dom.Element("p", nil), dom.Element("p", dom.Attrs{"class": "x"})),
		`div, p { display: block; height: 7px; background-color: silver } .x { background-color: navy }`)
	a, b := Build(tree), Build(tree)
	assert.Len(t, a, 3)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(b[:2]))
}
