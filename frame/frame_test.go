package frame

import (
	"testing"

	"github.com/npillmayer/domrender/dom/styledtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDimensionsBoxes(t *testing.T) {
	d := Dimensions{
		Content: Rect{X: 30, Y: 40, Width: 100, Height: 50},
		Padding: EdgeSizes{Top: 5, Right: 5, Bottom: 5, Left: 5},
		Border:  EdgeSizes{Top: 1, Right: 2, Bottom: 3, Left: 4},
		Margin:  EdgeSizes{Top: 10, Left: 10},
	}
	assert.Equal(t, Rect{X: 25, Y: 35, Width: 110, Height: 60}, d.PaddingBox())
	assert.Equal(t, Rect{X: 21, Y: 34, Width: 116, Height: 64}, d.BorderBox())
	assert.Equal(t, Rect{X: 11, Y: 24, Width: 126, Height: 74}, d.MarginBox())
	assert.Equal(t, 6.0, d.Border.Horizontal())
	assert.Equal(t, 4.0, d.Border.Vertical())
}

func TestTreeWalkAndEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domrender.frame")
	defer teardown()
	//
	mk := func() *Tree {
		root := &Box{Type: BlockBox, Styled: 0}
		root.Children = []*Box{
			{Type: BlockBox, Styled: 1},
			{Type: AnonymousBox, Styled: styledtree.NoNode, Children: []*Box{
				{Type: InlineBox, Styled: 3},
			}},
		}
		return &Tree{Root: root, Viewport: Viewport{Width: 800, Height: 600}}
	}
	a, b := mk(), mk()
	assert.Equal(t, 4, a.Len())
	var order []BoxType
	a.Walk(func(box *Box, depth int) {
		order = append(order, box.Type)
	})
	assert.Equal(t, []BoxType{BlockBox, BlockBox, AnonymousBox, InlineBox}, order)
	assert.True(t, a.Equal(b))
	b.Root.Children[0].Dimensions.Content.Height = 1
	assert.False(t, a.Equal(b))
	assert.Nil(t, a.StyledNode(a.Root.Children[1]), "anonymous boxes have no styled node")
	assert.Equal(t, "anonymous", AnonymousBox.String())
}
