package styledtree

import (
	"testing"

	"github.com/npillmayer/domrender/dom"
	"github.com/npillmayer/domrender/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(color style.Color) *Tree {
	doc := dom.NewDocument(dom.Element("div", nil,
		dom.Element("p", nil), dom.Element("span", nil)))
	b := NewBuilder(doc)
	styles := style.NewPropertyMap()
	styles.Set(style.TextColor, style.RGB(color.R, color.G, color.B))
	b.Add(0, NoNode, styles)
	b.Add(1, 0, nil)
	b.Add(2, 0, nil)
	return b.Tree()
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domrender.dom")
	defer teardown()
	//
	tree := build(style.Black)
	require.Equal(t, 3, tree.Len())
	assert.Equal(t, 2, tree.Root.ChildCount())
	assert.Equal(t, NodeID(0), tree.Parent(2))
	assert.Equal(t, NoNode, tree.Parent(0))
	assert.Nil(t, tree.Node(3))
	assert.Equal(t, "span", tree.DOM(tree.Node(2)).Tag())
	assert.Equal(t, style.Px(0), tree.Node(1).Value(style.MarginTop), "unset properties yield initial values")
	//
	b := NewBuilder(tree.Doc)
	b.Add(0, NoNode, nil)
	assert.Nil(t, b.Add(1, NoNode, nil), "second root must be rejected")
	assert.Nil(t, b.Add(1, 7, nil), "unknown parent must be rejected")
}

func TestWalkAndEqual(t *testing.T) {
	tree := build(style.Black)
	var ids []NodeID
	tree.Walk(func(sn *StyNode, depth int) bool {
		ids = append(ids, sn.ID())
		return true
	})
	assert.Equal(t, []NodeID{0, 1, 2}, ids)
	ids = nil
	tree.Walk(func(sn *StyNode, depth int) bool {
		ids = append(ids, sn.ID())
		return false
	})
	assert.Equal(t, []NodeID{0}, ids)
	assert.True(t, tree.Equal(build(style.Black)))
	assert.False(t, tree.Equal(build(style.White)))
	assert.False(t, tree.Equal(nil))
}
