package frame

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/domrender/dom/styledtree"
)

// Rect is a rectangle with its top left corner at (X, Y).
type Rect struct {
	X, Y, Width, Height float64
}

// ExpandedBy returns a rectangle expanded by the given edge sizes.
func (r Rect) ExpandedBy(edge EdgeSizes) Rect {
	return Rect{
		X:      r.X - edge.Left,
		Y:      r.Y - edge.Top,
		Width:  r.Width + edge.Left + edge.Right,
		Height: r.Height + edge.Top + edge.Bottom,
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// EdgeSizes holds the sizes of the four edges of padding, border or margin.
// 4-way values always start at the top and travel clockwise.
type EdgeSizes struct {
	Top, Right, Bottom, Left float64
}

// Horizontal returns Left + Right.
func (e EdgeSizes) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e EdgeSizes) Vertical() float64 {
	return e.Top + e.Bottom
}

// Dimensions of a box.
type Dimensions struct {
	Content Rect // position and size of the content area
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// PaddingBox returns the area covered by content and padding.
func (d Dimensions) PaddingBox() Rect {
	return d.Content.ExpandedBy(d.Padding)
}

// BorderBox returns the area covered by content, padding and border.
func (d Dimensions) BorderBox() Rect {
	return d.PaddingBox().ExpandedBy(d.Border)
}

// MarginBox returns the area covered by content, padding, border and margin.
func (d Dimensions) MarginBox() Rect {
	return d.BorderBox().ExpandedBy(d.Margin)
}

// BoxType is the type of a box.
type BoxType uint8

// Boxes are generated for block-level elements, for inline-level elements,
// or anonymously to wrap inline-level boxes in a block container.
const (
	BlockBox BoxType = iota
	InlineBox
	AnonymousBox
)

func (t BoxType) String() string {
	switch t {
	case BlockBox:
		return "block"
	case InlineBox:
		return "inline"
	case AnonymousBox:
		return "anonymous"
	}
	return fmt.Sprintf("BoxType(%d)", uint8(t))
}

// Box is a node of the layout tree.
type Box struct {
	Type       BoxType
	Dimensions Dimensions
	Styled     styledtree.NodeID // styled node this box was generated for; NoNode for anonymous boxes
	Children   []*Box
}

func (box *Box) String() string {
	if box == nil {
		return "<nil box>"
	}
	return fmt.Sprintf("(%s box #%d content=%s)", box.Type, box.Styled, box.Dimensions.Content)
}

// Viewport is the visible area. Its width is the width of the initial
// containing block. Its height is used to resolve percentage heights of
// the root box.
type Viewport struct {
	Width  float64
	Height float64
}

// Tree is a layout tree, together with the styled tree it has been created
// from.
type Tree struct {
	Root     *Box
	Styles   *styledtree.Tree
	Viewport Viewport
}

// StyledNode returns the styled node a box has been generated for, or nil
// for anonymous boxes.
func (t *Tree) StyledNode(box *Box) *styledtree.StyNode {
	if t.Styles == nil || box == nil || box.Styled == styledtree.NoNode {
		return nil
	}
	return t.Styles.Node(box.Styled)
}

// Walk visits all boxes in pre-order, parents before children and siblings
// in order.
func (t *Tree) Walk(fn func(box *Box, depth int)) {
	if t.Root != nil {
		walk(t.Root, 0, fn)
	}
}

func walk(box *Box, depth int, fn func(*Box, int)) {
	fn(box, depth)
	for _, ch := range box.Children {
		walk(ch, depth+1, fn)
	}
}

// Len returns the number of boxes in the tree.
func (t *Tree) Len() int {
	n := 0
	t.Walk(func(*Box, int) { n++ })
	return n
}

// Equal compares two layout trees for equal structure and geometry.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Viewport != other.Viewport {
		return false
	}
	return equalBoxes(t.Root, other.Root)
}

func equalBoxes(a, b *Box) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || a.Styled != b.Styled || a.Dimensions != b.Dimensions ||
		len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !equalBoxes(a.Children[i], b.Children[i]) {
			tracer().Debugf("layout trees differ at %v", a.Children[i])
			return false
		}
	}
	return true
}
