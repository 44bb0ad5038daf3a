package layout

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/domrender/dom/style"
	"github.com/npillmayer/domrender/dom/style/css"
	"github.com/npillmayer/domrender/dom/styledtree"
	"github.com/npillmayer/domrender/frame"
)

// Layout creates a layout tree for a styled tree and a viewport. The
// initial containing block has the width of the viewport and starts at
// (0, 0). Percentage heights of the root box are relative to the viewport
// height.
//
// If the root of the styled tree is not displayed, the layout tree will have
// no root box.
func Layout(st *styledtree.Tree, vp frame.Viewport) *frame.Tree {
	t := &frame.Tree{Styles: st, Viewport: vp}
	if st == nil || st.Root == nil {
		return t
	}
	t.Root = buildBoxes(st, st.Root)
	if t.Root == nil {
		return t
	}
	e := engine{styles: st}
	cb := containingBlock{
		content:     frame.Rect{Width: vp.Width},
		height:      vp.Height,
		fixedHeight: true,
	}
	e.layoutBox(t.Root, cb, 0)
	tracer().Debugf("layout of %d boxes done", t.Len())
	return t
}

type engine struct {
	styles *styledtree.Tree
}

// containingBlock is the content area a box is laid out in. If the
// containing box has an explicit height, percentage heights of children
// refer to it.
type containingBlock struct {
	content     frame.Rect
	height      float64
	fixedHeight bool
}

// layoutBox lays out a box and its children. The top of the box's margin
// area is placed at cursor.
func (e *engine) layoutBox(box *frame.Box, cb containingBlock, cursor float64) {
	sn := e.styles.Node(box.Styled)
	d := &box.Dimensions
	e.calculateWidth(box, sn, cb.content.Width)
	e.calculateVerticalEdges(box, sn, cb.content.Width)
	d.Content.X = cb.content.X + d.Margin.Left + d.Border.Left + d.Padding.Left
	d.Content.Y = cursor + d.Margin.Top + d.Border.Top + d.Padding.Top
	h, fixed := e.explicitHeight(sn, cb)
	inner := containingBlock{content: d.Content, height: h, fixedHeight: fixed}
	y := d.Content.Y
	for _, ch := range box.Children {
		e.layoutBox(ch, inner, y)
		y += ch.Dimensions.MarginBox().Height
	}
	if fixed {
		d.Content.Height = h
	} else {
		// negative margins of children may pull y above the content top
		d.Content.Height = clamp(y - d.Content.Y)
	}
}

// calculateWidth computes the content width and the horizontal edges of a
// box.
//
// An explicit width is honored. If it leaves room inside the containing
// block, `auto` margins share the remaining space (both `auto`: centered).
// Without an explicit width, `auto` margins are zero and the box fills the
// containing block. A box never gets a negative width.
func (e *engine) calculateWidth(box *frame.Box, sn *styledtree.StyNode, cbWidth float64) {
	d := &box.Dimensions
	if sn == nil { // anonymous box
		d.Content.Width = cbWidth
		return
	}
	d.Padding.Left = e.edge(sn, style.PaddingLeft, cbWidth)
	d.Padding.Right = e.edge(sn, style.PaddingRight, cbWidth)
	d.Border.Left = e.edge(sn, style.BorderLeftWidth, cbWidth)
	d.Border.Right = e.edge(sn, style.BorderRightWidth, cbWidth)
	mleft := e.dimen(sn, style.MarginLeft)
	mright := e.dimen(sn, style.MarginRight)
	d.Margin.Left, _ = mleft.Resolve(cbWidth)
	d.Margin.Right, _ = mright.Resolve(cbWidth)
	width := e.dimen(sn, style.Width)
	w, explicit := width.Resolve(cbWidth)
	if !explicit {
		slack := cbWidth - d.Margin.Left - d.Margin.Right - d.Padding.Horizontal() - d.Border.Horizontal()
		d.Content.Width = clamp(slack)
		return
	}
	d.Content.Width = clamp(w)
	slack := cbWidth - d.Content.Width - d.Margin.Left - d.Margin.Right -
		d.Padding.Horizontal() - d.Border.Horizontal()
	if slack <= 0 {
		return
	}
	switch {
	case mleft.IsAuto() && mright.IsAuto():
		d.Margin.Left, d.Margin.Right = slack/2, slack/2
	case mleft.IsAuto():
		d.Margin.Left = slack
	case mright.IsAuto():
		d.Margin.Right = slack
	}
}

// calculateVerticalEdges sets top and bottom margin, border and padding.
// Percentages refer to the width of the containing block, `auto` margins
// are zero.
func (e *engine) calculateVerticalEdges(box *frame.Box, sn *styledtree.StyNode, cbWidth float64) {
	if sn == nil {
		return
	}
	d := &box.Dimensions
	d.Margin.Top = e.edge(sn, style.MarginTop, cbWidth)
	d.Margin.Bottom = e.edge(sn, style.MarginBottom, cbWidth)
	d.Border.Top = e.edge(sn, style.BorderTopWidth, cbWidth)
	d.Border.Bottom = e.edge(sn, style.BorderBottomWidth, cbWidth)
	d.Padding.Top = e.edge(sn, style.PaddingTop, cbWidth)
	d.Padding.Bottom = e.edge(sn, style.PaddingBottom, cbWidth)
}

// explicitHeight returns the height given by a box's style, if any.
// Percentages resolve only against a containing block of explicit height.
func (e *engine) explicitHeight(sn *styledtree.StyNode, cb containingBlock) (float64, bool) {
	if sn == nil {
		return 0, false
	}
	var h float64
	switch m := e.dimen(sn, style.Height).Match(); m {
	case m.IsKind(css.Auto()):
		return 0, false
	case m.Just(&h):
		return clamp(h), true
	case m.Percentage(&h):
		if cb.fixedHeight {
			return clamp(cb.height * h / 100), true
		}
		tracer().Debugf("percentage height of %v ignored: containing block has auto height", sn)
	}
	return 0, false
}

// dimen reads a dimension property of a styled node, respecting
// inheritance for trees with incomplete property maps.
func (e *engine) dimen(sn *styledtree.StyNode, key style.Key) css.DimenT {
	return css.DimenOf(css.GetProperty(e.styles, sn, key))
}

// edge resolves an edge property. `auto` resolves to 0.
func (e *engine) edge(sn *styledtree.StyNode, key style.Key, cbWidth float64) float64 {
	x, _ := e.dimen(sn, key).Resolve(cbWidth)
	return x
}

func clamp(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
