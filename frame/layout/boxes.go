package layout

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/domrender/dom"
	"github.com/npillmayer/domrender/dom/style/css"
	"github.com/npillmayer/domrender/dom/styledtree"
	"github.com/npillmayer/domrender/frame"
)

// buildBoxes creates the box for a styled node, together with the boxes
// for its children. It returns nil if the node does not generate a box.
func buildBoxes(st *styledtree.Tree, sn *styledtree.StyNode) *frame.Box {
	if n := st.DOM(sn); n != nil && n.Kind() == dom.TextNode {
		return nil
	}
	disp := css.Display(sn)
	if disp.IsNone() {
		tracer().Debugf("%v is not displayed", sn)
		return nil
	}
	tracer().Debugf("%v has display %s", sn, disp.FullString())
	box := &frame.Box{Type: frame.InlineBox, Styled: sn.ID()}
	if disp.IsBlockLevel() {
		box.Type = frame.BlockBox
	}
	var children []*frame.Box
	for _, ch := range sn.Children() {
		if chbox := buildBoxes(st, ch); chbox != nil {
			children = append(children, chbox)
		}
	}
	box.Children = wrapInlineRuns(children)
	return box
}

// wrapInlineRuns wraps each run of consecutive inline-level boxes into an
// anonymous block box, if (and only if) the boxes are a mix of block-level
// and inline-level boxes.
func wrapInlineRuns(children []*frame.Box) []*frame.Box {
	var blocks, inlines int
	for _, ch := range children {
		if ch.Type == frame.InlineBox {
			inlines++
		} else {
			blocks++
		}
	}
	if blocks == 0 || inlines == 0 {
		return children
	}
	wrapped := make([]*frame.Box, 0, blocks+1)
	var anon *frame.Box
	for _, ch := range children {
		if ch.Type != frame.InlineBox {
			anon = nil
			wrapped = append(wrapped, ch)
			continue
		}
		if anon == nil {
			anon = &frame.Box{Type: frame.AnonymousBox, Styled: styledtree.NoNode}
			wrapped = append(wrapped, anon)
		}
		anon.Children = append(anon.Children, ch)
	}
	return wrapped
}
