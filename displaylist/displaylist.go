/*
Package displaylist flattens a layout tree into a list of paint commands.

Commands are emitted in paint order: a pre-order traversal of the layout
tree, parents before children and siblings in document order. Later
commands paint over earlier ones.

Colors are 8-bit RGB triples with channels from 0 to 255. Commands carry
no alpha; every command paints opaque.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package displaylist

import (
	"fmt"
	"strings"

	"github.com/npillmayer/domrender/dom/style"
	"github.com/npillmayer/domrender/dom/style/css"
	"github.com/npillmayer/domrender/frame"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domrender.frame'.
func tracer() tracing.Trace {
	return tracing.Select("domrender.frame")
}

// Command is a paint instruction. The set of commands is closed; currently
// SolidRectangle is the only variant.
type Command interface {
	isCommand()
	String() string
}

// SolidRectangle fills a rectangle with an opaque color.
type SolidRectangle struct {
	Rect  frame.Rect
	Color style.Color
}

func (SolidRectangle) isCommand() {}

func (r SolidRectangle) String() string {
	return fmt.Sprintf("rect %s %s", r.Rect, r.Color)
}

// List is a sequence of commands in paint order.
type List []Command

// Build creates the display list for a layout tree. Build is total: it
// never fails and does not modify the tree.
//
// A box paints its background color, if it has one, covering its border box.
// Boxes with `visibility: hidden` or `collapse` do not paint, but their
// children may. Anonymous boxes never paint.
func Build(t *frame.Tree) List {
	var list List
	if t == nil {
		return list
	}
	t.Walk(func(box *frame.Box, depth int) {
		if cmd, ok := background(t, box); ok {
			list = append(list, cmd)
		}
	})
	tracer().Debugf("display list has %d commands", len(list))
	return list
}

func background(t *frame.Tree, box *frame.Box) (Command, bool) {
	switch box.Type {
	case frame.AnonymousBox:
		return nil, false
	case frame.BlockBox, frame.InlineBox:
		sn := t.StyledNode(box)
		if sn == nil {
			return nil, false
		}
		if !css.GetProperty(t.Styles, sn, style.Visibility).Is("visible") {
			return nil, false
		}
		c, ok := css.GetProperty(t.Styles, sn, style.BackgroundColor).Color()
		if !ok { // transparent
			return nil, false
		}
		return SolidRectangle{Rect: box.Dimensions.BorderBox(), Color: c}, true
	}
	panic(fmt.Sprintf("displaylist: unknown box type %v", box.Type))
}

// Equal compares two display lists command by command.
func (l List) Equal(other List) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

func (l List) String() string {
	var b strings.Builder
	for i, cmd := range l {
		fmt.Fprintf(&b, "%3d: %s\n", i, cmd)
	}
	return b.String()
}
