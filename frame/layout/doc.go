/*
Package layout computes the layout tree for a styled tree.

Layout is restricted to the block model: every box stacks vertically
inside its parent, taking the parent's full content width unless a width
is given explicitly. There is no line breaking and no text measurement;
text nodes do not generate boxes. Inline-level elements do generate
boxes, but these are laid out as blocks as well.

Layout is total. Boxes which are wider than the viewport are valid
output, and sizes which would become negative are clamped to zero.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domrender.frame'.
func tracer() tracing.Trace {
	return tracing.Select("domrender.frame")
}
