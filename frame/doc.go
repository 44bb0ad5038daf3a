/*
Package frame holds the types of the box model.

Boxes follow the CSS box model: a box has a content area, surrounded by
padding, border and margin. All dimensions are measured in logical pixels
of the viewport.

The tree of boxes is produced by package layout from a styled tree. Boxes
own their children exclusively; the styled node a box has been generated
for is referenced by its handle.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domrender.frame'.
func tracer() tracing.Trace {
	return tracing.Select("domrender.frame")
}
