/*
Package domrender renders HTML documents into display lists.

Rendering is a pipeline of pure stages:

    DOM + stylesheets ──► styled tree ──► layout tree ──► display list

Package cssom styles a DOM (package dom), package layout computes block-model
geometry for the styled tree, and package displaylist flattens the layout
tree into paint commands. Package raster may paint a display list into an
image.

No stage modifies its input, and no stage keeps state between calls.
Independent documents may therefore be rendered concurrently, see RenderAll.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package domrender

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domrender'.
func tracer() tracing.Trace {
	return tracing.Select("domrender")
}
