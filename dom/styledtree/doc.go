/*
Package styledtree is a straightforward default implementation of a styled document tree.

Overview

The styled tree mirrors the DOM: there is exactly one styled node for every
DOM node, with the same shape and in the same order. Every styled node
carries a complete map of resolved style properties.
Using a builder type, cssom.Style() will create a styled tree from a
DOM document and a set of stylesheets.

Styled nodes own their children exclusively. References into the DOM are
held as DOM node IDs, not as pointers; the DOM document is kept alive by
the styled tree and is read-only.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domrender.dom'.
func tracer() tracing.Trace {
	return tracing.Select("domrender.dom")
}
