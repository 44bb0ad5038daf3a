/*
Package dom provides the document tree consumed by the styling engine.

Status

Early draft, API may change frequently. Please stay patient.

Overview

Markup parsers produce a tree of element and text nodes. Package dom holds
such a tree in a read-only form: every node exclusively owns its children,
and a Document indexes the tree in pre-order, handing out NodeIDs.
Derived trees (the styled tree, the layout tree) never point back into
the DOM, but rather keep a NodeID and look up the DOM node through the
Document, which outlives every tree derived from it.

Construction is done either programmatically

    root := dom.Element("div", dom.Attrs{"id": "main"},
        dom.Element("p", dom.Attrs{"class": "intro lead"}, dom.Text("Hello")),
    )
    doc := dom.NewDocument(root)

or by converting an HTML parse tree (see package htmladapter).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domrender.dom'.
func tracer() tracing.Trace {
	return tracing.Select("domrender.dom")
}
