/*
Package cssom provides functionality for CSS styling.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
Styling a document means: for every node of the DOM, find all the CSS rules
whose selectors match the node, order them by the cascade and merge their
declarations into a single set of properties. Properties not set by any rule
are inherited from the parent node or take their initial value.

A good explanation of styling may be found in

   https://hacks.mozilla.org/2017/08/inside-a-super-fast-css-engine-quantum-css-aka-stylo/

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. Concrete implementations may be found in sub-packages
of package style (see package douceuradapter).
Stylesheets are compiled before use: selectors are parsed into simple
selectors (tag, id, classes) and declarations into typed style values.
Selector syntax is checked with https://godoc.org/github.com/andybalholm/cascadia.
Only simple selectors take part in matching; combinators, attribute
selectors and pseudo-classes are skipped.

Malformed selectors and declarations never fail a styling run. They are
dropped and reported through the tracer.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'domrender.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("domrender.cssom")
}
