/*
Package useragent provides the built-in default stylesheet.

The stylesheet assigns the `display` property for HTML elements, as
browsers do. Elements not mentioned are inline (the initial value of
`display`). Elements which never render, like <head> or <script>, are
hidden with `display: none`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package useragent

import (
	"sync"

	"github.com/npillmayer/domrender/dom/style/cssom"
	"github.com/npillmayer/domrender/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domrender.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("domrender.cssom")
}

const source = `
html, address, blockquote, body, center, dd, details, dialog, dir, div, dl,
dt, fieldset, figcaption, figure, footer, form, h1, h2, h3, h4, h5, h6,
header, hgroup, hr, legend, main, menu, nav, ol, p, pre, section, summary,
ul, article, aside, table, tr, td, th, thead, tbody, tfoot, caption {
	display: block;
}
li {
	display: list-item;
}
head, link, meta, script, style, title, template, base, noscript {
	display: none;
}
body {
	margin: 8px;
}
p, blockquote, dl, figure, ol, ul, pre {
	margin-top: 16px;
	margin-bottom: 16px;
}
h1 { font-size: 32px; margin-top: 21px; margin-bottom: 21px; }
h2 { font-size: 24px; margin-top: 20px; margin-bottom: 20px; }
h3 { font-size: 18px; margin-top: 18px; margin-bottom: 18px; }
ol, ul {
	padding-left: 40px;
}
blockquote, figure {
	margin-left: 40px;
	margin-right: 40px;
}
hr {
	border-width: 1px;
	margin-top: 8px;
	margin-bottom: 8px;
}
`

var (
	once  sync.Once
	sheet *douceuradapter.CSSStyles
)

// Default returns the user-agent stylesheet. It is parsed once, on first
// use, and must not be modified by clients.
func Default() cssom.StyleSheet {
	once.Do(func() {
		var err error
		sheet, err = douceuradapter.Parse(source)
		if err != nil {
			// the source is a constant, so this is a programming error
			panic("useragent: cannot parse default stylesheet: " + err.Error())
		}
		tracer().Debugf("user-agent stylesheet has %d rules", len(sheet.Rules()))
	})
	return sheet
}

// Source returns the CSS source of the user-agent stylesheet.
func Source() string {
	return source
}
