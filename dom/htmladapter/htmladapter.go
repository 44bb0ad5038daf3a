/*
Package htmladapter converts HTML parse trees into DOM documents.

Parsing is done by golang.org/x/net/html, which implements the HTML5
parsing algorithm. The adapter keeps element and text nodes only; comments,
doctypes and whitespace-only text are dropped, and runs of whitespace in
text are collapsed into a single space. Text content of raw-text elements
(<style>, <script>) is kept unchanged.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package htmladapter

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/domrender/dom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'domrender.dom'.
func tracer() tracing.Trace {
	return tracing.Select("domrender.dom")
}

// ErrNoRootElement is returned if a parse tree does not contain any element.
var ErrNoRootElement = errors.New("HTML parse tree has no root element")

// Parse reads HTML from r and returns a DOM document for it. The <html>
// element will be the root of the document.
func Parse(r io.Reader) (*dom.Document, error) {
	h, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return FromHTMLNode(h)
}

// ParseString is a shortcut for Parse(strings.NewReader(s)).
func ParseString(s string) (*dom.Document, error) {
	return Parse(strings.NewReader(s))
}

// FromHTMLNode converts an already parsed HTML tree. h may be a document node
// or an element node.
func FromHTMLNode(h *html.Node) (*dom.Document, error) {
	root := rootElement(h)
	if root == nil {
		return nil, ErrNoRootElement
	}
	return dom.NewDocument(convert(root, false)), nil
}

func rootElement(h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := rootElement(ch); r != nil {
			return r
		}
	}
	return nil
}

func convert(h *html.Node, raw bool) *dom.Node {
	switch h.Type {
	case html.ElementNode:
		var attrs dom.Attrs
		if len(h.Attr) > 0 {
			attrs = make(dom.Attrs, len(h.Attr))
			for _, a := range h.Attr {
				if _, dup := attrs[a.Key]; dup {
					tracer().Debugf("dropping duplicate attribute %q of <%s>", a.Key, h.Data)
					continue
				}
				attrs[a.Key] = a.Val
			}
		}
		rawText := h.DataAtom == atom.Style || h.DataAtom == atom.Script
		var children []*dom.Node
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			if n := convert(ch, rawText); n != nil {
				children = append(children, n)
			}
		}
		return dom.Element(h.Data, attrs, children...)
	case html.TextNode:
		if raw {
			return dom.Text(h.Data)
		}
		text := collapseWhitespace(h.Data)
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return dom.Text(text)
	}
	return nil // comments, doctype, etc.
}

// collapseWhitespace replaces each run of whitespace with a single space.
func collapseWhitespace(s string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
		default:
			b.WriteRune(r)
			inSpace = false
		}
	}
	return b.String()
}

// ExtractStyleElements returns the content of all <style> elements of a
// document, in document order.
func ExtractStyleElements(doc *dom.Document) []string {
	var css []string
	for _, id := range doc.FindElements("style") {
		var b strings.Builder
		for _, ch := range doc.Children(id) {
			if n := doc.Node(ch); n.Kind() == dom.TextNode {
				b.WriteString(n.Data())
			}
		}
		if s := strings.TrimSpace(b.String()); s != "" {
			css = append(css, s)
		}
	}
	return css
}
