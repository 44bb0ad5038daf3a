package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Kind is the type of a DOM node.
type Kind uint8

// We know element nodes and text nodes only. Comments, doctypes, etc., are
// dropped by the parser adapters.
const (
	ElementNode Kind = iota
	TextNode
)

func (k Kind) String() string {
	switch k {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Attrs is a map of attribute names to values.
type Attrs map[string]string

// Node is a node of a DOM tree. Nodes are either elements, carrying a tag name
// and attributes, or text nodes, carrying character data.
// A node exclusively owns its children.
type Node struct {
	kind     Kind
	data     string // tag name for elements, content for text nodes
	attrs    Attrs
	children []*Node
}

// Element creates a new element node. The tag name is normalized to lower case,
// as are the attribute names. attrs may be nil.
func Element(tag string, attrs Attrs, children ...*Node) *Node {
	n := &Node{
		kind: ElementNode,
		data: strings.ToLower(tag),
	}
	if len(attrs) > 0 {
		n.attrs = make(Attrs, len(attrs))
		for k, v := range attrs {
			n.attrs[strings.ToLower(k)] = v
		}
	}
	for _, ch := range children {
		if ch != nil {
			n.children = append(n.children, ch)
		}
	}
	return n
}

// Text creates a new text node.
func Text(content string) *Node {
	return &Node{kind: TextNode, data: content}
}

// Kind returns the kind of this node.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsElement is a predicate for element nodes.
func (n *Node) IsElement() bool {
	return n != nil && n.kind == ElementNode
}

// Tag returns the tag name of an element node, or "" for text nodes.
func (n *Node) Tag() string {
	if n.kind != ElementNode {
		return ""
	}
	return n.data
}

// Data returns the tag name for elements and the character content for text
// nodes.
func (n *Node) Data() string {
	return n.data
}

// Attr returns the value of an attribute.
func (n *Node) Attr(name string) (string, bool) {
	if n.attrs == nil {
		return "", false
	}
	v, ok := n.attrs[name]
	return v, ok
}

// Attributes returns a copy of the attributes of a node.
func (n *Node) Attributes() Attrs {
	a := make(Attrs, len(n.attrs))
	for k, v := range n.attrs {
		a[k] = v
	}
	return a
}

// ID returns the value of the `id` attribute, if any.
func (n *Node) ID() string {
	id, _ := n.Attr("id")
	return strings.TrimSpace(id)
}

// Classes returns the class names of the whitespace-separated `class`
// attribute.
func (n *Node) Classes() []string {
	c, ok := n.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(c)
}

// HasClass checks for a class name to be present in the `class` attribute.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// Children returns the children of a node. Clients must not modify the
// returned slice.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.kind {
	case TextNode:
		s := n.data
		if len(s) > 20 {
			s = s[:17] + "..."
		}
		return fmt.Sprintf("#text %q", s)
	}
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(n.data)
	if id := n.ID(); id != "" {
		b.WriteString("#")
		b.WriteString(id)
	}
	for _, c := range n.Classes() {
		b.WriteString(".")
		b.WriteString(c)
	}
	b.WriteString(">")
	return b.String()
}
