package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/domrender/dom"
	"github.com/npillmayer/domrender/dom/style"
)

// NodeID is a handle for a node of a styled tree.
type NodeID int32

// NoNode is the invalid styled node handle.
const NoNode NodeID = -1

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	id             NodeID
	domNode        dom.NodeID
	computedStyles *style.PropertyMap
	children       []*StyNode
}

// ID returns the handle of this node within its tree.
func (sn *StyNode) ID() NodeID {
	return sn.id
}

// DOMNode returns the ID of the DOM node this styled node has been created for.
func (sn *StyNode) DOMNode() dom.NodeID {
	return sn.domNode
}

// Styles returns the resolved style properties of a styled node.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.computedStyles
}

// Value returns the resolved value for a property. Lookups are always
// defined: properties missing from the node's map yield initial values.
func (sn *StyNode) Value(k style.Key) style.Value {
	return sn.computedStyles.Value(k)
}

// Children returns the children of a styled node, in document order.
// Clients must not modify the returned slice.
func (sn *StyNode) Children() []*StyNode {
	return sn.children
}

// ChildCount returns the number of children of a node.
func (sn *StyNode) ChildCount() int {
	return len(sn.children)
}

func (sn *StyNode) String() string {
	return fmt.Sprintf("(StyNode #%d dom=%d #ch=%d)", sn.id, sn.domNode, len(sn.children))
}

// --- Tree ------------------------------------------------------------------

// Tree is a styled tree. It references the DOM document it has been
// created for.
type Tree struct {
	Doc     *dom.Document
	Root    *StyNode
	nodes   []*StyNode
	parents []NodeID
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the styled node for a handle, or nil for invalid handles.
func (t *Tree) Node(id NodeID) *StyNode {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Parent returns the parent of a node, or NoNode for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	if id < 0 || int(id) >= len(t.parents) {
		return NoNode
	}
	return t.parents[id]
}

// DOM returns the DOM node a styled node has been created for.
func (t *Tree) DOM(sn *StyNode) *dom.Node {
	if t.Doc == nil || sn == nil {
		return nil
	}
	return t.Doc.Node(sn.domNode)
}

// Walk visits all nodes in pre-order. If fn returns false, the children of
// the current node are skipped.
func (t *Tree) Walk(fn func(sn *StyNode, depth int) bool) {
	if t.Root != nil {
		walk(t.Root, 0, fn)
	}
}

func walk(sn *StyNode, depth int, fn func(*StyNode, int) bool) {
	if !fn(sn, depth) {
		return
	}
	for _, ch := range sn.children {
		walk(ch, depth+1, fn)
	}
}

// Equal compares two styled trees structurally: both trees must have the
// same shape, reference the same DOM nodes and carry equal styles.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	return equalNodes(t.Root, other.Root)
}

func equalNodes(a, b *StyNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.domNode != b.domNode || len(a.children) != len(b.children) ||
		!a.computedStyles.Equal(b.computedStyles) {
		return false
	}
	for i := range a.children {
		if !equalNodes(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

// --- Builder ---------------------------------------------------------------

// Builder creates styled trees. Nodes have to be added in pre-order, i.e.
// a parent node has to be added before its children.
type Builder struct {
	tree *Tree
}

// NewBuilder creates a builder for a styled tree over a DOM document.
func NewBuilder(doc *dom.Document) *Builder {
	n := 0
	if doc != nil {
		n = doc.Len()
	}
	return &Builder{tree: &Tree{
		Doc:     doc,
		nodes:   make([]*StyNode, 0, n),
		parents: make([]NodeID, 0, n),
	}}
}

// Add creates a new styled node for a DOM node. If parent is NoNode, the
// node becomes the root of the tree; otherwise it is appended to the
// children of parent. Add returns nil if parent is invalid or a second root
// is added.
func (b *Builder) Add(domNode dom.NodeID, parent NodeID, styles *style.PropertyMap) *StyNode {
	sn := &StyNode{
		id:             NodeID(len(b.tree.nodes)),
		domNode:        domNode,
		computedStyles: styles,
	}
	if styles == nil {
		sn.computedStyles = style.NewPropertyMap()
	}
	if parent == NoNode {
		if b.tree.Root != nil {
			tracer().Errorf("styled tree already has a root node")
			return nil
		}
		b.tree.Root = sn
	} else {
		p := b.tree.Node(parent)
		if p == nil {
			tracer().Errorf("cannot add styled node to non-existent parent %d", parent)
			return nil
		}
		p.children = append(p.children, sn)
	}
	b.tree.nodes = append(b.tree.nodes, sn)
	b.tree.parents = append(b.tree.parents, parent)
	return sn
}

// Tree returns the tree built so far. The builder must not be used
// afterwards.
func (b *Builder) Tree() *Tree {
	t := b.tree
	b.tree = nil
	return t
}
