package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// NodeID is a handle for a node within a Document.
type NodeID int32

// NoNode is the invalid node handle.
const NoNode NodeID = -1

// Document indexes a DOM tree. Node IDs are dense and assigned in pre-order,
// so the root always has ID 0.
//
// A Document is immutable after construction and may be shared between
// goroutines.
type Document struct {
	nodes    []*Node
	parents  []NodeID
	children [][]NodeID
	index    map[*Node]NodeID
}

// NewDocument indexes the tree rooted at root. root must not be nil.
//
// The tree must not be modified after it has been handed to NewDocument.
func NewDocument(root *Node) *Document {
	if root == nil {
		panic("dom: cannot create document from nil root")
	}
	doc := &Document{index: make(map[*Node]NodeID)}
	doc.add(root, NoNode)
	tracer().Debugf("indexed DOM with %d nodes", len(doc.nodes))
	return doc
}

func (doc *Document) add(n *Node, parent NodeID) NodeID {
	id := NodeID(len(doc.nodes))
	doc.nodes = append(doc.nodes, n)
	doc.parents = append(doc.parents, parent)
	doc.children = append(doc.children, nil)
	doc.index[n] = id
	if len(n.children) > 0 {
		chs := make([]NodeID, 0, len(n.children))
		for _, ch := range n.children {
			chs = append(chs, doc.add(ch, id))
		}
		doc.children[id] = chs
	}
	return id
}

// Root returns the ID of the root node.
func (doc *Document) Root() NodeID {
	return 0
}

// Len returns the number of nodes in the document.
func (doc *Document) Len() int {
	return len(doc.nodes)
}

// Node returns the node for an ID, or nil for invalid IDs.
func (doc *Document) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(doc.nodes) {
		return nil
	}
	return doc.nodes[id]
}

// IDOf returns the ID of a node of this document, or NoNode.
func (doc *Document) IDOf(n *Node) NodeID {
	if id, ok := doc.index[n]; ok {
		return id
	}
	return NoNode
}

// Parent returns the ID of the parent of a node, or NoNode for the root.
func (doc *Document) Parent(id NodeID) NodeID {
	if id < 0 || int(id) >= len(doc.parents) {
		return NoNode
	}
	return doc.parents[id]
}

// Children returns the IDs of the children of a node, in document order.
// Clients must not modify the returned slice.
func (doc *Document) Children(id NodeID) []NodeID {
	if id < 0 || int(id) >= len(doc.children) {
		return nil
	}
	return doc.children[id]
}

// Walk visits all nodes in pre-order. If fn returns false, the children of
// the current node are skipped.
func (doc *Document) Walk(fn func(id NodeID, depth int) bool) {
	doc.walk(doc.Root(), 0, fn)
}

func (doc *Document) walk(id NodeID, depth int, fn func(NodeID, int) bool) {
	if !fn(id, depth) {
		return
	}
	for _, ch := range doc.children[id] {
		doc.walk(ch, depth+1, fn)
	}
}

// FindElements returns the IDs of all elements with a given tag, in document
// order.
func (doc *Document) FindElements(tag string) []NodeID {
	var ids []NodeID
	for i, n := range doc.nodes {
		if n.kind == ElementNode && n.data == tag {
			ids = append(ids, NodeID(i))
		}
	}
	return ids
}
