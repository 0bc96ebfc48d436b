// File: node.go
// Title: OFX Parse Tree Node
// Description: Defines the Node type representing one tagged OFX element or
//              aggregate with ordered children. A node is owned exclusively
//              by its parent; the tree has no shared ownership and no cycles.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-13
//
// Change History:
// - 2026-08-13 v0.1.0: Initial node implementation

package tree

import (
	"strings"

	mofxstringx "github.com/msto63/mOFX/foundation/utils/stringx"
)

// Node represents one tagged OFX element. Data-bearing leaves carry Text;
// aggregates carry Children. A node never carries both: a node with
// non-blank text has no children.
type Node struct {
	// Tag is the OFX tag name, e.g. "STMTTRN". Tag names are case-sensitive.
	Tag string

	// Text is the trimmed payload of a data-bearing leaf; empty for aggregates.
	Text string

	// Children holds the ordered child nodes of an aggregate.
	Children []*Node
}

// New creates an aggregate node with the given tag
func New(tag string) *Node {
	return &Node{Tag: tag}
}

// NewLeaf creates a data-bearing leaf node with trimmed text
func NewLeaf(tag, text string) *Node {
	return &Node{Tag: tag, Text: strings.TrimSpace(text)}
}

// IsLeaf reports whether the node is a data-bearing leaf
func (n *Node) IsLeaf() bool {
	return mofxstringx.IsNotBlank(n.Text)
}

// AddChild appends a child node, transferring ownership to n
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// FindChild returns the first direct child with the given tag, or nil
func (n *Node) FindChild(tag string) *Node {
	for _, child := range n.Children {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

// FindGrandchild returns the first child-of-a-child with the given tag, or
// nil. This mirrors the one-level wildcard search the currency
// disambiguation convention requires (any child, then the named node).
func (n *Node) FindGrandchild(tag string) *Node {
	for _, child := range n.Children {
		if found := child.FindChild(tag); found != nil {
			return found
		}
	}
	return nil
}

// RemoveChild detaches the given child node and reports whether it was
// present. Order of the remaining children is preserved.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return true
		}
	}
	return false
}

// Depth returns the height of the subtree rooted at n (a leaf has depth 1)
func (n *Node) Depth() int {
	max := 0
	for _, child := range n.Children {
		if d := child.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// Count returns the total number of nodes in the subtree including n
func (n *Node) Count() int {
	total := 1
	for _, child := range n.Children {
		total += child.Count()
	}
	return total
}

// Walk visits n and every descendant in document order. The visitor
// returns false to stop the walk.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}

// String renders the subtree back to OFXv2-style markup with explicit
// closing tags. Intended for debugging and CLI output, not round-tripping.
func (n *Node) String() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(n.Tag)
	b.WriteByte('>')
	if n.IsLeaf() {
		b.WriteString(n.Text)
	} else {
		for _, child := range n.Children {
			child.render(b)
		}
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}
