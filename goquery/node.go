// Package goquery adapts a parsed HTML tree to the tothepoint.Node
// capability using PuerkitoBio/goquery. It is one of two document backends
// the core can run against; the other is the live page the presentation
// layer owns. The core never sees goquery types directly.
package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	tothepoint "github.com/drivernf/to-the-point"
)

// Ensure Node implements tothepoint.Node at compile time.
var _ tothepoint.Node = (*Node)(nil)

// Node wraps a single parsed element. The underlying *html.Node pointer is
// the stable identity used for equality and containment, and serves as the
// opaque back-reference for highlighting.
type Node struct {
	sel *goquery.Selection
}

// wrap converts every node of a selection into a []tothepoint.Node,
// preserving document order.
func wrap(sel *goquery.Selection) []tothepoint.Node {
	nodes := make([]tothepoint.Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}

// Tag returns the lowercase element name.
func (n *Node) Tag() string {
	return goquery.NodeName(n.sel)
}

// Text returns the flattened text content of the subtree.
func (n *Node) Text() string {
	return n.sel.Text()
}

// Find returns descendants matching the selector group, in document order.
func (n *Node) Find(selector string) []tothepoint.Node {
	return wrap(n.sel.Find(selector))
}

// Matches reports whether the node itself matches the selector.
func (n *Node) Matches(selector string) bool {
	return n.sel.Is(selector)
}

// HasAncestor reports whether any ancestor matches the selector.
func (n *Node) HasAncestor(selector string) bool {
	return n.sel.ParentsFiltered(selector).Length() > 0
}

// Contains reports whether other is a descendant of this node. Nodes from a
// different backend are never contained.
func (n *Node) Contains(other tothepoint.Node) bool {
	o, ok := other.(*Node)
	if !ok {
		return false
	}
	self := n.htmlNode()
	for p := o.htmlNode().Parent; p != nil; p = p.Parent {
		if p == self {
			return true
		}
	}
	return false
}

// Equal reports whether both references point at the same parsed node.
func (n *Node) Equal(other tothepoint.Node) bool {
	o, ok := other.(*Node)
	return ok && n.htmlNode() == o.htmlNode()
}

func (n *Node) htmlNode() *html.Node {
	return n.sel.Nodes[0]
}

// OuterHTML renders the node's subtree back to HTML. It fails with EINVALID
// when the node comes from a different backend.
func OuterHTML(n tothepoint.Node) (string, error) {
	gn, ok := n.(*Node)
	if !ok {
		return "", tothepoint.Errorf(tothepoint.EINVALID, "node is not backed by a parsed document")
	}
	return goquery.OuterHtml(gn.sel)
}
