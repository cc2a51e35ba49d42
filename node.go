package tothepoint

// Node is a read-only reference into a parsed document tree. It is the
// capability the extraction pipeline consumes instead of a concrete parser:
// any backend that supports ordered selector queries, ancestor matching,
// text flattening, and node identity satisfies it. Implementations live in
// subpackages (e.g., goquery/).
//
// A Node doubles as the stable back-reference the presentation layer uses
// to highlight or scroll to the source element; the core never mutates the
// tree behind it.
type Node interface {
	// Tag returns the lowercase element name ("p", "h2", "blockquote", ...).
	Tag() string

	// Text returns the flattened text content of the node's subtree,
	// without any normalization.
	Text() string

	// Find returns all descendants matching the CSS selector group,
	// in document order.
	Find(selector string) []Node

	// Matches reports whether the node itself matches the selector.
	Matches(selector string) bool

	// HasAncestor reports whether any ancestor of the node matches
	// the selector.
	HasAncestor(selector string) bool

	// Contains reports whether other is a descendant of this node.
	Contains(other Node) bool

	// Equal reports whether both references point at the same source node.
	Equal(other Node) bool
}
