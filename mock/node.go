package mock

import tothepoint "github.com/drivernf/to-the-point"

var _ tothepoint.Node = (*Node)(nil)

// Node is a mock implementation of tothepoint.Node. Unset methods return
// zero values so tests only wire what they exercise.
type Node struct {
	TagFn         func() string
	TextFn        func() string
	FindFn        func(selector string) []tothepoint.Node
	MatchesFn     func(selector string) bool
	HasAncestorFn func(selector string) bool
	ContainsFn    func(other tothepoint.Node) bool
	EqualFn       func(other tothepoint.Node) bool
}

func (n *Node) Tag() string {
	if n.TagFn == nil {
		return ""
	}
	return n.TagFn()
}

func (n *Node) Text() string {
	if n.TextFn == nil {
		return ""
	}
	return n.TextFn()
}

func (n *Node) Find(selector string) []tothepoint.Node {
	if n.FindFn == nil {
		return nil
	}
	return n.FindFn(selector)
}

func (n *Node) Matches(selector string) bool {
	return n.MatchesFn != nil && n.MatchesFn(selector)
}

func (n *Node) HasAncestor(selector string) bool {
	return n.HasAncestorFn != nil && n.HasAncestorFn(selector)
}

func (n *Node) Contains(other tothepoint.Node) bool {
	return n.ContainsFn != nil && n.ContainsFn(other)
}

func (n *Node) Equal(other tothepoint.Node) bool {
	if n.EqualFn == nil {
		return n == other
	}
	return n.EqualFn(other)
}
