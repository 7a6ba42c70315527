package ui

import "github.com/milk9111/flipbook/anim"

// Tree is the registry of style-driven nodes for one UI, in creation
// order.
type Tree struct {
	nodes []*Node
}

func NewTree() *Tree {
	return &Tree{}
}

func (t *Tree) Add(n *Node) {
	if n == nil {
		return
	}
	t.nodes = append(t.nodes, n)
}

func (t *Tree) Nodes() []*Node {
	nodes := make([]*Node, 0, len(t.nodes))
	return append(nodes, t.nodes...)
}

// Query returns the attached nodes carrying the marker class.
func (t *Tree) Query(marker string) []*Node {
	var out []*Node
	for _, n := range t.nodes {
		if !n.Detached() && n.HasMarker(marker) {
			out = append(out, n)
		}
	}
	return out
}

// DetachAll marks every node gone, typically right before the host
// discards the widget tree.
func (t *Tree) DetachAll() {
	for _, n := range t.nodes {
		n.Detach()
	}
}

// Select binds a marker query to the tree. The result satisfies the
// animation runner's registry, re-evaluating the query on every
// start.
func (t *Tree) Select(marker string) *Selection {
	return &Selection{tree: t, marker: marker}
}

type Selection struct {
	tree   *Tree
	marker string
}

func (s *Selection) AnimatedElements() []anim.Element {
	nodes := s.tree.Query(s.marker)
	out := make([]anim.Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n)
	}
	return out
}
