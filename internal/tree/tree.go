// Package tree provides traversal and rerooting operations on parsed
// phylogenetic trees.
package tree

import (
	"github.com/cladeworks/phylopaint/internal/newick"
)

// Postorder returns the nodes under root in postorder (children before
// parents). Leaf-first analyses depend on this ordering.
func Postorder(root *newick.Node) []*newick.Node {
	var nodes []*newick.Node
	var walk func(n *newick.Node)
	walk = func(n *newick.Node) {
		for _, c := range n.Children {
			walk(c)
		}
		nodes = append(nodes, n)
	}
	walk(root)
	return nodes
}

// Preorder returns the nodes under root in preorder (parents before
// children).
func Preorder(root *newick.Node) []*newick.Node {
	var nodes []*newick.Node
	var walk func(n *newick.Node)
	walk = func(n *newick.Node) {
		nodes = append(nodes, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return nodes
}

// AreSisterLeaves reports whether a and b are leaves sharing an immediate
// parent with no other descendants.
func AreSisterLeaves(a, b *newick.Node) bool {
	if a == b || !a.IsLeaf() || !b.IsLeaf() {
		return false
	}
	p := a.Parent
	if p == nil || p != b.Parent {
		return false
	}
	return len(p.Children) == 2
}
