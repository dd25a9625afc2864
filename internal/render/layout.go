package render

import (
	"github.com/cladeworks/phylopaint/internal/newick"
	"github.com/cladeworks/phylopaint/internal/tree"
)

// point is a node position in layout units: x is the path length from
// the root, y the leaf row (internal nodes sit at the mean of their
// children).
type point struct {
	x, y float64
}

// layout computes rectangular phylogram positions for every node.
type layout struct {
	pos  map[*newick.Node]point
	maxX float64
	rows int
}

func layoutTree(root *newick.Node) *layout {
	l := &layout{pos: make(map[*newick.Node]point)}

	// Leaf rows first, top to bottom in traversal order.
	row := 0
	for _, n := range tree.Preorder(root) {
		if !n.IsLeaf() {
			continue
		}
		x := pathLength(n)
		l.pos[n] = point{x: x, y: float64(row)}
		if x > l.maxX {
			l.maxX = x
		}
		row++
	}
	l.rows = row

	// Internal nodes at the mean y of their children, bottom-up.
	for _, n := range tree.Postorder(root) {
		if n.IsLeaf() {
			continue
		}
		sum := 0.0
		for _, c := range n.Children {
			sum += l.pos[c].y
		}
		l.pos[n] = point{x: pathLength(n), y: sum / float64(len(n.Children))}
	}
	return l
}

func pathLength(n *newick.Node) float64 {
	d := 0.0
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		d += cur.BranchLength()
	}
	return d
}
