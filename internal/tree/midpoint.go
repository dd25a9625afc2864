package tree

import (
	"github.com/cladeworks/phylopaint/internal/newick"
)

// MidpointRoot reroots the tree at the midpoint of the longest
// leaf-to-leaf path and returns the new root. Trees with fewer than two
// leaves are returned unchanged. Branches without lengths count as unit
// length, matching cladogram conventions.
func MidpointRoot(root *newick.Node) *newick.Node {
	leaves := root.Leaves()
	if len(leaves) < 2 {
		return root
	}

	// Two sweeps find the tree diameter endpoints.
	dist0, _ := distancesFrom(leaves[0])
	a := farthestLeaf(leaves, dist0)
	distA, prevA := distancesFrom(a)
	b := farthestLeaf(leaves, distA)
	diameter := distA[b]
	if diameter == 0 {
		return root
	}
	half := diameter / 2

	// Walk from b back toward a; distA decreases along the way. The
	// midpoint sits on the edge where distA crosses the half-diameter.
	cur := b
	for cur != a {
		next := prevA[cur]
		if distA[next] <= half && half <= distA[cur] {
			if cur.Parent == next {
				return RerootAbove(cur, distA[cur]-half)
			}
			return RerootAbove(next, half-distA[next])
		}
		cur = next
	}
	return root
}

// RerootAbove inserts a new root on the branch above child, at dist from
// child, and reorients the rest of the tree below it. The old root is
// spliced out when it degenerates to a single-child node.
func RerootAbove(child *newick.Node, dist float64) *newick.Node {
	parent := child.Parent
	if parent == nil {
		return child
	}
	edgeLen := child.BranchLength()
	if dist < 0 {
		dist = 0
	}
	if dist > edgeLen {
		dist = edgeLen
	}

	root := &newick.Node{}
	parent.RemoveChild(child)
	root.AddChild(child)
	child.Length = dist
	child.HasLength = true

	// Invert the ancestor chain: each former parent becomes a child of
	// the node below it. Branch lengths and supports travel with their
	// edges.
	prev := root
	prevLen := edgeLen - dist
	prevSupport, prevHasSupport := child.Support, child.HasSupport
	cur := parent
	for cur != nil {
		next := cur.Parent
		nextLen := cur.BranchLength()
		nextSupport, nextHasSupport := cur.Support, cur.HasSupport
		if next != nil {
			next.RemoveChild(cur)
		}
		prev.AddChild(cur)
		cur.Length = prevLen
		cur.HasLength = true
		cur.Support, cur.HasSupport = prevSupport, prevHasSupport

		prev = cur
		prevLen = nextLen
		prevSupport, prevHasSupport = nextSupport, nextHasSupport
		cur = next
	}

	// prev is now the old root, reattached as a descendant. A bifurcating
	// old root is left with one child and gets spliced out.
	if len(prev.Children) == 1 && prev.Parent != nil {
		only := prev.Children[0]
		gp := prev.Parent
		prev.RemoveChild(only)
		spliceLen := prev.BranchLength() + only.BranchLength()
		gp.RemoveChild(prev)
		gp.AddChild(only)
		only.Length = spliceLen
		only.HasLength = true
	}
	return root
}

// distancesFrom computes path lengths from start to every node, treating
// the tree as an undirected weighted graph. prev maps each node to its
// neighbor on the path back to start.
func distancesFrom(start *newick.Node) (map[*newick.Node]float64, map[*newick.Node]*newick.Node) {
	dist := map[*newick.Node]float64{start: 0}
	prev := map[*newick.Node]*newick.Node{}
	stack := []*newick.Node{start}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		d := dist[n]

		visit := func(neighbor *newick.Node, weight float64) {
			if _, seen := dist[neighbor]; seen {
				return
			}
			dist[neighbor] = d + weight
			prev[neighbor] = n
			stack = append(stack, neighbor)
		}
		if n.Parent != nil {
			visit(n.Parent, n.BranchLength())
		}
		for _, c := range n.Children {
			visit(c, c.BranchLength())
		}
	}
	return dist, prev
}

func farthestLeaf(leaves []*newick.Node, dist map[*newick.Node]float64) *newick.Node {
	best := leaves[0]
	for _, l := range leaves[1:] {
		if dist[l] > dist[best] {
			best = l
		}
	}
	return best
}
