// Package newick provides parsing and serialization of phylogenetic trees
// in the Newick format, along with the rooted node structure the rest of
// the tool operates on.
package newick

import (
	"strconv"
	"strings"
)

// Node is a single node of a rooted phylogenetic tree. Leaves carry a
// Name; internal nodes may carry a branch support value. Branch length
// and support are optional in Newick, so presence is tracked explicitly.
type Node struct {
	// Name is the leaf label, or an internal node label when the label
	// did not parse as a support value.
	Name string
	// Length is the branch length to the parent.
	Length    float64
	HasLength bool
	// Support is the branch support value (bootstrap, posterior, ...).
	Support    float64
	HasSupport bool

	Parent   *Node
	Children []*Node
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// AddChild appends child to n and sets its parent pointer.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// RemoveChild detaches child from n. It is a no-op if child is not a
// direct child of n.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// Leaves returns the leaves under n in left-to-right order.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	var walk func(node *Node)
	walk = func(node *Node) {
		if node.IsLeaf() {
			leaves = append(leaves, node)
			return
		}
		for _, c := range node.Children {
			walk(c)
		}
	}
	walk(n)
	return leaves
}

// BranchLength returns the branch length to the parent, defaulting to 1
// when the tree carries no length on this branch. The default matches
// what tree viewers assume for cladograms.
func (n *Node) BranchLength() float64 {
	if n.HasLength {
		return n.Length
	}
	return 1
}

// Ancestors returns the chain of ancestors from the parent up to the root.
func (n *Node) Ancestors() []*Node {
	var anc []*Node
	for p := n.Parent; p != nil; p = p.Parent {
		anc = append(anc, p)
	}
	return anc
}

// IsAncestorOf reports whether n is a (strict) ancestor of other.
func (n *Node) IsAncestorOf(other *Node) bool {
	for p := other.Parent; p != nil; p = p.Parent {
		if p == n {
			return true
		}
	}
	return false
}

// String serializes the subtree rooted at n as a Newick fragment without
// the trailing semicolon.
func (n *Node) String() string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

// Write serializes the tree rooted at n as a full Newick line, including
// the trailing semicolon.
func Write(n *Node) string {
	return n.String() + ";"
}

func writeNode(b *strings.Builder, n *Node) {
	if !n.IsLeaf() {
		b.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			writeNode(b, c)
		}
		b.WriteByte(')')
		if n.HasSupport {
			b.WriteString(formatNumber(n.Support))
		}
	}
	if n.Name != "" {
		b.WriteString(quoteName(n.Name))
	}
	if n.HasLength {
		b.WriteByte(':')
		b.WriteString(formatNumber(n.Length))
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// quoteName wraps the name in single quotes when it contains characters
// that are structural in Newick.
func quoteName(name string) string {
	if strings.ContainsAny(name, "(),:;[] \t'") {
		return "'" + strings.ReplaceAll(name, "'", "''") + "'"
	}
	return name
}
