package paint

import (
	"sort"

	"github.com/cladeworks/phylopaint/internal/newick"
	"github.com/cladeworks/phylopaint/internal/tree"
)

// MatchScore is the Jaccard similarity between two sequence-id lists.
// Duplicates are collapsed before comparison.
func MatchScore(a, b []string) float64 {
	sa := toSet(a)
	sb := toSet(b)
	if len(sa) == 0 && len(sb) == 0 {
		return 0
	}
	inter := 0
	for id := range sa {
		if sb[id] {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	return float64(inter) / float64(union)
}

func toSet(ids []string) map[string]bool {
	s := make(map[string]bool, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// nodeMatch pairs two internal nodes whose multidomain descendants
// overlap reciprocally.
type nodeMatch struct {
	a, b *newick.Node
}

func (m nodeMatch) contains(n *newick.Node) bool {
	return m.a == n || m.b == n
}

// annotateDescendants computes, for every node, the sequence ids of the
// multidomain fragments below it. Postorder keeps it a single bottom-up
// pass.
func annotateDescendants(root *newick.Node, fragments map[*newick.Node]string) map[*newick.Node][]string {
	desc := make(map[*newick.Node][]string)
	for _, n := range tree.Postorder(root) {
		if n.IsLeaf() {
			if id, ok := fragments[n]; ok {
				desc[n] = []string{id}
			}
			continue
		}
		var ids []string
		for _, c := range n.Children {
			ids = append(ids, desc[c]...)
		}
		desc[n] = ids
	}
	return desc
}

// findCladeMatches scores every pair of annotated internal nodes and
// keeps reciprocal matches above the cutoff. Leaves are skipped to keep
// the match set from bloating; ancestor/descendant pairs cannot match.
func findCladeMatches(root *newick.Node, desc map[*newick.Node][]string, cutoff float64) []nodeMatch {
	var refs []*newick.Node
	for _, n := range tree.Postorder(root) {
		if !n.IsLeaf() && len(desc[n]) > 0 {
			refs = append(refs, n)
		}
	}

	var matches []nodeMatch
	for i := 0; i < len(refs); i++ {
		for j := i + 1; j < len(refs); j++ {
			score := MatchScore(desc[refs[i]], desc[refs[j]])
			if score < cutoff {
				continue
			}
			if refs[i].IsAncestorOf(refs[j]) || refs[j].IsAncestorOf(refs[i]) {
				continue
			}
			matches = append(matches, nodeMatch{a: refs[i], b: refs[j]})
		}
	}
	return cleanMatches(matches)
}

// cleanMatches drops matches that are subsumed by matches between their
// ancestors: (A,B) goes away when some (C,D) has C above A and D above B
// (either orientation), and likewise when a match shares a node with
// this one and its other end sits above this one's other end.
func cleanMatches(matches []nodeMatch) []nodeMatch {
	var clean []nodeMatch
	for i, m := range matches {
		ancA := ancestorSet(m.a)
		ancB := ancestorSet(m.b)
		subsumed := false
		for j, other := range matches {
			if i == j {
				continue
			}
			if (ancA[other.a] && ancB[other.b]) || (ancA[other.b] && ancB[other.a]) {
				subsumed = true
				break
			}
			if m.a != other.a && m.a != other.b && m.b != other.a && m.b != other.b {
				continue
			}
			// Shared node: the wider match wins.
			if other.contains(m.a) && (ancB[other.a] || ancB[other.b]) {
				subsumed = true
				break
			}
			if other.contains(m.b) && (ancA[other.a] || ancA[other.b]) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			clean = append(clean, m)
		}
	}
	return clean
}

func ancestorSet(n *newick.Node) map[*newick.Node]bool {
	set := make(map[*newick.Node]bool)
	for _, a := range n.Ancestors() {
		set[a] = true
	}
	return set
}

// mergeMatches folds pairwise matches into groups of mutually
// overlapping nodes. A match bridging two existing groups merges them.
func mergeMatches(matches []nodeMatch) [][]*newick.Node {
	var groups []map[*newick.Node]bool
	for _, m := range matches {
		var hit []int
		for gi, g := range groups {
			if g[m.a] || g[m.b] {
				hit = append(hit, gi)
			}
		}
		switch len(hit) {
		case 0:
			groups = append(groups, map[*newick.Node]bool{m.a: true, m.b: true})
		case 1:
			groups[hit[0]][m.a] = true
			groups[hit[0]][m.b] = true
		default:
			// Merge everything into the first hit group.
			dst := groups[hit[0]]
			dst[m.a] = true
			dst[m.b] = true
			for k := len(hit) - 1; k >= 1; k-- {
				for n := range groups[hit[k]] {
					dst[n] = true
				}
				groups = append(groups[:hit[k]], groups[hit[k]+1:]...)
			}
		}
	}

	// Keep node order deterministic: matches arrive in traversal order,
	// so replay it.
	order := make(map[*newick.Node]int)
	pos := 0
	for _, m := range matches {
		for _, n := range []*newick.Node{m.a, m.b} {
			if _, ok := order[n]; !ok {
				order[n] = pos
				pos++
			}
		}
	}
	result := make([][]*newick.Node, 0, len(groups))
	for _, g := range groups {
		nodes := make([]*newick.Node, 0, len(g))
		for n := range g {
			nodes = append(nodes, n)
		}
		sort.Slice(nodes, func(i, j int) bool { return order[nodes[i]] < order[nodes[j]] })
		result = append(result, nodes)
	}
	sort.Slice(result, func(i, j int) bool { return order[result[i][0]] < order[result[j][0]] })
	return result
}
