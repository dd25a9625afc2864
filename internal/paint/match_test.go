package paint

import (
	"testing"

	"github.com/cladeworks/phylopaint/internal/newick"
)

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical", []string{"x", "y"}, []string{"x", "y"}, 1},
		{"disjoint", []string{"x"}, []string{"y"}, 0},
		{"partial overlap", []string{"x", "y"}, []string{"y", "z"}, 1.0 / 3.0},
		{"duplicates collapse", []string{"x", "x", "y"}, []string{"x", "y", "y"}, 1},
		{"both empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchScore(tt.a, tt.b); got != tt.want {
				t.Errorf("MatchScore(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFindCladeMatches_ReciprocalPair(t *testing.T) {
	root, err := newick.Parse("((X_1,Y_1),(X_2,Y_2));", newick.Options{})
	if err != nil {
		t.Fatal(err)
	}
	fragments := map[*newick.Node]string{}
	for _, l := range root.Leaves() {
		fragments[l] = l.Name[:1]
	}

	desc := annotateDescendants(root, fragments)
	matches := findCladeMatches(root, desc, 0.4)

	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	m := matches[0]
	if m.a == m.b || m.a.IsLeaf() || m.b.IsLeaf() {
		t.Error("match should pair two distinct internal nodes")
	}
}

func TestFindCladeMatches_AncestorsDoNotMatch(t *testing.T) {
	// The inner and outer clade share all their fragment ids, but one
	// contains the other.
	root, err := newick.Parse("((X_1,(X_2,Y_1)),Y_2);", newick.Options{})
	if err != nil {
		t.Fatal(err)
	}
	fragments := map[*newick.Node]string{}
	for _, l := range root.Leaves() {
		fragments[l] = l.Name[:1]
	}

	desc := annotateDescendants(root, fragments)
	matches := findCladeMatches(root, desc, 0.4)

	for _, m := range matches {
		if m.a.IsAncestorOf(m.b) || m.b.IsAncestorOf(m.a) {
			t.Error("ancestor/descendant pair slipped through the match filter")
		}
	}
}

func TestCleanMatches_WidestMatchWins(t *testing.T) {
	root, err := newick.Parse("(((X_1,Y_1),(Z_1,W_1)),((X_2,Y_2),(Z_2,W_2)));", newick.Options{})
	if err != nil {
		t.Fatal(err)
	}
	fragments := map[*newick.Node]string{}
	for _, l := range root.Leaves() {
		fragments[l] = l.Name[:1]
	}

	desc := annotateDescendants(root, fragments)
	matches := findCladeMatches(root, desc, 0.4)

	// All the nested pairwise matches collapse to the single match
	// between the two top-level clades.
	if len(matches) != 1 {
		t.Fatalf("expected 1 surviving match, got %d", len(matches))
	}
	p1 := root.Children[0]
	p2 := root.Children[1]
	m := matches[0]
	if !(m.contains(p1) && m.contains(p2)) {
		t.Error("surviving match should pair the two top-level clades")
	}
}

func TestMergeMatches_BridgingMatchMergesGroups(t *testing.T) {
	a, b, c, d := &newick.Node{Name: "a"}, &newick.Node{Name: "b"}, &newick.Node{Name: "c"}, &newick.Node{Name: "d"}

	groups := mergeMatches([]nodeMatch{
		{a: a, b: b},
		{a: c, b: d},
		{a: b, b: c}, // bridges the two groups
	})

	if len(groups) != 1 {
		t.Fatalf("expected 1 merged group, got %d", len(groups))
	}
	if len(groups[0]) != 4 {
		t.Errorf("expected 4 nodes in merged group, got %d", len(groups[0]))
	}
}

func TestMergeMatches_DisjointStayApart(t *testing.T) {
	a, b, c, d := &newick.Node{}, &newick.Node{}, &newick.Node{}, &newick.Node{}

	groups := mergeMatches([]nodeMatch{
		{a: a, b: b},
		{a: c, b: d},
	})

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
}
