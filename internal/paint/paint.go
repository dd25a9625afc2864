// Package paint groups tree leaves by their parent sequence and assigns
// display colors. Fragments of the same multidomain sequence that sit in
// a recognizable clade structure get a shared highlight color; trivial
// sister pairs and unresolvable fragments fall back to a neutral gray;
// everything else keeps the default ink.
package paint

import (
	"fmt"
	"sort"

	"github.com/cladeworks/phylopaint/internal/newick"
	"github.com/cladeworks/phylopaint/internal/seqid"
	"github.com/cladeworks/phylopaint/internal/tree"
)

// Config controls grouping and color assignment.
type Config struct {
	// Cutoff is the reciprocal Jaccard score two clades must reach to be
	// considered copies of the same multidomain expansion. 0.4 works
	// well on real trees; anything well above noise gives the same
	// grouping, so the value is tunable rather than fixed.
	Cutoff float64
	// Palette overrides the highlight colors. Empty means DefaultPalette.
	Palette []string
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{Cutoff: 0.4}
}

// GroupStatus classifies how a sequence group is rendered.
type GroupStatus string

const (
	// StatusHighlighted groups get a unique palette color.
	StatusHighlighted GroupStatus = "highlighted"
	// StatusSentinel groups render in the neutral gray: a bare sister
	// pair with no surrounding clade signal.
	StatusSentinel GroupStatus = "sentinel"
	// StatusSingle sequences have one leaf and stay unhighlighted.
	StatusSingle GroupStatus = "single"
	// StatusUnmatched leaves never followed the <id>_<n> convention and
	// render in the neutral gray.
	StatusUnmatched GroupStatus = "unmatched"
)

// Group is the set of leaves sharing one sequence id.
type Group struct {
	SeqID  string
	Leaves []*newick.Node
	Color  string
	Status GroupStatus
}

// CladeMatch is a set of internal nodes recognized as copies of the same
// multidomain expansion, with the marker color they share.
type CladeMatch struct {
	Nodes []*newick.Node
	Color string
}

// Result holds the computed coloring. LeafColors has an entry for every
// leaf of the tree; Fragments marks the leaves that belong to a
// multidomain sequence.
type Result struct {
	Groups     []Group
	Clades     []CladeMatch
	LeafColors map[*newick.Node]string
	Fragments  map[*newick.Node]bool
}

// Paint analyzes the tree and computes per-leaf colors. Leaf names are
// normalized in place: coordinate decorations are trimmed, and fragment
// suffixes with no matching second fragment are stripped.
func Paint(root *newick.Node, cfg Config) (*Result, error) {
	if cfg.Cutoff <= 0 || cfg.Cutoff > 1 {
		return nil, fmt.Errorf("match cutoff must be in (0, 1], got %v", cfg.Cutoff)
	}

	leaves := root.Leaves()
	for _, leaf := range leaves {
		leaf.Name = seqid.TrimCoordinates(leaf.Name)
	}

	// Fragment leaves, keyed by node, valued by sequence id. Leaves
	// whose label never parses stay outside the convention entirely.
	fragments := make(map[*newick.Node]string)
	perID := make(map[string][]*newick.Node)
	singles := make(map[*newick.Node]string)
	for _, leaf := range leaves {
		if id, _, ok := seqid.ParseLabel(leaf.Name); ok {
			fragments[leaf] = id
			perID[id] = append(perID[id], leaf)
		}
	}

	// A fragment suffix that matches no second fragment is noise from
	// the naming pipeline: strip it and treat the sequence as single.
	for id, members := range perID {
		if len(members) >= 2 {
			continue
		}
		for _, leaf := range members {
			leaf.Name = id
			delete(fragments, leaf)
			singles[leaf] = id
		}
		delete(perID, id)
	}

	desc := annotateDescendants(root, fragments)
	matches := findCladeMatches(root, desc, cfg.Cutoff)
	merged := mergeMatches(matches)

	// Sequence ids that show up inside the matched clade structure.
	matchedIDs := make(map[string]bool)
	for _, m := range matches {
		for _, id := range desc[m.a] {
			matchedIDs[id] = true
		}
		for _, id := range desc[m.b] {
			matchedIDs[id] = true
		}
	}

	pal := newPalette(cfg.Palette)
	res := &Result{
		LeafColors: make(map[*newick.Node]string, len(leaves)),
		Fragments:  make(map[*newick.Node]bool, len(fragments)),
	}
	for leaf := range fragments {
		res.Fragments[leaf] = true
	}

	for _, nodes := range merged {
		res.Clades = append(res.Clades, CladeMatch{Nodes: nodes, Color: pal.pick()})
	}

	// Per-group color decisions, in sorted id order for determinism.
	ids := make([]string, 0, len(perID))
	for id := range perID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	groupColor := make(map[string]string, len(ids))
	for _, id := range ids {
		members := perID[id]
		g := Group{SeqID: id, Leaves: members}
		if len(members) == 2 && tree.AreSisterLeaves(members[0], members[1]) && !matchedIDs[id] {
			// A lone sister pair carries no mapping information.
			g.Status = StatusSentinel
			g.Color = SentinelColor
		} else {
			g.Status = StatusHighlighted
			g.Color = pal.pick()
		}
		groupColor[id] = g.Color
		res.Groups = append(res.Groups, g)
	}

	// Singles and unmatched leaves are reported too, so listings are
	// complete. A single-member sequence renders in the default ink; a
	// leaf that never followed the convention renders in the sentinel
	// gray because nothing can be said about it.
	for _, leaf := range leaves {
		if _, ok := fragments[leaf]; ok {
			res.LeafColors[leaf] = groupColor[fragments[leaf]]
			continue
		}
		g := Group{SeqID: leaf.Name, Leaves: []*newick.Node{leaf}}
		if _, ok := singles[leaf]; ok {
			g.Status = StatusSingle
			g.Color = DefaultLeafColor
		} else {
			g.Status = StatusUnmatched
			g.Color = SentinelColor
		}
		res.LeafColors[leaf] = g.Color
		res.Groups = append(res.Groups, g)
	}

	sort.Slice(res.Groups, func(i, j int) bool { return res.Groups[i].SeqID < res.Groups[j].SeqID })
	return res, nil
}
