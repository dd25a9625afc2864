package newick

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse_SimpleTree(t *testing.T) {
	tree, err := Parse("((A:1,B:0.7)65:0.8,C);", Options{})
	if err != nil {
		t.Fatalf("failed to parse tree: %v", err)
	}

	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 children at root, got %d", len(tree.Children))
	}

	inner := tree.Children[0]
	if inner.IsLeaf() {
		t.Fatal("expected first child to be an internal node")
	}
	if !inner.HasSupport || inner.Support != 65 {
		t.Errorf("expected support 65, got %v (present=%v)", inner.Support, inner.HasSupport)
	}
	if !inner.HasLength || inner.Length != 0.8 {
		t.Errorf("expected length 0.8, got %v (present=%v)", inner.Length, inner.HasLength)
	}

	leaves := tree.Leaves()
	if len(leaves) != 3 {
		t.Fatalf("expected 3 leaves, got %d", len(leaves))
	}
	wantNames := []string{"A", "B", "C"}
	for i, leaf := range leaves {
		if leaf.Name != wantNames[i] {
			t.Errorf("leaf %d: expected name %q, got %q", i, wantNames[i], leaf.Name)
		}
	}

	if leaves[0].Parent != inner {
		t.Error("expected leaf A to be parented to the inner node")
	}
	c := tree.Children[1]
	if !c.IsLeaf() || c.Name != "C" {
		t.Errorf("expected second root child to be leaf C, got %q", c.Name)
	}
	if c.HasLength {
		t.Error("leaf C should have no branch length")
	}
}

func TestParse_QuotedNames(t *testing.T) {
	tree, err := Parse("(('Nitzschia punctata, CCMP561':1,'B''s seq':0.7):0.5,C);", Options{QuotedNames: true})
	if err != nil {
		t.Fatalf("failed to parse tree: %v", err)
	}

	leaves := tree.Leaves()
	if leaves[0].Name != "Nitzschia punctata, CCMP561" {
		t.Errorf("unexpected first leaf name %q", leaves[0].Name)
	}
	if leaves[1].Name != "B's seq" {
		t.Errorf("unexpected second leaf name %q", leaves[1].Name)
	}
}

func TestParse_QuotedNamesDisabled(t *testing.T) {
	_, err := Parse("('A',B);", Options{})
	if err == nil {
		t.Fatal("expected error for quoted name without QuotedNames option")
	}
}

func TestParse_BracketedSupportOption(t *testing.T) {
	tree, err := Parse("((A:1,B:0.7):0.8[65],C);", Options{BracketedSupport: true})
	if err != nil {
		t.Fatalf("failed to parse tree: %v", err)
	}
	inner := tree.Children[0]
	if !inner.HasSupport || inner.Support != 65 {
		t.Errorf("expected converted support 65, got %v (present=%v)", inner.Support, inner.HasSupport)
	}
}

func TestParse_InternalNodeName(t *testing.T) {
	tree, err := Parse("((A,B)AB_clade:0.1,C);", Options{})
	if err != nil {
		t.Fatalf("failed to parse tree: %v", err)
	}
	inner := tree.Children[0]
	if inner.Name != "AB_clade" {
		t.Errorf("expected internal node name 'AB_clade', got %q", inner.Name)
	}
	if inner.HasSupport {
		t.Error("non-numeric label should not be parsed as support")
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unbalanced open", "((A,B;"},
		{"trailing data", "(A,B);(C,D);"},
		{"missing length", "(A:,B);"},
		{"unterminated quote", "('A,B);"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in, Options{QuotedNames: true})
			if err == nil {
				t.Errorf("expected parse error for %q", tt.in)
			}
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	in := "((A:1,B:0.7)65:0.8,(C:0.2,D:0.3):0.4);"
	tree, err := Parse(in, Options{})
	if err != nil {
		t.Fatalf("failed to parse tree: %v", err)
	}

	out := Write(tree)
	reparsed, err := Parse(out, Options{QuotedNames: true})
	if err != nil {
		t.Fatalf("failed to reparse written tree %q: %v", out, err)
	}

	if len(reparsed.Leaves()) != 4 {
		t.Errorf("expected 4 leaves after round trip, got %d", len(reparsed.Leaves()))
	}
	if !reparsed.Children[0].HasSupport || reparsed.Children[0].Support != 65 {
		t.Errorf("support lost in round trip: %q", out)
	}
}

func TestWrite_QuotesSpecialNames(t *testing.T) {
	tree := &Node{}
	tree.AddChild(&Node{Name: "Nitzschia punctata, CCMP561"})
	tree.AddChild(&Node{Name: "plain"})

	out := Write(tree)
	reparsed, err := Parse(out, Options{QuotedNames: true})
	if err != nil {
		t.Fatalf("failed to reparse %q: %v", out, err)
	}
	if reparsed.Leaves()[0].Name != "Nitzschia punctata, CCMP561" {
		t.Errorf("name mangled in round trip: %q", out)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.nwk")
	if err := os.WriteFile(path, []byte("((A,B),C);\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tree, err := ParseFile(path, Options{})
	if err != nil {
		t.Fatalf("failed to parse file: %v", err)
	}
	if len(tree.Leaves()) != 3 {
		t.Errorf("expected 3 leaves, got %d", len(tree.Leaves()))
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.nwk"), Options{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseFile_Empty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.nwk")
	if err := os.WriteFile(path, []byte("\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseFile(path, Options{}); err == nil {
		t.Fatal("expected error for empty file")
	}
}
