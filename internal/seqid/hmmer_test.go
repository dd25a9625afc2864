package seqid

import "testing"

func TestMapNames_NumbersFragmentsByPosition(t *testing.T) {
	names := []string{
		"CHS1/150-300 [subseq from genome]",
		"CHS1/5-100 [subseq from genome]",
		"Solo/1-50 [subseq from genome]",
	}

	got := MapNames(names, StyleSubseq)

	if got["CHS1/5-100 [subseq from genome]"] != "CHS1_1" {
		t.Errorf("first fragment should be CHS1_1, got %q", got["CHS1/5-100 [subseq from genome]"])
	}
	if got["CHS1/150-300 [subseq from genome]"] != "CHS1_2" {
		t.Errorf("second fragment should be CHS1_2, got %q", got["CHS1/150-300 [subseq from genome]"])
	}
	if got["Solo/1-50 [subseq from genome]"] != "Solo_1" {
		t.Errorf("single-fragment query should get _1, got %q", got["Solo/1-50 [subseq from genome]"])
	}
}

func TestMapNames_FilteredStyle(t *testing.T) {
	names := []string{
		"RsgA 200-300 _subseq hit",
		"RsgA 5-100 _subseq hit",
	}

	got := MapNames(names, StyleFiltered)

	if got["RsgA 5-100 _subseq hit"] != "RsgA_1" {
		t.Errorf("expected RsgA_1, got %q", got["RsgA 5-100 _subseq hit"])
	}
	if got["RsgA 200-300 _subseq hit"] != "RsgA_2" {
		t.Errorf("expected RsgA_2, got %q", got["RsgA 200-300 _subseq hit"])
	}
}

func TestMapNames_AlreadyPostfixedIsKept(t *testing.T) {
	names := []string{"Done_1", "Done_2"}
	got := MapNames(names, StyleSubseq)
	if got["Done_1"] != "Done_1" || got["Done_2"] != "Done_2" {
		t.Errorf("postfixed names should pass through, got %v", got)
	}
}
