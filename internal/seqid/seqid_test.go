package seqid

import "testing"

func TestTrimCoordinates(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "coordinate block is trimmed",
			in:   "Nitzschia_punctata,_Strain_CCMP561|CAMPEP_0199315576_(5-177)_1",
			want: "Nitzschia_punctata,_Strain_CCMP561|CAMPEP_0199315576_1",
		},
		{
			name: "clean names are unaffected",
			in:   "Skeletonema_costatum,_Strain_1716|CAMPEP_0113383910_2",
			want: "Skeletonema_costatum,_Strain_1716|CAMPEP_0113383910_2",
		},
		{
			name: "no suffix at all",
			in:   "plain_name",
			want: "plain_name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimCoordinates(tt.in); got != tt.want {
				t.Errorf("TrimCoordinates(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in        string
		wantID    string
		wantIndex int
		wantOK    bool
	}{
		{"SeqA_2", "SeqA", 2, true},
		{"Genus_species|GENE123_12", "Genus_species|GENE123", 12, true},
		{"SeqA", "", 0, false},
		{"SeqA_", "", 0, false},
		{"SeqA_0", "", 0, false},
		{"_3", "", 0, false},
	}

	for _, tt := range tests {
		id, index, ok := ParseLabel(tt.in)
		if ok != tt.wantOK {
			t.Errorf("ParseLabel(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if id != tt.wantID || index != tt.wantIndex {
			t.Errorf("ParseLabel(%q) = (%q, %d), want (%q, %d)", tt.in, id, index, tt.wantID, tt.wantIndex)
		}
	}
}

func TestIsFragment(t *testing.T) {
	if !IsFragment("SeqA_1") {
		t.Error("SeqA_1 should be a fragment label")
	}
	if IsFragment("SeqA") {
		t.Error("SeqA should not be a fragment label")
	}
}
