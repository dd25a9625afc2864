package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want Mode
	}{
		{"explicit text", ModeText, ModeText},
		{"explicit markdown", ModeMarkdown, ModeMarkdown},
		{"explicit json", ModeJSON, ModeJSON},
		{"auto without tty", ModeAuto, ModeMarkdown},
		{"empty defaults to auto", Mode(""), ModeMarkdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(new(bytes.Buffer), new(bytes.Buffer), tt.mode)
			if got := r.EffectiveMode(); got != tt.want {
				t.Errorf("EffectiveMode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusfGoesToErrWriter(t *testing.T) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	r := NewRenderer(out, errOut, ModeJSON)

	r.Statusf("working on %s\n", "tree.nwk")

	if out.Len() != 0 {
		t.Errorf("status should not write to primary output, got: %s", out.String())
	}
	if !strings.Contains(errOut.String(), "working on tree.nwk") {
		t.Errorf("status missing from error writer, got: %s", errOut.String())
	}
}

func TestHeaderMarkdown(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewRenderer(out, new(bytes.Buffer), ModeMarkdown)

	r.Header(1, "Groups")
	r.Header(2, "Details")

	got := out.String()
	if !strings.Contains(got, "# Groups") {
		t.Errorf("missing level-1 header, got: %s", got)
	}
	if !strings.Contains(got, "## Details") {
		t.Errorf("missing level-2 header, got: %s", got)
	}
}

func TestFormatHeader(t *testing.T) {
	tests := []struct {
		level int
		text  string
		want  string
	}{
		{1, "Title", "# Title"},
		{2, "Section", "## Section"},
		{0, "Clamped", "# Clamped"},
	}
	for _, tt := range tests {
		if got := FormatHeader(tt.level, tt.text); got != tt.want {
			t.Errorf("FormatHeader(%d, %q) = %q, want %q", tt.level, tt.text, got, tt.want)
		}
	}
}

func TestFormatKeyValue(t *testing.T) {
	got := FormatKeyValue("Total Groups", "4")
	if got != "- **Total Groups**: 4" {
		t.Errorf("FormatKeyValue() = %q", got)
	}
}
