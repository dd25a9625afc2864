package output

import (
	"fmt"
	"strings"
)

// FormatHeader renders a markdown header line.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue renders a markdown key-value bullet.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("- **%s**: %s", key, value)
}

// GroupsOutput is the JSON shape of the groups listing.
type GroupsOutput struct {
	Groups      []GroupInfo `json:"groups"`
	TotalLeaves int         `json:"total_leaves"`
	Highlighted int         `json:"highlighted"`
	CladeGroups int         `json:"clade_groups"`
}

// GroupInfo describes one sequence group.
type GroupInfo struct {
	SeqID  string   `json:"seq_id"`
	Status string   `json:"status"`
	Color  string   `json:"color"`
	Leaves []string `json:"leaves"`
}

// CheckOutput is the JSON shape of the check report.
type CheckOutput struct {
	Path      string `json:"path"`
	Leaves    int    `json:"leaves"`
	Fragments int    `json:"fragments"`
	Groups    int    `json:"groups"`
	OK        bool   `json:"ok"`
}
