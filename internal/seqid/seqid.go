// Package seqid implements the leaf label convention that ties tree
// leaves back to their parent biological sequence. A multidomain sequence
// appears in the tree as several leaves named <id>_1, <id>_2 and so on,
// one per domain, in sequence order.
package seqid

import (
	"regexp"
	"strconv"
)

var (
	// Coordinate decorations like "_(5-177)" inserted by extraction
	// pipelines carry no identity and are trimmed before matching.
	coordRe = regexp.MustCompile(`_\(\d+-\d+\)`)
	// A fragment label is anything ending in an underscore-number
	// domain index.
	fragmentRe = regexp.MustCompile(`^(.+)_(\d+)$`)
)

// TrimCoordinates removes domain coordinate decorations from a leaf name.
func TrimCoordinates(name string) string {
	return coordRe.ReplaceAllString(name, "")
}

// ParseLabel splits a leaf label into its sequence id and domain index.
// ok is false when the label does not follow the <id>_<n> convention.
func ParseLabel(name string) (id string, index int, ok bool) {
	m := fragmentRe.FindStringSubmatch(name)
	if m == nil {
		return "", 0, false
	}
	index, err := strconv.Atoi(m[2])
	if err != nil || index < 1 {
		return "", 0, false
	}
	return m[1], index, true
}

// IsFragment reports whether the label follows the <id>_<n> convention.
func IsFragment(name string) bool {
	_, _, ok := ParseLabel(name)
	return ok
}
