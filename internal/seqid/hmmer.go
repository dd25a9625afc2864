package seqid

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// HMMER domain hits are named <query>/<start>-<end> followed by a subseq
// marker. Some older pipelines filtered the square brackets out, leaving
// "<query> <start>-<end> _subseq" instead; Style selects between the two.
type Style int

const (
	// StyleSubseq handles "id/5-177 [subseq ...]" names.
	StyleSubseq Style = iota
	// StyleFiltered handles the bracket-stripped "id 5-177 _subseq" variant.
	StyleFiltered
)

var (
	subseqPosRe   = regexp.MustCompile(`/(\d+)-\d+`)
	filteredPosRe = regexp.MustCompile(`(\d+)-\d+`)
)

// MapNames turns a list of HMMER hit identifiers into renamed leaf ids
// following the <id>_<n> convention. Fragments of the same query are
// numbered by their position along the sequence, not by coordinates, so
// the second domain of Q is always Q_2 regardless of where it starts.
// Single-fragment queries become <id>_1.
//
// The result maps each original name to its new leaf id. Names that
// already carry a domain index are left untouched.
func MapNames(names []string, style Style) map[string]string {
	marker := " [subseq"
	if style == StyleFiltered {
		marker = " _subseq"
	}
	posRe := subseqPosRe
	if style == StyleFiltered {
		posRe = filteredPosRe
	}

	r := make(map[string]string, len(names))
	for _, name := range names {
		trimmed := name
		if idx := strings.Index(name, marker); idx >= 0 {
			trimmed = name[:idx]
		}
		r[name] = trimmed
	}

	usedQueries := make(map[string]bool)
	for _, name := range names {
		if IsFragment(r[name]) {
			// Already postfixed upstream, nothing to renumber.
			continue
		}
		query := queryOf(r[name], style)
		if query == "" || usedQueries[query] {
			continue
		}
		usedQueries[query] = true

		// All hits belonging to this query, keyed by original name.
		var members []string
		for _, other := range names {
			if strings.HasPrefix(r[other], query) {
				members = append(members, other)
			}
		}

		if len(members) < 2 {
			r[name] = query + "_1"
			continue
		}

		// Number fragments by start coordinate order.
		starts := make(map[string]int, len(members))
		for _, member := range members {
			m := posRe.FindStringSubmatch(member)
			if m == nil {
				continue
			}
			start, _ := strconv.Atoi(m[1])
			starts[member] = start
		}
		ordered := make([]int, 0, len(starts))
		for _, s := range starts {
			ordered = append(ordered, s)
		}
		sort.Ints(ordered)
		for _, member := range members {
			start, ok := starts[member]
			if !ok {
				continue
			}
			r[member] = query + "_" + strconv.Itoa(sort.SearchInts(ordered, start)+1)
		}
	}
	return r
}

func queryOf(trimmed string, style Style) string {
	if style == StyleFiltered {
		if loc := filteredPosRe.FindStringIndex(trimmed); loc != nil {
			return strings.TrimRight(trimmed[:loc[0]], " ")
		}
		return trimmed
	}
	if idx := strings.IndexByte(trimmed, '/'); idx >= 0 {
		return trimmed[:idx]
	}
	return trimmed
}
