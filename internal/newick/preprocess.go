package newick

import "regexp"

// Bracketed support: ":0.8[65]" where 0.8 is the branch length and 65 the
// support value. Some Bayesian tools emit this form; the standard form
// puts the support before the colon.
var bracketedSupportRe = regexp.MustCompile(`:([\d.E-]+)\[([\d.E-]+)\]`)

// ConvertBracketedSupport rewrites bracketed branch support into standard
// Newick labels.
//
// For example, ((A:1, B:0.7):0.8[65], C) becomes ((A:1, B:0.7)65:0.8, C).
// E-notation numbers are handled in both positions.
func ConvertBracketedSupport(line string) string {
	return bracketedSupportRe.ReplaceAllString(line, "$2:$1")
}
