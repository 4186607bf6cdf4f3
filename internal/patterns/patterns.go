// Package patterns provides small helpers for scoring free text
// against ordered lists of compiled regular expressions. The seniority
// and ATS scorers express their bilingual heuristics as pattern tables
// and count hits through this package.
package patterns

import (
	"regexp"
	"strings"
)

// Set is an ordered list of compiled patterns. Order matters only for
// reproducible evidence output, not for scoring.
type Set []*regexp.Regexp

// MustSet compiles every expression, panicking on invalid syntax. All
// sets are package-level tables built at init time, so a panic here is
// a programming error surfaced at startup.
func MustSet(exprs ...string) Set {
	set := make(Set, 0, len(exprs))
	for _, expr := range exprs {
		set = append(set, regexp.MustCompile(expr))
	}
	return set
}

// Hits returns how many patterns in the set match the text at least
// once. A pattern matching multiple times still counts once.
func (s Set) Hits(text string) int {
	count := 0
	for _, re := range s {
		if re.MatchString(text) {
			count++
		}
	}
	return count
}

// Matches returns the first match of every pattern that hits, in set
// order. Used for evidence strings.
func (s Set) Matches(text string) []string {
	found := []string{}
	for _, re := range s {
		if m := re.FindString(text); m != "" {
			found = append(found, m)
		}
	}
	return found
}

// ContainsWord reports whether needle occurs in haystack bounded by
// non-alphanumeric characters on both sides. Plain substring matching
// would let "rag" match inside "storage".
func ContainsWord(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(needle)

		beforeOK := idx == 0 || !isWordChar(haystack[idx-1])
		afterOK := end == len(haystack) || !isWordChar(haystack[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// Any reports whether at least one pattern matches.
func (s Set) Any(text string) bool {
	for _, re := range s {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
