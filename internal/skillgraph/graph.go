// Package skillgraph canonicalizes skill names and expands skill sets by
// one hop of a static "implies" relation.
//
// Expansion is deliberately not transitive: listing "python" implies its
// direct neighbors only, never a neighbor's neighbors. Closing the graph
// would trade too much precision for recall.
package skillgraph

import "strings"

// implies and categoryOf are derived from the ordered relations table once
// at init and never mutated afterwards.
var (
	implies    = make(map[string][]string, len(relations))
	categoryOf = make(map[string]string)
)

func init() {
	for _, rel := range relations {
		implies[rel.skill] = rel.implies
		for _, neighbor := range rel.implies {
			key := strings.ToLower(neighbor)
			// First category listed wins for reverse lookups.
			if _, ok := categoryOf[key]; !ok {
				categoryOf[key] = rel.skill
			}
		}
	}
}

// Normalize returns the canonical lowercase form of a skill name,
// resolving aliases such as "k8s" to "kubernetes".
func Normalize(skill string) string {
	lower := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := aliases[lower]; ok {
		return canonical
	}
	return lower
}

// Expand returns the given skills plus the direct neighbors of every
// skill present in the inference table. The result always contains the
// normalized form of every input skill.
func Expand(skills []string) map[string]bool {
	expanded := make(map[string]bool, len(skills)*4)
	for _, skill := range skills {
		normalized := Normalize(skill)
		expanded[normalized] = true
		for _, neighbor := range implies[normalized] {
			expanded[strings.ToLower(neighbor)] = true
		}
	}
	return expanded
}

// Category returns the top-level skill that implies the given one,
// e.g. "pytorch" resolves to "python". The second return is false
// when no top-level skill lists it.
func Category(skill string) (string, bool) {
	category, ok := categoryOf[Normalize(skill)]
	return category, ok
}

// Related reports whether other is a direct neighbor of skill.
func Related(skill, other string) bool {
	otherNorm := Normalize(other)
	for _, neighbor := range implies[Normalize(skill)] {
		if strings.ToLower(neighbor) == otherNorm {
			return true
		}
	}
	return false
}

// Neighbors returns the direct neighbors of a skill in table order,
// lowercased. The slice is freshly allocated on each call.
func Neighbors(skill string) []string {
	source := implies[Normalize(skill)]
	neighbors := make([]string, 0, len(source))
	for _, neighbor := range source {
		neighbors = append(neighbors, strings.ToLower(neighbor))
	}
	return neighbors
}

// Transferable returns, for every input skill present in the transfer
// matrix, the career areas it carries over to.
func Transferable(skills []string) map[string][]string {
	result := make(map[string][]string)
	for _, skill := range skills {
		normalized := Normalize(skill)
		if areas, ok := transferable[normalized]; ok {
			result[normalized] = areas
		}
	}
	return result
}

// MatchSummary is the outcome of comparing resume skills against a job's
// required and preferred skill lists.
type MatchSummary struct {
	MatchedRequired    []string
	MissingRequired    []string
	MatchedPreferred   []string
	MissingPreferred   []string
	RequiredMatchRate  float64
	PreferredMatchRate float64
}

// FindMatches expands the resume skills and compares them against the
// job's required and preferred lists. A required skill also counts as
// matched when any expanded resume skill is one of its direct neighbors.
// Empty requirement lists yield a match rate of 1.
func FindMatches(resumeSkills, requiredSkills, preferredSkills []string) MatchSummary {
	expanded := Expand(resumeSkills)

	summary := MatchSummary{
		MatchedRequired:  []string{},
		MissingRequired:  []string{},
		MatchedPreferred: []string{},
		MissingPreferred: []string{},
	}

	for _, skill := range requiredSkills {
		normalized := Normalize(skill)
		if expanded[normalized] || hasRelatedSkill(expanded, normalized) {
			summary.MatchedRequired = append(summary.MatchedRequired, normalized)
			continue
		}
		summary.MissingRequired = append(summary.MissingRequired, normalized)
	}

	for _, skill := range preferredSkills {
		normalized := Normalize(skill)
		if expanded[normalized] {
			summary.MatchedPreferred = append(summary.MatchedPreferred, normalized)
			continue
		}
		summary.MissingPreferred = append(summary.MissingPreferred, normalized)
	}

	summary.RequiredMatchRate = 1.0
	if len(requiredSkills) > 0 {
		summary.RequiredMatchRate = float64(len(summary.MatchedRequired)) / float64(len(requiredSkills))
	}
	summary.PreferredMatchRate = 1.0
	if len(preferredSkills) > 0 {
		summary.PreferredMatchRate = float64(len(summary.MatchedPreferred)) / float64(len(preferredSkills))
	}

	return summary
}

// hasRelatedSkill reports whether any expanded resume skill is a direct
// neighbor of the wanted skill.
func hasRelatedSkill(expanded map[string]bool, wanted string) bool {
	for _, neighbor := range implies[wanted] {
		if expanded[strings.ToLower(neighbor)] {
			return true
		}
	}
	return false
}
