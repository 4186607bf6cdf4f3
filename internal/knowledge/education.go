package knowledge

import "strings"

// educationRanks maps degree keywords (English and Portuguese) to a
// comparable level. Higher is more advanced.
var educationRanks = []struct {
	keywords []string
	rank     int
}{
	{[]string{"phd", "ph.d", "doctorate", "doutorado"}, 6},
	{[]string{"masters", "master's", "master of", "mba", "mestrado"}, 5},
	{[]string{"bachelors", "bachelor's", "bachelor of", "bacharelado", "bacharel", "graduação", "graduacao"}, 4},
	{[]string{"associate", "tecnólogo", "tecnologo"}, 3},
	{[]string{"bootcamp", "certification", "certificate", "curso técnico", "curso tecnico"}, 2},
	{[]string{"high school", "ensino médio", "ensino medio"}, 1},
}

// EducationRank returns the rank of a degree description, or 0 when no
// known level keyword appears.
func EducationRank(degree string) int {
	lower := strings.ToLower(degree)
	for _, entry := range educationRanks {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.rank
			}
		}
	}
	return 0
}

// HighestEducationRank returns the best rank across the given degree
// descriptions.
func HighestEducationRank(degrees []string) int {
	best := 0
	for _, degree := range degrees {
		if rank := EducationRank(degree); rank > best {
			best = rank
		}
	}
	return best
}
