package knowledge

import (
	"strings"

	"github.com/jonathan/career-analyzer/internal/patterns"
)

// titleSeniorityKeywords maps title keywords to a rung on the career
// ladder, English and Portuguese. Higher wins when several match.
var titleSeniorityKeywords = []struct {
	keywords []string
	level    int
}{
	{[]string{"cto", "cio", "ceo", "chief"}, 8},
	{[]string{"director", "diretor", "diretora", "vp", "vice president"}, 7},
	{[]string{"manager", "gerente", "head", "supervisor"}, 6},
	{[]string{"lead", "staff", "tech lead", "principal", "líder", "lider", "coordenador", "coordenadora"}, 5},
	{[]string{"senior", "sênior", "sr", "specialist", "especialista"}, 4},
	{[]string{"pleno", "mid", "mid-level", "analista"}, 3},
	{[]string{"junior", "júnior", "jr", "associate", "assistente"}, 2},
	{[]string{"intern", "estagiario", "estagiário", "estagiária", "trainee", "aprendiz"}, 1},
}

// TitleLevel maps a job title to a numeric seniority level from 1
// (intern) to 8 (executive). The highest matching keyword wins;
// titles with no keyword default to 3 (mid-level individual
// contributor).
func TitleLevel(title string) int {
	lower := strings.ToLower(title)
	best := 0
	for _, entry := range titleSeniorityKeywords {
		for _, keyword := range entry.keywords {
			if patterns.ContainsWord(lower, keyword) && entry.level > best {
				best = entry.level
			}
		}
	}
	if best == 0 {
		return 3
	}
	return best
}
