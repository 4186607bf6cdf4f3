package stability

import (
	"strings"

	"github.com/jonathan/career-analyzer/internal/types"
)

// Career domains recognized from title keywords, English and
// Portuguese. Used only for the consistency positive note.
var domainKeywords = []struct {
	domain   string
	keywords []string
}{
	{"engineering", []string{"engineer", "developer", "desenvolvedor", "desenvolvedora", "devops", "sre", "programador"}},
	{"design", []string{"designer", "ux", "ui", "design"}},
	{"product", []string{"product", "produto"}},
	{"data", []string{"data", "dados", "analytics", "scientist", "cientista"}},
	{"leadership", []string{"manager", "gerente", "director", "diretor", "head", "cto"}},
}

func titleDomain(title string) string {
	lower := strings.ToLower(title)
	for _, entry := range domainKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.domain
			}
		}
	}
	return ""
}

// singleDomain reports whether every recognizable title in the timeline
// belongs to the same career domain.
func singleDomain(timeline []types.TimelineEntry) (string, bool) {
	domain := ""
	for _, entry := range timeline {
		d := titleDomain(entry.Title)
		if d == "" {
			continue
		}
		if domain == "" {
			domain = d
			continue
		}
		if d != domain {
			return "", false
		}
	}
	return domain, domain != ""
}
