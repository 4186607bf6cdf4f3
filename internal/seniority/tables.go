package seniority

import "github.com/jonathan/career-analyzer/internal/patterns"

// Verb tables for the complexity axis, English and Portuguese. Senior
// verbs describe directing work, mid verbs describe executing it,
// junior verbs describe assisting with it.
var seniorVerbs = patterns.MustSet(
	`\bled\b`,
	`\barchitect(ed|ing)\b`,
	`\bdesigned\s+(the\s+)?(system|platform|architecture)\b`,
	`\bmentor(ed|ing)\b`,
	`\bdrove\b`,
	`\bowned\b`,
	`\bestablished\b`,
	`\bdefined\s+(the\s+)?(strategy|standards|architecture|roadmap)\b`,
	`\bspearheaded\b`,
	`\bliderou\b`,
	`\barquitetou\b`,
	`\bprojetou\b`,
	`\bmentorou\b`,
	`\bdefiniu\b`,
	`\bestabeleceu\b`,
)

var midVerbs = patterns.MustSet(
	`\bdeveloped\b`,
	`\bimplemented\b`,
	`\bbuilt\b`,
	`\bmaintained\b`,
	`\bimproved\b`,
	`\bdesenvolveu\b`,
	`\bimplementou\b`,
	`\bconstruiu\b`,
)

var juniorVerbs = patterns.MustSet(
	`\bassisted\b`,
	`\bhelped\b`,
	`\bsupported\b`,
	`\blearned\b`,
	`\bauxiliou\b`,
	`\bparticipou\b`,
	`\baprendeu\b`,
)

// Ownership signals for the autonomy axis.
var ownershipSignals = patterns.MustSet(
	`\bown(ed|s|ership)\b`,
	`\bend[- ]to[- ]end\b`,
	`\bresponsible\s+for\b|\brespons[aá]vel\s+por\b`,
	`\bfrom\s+scratch\b|\bdo\s+zero\b`,
	`\bautonom(y|ous|ia)\b`,
)

// Leadership signals, plus a team-size capture that adds extra weight
// for teams of three or more.
var leadershipSignals = patterns.MustSet(
	`\bled\s+(a\s+)?team\b|\bliderou\s+(o\s+|a\s+)?(time|equipe)\b`,
	`\bmanag(ed|ing)\b|\bgerenciou\b`,
	`\bmentor(ed|ing)\b|\bmentorou\b`,
	`\bhir(ed|ing)\b|\bcontratou\b`,
	`\bperformance\s+reviews?\b`,
	`\b(1:1s?|one[- ]on[- ]ones?)\b`,
	`\bcoach(ed|ing)\b`,
	`\bcoordenou\b`,
	`\bheadcount\b`,
)

// Quantified-impact signals: numbers attached to outcomes.
var impactSignals = patterns.MustSet(
	`\d+\s*%`,
	`(r\$|\$|usd|brl)\s*\d`,
	`\b(reduced|reduziu)\b`,
	`\b(increased|aumentou)\b`,
	`\b(improved|melhorou)\b`,
	`\b(\d+x\b|doubled|tripled|dobrou|triplicou)`,
)

// Title classification for the score adjustment and for inferring the
// level a job posting expects.
var seniorTitles = patterns.MustSet(
	`\b(senior|sr\.?|s[êe]nior|pleno\s*iii|lead|principal|staff|architect)\b`,
	`\b(specialist|especialista|arquitet[oa])\b`,
	`\b(head\s+of|diretor|gerente|coordenador|coordenadora)\b`,
)

var midTitles = patterns.MustSet(
	`\b(pleno|mid|middle|intermediate|ii)\b`,
)

var juniorTitles = patterns.MustSet(
	`\b(junior|jr\.?|j[úu]nior|trainee|estagi[áa]ri[oa]|intern|entry[- ]level)\b`,
)

// Skill sets for the skill-depth axis. Senior skills are architecture,
// platform, and leadership topics across the technical, design, and AI
// verticals; mid skills are solid day-to-day practice.
var seniorSkills = map[string]bool{
	"system design":         true,
	"distributed systems":   true,
	"microservices":         true,
	"ddd":                   true,
	"domain-driven design":  true,
	"cqrs":                  true,
	"event sourcing":        true,
	"kafka":                 true,
	"terraform":             true,
	"observability":         true,
	"scalability":           true,
	"performance tuning":    true,
	"security architecture": true,
	"tech lead":             true,
	"architecture":          true,
	"design systems":        true,
	"design leadership":     true,
	"ux strategy":           true,
	"design operations":     true,
	"figma components":      true,
	"design tokens":         true,
	"langchain":             true,
	"rag":                   true,
	"prompt engineering":    true,
	"llm architecture":      true,
	"vector databases":      true,
	"embeddings":            true,
	"fine-tuning":           true,
}

var midSkills = map[string]bool{
	"unit testing":        true,
	"integration testing": true,
	"rest apis":           true,
	"rest":                true,
	"ci/cd":               true,
	"docker":              true,
	"sql":                 true,
	"git":                 true,
	"agile":               true,
	"figma":               true,
	"user research":       true,
	"prototyping":         true,
	"wireframing":         true,
	"usability testing":   true,
	"design thinking":     true,
	"openai api":          true,
	"chatgpt integration": true,
	"llm prompts":         true,
}
