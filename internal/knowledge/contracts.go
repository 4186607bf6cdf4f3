package knowledge

import (
	"strings"

	"github.com/jonathan/career-analyzer/internal/patterns"
	"github.com/jonathan/career-analyzer/internal/types"
)

// Freelancer keywords are checked before PJ keywords so that
// "freelancer" is not absorbed by the broader contractor set.
var freelancerKeywords = []string{"freelance", "freelancer"}

var pjKeywords = []string{
	"pj", "pessoa juridica", "pessoa jurídica", "contractor", "consultant",
	"consultor", "consultoria", "autonomo", "autônomo", "mei",
}

var cltKeywords = []string{"clt", "carteira assinada", "registrado", "efetivo"}

// DetectContractType infers a contract type from an experience entry's
// title and company text.
func DetectContractType(title, company string) types.ContractType {
	text := strings.ToLower(title + " " + company)

	for _, keyword := range freelancerKeywords {
		if strings.Contains(text, keyword) {
			return types.ContractFreelancer
		}
	}
	for _, keyword := range pjKeywords {
		if keyword == "pj" || keyword == "mei" {
			if patterns.ContainsWord(text, keyword) {
				return types.ContractPJ
			}
			continue
		}
		if strings.Contains(text, keyword) {
			return types.ContractPJ
		}
	}
	for _, keyword := range cltKeywords {
		if strings.Contains(text, keyword) {
			return types.ContractCLT
		}
	}
	return types.ContractUnknown
}

// Startup stage keywords, checked most specific first so that
// "TechStartup (Series A)" resolves to series A rather than the
// generic "startup" keyword.
var startupStageKeywords = []struct {
	stage    types.StartupStage
	keywords []string
}{
	{types.StageLate, []string{"series c", "series d", "series e", "late stage", "late-stage", "unicorn", "pre-ipo"}},
	{types.StageSeriesB, []string{"series b", "série b", "serie b"}},
	{types.StageSeriesA, []string{"series a", "série a", "serie a"}},
	{types.StageEarly, []string{"startup", "seed", "pre-seed", "early stage", "early-stage", "founding"}},
}

// DetectStartupStage infers a company's funding stage from an
// experience entry's title and company text.
func DetectStartupStage(title, company string) types.StartupStage {
	text := strings.ToLower(title + " " + company)

	for _, entry := range startupStageKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				return entry.stage
			}
		}
	}
	return types.StageUnknown
}

// StageReductionFactor returns the multiplier applied to short-tenure
// penalties for a given startup stage. Short stints at early-stage
// startups carry less negative signal than at established companies.
func StageReductionFactor(stage types.StartupStage) float64 {
	switch stage {
	case types.StageEarly:
		return 0.3
	case types.StageSeriesA:
		return 0.5
	case types.StageSeriesB:
		return 0.75
	default:
		return 1.0
	}
}
