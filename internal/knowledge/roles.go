// Package knowledge holds the static lookup tables shared by the scorers:
// role-type keywords and weight tables, education level ranks, the
// 2022-2024 layoff company set, contract-type and startup-stage keyword
// sets, title seniority levels, and learning resources.
//
// Everything here is read-only and initialized once at process start.
package knowledge

import (
	"strings"

	"github.com/jonathan/career-analyzer/internal/patterns"
	"github.com/jonathan/career-analyzer/internal/types"
)

// roleKeywords pairs a role type with the keywords that identify it.
// Detection is first match in table order; design and data come before
// technical so that "ux designer" and "ml engineer" are not swallowed
// by the generic "engineer" keyword.
type roleKeywords struct {
	role     types.RoleType
	keywords []string
}

var roleTypeKeywords = []roleKeywords{
	{types.RoleTypeDesign, []string{
		"designer", "ux", "ui", "figma", "product design", "visual design",
	}},
	{types.RoleTypeData, []string{
		"data scientist", "data analyst", "ml engineer", "data engineer",
		"machine learning", "bi analyst", "analytics engineer",
	}},
	{types.RoleTypeProduct, []string{
		"product manager", "product owner", "scrum master", "product analyst",
		"product lead", "gerente de produto",
	}},
	{types.RoleTypeTechnical, []string{
		"engineer", "developer", "backend", "frontend", "devops",
		"software", "programmer", "sre", "desenvolvedor",
	}},
}

// DetectRoleType classifies a job posting into one of the four role
// types from its title and raw text. Unrecognized postings default to
// technical.
func DetectRoleType(job *types.JobPosting) types.RoleType {
	text := strings.ToLower(job.Title + " " + job.RawText)

	for _, entry := range roleTypeKeywords {
		for _, keyword := range entry.keywords {
			if patterns.ContainsWord(text, keyword) {
				return entry.role
			}
		}
	}
	return types.RoleTypeTechnical
}

// Weights is the per-role ATS axis weight table. Axes always sum to 100.
type Weights struct {
	SkillMatch     float64
	Experience     float64
	Education      float64
	Certifications float64
	Keywords       float64
	Portfolio      float64
	Leadership     float64
}

// Total returns the sum of all axis weights.
func (w Weights) Total() float64 {
	return w.SkillMatch + w.Experience + w.Education + w.Certifications +
		w.Keywords + w.Portfolio + w.Leadership
}

var weightsByRole = map[types.RoleType]Weights{
	types.RoleTypeTechnical: {
		SkillMatch:     40,
		Experience:     30,
		Education:      15,
		Certifications: 10,
		Keywords:       5,
	},
	types.RoleTypeDesign: {
		Portfolio:      35,
		SkillMatch:     30,
		Experience:     20,
		Education:      5,
		Certifications: 5,
		Keywords:       5,
	},
	types.RoleTypeData: {
		SkillMatch:     35,
		Experience:     30,
		Certifications: 15,
		Keywords:       15,
		Education:      5,
	},
	types.RoleTypeProduct: {
		Experience:     40,
		SkillMatch:     20,
		Leadership:     15,
		Keywords:       10,
		Education:      10,
		Certifications: 5,
	},
}

// WeightsForRole returns the axis weight table for a role type.
// Unknown role types fall back to the technical table.
func WeightsForRole(role types.RoleType) Weights {
	if weights, ok := weightsByRole[role]; ok {
		return weights
	}
	return weightsByRole[types.RoleTypeTechnical]
}

// RoleTypes lists every supported role type.
func RoleTypes() []types.RoleType {
	return []types.RoleType{
		types.RoleTypeTechnical,
		types.RoleTypeDesign,
		types.RoleTypeData,
		types.RoleTypeProduct,
	}
}
