// Package types provides type definitions for structured data used throughout the career-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// SkillLevel represents the self-reported proficiency of a resume skill.
type SkillLevel string

// Supported skill proficiency levels.
const (
	SkillLevelBeginner     SkillLevel = "beginner"
	SkillLevelIntermediate SkillLevel = "intermediate"
	SkillLevelAdvanced     SkillLevel = "advanced"
	SkillLevelExpert       SkillLevel = "expert"
)

// Skill represents a single resume skill with its canonical form.
// NormalizedName is pre-populated by the extraction layer.
type Skill struct {
	Name            string     `json:"name" validate:"required,min=1"`
	NormalizedName  string     `json:"normalized_name" validate:"required,min=1"`
	Level           SkillLevel `json:"level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	YearsExperience *float64   `json:"years_experience,omitempty" validate:"omitempty,gte=0"`
}

// Experience represents a single employment entry. StartYear and EndYear
// may be absent; the stability analyzer back-fills them from duration.
type Experience struct {
	Title          string   `json:"title" validate:"required,min=1"`
	Company        string   `json:"company"`
	DurationMonths int      `json:"duration_months" validate:"gte=0"`
	Description    string   `json:"description"`
	SkillsUsed     []string `json:"skills_used"`
	StartYear      *int     `json:"start_year,omitempty"`
	EndYear        *int     `json:"end_year,omitempty"`
}

// Education represents a single education entry.
type Education struct {
	Degree      string `json:"degree" validate:"required,min=1"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Year        *int   `json:"year,omitempty"`
}

// Resume is the immutable candidate record produced by the upstream
// extraction layer. Scorers treat it as read-only.
type Resume struct {
	Name                 string       `json:"name,omitempty"`
	Email                string       `json:"email,omitempty" validate:"omitempty,email"`
	Skills               []Skill      `json:"skills" validate:"dive"`
	Experiences          []Experience `json:"experiences" validate:"dive"`
	Education            []Education  `json:"education" validate:"dive"`
	Certifications       []string     `json:"certifications"`
	TotalExperienceYears float64      `json:"total_experience_years" validate:"gte=0"`
	RawText              string       `json:"raw_text"`
}

// Validate validates the Resume using the validator.
func (r *Resume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Text returns the searchable text of the resume: the raw text when the
// extraction layer supplied one, otherwise a join of titles, descriptions,
// and education entries.
func (r *Resume) Text() string {
	if r.RawText != "" {
		return r.RawText
	}

	var b strings.Builder
	for _, exp := range r.Experiences {
		b.WriteString(exp.Title)
		b.WriteString("\n")
		b.WriteString(exp.Description)
		b.WriteString("\n")
	}
	for _, edu := range r.Education {
		b.WriteString(edu.Degree)
		b.WriteString(" ")
		b.WriteString(edu.Field)
		b.WriteString("\n")
	}
	return b.String()
}

// SkillNames returns the normalized names of all resume skills,
// falling back to the lowercased raw name when normalization is absent.
func (r *Resume) SkillNames() []string {
	names := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		if s.NormalizedName != "" {
			names = append(names, s.NormalizedName)
			continue
		}
		names = append(names, strings.ToLower(strings.TrimSpace(s.Name)))
	}
	return names
}
