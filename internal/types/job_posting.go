package types

import "github.com/go-playground/validator/v10"

// JobRequirement represents a single skill requirement of a job posting.
// MinYears is absent when the posting states no experience floor for the skill.
type JobRequirement struct {
	Skill      string   `json:"skill" validate:"required,min=1"`
	MinYears   *float64 `json:"min_years,omitempty" validate:"omitempty,gte=0"`
	IsRequired bool     `json:"is_required"`
}

// JobPosting is the immutable job record produced by the upstream
// extraction layer.
type JobPosting struct {
	ID                    string           `json:"id" validate:"required,min=1"`
	RawText               string           `json:"raw_text"`
	Title                 string           `json:"title,omitempty"`
	Company               string           `json:"company,omitempty"`
	Requirements          []JobRequirement `json:"requirements" validate:"dive"`
	PreferredSkills       []string         `json:"preferred_skills"`
	Keywords              []string         `json:"keywords"`
	MinExperienceYears    float64          `json:"min_experience_years" validate:"gte=0"`
	EducationRequirements []string         `json:"education_requirements"`
}

// Validate validates the JobPosting using the validator.
func (j *JobPosting) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// RequiredSkills returns the skills marked as required.
func (j *JobPosting) RequiredSkills() []string {
	skills := make([]string, 0, len(j.Requirements))
	for _, req := range j.Requirements {
		if req.IsRequired {
			skills = append(skills, req.Skill)
		}
	}
	return skills
}

// AllSkills returns every skill the posting mentions: requirements first,
// then preferred skills.
func (j *JobPosting) AllSkills() []string {
	skills := make([]string, 0, len(j.Requirements)+len(j.PreferredSkills))
	for _, req := range j.Requirements {
		skills = append(skills, req.Skill)
	}
	skills = append(skills, j.PreferredSkills...)
	return skills
}
