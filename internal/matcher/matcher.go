// Package matcher ranks job postings against a résumé. Each job gets a
// weighted match percentage, a skill gap analysis with learning
// resources, and a per-requirement match matrix.
package matcher

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-analyzer/internal/knowledge"
	"github.com/jonathan/career-analyzer/internal/patterns"
	"github.com/jonathan/career-analyzer/internal/skillgraph"
	"github.com/jonathan/career-analyzer/internal/types"
)

// Match percentage weights. Required skill coverage dominates.
const (
	weightRequired   = 0.70
	weightPreferred  = 0.20
	weightExperience = 0.10
)

const maxPreferredGaps = 3

// Matcher scores and ranks jobs. Safe for concurrent use.
type Matcher struct {
	logger *zap.Logger
}

// NewMatcher returns a Matcher. A nil logger disables logging.
func NewMatcher(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger}
}

// MatchAll scores every job concurrently and returns the matches sorted
// by percentage, highest first. Ties keep input order, and the first
// ranked match is flagged as the best fit. The output is deterministic
// regardless of scheduling.
func (m *Matcher) MatchAll(ctx context.Context, resume *types.Resume, jobs []*types.JobPosting) ([]types.JobMatch, error) {
	matches := make([]types.JobMatch, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			matches[i] = m.Match(resume, job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("matching jobs: %w", err)
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].MatchPercentage > matches[b].MatchPercentage
	})
	if len(matches) > 0 {
		matches[0].IsBestFit = true
	}

	m.logger.Debug("ranked job matches", zap.Int("jobs", len(jobs)))
	return matches, nil
}

// Match scores a single job against the résumé.
func (m *Matcher) Match(resume *types.Resume, job *types.JobPosting) types.JobMatch {
	summary := skillgraph.FindMatches(resume.SkillNames(), job.RequiredSkills(), job.PreferredSkills)

	expRatio := 1.0
	if job.MinExperienceYears > 0 {
		expRatio = math.Min(totalYears(resume)/job.MinExperienceYears, 1.0)
	}

	pct := 100 * (weightRequired*summary.RequiredMatchRate +
		weightPreferred*summary.PreferredMatchRate +
		weightExperience*expRatio)
	pct = math.Round(pct*10) / 10

	matched := append(append([]string{}, summary.MatchedRequired...), summary.MatchedPreferred...)
	missing := append(append([]string{}, summary.MissingRequired...), summary.MissingPreferred...)

	return types.JobMatch{
		JobID:              job.ID,
		JobTitle:           job.Title,
		MatchPercentage:    pct,
		MatchLevel:         levelFor(pct),
		MatchedSkills:      matched,
		MissingSkills:      missing,
		SkillGaps:          buildSkillGaps(summary),
		Strengths:          m.buildStrengths(resume, job, summary),
		Concerns:           m.buildConcerns(resume, job, summary),
		RequirementMatrix:  buildRequirementMatrix(resume, job),
		TransferableSkills: transferableSkills(resume, job),
	}
}

func levelFor(pct float64) types.MatchLevel {
	switch {
	case pct >= 80:
		return types.MatchLevelExcellent
	case pct >= 60:
		return types.MatchLevelGood
	case pct >= 40:
		return types.MatchLevelFair
	default:
		return types.MatchLevelPoor
	}
}

// buildSkillGaps lists missing skills alphabetically, required gaps
// first, then at most three preferred gaps.
func buildSkillGaps(summary skillgraph.MatchSummary) []types.SkillGap {
	requiredGaps := append([]string{}, summary.MissingRequired...)
	preferredGaps := append([]string{}, summary.MissingPreferred...)
	sort.Strings(requiredGaps)
	sort.Strings(preferredGaps)
	if len(preferredGaps) > maxPreferredGaps {
		preferredGaps = preferredGaps[:maxPreferredGaps]
	}

	gaps := make([]types.SkillGap, 0, len(requiredGaps)+len(preferredGaps))
	for _, skill := range requiredGaps {
		gaps = append(gaps, types.SkillGap{
			Skill:      skill,
			IsRequired: true,
			Suggestion: fmt.Sprintf(
				"Learn %s to qualify for this role - it's a required skill", skill),
			LearningResources: resourcesFor(skill),
		})
	}
	for _, skill := range preferredGaps {
		gaps = append(gaps, types.SkillGap{
			Skill:      skill,
			IsRequired: false,
			Suggestion: fmt.Sprintf(
				"%s would strengthen your application as a nice-to-have skill", skill),
			LearningResources: resourcesFor(skill),
		})
	}
	return gaps
}

func resourcesFor(skill string) []string {
	category, _ := skillgraph.Category(skill)
	return knowledge.LearningResources(skill, category)
}

func (m *Matcher) buildStrengths(resume *types.Resume, job *types.JobPosting, summary skillgraph.MatchSummary) []string {
	strengths := []string{}

	years := totalYears(resume)
	if job.MinExperienceYears > 0 {
		if years > job.MinExperienceYears {
			strengths = append(strengths, fmt.Sprintf(
				"%.1f years of experience exceeds the %.0f required",
				years, job.MinExperienceYears))
		} else if years == job.MinExperienceYears {
			strengths = append(strengths, fmt.Sprintf(
				"Meets the required %.0f years of experience", job.MinExperienceYears))
		}
	}
	if len(summary.MatchedRequired) >= 3 {
		strengths = append(strengths, fmt.Sprintf(
			"Strong skill match: %d required skills covered", len(summary.MatchedRequired)))
	}
	if len(summary.MatchedPreferred) > 0 {
		strengths = append(strengths, fmt.Sprintf(
			"Brings %d of the nice-to-have skills", len(summary.MatchedPreferred)))
	}
	if len(resume.Education) > 0 {
		strengths = append(strengths, "Formal education background")
	}
	if len(resume.Certifications) > 0 {
		strengths = append(strengths, fmt.Sprintf(
			"%d professional certifications", len(resume.Certifications)))
	}
	return strengths
}

func (m *Matcher) buildConcerns(resume *types.Resume, job *types.JobPosting, summary skillgraph.MatchSummary) []string {
	concerns := []string{}

	if len(summary.MissingRequired) >= 3 {
		concerns = append(concerns, fmt.Sprintf(
			"Significant skill gap: %d required skills are missing", len(summary.MissingRequired)))
	}
	years := totalYears(resume)
	if job.MinExperienceYears > 0 && years < job.MinExperienceYears {
		concerns = append(concerns, fmt.Sprintf(
			"%.1f years of experience is below the %.0f required",
			years, job.MinExperienceYears))
	}
	if summary.RequiredMatchRate < 0.5 && len(job.RequiredSkills()) > 0 {
		concerns = append(concerns, "Covers less than half of the required skills")
	}
	return concerns
}

// buildRequirementMatrix grades each requirement at 100 (direct match),
// 70 (a one-hop related skill is present), or 0.
func buildRequirementMatrix(resume *types.Resume, job *types.JobPosting) []types.RequirementMatch {
	resumeSkills := resume.SkillNames()
	expanded := skillgraph.Expand(resumeSkills)

	matrix := make([]types.RequirementMatch, 0, len(job.Requirements))
	for _, req := range job.Requirements {
		skill := skillgraph.Normalize(req.Skill)
		entry := types.RequirementMatch{Requirement: req.Skill}

		switch {
		case expanded[skill]:
			entry.MatchPercentage = 100
			entry.CandidateExperience = skill
			entry.Logic = "direct skill match"
		case relatedSkill(expanded, skill) != "":
			related := relatedSkill(expanded, skill)
			entry.MatchPercentage = 70
			entry.CandidateExperience = related
			entry.Logic = fmt.Sprintf("related skill: knows %s", related)
		default:
			entry.Logic = "no matching skill found"
		}
		matrix = append(matrix, entry)
	}
	return matrix
}

// relatedSkill returns the first direct neighbor of the requirement
// that the candidate's expanded skill set contains. Neighbor order in
// the inference table keeps the result deterministic.
func relatedSkill(expanded map[string]bool, requirement string) string {
	for _, neighbor := range skillgraph.Neighbors(requirement) {
		if expanded[neighbor] {
			return neighbor
		}
	}
	return ""
}

// Soft-skill keywords grouped by the career category they evidence.
var softSkillCategories = map[string]string{
	"leadership":              "leadership",
	"people management":       "leadership",
	"team management":         "leadership",
	"mentoring":               "leadership",
	"communication":           "communication",
	"technical communication": "communication",
	"documentation":           "communication",
	"problem solving":         "problem solving",
	"design thinking":         "problem solving",
	"project management":      "project management",
	"agile":                   "project management",
	"scrum":                   "project management",
}

// transferableSkills returns up to five résumé skills that carry over
// to this job: skills whose one-hop neighbors intersect the job's
// skills, plus soft skills whose category also shows up in the job
// text. Each entry is rendered as "skill -> target, target".
func transferableSkills(resume *types.Resume, job *types.JobPosting) []string {
	jobSkills := make(map[string]bool)
	for _, name := range job.AllSkills() {
		jobSkills[skillgraph.Normalize(name)] = true
	}
	jobText := strings.ToLower(job.Title + " " + job.RawText)

	targets := make(map[string][]string)
	for _, name := range resume.SkillNames() {
		normalized := skillgraph.Normalize(name)
		if _, ok := targets[normalized]; ok {
			continue
		}
		overlap := []string{}
		for _, neighbor := range skillgraph.Neighbors(normalized) {
			if jobSkills[neighbor] {
				overlap = append(overlap, neighbor)
			}
		}
		if len(overlap) > 0 {
			targets[normalized] = overlap
			continue
		}
		if category, ok := sharedSoftCategory(normalized, jobText); ok {
			targets[normalized] = []string{category}
		}
	}

	skills := make([]string, 0, len(targets))
	for skill := range targets {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	if len(skills) > 5 {
		skills = skills[:5]
	}

	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		out = append(out, fmt.Sprintf("%s -> %s", skill, strings.Join(targets[skill], ", ")))
	}
	return out
}

// sharedSoftCategory reports the soft-skill category a résumé skill
// falls in, when any keyword of that category also appears in the job
// text.
func sharedSoftCategory(skill, jobText string) (string, bool) {
	category, ok := softSkillCategories[skill]
	if !ok {
		return "", false
	}
	for keyword, c := range softSkillCategories {
		if c == category && patterns.ContainsWord(jobText, keyword) {
			return category, true
		}
	}
	return "", false
}

func totalYears(resume *types.Resume) float64 {
	if resume.TotalExperienceYears > 0 {
		return resume.TotalExperienceYears
	}
	months := 0
	for _, exp := range resume.Experiences {
		months += exp.DurationMonths
	}
	return float64(months) / 12.0
}
