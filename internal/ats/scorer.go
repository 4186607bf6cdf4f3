// Package ats scores a résumé against a job posting the way an
// applicant tracking system would: per-axis component scores weighted
// by role type, plus format checks and actionable suggestions.
package ats

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/career-analyzer/internal/knowledge"
	"github.com/jonathan/career-analyzer/internal/skillgraph"
	"github.com/jonathan/career-analyzer/internal/types"
)

// Scorer computes ATS compatibility scores. Safe for concurrent use.
type Scorer struct {
	logger *zap.Logger
}

// NewScorer returns a Scorer. A nil logger disables logging.
func NewScorer(logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{logger: logger}
}

// Score evaluates the résumé against the job posting and returns the
// weighted component breakdown. The result is deterministic for a
// given input pair.
func (s *Scorer) Score(resume *types.Resume, job *types.JobPosting) *types.ATSResult {
	role := knowledge.DetectRoleType(job)
	weights := knowledge.WeightsForRole(role)
	text := strings.ToLower(resume.Text())

	result := &types.ATSResult{
		JobID:    job.ID,
		RoleType: role,
	}

	summary := skillgraph.FindMatches(resume.SkillNames(), job.RequiredSkills(), job.PreferredSkills)
	skillRatio := 0.70*summary.RequiredMatchRate + 0.30*summary.PreferredMatchRate
	if len(job.RequiredSkills()) == 0 {
		skillRatio = skillCoverage(resume, job)
	}
	skillScore := skillRatio * weights.SkillMatch

	expScore := s.scoreExperience(resume, job) * weights.Experience
	eduScore := s.scoreEducation(resume, job) * weights.Education
	certScore := scoreCertifications(len(resume.Certifications)) * weights.Certifications

	matched, missing := matchKeywords(text, job.Keywords)
	kwCoverage := 1.0
	if len(job.Keywords) > 0 {
		kwCoverage = float64(len(matched)) / float64(len(job.Keywords))
	}
	kwScore := kwCoverage * weights.Keywords

	portfolioScore := scorePortfolio(text) * weights.Portfolio
	leadershipScore := scoreLeadership(text) * weights.Leadership

	result.MatchedKeywords = matched
	result.MissingKeywords = missing
	result.Components = []types.AxisScore{
		{Axis: "skill_match", Score: round1(skillScore), Max: weights.SkillMatch},
		{Axis: "experience", Score: round1(expScore), Max: weights.Experience},
		{Axis: "education", Score: round1(eduScore), Max: weights.Education},
		{Axis: "certifications", Score: round1(certScore), Max: weights.Certifications},
		{Axis: "keywords", Score: round1(kwScore), Max: weights.Keywords},
		{Axis: "portfolio", Score: round1(portfolioScore), Max: weights.Portfolio},
		{Axis: "leadership", Score: round1(leadershipScore), Max: weights.Leadership},
	}

	total := 0.0
	for _, c := range result.Components {
		total += c.Score
	}
	result.TotalScore = round1(total)

	result.FormatIssues = FormatIssues(resume.Text())
	result.Suggestions = s.buildSuggestions(resume, job, summary, missing, result.FormatIssues)

	s.logger.Debug("ats score computed",
		zap.String("job_id", job.ID),
		zap.String("role_type", string(role)),
		zap.Float64("total", result.TotalScore))

	return result
}

// skillCoverage is the fraction of the job's skills, required and
// preferred together, present in the expanded résumé skill set. Jobs
// listing no skills at all get full credit.
func skillCoverage(resume *types.Resume, job *types.JobPosting) float64 {
	all := job.AllSkills()
	if len(all) == 0 {
		return 1.0
	}
	expanded := skillgraph.Expand(resume.SkillNames())
	matched := 0
	for _, name := range all {
		if expanded[skillgraph.Normalize(name)] {
			matched++
		}
	}
	return float64(matched) / float64(len(all))
}

// scoreExperience returns the unweighted experience ratio in [0, 1].
// Meeting the requirement is full credit; any experience at all floors
// the partial credit at half.
func (s *Scorer) scoreExperience(resume *types.Resume, job *types.JobPosting) float64 {
	required := job.MinExperienceYears
	if required <= 0 {
		return 1.0
	}
	have := totalYears(resume)
	switch {
	case have >= required:
		return 1.0
	case have > 0:
		return math.Max(have/required, 0.5)
	default:
		return 0
	}
}

// scoreEducation compares the candidate's highest degree against the
// posting's requirement. Each level of shortfall drops the credit a
// step; absence of any education is worth less than any degree.
func (s *Scorer) scoreEducation(resume *types.Resume, job *types.JobPosting) float64 {
	degrees := make([]string, 0, len(resume.Education))
	for _, edu := range resume.Education {
		degrees = append(degrees, edu.Degree)
	}
	candidateRank := knowledge.HighestEducationRank(degrees)
	requiredRank := knowledge.HighestEducationRank(job.EducationRequirements)

	if requiredRank == 0 {
		if candidateRank > 0 {
			return 1.0
		}
		return 0.8
	}
	if candidateRank == 0 {
		return 0.3
	}
	gap := requiredRank - candidateRank
	switch {
	case gap <= 0:
		return 1.0
	case gap == 1:
		return 0.8
	case gap == 2:
		return 0.6
	default:
		return 0.4
	}
}

func scoreCertifications(count int) float64 {
	switch {
	case count >= 3:
		return 1.0
	case count == 2:
		return 0.75
	case count == 1:
		return 0.5
	default:
		return 0
	}
}

func matchKeywords(lowerText string, keywords []string) (matched, missing []string) {
	matched = []string{}
	missing = []string{}
	for _, keyword := range keywords {
		if strings.Contains(lowerText, strings.ToLower(keyword)) {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}
	return matched, missing
}

// Portfolio indicators for design roles. Each hit is worth half
// credit, two or more is full credit.
var portfolioIndicators = []string{"behance.net", "dribbble.com", "figma.com", "github.com", "portfolio"}

func scorePortfolio(lowerText string) float64 {
	score := 0.0
	for _, indicator := range portfolioIndicators {
		if strings.Contains(lowerText, indicator) {
			score += 0.25
		}
	}
	return math.Min(score, 1.0)
}

func scoreLeadership(lowerText string) float64 {
	hits := leadershipSignals.Hits(lowerText)
	return math.Min(float64(hits)/3.0, 1.0)
}

func (s *Scorer) buildSuggestions(resume *types.Resume, job *types.JobPosting, summary skillgraph.MatchSummary, missingKeywords, formatIssues []string) []string {
	suggestions := []string{}

	if len(summary.MissingRequired) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Add these missing skills if you have them: %s",
			strings.Join(capList(summary.MissingRequired, 5), ", ")))
	}
	if len(missingKeywords) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Include these keywords from the job posting: %s",
			strings.Join(capList(missingKeywords, 5), ", ")))
	}
	if job.MinExperienceYears > 0 && totalYears(resume) < job.MinExperienceYears {
		suggestions = append(suggestions, fmt.Sprintf(
			"Highlight additional experience - the role asks for %.0f years", job.MinExperienceYears))
	}
	if !strings.ContainsAny(resume.Text(), "0123456789") {
		suggestions = append(suggestions, "Quantify achievements with numbers and percentages")
	}
	if len(resume.Certifications) < 2 {
		suggestions = append(suggestions, "Consider adding relevant certifications")
	}
	suggestions = append(suggestions, formatIssues...)
	return suggestions
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

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
