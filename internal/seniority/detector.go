// Package seniority classifies a candidate's level from six weighted
// signal axes extracted from résumé text: years of experience, task
// complexity, autonomy, skill depth, leadership, and quantified impact.
package seniority

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/career-analyzer/internal/patterns"
	"github.com/jonathan/career-analyzer/internal/types"
)

// Axis weights. Complexity, autonomy, and skill depth carry the most
// signal; raw years the least, since titles and years are the easiest
// to inflate.
const (
	weightExperience = 0.15
	weightComplexity = 0.20
	weightAutonomy   = 0.20
	weightSkills     = 0.20
	weightLeadership = 0.15
	weightImpact     = 0.10
)

// Level thresholds on the 0-100 composite score.
const (
	seniorThreshold = 70.0
	midThreshold    = 40.0
)

var teamSizeRe = regexp.MustCompile(`(?:team|equipe|time)\s+(?:of|de)\s+(\d+)`)

// Detector computes seniority classifications. Safe for concurrent use.
type Detector struct {
	logger *zap.Logger
}

// NewDetector returns a Detector. A nil logger disables logging.
func NewDetector(logger *zap.Logger) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{logger: logger}
}

// Detect classifies the candidate from the résumé alone.
func (d *Detector) Detect(resume *types.Resume) *types.SeniorityResult {
	text := strings.ToLower(resume.Text())

	indicators := []string{}

	expScore, expEvidence := scoreExperienceYears(totalYears(resume))
	indicators = append(indicators, expEvidence...)

	signals := []types.AxisSignal{
		{Axis: "experience", Score: expScore, Weight: weightExperience, Evidence: expEvidence},
		axisSignal("complexity", scoreComplexity(text), weightComplexity, seniorVerbs.Matches(text)),
		axisSignal("autonomy", scoreAutonomy(text), weightAutonomy, ownershipSignals.Matches(text)),
		axisSignal("skills", d.scoreSkills(resume, text), weightSkills, nil),
		axisSignal("leadership", scoreLeadership(text), weightLeadership, leadershipSignals.Matches(text)),
		axisSignal("impact", scoreImpact(text), weightImpact, impactSignals.Matches(text)),
	}

	score := 0.0
	for _, sig := range signals {
		score += sig.Score * sig.Weight
	}
	score *= 100

	adjustment, adjustmentNote := titleAdjustment(resume, text)
	score += adjustment
	if adjustmentNote != "" {
		indicators = append(indicators, adjustmentNote)
	}

	score = clamp(score, 0, 100)
	score = round1(score)

	level, confidence := classify(score)

	d.logger.Debug("seniority detected",
		zap.String("level", string(level)),
		zap.Float64("score", score))

	return &types.SeniorityResult{
		Level:      level,
		Score:      score,
		Confidence: confidence,
		Signals:    signals,
		Indicators: indicators,
	}
}

// DetectForJob classifies the candidate and compares the result against
// the level the job posting is expected to demand.
func (d *Detector) DetectForJob(resume *types.Resume, job *types.JobPosting) *types.SeniorityResult {
	result := d.Detect(resume)
	result.JobFit = d.compareToJob(result, resume, job)
	return result
}

func axisSignal(axis string, score, weight float64, evidence []string) types.AxisSignal {
	return types.AxisSignal{Axis: axis, Score: score, Weight: weight, Evidence: evidence}
}

// scoreExperienceYears maps total years to a step function. The steps
// are deliberately coarse; years only anchor the other signals.
func scoreExperienceYears(years float64) (float64, []string) {
	switch {
	case years >= 8:
		return 1.0, []string{"8+ years of professional experience"}
	case years >= 5:
		return 0.85, []string{"5+ years of professional experience"}
	case years >= 3:
		return 0.6, []string{"3+ years of professional experience"}
	case years >= 2:
		return 0.4, []string{"2+ years of professional experience"}
	case years >= 1:
		return 0.25, []string{"1+ year of professional experience"}
	default:
		return 0.1, []string{"Less than 1 year of professional experience"}
	}
}

// scoreComplexity weighs verb classes 3/2/1 and scores by the share of
// senior-weighted verbs. Text with no classified verbs at all is
// neutral rather than junior.
func scoreComplexity(text string) float64 {
	senior := seniorVerbs.Hits(text) * 3
	mid := midVerbs.Hits(text) * 2
	junior := juniorVerbs.Hits(text)

	total := senior + mid + junior
	if total == 0 {
		return 0.5
	}
	seniorRatio := float64(senior) / float64(total)
	return math.Min(1.0, 0.3+seniorRatio*0.7)
}

func scoreAutonomy(text string) float64 {
	switch hits := ownershipSignals.Hits(text); {
	case hits >= 3:
		return 1.0
	case hits == 2:
		return 0.7
	case hits == 1:
		return 0.5
	default:
		return 0.3
	}
}

// scoreSkills matches the candidate's declared skills plus skills
// detected in the text against the senior and mid skill sets.
func (d *Detector) scoreSkills(resume *types.Resume, text string) float64 {
	senior, mid := 0, 0

	seen := make(map[string]bool)
	for _, name := range resume.SkillNames() {
		seen[name] = true
	}
	countSet := func(set map[string]bool) int {
		count := 0
		for skill := range set {
			if seen[skill] || patterns.ContainsWord(text, skill) {
				count++
			}
		}
		return count
	}
	senior = countSet(seniorSkills)
	mid = countSet(midSkills)

	switch {
	case senior >= 5:
		return 1.0
	case senior >= 3:
		return 0.8
	case senior >= 1 && mid >= 3:
		return 0.6
	case mid >= 3:
		return 0.5
	default:
		return 0.3
	}
}

// scoreLeadership counts leadership signals; a concrete team of three
// or more people counts double.
func scoreLeadership(text string) float64 {
	hits := leadershipSignals.Hits(text)
	if m := teamSizeRe.FindStringSubmatch(text); m != nil {
		if size, err := strconv.Atoi(m[1]); err == nil && size >= 3 {
			hits += 2
		}
	}
	switch {
	case hits >= 4:
		return 1.0
	case hits >= 2:
		return 0.7
	case hits == 1:
		return 0.4
	default:
		return 0.2
	}
}

func scoreImpact(text string) float64 {
	switch hits := impactSignals.Hits(text); {
	case hits >= 3:
		return 1.0
	case hits == 2:
		return 0.7
	case hits == 1:
		return 0.5
	default:
		return 0.3
	}
}

// titleAdjustment nudges the composite score by the dominant title
// class found anywhere in the résumé text or employment titles.
func titleAdjustment(resume *types.Resume, text string) (float64, string) {
	var b strings.Builder
	b.WriteString(text)
	for _, exp := range resume.Experiences {
		b.WriteString(" ")
		b.WriteString(strings.ToLower(exp.Title))
	}
	scanned := b.String()

	senior := seniorTitles.Hits(scanned)
	mid := midTitles.Hits(scanned)
	junior := juniorTitles.Hits(scanned)
	switch {
	case senior > junior && senior > 0:
		return 15, "Senior-level job titles found"
	case mid > junior && mid > 0:
		return 5, "Mid-level job titles found"
	case junior > senior && junior > 0:
		return -10, "Junior/entry-level titles found"
	default:
		return 0, ""
	}
}

// classify buckets the composite score and derives a confidence value.
// Confidence is lowest near the thresholds and grows toward the band
// extremes.
func classify(score float64) (types.SeniorityLevel, float64) {
	switch {
	case score >= seniorThreshold:
		return types.SenioritySenior, round1(math.Min(100, 70+(score-seniorThreshold)))
	case score >= midThreshold:
		return types.SeniorityMid, round1(50 + math.Min(score-midThreshold, seniorThreshold-score))
	default:
		return types.SeniorityJunior, round1(math.Min(100, 90-score))
	}
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

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
