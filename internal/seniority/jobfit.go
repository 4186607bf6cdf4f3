package seniority

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/career-analyzer/internal/types"
)

// Per-axis scores a candidate at each level is expected to show.
var axisExpectations = map[types.SeniorityLevel]map[string]float64{
	types.SenioritySenior: {
		"experience": 0.85,
		"complexity": 0.8,
		"autonomy":   0.7,
		"skills":     0.8,
		"leadership": 0.7,
		"impact":     0.7,
	},
	types.SeniorityMid: {
		"experience": 0.6,
		"complexity": 0.5,
		"autonomy":   0.5,
		"skills":     0.5,
		"leadership": 0.4,
		"impact":     0.5,
	},
	types.SeniorityJunior: {
		"experience": 0.25,
		"complexity": 0.3,
		"autonomy":   0.3,
		"skills":     0.3,
		"leadership": 0.2,
		"impact":     0.3,
	},
}

var levelRank = map[types.SeniorityLevel]int{
	types.SeniorityJunior: 1,
	types.SeniorityMid:    2,
	types.SenioritySenior: 3,
}

const maxAxisGaps = 3

// compareToJob grades the detected level against the level the posting
// is expected to demand.
func (d *Detector) compareToJob(result *types.SeniorityResult, resume *types.Resume, job *types.JobPosting) *types.JobFit {
	expected := ExpectedLevel(job)
	expectations := axisExpectations[expected]

	fit := &types.JobFit{ExpectedLevel: expected}

	for _, sig := range result.Signals {
		want := expectations[sig.Axis]
		fit.AxisComparison = append(fit.AxisComparison, types.AxisComparison{
			Axis:             sig.Axis,
			CandidateLevel:   sig.Score,
			JobExpectedLevel: want,
			Meets:            sig.Score >= want,
		})
	}

	diff := levelRank[result.Level] - levelRank[expected]
	switch {
	case diff == 0:
		fit.Verdict = "match"
		fit.SeniorityMatch = "yes"
	case diff > 0:
		fit.Verdict = "over-qualified"
		fit.SeniorityMatch = "yes"
	case diff == -1:
		fit.Verdict = "slightly under-qualified"
		fit.SeniorityMatch = "stretch"
	default:
		fit.Verdict = "under-qualified"
		fit.SeniorityMatch = "no"
	}

	fit.Gaps = buildGaps(result, resume, job)
	return fit
}

// ExpectedLevel infers the level a posting demands, from title keywords
// first and the experience requirement as fallback.
func ExpectedLevel(job *types.JobPosting) types.SeniorityLevel {
	title := strings.ToLower(job.Title)
	switch {
	case seniorTitles.Any(title):
		return types.SenioritySenior
	case juniorTitles.Any(title):
		return types.SeniorityJunior
	case midTitles.Any(title):
		return types.SeniorityMid
	}

	switch {
	case job.MinExperienceYears >= 5:
		return types.SenioritySenior
	case job.MinExperienceYears >= 2:
		return types.SeniorityMid
	default:
		return types.SeniorityJunior
	}
}

// buildGaps lists the experience shortfall, then the weakest axes that
// sit below half credit, at most three.
func buildGaps(result *types.SeniorityResult, resume *types.Resume, job *types.JobPosting) []string {
	gaps := []string{}

	years := totalYears(resume)
	if job.MinExperienceYears > 0 && years < job.MinExperienceYears {
		gaps = append(gaps, fmt.Sprintf(
			"%.0f more years of experience typically expected for this role",
			job.MinExperienceYears-years))
	}

	weak := make([]types.AxisSignal, 0, len(result.Signals))
	for _, sig := range result.Signals {
		if sig.Score < 0.5 {
			weak = append(weak, sig)
		}
	}
	sort.SliceStable(weak, func(a, b int) bool {
		return weak[a].Score < weak[b].Score
	})
	if len(weak) > maxAxisGaps {
		weak = weak[:maxAxisGaps]
	}
	for _, sig := range weak {
		gaps = append(gaps, fmt.Sprintf("Strengthen %s signals in the resume", sig.Axis))
	}
	return gaps
}
