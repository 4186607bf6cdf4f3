package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/career-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintSeniority(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.SeniorityResult{
		Level:      types.SenioritySenior,
		Score:      87.5,
		Confidence: 87.5,
		Signals: []types.AxisSignal{
			{Axis: "experience", Score: 0.85, Weight: 0.15},
			{Axis: "complexity", Score: 0.9, Weight: 0.2},
		},
		JobFit: &types.JobFit{
			ExpectedLevel: types.SenioritySenior,
			Verdict:       "match",
		},
	}

	p.PrintSeniority(result)
	output := buf.String()

	assert.Contains(t, output, "SENIORITY")
	assert.Contains(t, output, "senior")
	assert.Contains(t, output, "87.5")
	assert.Contains(t, output, "experience")
	assert.Contains(t, output, "match")
}

func TestPrintSeniority_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSeniority(nil)

	assert.Empty(t, buf.String())
}

func TestPrintStability(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.StabilityResult{
		Score:               75,
		AverageTenureMonths: 14,
		Flags:               []types.StabilityFlag{types.FlagJobHopper},
		Timeline: []types.TimelineEntry{
			{Title: "Engineer", Company: "Acme Corp", StartYear: 2022, EndYear: 2024},
		},
	}

	p.PrintStability(result)
	output := buf.String()

	assert.Contains(t, output, "STABILITY")
	assert.Contains(t, output, "75.0")
	assert.Contains(t, output, "14 months")
	assert.Contains(t, output, "job_hopper")
	assert.Contains(t, output, "Acme Corp")
}

func TestPrintStability_TimelineTruncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.StabilityResult{Score: 100}
	for i := 0; i < 8; i++ {
		result.Timeline = append(result.Timeline, types.TimelineEntry{
			Title: "Engineer", Company: "Acme", StartYear: 2010 + i, EndYear: 2011 + i,
		})
	}

	p.PrintStability(result)
	output := buf.String()

	assert.Contains(t, output, "3 more positions")
	assert.Equal(t, maxItemsToShow, strings.Count(output, "Engineer @ Acme"))
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	matches := []types.JobMatch{
		{JobTitle: "Backend Engineer", MatchPercentage: 92.5, MatchLevel: types.MatchLevelExcellent, IsBestFit: true},
		{JobTitle: "Data Analyst", MatchPercentage: 41, MatchLevel: types.MatchLevelFair},
	}

	p.PrintMatches(matches)
	output := buf.String()

	assert.Contains(t, output, "JOB MATCHES")
	assert.Contains(t, output, "* ")
	assert.Contains(t, output, "92.5%")
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "Data Analyst")
}

func TestPrintMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatches(nil)

	assert.Empty(t, buf.String())
}

func TestPrintATSResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := []types.ATSResult{
		{JobID: "job-1", TotalScore: 83.5, RoleType: types.RoleTypeTechnical,
			FormatIssues: []string{"Resume may be too short for ATS parsing"}},
	}

	p.PrintATSResults(results)
	output := buf.String()

	assert.Contains(t, output, "ATS SCORES")
	assert.Contains(t, output, "job-1")
	assert.Contains(t, output, "83.5")
	assert.Contains(t, output, "too short")
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.Report{
		Seniority: types.SeniorityResult{Level: types.SeniorityMid, Score: 55},
		Stability: types.StabilityResult{Score: 90},
		Matches:   []types.JobMatch{{JobTitle: "Engineer", MatchPercentage: 70, MatchLevel: types.MatchLevelGood}},
		ATSResults: []types.ATSResult{
			{JobID: "job-1", TotalScore: 60, RoleType: types.RoleTypeTechnical},
		},
	}

	p.PrintReport(report)
	output := buf.String()

	assert.Contains(t, output, "SENIORITY")
	assert.Contains(t, output, "STABILITY")
	assert.Contains(t, output, "JOB MATCHES")
	assert.Contains(t, output, "ATS SCORES")
}

func TestPrintReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(nil)

	assert.Empty(t, buf.String())
}
