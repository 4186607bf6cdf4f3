package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jonathan/career-analyzer/internal/types"
)

func sampleResume() *types.Resume {
	start1, end1 := 2019, 2022
	start2 := 2022
	return &types.Resume{
		Name:  "Ana Souza",
		Email: "ana@example.com",
		Skills: []types.Skill{
			{Name: "Python", NormalizedName: "python"},
			{Name: "Docker", NormalizedName: "docker"},
			{Name: "Kafka", NormalizedName: "kafka"},
			{Name: "Terraform", NormalizedName: "terraform"},
		},
		Experiences: []types.Experience{
			{
				Title: "Senior Software Engineer", Company: "StableCorp",
				DurationMonths: 48, StartYear: &start2,
				Description: "Led team of 6. Architected the platform and owned it end-to-end. Reduced costs by 30%.",
			},
			{
				Title: "Software Engineer", Company: "StableCorp",
				DurationMonths: 36, StartYear: &start1, EndYear: &end1,
				Description: "Developed and maintained microservices.",
			},
		},
		Education:            []types.Education{{Degree: "Bachelor of Science", Field: "CS"}},
		Certifications:       []string{"AWS SAA", "CKA"},
		TotalExperienceYears: 7,
		RawText: "Led team of 6 engineers. Architected the event platform, owned it " +
			"end-to-end, responsible for system design with kafka and terraform. " +
			"Mentored juniors and reduced infra costs by 30%, saving $500k. " +
			"Developed python services with docker.",
	}
}

func sampleJobs() []*types.JobPosting {
	return []*types.JobPosting{
		{
			ID:    "job-backend",
			Title: "Senior Backend Engineer",
			Requirements: []types.JobRequirement{
				{Skill: "python", IsRequired: true},
				{Skill: "docker", IsRequired: true},
			},
			PreferredSkills:    []string{"kafka"},
			Keywords:           []string{"python", "kafka"},
			MinExperienceYears: 5,
		},
		{
			ID:    "job-design",
			Title: "Product Designer",
			Requirements: []types.JobRequirement{
				{Skill: "figma", IsRequired: true},
			},
		},
	}
}

func TestAnalyzeFullReport(t *testing.T) {
	report, err := New(nil).Analyze(context.Background(), sampleResume(), sampleJobs())
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.False(t, report.CreatedAt.IsZero())

	// Matching is ranked with a single best fit.
	require.Len(t, report.Matches, 2)
	assert.Equal(t, "job-backend", report.Matches[0].JobID)
	assert.True(t, report.Matches[0].IsBestFit)
	assert.False(t, report.Matches[1].IsBestFit)

	// ATS results keep input job order and role dispatch.
	require.Len(t, report.ATSResults, 2)
	assert.Equal(t, "job-backend", report.ATSResults[0].JobID)
	assert.Equal(t, types.RoleTypeTechnical, report.ATSResults[0].RoleType)
	assert.Equal(t, types.RoleTypeDesign, report.ATSResults[1].RoleType)

	// Seniority is compared against the best-fit job.
	assert.Equal(t, types.SenioritySenior, report.Seniority.Level)
	require.NotNil(t, report.Seniority.JobFit)
	assert.Equal(t, types.SenioritySenior, report.Seniority.JobFit.ExpectedLevel)

	assert.Greater(t, report.Stability.Score, 80.0)
}

func TestAnalyzeWithoutJobs(t *testing.T) {
	report, err := New(nil).Analyze(context.Background(), sampleResume(), nil)
	require.NoError(t, err)

	assert.Empty(t, report.Matches)
	assert.Empty(t, report.ATSResults)
	assert.Nil(t, report.Seniority.JobFit)
	assert.NotZero(t, report.Stability.Score)
}

func TestAnalyzeRejectsInvalidResume(t *testing.T) {
	resume := sampleResume()
	resume.Email = "not-an-email"

	_, err := New(nil).Analyze(context.Background(), resume, sampleJobs())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating resume")
}

func TestAnalyzeRejectsInvalidJob(t *testing.T) {
	jobs := sampleJobs()
	jobs[1].ID = ""

	_, err := New(nil).Analyze(context.Background(), sampleResume(), jobs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating job")
}

func TestAnalyzeScoresAreStableAcrossRuns(t *testing.T) {
	e := New(nil)
	first, err := e.Analyze(context.Background(), sampleResume(), sampleJobs())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		next, err := e.Analyze(context.Background(), sampleResume(), sampleJobs())
		require.NoError(t, err)
		assert.Equal(t, first.Matches, next.Matches)
		assert.Equal(t, first.ATSResults, next.ATSResults)
		assert.Equal(t, first.Seniority, next.Seniority)
		assert.Equal(t, first.Stability, next.Stability)
	}
}
