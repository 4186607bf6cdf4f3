package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jonathan/career-analyzer/internal/types"
)

const testResume = `{
  "name": "Ana Souza",
  "skills": [
    {"name": "Python", "normalized_name": "python"},
    {"name": "Docker", "normalized_name": "docker"}
  ],
  "experiences": [
    {"title": "Senior Software Engineer", "company": "StableCorp", "duration_months": 48, "start_year": 2021, "end_year": 2025}
  ],
  "total_experience_years": 6,
  "raw_text": "Led team of 5. Architected services, owned them end-to-end. Reduced costs by 30%."
}`

const testJob = `{
  "id": "job-1",
  "title": "Backend Engineer",
  "requirements": [
    {"skill": "python", "is_required": true}
  ],
  "min_experience_years": 3
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadResume(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid resume", func(t *testing.T) {
		path := writeFile(t, dir, "resume.json", testResume)
		resume, err := loadResume(path)
		require.NoError(t, err)
		assert.Equal(t, "Ana Souza", resume.Name)
		assert.Len(t, resume.Skills, 2)
	})

	t.Run("schema violation surfaces the field", func(t *testing.T) {
		path := writeFile(t, dir, "bad.json", `{"skills": [{"name": "Python"}]}`)
		_, err := loadResume(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadResume(filepath.Join(dir, "nope.json"))
		require.Error(t, err)
	})
}

func TestLoadJobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.json", `{"id": "job-b", "title": "B"}`)
	writeFile(t, dir, "a.json", `{"id": "job-a", "title": "A"}`)
	writeFile(t, dir, "notes.txt", "not a job")

	t.Run("directory scan is sorted and filtered", func(t *testing.T) {
		jobs, err := loadJobs(nil, dir)
		require.NoError(t, err)
		require.Len(t, jobs, 2)
		assert.Equal(t, "job-a", jobs[0].ID)
		assert.Equal(t, "job-b", jobs[1].ID)
	})

	t.Run("explicit files and directory combine", func(t *testing.T) {
		extra := writeFile(t, t.TempDir(), "c.json", `{"id": "job-c"}`)
		jobs, err := loadJobs([]string{extra}, dir)
		require.NoError(t, err)
		assert.Len(t, jobs, 3)
	})

	t.Run("invalid job rejected", func(t *testing.T) {
		bad := t.TempDir()
		writeFile(t, bad, "bad.json", `{"title": "no id"}`)
		_, err := loadJobs(nil, bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

func TestRenderText(t *testing.T) {
	report := &types.Report{
		ID:        "r-1",
		CreatedAt: time.Now(),
		Seniority: types.SeniorityResult{
			Level: types.SenioritySenior, Score: 88, Confidence: 88,
			Indicators: []string{"Senior-level job titles found"},
		},
		Stability: types.StabilityResult{
			Score: 95, AverageTenureMonths: 40,
			PositiveNotes: []string{"Stable average tenure of 40 months"},
		},
		Matches: []types.JobMatch{
			{JobID: "job-1", JobTitle: "Backend Engineer", MatchPercentage: 92.5,
				MatchLevel: types.MatchLevelExcellent, IsBestFit: true},
		},
		ATSResults: []types.ATSResult{
			{JobID: "job-1", RoleType: types.RoleTypeTechnical, TotalScore: 85},
		},
	}

	out := renderText(report)

	assert.Contains(t, out, "Report r-1")
	assert.Contains(t, out, "Seniority: senior (score 88.0, confidence 88.0)")
	assert.Contains(t, out, "Senior-level job titles found")
	assert.Contains(t, out, "Stability: 95.0")
	assert.Contains(t, out, "* Backend Engineer")
	assert.Contains(t, out, "92.5% (excellent)")
	assert.Contains(t, out, "85.0/100 (technical)")
}

func TestRenderReportJSON(t *testing.T) {
	report := &types.Report{ID: "r-2"}
	out, err := renderReport(report, "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "r-2"`)
}

func TestRunAnalyzeEndToEnd(t *testing.T) {
	dir := t.TempDir()
	resumePath := writeFile(t, dir, "resume.json", testResume)
	jobPath := writeFile(t, dir, "job.json", testJob)
	outPath := filepath.Join(dir, "report.json")

	analyzeConfigFile = ""
	analyzeResumeFile = resumePath
	analyzeJobFiles = []string{jobPath}
	analyzeJobDir = ""
	analyzeOutputFile = outPath
	analyzeFormat = "json"
	analyzeTopJobs = 0
	analyzeVerbose = false
	t.Cleanup(func() {
		analyzeResumeFile = ""
		analyzeJobFiles = nil
		analyzeOutputFile = ""
		analyzeFormat = ""
	})

	require.NoError(t, runAnalyze(nil, nil))

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"job_id": "job-1"`)
	assert.Contains(t, string(content), `"seniority"`)
	assert.Contains(t, string(content), `"stability"`)
}
