package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResume = `{
  "name": "Ana Souza",
  "skills": [
    {"name": "Python", "normalized_name": "python", "level": "advanced"}
  ],
  "experiences": [
    {"title": "Software Engineer", "company": "Acme", "duration_months": 24}
  ],
  "education": [
    {"degree": "Bachelor of Science", "field": "CS"}
  ],
  "certifications": ["AWS SAA"],
  "total_experience_years": 5,
  "raw_text": "Software Engineer at Acme"
}`

const validJobPosting = `{
  "id": "job-1",
  "title": "Backend Engineer",
  "requirements": [
    {"skill": "python", "is_required": true}
  ],
  "preferred_skills": ["docker"],
  "keywords": ["python", "apis"],
  "min_experience_years": 3
}`

func TestValidateResumeJSON(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		assert.NoError(t, ValidateResumeJSON([]byte(validResume)))
	})

	t.Run("missing normalized_name", func(t *testing.T) {
		doc := `{"skills": [{"name": "Python"}]}`
		err := ValidateResumeJSON([]byte(doc))
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.NotEmpty(t, validationErr.Errors)
		assert.Contains(t, validationErr.Errors[0].Field, "skills")
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		err := ValidateResumeJSON([]byte(`{"surprise": true}`))
		require.Error(t, err)
	})

	t.Run("wrong type", func(t *testing.T) {
		err := ValidateResumeJSON([]byte(`{"total_experience_years": "five"}`))
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("malformed json", func(t *testing.T) {
		err := ValidateResumeJSON([]byte(`{not json`))
		require.Error(t, err)
	})
}

func TestValidateJobPostingJSON(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		assert.NoError(t, ValidateJobPostingJSON([]byte(validJobPosting)))
	})

	t.Run("missing id", func(t *testing.T) {
		err := ValidateJobPostingJSON([]byte(`{"title": "Engineer"}`))
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Error(), "id")
	})

	t.Run("negative experience rejected", func(t *testing.T) {
		err := ValidateJobPostingJSON([]byte(`{"id": "j", "min_experience_years": -1}`))
		require.Error(t, err)
	})
}

func TestValidateFiles(t *testing.T) {
	dir := t.TempDir()

	resumePath := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(resumePath, []byte(validResume), 0o644))
	jobPath := filepath.Join(dir, "job.json")
	require.NoError(t, os.WriteFile(jobPath, []byte(validJobPosting), 0o644))

	assert.NoError(t, ValidateResumeFile(resumePath))
	assert.NoError(t, ValidateJobPostingFile(jobPath))

	err := ValidateResumeFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestValidationErrorFormatting(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "id", Message: "is required"},
		{Field: "skills.0.name", Message: "String length must be greater than or equal to 1"},
	}}
	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1. id: is required")
	assert.Contains(t, msg, "2. skills.0.name")
}

func TestSchemaLoadErrorUnwrap(t *testing.T) {
	cause := errors.New("bad schema")
	err := &SchemaLoadError{Path: "x.json", Message: "load failed", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "x.json")
}
