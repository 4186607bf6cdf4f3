// Package schemas validates resume and job posting JSON documents
// against the embedded JSON Schemas before they enter the analysis
// pipeline.
package schemas

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema string

//go:embed job_posting.schema.json
var jobPostingSchema string

// ValidationError is a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError is an error loading or parsing the schema itself.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateResumeJSON validates resume JSON content against the embedded
// resume schema.
func ValidateResumeJSON(content []byte) error {
	return validate("resume.schema.json", resumeSchema, content)
}

// ValidateJobPostingJSON validates job posting JSON content against the
// embedded job posting schema.
func ValidateJobPostingJSON(content []byte) error {
	return validate("job_posting.schema.json", jobPostingSchema, content)
}

// ValidateResumeFile validates a resume JSON file on disk.
func ValidateResumeFile(path string) error {
	return validateFile(path, "resume.schema.json", resumeSchema)
}

// ValidateJobPostingFile validates a job posting JSON file on disk.
func ValidateJobPostingFile(path string) error {
	return validateFile(path, "job_posting.schema.json", jobPostingSchema)
}

func validateFile(path, schemaName, schema string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	content, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", absPath, err)
	}
	return validate(schemaName, schema, content)
}

func validate(schemaName, schema string, content []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(content)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaName,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
