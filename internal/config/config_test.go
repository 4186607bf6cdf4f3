package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"resume": "resume.json",
		"jobs": ["job1.json", "job2.json"],
		"format": "text",
		"top_jobs": 5,
		"verbose": true
	}`
	path := writeTempFile(t, "config.json", content)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "resume.json", cfg.Resume)
	assert.Equal(t, []string{"job1.json", "job2.json"}, cfg.Jobs)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, 5, cfg.TopJobs)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempFile(t, "config.json", `{ invalid json }`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("empty config is valid", func(t *testing.T) {
		cfg := &Config{}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("bad format rejected", func(t *testing.T) {
		cfg := &Config{Format: "yaml"}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'format'")
	})

	t.Run("negative top_jobs rejected", func(t *testing.T) {
		cfg := &Config{TopJobs: -1}
		require.Error(t, cfg.Validate())
	})

	t.Run("missing resume file rejected", func(t *testing.T) {
		cfg := &Config{Resume: filepath.Join(t.TempDir(), "nope.json")}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "resume file not found")
	})

	t.Run("existing files accepted", func(t *testing.T) {
		resume := writeTempFile(t, "resume.json", `{}`)
		cfg := &Config{Resume: resume, Format: FormatJSON}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing job file rejected", func(t *testing.T) {
		cfg := &Config{Jobs: []string{filepath.Join(t.TempDir(), "nope.json")}}
		require.Error(t, cfg.Validate())
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("CAREER_ANALYZER_RESUME", "/tmp/env-resume.json")
	t.Setenv("CAREER_ANALYZER_FORMAT", "text")
	t.Setenv("CAREER_ANALYZER_VERBOSE", "true")

	t.Run("fills empty fields", func(t *testing.T) {
		cfg := &Config{}
		cfg.ApplyEnv()
		assert.Equal(t, "/tmp/env-resume.json", cfg.Resume)
		assert.Equal(t, FormatText, cfg.Format)
		assert.True(t, cfg.Verbose)
	})

	t.Run("file values win", func(t *testing.T) {
		cfg := &Config{Resume: "file-resume.json", Format: FormatJSON}
		cfg.ApplyEnv()
		assert.Equal(t, "file-resume.json", cfg.Resume)
		assert.Equal(t, FormatJSON, cfg.Format)
	})
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Resume: "mine.json"}
	defaults := Config{
		Resume:  "default.json",
		JobDir:  "jobs/",
		TopJobs: 10,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "mine.json", merged.Resume)
	assert.Equal(t, "jobs/", merged.JobDir)
	assert.Equal(t, 10, merged.TopJobs)
	// Format falls back to JSON when neither side sets it.
	assert.Equal(t, FormatJSON, merged.Format)
}
