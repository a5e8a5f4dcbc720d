package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"user_id": "550e8400-e29b-41d4-a716-446655440000",
		"term": "2251",
		"threshold": 75,
		"catalog_url": "https://schedule.example.edu/api",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", cfg.UserID)
	assert.Equal(t, "2251", cfg.Term)
	assert.Equal(t, 75, cfg.Threshold)
	assert.Equal(t, "https://schedule.example.edu/api", cfg.CatalogURL)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_IgnoresUnknownKeys(t *testing.T) {
	// Config files written by older releases may carry keys that no longer
	// map to a field (e.g. "use_browser"); they must still load.
	content := `{
		"term": "2251",
		"use_browser": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, "2251", cfg.Term)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		Resume:     "resume.json",
		ResumeText: "resume.txt",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_ThresholdRange(t *testing.T) {
	for _, threshold := range []int{-1, 101} {
		cfg := &Config{Threshold: threshold}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "threshold")
	}
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{
		Resume: filepath.Join(t.TempDir(), "missing.json"),
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Term:      "2251",
		Threshold: 60,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Term:        "2248",
		CatalogURL:  "https://schedule.example.edu/api",
		DatabaseURL: "postgres://localhost/resume_insights",
		Threshold:   70,
	}

	partial := Config{
		Term:   "2251",
		UserID: "custom-user-id",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "2251", merged.Term)
	assert.Equal(t, "custom-user-id", merged.UserID)

	// Default values should fill in empty fields
	assert.Equal(t, "https://schedule.example.edu/api", merged.CatalogURL)
	assert.Equal(t, "postgres://localhost/resume_insights", merged.DatabaseURL)
	assert.Equal(t, 70, merged.Threshold)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		UserID: "test-user",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "test-user", merged.UserID)
	assert.Equal(t, DefaultCatalogURL, merged.CatalogURL)
	assert.Equal(t, DefaultThreshold, merged.Threshold)
}
