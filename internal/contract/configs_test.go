package contract

import (
	"testing"
	"time"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation unchanged.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		SprintPathStr:  "sprint.json",
		Mode:           "issues",
		Chart:          "burndown",
		Output:         "text",
		Precision:      1,
		Limit:          25,
		Color:          "yes",
		ArchiveBackend: "sqlite",
	}
}

// TestProcessAndValidate covers the happy path and each rejection.
func TestProcessAndValidate(t *testing.T) {
	now := time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)

	t.Run("valid input", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, validInput(), now))
		assert.Equal(t, schema.IssuesMode, cfg.Mode)
		assert.Equal(t, schema.BurnDown, cfg.Chart)
		assert.Equal(t, schema.TextOut, cfg.Output)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), cfg.Today)
		assert.True(t, cfg.UseColors)
		assert.Equal(t, schema.SQLiteBackend, cfg.ArchiveBackend)
	})

	t.Run("today override", func(t *testing.T) {
		input := validInput()
		input.Today = "2024-01-05"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input, now))
		assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), cfg.Today)
	})

	rejections := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"bad counting mode", func(i *ConfigRawInput) { i.Mode = "hours" }},
		{"bad chart mode", func(i *ConfigRawInput) { i.Chart = "gantt" }},
		{"bad output mode", func(i *ConfigRawInput) { i.Output = "xml" }},
		{"bad today override", func(i *ConfigRawInput) { i.Today = "Jan 5 2024" }},
		{"negative precision", func(i *ConfigRawInput) { i.Precision = -1 }},
		{"zero limit", func(i *ConfigRawInput) { i.Limit = 0 }},
		{"bad color value", func(i *ConfigRawInput) { i.Color = "maybe" }},
		{"bad backend", func(i *ConfigRawInput) { i.ArchiveBackend = "oracle" }},
		{"mysql without connection string", func(i *ConfigRawInput) { i.ArchiveBackend = "mysql" }},
	}
	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input, now))
		})
	}
}

// TestValidateDatabaseConnectionString pairs backends with requirements.
func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost:3306)/lens"))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.DatabaseBackend("oracle"), "x"))
}

// TestGetPlainLabel checks the pace thresholds.
func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name         string
		percentage   int
		elapsedShare int
		expected     string
	}{
		{"complete", 100, 40, CompleteValue},
		{"ahead", 70, 50, AheadValue},
		{"on track above", 55, 50, OnTrackValue},
		{"on track below", 42, 50, OnTrackValue},
		{"behind", 30, 50, BehindValue},
		{"at risk", 10, 60, AtRiskValue},
		{"fresh sprint", 0, 0, OnTrackValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.percentage, tt.elapsedShare))
		})
	}
}
