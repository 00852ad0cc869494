//go:build basic

// Package integration contains integration tests for sprintlens.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSprintlensReports exercises the chart and progress commands end to end
// with a SQLite archive in a temp location.
func TestSprintlensReports(t *testing.T) {
	exportPath := writeSprintExport(t)
	dbPath := filepath.Join(t.TempDir(), "archive.db")

	_ = os.Setenv("SPRINTLENS_ARCHIVE_BACKEND", "sqlite")
	_ = os.Setenv("SPRINTLENS_ARCHIVE_DB_CONNECT", dbPath)
	defer func() { _ = os.Unsetenv("SPRINTLENS_ARCHIVE_BACKEND") }()
	defer func() { _ = os.Unsetenv("SPRINTLENS_ARCHIVE_DB_CONNECT") }()

	// Import both sprints into the archive
	output, err := runSprintlensCommand(t, "archive", "import", exportPath)
	require.NoError(t, err)
	assert.Contains(t, output, "Imported 2 sprints")

	// List the archived sprints
	output, err = runSprintlensCommand(t, "archive", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "sprint-legacy")
	assert.Contains(t, output, "sprint-snapshot")

	// Chart an archived sprint with a pinned reference date
	output, err = runSprintlensCommand(t, "chart", "sprint-snapshot",
		"--from-archive", "--today", "2024-03-05", "--width", "120")
	require.NoError(t, err)
	assert.Contains(t, output, "2024-03-04")
	assert.Contains(t, output, "2024-03-14")

	// Archive status reflects both the imports and the recorded chart run
	output, err = runSprintlensCommand(t, "archive", "status")
	require.NoError(t, err)
	assert.Contains(t, output, "Archived sprints: 2")
	assert.Contains(t, output, "Series runs: 1")

	// Export series runs to parquet
	exportBase := filepath.Join(t.TempDir(), "export")
	_, err = runSprintlensCommand(t, "archive", "export", "--output-file", exportBase)
	require.NoError(t, err)
	assert.FileExists(t, exportBase+".series_runs.parquet")
	assert.FileExists(t, exportBase+".series_points.parquet")

	// Clear the archive
	output, err = runSprintlensCommand(t, "archive", "clear")
	require.NoError(t, err)
	assert.Contains(t, output, "Archive cleared")
}

// TestSprintlensJSONOutput checks the machine-readable output paths.
func TestSprintlensJSONOutput(t *testing.T) {
	exportPath := writeSingleSprint(t)

	_ = os.Setenv("SPRINTLENS_ARCHIVE_BACKEND", "none")
	defer func() { _ = os.Unsetenv("SPRINTLENS_ARCHIVE_BACKEND") }()

	output, err := runSprintlensCommand(t, "chart", exportPath,
		"--today", "2024-03-05", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, output, `"sprint_id": "sprint-snapshot"`)
	assert.Contains(t, output, `"chart": "burndown"`)

	output, err = runSprintlensCommand(t, "progress", exportPath,
		"--today", "2024-03-05", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, output, `"percentage": 60`)
	assert.Contains(t, output, `"on_track"`)
}

// TestSprintlensVersion checks the version diagnostics.
func TestSprintlensVersion(t *testing.T) {
	output, err := runSprintlensCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "sprintlens CLI")
	assert.Contains(t, output, "Runtime: go")
}
