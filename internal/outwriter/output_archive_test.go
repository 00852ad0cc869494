package outwriter

import (
	"bytes"
	"testing"
	"time"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteArchiveListTable(t *testing.T) {
	records := []schema.SprintRecord{
		{
			SprintID:   "sprint-1",
			Name:       "Iteration 12",
			StartDate:  "2024-03-01",
			EndDate:    "2024-03-14",
			Version:    schema.VersionSnapshot,
			ImportedAt: time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
		},
		{
			SprintID:   "sprint-0",
			Name:       "Iteration 11",
			StartDate:  "2024-02-15",
			EndDate:    "2024-02-28",
			Version:    schema.VersionLegacy,
			ImportedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeArchiveListTable(records, &buf))

	output := buf.String()
	assert.Contains(t, output, "sprint-1")
	assert.Contains(t, output, "Iteration 11")
	assert.Contains(t, output, "2024-03-01")
	assert.Contains(t, output, "Showing 2 archived sprints")
}

func TestWriteArchiveStatusText(t *testing.T) {
	status := &schema.ArchiveStatus{
		Backend:      schema.SQLiteBackend,
		Connected:    true,
		TotalSprints: 3,
		TotalRuns:    5,
		LastImport:   time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, writeArchiveStatusText(status, &buf))

	output := buf.String()
	assert.Contains(t, output, "Archive backend: sqlite")
	assert.Contains(t, output, "Connected: true")
	assert.Contains(t, output, "Archived sprints: 3")
	assert.Contains(t, output, "Series runs: 5")
	assert.Contains(t, output, "Last import:")
	assert.NotContains(t, output, "Oldest import:")
}

func TestWriteArchiveStatusDisconnected(t *testing.T) {
	status := &schema.ArchiveStatus{Backend: schema.NoneBackend}

	var buf bytes.Buffer
	require.NoError(t, writeArchiveStatusText(status, &buf))

	output := buf.String()
	assert.Contains(t, output, "Connected: false")
	assert.NotContains(t, output, "Archived sprints")
}
