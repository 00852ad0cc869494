package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRuns() []schema.SeriesRun {
	scope := 10.0
	ideal := 6.0
	actual := 4.0
	return []schema.SeriesRun{
		{
			SprintID: "sprint-1",
			Mode:     schema.IssuesMode,
			Chart:    schema.BurnDown,
			Today:    "2024-03-05",
			RunTime:  time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC),
			Points: []schema.ProgressPoint{
				{Date: "2024-03-04", Scope: &scope, Ideal: &ideal, Actual: &actual, Pending: 4, Completed: 6},
				{Date: "2024-03-05"},
			},
		},
		{
			SprintID: "sprint-2",
			Mode:     schema.PointsMode,
			Chart:    schema.BurnUp,
			Today:    "2024-03-05",
			RunTime:  time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
			Points:   nil,
		},
	}
}

func TestSeriesRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	sch := parquet.SchemaOf(new(SeriesRun))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"sprint_id",
		"counting_mode",
		"chart_mode",
		"today",
		"run_time",
		"point_count",
	}

	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestSeriesPointStructTags(t *testing.T) {
	sch := parquet.SchemaOf(new(SeriesPoint))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"sprint_id",
		"counting_mode",
		"chart_mode",
		"date",
		"scope",
		"ideal",
		"actual",
		"pending",
		"completed",
		"backlog",
		"started",
		"unstarted",
		"cancelled",
	}

	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestConvertSeriesRuns(t *testing.T) {
	rows := ConvertSeriesRuns(sampleRuns())
	require.Len(t, rows, 2)
	assert.Equal(t, "sprint-1", rows[0].SprintID)
	assert.Equal(t, "issues", rows[0].CountingMode)
	assert.Equal(t, "burndown", rows[0].ChartMode)
	assert.Equal(t, int32(2), rows[0].PointCount)
	assert.Equal(t, int32(0), rows[1].PointCount)
}

func TestConvertSeriesPoints(t *testing.T) {
	rows := ConvertSeriesPoints(sampleRuns())
	require.Len(t, rows, 2)

	assert.Equal(t, "sprint-1", rows[0].SprintID)
	assert.Equal(t, "2024-03-04", rows[0].Date)
	require.NotNil(t, rows[0].Scope)
	assert.Equal(t, 10.0, *rows[0].Scope)
	assert.Equal(t, 6.0, rows[0].Completed)

	// Placeholder point keeps its nullable fields nil
	assert.Nil(t, rows[1].Scope)
	assert.Nil(t, rows[1].Ideal)
	assert.Nil(t, rows[1].Actual)
}

func TestWriteSeriesPointsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "series_points.parquet")

	data := ConvertSeriesPoints(sampleRuns())
	require.NotEmpty(t, data)

	err := WriteSeriesPointsParquet(data, outputPath)
	require.NoError(t, err)

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[SeriesPoint](file)
	defer reader.Close()

	readData := make([]SeriesPoint, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := range data {
		assert.Equal(t, data[i].SprintID, readData[i].SprintID)
		assert.Equal(t, data[i].Date, readData[i].Date)
		assert.InDelta(t, data[i].Pending, readData[i].Pending, 0.001)
		assert.InDelta(t, data[i].Completed, readData[i].Completed, 0.001)

		// Check nullable fields
		if data[i].Scope == nil {
			assert.Nil(t, readData[i].Scope, "Scope should be nil")
		} else {
			require.NotNil(t, readData[i].Scope, "Scope should not be nil")
			assert.InDelta(t, *data[i].Scope, *readData[i].Scope, 0.001)
		}
	}
}

func TestWriteSeriesRunsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "series_runs.parquet")

	data := ConvertSeriesRuns(sampleRuns())
	err := WriteSeriesRunsParquet(data, outputPath)
	require.NoError(t, err)

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[SeriesRun](file)
	defer reader.Close()

	readData := make([]SeriesRun, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(data), n)

	assert.Equal(t, data[0].SprintID, readData[0].SprintID)
	assert.Equal(t, data[0].PointCount, readData[0].PointCount)
	assert.WithinDuration(t, data[0].RunTime, readData[0].RunTime, time.Nanosecond)
}

func TestWriteSeriesRunsParquet_EmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_runs.parquet")

	err := WriteSeriesRunsParquet([]SeriesRun{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteSeriesPointsParquet_InvalidPath(t *testing.T) {
	data := ConvertSeriesPoints(sampleRuns())
	err := WriteSeriesPointsParquet(data, "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}
