// Package parquet provides data structures and functions for exporting
// archived sprint analytics to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
	"github.com/parquet-go/parquet-go"
)

// SeriesRun represents one persisted series computation for a sprint.
// This struct maps to the sprintlens_series_runs database table.
type SeriesRun struct {
	// SprintID identifies the sprint the series was computed for
	SprintID string `parquet:"sprint_id,snappy"`

	// CountingMode is the unit the series counts, issues or points
	CountingMode string `parquet:"counting_mode,snappy"`

	// ChartMode is the report shape, burndown or burnup
	ChartMode string `parquet:"chart_mode,snappy"`

	// Today is the reference date the series was computed against
	Today string `parquet:"today,snappy"`

	// RunTime is when the series was computed (stored as TIMESTAMP with nanosecond precision)
	RunTime time.Time `parquet:"run_time,snappy"`

	// PointCount is the number of points in the series
	PointCount int32 `parquet:"point_count,snappy"`
}

// SeriesPoint represents a single dated point of a computed progress series.
// One row is emitted per point of every persisted run.
type SeriesPoint struct {
	// SprintID references the parent sprint
	SprintID string `parquet:"sprint_id,snappy"`

	// CountingMode is the unit the point counts, issues or points
	CountingMode string `parquet:"counting_mode,snappy"`

	// ChartMode is the report shape, burndown or burnup
	ChartMode string `parquet:"chart_mode,snappy"`

	// Date is the calendar day of the point
	Date string `parquet:"date,snappy"`

	// Scope is the total work in scope on that day (nullable)
	Scope *float64 `parquet:"scope,optional,snappy"`

	// Ideal is the ideal remaining work on that day (nullable)
	Ideal *float64 `parquet:"ideal,optional,snappy"`

	// Actual is the observed remaining or completed work (nullable)
	Actual *float64 `parquet:"actual,optional,snappy"`

	// Pending is the work not yet completed
	Pending float64 `parquet:"pending,snappy"`

	// Completed is the work finished so far
	Completed float64 `parquet:"completed,snappy"`

	// Backlog is the work parked outside the active sprint
	Backlog float64 `parquet:"backlog,snappy"`

	// Started is the work in progress
	Started float64 `parquet:"started,snappy"`

	// Unstarted is the work not yet picked up
	Unstarted float64 `parquet:"unstarted,snappy"`

	// Cancelled is the work dropped from the sprint
	Cancelled float64 `parquet:"cancelled,snappy"`
}

// ConvertSeriesRuns maps persisted runs to their Parquet representation.
func ConvertSeriesRuns(runs []schema.SeriesRun) []SeriesRun {
	out := make([]SeriesRun, 0, len(runs))
	for _, run := range runs {
		out = append(out, SeriesRun{
			SprintID:     run.SprintID,
			CountingMode: string(run.Mode),
			ChartMode:    string(run.Chart),
			Today:        run.Today,
			RunTime:      run.RunTime,
			PointCount:   int32(len(run.Points)),
		})
	}
	return out
}

// ConvertSeriesPoints flattens persisted runs into one row per point.
func ConvertSeriesPoints(runs []schema.SeriesRun) []SeriesPoint {
	var out []SeriesPoint
	for _, run := range runs {
		for _, p := range run.Points {
			out = append(out, SeriesPoint{
				SprintID:     run.SprintID,
				CountingMode: string(run.Mode),
				ChartMode:    string(run.Chart),
				Date:         p.Date,
				Scope:        p.Scope,
				Ideal:        p.Ideal,
				Actual:       p.Actual,
				Pending:      p.Pending,
				Completed:    p.Completed,
				Backlog:      p.Backlog,
				Started:      p.Started,
				Unstarted:    p.Unstarted,
				Cancelled:    p.Cancelled,
			})
		}
	}
	return out
}

// WriteSeriesRunsParquet writes a slice of SeriesRun structs to a Parquet file.
func WriteSeriesRunsParquet(data []SeriesRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the SeriesRun struct tags
	writer := parquet.NewGenericWriter[SeriesRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteSeriesPointsParquet writes a slice of SeriesPoint structs to a Parquet file.
func WriteSeriesPointsParquet(data []SeriesPoint, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the SeriesPoint struct tags
	writer := parquet.NewGenericWriter[SeriesPoint](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
