package archive

import (
	"errors"
	"fmt"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/parquet"
)

// Export writes every persisted series run to a pair of Parquet files:
// one row per run, and one row per series point.
func (s *Store) Export(outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	status, err := s.Status()
	if err != nil {
		return fmt.Errorf("failed to get archive status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no archived series runs found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total series runs: %d\n", status.TotalRuns)

	runs, err := s.ListSeriesRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve series runs: %w", err)
	}

	parquetRuns := parquet.ConvertSeriesRuns(runs)
	parquetPoints := parquet.ConvertSeriesPoints(runs)

	runsFile := outputFile + ".series_runs.parquet"
	if err := parquet.WriteSeriesRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write series runs: %w", err)
	}
	fmt.Printf("Exported %d series runs to: %s\n", len(parquetRuns), runsFile)

	pointsFile := outputFile + ".series_points.parquet"
	if err := parquet.WriteSeriesPointsParquet(parquetPoints, pointsFile); err != nil {
		return fmt.Errorf("failed to write series points: %w", err)
	}
	fmt.Printf("Exported %d series points to: %s\n", len(parquetPoints), pointsFile)

	return nil
}
