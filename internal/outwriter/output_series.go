package outwriter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/contract"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/parquet"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintSeries outputs a progress series, dispatching based on the output format configured.
func PrintSeries(sprint *schema.Sprint, series []schema.ProgressPoint, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, fmtNullable := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForSeries(sprint, series, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForSeries(series, cfg, fmtFloat, fmtNullable); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetResultsForSeries(sprint, series, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSeriesTable(sprint, series, cfg, fmtFloat, fmtNullable, duration, w)
		}, "Wrote table"); err != nil {
			return fmt.Errorf("error writing series table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForSeries handles opening the file and calling the JSON writer.
func printJSONResultsForSeries(sprint *schema.Sprint, series []schema.ProgressPoint, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForSeries(w, sprint, series, cfg)
	}, "Wrote JSON series")
}

// printCSVResultsForSeries handles opening the file and calling the CSV writer.
func printCSVResultsForSeries(series []schema.ProgressPoint, cfg *contract.Config, fmtFloat func(float64) string, fmtNullable func(*float64, string) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVResultsForSeries(w, series, fmtFloat, fmtNullable)
	}, "Wrote CSV series")
}

// printParquetResultsForSeries flattens the series into Parquet rows.
// Parquet is a binary format, so an explicit output file is required.
func printParquetResultsForSeries(sprint *schema.Sprint, series []schema.ProgressPoint, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet output")
	}

	run := schema.SeriesRun{
		SprintID: sprint.ID,
		Mode:     cfg.Mode,
		Chart:    cfg.Chart,
		Today:    cfg.Today.Format(schema.DayFormat),
		RunTime:  time.Now().UTC(),
		Points:   series,
	}
	rows := parquet.ConvertSeriesPoints([]schema.SeriesRun{run})
	if err := parquet.WriteSeriesPointsParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote %d series points to %s\n", len(rows), cfg.OutputFile)
	return nil
}

// writeSeriesTable generates and writes the human-readable table.
func writeSeriesTable(sprint *schema.Sprint, series []schema.ProgressPoint, cfg *contract.Config, fmtFloat func(float64) string, fmtNullable func(*float64, string) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Date", "Scope", "Ideal", "Actual", "Pending", "Completed"}
	breakdown := showBreakdownColumns(cfg)
	if breakdown {
		headers = append(headers, "Started", "Unstarted", "Backlog", "Cancelled")
	}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, p := range series {
		row := []string{
			p.Date,
			fmtNullable(p.Scope, "-"),
			fmtNullable(p.Ideal, "-"),
			fmtNullable(p.Actual, "-"),
			fmtFloat(p.Pending),
			fmtFloat(p.Completed),
		}
		if breakdown {
			row = append(row,
				fmtFloat(p.Started),
				fmtFloat(p.Unstarted),
				fmtFloat(p.Backlog),
				fmtFloat(p.Cancelled),
			)
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "%s %s for %q over %d days\n", cfg.Mode, cfg.Chart, sprint.Name, len(series)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Report completed in %v. Archive backend: %s\n", duration, cfg.ArchiveBackend); err != nil {
		return err
	}
	return nil
}
