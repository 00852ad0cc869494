package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/contract"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintSummary outputs a sprint pace summary, dispatching based on the output format configured.
func PrintSummary(summary schema.SprintSummary, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForSummary(summary, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForSummary(summary, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Parquet makes no sense for a single summary row; fall back to table
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(summary, cfg, fmtFloat, w)
		}, "Wrote summary table"); err != nil {
			return fmt.Errorf("error writing summary table output: %w", err)
		}
	}
	return nil
}

// elapsedShare converts elapsed days into a percentage of the sprint window.
func elapsedShare(summary schema.SprintSummary) int {
	if summary.TotalDays <= 0 {
		return 0
	}
	return summary.ElapsedDays * 100 / summary.TotalDays
}

func printJSONResultsForSummary(summary schema.SprintSummary, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		type JSONSummaryResult struct {
			Label string `json:"label"`
			schema.SprintSummary
		}
		return writeJSON(w, JSONSummaryResult{
			Label:         contract.GetPlainLabel(summary.Percentage, elapsedShare(summary)),
			SprintSummary: summary,
		})
	}, "Wrote JSON summary")
}

func printCSVResultsForSummary(summary schema.SprintSummary, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"sprint_id",
			"name",
			"percentage",
			"label",
			"scope",
			"completed",
			"remaining",
			"total_days",
			"elapsed_days",
			"remaining_days",
			"required_pace",
			"actual_pace",
			"on_track",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			row := []string{
				summary.SprintID,
				summary.Name,
				strconv.Itoa(summary.Percentage),
				contract.GetPlainLabel(summary.Percentage, elapsedShare(summary)),
				fmtFloat(summary.Scope),
				fmtFloat(summary.Completed),
				fmtFloat(summary.Remaining),
				strconv.Itoa(summary.TotalDays),
				strconv.Itoa(summary.ElapsedDays),
				strconv.Itoa(summary.RemainingDays),
				fmtFloat(summary.RequiredPace),
				fmtFloat(summary.ActualPace),
				strconv.FormatBool(summary.OnTrack),
			}
			return csvWriter.Write(row)
		})
	}, "Wrote CSV summary")
}

// writeSummaryTable renders the pace report as a two-column table.
func writeSummaryTable(summary schema.SprintSummary, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	share := elapsedShare(summary)
	label := contract.GetPlainLabel(summary.Percentage, share)
	if cfg.UseColors {
		label = contract.GetColorLabel(summary.Percentage, share)
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Field", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{"Sprint", summary.Name},
		{"Progress", fmt.Sprintf("%d%% (%s)", summary.Percentage, label)},
		{"Scope", fmtFloat(summary.Scope)},
		{"Completed", fmtFloat(summary.Completed)},
		{"Remaining", fmtFloat(summary.Remaining)},
		{"Days", fmt.Sprintf("%d of %d elapsed, %d left", summary.ElapsedDays, summary.TotalDays, summary.RemainingDays)},
		{"Required pace", fmtFloat(summary.RequiredPace) + "/day"},
		{"Actual pace", fmtFloat(summary.ActualPace) + "/day"},
		{"On track", strconv.FormatBool(summary.OnTrack)},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
