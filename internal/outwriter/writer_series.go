package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/contract"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
)

// writeJSONResultsForSeries marshals the series with its report context and writes it.
func writeJSONResultsForSeries(w io.Writer, sprint *schema.Sprint, series []schema.ProgressPoint, cfg *contract.Config) error {
	type JSONSeriesResult struct {
		SprintID string                 `json:"sprint_id"`
		Name     string                 `json:"name"`
		Mode     schema.CountingMode    `json:"mode"`
		Chart    schema.ChartMode       `json:"chart"`
		Today    string                 `json:"today"`
		Points   []schema.ProgressPoint `json:"points"`
	}

	output := JSONSeriesResult{
		SprintID: sprint.ID,
		Name:     sprint.Name,
		Mode:     cfg.Mode,
		Chart:    cfg.Chart,
		Today:    cfg.Today.Format(schema.DayFormat),
		Points:   series,
	}
	return writeJSON(w, output)
}

// writeCSVResultsForSeries writes the series data in CSV format.
// Nullable columns are left empty when the value is absent.
func writeCSVResultsForSeries(w io.Writer, series []schema.ProgressPoint, fmtFloat func(float64) string, fmtNullable func(*float64, string) string) error {
	header := []string{
		"date",
		"scope",
		"ideal",
		"actual",
		"pending",
		"completed",
		"started",
		"unstarted",
		"backlog",
		"cancelled",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, p := range series {
			row := []string{
				p.Date,
				fmtNullable(p.Scope, ""),
				fmtNullable(p.Ideal, ""),
				fmtNullable(p.Actual, ""),
				fmtFloat(p.Pending),
				fmtFloat(p.Completed),
				fmtFloat(p.Started),
				fmtFloat(p.Unstarted),
				fmtFloat(p.Backlog),
				fmtFloat(p.Cancelled),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
