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

// PrintArchiveList outputs archived sprint records, dispatching based on the output format configured.
func PrintArchiveList(records []schema.SprintRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, records)
		}, "Wrote JSON archive list")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"sprint_id", "name", "start_date", "end_date", "version", "imported_at"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, rec := range records {
					row := []string{
						rec.SprintID,
						rec.Name,
						rec.StartDate,
						rec.EndDate,
						strconv.Itoa(rec.Version),
						rec.ImportedAt.Format(contract.DateTimeFormat),
					}
					if err := csvWriter.Write(row); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV archive list")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeArchiveListTable(records, w)
		}, "Wrote archive list table")
	}
}

func writeArchiveListTable(records []schema.SprintRecord, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Sprint ID", "Name", "Start", "End", "Version", "Imported"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, rec := range records {
		data = append(data, []string{
			rec.SprintID,
			rec.Name,
			rec.StartDate,
			rec.EndDate,
			strconv.Itoa(rec.Version),
			rec.ImportedAt.Format(contract.DateTimeFormat),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Showing %d archived sprints\n", len(records))
	return err
}

// PrintArchiveStatus outputs archive connectivity and row counts.
func PrintArchiveStatus(status *schema.ArchiveStatus, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON archive status")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeArchiveStatusText(status, w)
		}, "Wrote archive status")
	}
}

func writeArchiveStatusText(status *schema.ArchiveStatus, writer io.Writer) error {
	fmt.Fprintf(writer, "Archive backend: %s\n", status.Backend)
	fmt.Fprintf(writer, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return nil
	}
	fmt.Fprintf(writer, "Archived sprints: %d\n", status.TotalSprints)
	fmt.Fprintf(writer, "Series runs: %d\n", status.TotalRuns)
	if !status.LastImport.IsZero() {
		fmt.Fprintf(writer, "Last import: %s\n", status.LastImport.Format(contract.DateTimeFormat))
	}
	if !status.OldestImport.IsZero() {
		fmt.Fprintf(writer, "Oldest import: %s\n", status.OldestImport.Format(contract.DateTimeFormat))
	}
	return nil
}
