package cmd

import (
	"fmt"
	"time"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/core"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/contract"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/outwriter"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/tracker"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
	"github.com/spf13/cobra"
)

// chartCmd renders the daily burndown or burnup series for a sprint.
var chartCmd = &cobra.Command{
	Use:   "chart <sprint-export>",
	Short: "Chart the daily burndown or burnup series for a sprint.",
	Long: `Compute the daily progress series for a sprint export and render it.

Each day of the sprint window gets a data point with:
- Scope: the total work in scope on that day
- Ideal: where a perfectly linear sprint would be
- Actual: the observed remaining (burndown) or completed (burnup) work
- Breakdown counters: pending, completed, started, unstarted, backlog, cancelled

Days after the reference date are placeholders so the chart spans the full
sprint window. Use --today to pin the reference date for reproducible output.

Examples:
  # Burndown by issue count
  sprintlens chart sprint.json

  # Burnup by estimate points
  sprintlens chart sprint.json --chart burnup --mode points

  # Re-render an archived sprint
  sprintlens chart sprint-42 --from-archive

  # Export the series for analytics
  sprintlens chart sprint.json --output parquet --output-file series.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()

		sprint, err := resolveSprint()
		if err != nil {
			contract.LogFatal("Cannot load sprint", err)
		}

		series := core.FormatProgress(sprint, cfg.Chart, cfg.Mode, cfg.Today)

		if err := outwriter.NewOutWriter().WriteSeries(sprint, series, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write series", err)
		}

		recordSeriesRun(sprint, series)
	},
}

// resolveSprint loads the sprint referenced by the positional argument,
// either from disk or from the archive.
func resolveSprint() (*schema.Sprint, error) {
	if cfg.FromArchive {
		if !store.Enabled() {
			return nil, fmt.Errorf("--from-archive requires an archive backend")
		}
		return store.GetSprint(cfg.SprintPath)
	}
	return tracker.LoadSprint(cfg.SprintPath)
}

// recordSeriesRun persists the computed series when the archive is enabled.
// Failures are reported but never fail the report itself.
func recordSeriesRun(sprint *schema.Sprint, series []schema.ProgressPoint) {
	if !store.Enabled() || sprint.ID == "" {
		return
	}
	run := &schema.SeriesRun{
		SprintID: sprint.ID,
		Mode:     cfg.Mode,
		Chart:    cfg.Chart,
		Today:    cfg.Today.Format(schema.DayFormat),
		RunTime:  time.Now().UTC(),
		Points:   series,
	}
	if err := store.SaveSeriesRun(run); err != nil {
		contract.LogWarn("could not record series run", err)
	}
}
