package cmd

import (
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/core"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/contract"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/outwriter"
	"github.com/spf13/cobra"
)

// progressCmd reports completion percentage and pace for a sprint.
var progressCmd = &cobra.Command{
	Use:   "progress <sprint-export>",
	Short: "Report completion percentage and pace for a sprint.",
	Long: `Compute the sprint pace report: completion percentage, remaining work,
elapsed and remaining days, and the pace required to land the sprint.

The percentage prefers the frozen progress snapshot when the sprint carries
one, and is always clamped to the 0-100 range. Use --include-started to count
in-progress work as complete for an optimistic reading.

Examples:
  # Pace report by issue count
  sprintlens progress sprint.json

  # Optimistic percentage by estimate points
  sprintlens progress sprint.json --mode points --include-started

  # Machine-readable output for dashboards
  sprintlens progress sprint.json --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		sprint, err := resolveSprint()
		if err != nil {
			contract.LogFatal("Cannot load sprint", err)
		}

		summary := core.Summarize(sprint, cfg.Mode, cfg.Today)
		if cfg.IncludeStarted {
			summary.Percentage = core.ProgressPercentage(sprint, cfg.Mode, true)
		}

		if err := outwriter.NewOutWriter().WriteSummary(summary, cfg); err != nil {
			contract.LogFatal("Cannot write summary", err)
		}
	},
}
