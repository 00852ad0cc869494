package cmd

import (
	"fmt"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/archive"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/contract"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/outwriter"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/tracker"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// archiveSetup loads minimal configuration needed for archive operations.
// This is used by commands that need archive access without full shared setup.
func archiveSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("archive-backend"))
	connStr := viper.GetString("archive-db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Output-related values used by list/status/export
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Precision = viper.GetInt("precision")
	cfg.ResultLimit = viper.GetInt("limit")
	cfg.ArchiveBackend = backend
	cfg.ArchiveDBConnect = connStr

	var err error
	store, err = archive.New(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	return nil
}

// archiveSetupWrapper wraps archiveSetup to provide PreRunE for archive commands.
func archiveSetupWrapper(_ *cobra.Command, _ []string) error {
	return archiveSetup()
}

// archiveMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT open the store or create tables,
// allowing migrations to run on a fresh database.
func archiveMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("archive-backend"))
	connStr := viper.GetString("archive-db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.ArchiveBackend = backend
	cfg.ArchiveDBConnect = connStr
	return nil
}

// archiveMigrateSetupWrapper wraps archiveMigrateSetup to provide PreRunE for migrate command.
func archiveMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return archiveMigrateSetup()
}

// archiveCmd groups archive data management.
//
// Note: Archive subcommands use minimal initialization (archiveSetup) instead
// of the full sharedSetup used by report commands. This avoids sprint loading
// and report validation for simple archive operations.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage archived sprints and computed series",
	Long: `Manage the sprint archive used for re-rendering historical reports.

When enabled, sprintlens stores:
- Imported sprint exports (full payload, keyed by sprint id)
- The latest computed series per sprint, counting mode and chart mode

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  import  - Store sprint exports in the archive
  list    - List archived sprints
  status  - Show archive statistics
  clear   - Remove all archived data
  export  - Export series runs to Parquet for analytics
  migrate - Run database schema migrations

Examples:
  # Import a tracker export, then re-render it anytime
  sprintlens archive import sprints.json
  sprintlens chart sprint-42 --from-archive`,
}

// archiveImportCmd stores sprint exports in the archive.
var archiveImportCmd = &cobra.Command{
	Use:   "import <sprint-export>",
	Short: "Store sprint exports in the archive",
	Long: `Read a tracker export file and store every sprint it contains.

The export may hold a single sprint object or an array of sprints. Re-importing
a sprint id replaces the stored payload, so the archive always carries the most
recent import.

Examples:
  # Import a single sprint
  sprintlens archive import sprint.json

  # Import a whole export of sprints
  sprintlens archive import sprints.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: archiveSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if !store.Enabled() {
			contract.LogFatal("Cannot import", fmt.Errorf("archive backend is disabled"))
		}
		sprints, err := tracker.LoadSprints(args[0])
		if err != nil {
			contract.LogFatal("Cannot read sprint export", err)
		}
		for _, sprint := range sprints {
			if err := store.SaveSprint(sprint); err != nil {
				contract.LogFatal("Cannot archive sprint", err)
			}
		}
		fmt.Printf("Imported %d sprints into the %s archive.\n", len(sprints), store.Backend())
	},
}

// archiveListCmd lists archived sprints.
var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived sprints, most recently imported first",
	Long: `List the sprints stored in the archive with their date windows and
telemetry versions.

Examples:
  # Table of archived sprints
  sprintlens archive list

  # Machine-readable listing
  sprintlens archive list --output json`,
	PreRunE: archiveSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		records, err := store.ListSprints(cfg.ResultLimit)
		if err != nil {
			contract.LogFatal("Cannot list archive", err)
		}
		if err := outwriter.NewOutWriter().WriteArchiveList(records, cfg); err != nil {
			contract.LogFatal("Cannot write archive list", err)
		}
	},
}

// archiveStatusCmd shows archive statistics.
var archiveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display archive statistics and connection details",
	Long: `Show the archive backend, connection health, and row counts.

Use this to:
- Verify the archive is enabled and reachable
- Monitor data accumulation over time
- Check import recency

Examples:
  # Check archive status
  sprintlens archive status`,
	PreRunE: archiveSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := store.Status()
		if err != nil {
			contract.LogFatal("Cannot get archive status", err)
		}
		if err := outwriter.NewOutWriter().WriteArchiveStatus(status, cfg); err != nil {
			contract.LogFatal("Cannot write archive status", err)
		}
	},
}

// archiveClearCmd clears all archived data.
var archiveClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all archived sprints and series runs",
	Long: `Delete every archived sprint payload and computed series run.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  sprintlens archive export --output-file backup
  sprintlens archive clear`,
	PreRunE: archiveSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := store.Clear(); err != nil {
			contract.LogFatal("Cannot clear archive", err)
		}
		fmt.Println("Archive cleared successfully.")
	},
}

// archiveExportCmd exports series runs to Parquet files.
var archiveExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export series runs to Parquet for BI tools and analytics",
	Long: `Export all persisted series runs to Parquet format.

Exports two datasets:
- Series runs - one row per sprint, counting mode and chart mode
- Series points - one row per computed daily point

Requires: --output-file parameter (used as the file prefix)

Examples:
  # Export all series data
  sprintlens archive export --output-file sprint-data

  # Use with DuckDB for analysis
  duckdb -c "SELECT * FROM read_parquet('sprint-data.series_points.parquet') LIMIT 10"`,
	PreRunE: archiveSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := store.Export(cfg.OutputFile); err != nil {
			contract.LogFatal("Cannot export archive", err)
		}
	},
}

// archiveMigrateCmd runs database migrations for the archive store.
var archiveMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the archive store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  sprintlens archive migrate

  # Rollback to initial state
  sprintlens archive migrate --target-version 0`,
	PreRunE: archiveMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := archive.Migrate(cfg.ArchiveBackend, cfg.ArchiveDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
