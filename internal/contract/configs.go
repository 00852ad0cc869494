// Package contract has configuration types, validation and shared helpers
// for all parts of sprintlens.
package contract

import (
	"fmt"
	"time"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/core"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
)

// Default values for configuration.
const (
	DefaultPrecision   = 1
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
)

// DateTimeFormat is the default date time representation for output.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for a report.
// This struct remains the "final, validated" config.
type Config struct {
	SprintPath  string // Path to the sprint export, or an archived sprint id
	FromArchive bool   // Resolve SprintPath against the archive instead of disk

	Mode           schema.CountingMode
	Chart          schema.ChartMode
	IncludeStarted bool

	// Today is resolved once per invocation so a whole report uses one
	// consistent current date even if the clock rolls over mid-run.
	Today time.Time

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	ResultLimit int

	ArchiveBackend   schema.DatabaseBackend
	ArchiveDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	SprintPathStr string

	Mode           string `mapstructure:"mode"`
	Chart          string `mapstructure:"chart"`
	Today          string `mapstructure:"today"`
	IncludeStarted bool   `mapstructure:"include-started"`
	FromArchive    bool   `mapstructure:"from-archive"`

	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`

	Limit int `mapstructure:"limit"`

	ArchiveBackend   string `mapstructure:"archive-backend"`
	ArchiveDBConnect string `mapstructure:"archive-db-connect"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate turns raw input into a validated Config. It populates
// cfg in place and returns the first validation error encountered.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput, now time.Time) error {
	cfg.SprintPath = input.SprintPathStr
	cfg.FromArchive = input.FromArchive
	cfg.IncludeStarted = input.IncludeStarted
	cfg.OutputFile = input.OutputFile

	mode := schema.CountingMode(input.Mode)
	if _, ok := schema.ValidCountingModes[mode]; !ok {
		return fmt.Errorf("invalid counting mode %q: must be issues or points", input.Mode)
	}
	cfg.Mode = mode

	chart := schema.ChartMode(input.Chart)
	if _, ok := schema.ValidChartModes[chart]; !ok {
		return fmt.Errorf("invalid chart mode %q: must be burndown or burnup", input.Chart)
	}
	cfg.Chart = chart

	output := schema.OutputMode(input.Output)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q: must be text, csv, json or parquet", input.Output)
	}
	cfg.Output = output

	today, err := ResolveToday(input.Today, now)
	if err != nil {
		return err
	}
	cfg.Today = today

	if input.Precision < 0 || input.Precision > 10 {
		return fmt.Errorf("invalid precision %d: must be between 0 and 10", input.Precision)
	}
	cfg.Precision = input.Precision

	if input.Width < 0 {
		return fmt.Errorf("invalid width %d: must be non-negative", input.Width)
	}
	cfg.Width = input.Width

	if input.Limit < 1 || input.Limit > MaxResultLimit {
		return fmt.Errorf("invalid limit %d: must be between 1 and %d", input.Limit, MaxResultLimit)
	}
	cfg.ResultLimit = input.Limit

	useColors, err := ParseBoolish("color", input.Color)
	if err != nil {
		return err
	}
	cfg.UseColors = useColors

	backend := schema.DatabaseBackend(input.ArchiveBackend)
	if _, ok := schema.ValidArchiveBackends[backend]; !ok {
		return fmt.Errorf("invalid archive backend %q: must be sqlite, mysql, postgresql or none", input.ArchiveBackend)
	}
	if err := ValidateDatabaseConnectionString(backend, input.ArchiveDBConnect); err != nil {
		return err
	}
	cfg.ArchiveBackend = backend
	cfg.ArchiveDBConnect = input.ArchiveDBConnect

	return nil
}

// ResolveToday parses the --today override, falling back to the supplied
// clock value. The override pins reports to a reproducible date.
func ResolveToday(override string, now time.Time) (time.Time, error) {
	if override == "" {
		return core.Day(now), nil
	}
	day, err := core.ParseDay(override)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid today override %q: expected %s", override, schema.DayFormat)
	}
	return day, nil
}

// ValidateDatabaseConnectionString checks backend and connection string
// pairing. SQLite accepts an optional file path; the server backends
// require an explicit connection string.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("%s archive backend requires --archive-db-connect", backend)
		}
	case schema.SQLiteBackend, schema.NoneBackend:
		// Nothing to check.
	default:
		return fmt.Errorf("unsupported archive backend: %s", backend)
	}
	return nil
}

// ParseBoolish accepts yes/no/true/false/1/0 style flag values.
func ParseBoolish(name, value string) (bool, error) {
	switch value {
	case "yes", "true", "1", "on":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s value %q: use yes or no", name, value)
	}
}
