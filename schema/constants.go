package schema

// Custom string types for type safety.
type (
	// CountingMode selects whether calculations read issue counts or
	// estimate points.
	CountingMode string

	// ChartMode selects whether the output series plots remaining work
	// (burndown) or completed work (burnup).
	ChartMode string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the archive.
	DatabaseBackend string
)

// All counting modes supported.
const (
	IssuesMode CountingMode = "issues" // default
	PointsMode CountingMode = "points"
)

// All chart modes supported.
const (
	BurnDown ChartMode = "burndown" // default
	BurnUp   ChartMode = "burnup"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All archive backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Telemetry schema versions. Legacy sprints carry a sparse completion chart
// keyed by date; snapshot sprints carry an array of daily snapshot records.
const (
	VersionLegacy   = 1
	VersionSnapshot = 2
)

// DayFormat is the wire representation of a calendar day.
const DayFormat = "2006-01-02"

// ValidCountingModes lists all valid counting modes.
var ValidCountingModes = map[CountingMode]struct{}{
	IssuesMode: {},
	PointsMode: {},
}

// ValidChartModes lists all valid chart modes.
var ValidChartModes = map[ChartMode]struct{}{
	BurnDown: {},
	BurnUp:   {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidArchiveBackends lists all valid archive backends.
var ValidArchiveBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
