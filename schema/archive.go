package schema

import "time"

// SprintRecord is an archived sprint export: identifying fields lifted out
// for listing plus the raw payload for re-rendering reports later.
type SprintRecord struct {
	SprintID   string    `json:"sprint_id"`
	Name       string    `json:"name"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Version    int       `json:"version"`
	ImportedAt time.Time `json:"imported_at"`
	Payload    []byte    `json:"-"`
}

// SeriesRun is a computed progress series persisted alongside its sprint.
// One run is kept per (sprint, counting mode, chart mode) combination.
type SeriesRun struct {
	SprintID string          `json:"sprint_id"`
	Mode     CountingMode    `json:"mode"`
	Chart    ChartMode       `json:"chart"`
	Today    string          `json:"today"`
	RunTime  time.Time       `json:"run_time"`
	Points   []ProgressPoint `json:"points"`
}

// ArchiveStatus summarizes the archive connection and its contents.
type ArchiveStatus struct {
	Backend      DatabaseBackend `json:"backend"`
	Connected    bool            `json:"connected"`
	TotalSprints int             `json:"total_sprints"`
	TotalRuns    int             `json:"total_runs"`
	LastImport   time.Time       `json:"last_import"`
	OldestImport time.Time       `json:"oldest_import"`
}
