// Package schema has configs, models and shared types for all parts of sprintlens.
package schema

// Totals holds the aggregate work counters shared by every telemetry shape:
// the v1 distribution, each v2 daily snapshot, the frozen progress snapshot
// and the sprint's own live counters. Issue counts and estimate points are
// tracked side by side; the counting mode decides which pair is read.
type Totals struct {
	TotalIssues     float64 `json:"total_issues"`
	CompletedIssues float64 `json:"completed_issues"`
	CancelledIssues float64 `json:"cancelled_issues"`
	StartedIssues   float64 `json:"started_issues"`
	UnstartedIssues float64 `json:"unstarted_issues"`
	BacklogIssues   float64 `json:"backlog_issues"`

	TotalEstimatePoints     float64 `json:"total_estimate_points"`
	CompletedEstimatePoints float64 `json:"completed_estimate_points"`
	CancelledEstimatePoints float64 `json:"cancelled_estimate_points"`
	StartedEstimatePoints   float64 `json:"started_estimate_points"`
	UnstartedEstimatePoints float64 `json:"unstarted_estimate_points"`
	BacklogEstimatePoints   float64 `json:"backlog_estimate_points"`
}

// Distribution is the legacy (v1) telemetry shape: aggregate counters plus a
// sparse completion chart mapping capture dates to signed pending deltas.
// Only dates with a capture are present in the chart.
type Distribution struct {
	Totals
	CompletionChart map[string]float64 `json:"completion_chart"`
}

// ProgressEntry is a single daily snapshot in the v2 telemetry shape.
// Depending on the capture path the tracker fills either date or
// progress_date; Day resolves whichever is set.
type ProgressEntry struct {
	Date         string `json:"date"`
	ProgressDate string `json:"progress_date"`
	Totals
}

// Day returns the calendar day this entry was captured for.
func (e *ProgressEntry) Day() string {
	if e.Date != "" {
		return e.Date
	}
	return e.ProgressDate
}

// ProgressSnapshot is a frozen aggregate captured once, typically at sprint
// close. When present and non-empty it replaces the live counters for
// percentage calculation.
type ProgressSnapshot struct {
	Totals
}

// Sprint is a single tracker iteration with its telemetry. The engine never
// mutates a Sprint; it is read-only input supplied by the caller.
type Sprint struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	// Version selects which historical capture schema the telemetry uses.
	Version int `json:"version"`

	// v1 telemetry, one distribution per counting mode.
	Distribution         *Distribution `json:"distribution,omitempty"`
	EstimateDistribution *Distribution `json:"estimate_distribution,omitempty"`

	// v2 telemetry: ordered daily snapshots. May be empty.
	Progress []ProgressEntry `json:"progress,omitempty"`

	// Frozen aggregate for percentage calculation, if captured.
	ProgressSnapshot *ProgressSnapshot `json:"progress_snapshot,omitempty"`

	// Live aggregate counters maintained by the tracker.
	Totals
}

// ProgressPoint is one calendar day in the chartable output series.
// Scope, Ideal and Actual are nil for dates outside the meaningful window
// (future days beyond the sprint end, or days past "today" for Actual).
type ProgressPoint struct {
	Date      string   `json:"date"`
	Scope     *float64 `json:"scope"`
	Ideal     *float64 `json:"ideal"`
	Actual    *float64 `json:"actual"`
	Pending   float64  `json:"pending"`
	Completed float64  `json:"completed"`
	Backlog   float64  `json:"backlog"`
	Started   float64  `json:"started"`
	Unstarted float64  `json:"unstarted"`
	Cancelled float64  `json:"cancelled"`
}

// SprintSummary is the pace report derived from a sprint's live counters.
type SprintSummary struct {
	SprintID      string  `json:"sprint_id"`
	Name          string  `json:"name"`
	TotalDays     int     `json:"total_days"`
	ElapsedDays   int     `json:"elapsed_days"`
	RemainingDays int     `json:"remaining_days"`
	Percentage    int     `json:"percentage"`
	Scope         float64 `json:"scope"`
	Completed     float64 `json:"completed"`
	Remaining     float64 `json:"remaining"`
	RequiredPace  float64 `json:"required_pace"`
	ActualPace    float64 `json:"actual_pace"`
	OnTrack       bool    `json:"on_track"`
}
