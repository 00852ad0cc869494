package schema

// Total returns the total counter for the given counting mode.
func (t *Totals) Total(mode CountingMode) float64 {
	if t == nil {
		return 0
	}
	if mode == PointsMode {
		return t.TotalEstimatePoints
	}
	return t.TotalIssues
}

// Completed returns the completed counter for the given counting mode.
func (t *Totals) Completed(mode CountingMode) float64 {
	if t == nil {
		return 0
	}
	if mode == PointsMode {
		return t.CompletedEstimatePoints
	}
	return t.CompletedIssues
}

// Cancelled returns the cancelled counter for the given counting mode.
func (t *Totals) Cancelled(mode CountingMode) float64 {
	if t == nil {
		return 0
	}
	if mode == PointsMode {
		return t.CancelledEstimatePoints
	}
	return t.CancelledIssues
}

// Started returns the in-progress counter for the given counting mode.
func (t *Totals) Started(mode CountingMode) float64 {
	if t == nil {
		return 0
	}
	if mode == PointsMode {
		return t.StartedEstimatePoints
	}
	return t.StartedIssues
}

// Unstarted returns the unstarted counter for the given counting mode.
func (t *Totals) Unstarted(mode CountingMode) float64 {
	if t == nil {
		return 0
	}
	if mode == PointsMode {
		return t.UnstartedEstimatePoints
	}
	return t.UnstartedIssues
}

// Backlog returns the backlog counter for the given counting mode.
func (t *Totals) Backlog(mode CountingMode) float64 {
	if t == nil {
		return 0
	}
	if mode == PointsMode {
		return t.BacklogEstimatePoints
	}
	return t.BacklogIssues
}

// IsZero reports whether every counter is zero. A zero-valued progress
// snapshot is treated as absent by the percentage calculator.
func (t *Totals) IsZero() bool {
	if t == nil {
		return true
	}
	return *t == Totals{}
}
