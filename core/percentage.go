package core

import (
	"math"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
)

// ProgressPercentage computes a single completion percentage for a sprint,
// always an integer in [0, 100].
//
// The frozen progress snapshot is preferred over the live counters when it
// exists and is non-empty, so a closed sprint keeps reporting the numbers it
// closed with. Cancelled work is excluded from the denominator entirely: a
// sprint can be 100% done while carrying cancelled items. With
// includeStarted, in-progress work counts as completed, which can overcount;
// the result is clamped rather than surfaced as an error.
func ProgressPercentage(sprint *schema.Sprint, mode schema.CountingMode, includeStarted bool) int {
	if sprint == nil {
		return 0
	}

	totals := &sprint.Totals
	if sprint.ProgressSnapshot != nil && !sprint.ProgressSnapshot.IsZero() {
		totals = &sprint.ProgressSnapshot.Totals
	}

	completed := totals.Completed(mode)
	if includeStarted {
		completed += totals.Started(mode)
	}
	adjustedTotal := totals.Total(mode) - totals.Cancelled(mode)

	switch {
	case math.IsNaN(completed) || math.IsNaN(adjustedTotal),
		math.IsInf(completed, 0) || math.IsInf(adjustedTotal, 0):
		return 0
	case adjustedTotal == 0:
		return 0
	case completed < 0 || adjustedTotal < 0:
		return 0
	case completed > adjustedTotal:
		return 100
	default:
		return int(math.Round(completed / adjustedTotal * 100))
	}
}
