package core

import (
	"math"
	"time"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
)

// IdealRemaining computes the idealized remaining value for a calendar day,
// assuming a uniform linear burn from full scope on the sprint's first day
// to zero on its last:
//
//	floor(daysRemaining(day, end) / totalSprintDays * scope)
//
// Both day counts are inclusive. Degenerate inputs (missing or unparsable
// sprint dates, inverted window, day past the sprint end) return 0 rather
// than letting the division poison the series. The result is best-effort
// visual guidance, not an exact guarantee.
func IdealRemaining(day time.Time, scope float64, sprint *schema.Sprint) float64 {
	if sprint == nil {
		return 0
	}
	start, err := ParseDay(sprint.StartDate)
	if err != nil {
		return 0
	}
	end, err := ParseDay(sprint.EndDate)
	if err != nil {
		return 0
	}

	totalDays := inclusiveDays(start, end)
	if totalDays <= 0 {
		return 0
	}
	remaining := inclusiveDays(Day(day), end)
	if remaining < 0 {
		return 0
	}
	return math.Floor(float64(remaining) / float64(totalDays) * scope)
}

// inclusiveDays counts calendar days from a to b, both ends included.
// Zero or negative when a is after b.
func inclusiveDays(a, b time.Time) int {
	return int(Day(b).Sub(Day(a))/(24*time.Hour)) + 1
}
