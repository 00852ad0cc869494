package core

import (
	"math"
	"sort"
	"time"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
)

// buildLegacySeries reconstructs a daily series from the sparse, date-keyed
// completion chart of a v1 sprint. The chart only records a signed pending
// delta per capture date; every other field comes from the distribution's
// live aggregate counters, so per-day status breakdowns exist only for the
// current day.
func buildLegacySeries(mode schema.CountingMode, sprint *schema.Sprint, isBurnDown bool, end, today time.Time) []schema.ProgressPoint {
	dist := sprint.Distribution
	if mode == schema.PointsMode {
		dist = sprint.EstimateDistribution
	}
	if dist == nil || (len(dist.CompletionChart) == 0 && dist.Totals.IsZero()) {
		return nil
	}

	total := Scope(&dist.Totals, mode)
	today = Day(today)
	todayStr := today.Format(schema.DayFormat)

	sprintEnd, endErr := ParseDay(sprint.EndDate)

	// Union of the sparse chart keys and the series end day, as a sorted
	// merge of date strings. Iterating the chart map directly would make
	// the output order depend on map internals.
	days := make([]string, 0, len(dist.CompletionChart)+1)
	for d := range dist.CompletionChart {
		if _, err := ParseDay(d); err != nil {
			continue
		}
		days = append(days, d)
	}
	days = append(days, DateRange(end, end)...)
	sort.Strings(days)
	days = dedupeDays(days)

	points := make([]schema.ProgressPoint, 0, len(days))
	for _, d := range days {
		day, err := ParseDay(d)
		if err != nil {
			continue
		}

		pending := math.Abs(dist.CompletionChart[d])
		pt := schema.ProgressPoint{
			Date:      d,
			Pending:   pending,
			Completed: total - pending,
			Backlog:   dist.Backlog(mode),
		}
		if d == todayStr {
			// The chart has no historical status breakdown; the live
			// counters are only meaningful for the current day.
			pt.Started = dist.Started(mode)
			pt.Unstarted = dist.Unstarted(mode)
			pt.Cancelled = dist.Cancelled(mode)
		}

		if day.Before(today) {
			pt.Scope = ptr(total)
			pt.Ideal = ptr(IdealRemaining(day, total, sprint))
		} else if endErr == nil && !day.After(sprintEnd) {
			// Present and near-future days flatten the ideal line at
			// today's value.
			pt.Ideal = ptr(IdealRemaining(today, total, sprint))
		}

		if !day.After(today) {
			if isBurnDown {
				pt.Actual = ptr(pending)
			} else {
				pt.Actual = ptr(pt.Completed)
			}
		}

		points = append(points, pt)
	}
	return points
}

// dedupeDays collapses adjacent duplicates in a sorted day slice.
func dedupeDays(days []string) []string {
	out := days[:0]
	for i, d := range days {
		if i > 0 && d == days[i-1] {
			continue
		}
		out = append(out, d)
	}
	return out
}

func ptr(v float64) *float64 {
	return &v
}
