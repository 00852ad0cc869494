package core

import (
	"sort"
	"time"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
)

// seriesEntry is one merged day in the v2 series: either a real historical
// snapshot carrying its own totals, or a bare future placeholder. The nil
// check on totals is the narrowing predicate that separates the two.
type seriesEntry struct {
	day    string
	totals *schema.Totals
}

func (e *seriesEntry) hasTotals() bool {
	return e.totals != nil
}

// buildSnapshotSeries reconstructs a daily series from the v2 array of daily
// snapshot records, extending it with placeholder days up to the series end
// so the chart always spans the full sprint window. Unlike the legacy chart,
// every historical entry carries its own point-in-time totals.
func buildSnapshotSeries(mode schema.CountingMode, sprint *schema.Sprint, isBurnDown bool, end, today time.Time) []schema.ProgressPoint {
	if sprint.Progress == nil {
		return nil
	}

	today = Day(today)

	// Future continuation placeholders, only when the series end is still
	// ahead of today.
	var extended []string
	if Day(end).After(today) {
		extended = DateRange(today, end)
	}

	historical := make([]seriesEntry, 0, len(sprint.Progress))
	for i := range sprint.Progress {
		e := &sprint.Progress[i]
		if _, err := ParseDay(e.Day()); err != nil {
			continue
		}
		historical = append(historical, seriesEntry{day: e.Day(), totals: &e.Totals})
	}
	sort.SliceStable(historical, func(i, j int) bool {
		return historical[i].day < historical[j].day
	})

	if len(historical) == 0 {
		// No historical baseline to extrapolate from: placeholders only.
		points := make([]schema.ProgressPoint, 0, len(extended))
		for _, d := range extended {
			points = append(points, schema.ProgressPoint{Date: d})
		}
		return points
	}

	// The most recent snapshot stands in for today's scope on near-future
	// days that have no capture yet.
	latest := historical[len(historical)-1]
	scopeToday := Scope(latest.totals, mode)
	idealToday := IdealRemaining(today, scopeToday, sprint)

	// Merge, de-duplicating by date. A real snapshot always wins over a
	// placeholder for the same day.
	seen := make(map[string]struct{}, len(historical)+len(extended))
	entries := make([]seriesEntry, 0, len(historical)+len(extended))
	for _, e := range historical {
		if _, ok := seen[e.day]; ok {
			continue
		}
		seen[e.day] = struct{}{}
		entries = append(entries, e)
	}
	for _, d := range extended {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		entries = append(entries, seriesEntry{day: d})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].day < entries[j].day
	})

	sprintEnd, endErr := ParseDay(sprint.EndDate)

	points := make([]schema.ProgressPoint, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		if !e.hasTotals() {
			points = append(points, schema.ProgressPoint{Date: e.day})
			continue
		}

		day, err := ParseDay(e.day)
		if err != nil {
			continue
		}

		entryScope := Scope(e.totals, mode)
		completed := e.totals.Completed(mode)
		cancelled := e.totals.Cancelled(mode)
		pending := entryScope - completed - cancelled
		if pending < 0 {
			pending = 0
		}

		pt := schema.ProgressPoint{
			Date:      e.day,
			Pending:   pending,
			Completed: completed,
			Backlog:   e.totals.Backlog(mode),
			Started:   e.totals.Started(mode),
			Unstarted: e.totals.Unstarted(mode),
			Cancelled: cancelled,
		}

		switch {
		case day.Before(today):
			pt.Scope = ptr(entryScope)
			pt.Ideal = ptr(IdealRemaining(day, entryScope, sprint))
		case endErr == nil && !day.After(sprintEnd):
			pt.Scope = ptr(scopeToday)
			if day.Before(sprintEnd) {
				pt.Ideal = ptr(idealToday)
			}
		}

		if !day.After(today) {
			if isBurnDown {
				pt.Actual = ptr(pending)
			} else {
				pt.Actual = ptr(completed)
			}
		}

		points = append(points, pt)
	}
	return points
}
