// Package core has the burndown, burnup and progress computation logic.
//
// Every function here is a pure transformation over its inputs. The current
// date is always an explicit parameter so that results are deterministic and
// a whole report uses one consistent "today" even if the clock rolls over
// mid-run.
package core

import (
	"time"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
)

// DateRange returns every calendar day from from to to inclusive, formatted
// as yyyy-MM-dd. When from is after to the result is empty, not an error.
func DateRange(from, to time.Time) []string {
	from = Day(from)
	to = Day(to)
	if from.After(to) {
		return nil
	}

	var days []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(schema.DayFormat))
	}
	return days
}

// Day truncates a timestamp to its calendar day in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a yyyy-MM-dd date string.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(schema.DayFormat, s)
}
