package core

import (
	"math"
	"time"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
)

// Summarize derives a pace report from a sprint's live counters: how many
// calendar days have elapsed and remain, the completion percentage, and the
// required daily pace to land the remaining work by the sprint end compared
// against the pace observed so far.
//
// Like the rest of the engine it is pure; degenerate sprint windows produce
// zeroed day counts and paces instead of errors.
func Summarize(sprint *schema.Sprint, mode schema.CountingMode, today time.Time) schema.SprintSummary {
	if sprint == nil {
		return schema.SprintSummary{}
	}

	s := schema.SprintSummary{
		SprintID:   sprint.ID,
		Name:       sprint.Name,
		Percentage: ProgressPercentage(sprint, mode, false),
		Scope:      sprint.Total(mode),
		Completed:  sprint.Completed(mode),
	}
	s.Remaining = s.Scope - sprint.Cancelled(mode) - s.Completed
	if s.Remaining < 0 {
		s.Remaining = 0
	}

	start, errS := ParseDay(sprint.StartDate)
	end, errE := ParseDay(sprint.EndDate)
	if errS != nil || errE != nil {
		return s
	}
	today = Day(today)

	s.TotalDays = inclusiveDays(start, end)
	if s.TotalDays < 0 {
		s.TotalDays = 0
	}

	// Elapsed counts full days from the start through today, clamped to the
	// sprint window. Remaining counts today through the end.
	s.ElapsedDays = clampInt(inclusiveDays(start, today), 0, s.TotalDays)
	s.RemainingDays = clampInt(inclusiveDays(today, end), 0, s.TotalDays)

	if s.RemainingDays > 0 {
		s.RequiredPace = round2(s.Remaining / float64(s.RemainingDays))
	}
	if s.ElapsedDays > 0 {
		s.ActualPace = round2(s.Completed / float64(s.ElapsedDays))
	}
	s.OnTrack = s.Remaining == 0 || s.ActualPace >= s.RequiredPace

	return s
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
