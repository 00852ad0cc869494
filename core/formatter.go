package core

import (
	"time"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
)

// FormatProgress turns a sprint's raw telemetry into a chartable daily
// series, dispatching on the sprint's capture schema version. This is the
// single entry point callers should use for series generation.
//
// The returned series is sorted ascending by date with at most one point per
// calendar day. A sprint with no usable telemetry yields an empty series,
// never an error.
func FormatProgress(sprint *schema.Sprint, chart schema.ChartMode, mode schema.CountingMode, today time.Time) []schema.ProgressPoint {
	if sprint == nil {
		return nil
	}

	end, err := ParseDay(sprint.EndDate)
	if err != nil {
		// Without an end date the series can still cover whatever
		// telemetry exists; it just cannot extend into the future.
		end = Day(today)
	}

	isBurnDown := chart != schema.BurnUp
	if sprint.Version == schema.VersionLegacy {
		return buildLegacySeries(mode, sprint, isBurnDown, end, today)
	}
	return buildSnapshotSeries(mode, sprint, isBurnDown, end, today)
}
