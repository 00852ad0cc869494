package core

import (
	"testing"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
	"github.com/stretchr/testify/assert"
)

// TestProgressPercentage walks the documented edge cases.
func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name           string
		sprint         *schema.Sprint
		mode           schema.CountingMode
		includeStarted bool
		expected       int
	}{
		{
			name:     "nil sprint",
			sprint:   nil,
			mode:     schema.IssuesMode,
			expected: 0,
		},
		{
			name: "cancelled work leaves the denominator",
			sprint: &schema.Sprint{Totals: schema.Totals{
				TotalIssues: 10, CompletedIssues: 5, CancelledIssues: 2,
			}},
			mode:     schema.IssuesMode,
			expected: 63, // round(5/8*100)
		},
		{
			name: "include started clamps at 100",
			sprint: &schema.Sprint{Totals: schema.Totals{
				TotalIssues: 10, CompletedIssues: 5, CancelledIssues: 2, StartedIssues: 3,
			}},
			mode:           schema.IssuesMode,
			includeStarted: true,
			expected:       100, // 8/8
		},
		{
			name: "overcount past the total clamps at 100",
			sprint: &schema.Sprint{Totals: schema.Totals{
				TotalIssues: 10, CompletedIssues: 8, CancelledIssues: 2, StartedIssues: 3,
			}},
			mode:           schema.IssuesMode,
			includeStarted: true,
			expected:       100, // 11 > 8
		},
		{
			name: "all items cancelled",
			sprint: &schema.Sprint{Totals: schema.Totals{
				TotalIssues: 4, CancelledIssues: 4,
			}},
			mode:     schema.IssuesMode,
			expected: 0,
		},
		{
			name:     "zero total",
			sprint:   &schema.Sprint{},
			mode:     schema.IssuesMode,
			expected: 0,
		},
		{
			name: "malformed negative counters",
			sprint: &schema.Sprint{Totals: schema.Totals{
				TotalIssues: 3, CompletedIssues: -1,
			}},
			mode:     schema.IssuesMode,
			expected: 0,
		},
		{
			name: "cancelled exceeding total",
			sprint: &schema.Sprint{Totals: schema.Totals{
				TotalIssues: 2, CompletedIssues: 1, CancelledIssues: 5,
			}},
			mode:     schema.IssuesMode,
			expected: 0,
		},
		{
			name: "points mode reads estimate counters",
			sprint: &schema.Sprint{Totals: schema.Totals{
				TotalIssues: 1, CompletedIssues: 1,
				TotalEstimatePoints: 20, CompletedEstimatePoints: 5,
			}},
			mode:     schema.PointsMode,
			expected: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressPercentage(tt.sprint, tt.mode, tt.includeStarted)
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

// TestProgressPercentageSnapshotPreferred ensures a frozen snapshot wins
// over live counters, but a zero-valued one is ignored.
func TestProgressPercentageSnapshotPreferred(t *testing.T) {
	sprint := &schema.Sprint{
		Totals: schema.Totals{TotalIssues: 10, CompletedIssues: 1},
		ProgressSnapshot: &schema.ProgressSnapshot{Totals: schema.Totals{
			TotalIssues: 10, CompletedIssues: 9,
		}},
	}
	assert.Equal(t, 90, ProgressPercentage(sprint, schema.IssuesMode, false))

	sprint.ProgressSnapshot = &schema.ProgressSnapshot{}
	assert.Equal(t, 10, ProgressPercentage(sprint, schema.IssuesMode, false))
}
