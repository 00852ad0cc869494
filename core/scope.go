package core

import "github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"

// Scope returns the denominator for a snapshot-like record: the total issue
// count or total estimate points, depending on the counting mode. A nil
// record yields 0. Pure lookup, never fails.
func Scope(t *schema.Totals, mode schema.CountingMode) float64 {
	return t.Total(mode)
}
