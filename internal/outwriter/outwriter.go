// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/internal/contract"
	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSeries prints a progress series using the configured output format.
func (ow *OutWriter) WriteSeries(sprint *schema.Sprint, series []schema.ProgressPoint, cfg *contract.Config, duration time.Duration) error {
	return PrintSeries(sprint, series, cfg, duration)
}

// WriteSummary prints a sprint pace summary using the configured output format.
func (ow *OutWriter) WriteSummary(summary schema.SprintSummary, cfg *contract.Config) error {
	return PrintSummary(summary, cfg)
}

// WriteArchiveList prints archived sprint records using the configured output format.
func (ow *OutWriter) WriteArchiveList(records []schema.SprintRecord, cfg *contract.Config) error {
	return PrintArchiveList(records, cfg)
}

// WriteArchiveStatus prints archive connectivity and row counts.
func (ow *OutWriter) WriteArchiveStatus(status *schema.ArchiveStatus, cfg *contract.Config) error {
	return PrintArchiveStatus(status, cfg)
}
