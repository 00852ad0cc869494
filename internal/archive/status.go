package archive

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
)

// Status reports connectivity and row counts for the archive.
func (s *Store) Status() (*schema.ArchiveStatus, error) {
	status := &schema.ArchiveStatus{Backend: s.backend}
	if !s.Enabled() {
		return status, nil
	}

	if err := s.db.Ping(); err != nil {
		return status, nil
	}
	status.Connected = true

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", sprintRecordsTable)
	if err := s.db.QueryRow(query).Scan(&status.TotalSprints); err != nil {
		return nil, fmt.Errorf("failed to count archived sprints: %w", err)
	}

	query = fmt.Sprintf("SELECT COUNT(*) FROM %s", seriesRunsTable)
	if err := s.db.QueryRow(query).Scan(&status.TotalRuns); err != nil {
		return nil, fmt.Errorf("failed to count series runs: %w", err)
	}

	if status.TotalSprints > 0 {
		query = fmt.Sprintf("SELECT MIN(imported_at), MAX(imported_at) FROM %s", sprintRecordsTable)
		var oldest, newest sql.NullInt64
		if err := s.db.QueryRow(query).Scan(&oldest, &newest); err != nil {
			return nil, fmt.Errorf("failed to read import timestamps: %w", err)
		}
		if oldest.Valid {
			status.OldestImport = time.Unix(oldest.Int64, 0).UTC()
		}
		if newest.Valid {
			status.LastImport = time.Unix(newest.Int64, 0).UTC()
		}
	}

	return status, nil
}
