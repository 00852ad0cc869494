// Package tracker loads sprint records exported from the tracker REST API.
//
// Exports are plain JSON documents: either a single sprint object or an
// array of them. The loader normalizes what it reads but never invents
// telemetry; missing sections stay missing and are handled downstream as
// "no data".
package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/US-Department-of-the-Treasury/plane-gov-sub006/schema"
)

// LoadSprints reads one export file and returns every sprint record in it.
func LoadSprints(path string) ([]*schema.Sprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprint export %s: %w", path, err)
	}
	return ParseSprints(data)
}

// LoadSprint reads an export file that is expected to hold exactly one
// sprint record.
func LoadSprint(path string) (*schema.Sprint, error) {
	sprints, err := LoadSprints(path)
	if err != nil {
		return nil, err
	}
	if len(sprints) != 1 {
		return nil, fmt.Errorf("expected one sprint record in %s, found %d", path, len(sprints))
	}
	return sprints[0], nil
}

// ParseSprints decodes a JSON export holding a sprint object or an array of
// sprint objects.
func ParseSprints(data []byte) ([]*schema.Sprint, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty sprint export")
	}

	var sprints []*schema.Sprint
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &sprints); err != nil {
			return nil, fmt.Errorf("failed to decode sprint export: %w", err)
		}
	} else {
		var sprint schema.Sprint
		if err := json.Unmarshal(trimmed, &sprint); err != nil {
			return nil, fmt.Errorf("failed to decode sprint export: %w", err)
		}
		sprints = []*schema.Sprint{&sprint}
	}

	out := sprints[:0]
	for _, s := range sprints {
		if s == nil {
			continue
		}
		normalize(s)
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("sprint export holds no records")
	}
	return out, nil
}

// normalize fills derivable fields older exports omit.
func normalize(s *schema.Sprint) {
	if s.Version == 0 {
		// Exports predating the version tag: the presence of daily
		// snapshots identifies the newer capture schema.
		if s.Progress != nil {
			s.Version = schema.VersionSnapshot
		} else {
			s.Version = schema.VersionLegacy
		}
	}
}
