// Package snapshot loads record snapshots exported by the dashboard's API
// layer as JSON documents.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/vitaltrack/insights/internal/core/domain"
)

// FileSource reads a snapshot from a JSON export file
type FileSource struct {
	path   string
	logger zerolog.Logger
}

// NewFileSource creates a file-backed snapshot source
func NewFileSource(path string, logger zerolog.Logger) *FileSource {
	return &FileSource{path: path, logger: logger}
}

// Load reads and decodes the export file
func (s *FileSource) Load(ctx context.Context) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", s.path, err)
	}

	s.logger.Debug().
		Str("path", s.path).
		Int("blood_pressure", len(snap.BloodPressure)).
		Int("weights", len(snap.Weights)).
		Int("visits", len(snap.Visits)).
		Int("goals", len(snap.Goals)).
		Int("labs", len(snap.Labs)).
		Int("medications", len(snap.Medications)).
		Msg("snapshot loaded")

	return &snap, nil
}
