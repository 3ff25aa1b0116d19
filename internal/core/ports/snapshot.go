package ports

import (
	"context"

	"github.com/vitaltrack/insights/internal/core/domain"
)

// SnapshotSource supplies one export of the user's records
// The engine itself never performs I/O; anything that can produce a Snapshot
// (export file, API client, test fixture) plugs in here
type SnapshotSource interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
}
