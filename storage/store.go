package storage

import (
	"context"

	"rea_ingest/models"
)

// Store persists listing aggregates and ingest bookkeeping. SQLite is the
// default; Postgres is used when a connection string is configured.
type Store interface {
	GetListing(ctx context.Context, variant, listingID string) (*models.StoredListing, error)
	UpsertListing(ctx context.Context, rec *models.StoredListing) error

	CreateRun(ctx context.Context, run *models.IngestRun) error
	UpdateRun(ctx context.Context, run *models.IngestRun) error
	Log(ctx context.Context, entry *models.IngestLog) error

	Close() error
}
