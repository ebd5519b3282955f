package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"rea_ingest/models"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	store := &PostgresStore{pool: pool}
	if err := store.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS listings (
		variant TEXT NOT NULL,
		listing_id TEXT NOT NULL,
		agency_id TEXT,
		status TEXT,
		payload JSONB NOT NULL,
		first_ingested_at TIMESTAMPTZ,
		last_ingested_at TIMESTAMPTZ,
		times_ingested INTEGER DEFAULT 1,
		PRIMARY KEY (variant, listing_id)
	);

	CREATE TABLE IF NOT EXISTS ingest_runs (
		id UUID PRIMARY KEY,
		feed_id TEXT,
		document TEXT,
		started_at TIMESTAMPTZ,
		finished_at TIMESTAMPTZ,
		status TEXT,
		fragments_found INTEGER,
		listings_new INTEGER,
		listings_merged INTEGER,
		fragments_skipped INTEGER,
		errors_count INTEGER
	);

	CREATE TABLE IF NOT EXISTS ingest_logs (
		id BIGSERIAL PRIMARY KEY,
		run_id UUID,
		timestamp TIMESTAMPTZ,
		level TEXT,
		message TEXT,
		feed_id TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_listings_agency ON listings(agency_id);
	CREATE INDEX IF NOT EXISTS idx_runs_feed ON ingest_runs(feed_id, started_at);
	CREATE INDEX IF NOT EXISTS idx_logs_run ON ingest_logs(run_id, timestamp);
	`
	_, err := s.pool.Exec(ctx, schema)
	return err
}

func (s *PostgresStore) GetListing(ctx context.Context, variant, listingID string) (*models.StoredListing, error) {
	query := `
		SELECT variant, listing_id, COALESCE(agency_id, ''), COALESCE(status, ''), payload,
			first_ingested_at, last_ingested_at, times_ingested
		FROM listings WHERE variant = $1 AND listing_id = $2`

	var rec models.StoredListing
	err := s.pool.QueryRow(ctx, query, variant, listingID).Scan(
		&rec.Variant, &rec.ListingID, &rec.AgencyID, &rec.Status, &rec.Payload,
		&rec.FirstIngestedAt, &rec.LastIngestedAt, &rec.TimesIngested,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *PostgresStore) UpsertListing(ctx context.Context, rec *models.StoredListing) error {
	query := `
		INSERT INTO listings (variant, listing_id, agency_id, status, payload,
			first_ingested_at, last_ingested_at, times_ingested)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 1)
		ON CONFLICT (variant, listing_id) DO UPDATE SET
			agency_id = EXCLUDED.agency_id,
			status = EXCLUDED.status,
			payload = EXCLUDED.payload,
			last_ingested_at = EXCLUDED.last_ingested_at,
			times_ingested = listings.times_ingested + 1`

	_, err := s.pool.Exec(ctx, query,
		rec.Variant, rec.ListingID, rec.AgencyID, rec.Status, rec.Payload,
		rec.FirstIngestedAt, rec.LastIngestedAt)
	return err
}

func (s *PostgresStore) CreateRun(ctx context.Context, run *models.IngestRun) error {
	query := `
		INSERT INTO ingest_runs (id, feed_id, document, started_at, status,
			fragments_found, listings_new, listings_merged, fragments_skipped, errors_count)
		VALUES ($1, $2, $3, $4, $5, 0, 0, 0, 0, 0)`

	_, err := s.pool.Exec(ctx, query,
		run.ID, run.FeedID, run.Document, run.StartedAt, run.Status)
	return err
}

func (s *PostgresStore) UpdateRun(ctx context.Context, run *models.IngestRun) error {
	query := `
		UPDATE ingest_runs SET finished_at = $1, status = $2, fragments_found = $3,
			listings_new = $4, listings_merged = $5, fragments_skipped = $6, errors_count = $7
		WHERE id = $8`

	_, err := s.pool.Exec(ctx, query,
		run.FinishedAt, run.Status, run.FragmentsFound,
		run.ListingsNew, run.ListingsMerged, run.FragmentsSkipped, run.ErrorsCount,
		run.ID)
	return err
}

func (s *PostgresStore) Log(ctx context.Context, entry *models.IngestLog) error {
	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	query := `
		INSERT INTO ingest_logs (run_id, timestamp, level, message, feed_id)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.pool.Exec(ctx, query, entry.RunID, ts, entry.Level, entry.Message, entry.FeedID)
	return err
}

var _ Store = (*PostgresStore)(nil)
