package storage

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"rea_ingest/models"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS listings (
		variant TEXT NOT NULL,
		listing_id TEXT NOT NULL,
		agency_id TEXT,
		status TEXT,
		payload JSON NOT NULL,
		first_ingested_at DATETIME,
		last_ingested_at DATETIME,
		times_ingested INTEGER DEFAULT 1,
		PRIMARY KEY (variant, listing_id)
	);

	CREATE TABLE IF NOT EXISTS ingest_runs (
		id TEXT PRIMARY KEY,
		feed_id TEXT,
		document TEXT,
		started_at DATETIME,
		finished_at DATETIME,
		status TEXT,
		fragments_found INTEGER,
		listings_new INTEGER,
		listings_merged INTEGER,
		fragments_skipped INTEGER,
		errors_count INTEGER
	);

	CREATE TABLE IF NOT EXISTS ingest_logs (
		id INTEGER PRIMARY KEY,
		run_id TEXT,
		timestamp DATETIME,
		level TEXT,
		message TEXT,
		feed_id TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_listings_agency ON listings(agency_id);
	CREATE INDEX IF NOT EXISTS idx_runs_feed ON ingest_runs(feed_id, started_at);
	CREATE INDEX IF NOT EXISTS idx_logs_run ON ingest_logs(run_id, timestamp);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) GetListing(ctx context.Context, variant, listingID string) (*models.StoredListing, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT variant, listing_id, agency_id, status, payload,
			first_ingested_at, last_ingested_at, times_ingested
		FROM listings WHERE variant = ? AND listing_id = ?`, variant, listingID)

	var rec models.StoredListing
	var agencyID, status sql.NullString
	err := row.Scan(&rec.Variant, &rec.ListingID, &agencyID, &status, &rec.Payload,
		&rec.FirstIngestedAt, &rec.LastIngestedAt, &rec.TimesIngested)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec.AgencyID = agencyID.String
	rec.Status = status.String
	return &rec, nil
}

func (s *SQLiteStore) UpsertListing(ctx context.Context, rec *models.StoredListing) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO listings (variant, listing_id, agency_id, status, payload,
			first_ingested_at, last_ingested_at, times_ingested)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1)
		ON CONFLICT(variant, listing_id) DO UPDATE SET
			agency_id = excluded.agency_id,
			status = excluded.status,
			payload = excluded.payload,
			last_ingested_at = excluded.last_ingested_at,
			times_ingested = times_ingested + 1`,
		rec.Variant, rec.ListingID, rec.AgencyID, rec.Status, string(rec.Payload),
		rec.FirstIngestedAt, rec.LastIngestedAt)
	return err
}

func (s *SQLiteStore) CreateRun(ctx context.Context, run *models.IngestRun) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ingest_runs (id, feed_id, document, started_at, status,
			fragments_found, listings_new, listings_merged, fragments_skipped, errors_count)
		VALUES (?, ?, ?, ?, ?, 0, 0, 0, 0, 0)`,
		run.ID.String(), run.FeedID, run.Document, run.StartedAt, run.Status)
	return err
}

func (s *SQLiteStore) UpdateRun(ctx context.Context, run *models.IngestRun) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE ingest_runs SET finished_at = ?, status = ?, fragments_found = ?,
			listings_new = ?, listings_merged = ?, fragments_skipped = ?, errors_count = ?
		WHERE id = ?`,
		run.FinishedAt, run.Status, run.FragmentsFound,
		run.ListingsNew, run.ListingsMerged, run.FragmentsSkipped, run.ErrorsCount,
		run.ID.String())
	return err
}

func (s *SQLiteStore) Log(ctx context.Context, entry *models.IngestLog) error {
	var runID any
	if entry.RunID != nil {
		runID = entry.RunID.String()
	}
	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ingest_logs (run_id, timestamp, level, message, feed_id)
		VALUES (?, ?, ?, ?, ?)`,
		runID, ts, entry.Level, entry.Message, entry.FeedID)
	return err
}

// compile-time interface check
var _ Store = (*SQLiteStore)(nil)
