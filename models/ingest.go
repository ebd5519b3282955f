package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

type LogLevel string

const (
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// IngestRun records one pass over a feed document or directory.
type IngestRun struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	FeedID           string     `json:"feed_id" db:"feed_id"`
	Document         string     `json:"document" db:"document"`
	StartedAt        time.Time  `json:"started_at" db:"started_at"`
	FinishedAt       *time.Time `json:"finished_at" db:"finished_at"`
	Status           RunStatus  `json:"status" db:"status"`
	FragmentsFound   int        `json:"fragments_found" db:"fragments_found"`
	ListingsNew      int        `json:"listings_new" db:"listings_new"`
	ListingsMerged   int        `json:"listings_merged" db:"listings_merged"`
	FragmentsSkipped int        `json:"fragments_skipped" db:"fragments_skipped"`
	ErrorsCount      int        `json:"errors_count" db:"errors_count"`
}

// IngestLog is one log line attached to a run.
type IngestLog struct {
	ID        int64      `json:"id" db:"id"`
	RunID     *uuid.UUID `json:"run_id" db:"run_id"`
	Timestamp time.Time  `json:"timestamp" db:"timestamp"`
	Level     LogLevel   `json:"level" db:"level"`
	Message   string     `json:"message" db:"message"`
	FeedID    string     `json:"feed_id" db:"feed_id"`
}

// StoredListing is the persisted form of a listing aggregate, keyed by
// (variant, listing id) and carrying the serialized aggregate payload.
type StoredListing struct {
	Variant         string          `json:"variant" db:"variant"`
	ListingID       string          `json:"listing_id" db:"listing_id"`
	AgencyID        string          `json:"agency_id" db:"agency_id"`
	Status          string          `json:"status" db:"status"`
	Payload         json.RawMessage `json:"payload" db:"payload"`
	FirstIngestedAt time.Time       `json:"first_ingested_at" db:"first_ingested_at"`
	LastIngestedAt  time.Time       `json:"last_ingested_at" db:"last_ingested_at"`
	TimesIngested   int             `json:"times_ingested" db:"times_ingested"`
}
