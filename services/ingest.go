package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"rea_ingest/models"
	"rea_ingest/rea"
	"rea_ingest/storage"
)

// IngestService converts REA XML documents and folds the resulting
// listings into the store, merging with whatever was stored before.
type IngestService struct {
	store   storage.Store
	workers int
}

func NewIngestService(store storage.Store, workers int) *IngestService {
	return &IngestService{store: store, workers: workers}
}

// ProcessDocument runs one document through split/convert/merge/store and
// records an ingest run for it. Fragment skips are logged but never fail
// the run; only an unusable document does.
func (s *IngestService) ProcessDocument(ctx context.Context, data []byte, feedID, document string) (*models.IngestRun, error) {
	run := &models.IngestRun{
		ID:        uuid.New(),
		FeedID:    feedID,
		Document:  document,
		StartedAt: time.Now(),
		Status:    models.RunStatusRunning,
	}
	if err := s.store.CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}

	defer func() {
		now := time.Now()
		run.FinishedAt = &now
		if err := s.store.UpdateRun(ctx, run); err != nil {
			log.Printf("Warning: failed to update run %s: %v", run.ID, err)
		}
	}()

	result, err := rea.ConvertWithOptions(data, rea.Options{Workers: s.workers})
	if err != nil {
		run.Status = models.RunStatusFailed
		run.ErrorsCount++
		s.log(ctx, run, models.LogLevelError, fmt.Sprintf("Conversion failed: %v", err))
		return run, err
	}

	run.FragmentsFound = len(result.Listings) + len(result.Skipped)

	for _, skip := range result.Skipped {
		run.FragmentsSkipped++
		s.log(ctx, run, models.LogLevelWarn,
			fmt.Sprintf("Fragment %d skipped: %v", skip.Index, skip.Reason))
	}

	for _, listing := range result.Listings {
		if err := s.processListing(ctx, run, listing); err != nil {
			run.ErrorsCount++
			s.log(ctx, run, models.LogLevelError,
				fmt.Sprintf("Process error for listing %q: %v", listing.Common().ID.Value(), err))
		}
	}

	run.Status = models.RunStatusCompleted
	s.log(ctx, run, models.LogLevelInfo,
		fmt.Sprintf("Completed: %d fragments, %d new, %d merged, %d skipped",
			run.FragmentsFound, run.ListingsNew, run.ListingsMerged, run.FragmentsSkipped))

	return run, nil
}

// processListing stores a freshly converted listing. When a listing with
// the same (variant, id) exists, the fresh one is merged into the stored
// one field by field, governed by the fresh listing's dirty bits.
func (s *IngestService) processListing(ctx context.Context, run *models.IngestRun, fresh models.Listing) error {
	listingID := fresh.Common().ID.Value()
	if listingID == "" {
		return fmt.Errorf("listing carries no unique id")
	}

	now := time.Now()

	existing, err := s.store.GetListing(ctx, fresh.Variant(), listingID)
	if err != nil {
		return fmt.Errorf("get listing: %w", err)
	}

	if existing == nil {
		payload, err := models.MarshalListing(fresh)
		if err != nil {
			return fmt.Errorf("marshal listing: %w", err)
		}
		rec := &models.StoredListing{
			Variant:         fresh.Variant(),
			ListingID:       listingID,
			AgencyID:        fresh.Common().AgencyID.Value(),
			Status:          string(fresh.Common().StatusType.Value()),
			Payload:         payload,
			FirstIngestedAt: now,
			LastIngestedAt:  now,
		}
		if err := s.store.UpsertListing(ctx, rec); err != nil {
			return fmt.Errorf("store listing: %w", err)
		}
		run.ListingsNew++
		return nil
	}

	stored, err := models.UnmarshalListing(existing.Payload)
	if err != nil {
		return fmt.Errorf("unmarshal stored listing: %w", err)
	}

	// Deserialization marks everything modified; reset so the merged
	// aggregate's bits reflect only what this document assigned.
	stored.ClearAllModified()

	if err := models.Merge(stored, fresh); err != nil {
		return fmt.Errorf("merge listing: %w", err)
	}

	payload, err := models.MarshalListing(stored)
	if err != nil {
		return fmt.Errorf("marshal merged listing: %w", err)
	}

	existing.AgencyID = stored.Common().AgencyID.Value()
	existing.Status = string(stored.Common().StatusType.Value())
	existing.Payload = payload
	existing.LastIngestedAt = now

	if err := s.store.UpsertListing(ctx, existing); err != nil {
		return fmt.Errorf("store merged listing: %w", err)
	}
	run.ListingsMerged++
	return nil
}

func (s *IngestService) log(ctx context.Context, run *models.IngestRun, level models.LogLevel, message string) {
	log.Printf("[%s] %s: %s", level, run.FeedID, message)
	entry := &models.IngestLog{
		RunID:     &run.ID,
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		FeedID:    run.FeedID,
	}
	if err := s.store.Log(ctx, entry); err != nil {
		log.Printf("Warning: failed to write ingest log: %v", err)
	}
}
