package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"rea_ingest/config"
)

// FeedRunner walks the configured feed inboxes and pushes every XML
// document it finds through the ingest service, archiving it afterwards.
type FeedRunner struct {
	cfg    *config.Config
	ingest *IngestService
}

func NewFeedRunner(cfg *config.Config, ingest *IngestService) *FeedRunner {
	return &FeedRunner{cfg: cfg, ingest: ingest}
}

func (r *FeedRunner) RunAll(ctx context.Context) error {
	for feedID := range r.cfg.Feeds {
		if err := r.RunFeed(ctx, feedID); err != nil {
			log.Printf("Error running feed %s: %v", feedID, err)
		}
	}
	return nil
}

func (r *FeedRunner) RunFeed(ctx context.Context, feedID string) error {
	feed, ok := r.cfg.Feeds[feedID]
	if !ok {
		return fmt.Errorf("unknown feed: %s", feedID)
	}

	entries, err := os.ReadDir(feed.Inbox)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read inbox: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".xml") {
			continue
		}

		path := filepath.Join(feed.Inbox, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Warning: failed to read %s: %v", path, err)
			continue
		}

		run, err := r.ingest.ProcessDocument(ctx, data, feedID, entry.Name())
		if err != nil {
			// A run record with the failure already exists; leave the
			// document in place so a fixed converter can retry it.
			log.Printf("Error processing %s: %v", path, err)
			continue
		}

		log.Printf("Processed %s: %d fragments, %d new, %d merged, %d skipped",
			entry.Name(), run.FragmentsFound, run.ListingsNew, run.ListingsMerged, run.FragmentsSkipped)

		if err := r.archive(feed, path, entry.Name()); err != nil {
			log.Printf("Warning: failed to archive %s: %v", path, err)
		}
	}

	return nil
}

func (r *FeedRunner) archive(feed *config.FeedConfig, path, name string) error {
	if feed.Archive == "" {
		return os.Remove(path)
	}
	if err := os.MkdirAll(feed.Archive, 0755); err != nil {
		return err
	}
	return os.Rename(path, filepath.Join(feed.Archive, name))
}
