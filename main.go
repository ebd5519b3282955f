package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"rea_ingest/config"
	"rea_ingest/logging"
	"rea_ingest/rea"
	"rea_ingest/scheduler"
	"rea_ingest/server"
	"rea_ingest/services"
	"rea_ingest/storage"
	"rea_ingest/validation"
)

var (
	convertFile = flag.String("convert", "", "Convert one REA XML file to JSON on stdout and exit")
	ingestNow   = flag.Bool("ingest", false, "Run all configured feeds once and exit")
)

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// The convert one-shot needs no config, store or log file.
	if *convertFile != "" {
		if err := convertOnce(*convertFile); err != nil {
			log.Fatalf("Convert failed: %v", err)
		}
		return
	}

	logFile, err := logging.Setup("ingest.log")
	if err != nil {
		log.Printf("Warning: could not set up file logging: %v", err)
	} else {
		defer logFile.Close()
	}

	log.Println("Starting rea_ingest...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Loaded %d feed configs", len(cfg.Feeds))
	for id, feed := range cfg.Feeds {
		log.Printf("  - %s (%s)", feed.Name, id)
	}

	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	ingestService := services.NewIngestService(store, cfg.Ingest.Workers)
	runner := services.NewFeedRunner(cfg, ingestService)

	if *ingestNow {
		log.Println("Running all feeds...")
		if err := runner.RunAll(ctx); err != nil {
			log.Fatalf("Ingest failed: %v", err)
		}
		log.Println("Ingest complete!")
		return
	}

	// Daemon mode
	sched := scheduler.New(cfg, runner)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := sched.Start(ctx); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	srv := server.New(cfg, sched)
	go func() {
		if err := srv.Run(); err != nil {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	log.Println("Daemon running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")
	sched.Stop()
	log.Println("Goodbye!")
}

// openStore picks Postgres when DATABASE_URL is set, SQLite otherwise.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if cfg.DatabaseURL != "" {
		store, err := storage.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Printf("Connected to Postgres: %s", maskConnectionString(cfg.DatabaseURL))
		return store, nil
	}

	store, err := storage.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	log.Printf("SQLite database: %s", cfg.DBPath)
	return store, nil
}

// convertOnce converts a single document and prints the listings with
// their validation messages as indented JSON.
func convertOnce(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	result, err := rea.Convert(data)
	if err != nil {
		return err
	}

	type output struct {
		Variant          string            `json:"variant"`
		Listing          any               `json:"listing"`
		ValidationErrors map[string]string `json:"validationErrors,omitempty"`
	}

	outputs := make([]output, 0, len(result.Listings))
	for _, listing := range result.Listings {
		outputs = append(outputs, output{
			Variant:          listing.Variant(),
			Listing:          listing,
			ValidationErrors: validation.Validate(listing),
		})
	}

	for _, skip := range result.Skipped {
		log.Printf("Warning: fragment %d skipped: %v", skip.Index, skip.Reason)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outputs); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

// maskConnectionString masks the password in a connection string for logging.
func maskConnectionString(connStr string) string {
	start := strings.Index(connStr, "://")
	if start < 0 {
		return connStr
	}
	start += 3

	rest := connStr[start:]
	atIdx := strings.IndexByte(rest, '@')
	if atIdx < 0 {
		return connStr
	}
	colonIdx := strings.IndexByte(rest[:atIdx], ':')
	if colonIdx < 0 {
		return connStr
	}

	return connStr[:start+colonIdx+1] + "****" + connStr[start+atIdx:]
}
