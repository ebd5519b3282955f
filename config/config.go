package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBPath      string
	DatabaseURL string
	LogLevel    string
	Scheduler   SchedulerConfig
	Ingest      IngestConfig
	Server      ServerConfig
	Feeds       map[string]*FeedConfig
}

type SchedulerConfig struct {
	Interval time.Duration
	Cron     string
}

type IngestConfig struct {
	Workers int
}

type ServerConfig struct {
	Addr string
}

// FeedConfig describes one REA XML feed: a directory documents arrive in
// and a directory processed documents are moved to.
type FeedConfig struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Inbox   string `yaml:"inbox"`
	Archive string `yaml:"archive"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:      getEnv("DB_PATH", "listings.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Scheduler: SchedulerConfig{
			Cron: os.Getenv("INGEST_CRON"),
		},
		Ingest: IngestConfig{
			Workers: getEnvInt("INGEST_WORKERS", 4),
		},
		Server: ServerConfig{
			Addr: getEnv("SERVER_ADDR", ":8080"),
		},
		Feeds: make(map[string]*FeedConfig),
	}

	if interval := os.Getenv("INGEST_INTERVAL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err == nil {
			cfg.Scheduler.Interval = d
		}
	}

	if err := cfg.loadFeedConfigs(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFeedConfigs() error {
	configDir := "config/feeds"
	entries, err := os.ReadDir(configDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}

		path := filepath.Join(configDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var feed FeedConfig
		if err := yaml.Unmarshal(data, &feed); err != nil {
			return err
		}

		c.Feeds[feed.ID] = &feed
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
