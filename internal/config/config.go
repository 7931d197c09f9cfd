package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	JournalMemory   = "memory"
	JournalPostgres = "postgres"
	JournalSQLite   = "sqlite"
)

type Config struct {
	Port       string
	Env        string
	SeedPath   string
	SessionTTL time.Duration

	// Empty RedisURL keeps sessions in memory.
	RedisURL string

	// Empty KafkaBroker disables transition events.
	KafkaBroker string
	KafkaTopic  string

	JournalDriver string
	DatabaseURL   string
	SQLitePath    string
}

func (c Config) Production() bool { return c.Env == "production" }

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the process environment. Call godotenv.Load first to pick up a .env file.
func Load() (Config, error) {
	ttl, err := time.ParseDuration(Get("SESSION_TTL", "12h"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return Config{}, fmt.Errorf("load config: SESSION_TTL must be positive, got %s", ttl)
	}

	cfg := Config{
		Port:          Get("PORT", "8080"),
		Env:           Get("APP_ENV", "development"),
		SeedPath:      Get("SEED_PATH", "data/seeds/tms.yaml"),
		SessionTTL:    ttl,
		RedisURL:      Get("REDIS_URL", ""),
		KafkaBroker:   Get("KAFKA_BROKER", ""),
		KafkaTopic:    Get("KAFKA_TOPIC", "tms.transitions"),
		JournalDriver: strings.ToLower(Get("JOURNAL_DRIVER", JournalMemory)),
		DatabaseURL:   Get("DATABASE_URL", ""),
		SQLitePath:    Get("SQLITE_PATH", "data/tms.db"),
	}

	switch cfg.JournalDriver {
	case JournalMemory, JournalSQLite:
	case JournalPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("load config: DATABASE_URL is required for the postgres journal")
		}
	default:
		return Config{}, fmt.Errorf("load config: unknown JOURNAL_DRIVER %q", cfg.JournalDriver)
	}

	return cfg, nil
}
