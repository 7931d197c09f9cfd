package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"transport-management-service/internal/adapters/journal"
	"transport-management-service/internal/config"
	"transport-management-service/internal/platform/db"

	"github.com/joho/godotenv"
)

// dbtool creates the transition journal schema ahead of the server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	driver := flag.String("driver", config.Get("JOURNAL_DRIVER", config.JournalPostgres), "postgres or sqlite")
	flag.Parse()

	ctx := context.Background()

	switch strings.ToLower(*driver) {
	case config.JournalPostgres:
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			log.Fatal("DATABASE_URL is required")
		}

		conn, err := db.Open(ctx, db.DriverPostgres, databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		log.Println("Initializing postgres journal schema...")
		if err := journal.InitPostgresSchema(ctx, conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}

	case config.JournalSQLite:
		path := config.Get("SQLITE_PATH", "data/tms.db")
		conn, err := db.Open(ctx, db.DriverSQLite, path)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		log.Printf("Initializing sqlite journal schema at %s...", path)
		if err := journal.InitSQLiteSchema(ctx, conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}

	default:
		log.Fatalf("unsupported driver %q (want postgres or sqlite)", *driver)
	}

	log.Println("Schema ready.")
}
