package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres and SQLite share the table shape; only column types differ.
var postgresSchema = []string{
	`
	CREATE TABLE IF NOT EXISTS document_transitions (
		id BIGSERIAL PRIMARY KEY,
		resource TEXT NOT NULL,
		document_id TEXT NOT NULL,
		from_status TEXT NOT NULL DEFAULT '',
		to_status TEXT NOT NULL,
		occurred_at TIMESTAMPTZ NOT NULL
	);
	`,
	`
	CREATE INDEX IF NOT EXISTS idx_document_transitions_document
	ON document_transitions(resource, document_id, id);
	`,
}

var sqliteSchema = []string{
	`
	CREATE TABLE IF NOT EXISTS document_transitions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		resource TEXT NOT NULL,
		document_id TEXT NOT NULL,
		from_status TEXT NOT NULL DEFAULT '',
		to_status TEXT NOT NULL,
		occurred_at TEXT NOT NULL
	);
	`,
	`
	CREATE INDEX IF NOT EXISTS idx_document_transitions_document
	ON document_transitions(resource, document_id, id);
	`,
}

// InitPostgresSchema creates the journal table in Postgres.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	return initSchema(ctx, db, postgresSchema)
}

// InitSQLiteSchema creates the journal table in SQLite.
func InitSQLiteSchema(ctx context.Context, db *sql.DB) error {
	return initSchema(ctx, db, sqliteSchema)
}

func initSchema(ctx context.Context, db *sql.DB, statements []string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
