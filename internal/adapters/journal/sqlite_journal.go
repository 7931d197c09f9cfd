package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"transport-management-service/internal/domain"
	"transport-management-service/internal/platform/obs"
	"transport-management-service/internal/ports"

	"go.uber.org/zap"
)

// SqliteJournal is a SQLite-backed transition journal for local runs.
// Timestamps are stored as RFC 3339 text.
type SqliteJournal struct {
	DB     *sql.DB
	Logger *zap.Logger
}

var _ ports.TransitionJournal = (*SqliteJournal)(nil)

func NewSqliteJournal(db *sql.DB, logger *zap.Logger) *SqliteJournal {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SqliteJournal{DB: db, Logger: logger}
}

func (s *SqliteJournal) RecordTransition(ctx context.Context, t domain.Transition) (err error) {
	defer obs.Time(ctx, s.Logger, "journal.sqlite.RecordTransition")(&err)

	if s.DB == nil {
		return errors.New("sqlite journal: db is nil")
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO document_transitions (resource, document_id, from_status, to_status, occurred_at)
	VALUES (?, ?, ?, ?, ?);
	`, string(t.Resource), t.DocumentID, string(t.From), string(t.To), t.At.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record transition: insert %s/%s: %w", t.Resource, t.DocumentID, err)
	}
	return nil
}

func (s *SqliteJournal) History(ctx context.Context, res domain.Resource, documentID string) (_ []domain.Transition, err error) {
	defer obs.Time(ctx, s.Logger, "journal.sqlite.History")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite journal: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT from_status, to_status, occurred_at
	FROM document_transitions
	WHERE resource = ?
		AND document_id = ?
	ORDER BY id;
	`, string(res), documentID)
	if err != nil {
		return nil, fmt.Errorf("history: query document_transitions: %w", err)
	}
	defer rows.Close()

	out := []domain.Transition{}
	for rows.Next() {
		var from, to, at string
		if err := rows.Scan(&from, &to, &at); err != nil {
			return nil, fmt.Errorf("history: scan row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("history: parse occurred_at %q: %w", at, err)
		}
		out = append(out, domain.Transition{
			Resource:   res,
			DocumentID: documentID,
			From:       domain.Status(from),
			To:         domain.Status(to),
			At:         ts,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: row iteration: %w", err)
	}

	return out, nil
}
