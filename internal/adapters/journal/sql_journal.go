package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"transport-management-service/internal/domain"
	"transport-management-service/internal/platform/obs"
	"transport-management-service/internal/ports"

	"go.uber.org/zap"
)

// SQLJournal is a Postgres-backed transition journal.
type SQLJournal struct {
	DB     *sql.DB
	Logger *zap.Logger
}

var _ ports.TransitionJournal = (*SQLJournal)(nil)

func NewSQLJournal(db *sql.DB, logger *zap.Logger) *SQLJournal {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLJournal{DB: db, Logger: logger}
}

func (s *SQLJournal) RecordTransition(ctx context.Context, t domain.Transition) (err error) {
	defer obs.Time(ctx, s.Logger, "journal.sql.RecordTransition")(&err)

	if s.DB == nil {
		return errors.New("sql journal: db is nil")
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO document_transitions (resource, document_id, from_status, to_status, occurred_at)
	VALUES ($1, $2, $3, $4, $5);
	`, string(t.Resource), t.DocumentID, string(t.From), string(t.To), t.At.UTC())
	if err != nil {
		return fmt.Errorf("record transition: insert %s/%s: %w", t.Resource, t.DocumentID, err)
	}
	return nil
}

func (s *SQLJournal) History(ctx context.Context, res domain.Resource, documentID string) (_ []domain.Transition, err error) {
	defer obs.Time(ctx, s.Logger, "journal.sql.History")(&err)

	if s.DB == nil {
		return nil, errors.New("sql journal: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT from_status, to_status, occurred_at
	FROM document_transitions
	WHERE resource = $1
		AND document_id = $2
	ORDER BY id;
	`, string(res), documentID)
	if err != nil {
		return nil, fmt.Errorf("history: query document_transitions: %w", err)
	}
	defer rows.Close()

	out := []domain.Transition{}
	for rows.Next() {
		t := domain.Transition{Resource: res, DocumentID: documentID}
		var from, to string
		if err := rows.Scan(&from, &to, &t.At); err != nil {
			return nil, fmt.Errorf("history: scan row: %w", err)
		}
		t.From, t.To = domain.Status(from), domain.Status(to)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: row iteration: %w", err)
	}

	return out, nil
}
