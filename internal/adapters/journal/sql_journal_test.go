package journal

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"transport-management-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedStmt struct {
	query string
	args  []driver.Value
}

// recordingConnector is a database/sql connector that captures statements and
// answers every query with canned rows.
type recordingConnector struct {
	mu    sync.Mutex
	stmts []capturedStmt
	rows  [][]driver.Value
}

func (c *recordingConnector) Connect(context.Context) (driver.Conn, error) { return &recordingConn{c}, nil }
func (c *recordingConnector) Driver() driver.Driver                        { return nil }

func (c *recordingConnector) capture(query string, args []driver.Value) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stmts = append(c.stmts, capturedStmt{query: query, args: append([]driver.Value(nil), args...)})
}

func (c *recordingConnector) captured() []capturedStmt {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]capturedStmt(nil), c.stmts...)
}

type recordingConn struct{ c *recordingConnector }

func (rc *recordingConn) Prepare(query string) (driver.Stmt, error) {
	return &recordingStmt{c: rc.c, query: query}, nil
}
func (rc *recordingConn) Close() error              { return nil }
func (rc *recordingConn) Begin() (driver.Tx, error) { return nil, errors.New("transactions not supported") }

type recordingStmt struct {
	c     *recordingConnector
	query string
}

func (s *recordingStmt) Close() error  { return nil }
func (s *recordingStmt) NumInput() int { return -1 }

func (s *recordingStmt) Exec(args []driver.Value) (driver.Result, error) {
	s.c.capture(s.query, args)
	return driver.RowsAffected(1), nil
}

func (s *recordingStmt) Query(args []driver.Value) (driver.Rows, error) {
	s.c.capture(s.query, args)
	return &cannedRows{rows: s.c.rows}, nil
}

type cannedRows struct {
	rows [][]driver.Value
	i    int
}

func (r *cannedRows) Columns() []string { return []string{"from_status", "to_status", "occurred_at"} }
func (r *cannedRows) Close() error      { return nil }

func (r *cannedRows) Next(dest []driver.Value) error {
	if r.i >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.i])
	r.i++
	return nil
}

func TestSQLJournalRecordUsesPostgresPlaceholders(t *testing.T) {
	conn := &recordingConnector{}
	db := sql.OpenDB(conn)
	t.Cleanup(func() { _ = db.Close() })
	j := NewSQLJournal(db, nil)

	ist := time.FixedZone("IST", 5*3600+1800)
	at := time.Date(2025, 1, 15, 14, 0, 0, 0, ist)
	require.NoError(t, j.RecordTransition(context.Background(), domain.Transition{
		Resource: domain.ResourceLR, DocumentID: "lr-1", From: domain.StatusCreated, To: domain.StatusInTransit, At: at,
	}))

	stmts := conn.captured()
	require.Len(t, stmts, 1)
	assert.Contains(t, stmts[0].query, "VALUES ($1, $2, $3, $4, $5)")
	require.Len(t, stmts[0].args, 5)
	assert.Equal(t, "lr", stmts[0].args[0])
	assert.Equal(t, "lr-1", stmts[0].args[1])
	assert.Equal(t, "created", stmts[0].args[2])
	assert.Equal(t, "in_transit", stmts[0].args[3])

	stored, ok := stmts[0].args[4].(time.Time)
	require.True(t, ok, "occurred_at must be bound as a time, got %T", stmts[0].args[4])
	assert.Equal(t, time.UTC, stored.Location())
	assert.True(t, at.Equal(stored))
}

func TestSQLJournalHistoryScansTimestamps(t *testing.T) {
	base := time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC)
	conn := &recordingConnector{rows: [][]driver.Value{
		{"", "created", base},
		{"created", "in_transit", base.Add(time.Hour)},
	}}
	db := sql.OpenDB(conn)
	t.Cleanup(func() { _ = db.Close() })
	j := NewSQLJournal(db, nil)

	got, err := j.History(context.Background(), domain.ResourceLR, "lr-1")
	require.NoError(t, err)

	stmts := conn.captured()
	require.Len(t, stmts, 1)
	assert.Contains(t, stmts[0].query, "WHERE resource = $1")
	assert.Contains(t, stmts[0].query, "AND document_id = $2")
	assert.Contains(t, stmts[0].query, "ORDER BY id")
	assert.Equal(t, []driver.Value{"lr", "lr-1"}, stmts[0].args)

	require.Len(t, got, 2)
	assert.Equal(t, domain.Status(""), got[0].From)
	assert.Equal(t, domain.StatusCreated, got[0].To)
	assert.Equal(t, domain.StatusCreated, got[1].From)
	assert.Equal(t, domain.StatusInTransit, got[1].To)
	assert.True(t, base.Add(time.Hour).Equal(got[1].At))
	assert.Equal(t, domain.ResourceLR, got[1].Resource)
	assert.Equal(t, "lr-1", got[1].DocumentID)
}

func TestSQLJournalNilDB(t *testing.T) {
	j := NewSQLJournal(nil, nil)

	err := j.RecordTransition(context.Background(), domain.Transition{Resource: domain.ResourceLR, DocumentID: "lr-1", To: domain.StatusCreated})
	assert.Error(t, err)
	_, err = j.History(context.Background(), domain.ResourceLR, "lr-1")
	assert.Error(t, err)
}
