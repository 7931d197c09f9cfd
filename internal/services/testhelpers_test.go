package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"transport-management-service/internal/domain"

	"github.com/shopspring/decimal"
)

var testNow = time.Date(2024, 12, 21, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func sequentialIDs(prefix string) func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// captureRecorder keeps every transition it receives.
type captureRecorder struct {
	mu  sync.Mutex
	got []domain.Transition
	err error
}

func (c *captureRecorder) RecordTransition(_ context.Context, t domain.Transition) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.got = append(c.got, t)
	return c.err
}

func (c *captureRecorder) transitions() []domain.Transition {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Transition(nil), c.got...)
}

// slowRecorder stalls on every other call so concurrent writers overlap.
type slowRecorder struct {
	captureRecorder
	calls atomic.Int64
}

func (s *slowRecorder) RecordTransition(ctx context.Context, t domain.Transition) error {
	if s.calls.Add(1)%2 == 0 {
		time.Sleep(200 * time.Microsecond)
	}
	return s.captureRecorder.RecordTransition(ctx, t)
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func newTestRegistry(rec *captureRecorder) *Registry {
	opts := RegistryOptions{Clock: fixedClock, NewID: sequentialIDs("doc")}
	if rec != nil {
		opts.Recorder = rec
	}
	return NewRegistry(opts)
}
