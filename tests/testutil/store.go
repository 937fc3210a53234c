package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/nhle/notes/internal/notes"
	"github.com/nhle/notes/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// NewTestNotes creates a loaded note store backed by kv, with sequential
// ids ("n1", "n2", ...) and a fixed clock.
func NewTestNotes(t *testing.T, kv store.KV, opts ...notes.Option) *notes.Store {
	t.Helper()

	base := []notes.Option{
		notes.WithIDGenerator(SequentialIDs("n")),
		notes.WithClock(FixedClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))),
	}
	s := notes.New(kv, append(base, opts...)...)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("loading notes: %v", err)
	}
	return s
}

// SequentialIDs returns an id generator yielding prefix1, prefix2, ...
func SequentialIDs(prefix string) func() (string, error) {
	var mu sync.Mutex
	n := 0
	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s%d", prefix, n), nil
	}
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// ErrInjected is returned by FailingKV.
var ErrInjected = errors.New("injected storage failure")

// FailingKV wraps a KV and fails the selected operations.
type FailingKV struct {
	store.KV
	FailGet    bool
	FailSet    bool
	FailDelete bool
}

// Get fails when FailGet is set.
func (f *FailingKV) Get(ctx context.Context, key string) (string, error) {
	if f.FailGet {
		return "", ErrInjected
	}
	return f.KV.Get(ctx, key)
}

// Set fails when FailSet is set.
func (f *FailingKV) Set(ctx context.Context, key, value string) error {
	if f.FailSet {
		return ErrInjected
	}
	return f.KV.Set(ctx, key, value)
}

// Delete fails when FailDelete is set.
func (f *FailingKV) Delete(ctx context.Context, key string) error {
	if f.FailDelete {
		return ErrInjected
	}
	return f.KV.Delete(ctx, key)
}
