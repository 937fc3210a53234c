package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/notes/internal/store"
	"github.com/nhle/notes/tests/testutil"
)

func TestSlotRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	_, err := s.Get(ctx, store.SlotNotes)
	assert.ErrorIs(t, err, store.ErrSlotNotFound)

	require.NoError(t, s.Set(ctx, store.SlotNotes, `[]`))
	got, err := s.Get(ctx, store.SlotNotes)
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)

	require.NoError(t, s.Set(ctx, store.SlotNotes, `[{"id":"1"}]`))
	got, err = s.Get(ctx, store.SlotNotes)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, got, "set overwrites")

	require.NoError(t, s.Set(ctx, store.SlotTheme, "dark"))

	require.NoError(t, s.Delete(ctx, store.SlotNotes))
	_, err = s.Get(ctx, store.SlotNotes)
	assert.ErrorIs(t, err, store.ErrSlotNotFound)

	assert.NoError(t, s.Delete(ctx, store.SlotNotes), "deleting a missing slot is fine")

	theme, err := s.Get(ctx, store.SlotTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestReopenKeepsDataAndSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "notes.db")

	s, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, store.SlotTheme, "light"))
	v1, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	v2, err := reopened.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
	assert.Equal(t, 1, v2)

	got, err := reopened.Get(ctx, store.SlotTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", got)
}
