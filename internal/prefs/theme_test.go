package prefs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/notes/internal/prefs"
	"github.com/nhle/notes/internal/store"
	"github.com/nhle/notes/tests/testutil"
)

func TestThemeRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewTestStore(t)

	got, err := prefs.LoadTheme(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, prefs.ThemeSystem, got, "missing slot")

	require.NoError(t, prefs.SaveTheme(ctx, kv, prefs.ThemeDark))
	got, err = prefs.LoadTheme(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, prefs.ThemeDark, got)

	assert.Error(t, prefs.SaveTheme(ctx, kv, prefs.Theme("neon")))
}

func TestLoadThemeUnknownValue(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewTestStore(t)
	require.NoError(t, kv.Set(ctx, store.SlotTheme, "neon"))

	got, err := prefs.LoadTheme(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, prefs.ThemeSystem, got)
}

func TestLoadThemeReadFailure(t *testing.T) {
	kv := &testutil.FailingKV{KV: testutil.NewTestStore(t), FailGet: true}

	got, err := prefs.LoadTheme(context.Background(), kv)
	assert.ErrorIs(t, err, testutil.ErrInjected)
	assert.Equal(t, prefs.ThemeSystem, got)
}

func TestThemeNext(t *testing.T) {
	assert.Equal(t, prefs.ThemeLight, prefs.ThemeSystem.Next())
	assert.Equal(t, prefs.ThemeDark, prefs.ThemeLight.Next())
	assert.Equal(t, prefs.ThemeSystem, prefs.ThemeDark.Next())
	assert.Equal(t, prefs.ThemeSystem, prefs.Theme("odd").Next())
}

func TestParseTheme(t *testing.T) {
	got, err := prefs.ParseTheme(" DARK ")
	require.NoError(t, err)
	assert.Equal(t, prefs.ThemeDark, got)

	_, err = prefs.ParseTheme("")
	assert.Error(t, err)
}
