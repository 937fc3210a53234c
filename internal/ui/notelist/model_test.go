package notelist

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/notes/internal/keys"
	"github.com/nhle/notes/internal/model"
	"github.com/nhle/notes/tests/testutil"
)

func TestEmptyState(t *testing.T) {
	tests := []struct {
		view   model.View
		search string
		title  string
	}{
		{model.ViewAll, "", "No notes found"},
		{model.ViewPinned, "", "No pinned notes"},
		{model.ViewArchived, "", "Nothing archived"},
		{model.ViewTrash, "", "Trash is empty"},
		{model.ViewTrash, "milk", "No results found"},
		{model.ViewAll, "milk", "No results found"},
	}

	for _, tt := range tests {
		t.Run(string(tt.view)+"/"+tt.search, func(t *testing.T) {
			title, hint := EmptyState(tt.view, tt.search, nil)
			assert.Equal(t, tt.title, title)
			assert.NotEmpty(t, hint)
		})
	}
}

func newTestList(t *testing.T) Model {
	t.Helper()
	ctx := context.Background()
	s := testutil.NewTestNotes(t, testutil.NewTestStore(t))

	_, err := s.Create(ctx, model.Draft{Title: "Milk", Description: "Buy milk"})
	require.NoError(t, err)
	gym, err := s.Create(ctx, model.Draft{Title: "Gym", Description: "Leg day"})
	require.NoError(t, err)
	old, err := s.Create(ctx, model.Draft{Title: "Old", Description: "Archived thing"})
	require.NoError(t, err)
	require.NoError(t, s.TogglePinned(ctx, gym.ID))
	require.NoError(t, s.ToggleArchived(ctx, old.ID))

	m := New(s, keys.DefaultKeyMap(), 80, 20)
	m.Refresh()
	return m
}

func titles(ns []model.Note) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Title
	}
	return out
}

func TestListViewsAndCounts(t *testing.T) {
	m := newTestList(t)

	assert.Equal(t, []string{"Gym", "Milk"}, titles(m.Visible()))

	m.SetView(model.ViewArchived)
	assert.Equal(t, []string{"Old"}, titles(m.Visible()))

	counts := m.Counts()
	assert.Equal(t, 2, counts[model.ViewAll])
	assert.Equal(t, 1, counts[model.ViewPinned])
	assert.Equal(t, 1, counts[model.ViewArchived])
	assert.Equal(t, 0, counts[model.ViewTrash])
}

func TestListKeys(t *testing.T) {
	m := newTestList(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	assert.Equal(t, model.ViewPinned, m.CurrentView())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	require.True(t, m.Searching())

	for _, r := range "milk" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, "milk", m.Search())
	assert.Equal(t, []string{"Milk"}, titles(m.Visible()))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Searching())
	assert.Equal(t, "milk", m.Search(), "enter keeps the term")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(SelectedNoteMsg)
	require.True(t, ok)
	n, _ := m.SelectedNote()
	assert.Equal(t, n.ID, msg.NoteID)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.Search())
	assert.Len(t, m.Visible(), 2)
}

func TestRelativeTime(t *testing.T) {
	assert.Equal(t, "", relativeTime(time.Time{}))
	assert.Equal(t, "just now", relativeTime(time.Now()))
	assert.Equal(t, "5m ago", relativeTime(time.Now().Add(-5*time.Minute-time.Second)))
	assert.Equal(t, "3h ago", relativeTime(time.Now().Add(-3*time.Hour-time.Minute)))
	assert.Equal(t, "2d ago", relativeTime(time.Now().Add(-49*time.Hour)))
}

func TestTagBadgesOverflow(t *testing.T) {
	n := model.Note{Tags: []string{"a", "b", "c", "d"}}
	out := tagBadges(n)
	assert.Contains(t, out, "+2")
	assert.Empty(t, tagBadges(model.Note{}))
}
