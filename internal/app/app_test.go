package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/notes/internal/model"
	"github.com/nhle/notes/internal/notes"
	"github.com/nhle/notes/internal/prefs"
	"github.com/nhle/notes/internal/store"
	"github.com/nhle/notes/internal/ui/confirm"
	"github.com/nhle/notes/internal/ui/noteform"
	"github.com/nhle/notes/tests/testutil"
)

type harness struct {
	t  *testing.T
	m  Model
	s  *notes.Store
	kv *store.SQLiteStore
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	kv := testutil.NewTestStore(t)
	s := testutil.NewTestNotes(t, kv)

	_, err := s.Create(context.Background(), model.Draft{Title: "Milk", Description: "Buy milk"})
	require.NoError(t, err)

	h := &harness{t: t, m: New(s, kv, Options{}), s: s, kv: kv}
	h.send(tea.WindowSizeMsg{Width: 100, Height: 30})
	return h
}

// send delivers msg and runs returned commands until they settle,
// skipping batches and blinking cursors.
func (h *harness) send(msg tea.Msg) {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	if cmd == nil {
		return
	}
	switch out := cmd().(type) {
	case noteActionMsg, themeLoadedMsg, themeSavedMsg, confirm.ResultMsg, noteform.NoteCreatedMsg:
		h.send(out)
	}
}

func (h *harness) key(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestPinArchiveTrashFromList(t *testing.T) {
	h := newHarness(t)
	id := h.s.Notes()[0].ID

	h.key("p")
	n, _ := h.s.Get(id)
	assert.True(t, n.Pinned)

	h.key("a")
	n, _ = h.s.Get(id)
	assert.True(t, n.Archived)

	h.key("3")
	h.key("d")
	n, _ = h.s.Get(id)
	assert.True(t, n.Trashed)
	assert.Equal(t, "Moved to trash", h.m.status)
}

func TestTrashViewOnlyRestoresOrDeletes(t *testing.T) {
	h := newHarness(t)
	id := h.s.Notes()[0].ID
	require.NoError(t, h.s.Trash(context.Background(), id))

	h.key("4")
	h.key("p")
	n, _ := h.s.Get(id)
	assert.False(t, n.Pinned, "pin is ignored for trashed notes")

	h.key("d")
	assert.Equal(t, ViewConfirm, h.m.currentView)
	h.send(confirm.ResultMsg{Action: confirm.ActionDeleteForever, NoteID: id, Confirmed: true})

	_, ok := h.s.Get(id)
	assert.False(t, ok)
	assert.Equal(t, ViewList, h.m.currentView)
}

func TestRestore(t *testing.T) {
	h := newHarness(t)
	id := h.s.Notes()[0].ID
	require.NoError(t, h.s.Trash(context.Background(), id))

	h.key("4")
	h.key("u")
	n, _ := h.s.Get(id)
	assert.False(t, n.Trashed)
}

func TestArchivedNoteMustBeUnarchivedToEdit(t *testing.T) {
	h := newHarness(t)
	id := h.s.Notes()[0].ID
	require.NoError(t, h.s.ToggleArchived(context.Background(), id))

	h.key("3")
	h.key("e")
	assert.Equal(t, ViewList, h.m.currentView)
	assert.Equal(t, "Unarchive the note before editing it.", h.m.status)

	h.key("a")
	n, _ := h.s.Get(id)
	require.False(t, n.Archived)

	h.key("1")
	h.key("e")
	assert.Equal(t, ViewNoteEdit, h.m.currentView)
	assert.Contains(t, h.m.keyHints(), "save changes")
}

func TestClearAllNeedsConfirmation(t *testing.T) {
	h := newHarness(t)

	h.key("X")
	assert.Equal(t, ViewConfirm, h.m.currentView)
	h.send(confirm.ResultMsg{Action: confirm.ActionClearAll})
	assert.Equal(t, 1, h.s.Len(), "declined")

	h.key("X")
	h.send(confirm.ResultMsg{Action: confirm.ActionClearAll, Confirmed: true})
	assert.Zero(t, h.s.Len())
}

func TestCreateFromForm(t *testing.T) {
	h := newHarness(t)

	h.key("n")
	assert.Equal(t, ViewNoteCreate, h.m.currentView)

	h.send(noteform.NoteCreatedMsg{Draft: model.Draft{Title: "Gym", Description: "Leg day"}})
	assert.Equal(t, ViewList, h.m.currentView)
	assert.Equal(t, 2, h.s.Len())
	assert.Equal(t, "Gym", h.s.Notes()[0].Title)
	assert.Equal(t, "Note saved", h.m.status)
}

func TestInvalidDraftShowsRequiredMessage(t *testing.T) {
	h := newHarness(t)

	h.send(noteform.NoteCreatedMsg{Draft: model.Draft{Title: "  ", Description: "x"}})
	assert.Equal(t, 1, h.s.Len())
	assert.True(t, h.m.statusErr)
	assert.Equal(t, notes.RequiredFieldsMessage, h.m.status)
}

func TestCycleThemePersists(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, prefs.ThemeSystem, h.m.theme)

	h.key("T")
	assert.Equal(t, prefs.ThemeLight, h.m.theme)

	got, err := prefs.LoadTheme(context.Background(), h.kv)
	require.NoError(t, err)
	assert.Equal(t, prefs.ThemeLight, got)
}

func TestSearchModeSwallowsShortcuts(t *testing.T) {
	h := newHarness(t)
	id := h.s.Notes()[0].ID

	h.key("/")
	h.key("p")
	n, _ := h.s.Get(id)
	assert.False(t, n.Pinned)
	assert.Equal(t, "p", h.m.noteList.Search())
}

func TestViewRenders(t *testing.T) {
	h := newHarness(t)
	out := h.m.View()
	assert.Contains(t, out, "Notes")
	assert.Contains(t, out, "Milk")
}
