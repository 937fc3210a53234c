package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhle/notes/internal/model"
	"github.com/nhle/notes/internal/notes"
)

// noteActionMsg is sent after a store mutation finishes.
type noteActionMsg struct {
	op     string
	id     string
	status string
	err    error
}

// runAction executes fn off the UI goroutine and reports the outcome.
func (m *Model) runAction(op, id, success string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		err := fn(context.Background())
		return noteActionMsg{op: op, id: id, status: success, err: err}
	}
}

// createNote persists a new note built from the form draft.
func (m *Model) createNote(d model.Draft) tea.Cmd {
	s := m.notes
	return func() tea.Msg {
		n, err := s.Create(context.Background(), d)
		return noteActionMsg{op: "create", id: n.ID, status: "Note saved", err: err}
	}
}

// editNote replaces the editable fields of an existing note.
func (m *Model) editNote(id string, d model.Draft) tea.Cmd {
	s := m.notes
	return m.runAction("edit", id, "Note saved", func(ctx context.Context) error {
		return s.Edit(ctx, id, d)
	})
}

func (m *Model) togglePinned(id string) tea.Cmd {
	s := m.notes
	return m.runAction("pin", id, "", func(ctx context.Context) error {
		return s.TogglePinned(ctx, id)
	})
}

func (m *Model) toggleArchived(id string) tea.Cmd {
	s := m.notes
	return m.runAction("archive", id, "", func(ctx context.Context) error {
		return s.ToggleArchived(ctx, id)
	})
}

func (m *Model) trash(id string) tea.Cmd {
	s := m.notes
	return m.runAction("trash", id, "Moved to trash", func(ctx context.Context) error {
		return s.Trash(ctx, id)
	})
}

func (m *Model) restore(id string) tea.Cmd {
	s := m.notes
	return m.runAction("restore", id, "Note restored", func(ctx context.Context) error {
		return s.Restore(ctx, id)
	})
}

func (m *Model) removeForever(id string) tea.Cmd {
	s := m.notes
	return m.runAction("delete", id, "Note deleted forever", func(ctx context.Context) error {
		return s.RemoveForever(ctx, id)
	})
}

func (m *Model) clearAll() tea.Cmd {
	s := m.notes
	return m.runAction("clear", "", "All notes cleared", func(ctx context.Context) error {
		return s.ClearAll(ctx)
	})
}

// handleActionResult refreshes the views after a mutation and reports
// the outcome in the status bar. The in-memory collection already holds
// the change even when persisting failed.
func (m *Model) handleActionResult(msg noteActionMsg) tea.Cmd {
	switch {
	case msg.err == nil:
		m.log.Debug("note action", zap.String("op", msg.op), zap.String("id", msg.id))
		m.setStatus(msg.status, false)
	case notes.IsValidation(msg.err):
		m.setStatus(notes.RequiredFieldsMessage, true)
	default:
		m.log.Warn("note action failed", zap.String("op", msg.op), zap.String("id", msg.id), zap.Error(msg.err))
		m.setStatus("Could not save: "+msg.err.Error(), true)
	}

	if m.currentView == ViewDetail {
		if shown, ok := m.detail.Note(); ok {
			if n, found := m.notes.Get(shown.ID); found {
				m.detail.SetNote(&n)
			} else {
				m.detail.SetNote(nil)
				m.currentView = ViewList
			}
		}
	}

	return m.noteList.Refresh()
}
