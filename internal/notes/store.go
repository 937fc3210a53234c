// Package notes owns the note collection of a session: it keeps the
// in-memory list, mirrors it to the notes slot after every mutation, and
// projects it into the per-view lists the UI renders.
package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nhle/notes/internal/model"
	"github.com/nhle/notes/internal/store"
)

// Store is the authoritative, ordered (most recent first) note collection.
type Store struct {
	mu    sync.Mutex
	kv    store.KV
	notes []model.Note
	log   *zap.Logger
	newID func() (string, error)
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for recovered persistence problems.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithIDGenerator replaces the UUIDv7 id generator.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(s *Store) { s.newID = gen }
}

// WithClock replaces time.Now for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty Store persisting into kv. Call Load to read the
// previously saved collection.
func New(kv store.KV, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		notes: []model.Note{},
		log:   zap.NewNop(),
		newID: newUUIDv7,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Load replaces the in-memory collection with the persisted one.
// A missing or malformed slot leaves the store empty and is not an error.
// A storage failure also leaves the store empty; the wrapped error is
// returned so the caller can report it.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = []model.Note{}

	raw, err := s.kv.Get(ctx, store.SlotNotes)
	if errors.Is(err, store.ErrSlotNotFound) {
		return nil
	}
	if err != nil {
		s.log.Warn("notes slot unreadable, starting empty", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrPersistenceRead, err)
	}

	loaded, err := decode(raw)
	if err != nil {
		s.log.Warn("notes slot malformed, starting empty", zap.Error(err))
		return nil
	}

	s.notes = loaded
	s.log.Debug("notes loaded", zap.Int("count", len(loaded)))
	return nil
}

// decode parses a persisted snapshot. Either the whole value is accepted
// or none of it is.
func decode(raw string) ([]model.Note, error) {
	var parsed []model.Note
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistenceRead, err)
	}

	seen := make(map[string]bool, len(parsed))
	for i, n := range parsed {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: note %d has no id", ErrPersistenceRead, i)
		}
		if seen[n.ID] {
			return nil, fmt.Errorf("%w: duplicate note id %s", ErrPersistenceRead, n.ID)
		}
		seen[n.ID] = true
		if parsed[i].Tags == nil {
			parsed[i].Tags = []string{}
		}
	}

	if parsed == nil {
		parsed = []model.Note{}
	}
	return parsed, nil
}

// Create validates d, assigns a fresh id, and puts the new note at the
// front of the collection.
func (s *Store) Create(ctx context.Context, d model.Draft) (model.Note, error) {
	if err := validateText(d.Title, d.Description); err != nil {
		return model.Note{}, err
	}
	color := d.Color
	if color == "" {
		color = model.DefaultColor
	}
	if !color.Valid() {
		return model.Note{}, &ValidationError{Field: "color", Message: fmt.Sprintf("unknown color %q", color)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.uniqueID()
	if err != nil {
		return model.Note{}, fmt.Errorf("generating note id: %w", err)
	}

	now := s.now().UTC()
	note := model.Note{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Tags:        append([]string{}, d.Tags...),
		Color:       color,
		CreatedAt:   now,
	}

	s.notes = append([]model.Note{note}, s.notes...)
	s.log.Debug("note created", zap.String("id", id))

	if err := s.persist(ctx); err != nil {
		return note.Clone(), err
	}
	return note.Clone(), nil
}

// uniqueID draws ids until one is unused. Callers hold s.mu.
func (s *Store) uniqueID() (string, error) {
	for attempt := 0; attempt < 8; attempt++ {
		id, err := s.newID()
		if err != nil {
			return "", err
		}
		if id != "" && s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", errors.New("id generator keeps returning ids already in use")
}

// Update merges the set fields of p into the note with the given id.
// An unknown id is a no-op.
func (s *Store) Update(ctx context.Context, id string, p model.Patch) error {
	return s.updateWith(ctx, id, func(model.Note) model.Patch { return p })
}

// updateWith builds the patch from the current note and applies it under
// one lock, so toggles cannot lose a concurrent flip.
func (s *Store) updateWith(ctx context.Context, id string, patchFor func(model.Note) model.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug("update of unknown note ignored", zap.String("id", id))
		return nil
	}

	p := patchFor(s.notes[i].Clone())
	if err := validatePatch(p); err != nil {
		return err
	}

	next := p.Apply(s.notes[i])
	if next.Tags == nil {
		next.Tags = []string{}
	}
	next.ID = s.notes[i].ID

	s.notes[i] = next
	return s.persist(ctx)
}

// Edit replaces the title, description, tags and colour of a note.
func (s *Store) Edit(ctx context.Context, id string, d model.Draft) error {
	return s.Update(ctx, id, model.DraftPatch(d))
}

// TogglePinned flips the pinned flag of a note.
func (s *Store) TogglePinned(ctx context.Context, id string) error {
	return s.updateWith(ctx, id, func(n model.Note) model.Patch {
		v := !n.Pinned
		return model.Patch{Pinned: &v}
	})
}

// ToggleArchived flips the archived flag of a note.
func (s *Store) ToggleArchived(ctx context.Context, id string) error {
	return s.updateWith(ctx, id, func(n model.Note) model.Patch {
		v := !n.Archived
		return model.Patch{Archived: &v}
	})
}

// Trash moves a note to the trash.
func (s *Store) Trash(ctx context.Context, id string) error {
	v := true
	return s.Update(ctx, id, model.Patch{Trashed: &v})
}

// Restore takes a note out of the trash.
func (s *Store) Restore(ctx context.Context, id string) error {
	v := false
	return s.Update(ctx, id, model.Patch{Trashed: &v})
}

// RemoveForever deletes a note from the collection. An unknown id is a
// no-op.
func (s *Store) RemoveForever(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	s.notes = append(s.notes[:i:i], s.notes[i+1:]...)
	s.log.Debug("note removed", zap.String("id", id))
	return s.persist(ctx)
}

// ClearAll empties the collection and deletes the persisted slot.
// Callers are expected to have asked the user first.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, store.SlotNotes); err != nil {
		return fmt.Errorf("clearing notes: %w", err)
	}
	s.notes = []model.Note{}
	s.log.Info("all notes cleared")
	return nil
}

// Notes returns a copy of the collection in stored order.
func (s *Store) Notes() []model.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Note, len(s.notes))
	for i, n := range s.notes {
		out[i] = n.Clone()
	}
	return out
}

// Get returns the note with the given id.
func (s *Store) Get(id string) (model.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Note{}, false
	}
	return s.notes[i].Clone(), true
}

// Len returns the number of notes, trashed ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

// View is shorthand for ComputeView over the current collection.
func (s *Store) View(view model.View, search string) []model.Note {
	return ComputeView(s.Notes(), view, search)
}

// indexOf expects s.mu to be held.
func (s *Store) indexOf(id string) int {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}

// persist writes the full collection. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.notes)
	if err != nil {
		return fmt.Errorf("encoding notes: %w", err)
	}
	if err := s.kv.Set(ctx, store.SlotNotes, string(data)); err != nil {
		s.log.Error("persisting notes failed", zap.Error(err))
		return fmt.Errorf("persisting notes: %w", err)
	}
	return nil
}

// validatePatch checks only the fields p sets. Notes loaded with a blank
// field can still have their flags changed.
func validatePatch(p model.Patch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return &ValidationError{Field: "title", Message: RequiredFieldsMessage}
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		return &ValidationError{Field: "description", Message: RequiredFieldsMessage}
	}
	if p.Color != nil && !p.Color.Valid() {
		return &ValidationError{Field: "color", Message: fmt.Sprintf("unknown color %q", *p.Color)}
	}
	return nil
}

func validateText(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Message: RequiredFieldsMessage}
	}
	if strings.TrimSpace(description) == "" {
		return &ValidationError{Field: "description", Message: RequiredFieldsMessage}
	}
	return nil
}
