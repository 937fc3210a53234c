package store

import (
	"context"
	"errors"
)

// Slot keys used by the application.
const (
	SlotNotes = "notes"
	SlotTheme = "theme"
)

// ErrSlotNotFound is returned by Get when a slot has never been written
// or has been deleted.
var ErrSlotNotFound = errors.New("slot not found")

// KV is the local key-value storage the application persists into.
// Each slot holds one complete serialized value; writes replace the
// previous value entirely.
type KV interface {
	// Get returns the value stored in slot key, or ErrSlotNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set replaces the value stored in slot key.
	Set(ctx context.Context, key, value string) error

	// Delete removes slot key. Deleting an absent slot is not an error.
	Delete(ctx context.Context, key string) error
}
