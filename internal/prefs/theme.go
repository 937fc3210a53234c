// Package prefs persists user preferences that live beside the notes in
// the local slot storage.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nhle/notes/internal/store"
)

// Theme is the colour scheme preference.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// Themes lists the preferences in menu order.
var Themes = []Theme{ThemeSystem, ThemeLight, ThemeDark}

// ParseTheme converts user input to a Theme.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Themes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q (want system, light or dark)", s)
}

// Next returns the preference after t in menu order, wrapping around.
func (t Theme) Next() Theme {
	for i, known := range Themes {
		if t == known {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeSystem
}

// LoadTheme reads the theme slot. A missing or unrecognized value yields
// ThemeSystem.
func LoadTheme(ctx context.Context, kv store.KV) (Theme, error) {
	raw, err := kv.Get(ctx, store.SlotTheme)
	if errors.Is(err, store.ErrSlotNotFound) {
		return ThemeSystem, nil
	}
	if err != nil {
		return ThemeSystem, fmt.Errorf("loading theme: %w", err)
	}
	t, err := ParseTheme(raw)
	if err != nil {
		return ThemeSystem, nil
	}
	return t, nil
}

// SaveTheme writes the theme slot.
func SaveTheme(ctx context.Context, kv store.KV, t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	if err := kv.Set(ctx, store.SlotTheme, string(t)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}
