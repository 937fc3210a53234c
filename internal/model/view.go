package model

import (
	"fmt"
	"strings"
)

// View selects which notes are visible.
type View string

const (
	ViewAll      View = "all"
	ViewPinned   View = "pinned"
	ViewArchived View = "archived"
	ViewTrash    View = "trash"
)

// Views lists every view in display order.
var Views = []View{ViewAll, ViewPinned, ViewArchived, ViewTrash}

// ParseView converts user input to a View.
func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return ViewAll, nil
	}
	for _, known := range Views {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view %q (want all, pinned, archived or trash)", s)
}

// Title returns the capitalized view name for headers.
func (v View) Title() string {
	switch v {
	case ViewPinned:
		return "Pinned"
	case ViewArchived:
		return "Archived"
	case ViewTrash:
		return "Trash"
	default:
		return "All"
	}
}
