package model

import (
	"fmt"
	"strings"
	"time"
)

// Color is the label colour of a note.
type Color string

const (
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorPurple Color = "purple"
	ColorGray   Color = "gray"
)

// DefaultColor is assigned to notes created without an explicit colour.
const DefaultColor = ColorGreen

// Colors lists every label colour in picker order.
var Colors = []Color{
	ColorGreen,
	ColorBlue,
	ColorRed,
	ColorYellow,
	ColorPurple,
	ColorGray,
}

// Valid reports whether c is one of the known label colours.
func (c Color) Valid() bool {
	for _, known := range Colors {
		if c == known {
			return true
		}
	}
	return false
}

// ParseColor converts user input to a Color. Empty input yields DefaultColor.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultColor, nil
	}
	c := Color(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}

// Note is a single user note.
type Note struct {
	// ID is assigned once at creation and never changes.
	ID string `json:"id" yaml:"id"`

	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	Color       Color    `json:"color" yaml:"color"`

	// Pinned, Archived and Trashed are independent flags. Trashed wins
	// over the others when deciding which view shows a note.
	Pinned   bool `json:"pinned" yaml:"pinned"`
	Archived bool `json:"archived" yaml:"archived"`
	Trashed  bool `json:"trashed" yaml:"trashed"`

	// CreatedAt is informational; ordering comes from collection position.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Clone returns a copy of n that shares no memory with it.
func (n Note) Clone() Note {
	if n.Tags != nil {
		n.Tags = append(make([]string, 0, len(n.Tags)), n.Tags...)
	}
	return n
}

// LabelColor returns the note colour, falling back to DefaultColor for
// values that are empty or unknown.
func (n Note) LabelColor() Color {
	if n.Color.Valid() {
		return n.Color
	}
	return DefaultColor
}

// Draft holds the user-editable fields of a note before it is saved.
type Draft struct {
	Title       string
	Description string
	Tags        []string
	Color       Color
}

// Patch lists the fields to change on an existing note.
// A nil field is left untouched.
type Patch struct {
	Title       *string
	Description *string
	Tags        *[]string
	Color       *Color
	Pinned      *bool
	Archived    *bool
	Trashed     *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Tags == nil &&
		p.Color == nil && p.Pinned == nil && p.Archived == nil && p.Trashed == nil
}

// Apply returns a copy of n with the set fields of p merged in.
func (p Patch) Apply(n Note) Note {
	out := n.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Tags != nil {
		out.Tags = append([]string{}, (*p.Tags)...)
	}
	if p.Color != nil {
		out.Color = *p.Color
	}
	if p.Pinned != nil {
		out.Pinned = *p.Pinned
	}
	if p.Archived != nil {
		out.Archived = *p.Archived
	}
	if p.Trashed != nil {
		out.Trashed = *p.Trashed
	}
	return out
}

// DraftPatch builds a patch that replaces every editable field with the
// values from d.
func DraftPatch(d Draft) Patch {
	tags := append([]string{}, d.Tags...)
	color := d.Color
	if color == "" {
		color = DefaultColor
	}
	return Patch{
		Title:       &d.Title,
		Description: &d.Description,
		Tags:        &tags,
		Color:       &color,
	}
}

// ParseTags splits comma-separated input into trimmed, non-empty labels.
func ParseTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
