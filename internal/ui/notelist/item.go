package notelist

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/nhle/notes/internal/model"
	"github.com/nhle/notes/internal/theme"
)

// maxVisibleTags is how many tag badges a row shows before "+N".
const maxVisibleTags = 2

// NoteItem wraps a model.Note so it can be used in a bubbles/list.
type NoteItem struct {
	Note model.Note
}

// FilterValue returns the string used for list filtering.
func (i NoteItem) FilterValue() string { return i.Note.Title }

// Title returns the note title.
func (i NoteItem) Title() string { return i.Note.Title }

// Description returns the note body.
func (i NoteItem) Description() string { return i.Note.Description }

// NoteDelegate implements list.ItemDelegate for note rows.
type NoteDelegate struct{}

// Height returns the number of lines each item takes.
func (d NoteDelegate) Height() int { return 2 }

// Spacing returns the number of blank lines between items.
func (d NoteDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d NoteDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a note as a title line and a description line.
func (d NoteDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ni, ok := item.(NoteItem)
	if !ok {
		return
	}
	fmt.Fprint(w, renderNote(ni.Note, index == m.Index(), m.Width()))
}

func renderNote(n model.Note, selected bool, width int) string {
	swatch := theme.SwatchStyle(n.LabelColor()).Render("●")

	pin := " "
	if n.Pinned {
		pin = theme.PinStyle.Render("↑")
	}

	badges := tagBadges(n)
	age := lipgloss.NewStyle().
		Foreground(theme.ColorGray).
		Render(relativeTime(n.CreatedAt))

	titleWidth := width - lipgloss.Width(badges) - lipgloss.Width(age) - 10
	if titleWidth < 10 {
		titleWidth = 10
	}
	title := ansi.Truncate(singleLine(n.Title), titleWidth, "…")

	first := fmt.Sprintf("%s %s %s%s  %s", swatch, pin, title, badges, age)

	descWidth := width - 8
	if descWidth < 10 {
		descWidth = 10
	}
	second := "    " + theme.DimmedStyle.Render(ansi.Truncate(singleLine(n.Description), descWidth, "…"))

	if n.Archived || n.Trashed {
		first = theme.DimmedStyle.Render(first)
	}

	style := theme.ListItemStyle
	if selected {
		style = theme.SelectedItemStyle
	}
	return style.Render(first + "\n" + second)
}

// tagBadges renders up to maxVisibleTags tags and a "+N" overflow marker.
func tagBadges(n model.Note) string {
	if len(n.Tags) == 0 {
		return ""
	}

	visible := n.Tags
	if len(visible) > maxVisibleTags {
		visible = visible[:maxVisibleTags]
	}

	var b strings.Builder
	style := theme.TagStyle(n.LabelColor())
	for _, t := range visible {
		b.WriteString(" ")
		b.WriteString(style.Render(t))
	}
	if rest := len(n.Tags) - len(visible); rest > 0 {
		b.WriteString(theme.DimmedStyle.Render(fmt.Sprintf(" +%d", rest)))
	}
	return b.String()
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// relativeTime returns a human-friendly relative time string.
func relativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Local().Format("Jan 02")
	}
}
