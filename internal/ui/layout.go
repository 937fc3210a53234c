package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notes/internal/model"
	"github.com/nhle/notes/internal/theme"
)

// Layout manages the terminal layout dimensions.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	TabsHeight      int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
// The header, view tabs and status bar take one line each.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		TabsHeight:      1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area.
func (l Layout) ContentHeight() int {
	h := l.Height - l.HeaderHeight - l.TabsHeight - l.StatusBarHeight
	if h < 0 {
		return 0
	}
	return h
}

// RenderHeader renders the top bar with the application title on the left
// and the theme preference on the right.
func (l Layout) RenderHeader(title string, right string) string {
	return l.fill(theme.HeaderStyle, title, right)
}

// RenderViewTabs renders one tab per view with its note count, the active
// view highlighted.
func (l Layout) RenderViewTabs(active model.View, counts map[model.View]int) string {
	tabs := make([]string, 0, len(model.Views))
	for i, v := range model.Views {
		label := fmt.Sprintf("%d %s (%d)", i+1, strings.ToLower(v.Title()), counts[v])
		tabs = append(tabs, theme.ViewTabStyle(v == active).Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	return l.fill(theme.StatusBarStyle, hints, "")
}

// fill renders left and right in style, padding the gap so the bar spans
// the full width.
func (l Layout) fill(style lipgloss.Style, left, right string) string {
	leftRendered := style.Render(left)
	rightRendered := ""
	if right != "" {
		rightRendered = style.Align(lipgloss.Right).Render(right)
	}

	gap := l.Width - lipgloss.Width(leftRendered) - lipgloss.Width(rightRendered)
	if gap < 0 {
		gap = 0
	}

	filler := lipgloss.NewStyle().
		Width(gap).
		Background(style.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, filler, rightRendered)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, view tabs, content area, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	tabs string,
	content string,
	statusBar string,
) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		tabs,
		content,
		statusBar,
	)
}
