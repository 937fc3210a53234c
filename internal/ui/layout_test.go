package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/nhle/notes/internal/model"
)

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 27, NewLayout(100, 30).ContentHeight())
	assert.Equal(t, 0, NewLayout(100, 2).ContentHeight())
}

func TestRenderViewTabs(t *testing.T) {
	l := NewLayout(100, 30)
	out := l.RenderViewTabs(model.ViewPinned, map[model.View]int{
		model.ViewAll:    3,
		model.ViewPinned: 1,
	})

	assert.Contains(t, out, "1 all (3)")
	assert.Contains(t, out, "2 pinned (1)")
	assert.Contains(t, out, "4 trash (0)")
}

func TestBarsSpanWidth(t *testing.T) {
	l := NewLayout(60, 20)
	assert.Equal(t, 60, lipgloss.Width(l.RenderHeader("Notes", "theme: dark")))
	assert.Equal(t, 60, lipgloss.Width(l.RenderStatusBar("q quit")))
}
