package noteform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/notes/internal/model"
)

func TestStartEditPrefillsFields(t *testing.T) {
	m := New(model.ColorBlue, 80, 24)
	m.StartEdit(model.Note{
		ID:          "n1",
		Title:       "Milk",
		Description: "Buy milk",
		Tags:        []string{"home", "errands"},
		Color:       model.ColorRed,
	})

	assert.True(t, m.Editing())
	assert.Equal(t, model.Draft{
		Title:       "Milk",
		Description: "Buy milk",
		Tags:        []string{"home", "errands"},
		Color:       model.ColorRed,
	}, m.Draft())
}

func TestStartCreateResetsToDefaults(t *testing.T) {
	m := New(model.ColorBlue, 80, 24)
	m.StartEdit(model.Note{ID: "n1", Title: "a", Description: "b", Color: model.ColorRed})
	m.StartCreate()

	assert.False(t, m.Editing())
	d := m.Draft()
	assert.Empty(t, d.Title)
	assert.Equal(t, []string{}, d.Tags)
	assert.Equal(t, model.ColorBlue, d.Color)
}

func TestInvalidDefaultColorFallsBack(t *testing.T) {
	m := New("teal", 80, 24)
	m.StartCreate()
	assert.Equal(t, model.DefaultColor, m.Draft().Color)
}

func TestValidateRequired(t *testing.T) {
	check := validateRequired("Title")
	require.Error(t, check("  "))
	assert.Contains(t, check("").Error(), "Title")
	assert.NoError(t, check("x"))
}
