package notes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/notes/internal/model"
	"github.com/nhle/notes/internal/notes"
)

func ids(ns []model.Note) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.ID
	}
	return out
}

func milkAndGym() []model.Note {
	return []model.Note{
		{ID: "1", Title: "Milk", Description: "Buy milk", Tags: []string{}},
		{ID: "2", Title: "Gym", Description: "Leg day", Pinned: true, Tags: []string{}},
	}
}

func TestComputeViewScenarios(t *testing.T) {
	all := milkAndGym()

	assert.Equal(t, []string{"2", "1"}, ids(notes.ComputeView(all, model.ViewAll, "")))
	assert.Equal(t, []string{"1"}, ids(notes.ComputeView(all, model.ViewAll, "milk")))

	all[0].Trashed = true
	assert.Equal(t, []string{"1"}, ids(notes.ComputeView(all, model.ViewTrash, "")))
	assert.Equal(t, []string{"2"}, ids(notes.ComputeView(all, model.ViewAll, "")))
}

func TestComputeViewMembership(t *testing.T) {
	all := []model.Note{
		{ID: "plain"},
		{ID: "pinned", Pinned: true},
		{ID: "archived", Archived: true},
		{ID: "pinned-archived", Pinned: true, Archived: true},
		{ID: "trashed", Trashed: true},
		{ID: "pinned-trashed", Pinned: true, Trashed: true},
		{ID: "archived-trashed", Archived: true, Trashed: true},
	}

	tests := []struct {
		view model.View
		want []string
	}{
		{model.ViewAll, []string{"pinned", "plain"}},
		{model.ViewPinned, []string{"pinned"}},
		{model.ViewArchived, []string{"pinned-archived", "archived"}},
		{model.ViewTrash, []string{"pinned-trashed", "trashed", "archived-trashed"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(notes.ComputeView(all, tt.view, "")))
		})
	}
}

func TestComputeViewSearch(t *testing.T) {
	all := []model.Note{
		{ID: "1", Title: "Groceries", Description: "eggs, MILK"},
		{ID: "2", Title: "Milkshake recipe", Description: "blend"},
		{ID: "3", Title: "Run", Description: "5k"},
	}

	tests := []struct {
		search string
		want   []string
	}{
		{"milk", []string{"1", "2"}},
		{"  MiLk  ", []string{"1", "2"}},
		{"blend", []string{"2"}},
		{"   ", []string{"1", "2", "3"}},
		{"swim", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(notes.ComputeView(all, model.ViewAll, tt.search)))
		})
	}
}

func TestComputeViewPinnedFirstKeepsOrder(t *testing.T) {
	all := []model.Note{
		{ID: "a"},
		{ID: "b", Pinned: true},
		{ID: "c"},
		{ID: "d", Pinned: true},
		{ID: "e"},
	}

	for _, v := range model.Views {
		got := notes.ComputeView(all, v, "")
		seenUnpinned := false
		for _, n := range got {
			if !n.Pinned {
				seenUnpinned = true
			}
			assert.False(t, seenUnpinned && n.Pinned, "pinned note after unpinned in %s", v)
		}
	}

	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, ids(notes.ComputeView(all, model.ViewAll, "")))
}

func TestComputeViewIsPure(t *testing.T) {
	all := milkAndGym()
	all[0].Tags = []string{"x"}
	before := append([]model.Note(nil), all...)

	first := notes.ComputeView(all, model.ViewAll, "")
	second := notes.ComputeView(all, model.ViewAll, "")

	assert.Equal(t, first, second)
	assert.Equal(t, before, all, "input order untouched")

	first[1].Tags[0] = "changed"
	assert.Equal(t, "x", all[0].Tags[0], "results do not alias the input")
}

func TestNoSearchResults(t *testing.T) {
	assert.True(t, notes.NoSearchResults(nil, "milk"))
	assert.False(t, notes.NoSearchResults(nil, ""))
	assert.False(t, notes.NoSearchResults(nil, "  "))
	assert.False(t, notes.NoSearchResults(milkAndGym(), "milk"))
}
