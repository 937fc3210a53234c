package notes

import (
	"sort"
	"strings"

	"github.com/nhle/notes/internal/model"
)

// ComputeView returns the notes visible in view whose title or description
// contains search, pinned notes first. It never modifies its input; the
// relative order of notes with equal pin status is preserved.
func ComputeView(all []model.Note, view model.View, search string) []model.Note {
	term := strings.ToLower(strings.TrimSpace(search))

	out := make([]model.Note, 0, len(all))
	for _, n := range all {
		if !inView(n, view) {
			continue
		}
		if term != "" && !matches(n, term) {
			continue
		}
		out = append(out, n.Clone())
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Pinned && !out[j].Pinned
	})

	return out
}

// NoSearchResults reports whether an empty result was caused by the search
// term rather than by the view having no notes at all.
func NoSearchResults(results []model.Note, search string) bool {
	return len(results) == 0 && strings.TrimSpace(search) != ""
}

func inView(n model.Note, view model.View) bool {
	switch view {
	case model.ViewTrash:
		return n.Trashed
	case model.ViewArchived:
		return n.Archived && !n.Trashed
	case model.ViewPinned:
		return n.Pinned && !n.Archived && !n.Trashed
	default:
		return !n.Archived && !n.Trashed
	}
}

// matches expects term to be lower-cased already.
func matches(n model.Note, term string) bool {
	return strings.Contains(strings.ToLower(n.Title), term) ||
		strings.Contains(strings.ToLower(n.Description), term)
}
