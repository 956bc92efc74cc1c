package agenda

import (
	"sort"
	"time"

	"campus-agenda/models"
)

// SortCommentsByDate returns a new slice ordered newest first by
// dateComment. The sort is stable: ties and unparseable dates keep their
// original server order, with unparseable entries sinking to the end.
func SortCommentsByDate(comments []models.Comment) []models.Comment {
	type keyed struct {
		comment models.Comment
		at      time.Time
	}

	entries := make([]keyed, len(comments))
	for i, c := range comments {
		entries[i] = keyed{comment: c}
		if t, ok := ToLocal(c.DateComment); ok && !t.IsZero() {
			entries[i].at = t
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].at.After(entries[j].at)
	})

	sorted := make([]models.Comment, len(entries))
	for i, e := range entries {
		sorted[i] = e.comment
	}
	return sorted
}
