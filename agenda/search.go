package agenda

import (
	"strings"

	"campus-agenda/models"
)

// Search keeps the events whose title, department, location or
// description contains the query, case-insensitively. The query is
// trimmed and lowercased first; an empty query returns the input
// unchanged. Absent fields never match and never panic.
func Search(events []models.Event, query string) []models.Event {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return events
	}

	matched := []models.Event{}
	for _, ev := range events {
		if containsFold(ev.Title, q) ||
			containsFold(ev.Department, q) ||
			containsFold(ev.Location, q) ||
			containsFold(ev.Description, q) {
			matched = append(matched, ev)
		}
	}
	return matched
}

// containsFold reports whether field contains the already-lowercased
// query. Empty fields never match.
func containsFold(field, loweredQuery string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), loweredQuery)
}
