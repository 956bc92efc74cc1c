package models

// Event is the raw agenda record as served by the API. Only ID is
// guaranteed; every other field may be empty and is defaulted at render
// time, never rejected.
type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title,omitempty"`
	Department  string `json:"department,omitempty"`
	Date        string `json:"date,omitempty"` // YYYY-MM-DD or full ISO-8601 timestamp
	Time        string `json:"time,omitempty"`
	Location    string `json:"location,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// EnrichedEvent is the display-ready projection of an Event: formatted
// date/time strings, defaulted fields and a resolved department color.
// Built fresh on every render cycle, never persisted.
type EnrichedEvent struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Department      string `json:"department"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Location        string `json:"location"`
	ImageURL        string `json:"imageUrl"`
	DepartmentColor string `json:"departmentColor"`
}

// EventDisplay is the single-event projection used by the detail view.
type EventDisplay struct {
	EnrichedEvent
	Description string `json:"description"`
	HasBookmark bool   `json:"hasBookmark"`
}
