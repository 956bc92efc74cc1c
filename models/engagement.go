package models

// FavoriteRecord correlates an account with a bookmarked event. Extra
// server-side fields are ignored by the client contract.
type FavoriteRecord struct {
	EventID   int `json:"eventId"`
	AccountID int `json:"accountId,omitempty"`
}

// AttendanceRecord correlates an account with an event it will attend.
type AttendanceRecord struct {
	EventID   int `json:"eventId"`
	AccountID int `json:"accountId,omitempty"`
}
