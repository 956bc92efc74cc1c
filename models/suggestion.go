package models

// Suggestion statuses.
const (
	SuggestionPending  = "pending"
	SuggestionReviewed = "reviewed"
)

// Suggestion is a user-submitted event proposal, tracked by folio code.
type Suggestion struct {
	ID          int    `json:"id"`
	Folio       string `json:"folio"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Department  string `json:"department"`
	AccountID   int    `json:"accountId"`
	Status      string `json:"status"`
}
