package models

// Comment belongs to one event and one account. DateComment is an
// ISO-8601 UTC string; collections are served newest first.
type Comment struct {
	ID                 int    `json:"id"`
	TitleComment       string `json:"titleComment"`
	DescriptionComment string `json:"descriptionComment"`
	DateComment        string `json:"dateComment"`
	AccountID          int    `json:"accountId"`
	EventID            int    `json:"eventId,omitempty"`
}
