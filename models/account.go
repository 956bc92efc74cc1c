package models

// Account roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account is a registered app user. The password hash never leaves the
// server; the JSON shape is what the mobile client consumes.
type Account struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
