package domain

// User is an authenticating account belonging to one organization.
// Email is unique across all organizations; login looks users up globally.
type User struct {
	UserID         string `json:"userID" db:"user_id"`
	Email          string `json:"email" db:"email"`
	PasswordHash   string `json:"-" db:"password_hash"`
	OrganizationID string `json:"organizationID" db:"organization_id"`
	Timestamps
}
