package domain

// Team is a named group of employees within one organization.
type Team struct {
	TeamID         string `json:"teamID" db:"team_id"`
	Name           string `json:"name" db:"name"`
	Description    string `json:"description" db:"description"`
	OrganizationID string `json:"organizationID" db:"organization_id"`
	Timestamps
}

// TeamWithMembers pairs a team with its current members for listing.
type TeamWithMembers struct {
	Team
	Members []Employee
}
