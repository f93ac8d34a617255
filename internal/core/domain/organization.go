package domain

// Organization is the tenancy root: every other entity is owned by exactly
// one organization and is never visible across organizations.
type Organization struct {
	OrganizationID string `json:"organizationID" db:"organization_id"`
	Name           string `json:"name" db:"name"`
	Timestamps
}
