package domain

import "time"

// AuditAction names one mutating operation in the audit trail.
type AuditAction string

const (
	ActionOrganizationCreated AuditAction = "organization_created"
	ActionUserLogin           AuditAction = "user_login"
	ActionEmployeeCreated     AuditAction = "employee_created"
	ActionEmployeeUpdated     AuditAction = "employee_updated"
	ActionEmployeeDeleted     AuditAction = "employee_deleted"
	ActionTeamCreated         AuditAction = "team_created"
	ActionTeamUpdated         AuditAction = "team_updated"
	ActionTeamDeleted         AuditAction = "team_deleted"
	ActionEmployeeAssigned    AuditAction = "employee_assigned_to_team"
	ActionEmployeeUnassigned  AuditAction = "employee_removed_from_team"
)

// AuditLog is an immutable record of one mutating action. Rows are only ever
// inserted; no update or delete path exists anywhere in the application.
type AuditLog struct {
	AuditLogID     string         `json:"auditLogID" db:"audit_log_id"`
	Action         AuditAction    `json:"action" db:"action"`
	ResourceType   string         `json:"resourceType" db:"resource_type"`
	ResourceID     string         `json:"resourceID" db:"resource_id"`
	OrganizationID string         `json:"organizationID" db:"organization_id"`
	UserID         string         `json:"userID" db:"user_id"`
	Details        map[string]any `json:"details" db:"details"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`

	// UserEmail is populated on listing by joining the users table; it is not
	// a column of audit_logs itself.
	UserEmail string `json:"userEmail,omitempty" db:"-"`
}

// AuditPage is one page of the organization's audit trail, newest first.
type AuditPage struct {
	Entries    []AuditLog
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
