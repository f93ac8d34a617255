package domain

import "time"

// Assignment links one employee to one team. The (EmployeeID, TeamID) pair is
// unique, enforced by a storage constraint rather than check-then-insert.
// Assignments are created and destroyed, never updated in place.
type Assignment struct {
	AssignmentID string    `json:"assignmentID" db:"assignment_id"`
	EmployeeID   string    `json:"employeeID" db:"employee_id"`
	TeamID       string    `json:"teamID" db:"team_id"`
	AssignedDate time.Time `json:"assignedDate" db:"assigned_date"`
}
