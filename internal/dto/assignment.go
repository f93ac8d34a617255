package dto

import (
	"time"

	"github.com/hrkit/hrms_backend/internal/core/domain"
)

// --- Assignment DTOs ---

// AssignmentRequest identifies the employee↔team pair for assign and unassign.
type AssignmentRequest struct {
	EmployeeID string `json:"employeeID" binding:"required"`
	TeamID     string `json:"teamID" binding:"required"`
}

// AssignmentResponse defines data returned for an assignment.
type AssignmentResponse struct {
	AssignmentID string    `json:"assignmentID"`
	EmployeeID   string    `json:"employeeID"`
	TeamID       string    `json:"teamID"`
	AssignedDate time.Time `json:"assignedDate"`
}

// ToAssignmentResponse converts domain.Assignment to DTO.
func ToAssignmentResponse(a *domain.Assignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID: a.AssignmentID,
		EmployeeID:   a.EmployeeID,
		TeamID:       a.TeamID,
		AssignedDate: a.AssignedDate,
	}
}
