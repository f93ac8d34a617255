package repositories

import (
	"context"

	"github.com/hrkit/hrms_backend/internal/core/domain"
)

// AssignmentRepository defines persistence operations for the employee↔team
// junction. Uniqueness of the (employee_id, team_id) pair is enforced by the
// storage constraint; a second writer surfaces apperrors.ErrDuplicate.
type AssignmentRepository interface {
	// SaveAssignment inserts the junction row and its audit entry in one
	// transaction. Returns apperrors.ErrDuplicate when the pair already exists.
	SaveAssignment(ctx context.Context, assignment domain.Assignment, audit domain.AuditLog) error

	// DeleteAssignmentByPair removes the junction row matching the exact pair
	// and records the audit entry in the same transaction, stamping the
	// deleted row's id onto the entry as its resource id. Returns
	// apperrors.ErrNotFound (and appends nothing) when no row matched.
	DeleteAssignmentByPair(ctx context.Context, employeeID, teamID string, audit domain.AuditLog) error
}
