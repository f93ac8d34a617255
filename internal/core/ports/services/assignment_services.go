package services

import (
	"context"

	"github.com/hrkit/hrms_backend/internal/core/domain"
)

// AssignmentSvcFacade manages the employee↔team relation. Both sides of every
// operation must resolve under the caller's organization; a miss on either is
// reported as a single collapsed not-found so callers cannot tell which
// lookup failed.
type AssignmentSvcFacade interface {
	// AssignEmployeeToTeam creates the assignment. A duplicate pair fails with
	// apperrors.ErrDuplicate.
	AssignEmployeeToTeam(ctx context.Context, organizationID, employeeID, teamID, userID string) (*domain.Assignment, error)

	// UnassignEmployeeFromTeam removes the assignment matching the exact pair.
	UnassignEmployeeFromTeam(ctx context.Context, organizationID, employeeID, teamID, userID string) error

	// ListTeamMembers returns the employees of a scoped team. Reads append no
	// audit entries.
	ListTeamMembers(ctx context.Context, organizationID, teamID string) ([]domain.Employee, error)

	// ListEmployeeTeams returns the teams of a scoped employee.
	ListEmployeeTeams(ctx context.Context, organizationID, employeeID string) ([]domain.Team, error)
}
