package repositories

import (
	"context"

	"github.com/hrkit/hrms_backend/internal/core/domain"
)

// TeamReader defines read operations for team data, organization-scoped.
type TeamReader interface {
	// FindTeamByID retrieves a team scoped to the given organization.
	FindTeamByID(ctx context.Context, teamID, organizationID string) (*domain.Team, error)

	// ListTeams retrieves all teams of an organization, newest first.
	ListTeams(ctx context.Context, organizationID string) ([]domain.Team, error)

	// ListTeamsByEmployeeID retrieves the teams an employee belongs to via the
	// employee_teams junction table.
	ListTeamsByEmployeeID(ctx context.Context, employeeID string) ([]domain.Team, error)
}

// TeamWriter defines write operations for team data. Each mutation persists
// its audit entry in the same transaction.
type TeamWriter interface {
	// SaveTeam persists a new team and its audit entry.
	SaveTeam(ctx context.Context, team domain.Team, audit domain.AuditLog) error

	// UpdateTeam updates an existing team and records its audit entry.
	UpdateTeam(ctx context.Context, team domain.Team, audit domain.AuditLog) error

	// DeleteTeam hard-deletes a team scoped to the organization. Assignment
	// rows referencing the team are removed by the storage cascade.
	DeleteTeam(ctx context.Context, teamID, organizationID string, audit domain.AuditLog) error
}

// TeamRepositoryFacade combines all team repository interfaces
type TeamRepositoryFacade interface {
	TeamReader
	TeamWriter
}
