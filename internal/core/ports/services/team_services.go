package services

import (
	"context"

	"github.com/hrkit/hrms_backend/internal/core/domain"
	"github.com/hrkit/hrms_backend/internal/dto"
)

// TeamReaderSvc defines organization-scoped team reads.
type TeamReaderSvc interface {
	// GetTeamByID retrieves one team of the caller's organization.
	GetTeamByID(ctx context.Context, organizationID, teamID string) (*domain.Team, error)

	// ListTeams retrieves all teams of the caller's organization with their
	// current members expanded.
	ListTeams(ctx context.Context, organizationID string) ([]domain.TeamWithMembers, error)
}

// TeamWriterSvc defines team mutations; each successful call appends exactly
// one audit entry attributed to the acting user.
type TeamWriterSvc interface {
	// CreateTeam creates a new team in the caller's organization.
	CreateTeam(ctx context.Context, organizationID string, req dto.CreateTeamRequest, userID string) (*domain.Team, error)

	// UpdateTeam applies a partial field merge over a scoped team.
	UpdateTeam(ctx context.Context, organizationID, teamID string, req dto.UpdateTeamRequest, userID string) (*domain.Team, error)

	// DeleteTeam hard-deletes a scoped team; its assignments are removed
	// transitively.
	DeleteTeam(ctx context.Context, organizationID, teamID, userID string) error
}

// TeamSvcFacade combines all team service interfaces
type TeamSvcFacade interface {
	TeamReaderSvc
	TeamWriterSvc
}
