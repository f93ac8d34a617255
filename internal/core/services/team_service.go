package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hrkit/hrms_backend/internal/core/domain"
	portsrepo "github.com/hrkit/hrms_backend/internal/core/ports/repositories"
	portssvc "github.com/hrkit/hrms_backend/internal/core/ports/services"
	"github.com/hrkit/hrms_backend/internal/dto"
)

type teamService struct {
	BaseService
	teamRepo     portsrepo.TeamRepositoryFacade
	employeeRepo portsrepo.EmployeeReader
}

// NewTeamService creates a new instance of teamService. The employee reader
// is needed to expand team membership on listing.
func NewTeamService(teamRepo portsrepo.TeamRepositoryFacade, employeeRepo portsrepo.EmployeeReader) portssvc.TeamSvcFacade {
	return &teamService{teamRepo: teamRepo, employeeRepo: employeeRepo}
}

var _ portssvc.TeamSvcFacade = (*teamService)(nil)

func (s *teamService) GetTeamByID(ctx context.Context, organizationID, teamID string) (*domain.Team, error) {
	return s.teamRepo.FindTeamByID(ctx, teamID, organizationID)
}

// ListTeams expands each team's current members. Membership rows only ever
// point at employees of the same organization, so no extra scoping is needed
// on the expansion.
func (s *teamService) ListTeams(ctx context.Context, organizationID string) ([]domain.TeamWithMembers, error) {
	teams, err := s.teamRepo.ListTeams(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TeamWithMembers, 0, len(teams))
	for _, team := range teams {
		members, err := s.employeeRepo.ListEmployeesByTeamID(ctx, team.TeamID)
		if err != nil {
			s.LogError(ctx, err, "failed to expand team members", slog.String("team_id", team.TeamID))
			return nil, err
		}
		result = append(result, domain.TeamWithMembers{Team: team, Members: members})
	}
	return result, nil
}

func (s *teamService) CreateTeam(ctx context.Context, organizationID string, req dto.CreateTeamRequest, userID string) (*domain.Team, error) {
	now := time.Now()
	team := domain.Team{
		TeamID:         uuid.NewString(),
		Name:           req.Name,
		Description:    req.Description,
		OrganizationID: organizationID,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	audit := domain.AuditLog{
		AuditLogID:     uuid.NewString(),
		Action:         domain.ActionTeamCreated,
		ResourceType:   "team",
		ResourceID:     team.TeamID,
		OrganizationID: organizationID,
		UserID:         userID,
		Details:        map[string]any{"team_name": team.Name},
		CreatedAt:      now,
	}

	if err := s.teamRepo.SaveTeam(ctx, team, audit); err != nil {
		s.LogError(ctx, err, "failed to create team", slog.String("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "team created", slog.String("team_id", team.TeamID))
	return &team, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, organizationID, teamID string, req dto.UpdateTeamRequest, userID string) (*domain.Team, error) {
	team, err := s.teamRepo.FindTeamByID(ctx, teamID, organizationID)
	if err != nil {
		return nil, err
	}

	changed := map[string]any{}
	if req.Name != nil && *req.Name != team.Name {
		team.Name = *req.Name
		changed["name"] = *req.Name
	}
	if req.Description != nil && *req.Description != team.Description {
		team.Description = *req.Description
		changed["description"] = *req.Description
	}

	now := time.Now()
	team.UpdatedAt = now

	audit := domain.AuditLog{
		AuditLogID:     uuid.NewString(),
		Action:         domain.ActionTeamUpdated,
		ResourceType:   "team",
		ResourceID:     team.TeamID,
		OrganizationID: organizationID,
		UserID:         userID,
		Details: map[string]any{
			"team_name":      team.Name,
			"changed_fields": changed,
		},
		CreatedAt: now,
	}

	if err := s.teamRepo.UpdateTeam(ctx, *team, audit); err != nil {
		s.LogError(ctx, err, "failed to update team", slog.String("team_id", teamID))
		return nil, err
	}

	return team, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, organizationID, teamID, userID string) error {
	team, err := s.teamRepo.FindTeamByID(ctx, teamID, organizationID)
	if err != nil {
		return err
	}

	now := time.Now()
	audit := domain.AuditLog{
		AuditLogID:     uuid.NewString(),
		Action:         domain.ActionTeamDeleted,
		ResourceType:   "team",
		ResourceID:     teamID,
		OrganizationID: organizationID,
		UserID:         userID,
		Details:        map[string]any{"team_name": team.Name},
		CreatedAt:      now,
	}

	if err := s.teamRepo.DeleteTeam(ctx, teamID, organizationID, audit); err != nil {
		s.LogError(ctx, err, "failed to delete team", slog.String("team_id", teamID))
		return err
	}

	s.LogInfo(ctx, "team deleted", slog.String("team_id", teamID))
	return nil
}
