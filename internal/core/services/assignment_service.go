package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hrkit/hrms_backend/internal/apperrors"
	"github.com/hrkit/hrms_backend/internal/core/domain"
	portsrepo "github.com/hrkit/hrms_backend/internal/core/ports/repositories"
	portssvc "github.com/hrkit/hrms_backend/internal/core/ports/services"
)

type assignmentService struct {
	BaseService
	assignmentRepo portsrepo.AssignmentRepository
	employeeRepo   portsrepo.EmployeeReader
	teamRepo       portsrepo.TeamReader
}

// NewAssignmentService creates a new instance of assignmentService.
func NewAssignmentService(assignmentRepo portsrepo.AssignmentRepository, employeeRepo portsrepo.EmployeeReader, teamRepo portsrepo.TeamReader) portssvc.AssignmentSvcFacade {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
		teamRepo:       teamRepo,
	}
}

var _ portssvc.AssignmentSvcFacade = (*assignmentService)(nil)

// resolvePair looks up both sides of the assignment under the caller's
// organization. A miss on either side collapses into one message so the
// caller cannot probe which half exists.
func (s *assignmentService) resolvePair(ctx context.Context, organizationID, employeeID, teamID string) (*domain.Employee, *domain.Team, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID, organizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewNotFoundError("employee or team not found")
		}
		return nil, nil, err
	}
	team, err := s.teamRepo.FindTeamByID(ctx, teamID, organizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewNotFoundError("employee or team not found")
		}
		return nil, nil, err
	}
	return employee, team, nil
}

func (s *assignmentService) AssignEmployeeToTeam(ctx context.Context, organizationID, employeeID, teamID, userID string) (*domain.Assignment, error) {
	employee, team, err := s.resolvePair(ctx, organizationID, employeeID, teamID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	assignment := domain.Assignment{
		AssignmentID: uuid.NewString(),
		EmployeeID:   employeeID,
		TeamID:       teamID,
		AssignedDate: now,
	}

	audit := domain.AuditLog{
		AuditLogID:     uuid.NewString(),
		Action:         domain.ActionEmployeeAssigned,
		ResourceType:   "assignment",
		ResourceID:     assignment.AssignmentID,
		OrganizationID: organizationID,
		UserID:         userID,
		Details: map[string]any{
			"employee_name": employee.FullName(),
			"team_name":     team.Name,
			"employee_id":   employeeID,
			"team_id":       teamID,
		},
		CreatedAt: now,
	}

	if err := s.assignmentRepo.SaveAssignment(ctx, assignment, audit); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "failed to assign employee to team",
				slog.String("employee_id", employeeID), slog.String("team_id", teamID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "employee assigned to team",
		slog.String("employee_id", employeeID), slog.String("team_id", teamID))
	return &assignment, nil
}

func (s *assignmentService) UnassignEmployeeFromTeam(ctx context.Context, organizationID, employeeID, teamID, userID string) error {
	employee, team, err := s.resolvePair(ctx, organizationID, employeeID, teamID)
	if err != nil {
		return err
	}

	// ResourceID is left empty here; the repository stamps the deleted row's
	// id onto the entry once the DELETE has resolved it.
	audit := domain.AuditLog{
		AuditLogID:     uuid.NewString(),
		Action:         domain.ActionEmployeeUnassigned,
		ResourceType:   "assignment",
		OrganizationID: organizationID,
		UserID:         userID,
		Details: map[string]any{
			"employee_name": employee.FullName(),
			"team_name":     team.Name,
			"employee_id":   employeeID,
			"team_id":       teamID,
		},
		CreatedAt: time.Now(),
	}

	if err := s.assignmentRepo.DeleteAssignmentByPair(ctx, employeeID, teamID, audit); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to unassign employee from team",
				slog.String("employee_id", employeeID), slog.String("team_id", teamID))
		}
		return err
	}

	s.LogInfo(ctx, "employee removed from team",
		slog.String("employee_id", employeeID), slog.String("team_id", teamID))
	return nil
}

func (s *assignmentService) ListTeamMembers(ctx context.Context, organizationID, teamID string) ([]domain.Employee, error) {
	if _, err := s.teamRepo.FindTeamByID(ctx, teamID, organizationID); err != nil {
		return nil, err
	}
	members, err := s.employeeRepo.ListEmployeesByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if members == nil {
		return []domain.Employee{}, nil
	}
	return members, nil
}

func (s *assignmentService) ListEmployeeTeams(ctx context.Context, organizationID, employeeID string) ([]domain.Team, error) {
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID, organizationID); err != nil {
		return nil, err
	}
	teams, err := s.teamRepo.ListTeamsByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if teams == nil {
		return []domain.Team{}, nil
	}
	return teams, nil
}
