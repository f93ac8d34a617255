package pgsql

import (
	"context"

	"github.com/hrkit/hrms_backend/internal/apperrors"
	"github.com/hrkit/hrms_backend/internal/core/domain"
	portsrepo "github.com/hrkit/hrms_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTeamRepository struct {
	BaseRepository
	auditRepo portsrepo.AuditLogWriter
}

// newPgxTeamRepository creates a new repository for team data.
func newPgxTeamRepository(pool *pgxpool.Pool, auditRepo portsrepo.AuditLogWriter) portsrepo.TeamRepositoryFacade {
	return &PgxTeamRepository{
		BaseRepository: BaseRepository{Pool: pool},
		auditRepo:      auditRepo,
	}
}

// Ensure PgxTeamRepository implements portsrepo.TeamRepositoryFacade
var _ portsrepo.TeamRepositoryFacade = (*PgxTeamRepository)(nil)

const teamSelectQuery = `
	SELECT t.team_id, t.name, t.description, t.organization_id, t.created_at, t.updated_at
	FROM teams t
`

func (r *PgxTeamRepository) getTeams(ctx context.Context, filterQuery string, args ...any) ([]domain.Team, error) {
	rows, err := r.Pool.Query(ctx, teamSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query teams", err)
	}
	defer rows.Close()

	teams := []domain.Team{}
	for rows.Next() {
		var t domain.Team
		err := rows.Scan(
			&t.TeamID,
			&t.Name,
			&t.Description,
			&t.OrganizationID,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan team row", err)
		}
		teams = append(teams, t)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating team rows", err)
	}

	return teams, nil
}

func (r *PgxTeamRepository) FindTeamByID(ctx context.Context, teamID, organizationID string) (*domain.Team, error) {
	teams, err := r.getTeams(ctx, ` WHERE t.team_id = $1 AND t.organization_id = $2;`, teamID, organizationID)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &teams[0], nil
}

func (r *PgxTeamRepository) ListTeams(ctx context.Context, organizationID string) ([]domain.Team, error) {
	return r.getTeams(ctx, ` WHERE t.organization_id = $1 ORDER BY t.created_at DESC;`, organizationID)
}

func (r *PgxTeamRepository) ListTeamsByEmployeeID(ctx context.Context, employeeID string) ([]domain.Team, error) {
	filter := `
		JOIN employee_teams et ON t.team_id = et.team_id
		WHERE et.employee_id = $1
		ORDER BY et.assigned_date DESC;
	`
	return r.getTeams(ctx, filter, employeeID)
}

func (r *PgxTeamRepository) SaveTeam(ctx context.Context, team domain.Team, audit domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO teams (team_id, name, description, organization_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, query,
		team.TeamID,
		team.Name,
		team.Description,
		team.OrganizationID,
		team.CreatedAt,
		team.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save team "+team.TeamID, err)
	}

	if err := r.auditRepo.AppendAuditLogInTx(ctx, tx, audit); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTeamRepository) UpdateTeam(ctx context.Context, team domain.Team, audit domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE teams
		SET name = $1, description = $2, updated_at = $3
		WHERE team_id = $4 AND organization_id = $5;
	`
	cmdTag, err := tx.Exec(ctx, query,
		team.Name,
		team.Description,
		team.UpdatedAt,
		team.TeamID,
		team.OrganizationID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update team "+team.TeamID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("team not found")
	}

	if err := r.auditRepo.AppendAuditLogInTx(ctx, tx, audit); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteTeam removes the team row; the employee_teams cascade cleans up any
// assignments without separate audit entries.
func (r *PgxTeamRepository) DeleteTeam(ctx context.Context, teamID, organizationID string, audit domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx,
		`DELETE FROM teams WHERE team_id = $1 AND organization_id = $2;`,
		teamID, organizationID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete team "+teamID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("team not found")
	}

	if err := r.auditRepo.AppendAuditLogInTx(ctx, tx, audit); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
