package pgsql

import (
	"context"
	"errors"

	"github.com/hrkit/hrms_backend/internal/apperrors"
	"github.com/hrkit/hrms_backend/internal/core/domain"
	portsrepo "github.com/hrkit/hrms_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAssignmentRepository struct {
	BaseRepository
	auditRepo portsrepo.AuditLogWriter
}

// newPgxAssignmentRepository creates a new repository for employee↔team
// assignment data.
func newPgxAssignmentRepository(pool *pgxpool.Pool, auditRepo portsrepo.AuditLogWriter) portsrepo.AssignmentRepository {
	return &PgxAssignmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		auditRepo:      auditRepo,
	}
}

// Ensure PgxAssignmentRepository implements portsrepo.AssignmentRepository
var _ portsrepo.AssignmentRepository = (*PgxAssignmentRepository)(nil)

// SaveAssignment relies on the uq_employee_teams_pair constraint to reject a
// concurrent duplicate; a check-then-insert would race.
func (r *PgxAssignmentRepository) SaveAssignment(ctx context.Context, assignment domain.Assignment, audit domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO employee_teams (assignment_id, employee_id, team_id, assigned_date)
		VALUES ($1, $2, $3, $4);
	`
	_, err = tx.Exec(ctx, query,
		assignment.AssignmentID,
		assignment.EmployeeID,
		assignment.TeamID,
		assignment.AssignedDate,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("employee is already in this team")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewNotFoundError("employee or team not found")
			}
		}
		return apperrors.NewAppError(500, "failed to save assignment "+assignment.AssignmentID, err)
	}

	if err := r.auditRepo.AppendAuditLogInTx(ctx, tx, audit); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteAssignmentByPair deletes the exact junction row. When no row matches,
// the transaction rolls back and no audit entry is written.
func (r *PgxAssignmentRepository) DeleteAssignmentByPair(ctx context.Context, employeeID, teamID string, audit domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var assignmentID string
	err = tx.QueryRow(ctx,
		`DELETE FROM employee_teams WHERE employee_id = $1 AND team_id = $2 RETURNING assignment_id;`,
		employeeID, teamID,
	).Scan(&assignmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("assignment not found")
		}
		return apperrors.NewAppError(500, "failed to delete assignment", err)
	}

	// The entry must reference the row the delete actually removed.
	audit.ResourceID = assignmentID
	if err := r.auditRepo.AppendAuditLogInTx(ctx, tx, audit); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
