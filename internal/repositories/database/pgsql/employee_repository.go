package pgsql

import (
	"context"

	"github.com/hrkit/hrms_backend/internal/apperrors"
	"github.com/hrkit/hrms_backend/internal/core/domain"
	portsrepo "github.com/hrkit/hrms_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEmployeeRepository struct {
	BaseRepository
	auditRepo portsrepo.AuditLogWriter
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool, auditRepo portsrepo.AuditLogWriter) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
		auditRepo:      auditRepo,
	}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryFacade
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeSelectQuery = `
	SELECT e.employee_id, e.first_name, e.last_name, e.email, e.position,
		e.department, e.hire_date, e.organization_id, e.created_at, e.updated_at
	FROM employees e
`

func (r *PgxEmployeeRepository) getEmployees(ctx context.Context, filterQuery string, args ...any) ([]domain.Employee, error) {
	rows, err := r.Pool.Query(ctx, employeeSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query employees", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		err := rows.Scan(
			&e.EmployeeID,
			&e.FirstName,
			&e.LastName,
			&e.Email,
			&e.Position,
			&e.Department,
			&e.HireDate,
			&e.OrganizationID,
			&e.CreatedAt,
			&e.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan employee row", err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating employee rows", err)
	}

	return employees, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID, organizationID string) (*domain.Employee, error) {
	// The organization filter makes a cross-tenant id indistinguishable from a
	// missing one.
	employees, err := r.getEmployees(ctx, ` WHERE e.employee_id = $1 AND e.organization_id = $2;`, employeeID, organizationID)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &employees[0], nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, organizationID string) ([]domain.Employee, error) {
	return r.getEmployees(ctx, ` WHERE e.organization_id = $1 ORDER BY e.created_at DESC;`, organizationID)
}

func (r *PgxEmployeeRepository) ListEmployeesByTeamID(ctx context.Context, teamID string) ([]domain.Employee, error) {
	filter := `
		JOIN employee_teams et ON e.employee_id = et.employee_id
		WHERE et.team_id = $1
		ORDER BY et.assigned_date DESC;
	`
	return r.getEmployees(ctx, filter, teamID)
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee, audit domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO employees (
			employee_id, first_name, last_name, email, position,
			department, hire_date, organization_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		employee.EmployeeID,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.Position,
		employee.Department,
		employee.HireDate,
		employee.OrganizationID,
		employee.CreatedAt,
		employee.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save employee "+employee.EmployeeID, err)
	}

	if err := r.auditRepo.AppendAuditLogInTx(ctx, tx, audit); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee, audit domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3, position = $4,
			department = $5, hire_date = $6, updated_at = $7
		WHERE employee_id = $8 AND organization_id = $9;
	`
	cmdTag, err := tx.Exec(ctx, query,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.Position,
		employee.Department,
		employee.HireDate,
		employee.UpdatedAt,
		employee.EmployeeID,
		employee.OrganizationID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update employee "+employee.EmployeeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("employee not found")
	}

	if err := r.auditRepo.AppendAuditLogInTx(ctx, tx, audit); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteEmployee removes the employee row; the employee_teams cascade cleans
// up any assignments without separate audit entries.
func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID, organizationID string, audit domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx,
		`DELETE FROM employees WHERE employee_id = $1 AND organization_id = $2;`,
		employeeID, organizationID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete employee "+employeeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("employee not found")
	}

	if err := r.auditRepo.AppendAuditLogInTx(ctx, tx, audit); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
