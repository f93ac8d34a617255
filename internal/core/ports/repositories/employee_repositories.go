package repositories

import (
	"context"

	"github.com/hrkit/hrms_backend/internal/core/domain"
)

// EmployeeReader defines read operations for employee data. Every lookup is
// filtered by organization so a miss and a cross-tenant hit are identical.
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee scoped to the given organization.
	FindEmployeeByID(ctx context.Context, employeeID, organizationID string) (*domain.Employee, error)

	// ListEmployees retrieves all employees of an organization, newest first.
	ListEmployees(ctx context.Context, organizationID string) ([]domain.Employee, error)

	// ListEmployeesByTeamID retrieves the members of a team via the
	// employee_teams junction table.
	ListEmployeesByTeamID(ctx context.Context, teamID string) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data. Each mutation
// persists its audit entry in the same transaction.
type EmployeeWriter interface {
	// SaveEmployee persists a new employee and its audit entry.
	SaveEmployee(ctx context.Context, employee domain.Employee, audit domain.AuditLog) error

	// UpdateEmployee updates an existing employee and records its audit entry.
	UpdateEmployee(ctx context.Context, employee domain.Employee, audit domain.AuditLog) error

	// DeleteEmployee hard-deletes an employee scoped to the organization.
	// Assignment rows referencing the employee are removed by the storage
	// cascade. Returns apperrors.ErrNotFound when no row matched.
	DeleteEmployee(ctx context.Context, employeeID, organizationID string, audit domain.AuditLog) error
}

// EmployeeRepositoryFacade combines all employee repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
