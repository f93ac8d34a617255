package services

import (
	"context"

	"github.com/hrkit/hrms_backend/internal/core/domain"
	"github.com/hrkit/hrms_backend/internal/dto"
)

// EmployeeReaderSvc defines organization-scoped employee reads.
type EmployeeReaderSvc interface {
	// GetEmployeeByID retrieves one employee of the caller's organization.
	GetEmployeeByID(ctx context.Context, organizationID, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves all employees of the caller's organization.
	ListEmployees(ctx context.Context, organizationID string) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines employee mutations; each successful call appends
// exactly one audit entry attributed to the acting user.
type EmployeeWriterSvc interface {
	// CreateEmployee creates a new employee in the caller's organization.
	CreateEmployee(ctx context.Context, organizationID string, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error)

	// UpdateEmployee applies a partial field merge over a scoped employee.
	UpdateEmployee(ctx context.Context, organizationID, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error)

	// DeleteEmployee hard-deletes a scoped employee; its team assignments are
	// removed transitively.
	DeleteEmployee(ctx context.Context, organizationID, employeeID, userID string) error
}

// EmployeeSvcFacade combines all employee service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}
