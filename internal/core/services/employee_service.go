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

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new instance of employeeService.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) GetEmployeeByID(ctx context.Context, organizationID, employeeID string) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByID(ctx, employeeID, organizationID)
}

func (s *employeeService) ListEmployees(ctx context.Context, organizationID string) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, organizationID string, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error) {
	now := time.Now()
	employee := domain.Employee{
		EmployeeID:     uuid.NewString(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Position:       req.Position,
		Department:     req.Department,
		HireDate:       req.HireDate,
		OrganizationID: organizationID,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	audit := domain.AuditLog{
		AuditLogID:     uuid.NewString(),
		Action:         domain.ActionEmployeeCreated,
		ResourceType:   "employee",
		ResourceID:     employee.EmployeeID,
		OrganizationID: organizationID,
		UserID:         userID,
		Details: map[string]any{
			"employee_name": employee.FullName(),
			"email":         employee.Email,
		},
		CreatedAt: now,
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee, audit); err != nil {
		s.LogError(ctx, err, "failed to create employee", slog.String("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "employee created", slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

// UpdateEmployee loads the scoped employee, merges the non-nil request fields
// over it, and persists the result. The audit entry records only the fields
// that actually changed.
func (s *employeeService) UpdateEmployee(ctx context.Context, organizationID, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID, organizationID)
	if err != nil {
		return nil, err
	}

	changed := map[string]any{}
	if req.FirstName != nil && *req.FirstName != employee.FirstName {
		employee.FirstName = *req.FirstName
		changed["first_name"] = *req.FirstName
	}
	if req.LastName != nil && *req.LastName != employee.LastName {
		employee.LastName = *req.LastName
		changed["last_name"] = *req.LastName
	}
	if req.Email != nil && *req.Email != employee.Email {
		employee.Email = *req.Email
		changed["email"] = *req.Email
	}
	if req.Position != nil && *req.Position != employee.Position {
		employee.Position = *req.Position
		changed["position"] = *req.Position
	}
	if req.Department != nil && *req.Department != employee.Department {
		employee.Department = *req.Department
		changed["department"] = *req.Department
	}
	if req.HireDate != nil {
		employee.HireDate = req.HireDate
		changed["hire_date"] = req.HireDate.Format(time.RFC3339)
	}

	now := time.Now()
	employee.UpdatedAt = now

	audit := domain.AuditLog{
		AuditLogID:     uuid.NewString(),
		Action:         domain.ActionEmployeeUpdated,
		ResourceType:   "employee",
		ResourceID:     employee.EmployeeID,
		OrganizationID: organizationID,
		UserID:         userID,
		Details: map[string]any{
			"employee_name":  employee.FullName(),
			"changed_fields": changed,
		},
		CreatedAt: now,
	}

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee, audit); err != nil {
		s.LogError(ctx, err, "failed to update employee", slog.String("employee_id", employeeID))
		return nil, err
	}

	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, organizationID, employeeID, userID string) error {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID, organizationID)
	if err != nil {
		return err
	}

	now := time.Now()
	audit := domain.AuditLog{
		AuditLogID:     uuid.NewString(),
		Action:         domain.ActionEmployeeDeleted,
		ResourceType:   "employee",
		ResourceID:     employeeID,
		OrganizationID: organizationID,
		UserID:         userID,
		Details: map[string]any{
			"employee_name": employee.FullName(),
			"email":         employee.Email,
		},
		CreatedAt: now,
	}

	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID, organizationID, audit); err != nil {
		s.LogError(ctx, err, "failed to delete employee", slog.String("employee_id", employeeID))
		return err
	}

	s.LogInfo(ctx, "employee deleted", slog.String("employee_id", employeeID))
	return nil
}
