package dto

import (
	"time"

	"github.com/hrkit/hrms_backend/internal/core/domain"
)

// --- Employee DTOs ---

// CreateEmployeeRequest defines data for creating a new employee.
type CreateEmployeeRequest struct {
	FirstName  string     `json:"firstName" binding:"required"`
	LastName   string     `json:"lastName" binding:"required"`
	Email      string     `json:"email" binding:"required,email"`
	Position   string     `json:"position"`
	Department string     `json:"department"`
	HireDate   *time.Time `json:"hireDate"`
}

// UpdateEmployeeRequest defines a partial update; nil fields are left untouched.
type UpdateEmployeeRequest struct {
	FirstName  *string    `json:"firstName"`
	LastName   *string    `json:"lastName"`
	Email      *string    `json:"email" binding:"omitempty,email"`
	Position   *string    `json:"position"`
	Department *string    `json:"department"`
	HireDate   *time.Time `json:"hireDate"`
}

// EmployeeResponse defines data returned for an employee.
type EmployeeResponse struct {
	EmployeeID string     `json:"employeeID"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Email      string     `json:"email"`
	Position   string     `json:"position,omitempty"`
	Department string     `json:"department,omitempty"`
	HireDate   *time.Time `json:"hireDate,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// ToEmployeeResponse converts domain.Employee to DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: e.EmployeeID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Position:   e.Position,
		Department: e.Department,
		HireDate:   e.HireDate,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// ToEmployeeResponses converts a slice of domain.Employee to DTOs.
func ToEmployeeResponses(es []domain.Employee) []EmployeeResponse {
	list := make([]EmployeeResponse, len(es))
	for i := range es {
		list[i] = ToEmployeeResponse(&es[i])
	}
	return list
}

// ListEmployeesResponse wraps a list of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}
