package domain

import "time"

// Employee is an HR record scoped to one organization. Employees are not
// users; they carry no credentials.
type Employee struct {
	EmployeeID     string     `json:"employeeID" db:"employee_id"`
	FirstName      string     `json:"firstName" db:"first_name"`
	LastName       string     `json:"lastName" db:"last_name"`
	Email          string     `json:"email" db:"email"`
	Position       string     `json:"position" db:"position"`
	Department     string     `json:"department" db:"department"`
	HireDate       *time.Time `json:"hireDate,omitempty" db:"hire_date"`
	OrganizationID string     `json:"organizationID" db:"organization_id"`
	Timestamps
}

// FullName returns the display name used in audit payloads.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
