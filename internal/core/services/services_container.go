package services

import (
	portsrepo "github.com/hrkit/hrms_backend/internal/core/ports/repositories"
	portssvc "github.com/hrkit/hrms_backend/internal/core/ports/services"
	"github.com/hrkit/hrms_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg, repos.OrganizationRepo, repos.UserRepo, repos.AuditLogRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Team = NewTeamService(repos.TeamRepo, repos.EmployeeRepo)
	container.Assignment = NewAssignmentService(repos.AssignmentRepo, repos.EmployeeRepo, repos.TeamRepo)
	container.Audit = NewAuditService(repos.AuditLogRepo)

	return container
}
