package pgsql

import (
	portsrepo "github.com/hrkit/hrms_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql repositories. The audit repository is
// created first because every mutating repository appends to it in-tx.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	auditLogRepo := newPgxAuditLogRepository(dbPool)
	organizationRepo := newPgxOrganizationRepository(dbPool, auditLogRepo)
	userRepo := newPgxUserRepository(dbPool)
	employeeRepo := newPgxEmployeeRepository(dbPool, auditLogRepo)
	teamRepo := newPgxTeamRepository(dbPool, auditLogRepo)
	assignmentRepo := newPgxAssignmentRepository(dbPool, auditLogRepo)

	return portsrepo.RepositoryProvider{
		OrganizationRepo: organizationRepo,
		UserRepo:         userRepo,
		EmployeeRepo:     employeeRepo,
		TeamRepo:         teamRepo,
		AssignmentRepo:   assignmentRepo,
		AuditLogRepo:     auditLogRepo,
	}
}
