package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hrkit/hrms_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// --- Mock OrganizationRepository ---

type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) CreateOrganizationWithOwner(ctx context.Context, org domain.Organization, owner domain.User, audit domain.AuditLog) error {
	args := m.Called(ctx, org, owner, audit)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock EmployeeRepository ---

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID, organizationID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, organizationID string) ([]domain.Employee, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployeesByTeamID(ctx context.Context, teamID string) ([]domain.Employee, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee, audit domain.AuditLog) error {
	args := m.Called(ctx, employee, audit)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee, audit domain.AuditLog) error {
	args := m.Called(ctx, employee, audit)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID, organizationID string, audit domain.AuditLog) error {
	args := m.Called(ctx, employeeID, organizationID, audit)
	return args.Error(0)
}

// --- Mock TeamRepository ---

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) FindTeamByID(ctx context.Context, teamID, organizationID string) (*domain.Team, error) {
	args := m.Called(ctx, teamID, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) ListTeams(ctx context.Context, organizationID string) ([]domain.Team, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}

func (m *MockTeamRepository) ListTeamsByEmployeeID(ctx context.Context, employeeID string) ([]domain.Team, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}

func (m *MockTeamRepository) SaveTeam(ctx context.Context, team domain.Team, audit domain.AuditLog) error {
	args := m.Called(ctx, team, audit)
	return args.Error(0)
}

func (m *MockTeamRepository) UpdateTeam(ctx context.Context, team domain.Team, audit domain.AuditLog) error {
	args := m.Called(ctx, team, audit)
	return args.Error(0)
}

func (m *MockTeamRepository) DeleteTeam(ctx context.Context, teamID, organizationID string, audit domain.AuditLog) error {
	args := m.Called(ctx, teamID, organizationID, audit)
	return args.Error(0)
}

// --- Mock AssignmentRepository ---

type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) SaveAssignment(ctx context.Context, assignment domain.Assignment, audit domain.AuditLog) error {
	args := m.Called(ctx, assignment, audit)
	return args.Error(0)
}

func (m *MockAssignmentRepository) DeleteAssignmentByPair(ctx context.Context, employeeID, teamID string, audit domain.AuditLog) error {
	args := m.Called(ctx, employeeID, teamID, audit)
	return args.Error(0)
}

// --- Mock AuditLogRepository ---

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) AppendAuditLog(ctx context.Context, entry domain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) AppendAuditLogInTx(ctx context.Context, tx pgx.Tx, entry domain.AuditLog) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListAuditLogs(ctx context.Context, organizationID string, limit, offset int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}

func (m *MockAuditLogRepository) CountAuditLogs(ctx context.Context, organizationID string) (int64, error) {
	args := m.Called(ctx, organizationID)
	return args.Get(0).(int64), args.Error(1)
}
