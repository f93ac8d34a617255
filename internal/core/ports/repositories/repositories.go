package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service layer. No component reaches for a global store handle.
type RepositoryProvider struct {
	OrganizationRepo OrganizationRepositoryFacade
	UserRepo         UserReader
	EmployeeRepo     EmployeeRepositoryFacade
	TeamRepo         TeamRepositoryFacade
	AssignmentRepo   AssignmentRepository
	AuditLogRepo     AuditLogRepositoryFacade
}
