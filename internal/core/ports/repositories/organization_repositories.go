package repositories

import (
	"context"

	"github.com/hrkit/hrms_backend/internal/core/domain"
)

// OrganizationReader defines read operations for organization data
type OrganizationReader interface {
	// FindOrganizationByID retrieves an organization by its unique identifier.
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
}

// OrganizationWriter defines write operations for organization data
type OrganizationWriter interface {
	// CreateOrganizationWithOwner persists a new organization together with its
	// first user and the organization_created audit entry in one transaction.
	// A duplicate owner email must leave no organization row behind.
	CreateOrganizationWithOwner(ctx context.Context, org domain.Organization, owner domain.User, audit domain.AuditLog) error
}

// OrganizationRepositoryFacade combines all organization repository interfaces
type OrganizationRepositoryFacade interface {
	OrganizationReader
	OrganizationWriter
}
