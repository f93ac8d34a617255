package services

import (
	"context"

	"github.com/hrkit/hrms_backend/internal/core/domain"
	"github.com/hrkit/hrms_backend/internal/dto"
)

// AuthRegistrationSvc creates the organization+first-user pair.
type AuthRegistrationSvc interface {
	// Register atomically creates an organization and its first user, hashing
	// the password and appending the organization_created audit entry. The new
	// user's email must not already be registered anywhere.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Organization, *domain.User, error)
}

// AuthLoginSvc authenticates users and issues session tokens.
type AuthLoginSvc interface {
	// Login verifies the credential and on success returns a signed session
	// token embedding user and organization IDs, plus the resolved entities.
	// An unknown email and a wrong password fail identically with
	// apperrors.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, *domain.Organization, error)

	// GetMe resolves the authenticated caller and their organization.
	GetMe(ctx context.Context, userID string) (*domain.User, *domain.Organization, error)
}

// AuthSvcFacade combines all authentication service interfaces
type AuthSvcFacade interface {
	AuthRegistrationSvc
	AuthLoginSvc
}
