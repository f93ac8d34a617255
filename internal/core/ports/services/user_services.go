package services

import (
	"context"

	"github.com/hrkit/hrms_backend/internal/core/domain"
)

// UserSvcFacade exposes user reads. The auth middleware uses GetUserByID to
// confirm that a token's subject still exists before trusting its claims.
type UserSvcFacade interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
