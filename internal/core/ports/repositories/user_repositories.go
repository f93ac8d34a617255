package repositories

import (
	"context"

	"github.com/hrkit/hrms_backend/internal/core/domain"
)

// UserReader defines read operations for user data.
// Users are created only as a side effect of organization registration, so
// there is no standalone writer interface.
type UserReader interface {
	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email. The lookup is global, not
	// organization-scoped: emails are unique across all tenants.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
