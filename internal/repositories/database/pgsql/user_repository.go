package pgsql

import (
	"context"
	"errors"

	"github.com/hrkit/hrms_backend/internal/apperrors"
	"github.com/hrkit/hrms_backend/internal/core/domain"
	portsrepo "github.com/hrkit/hrms_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserReader {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserReader
var _ portsrepo.UserReader = (*PgxUserRepository)(nil)

const userSelectQuery = `
	SELECT user_id, email, password_hash, organization_id, created_at, updated_at
	FROM users
`

func (r *PgxUserRepository) findUser(ctx context.Context, filterQuery string, args ...any) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, userSelectQuery+filterQuery, args...).Scan(
		&user.UserID,
		&user.Email,
		&user.PasswordHash,
		&user.OrganizationID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query user", err)
	}
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, ` WHERE user_id = $1;`, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUser(ctx, ` WHERE email = $1;`, email)
}
