package pgsql

import (
	"context"
	"errors"

	"github.com/hrkit/hrms_backend/internal/apperrors"
	"github.com/hrkit/hrms_backend/internal/core/domain"
	portsrepo "github.com/hrkit/hrms_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrganizationRepository struct {
	BaseRepository
	auditRepo portsrepo.AuditLogWriter
}

// newPgxOrganizationRepository creates a new repository for organization data.
func newPgxOrganizationRepository(pool *pgxpool.Pool, auditRepo portsrepo.AuditLogWriter) portsrepo.OrganizationRepositoryFacade {
	return &PgxOrganizationRepository{
		BaseRepository: BaseRepository{Pool: pool},
		auditRepo:      auditRepo,
	}
}

// Ensure PgxOrganizationRepository implements portsrepo.OrganizationRepositoryFacade
var _ portsrepo.OrganizationRepositoryFacade = (*PgxOrganizationRepository)(nil)

// CreateOrganizationWithOwner inserts the organization, its first user and the
// registration audit entry in one transaction. A duplicate email aborts the
// whole transaction, so no orphaned organization row is left behind.
func (r *PgxOrganizationRepository) CreateOrganizationWithOwner(ctx context.Context, org domain.Organization, owner domain.User, audit domain.AuditLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	orgQuery := `
		INSERT INTO organizations (organization_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err = tx.Exec(ctx, orgQuery,
		org.OrganizationID,
		org.Name,
		org.CreatedAt,
		org.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save organization "+org.OrganizationID, err)
	}

	userQuery := `
		INSERT INTO users (user_id, email, password_hash, organization_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, userQuery,
		owner.UserID,
		owner.Email,
		owner.PasswordHash,
		owner.OrganizationID,
		owner.CreatedAt,
		owner.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("email is already registered")
		}
		return apperrors.NewAppError(500, "failed to save user "+owner.UserID, err)
	}

	if err := r.auditRepo.AppendAuditLogInTx(ctx, tx, audit); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	query := `
		SELECT organization_id, name, created_at, updated_at
		FROM organizations
		WHERE organization_id = $1;
	`
	var org domain.Organization
	err := r.Pool.QueryRow(ctx, query, organizationID).Scan(
		&org.OrganizationID,
		&org.Name,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find organization "+organizationID, err)
	}
	return &org, nil
}
