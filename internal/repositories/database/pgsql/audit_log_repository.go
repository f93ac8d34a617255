package pgsql

import (
	"context"
	"encoding/json"

	"github.com/hrkit/hrms_backend/internal/apperrors"
	"github.com/hrkit/hrms_backend/internal/core/domain"
	portsrepo "github.com/hrkit/hrms_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

// newPgxAuditLogRepository creates a new repository for audit log data.
func newPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepositoryFacade {
	return &PgxAuditLogRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAuditLogRepository implements portsrepo.AuditLogRepositoryFacade
var _ portsrepo.AuditLogRepositoryFacade = (*PgxAuditLogRepository)(nil)

// execer covers both the pool and a transaction, so the same insert serves
// standalone appends and in-transaction appends.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const auditInsertQuery = `
	INSERT INTO audit_logs (
		audit_log_id, action, resource_type, resource_id,
		organization_id, user_id, details, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

func appendAuditLog(ctx context.Context, db execer, entry domain.AuditLog) error {
	detailsJSON, err := json.Marshal(entry.Details)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode audit details", err)
	}

	_, err = db.Exec(ctx, auditInsertQuery,
		entry.AuditLogID,
		entry.Action,
		entry.ResourceType,
		entry.ResourceID,
		entry.OrganizationID,
		entry.UserID,
		detailsJSON,
		entry.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to append audit log "+entry.AuditLogID, err)
	}
	return nil
}

func (r *PgxAuditLogRepository) AppendAuditLog(ctx context.Context, entry domain.AuditLog) error {
	return appendAuditLog(ctx, r.Pool, entry)
}

func (r *PgxAuditLogRepository) AppendAuditLogInTx(ctx context.Context, tx pgx.Tx, entry domain.AuditLog) error {
	return appendAuditLog(ctx, tx, entry)
}

func (r *PgxAuditLogRepository) ListAuditLogs(ctx context.Context, organizationID string, limit, offset int) ([]domain.AuditLog, error) {
	query := `
		SELECT a.audit_log_id, a.action, a.resource_type, a.resource_id,
			a.organization_id, a.user_id, a.details, a.created_at, u.email
		FROM audit_logs a
		JOIN users u ON a.user_id = u.user_id
		WHERE a.organization_id = $1
		ORDER BY a.created_at DESC, a.audit_log_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query audit logs", err)
	}
	defer rows.Close()

	entries := []domain.AuditLog{}
	for rows.Next() {
		var entry domain.AuditLog
		var detailsJSON []byte
		err := rows.Scan(
			&entry.AuditLogID,
			&entry.Action,
			&entry.ResourceType,
			&entry.ResourceID,
			&entry.OrganizationID,
			&entry.UserID,
			&detailsJSON,
			&entry.CreatedAt,
			&entry.UserEmail,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan audit log row", err)
		}
		if len(detailsJSON) > 0 {
			if err := json.Unmarshal(detailsJSON, &entry.Details); err != nil {
				return nil, apperrors.NewAppError(500, "failed to decode audit details", err)
			}
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating audit log rows", err)
	}

	return entries, nil
}

func (r *PgxAuditLogRepository) CountAuditLogs(ctx context.Context, organizationID string) (int64, error) {
	var total int64
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM audit_logs WHERE organization_id = $1;`,
		organizationID,
	).Scan(&total)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count audit logs", err)
	}
	return total, nil
}
