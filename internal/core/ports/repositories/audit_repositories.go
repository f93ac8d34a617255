package repositories

import (
	"context"

	"github.com/hrkit/hrms_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AuditLogWriter appends immutable audit entries. There is deliberately no
// update or delete operation.
type AuditLogWriter interface {
	// AppendAuditLog inserts one audit entry outside any caller transaction
	// (used for user_login, where no other row changes).
	AppendAuditLog(ctx context.Context, entry domain.AuditLog) error

	// AppendAuditLogInTx inserts one audit entry within the transaction that
	// carries the primary mutation, so the mutation and its trail commit or
	// roll back together.
	AppendAuditLogInTx(ctx context.Context, tx pgx.Tx, entry domain.AuditLog) error
}

// AuditLogReader lists audit entries for one organization.
type AuditLogReader interface {
	// ListAuditLogs returns a page of entries for the organization ordered by
	// creation time descending, with the actor's email joined in.
	ListAuditLogs(ctx context.Context, organizationID string, limit, offset int) ([]domain.AuditLog, error)

	// CountAuditLogs returns the total number of entries for the organization.
	CountAuditLogs(ctx context.Context, organizationID string) (int64, error)
}

// AuditLogRepositoryFacade combines audit log reader and writer interfaces
type AuditLogRepositoryFacade interface {
	AuditLogWriter
	AuditLogReader
}
