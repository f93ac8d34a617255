package services

import (
	"context"

	"github.com/hrkit/hrms_backend/internal/core/domain"
)

// AuditSvcFacade lists the caller organization's audit trail.
type AuditSvcFacade interface {
	// ListAuditLogs returns one page of entries ordered by creation time
	// descending. Non-positive page/limit fall back to page 1 and limit 50.
	ListAuditLogs(ctx context.Context, organizationID string, page, limit int) (*domain.AuditPage, error)
}
