package services

import (
	"context"

	"github.com/hrkit/hrms_backend/internal/core/domain"
	portsrepo "github.com/hrkit/hrms_backend/internal/core/ports/repositories"
	portssvc "github.com/hrkit/hrms_backend/internal/core/ports/services"
)

const (
	defaultAuditPage  = 1
	defaultAuditLimit = 50
)

type auditService struct {
	BaseService
	auditRepo portsrepo.AuditLogReader
}

// NewAuditService creates a new instance of auditService.
func NewAuditService(auditRepo portsrepo.AuditLogReader) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

func (s *auditService) ListAuditLogs(ctx context.Context, organizationID string, page, limit int) (*domain.AuditPage, error) {
	if page < 1 {
		page = defaultAuditPage
	}
	if limit < 1 {
		limit = defaultAuditLimit
	}
	offset := (page - 1) * limit

	entries, err := s.auditRepo.ListAuditLogs(ctx, organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.auditRepo.CountAuditLogs(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &domain.AuditPage{
		Entries:    entries,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
