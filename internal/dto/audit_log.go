package dto

import (
	"time"

	"github.com/hrkit/hrms_backend/internal/core/domain"
)

// --- Audit log DTOs ---

// AuditLogResponse defines data returned for one audit entry.
type AuditLogResponse struct {
	AuditLogID   string         `json:"auditLogID"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resourceType"`
	ResourceID   string         `json:"resourceID,omitempty"`
	UserID       string         `json:"userID"`
	UserEmail    string         `json:"userEmail,omitempty"`
	Details      map[string]any `json:"details,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// ListAuditLogsResponse is the paged audit trail listing.
type ListAuditLogsResponse struct {
	Logs       []AuditLogResponse `json:"logs"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	TotalPages int                `json:"totalPages"`
}

// ToAuditLogResponse converts domain.AuditLog to DTO.
func ToAuditLogResponse(l *domain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		AuditLogID:   l.AuditLogID,
		Action:       string(l.Action),
		ResourceType: l.ResourceType,
		ResourceID:   l.ResourceID,
		UserID:       l.UserID,
		UserEmail:    l.UserEmail,
		Details:      l.Details,
		CreatedAt:    l.CreatedAt,
	}
}

// ToAuditLogResponses converts a slice of domain.AuditLog to DTOs.
func ToAuditLogResponses(ls []domain.AuditLog) []AuditLogResponse {
	list := make([]AuditLogResponse, len(ls))
	for i := range ls {
		list[i] = ToAuditLogResponse(&ls[i])
	}
	return list
}
