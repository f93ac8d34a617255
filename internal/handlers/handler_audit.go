package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hrkit/hrms_backend/internal/core/ports/services"
	"github.com/hrkit/hrms_backend/internal/dto"
)

// auditHandler handles HTTP requests for the audit trail.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

// newAuditHandler creates a new auditHandler.
func newAuditHandler(as portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: as}
}

// registerAuditRoutes registers the audit trail listing route.
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditService)
	rg.GET("/audit-logs", h.listAuditLogs)
}

// listAuditLogs godoc
// @Summary List audit trail entries
// @Description Lists the caller organization's audit trail, newest first.
// @Tags audit
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 50)"
// @Success 200 {object} dto.ListAuditLogsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *auditHandler) listAuditLogs(c *gin.Context) {
	organizationID, _, ok := callerScope(c)
	if !ok {
		return
	}

	// Unparsable values fall back to the defaults rather than erroring.
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	auditPage, err := h.auditService.ListAuditLogs(c.Request.Context(), organizationID, page, limit)
	if err != nil {
		respondError(c, err, "Failed to list audit logs")
		return
	}

	c.JSON(http.StatusOK, dto.ListAuditLogsResponse{
		Logs:       dto.ToAuditLogResponses(auditPage.Entries),
		Total:      auditPage.Total,
		Page:       auditPage.Page,
		TotalPages: auditPage.TotalPages,
	})
}
