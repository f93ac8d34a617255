package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hrkit/hrms_backend/internal/core/ports/services"
	"github.com/hrkit/hrms_backend/internal/dto"
	"github.com/hrkit/hrms_backend/internal/middleware"
)

// assignmentHandler handles HTTP requests for employee↔team membership.
type assignmentHandler struct {
	assignmentService portssvc.AssignmentSvcFacade
}

// newAssignmentHandler creates a new assignmentHandler.
func newAssignmentHandler(as portssvc.AssignmentSvcFacade) *assignmentHandler {
	return &assignmentHandler{assignmentService: as}
}

// registerAssignmentRoutes registers membership routes. The membership
// listings hang off their owning entity's path.
func registerAssignmentRoutes(rg *gin.RouterGroup, assignmentService portssvc.AssignmentSvcFacade) {
	h := newAssignmentHandler(assignmentService)

	assignments := rg.Group("/assignments")
	{
		assignments.POST("/assign", h.assign)
		assignments.POST("/unassign", h.unassign)
	}

	rg.GET("/teams/:id/members", h.listTeamMembers)
	rg.GET("/employees/:id/teams", h.listEmployeeTeams)
}

// assign godoc
// @Summary Assign an employee to a team
// @Description Creates an employee↔team assignment within the caller's organization.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body dto.AssignmentRequest true "Employee and team IDs"
// @Success 201 {object} dto.AssignmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Employee or team not found"
// @Failure 409 {object} ErrorResponse "Employee is already in this team"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /assignments/assign [post]
func (h *assignmentHandler) assign(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	organizationID, userID, ok := callerScope(c)
	if !ok {
		return
	}

	var req dto.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for assign", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	assignment, err := h.assignmentService.AssignEmployeeToTeam(c.Request.Context(), organizationID, req.EmployeeID, req.TeamID, userID)
	if err != nil {
		respondError(c, err, "Failed to assign employee to team")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssignmentResponse(assignment))
}

// unassign godoc
// @Summary Remove an employee from a team
// @Description Deletes the assignment matching the exact employee↔team pair.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body dto.AssignmentRequest true "Employee and team IDs"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /assignments/unassign [post]
func (h *assignmentHandler) unassign(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	organizationID, userID, ok := callerScope(c)
	if !ok {
		return
	}

	var req dto.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for unassign", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.assignmentService.UnassignEmployeeFromTeam(c.Request.Context(), organizationID, req.EmployeeID, req.TeamID, userID); err != nil {
		respondError(c, err, "Failed to remove employee from team")
		return
	}

	c.Status(http.StatusNoContent)
}

// listTeamMembers godoc
// @Summary List team members
// @Description Lists the employees currently assigned to a team.
// @Tags assignments
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{id}/members [get]
func (h *assignmentHandler) listTeamMembers(c *gin.Context) {
	organizationID, _, ok := callerScope(c)
	if !ok {
		return
	}

	members, err := h.assignmentService.ListTeamMembers(c.Request.Context(), organizationID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list team members")
		return
	}

	c.JSON(http.StatusOK, dto.ListEmployeesResponse{Employees: dto.ToEmployeeResponses(members)})
}

// listEmployeeTeams godoc
// @Summary List an employee's teams
// @Description Lists the teams an employee currently belongs to.
// @Tags assignments
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.ListTeamsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{id}/teams [get]
func (h *assignmentHandler) listEmployeeTeams(c *gin.Context) {
	organizationID, _, ok := callerScope(c)
	if !ok {
		return
	}

	teams, err := h.assignmentService.ListEmployeeTeams(c.Request.Context(), organizationID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list employee teams")
		return
	}

	c.JSON(http.StatusOK, dto.ListTeamsResponse{Teams: dto.ToTeamResponses(teams)})
}
