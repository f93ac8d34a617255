package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hrkit/hrms_backend/internal/core/ports/services"
	"github.com/hrkit/hrms_backend/internal/dto"
	"github.com/hrkit/hrms_backend/internal/middleware"
)

// teamHandler handles HTTP requests related to teams.
type teamHandler struct {
	teamService portssvc.TeamSvcFacade
}

// newTeamHandler creates a new teamHandler.
func newTeamHandler(ts portssvc.TeamSvcFacade) *teamHandler {
	return &teamHandler{teamService: ts}
}

// registerTeamRoutes registers routes related to teams.
func registerTeamRoutes(rg *gin.RouterGroup, teamService portssvc.TeamSvcFacade) {
	h := newTeamHandler(teamService)

	teams := rg.Group("/teams")
	{
		teams.POST("", h.createTeam)
		teams.GET("", h.listTeams)
		teams.GET("/:id", h.getTeamByID)
		teams.PUT("/:id", h.updateTeam)
		teams.DELETE("/:id", h.deleteTeam)
	}
}

// createTeam godoc
// @Summary Create a new team
// @Description Adds a new team to the caller's organization.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body dto.CreateTeamRequest true "Team details"
// @Success 201 {object} dto.TeamResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams [post]
func (h *teamHandler) createTeam(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	organizationID, userID, ok := callerScope(c)
	if !ok {
		return
	}

	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTeam", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create team")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeamResponse(team))
}

// listTeams godoc
// @Summary List teams
// @Description Lists all teams of the caller's organization with their current members.
// @Tags teams
// @Produce json
// @Success 200 {object} dto.ListTeamsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams [get]
func (h *teamHandler) listTeams(c *gin.Context) {
	organizationID, _, ok := callerScope(c)
	if !ok {
		return
	}

	teams, err := h.teamService.ListTeams(c.Request.Context(), organizationID)
	if err != nil {
		respondError(c, err, "Failed to list teams")
		return
	}

	list := make([]dto.TeamResponse, len(teams))
	for i := range teams {
		resp := dto.ToTeamResponse(&teams[i].Team)
		resp.Members = dto.ToEmployeeResponses(teams[i].Members)
		list[i] = resp
	}

	c.JSON(http.StatusOK, dto.ListTeamsResponse{Teams: list})
}

// getTeamByID godoc
// @Summary Get a team
// @Description Retrieves one team of the caller's organization.
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} dto.TeamResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *teamHandler) getTeamByID(c *gin.Context) {
	organizationID, _, ok := callerScope(c)
	if !ok {
		return
	}

	team, err := h.teamService.GetTeamByID(c.Request.Context(), organizationID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve team")
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamResponse(team))
}

// updateTeam godoc
// @Summary Update a team
// @Description Applies a partial update over one team of the caller's organization.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param team body dto.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} dto.TeamResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *teamHandler) updateTeam(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	organizationID, userID, ok := callerScope(c)
	if !ok {
		return
	}

	var req dto.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateTeam", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	team, err := h.teamService.UpdateTeam(c.Request.Context(), organizationID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update team")
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamResponse(team))
}

// deleteTeam godoc
// @Summary Delete a team
// @Description Hard-deletes one team; its assignments are removed with it.
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *teamHandler) deleteTeam(c *gin.Context) {
	organizationID, userID, ok := callerScope(c)
	if !ok {
		return
	}

	if err := h.teamService.DeleteTeam(c.Request.Context(), organizationID, c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete team")
		return
	}

	c.Status(http.StatusNoContent)
}
