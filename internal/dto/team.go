package dto

import (
	"time"

	"github.com/hrkit/hrms_backend/internal/core/domain"
)

// --- Team DTOs ---

// CreateTeamRequest defines data for creating a new team.
type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateTeamRequest defines a partial update; nil fields are left untouched.
type UpdateTeamRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// TeamResponse defines data returned for a team. Members is populated by the
// team listing, which expands each team's membership.
type TeamResponse struct {
	TeamID      string             `json:"teamID"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Members     []EmployeeResponse `json:"members,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// ToTeamResponse converts domain.Team to DTO.
func ToTeamResponse(t *domain.Team) TeamResponse {
	return TeamResponse{
		TeamID:      t.TeamID,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTeamResponses converts a slice of domain.Team to DTOs.
func ToTeamResponses(ts []domain.Team) []TeamResponse {
	list := make([]TeamResponse, len(ts))
	for i := range ts {
		list[i] = ToTeamResponse(&ts[i])
	}
	return list
}

// ListTeamsResponse wraps a list of teams.
type ListTeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}
