package dto

import (
	"github.com/hrkit/hrms_backend/internal/core/domain"
)

// --- Auth DTOs ---

// RegisterRequest defines data for registering an organization and its first user.
type RegisterRequest struct {
	OrganizationName string `json:"organizationName" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
}

// LoginRequest defines login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserSummary is the caller-facing projection of a user. The password hash is
// never serialized.
type UserSummary struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
}

// OrganizationSummary is the caller-facing projection of an organization.
type OrganizationSummary struct {
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
}

// RegisterResponse is returned after a successful registration. Registration
// deliberately does not auto-login, so no token is included.
type RegisterResponse struct {
	User         UserSummary         `json:"user"`
	Organization OrganizationSummary `json:"organization"`
}

// LoginResponse carries the session token and actor summaries.
type LoginResponse struct {
	Token        string              `json:"token"`
	User         UserSummary         `json:"user"`
	Organization OrganizationSummary `json:"organization"`
}

// MeResponse describes the authenticated caller.
type MeResponse struct {
	User         UserSummary         `json:"user"`
	Organization OrganizationSummary `json:"organization"`
}

// ToUserSummary converts domain.User to its summary DTO.
func ToUserSummary(u *domain.User) UserSummary {
	return UserSummary{UserID: u.UserID, Email: u.Email}
}

// ToOrganizationSummary converts domain.Organization to its summary DTO.
func ToOrganizationSummary(o *domain.Organization) OrganizationSummary {
	return OrganizationSummary{OrganizationID: o.OrganizationID, Name: o.Name}
}
