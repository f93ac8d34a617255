package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/hrkit/hrms_backend/internal/apperrors"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps an application error onto the matching HTTP status,
// keeping the service-layer message. Unrecognized errors collapse into a
// generic 500 so internal details never leak to the caller.
func respondError(c *gin.Context, err error, fallback string) {
	var appErr *apperrors.AppError

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, jwt.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrNotFound):
		msg := "Resource not found"
		if errors.As(err, &appErr) && appErr.Message != "" {
			msg = appErr.Message
		}
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msg})
	case errors.Is(err, apperrors.ErrDuplicate):
		msg := "Resource already exists"
		if errors.As(err, &appErr) && appErr.Message != "" {
			msg = appErr.Message
		}
		c.JSON(http.StatusConflict, ErrorResponse{Error: msg})
	case errors.Is(err, apperrors.ErrValidation):
		msg := "Validation failed"
		if errors.As(err, &appErr) && appErr.Message != "" {
			msg = appErr.Message
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
