package middleware

import "github.com/gin-gonic/gin"

// userIDKey and organizationIDKey carry the resolved identity of the caller,
// set by AuthMiddleware after the token has been verified.
const (
	userIDKey         = contextKey("userID")
	organizationIDKey = contextKey("organizationID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	v := c.Request.Context().Value(userIDKey)
	if v == nil {
		return "", false
	}
	userID, ok := v.(string)
	return userID, ok
}

// GetOrganizationIDFromContext retrieves the caller's organization ID from
// the Gin context. Every tenant-scoped query filters by this value.
func GetOrganizationIDFromContext(c *gin.Context) (string, bool) {
	v := c.Request.Context().Value(organizationIDKey)
	if v == nil {
		return "", false
	}
	orgID, ok := v.(string)
	return orgID, ok
}
