package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/hrkit/hrms_backend/internal/core/ports/services"
	"github.com/hrkit/hrms_backend/internal/dto"
	"github.com/hrkit/hrms_backend/internal/middleware"
	"github.com/hrkit/hrms_backend/internal/platform/config"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade) *AuthHandler {
	return &AuthHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := NewAuthHandler(authService)

	// Rate limit: 5 login attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/register", h.Register)
	}
}

// registerMeRoute sets up the authenticated identity route inside the v1 group.
func registerMeRoute(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := NewAuthHandler(authService)
	rg.GET("/auth/me", h.Me)
}

// Register godoc
// @Summary Register a new organization
// @Description Creates a new organization together with its first user account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	org, user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register organization")
		return
	}

	logger.Info("organization registered", slog.String("organization_id", org.OrganizationID))
	c.JSON(http.StatusCreated, dto.RegisterResponse{
		User:         dto.ToUserSummary(user),
		Organization: dto.ToOrganizationSummary(org),
	})
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a signed session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Too many attempts"
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, user, org, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:        token,
		User:         dto.ToUserSummary(user),
		Organization: dto.ToOrganizationSummary(org),
	})
}

// Me godoc
// @Summary Current caller identity
// @Description Returns the authenticated user and their organization.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, org, err := h.authService.GetMe(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to resolve caller")
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{
		User:         dto.ToUserSummary(user),
		Organization: dto.ToOrganizationSummary(org),
	})
}
