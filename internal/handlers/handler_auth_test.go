package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hrkit/hrms_backend/internal/apperrors"
	"github.com/hrkit/hrms_backend/internal/core/domain"
	portssvc "github.com/hrkit/hrms_backend/internal/core/ports/services"
	"github.com/hrkit/hrms_backend/internal/dto"
	"github.com/hrkit/hrms_backend/internal/handlers"
	"github.com/hrkit/hrms_backend/internal/platform/config"
)

// --- Mock AuthService ---

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Organization, *domain.User, error) {
	args := m.Called(ctx, req)
	var org *domain.Organization
	var user *domain.User
	if args.Get(0) != nil {
		org = args.Get(0).(*domain.Organization)
	}
	if args.Get(1) != nil {
		user = args.Get(1).(*domain.User)
	}
	return org, user, args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, *domain.Organization, error) {
	args := m.Called(ctx, email, password)
	var user *domain.User
	var org *domain.Organization
	if args.Get(1) != nil {
		user = args.Get(1).(*domain.User)
	}
	if args.Get(2) != nil {
		org = args.Get(2).(*domain.Organization)
	}
	return args.String(0), user, org, args.Error(3)
}

func (m *MockAuthService) GetMe(ctx context.Context, userID string) (*domain.User, *domain.Organization, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	var org *domain.Organization
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	if args.Get(1) != nil {
		org = args.Get(1).(*domain.Organization)
	}
	return user, org, args.Error(2)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Test Suite ---

type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockAuthService *MockAuthService
	mockUserService *MockUserService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	cfg := &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "hrms-test",
		IsProduction:      true,
	}

	suite.mockAuthService = new(MockAuthService)
	suite.mockUserService = new(MockUserService)

	services := &portssvc.ServiceContainer{
		Auth: suite.mockAuthService,
		User: suite.mockUserService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *AuthHandlerTestSuite) postJSON(url string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.1:1234"
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	req := dto.RegisterRequest{
		OrganizationName: "Acme Corp",
		Email:            "owner@acme.test",
		Password:         "s3cret-pw",
	}
	org := &domain.Organization{OrganizationID: uuid.NewString(), Name: req.OrganizationName}
	user := &domain.User{UserID: uuid.NewString(), Email: req.Email, OrganizationID: org.OrganizationID}

	suite.mockAuthService.On("Register", mock.Anything, req).Return(org, user, nil).Once()

	w := suite.postJSON("/api/v1/auth/register", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.RegisterResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(user.UserID, resp.User.UserID)
	suite.Equal(org.OrganizationID, resp.Organization.OrganizationID)
	// No token on registration.
	suite.NotContains(w.Body.String(), "token")
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateEmail() {
	req := dto.RegisterRequest{
		OrganizationName: "Acme Corp",
		Email:            "taken@acme.test",
		Password:         "s3cret-pw",
	}

	suite.mockAuthService.On("Register", mock.Anything, req).
		Return(nil, nil, apperrors.NewConflictError("email is already registered")).Once()

	w := suite.postJSON("/api/v1/auth/register", req)

	suite.Equal(http.StatusConflict, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("email is already registered", resp.Error)
}

func (suite *AuthHandlerTestSuite) TestRegister_ShortPassword() {
	w := suite.postJSON("/api/v1/auth/register", dto.RegisterRequest{
		OrganizationName: "Acme Corp",
		Email:            "owner@acme.test",
		Password:         "short",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAuthService.AssertNotCalled(suite.T(), "Register", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	req := dto.LoginRequest{Email: "user@acme.test", Password: "s3cret-pw"}
	org := &domain.Organization{OrganizationID: uuid.NewString(), Name: "Acme Corp"}
	user := &domain.User{UserID: uuid.NewString(), Email: req.Email, OrganizationID: org.OrganizationID}

	suite.mockAuthService.On("Login", mock.Anything, req.Email, req.Password).
		Return("signed-token", user, org, nil).Once()

	w := suite.postJSON("/api/v1/auth/login", req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-token", resp.Token)
	suite.Equal(user.UserID, resp.User.UserID)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	req := dto.LoginRequest{Email: "user@acme.test", Password: "wrong"}

	suite.mockAuthService.On("Login", mock.Anything, req.Email, req.Password).
		Return("", nil, nil, apperrors.ErrInvalidCredentials).Once()

	w := suite.postJSON("/api/v1/auth/login", req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Invalid email or password", resp.Error)
}

func (suite *AuthHandlerTestSuite) TestLogin_RateLimited() {
	req := dto.LoginRequest{Email: "user@acme.test", Password: "wrong"}

	suite.mockAuthService.On("Login", mock.Anything, req.Email, req.Password).
		Return("", nil, nil, apperrors.ErrInvalidCredentials).Times(5)

	// The sixth attempt within the window is cut off before the handler.
	for i := 0; i < 5; i++ {
		w := suite.postJSON("/api/v1/auth/login", req)
		suite.Equal(http.StatusUnauthorized, w.Code)
	}
	w := suite.postJSON("/api/v1/auth/login", req)
	suite.Equal(http.StatusTooManyRequests, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
