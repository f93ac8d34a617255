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
	"github.com/hrkit/hrms_backend/internal/utils"
)

// --- Mock UserService (consumed by the auth middleware) ---

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock EmployeeService ---

type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) GetEmployeeByID(ctx context.Context, organizationID, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, organizationID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context, organizationID string) ([]domain.Employee, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, organizationID string, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, organizationID, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error) {
	args := m.Called(ctx, organizationID, employeeID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, organizationID, employeeID, userID string) error {
	args := m.Called(ctx, organizationID, employeeID, userID)
	return args.Error(0)
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Test Suite ---

type EmployeeHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	cfg                 *config.Config
	mockUserService     *MockUserService
	mockEmployeeService *MockEmployeeService

	orgID  string
	userID string
}

func (suite *EmployeeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	// IsProduction skips the swagger routes in tests.
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "hrms-test",
		IsProduction:      true,
	}

	suite.mockUserService = new(MockUserService)
	suite.mockEmployeeService = new(MockEmployeeService)
	suite.orgID = uuid.NewString()
	suite.userID = uuid.NewString()

	services := &portssvc.ServiceContainer{
		User:     suite.mockUserService,
		Employee: suite.mockEmployeeService,
	}
	handlers.RegisterRoutes(suite.router, suite.cfg, services)
}

// authedRequest builds a request carrying a valid session token whose subject
// resolves through the mock user service.
func (suite *EmployeeHandlerTestSuite) authedRequest(method, url string, body []byte) *http.Request {
	token, err := utils.GenerateJWT(suite.userID, suite.orgID, suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	suite.mockUserService.On("GetUserByID", mock.Anything, suite.userID).
		Return(&domain.User{UserID: suite.userID, OrganizationID: suite.orgID}, nil).Once()

	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func (suite *EmployeeHandlerTestSuite) TestListEmployees_Success() {
	employees := []domain.Employee{
		{EmployeeID: uuid.NewString(), FirstName: "Ada", LastName: "Lovelace", OrganizationID: suite.orgID},
	}
	suite.mockEmployeeService.On("ListEmployees", mock.Anything, suite.orgID).
		Return(employees, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/employees", nil))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListEmployeesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Employees, 1)
	suite.Equal("Ada", resp.Employees[0].FirstName)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestCreateEmployee_Success() {
	reqBody := dto.CreateEmployeeRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@acme.test",
	}
	created := &domain.Employee{
		EmployeeID:     uuid.NewString(),
		FirstName:      reqBody.FirstName,
		LastName:       reqBody.LastName,
		Email:          reqBody.Email,
		OrganizationID: suite.orgID,
	}

	suite.mockEmployeeService.On("CreateEmployee", mock.Anything, suite.orgID, reqBody, suite.userID).
		Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/employees", body))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.EmployeeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.EmployeeID, resp.EmployeeID)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestCreateEmployee_MissingRequiredField() {
	// Email is required; binding must reject before the service is reached.
	body := []byte(`{"firstName":"Grace","lastName":"Hopper"}`)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/employees", body))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEmployeeService.AssertNotCalled(suite.T(), "CreateEmployee", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EmployeeHandlerTestSuite) TestGetEmployee_NotFound() {
	employeeID := uuid.NewString()
	suite.mockEmployeeService.On("GetEmployeeByID", mock.Anything, suite.orgID, employeeID).
		Return(nil, apperrors.NewNotFoundError("employee not found")).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/employees/"+employeeID, nil))

	suite.Equal(http.StatusNotFound, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("employee not found", resp.Error)
}

func (suite *EmployeeHandlerTestSuite) TestDeleteEmployee_Success() {
	employeeID := uuid.NewString()
	suite.mockEmployeeService.On("DeleteEmployee", mock.Anything, suite.orgID, employeeID, suite.userID).
		Return(nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodDelete, "/api/v1/employees/"+employeeID, nil))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestListEmployees_NoToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockEmployeeService.AssertNotCalled(suite.T(), "ListEmployees", mock.Anything, mock.Anything)
}

func (suite *EmployeeHandlerTestSuite) TestListEmployees_DeletedUserTokenRejected() {
	token, err := utils.GenerateJWT(suite.userID, suite.orgID, suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)

	// The token is valid but its subject no longer exists.
	suite.mockUserService.On("GetUserByID", mock.Anything, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockEmployeeService.AssertNotCalled(suite.T(), "ListEmployees", mock.Anything, mock.Anything)
}

func TestEmployeeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeHandlerTestSuite))
}
