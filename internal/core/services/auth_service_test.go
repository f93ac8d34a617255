package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hrkit/hrms_backend/internal/apperrors"
	"github.com/hrkit/hrms_backend/internal/core/domain"
	portssvc "github.com/hrkit/hrms_backend/internal/core/ports/services"
	"github.com/hrkit/hrms_backend/internal/core/services"
	"github.com/hrkit/hrms_backend/internal/dto"
	"github.com/hrkit/hrms_backend/internal/platform/config"
	"github.com/hrkit/hrms_backend/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockOrgRepo   *MockOrganizationRepository
	mockUserRepo  *MockUserRepository
	mockAuditRepo *MockAuditLogRepository
	cfg           *config.Config
	service       portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockAuditRepo = new(MockAuditLogRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "hrms-test",
	}
	suite.service = services.NewAuthService(suite.cfg, suite.mockOrgRepo, suite.mockUserRepo, suite.mockAuditRepo)
}

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		OrganizationName: "Acme Corp",
		Email:            "owner@acme.test",
		Password:         "s3cret-pw",
	}

	suite.mockOrgRepo.On("CreateOrganizationWithOwner", ctx,
		mock.MatchedBy(func(o domain.Organization) bool {
			return o.Name == req.OrganizationName && o.OrganizationID != ""
		}),
		mock.MatchedBy(func(u domain.User) bool {
			// The stored hash must verify against the original password and
			// never be the plaintext itself.
			return u.Email == req.Email &&
				u.PasswordHash != req.Password &&
				utils.CheckPasswordHash(req.Password, u.PasswordHash)
		}),
		mock.MatchedBy(func(a domain.AuditLog) bool {
			return a.Action == domain.ActionOrganizationCreated && a.ResourceType == "organization"
		}),
	).Return(nil).Once()

	org, user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(org)
	suite.Require().NotNil(user)
	suite.Equal(req.OrganizationName, org.Name)
	suite.Equal(org.OrganizationID, user.OrganizationID)
	suite.mockOrgRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		OrganizationName: "Acme Corp",
		Email:            "taken@acme.test",
		Password:         "s3cret-pw",
	}
	dupErr := apperrors.NewConflictError("email is already registered")

	suite.mockOrgRepo.On("CreateOrganizationWithOwner", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(dupErr).Once()

	org, user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(org)
	suite.Nil(user)
	suite.mockOrgRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	password := "correct-horse"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:         uuid.NewString(),
		Email:          "user@acme.test",
		PasswordHash:   hash,
		OrganizationID: uuid.NewString(),
	}
	org := &domain.Organization{OrganizationID: user.OrganizationID, Name: "Acme Corp"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockOrgRepo.On("FindOrganizationByID", ctx, user.OrganizationID).Return(org, nil).Once()
	suite.mockAuditRepo.On("AppendAuditLog", ctx, mock.MatchedBy(func(a domain.AuditLog) bool {
		return a.Action == domain.ActionUserLogin && a.UserID == user.UserID
	})).Return(nil).Once()

	token, gotUser, gotOrg, err := suite.service.Login(ctx, user.Email, password)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.Equal(user.UserID, gotUser.UserID)
	suite.Equal(org.OrganizationID, gotOrg.OrganizationID)

	// The token must round-trip and carry both identity claims.
	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.UserID)
	suite.Equal(user.OrganizationID, claims.OrganizationID)

	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@acme.test").
		Return(nil, apperrors.ErrNotFound).Once()

	token, user, org, err := suite.service.Login(ctx, "nobody@acme.test", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.Empty(token)
	suite.Nil(user)
	suite.Nil(org)
	suite.mockAuditRepo.AssertNotCalled(suite.T(), "AppendAuditLog", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the-real-password")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:         uuid.NewString(),
		Email:          "user@acme.test",
		PasswordHash:   hash,
		OrganizationID: uuid.NewString(),
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	token, gotUser, gotOrg, wrongErr := suite.service.Login(ctx, user.Email, "a-wrong-password")

	suite.Require().Error(wrongErr)
	suite.ErrorIs(wrongErr, apperrors.ErrInvalidCredentials)
	suite.Empty(token)
	suite.Nil(gotUser)
	suite.Nil(gotOrg)

	// Wrong password and unknown email must be the same error value.
	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@acme.test").
		Return(nil, apperrors.ErrNotFound).Once()
	_, _, _, unknownErr := suite.service.Login(ctx, "nobody@acme.test", "a-wrong-password")
	suite.Equal(wrongErr, unknownErr)

	suite.mockAuditRepo.AssertNotCalled(suite.T(), "AppendAuditLog", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_AuditFailureFailsLogin() {
	ctx := context.Background()
	password := "correct-horse"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:         uuid.NewString(),
		Email:          "user@acme.test",
		PasswordHash:   hash,
		OrganizationID: uuid.NewString(),
	}
	org := &domain.Organization{OrganizationID: user.OrganizationID, Name: "Acme Corp"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockOrgRepo.On("FindOrganizationByID", ctx, user.OrganizationID).Return(org, nil).Once()
	suite.mockAuditRepo.On("AppendAuditLog", ctx, mock.Anything).
		Return(apperrors.NewAppError(500, "audit store down", nil)).Once()

	// A login that cannot be recorded must not hand out a token.
	token, gotUser, gotOrg, err := suite.service.Login(ctx, user.Email, password)

	suite.Require().Error(err)
	suite.Empty(token)
	suite.Nil(gotUser)
	suite.Nil(gotOrg)
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestGetMe_Success() {
	ctx := context.Background()
	user := &domain.User{
		UserID:         uuid.NewString(),
		Email:          "user@acme.test",
		OrganizationID: uuid.NewString(),
	}
	org := &domain.Organization{OrganizationID: user.OrganizationID, Name: "Acme Corp"}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockOrgRepo.On("FindOrganizationByID", ctx, user.OrganizationID).Return(org, nil).Once()

	gotUser, gotOrg, err := suite.service.GetMe(ctx, user.UserID)

	suite.Require().NoError(err)
	suite.Equal(user, gotUser)
	suite.Equal(org, gotOrg)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
