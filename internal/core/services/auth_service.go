package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hrkit/hrms_backend/internal/apperrors"
	"github.com/hrkit/hrms_backend/internal/core/domain"
	portsrepo "github.com/hrkit/hrms_backend/internal/core/ports/repositories"
	portssvc "github.com/hrkit/hrms_backend/internal/core/ports/services"
	"github.com/hrkit/hrms_backend/internal/dto"
	"github.com/hrkit/hrms_backend/internal/platform/config"
	"github.com/hrkit/hrms_backend/internal/utils"
)

type authService struct {
	BaseService
	cfg       *config.Config
	orgRepo   portsrepo.OrganizationRepositoryFacade
	userRepo  portsrepo.UserReader
	auditRepo portsrepo.AuditLogWriter
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, orgRepo portsrepo.OrganizationRepositoryFacade, userRepo portsrepo.UserReader, auditRepo portsrepo.AuditLogWriter) portssvc.AuthSvcFacade {
	return &authService{
		cfg:       cfg,
		orgRepo:   orgRepo,
		userRepo:  userRepo,
		auditRepo: auditRepo,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates the organization and its first user in one transaction,
// together with the organization_created audit entry. Registration does not
// issue a token; the caller logs in afterwards.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Organization, *domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password during registration")
		return nil, nil, apperrors.NewAppError(500, "failed to process registration", err)
	}

	now := time.Now()
	org := domain.Organization{
		OrganizationID: uuid.NewString(),
		Name:           req.OrganizationName,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	owner := domain.User{
		UserID:         uuid.NewString(),
		Email:          req.Email,
		PasswordHash:   passwordHash,
		OrganizationID: org.OrganizationID,
		Timestamps:     domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	audit := domain.AuditLog{
		AuditLogID:     uuid.NewString(),
		Action:         domain.ActionOrganizationCreated,
		ResourceType:   "organization",
		ResourceID:     org.OrganizationID,
		OrganizationID: org.OrganizationID,
		UserID:         owner.UserID,
		Details: map[string]any{
			"organization_name": org.Name,
			"owner_email":       owner.Email,
		},
		CreatedAt: now,
	}

	if err := s.orgRepo.CreateOrganizationWithOwner(ctx, org, owner, audit); err != nil {
		s.LogError(ctx, err, "failed to register organization", slog.String("organization_name", req.OrganizationName))
		return nil, nil, err
	}

	s.LogInfo(ctx, "organization registered",
		slog.String("organization_id", org.OrganizationID),
		slog.String("user_id", owner.UserID))
	return &org, &owner, nil
}

// Login verifies the credential and issues a session token. An unknown email
// and a wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, *domain.Organization, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, nil, apperrors.ErrInvalidCredentials
		}
		s.LogError(ctx, err, "failed to look up user during login")
		return "", nil, nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, nil, apperrors.ErrInvalidCredentials
	}

	org, err := s.orgRepo.FindOrganizationByID(ctx, user.OrganizationID)
	if err != nil {
		s.LogError(ctx, err, "failed to resolve organization during login", slog.String("user_id", user.UserID))
		return "", nil, nil, err
	}

	token, err := utils.GenerateJWT(user.UserID, user.OrganizationID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "failed to sign session token", slog.String("user_id", user.UserID))
		return "", nil, nil, apperrors.NewAppError(500, "failed to issue session token", err)
	}

	audit := domain.AuditLog{
		AuditLogID:     uuid.NewString(),
		Action:         domain.ActionUserLogin,
		ResourceType:   "user",
		ResourceID:     user.UserID,
		OrganizationID: user.OrganizationID,
		UserID:         user.UserID,
		Details:        map[string]any{"email": user.Email},
		CreatedAt:      time.Now(),
	}
	// The login itself changed no other row, so the entry stands alone, but
	// it is still part of the operation: an unrecorded login is a failed one.
	if err := s.auditRepo.AppendAuditLog(ctx, audit); err != nil {
		s.LogError(ctx, err, "failed to append login audit entry", slog.String("user_id", user.UserID))
		return "", nil, nil, apperrors.NewAppError(500, "failed to record login", err)
	}

	return token, user, org, nil
}

// GetMe resolves the authenticated caller and their organization.
func (s *authService) GetMe(ctx context.Context, userID string) (*domain.User, *domain.Organization, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	org, err := s.orgRepo.FindOrganizationByID(ctx, user.OrganizationID)
	if err != nil {
		return nil, nil, err
	}
	return user, org, nil
}
