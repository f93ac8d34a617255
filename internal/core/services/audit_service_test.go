package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/hrkit/hrms_backend/internal/core/domain"
	portssvc "github.com/hrkit/hrms_backend/internal/core/ports/services"
	"github.com/hrkit/hrms_backend/internal/core/services"
)

type AuditServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAuditLogRepository
	service  portssvc.AuditSvcFacade

	orgID string
}

func (suite *AuditServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAuditLogRepository)
	suite.service = services.NewAuditService(suite.mockRepo)
	suite.orgID = uuid.NewString()
}

func (suite *AuditServiceTestSuite) TestListAuditLogs_DefaultsApplied() {
	ctx := context.Background()
	entries := []domain.AuditLog{{AuditLogID: uuid.NewString(), Action: domain.ActionUserLogin}}

	// Non-positive page and limit fall back to 1 and 50.
	suite.mockRepo.On("ListAuditLogs", ctx, suite.orgID, 50, 0).Return(entries, nil).Once()
	suite.mockRepo.On("CountAuditLogs", ctx, suite.orgID).Return(int64(1), nil).Once()

	page, err := suite.service.ListAuditLogs(ctx, suite.orgID, 0, -3)

	suite.Require().NoError(err)
	suite.Equal(1, page.Page)
	suite.Equal(50, page.Limit)
	suite.Equal(int64(1), page.Total)
	suite.Equal(1, page.TotalPages)
	suite.Len(page.Entries, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestListAuditLogs_OffsetAndTotalPages() {
	ctx := context.Background()

	// Page 3 at limit 10 starts at offset 20; 41 entries make 5 pages.
	suite.mockRepo.On("ListAuditLogs", ctx, suite.orgID, 10, 20).
		Return([]domain.AuditLog{}, nil).Once()
	suite.mockRepo.On("CountAuditLogs", ctx, suite.orgID).Return(int64(41), nil).Once()

	page, err := suite.service.ListAuditLogs(ctx, suite.orgID, 3, 10)

	suite.Require().NoError(err)
	suite.Equal(3, page.Page)
	suite.Equal(5, page.TotalPages)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestListAuditLogs_EmptyTrail() {
	ctx := context.Background()

	suite.mockRepo.On("ListAuditLogs", ctx, suite.orgID, 50, 0).
		Return([]domain.AuditLog{}, nil).Once()
	suite.mockRepo.On("CountAuditLogs", ctx, suite.orgID).Return(int64(0), nil).Once()

	page, err := suite.service.ListAuditLogs(ctx, suite.orgID, 1, 50)

	suite.Require().NoError(err)
	suite.Equal(int64(0), page.Total)
	suite.Equal(0, page.TotalPages)
	suite.Empty(page.Entries)
}

func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
