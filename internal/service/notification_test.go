package service_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"

	"projecthub-backend/internal/auth"
	apperrors "projecthub-backend/internal/errors"
	"projecthub-backend/internal/models"
	"projecthub-backend/internal/repository"
	"projecthub-backend/internal/service"
	"projecthub-backend/internal/store"
)

// NotificationServiceTestSuite tests the NotificationService over a seeded store
type NotificationServiceTestSuite struct {
	suite.Suite
	store               *store.Store
	notificationService *service.NotificationService
	session             *auth.Session
}

// SetupTest runs before each test
func (suite *NotificationServiceTestSuite) SetupTest() {
	s, err := store.Seed()
	suite.Require().NoError(err)
	suite.store = s
	suite.notificationService = service.NewNotificationService(
		repository.NewNotificationRepository(s),
		validator.New(),
		0,
	)

	david := *s.UserByID(2)
	suite.session = &auth.Session{ID: "test-session", UserID: 2, User: david}
}

// TestGetMyPaginated tests the inbox envelope
func (suite *NotificationServiceTestSuite) TestGetMyPaginated() {
	page, err := suite.notificationService.GetMy(suite.session, 1, 1, false)

	suite.Require().NoError(err)
	suite.Equal(2, page.Total)
	suite.Equal(2, page.TotalPages)
	suite.Require().Len(page.Data, 1)
	// Newest first: the project-updated entry leads
	suite.Equal(5, page.Data[0].ID)
}

// TestGetMyWithoutSession tests the empty envelope fallback
func (suite *NotificationServiceTestSuite) TestGetMyWithoutSession() {
	page, err := suite.notificationService.GetMy(nil, 1, 20, false)

	suite.Require().NoError(err)
	suite.Zero(page.Total)
	suite.NotNil(page.Data)
	suite.Empty(page.Data)
}

// TestGetUnread tests the unread filter through the facade
func (suite *NotificationServiceTestSuite) TestGetUnread() {
	unread, err := suite.notificationService.GetUnread(suite.session)
	suite.Require().NoError(err)
	suite.Len(unread, 1)

	unread, err = suite.notificationService.GetUnread(nil)
	suite.NoError(err)
	suite.Empty(unread)
	suite.NotNil(unread)
}

// TestGetCountsWithoutSession tests the zeroed summary fallback
func (suite *NotificationServiceTestSuite) TestGetCountsWithoutSession() {
	counts, err := suite.notificationService.GetCounts(nil)

	suite.Require().NoError(err)
	suite.Zero(counts.Total)
	suite.NotNil(counts.ByType)
}

// TestMarkAllReadWithoutSession tests that the bulk mutation needs a session
func (suite *NotificationServiceTestSuite) TestMarkAllReadWithoutSession() {
	_, err := suite.notificationService.MarkAllRead(nil)
	suite.ErrorIs(err, apperrors.ErrNoSession)
}

// TestMarkAllRead tests the affected count
func (suite *NotificationServiceTestSuite) TestMarkAllRead() {
	count, err := suite.notificationService.MarkAllRead(suite.session)
	suite.Require().NoError(err)
	suite.Equal(1, count)

	unread, err := suite.notificationService.GetUnread(suite.session)
	suite.Require().NoError(err)
	suite.Empty(unread)
}

// TestCreateValidation tests the request checks
func (suite *NotificationServiceTestSuite) TestCreateValidation() {
	_, err := suite.notificationService.Create(service.CreateNotificationRequest{
		UserID: 3,
		Type:   string(models.NotificationDeadlineReminder),
	})
	suite.True(apperrors.IsValidation(err))
}

// TestCreateBulk tests fan-out through the facade
func (suite *NotificationServiceTestSuite) TestCreateBulk() {
	count, err := suite.notificationService.CreateBulk(service.CreateBulkRequest{
		UserIDs: []int{1, 3, 4},
		Type:    string(models.NotificationDeadlineReminder),
		Title:   "Maintenance window",
		Message: "The dashboard goes read-only Saturday night.",
	})

	suite.Require().NoError(err)
	suite.Equal(3, count)

	sarah := *suite.store.UserByID(1)
	unread, err := suite.notificationService.GetUnread(&auth.Session{ID: "s", UserID: 1, User: sarah})
	suite.Require().NoError(err)
	suite.Len(unread, 1)
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
