package service_test

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"

	"projecthub-backend/internal/auth"
	apperrors "projecthub-backend/internal/errors"
	"projecthub-backend/internal/logger"
	"projecthub-backend/internal/models"
	"projecthub-backend/internal/repository"
	"projecthub-backend/internal/service"
	"projecthub-backend/internal/store"
)

// ProjectServiceTestSuite tests the ProjectService over a seeded store
type ProjectServiceTestSuite struct {
	suite.Suite
	store          *store.Store
	projectService *service.ProjectService
	notifications  *repository.NotificationRepository
	activities     *repository.ActivityRepository
	session        *auth.Session
}

// SetupTest runs before each test
func (suite *ProjectServiceTestSuite) SetupTest() {
	s, err := store.Seed()
	suite.Require().NoError(err)
	suite.store = s
	suite.notifications = repository.NewNotificationRepository(s)
	suite.activities = repository.NewActivityRepository(s)
	suite.projectService = service.NewProjectService(
		repository.NewProjectRepository(s),
		suite.activities,
		suite.notifications,
		validator.New(),
		logger.New(),
		0,
	)

	sarah := *s.UserByID(1)
	suite.session = &auth.Session{
		ID:     "test-session",
		UserID: sarah.ID,
		User:   sarah,
	}
}

func (suite *ProjectServiceTestSuite) validCreateRequest() service.CreateProjectRequest {
	return service.CreateProjectRequest{
		Name:             "Partner API",
		Description:      "Public integration surface for partners",
		StartDate:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2027, 2, 28, 0, 0, 0, 0, time.UTC),
		Budget:           60000,
		ProjectManagerID: 2,
	}
}

// TestCreateForcesPlanningAndDefaults tests that status, cost and color are
// not taken from the request
func (suite *ProjectServiceTestSuite) TestCreateForcesPlanningAndDefaults() {
	project, err := suite.projectService.Create(suite.session, suite.validCreateRequest())

	suite.Require().NoError(err)
	suite.Equal(models.ProjectStatusPlanning, project.Status)
	suite.Zero(project.ActualCost)
	suite.Equal("#3B82F6", project.Color)
	suite.Equal(models.PriorityMedium, project.Priority)
	suite.Equal("David", project.ProjectManager.FirstName)
}

// TestCreateRecordsActivity tests the feed entry emitted on creation
func (suite *ProjectServiceTestSuite) TestCreateRecordsActivity() {
	project, err := suite.projectService.Create(suite.session, suite.validCreateRequest())
	suite.Require().NoError(err)

	recent := suite.activities.GetRecent(1, 0, 0)
	suite.Require().Len(recent, 1)
	suite.Equal(models.ActivityProjectCreated, recent[0].ActivityType)
	suite.Equal(project.ID, recent[0].ProjectID)
	suite.Equal(1, recent[0].UserID)
	suite.Contains(recent[0].Description, "Sarah Mitchell")
}

// TestCreateWithoutSession tests the session requirement
func (suite *ProjectServiceTestSuite) TestCreateWithoutSession() {
	_, err := suite.projectService.Create(nil, suite.validCreateRequest())
	suite.ErrorIs(err, apperrors.ErrNoSession)
}

// TestCreateValidation tests request validation including the color format
func (suite *ProjectServiceTestSuite) TestCreateValidation() {
	req := suite.validCreateRequest()
	req.Name = ""
	_, err := suite.projectService.Create(suite.session, req)
	suite.True(apperrors.IsValidation(err))

	req = suite.validCreateRequest()
	req.Color = "blue"
	_, err = suite.projectService.Create(suite.session, req)
	suite.True(apperrors.IsValidation(err))
}

// TestGetMyWithoutSession tests that "my" queries degrade to empty
func (suite *ProjectServiceTestSuite) TestGetMyWithoutSession() {
	projects, err := suite.projectService.GetMy(nil)
	suite.NoError(err)
	suite.Empty(projects)
	suite.NotNil(projects)
}

// TestGetMy tests the manager-or-member view
func (suite *ProjectServiceTestSuite) TestGetMy() {
	david := *suite.store.UserByID(2)
	session := &auth.Session{ID: "s2", UserID: 2, User: david}

	projects, err := suite.projectService.GetMy(session)
	suite.Require().NoError(err)
	suite.Len(projects, 2)
}

// TestGetByStatusRejectsUnknown tests the status guard
func (suite *ProjectServiceTestSuite) TestGetByStatusRejectsUnknown() {
	_, err := suite.projectService.GetByStatus("Paused")
	suite.True(apperrors.IsValidation(err))

	projects, err := suite.projectService.GetByStatus(models.ProjectStatusCompleted)
	suite.Require().NoError(err)
	suite.Len(projects, 1)
}

// TestUpdateRecordsOldAndNewValues tests the audit payload on update
func (suite *ProjectServiceTestSuite) TestUpdateRecordsOldAndNewValues() {
	status := "OnHold"
	_, err := suite.projectService.Update(suite.session, 2, service.UpdateProjectRequest{Status: &status})
	suite.Require().NoError(err)

	recent := suite.activities.GetRecent(1, 0, 0)
	suite.Require().Len(recent, 1)
	suite.Equal(models.ActivityProjectUpdated, recent[0].ActivityType)
	suite.Contains(recent[0].OldValues, "InProgress")
	suite.Contains(recent[0].NewValues, "OnHold")
}

// TestUpdateNotifiesManager tests that the manager hears about changes made
// by someone else, and only by someone else
func (suite *ProjectServiceTestSuite) TestUpdateNotifiesManager() {
	name := "Mobile App GA"
	_, err := suite.projectService.Update(suite.session, 2, service.UpdateProjectRequest{Name: &name})
	suite.Require().NoError(err)

	unread := suite.notifications.GetByUser(2, true)
	suite.Require().NotEmpty(unread)
	suite.Equal(models.NotificationProjectUpdated, unread[0].Type)

	// The manager updating their own project stays quiet
	david := *suite.store.UserByID(2)
	before := suite.notifications.Counts(2).Total
	_, err = suite.projectService.Update(&auth.Session{ID: "s2", UserID: 2, User: david}, 2, service.UpdateProjectRequest{Name: &name})
	suite.Require().NoError(err)
	suite.Equal(before, suite.notifications.Counts(2).Total)
}

// TestUpdateWithoutSession tests the session requirement
func (suite *ProjectServiceTestSuite) TestUpdateWithoutSession() {
	name := "x"
	_, err := suite.projectService.Update(nil, 1, service.UpdateProjectRequest{Name: &name})
	suite.ErrorIs(err, apperrors.ErrNoSession)
}

// TestDelete tests the cascade through the facade
func (suite *ProjectServiceTestSuite) TestDelete() {
	suite.ErrorIs(suite.projectService.Delete(nil, 1), apperrors.ErrNoSession)

	err := suite.projectService.Delete(suite.session, 1)
	suite.Require().NoError(err)

	_, err = suite.projectService.GetByID(1)
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

// TestAddMemberNotifiesUser tests the welcome notification and feed entry
func (suite *ProjectServiceTestSuite) TestAddMemberNotifiesUser() {
	member, err := suite.projectService.AddMember(suite.session, 2, service.AddMemberRequest{
		UserID: 4,
		Role:   "QA",
	})
	suite.Require().NoError(err)
	suite.Equal(models.MemberRoleQA, member.Role)
	suite.True(member.IsActive)

	unread := suite.notifications.GetByUser(4, true)
	suite.Require().NotEmpty(unread)
	suite.Equal(models.NotificationProjectMemberAdded, unread[0].Type)

	recent := suite.activities.GetRecent(1, 0, 0)
	suite.Require().Len(recent, 1)
	suite.Equal(models.ActivityMemberAdded, recent[0].ActivityType)
}

// TestAddMemberRejectsUnknownRole tests role validation before any write
func (suite *ProjectServiceTestSuite) TestAddMemberRejectsUnknownRole() {
	_, err := suite.projectService.AddMember(suite.session, 2, service.AddMemberRequest{
		UserID: 4,
		Role:   "Intern",
	})
	suite.True(apperrors.IsValidation(err))
}

// TestRemoveMember tests removal and its feed entry
func (suite *ProjectServiceTestSuite) TestRemoveMember() {
	err := suite.projectService.RemoveMember(suite.session, 1, 4)
	suite.Require().NoError(err)

	recent := suite.activities.GetRecent(1, 0, 0)
	suite.Require().Len(recent, 1)
	suite.Equal(models.ActivityMemberRemoved, recent[0].ActivityType)

	err = suite.projectService.RemoveMember(suite.session, 1, 4)
	suite.ErrorIs(err, apperrors.ErrMemberNotFound)
}

// TestUpdateMemberRoleRejectsUnknownRole tests the role guard
func (suite *ProjectServiceTestSuite) TestUpdateMemberRoleRejectsUnknownRole() {
	_, err := suite.projectService.UpdateMemberRole(suite.session, 1, 3, "Stakeholder")
	suite.True(apperrors.IsValidation(err))

	member, err := suite.projectService.UpdateMemberRole(suite.session, 1, 3, models.MemberRoleDesigner)
	suite.Require().NoError(err)
	suite.Equal(models.MemberRoleDesigner, member.Role)
}

// TestUpdateMemberRoleRequiresSessionAndRecords tests that the role change is
// attributed like the other member mutations
func (suite *ProjectServiceTestSuite) TestUpdateMemberRoleRequiresSessionAndRecords() {
	_, err := suite.projectService.UpdateMemberRole(nil, 1, 3, models.MemberRoleDesigner)
	suite.ErrorIs(err, apperrors.ErrNoSession)

	_, err = suite.projectService.UpdateMemberRole(suite.session, 1, 3, models.MemberRoleDesigner)
	suite.Require().NoError(err)

	recent := suite.activities.GetRecent(1, 0, 0)
	suite.Require().Len(recent, 1)
	suite.Equal(models.ActivityProjectUpdated, recent[0].ActivityType)
	suite.Equal(1, recent[0].UserID)
	suite.Contains(recent[0].Description, "Maria Lopez")
	suite.Contains(recent[0].Description, "Designer")
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
