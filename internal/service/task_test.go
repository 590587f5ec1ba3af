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

// TaskServiceTestSuite tests the TaskService over a seeded store
type TaskServiceTestSuite struct {
	suite.Suite
	store         *store.Store
	taskService   *service.TaskService
	notifications *repository.NotificationRepository
	activities    *repository.ActivityRepository
	session       *auth.Session
}

// SetupTest runs before each test
func (suite *TaskServiceTestSuite) SetupTest() {
	s, err := store.Seed()
	suite.Require().NoError(err)
	suite.store = s
	suite.notifications = repository.NewNotificationRepository(s)
	suite.activities = repository.NewActivityRepository(s)
	suite.taskService = service.NewTaskService(
		repository.NewTaskRepository(s),
		suite.activities,
		suite.notifications,
		validator.New(),
		logger.New(),
		0,
	)

	// David Chen's session
	david := *s.UserByID(2)
	suite.session = &auth.Session{
		ID:     "test-session",
		UserID: david.ID,
		User:   david,
	}
}

func (suite *TaskServiceTestSuite) validCreateRequest() service.CreateTaskRequest {
	return service.CreateTaskRequest{
		Title:          "API rate limiting",
		Description:    "Throttle the public endpoints",
		Priority:       "High",
		DueDate:        time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EstimatedHours: 12,
		ProjectID:      1,
		AssignedToID:   3,
		Tags:           "backend",
	}
}

// TestCreateForcesInitialState tests that status and progress are not accepted
func (suite *TaskServiceTestSuite) TestCreateForcesInitialState() {
	task, err := suite.taskService.Create(suite.session, suite.validCreateRequest())

	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusToDo, task.Status)
	suite.Zero(task.Progress)
	suite.Zero(task.ActualHours)
}

// TestCreateEmitsActivityAndNotification tests the side effects of creation
func (suite *TaskServiceTestSuite) TestCreateEmitsActivityAndNotification() {
	unreadBefore := len(suite.notifications.GetByUser(3, true))

	task, err := suite.taskService.Create(suite.session, suite.validCreateRequest())
	suite.Require().NoError(err)

	recent := suite.activities.GetRecent(1, 0, 0)
	suite.Require().Len(recent, 1)
	suite.Equal(models.ActivityTaskCreated, recent[0].ActivityType)
	suite.Equal(task.ID, recent[0].EntityID)
	suite.Equal(2, recent[0].UserID)

	unread := suite.notifications.GetByUser(3, true)
	suite.Require().Len(unread, unreadBefore+1)
	suite.Equal(models.NotificationTaskAssigned, unread[0].Type)
}

// TestCreateSelfAssignedSkipsNotification tests that actors don't notify themselves
func (suite *TaskServiceTestSuite) TestCreateSelfAssignedSkipsNotification() {
	before := suite.notifications.Counts(2).Total

	req := suite.validCreateRequest()
	req.AssignedToID = 2
	_, err := suite.taskService.Create(suite.session, req)
	suite.Require().NoError(err)

	suite.Equal(before, suite.notifications.Counts(2).Total)
}

// TestCreateWithoutSession tests that attributed mutations require a session
func (suite *TaskServiceTestSuite) TestCreateWithoutSession() {
	_, err := suite.taskService.Create(nil, suite.validCreateRequest())
	suite.ErrorIs(err, apperrors.ErrNoSession)
}

// TestCreateValidation tests request validation
func (suite *TaskServiceTestSuite) TestCreateValidation() {
	req := suite.validCreateRequest()
	req.Title = ""
	_, err := suite.taskService.Create(suite.session, req)
	suite.True(apperrors.IsValidation(err))

	req = suite.validCreateRequest()
	req.EstimatedHours = -1
	_, err = suite.taskService.Create(suite.session, req)
	suite.True(apperrors.IsValidation(err))
}

// TestCreateUnknownProjectLeavesStoreUntouched tests referential integrity
// through the facade
func (suite *TaskServiceTestSuite) TestCreateUnknownProjectLeavesStoreUntouched() {
	all, err := suite.taskService.GetAll()
	suite.Require().NoError(err)
	before := len(all)

	req := suite.validCreateRequest()
	req.ProjectID = 999
	_, err = suite.taskService.Create(suite.session, req)
	suite.True(apperrors.IsInvalidReference(err))

	all, err = suite.taskService.GetAll()
	suite.Require().NoError(err)
	suite.Len(all, before)
}

// TestGetMyWithoutSession tests that "my" queries degrade to empty
func (suite *TaskServiceTestSuite) TestGetMyWithoutSession() {
	tasks, err := suite.taskService.GetMy(nil, "")
	suite.NoError(err)
	suite.Empty(tasks)
	suite.NotNil(tasks)
}

// TestGetMyFiltersByStatus tests the session-scoped status filter
func (suite *TaskServiceTestSuite) TestGetMyFiltersByStatus() {
	maria := *suite.store.UserByID(3)
	session := &auth.Session{ID: "s2", UserID: 3, User: maria}

	tasks, err := suite.taskService.GetMy(session, models.TaskStatusInProgress)
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Equal(2, tasks[0].ID)

	_, err = suite.taskService.GetMy(session, "NotAStatus")
	suite.True(apperrors.IsValidation(err))
}

// TestUpdateStatusToCompletedNotifiesManager tests the completion path
func (suite *TaskServiceTestSuite) TestUpdateStatusToCompletedNotifiesManager() {
	// Maria completes her in-progress task; David manages the project
	maria := *suite.store.UserByID(3)
	session := &auth.Session{ID: "s2", UserID: 3, User: maria}

	task, err := suite.taskService.UpdateStatus(session, 2, models.TaskStatusCompleted)
	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusCompleted, task.Status)

	recent := suite.activities.GetRecent(1, 0, 0)
	suite.Require().Len(recent, 1)
	suite.Equal(models.ActivityTaskCompleted, recent[0].ActivityType)
	suite.Contains(recent[0].OldValues, "InProgress")
	suite.Contains(recent[0].NewValues, "Completed")

	unread := suite.notifications.GetByUser(2, true)
	suite.Require().NotEmpty(unread)
	suite.Equal(models.NotificationTaskCompleted, unread[0].Type)
}

// TestUpdateStatusByManagerSkipsSelfNotification tests the actor==manager case
func (suite *TaskServiceTestSuite) TestUpdateStatusByManagerSkipsSelfNotification() {
	before := suite.notifications.Counts(2).Total

	_, err := suite.taskService.UpdateStatus(suite.session, 3, models.TaskStatusInProgress)
	suite.Require().NoError(err)

	suite.Equal(before, suite.notifications.Counts(2).Total)
}

// TestUpdateStatusUnchangedEmitsNothing tests that no-op transitions are quiet
func (suite *TaskServiceTestSuite) TestUpdateStatusUnchangedEmitsNothing() {
	activitiesBefore := suite.activities.Stats(0, 0).Total

	_, err := suite.taskService.UpdateStatus(suite.session, 3, models.TaskStatusToDo)
	suite.Require().NoError(err)

	suite.Equal(activitiesBefore, suite.activities.Stats(0, 0).Total)
}

// TestUpdateProgressBounds tests the progress range check
func (suite *TaskServiceTestSuite) TestUpdateProgressBounds() {
	_, err := suite.taskService.UpdateProgress(suite.session, 3, 101)
	suite.True(apperrors.IsValidation(err))

	_, err = suite.taskService.UpdateProgress(suite.session, 3, -1)
	suite.True(apperrors.IsValidation(err))

	task, err := suite.taskService.UpdateProgress(suite.session, 3, 40)
	suite.Require().NoError(err)
	suite.Equal(40, task.Progress)
}

// TestUpdateParentSemantics tests that nil keeps the parent and an explicit
// zero detaches it
func (suite *TaskServiceTestSuite) TestUpdateParentSemantics() {
	// Task 2 starts as a subtask of task 1
	title := "Implement login flow v2"
	task, err := suite.taskService.Update(suite.session, 2, service.UpdateTaskRequest{Title: &title})
	suite.Require().NoError(err)
	suite.Require().NotNil(task.ParentTaskID)
	suite.Equal(1, *task.ParentTaskID)

	detach := 0
	task, err = suite.taskService.Update(suite.session, 2, service.UpdateTaskRequest{ParentTaskID: &detach})
	suite.Require().NoError(err)
	suite.Nil(task.ParentTaskID)

	parent, err := suite.taskService.GetByID(1)
	suite.Require().NoError(err)
	suite.Empty(parent.SubTasks)
}

// TestAssignNotifiesNewAssignee tests reassignment side effects
func (suite *TaskServiceTestSuite) TestAssignNotifiesNewAssignee() {
	task, err := suite.taskService.Assign(suite.session, 3, 3)
	suite.Require().NoError(err)
	suite.Equal(3, task.AssignedToID)
	suite.Equal("Maria", task.AssignedTo.FirstName)

	unread := suite.notifications.GetByUser(3, true)
	suite.Require().NotEmpty(unread)
	suite.Equal(models.NotificationTaskAssigned, unread[0].Type)
}

// TestAddCommentAttributedToSessionUser tests that authorship cannot be forged
func (suite *TaskServiceTestSuite) TestAddCommentAttributedToSessionUser() {
	comment, err := suite.taskService.AddComment(suite.session, 3, service.AddCommentRequest{
		Content: "Let's scope this for next sprint.",
	})
	suite.Require().NoError(err)
	suite.Equal(2, comment.UserID)
	suite.Equal("David", comment.User.FirstName)

	// James, the assignee, hears about it
	unread := suite.notifications.GetByUser(4, true)
	suite.Require().NotEmpty(unread)
	suite.Equal(models.NotificationTaskCommentAdded, unread[0].Type)
}

// TestAddCommentWithoutSession tests the session requirement
func (suite *TaskServiceTestSuite) TestAddCommentWithoutSession() {
	_, err := suite.taskService.AddComment(nil, 3, service.AddCommentRequest{Content: "hi"})
	suite.ErrorIs(err, apperrors.ErrNoSession)
}

// TestGetDueSoonDefaultsWindow tests the default 7-day lookahead
func (suite *TaskServiceTestSuite) TestGetDueSoonDefaultsWindow() {
	defaulted, err := suite.taskService.GetDueSoon(0)
	suite.Require().NoError(err)
	week, err := suite.taskService.GetDueSoon(7)
	suite.Require().NoError(err)
	suite.Equal(week, defaulted)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
