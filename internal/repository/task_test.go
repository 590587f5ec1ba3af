package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	apperrors "projecthub-backend/internal/errors"
	"projecthub-backend/internal/models"
	"projecthub-backend/internal/store"
	"projecthub-backend/internal/testutils"
)

// TaskRepositoryTestSuite tests the TaskRepository against a seeded store
type TaskRepositoryTestSuite struct {
	suite.Suite
	store     *store.Store
	repo      *TaskRepository
	factories *testutils.FactorySet
}

// SetupTest runs before each test
func (suite *TaskRepositoryTestSuite) SetupTest() {
	s, err := store.Seed()
	suite.Require().NoError(err)
	suite.store = s
	suite.repo = NewTaskRepository(s)
	suite.factories = testutils.NewFactorySet()
}

// TestGetByIDPopulatesSubtasksAndComments tests the joined detail read
func (suite *TaskRepositoryTestSuite) TestGetByIDPopulatesSubtasksAndComments() {
	task, err := suite.repo.GetByID(1)
	suite.Require().NoError(err)

	suite.Require().Len(task.SubTasks, 1)
	suite.Equal(2, task.SubTasks[0].ID)

	task, err = suite.repo.GetByID(2)
	suite.Require().NoError(err)
	// Comment 2 is a reply to comment 1, so the thread has a single root
	suite.Require().Len(task.Comments, 1)
	suite.Equal(1, task.Comments[0].ID)
	suite.Require().Len(task.Comments[0].Replies, 1)
	suite.Equal(2, task.Comments[0].Replies[0].ID)
}

// TestCreateResolvesSnapshots tests that references become embedded snapshots
func (suite *TaskRepositoryTestSuite) TestCreateResolvesSnapshots() {
	task := suite.factories.Task.Create(2, 4)
	err := suite.repo.Create(task)

	suite.Require().NoError(err)
	suite.Equal(9, task.ID)
	suite.Require().NotNil(task.Project)
	suite.Equal("Mobile App Beta", task.Project.Name)
	suite.Nil(task.Project.Tasks)
	suite.Equal("James", task.AssignedTo.FirstName)
}

// TestCreateUnknownAssigneeLeavesStoreUntouched tests referential integrity
func (suite *TaskRepositoryTestSuite) TestCreateUnknownAssigneeLeavesStoreUntouched() {
	before := len(suite.repo.GetAll())

	task := suite.factories.Task.Create(1, 999)
	err := suite.repo.Create(task)

	suite.True(apperrors.IsInvalidReference(err))
	suite.Len(suite.repo.GetAll(), before)

	// The next assignment continues the sequence; nothing was burned
	ok := suite.factories.Task.Create(1, 3)
	suite.Require().NoError(suite.repo.Create(ok))
	suite.Equal(before+1, ok.ID)
}

// TestCreateUnknownParent tests the parent reference check
func (suite *TaskRepositoryTestSuite) TestCreateUnknownParent() {
	task := suite.factories.Task.WithParent(1, 3, 999)
	err := suite.repo.Create(task)
	suite.True(apperrors.IsInvalidReference(err))
}

// TestUpdateRejectsSelfParent tests the trivial cycle
func (suite *TaskRepositoryTestSuite) TestUpdateRejectsSelfParent() {
	task, err := suite.repo.GetByID(3)
	suite.Require().NoError(err)

	id := task.ID
	task.ParentTaskID = &id
	err = suite.repo.Update(*task)

	suite.ErrorIs(err, apperrors.ErrParentTaskCycle)
}

// TestUpdateRejectsDescendantParent tests cycles through the subtask tree
func (suite *TaskRepositoryTestSuite) TestUpdateRejectsDescendantParent() {
	// Task 2 is a child of task 1; making task 2 the parent of task 1
	// would close the loop
	task, err := suite.repo.GetByID(1)
	suite.Require().NoError(err)

	parent := 2
	task.ParentTaskID = &parent
	err = suite.repo.Update(*task)

	suite.ErrorIs(err, apperrors.ErrParentTaskCycle)
}

// TestUpdateAllowsValidReparent tests a legal parent change
func (suite *TaskRepositoryTestSuite) TestUpdateAllowsValidReparent() {
	task, err := suite.repo.GetByID(3)
	suite.Require().NoError(err)

	parent := 1
	task.ParentTaskID = &parent
	err = suite.repo.Update(*task)
	suite.NoError(err)

	root, err := suite.repo.GetByID(1)
	suite.Require().NoError(err)
	suite.Len(root.SubTasks, 2)
}

// TestDeleteRemovesSubtreeAndComments tests the cascade on delete
func (suite *TaskRepositoryTestSuite) TestDeleteRemovesSubtreeAndComments() {
	// Grandchild under task 2 to exercise the closure
	grandchild := suite.factories.Task.WithParent(1, 3, 2)
	suite.Require().NoError(suite.repo.Create(grandchild))

	err := suite.repo.Delete(1)
	suite.Require().NoError(err)

	for _, id := range []int{1, 2, grandchild.ID} {
		_, err := suite.repo.GetByID(id)
		suite.ErrorIs(err, apperrors.ErrTaskNotFound, "task %d should be gone", id)
	}

	suite.store.RLock()
	defer suite.store.RUnlock()
	for _, c := range suite.store.Comments {
		suite.NotEqual(2, c.TaskID)
	}
	// Comments on unrelated tasks survive
	suite.Len(suite.store.Comments, 2)
}

// TestGetOverdue tests the overdue predicate at a fixed clock
func (suite *TaskRepositoryTestSuite) TestGetOverdue() {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	overdue := suite.repo.GetOverdue(now)

	// Only the blocked push notification task: completed tasks never count
	suite.Require().Len(overdue, 1)
	suite.Equal(4, overdue[0].ID)
}

// TestGetDueSoon tests the lookahead window
func (suite *TaskRepositoryTestSuite) TestGetDueSoon() {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	// Within a week: only the beta invite emails (due 9/05)
	tasks := suite.repo.GetDueSoon(now, 7)
	suite.Require().Len(tasks, 1)
	suite.Equal(5, tasks[0].ID)

	// A month out picks up the login flow and crash reporting work too;
	// the already-overdue blocked task stays excluded
	tasks = suite.repo.GetDueSoon(now, 30)
	suite.Len(tasks, 3)
}

// TestStatusCounts tests per-project scoping with all statuses present
func (suite *TaskRepositoryTestSuite) TestStatusCounts() {
	counts := suite.repo.StatusCounts(0)
	suite.Len(counts, len(models.TaskStatuses))
	suite.Equal(3, counts[models.TaskStatusCompleted])

	counts = suite.repo.StatusCounts(2)
	suite.Equal(1, counts[models.TaskStatusBlocked])
	suite.Equal(1, counts[models.TaskStatusReview])
	suite.Equal(0, counts[models.TaskStatusCompleted])
}

// TestSearch tests matching over title, description and tags
func (suite *TaskRepositoryTestSuite) TestSearch() {
	byTitle := suite.repo.Search("LOGIN", 0)
	suite.Len(byTitle, 2)

	byTag := suite.repo.Search("billing", 0)
	suite.Len(byTag, 2)

	scoped := suite.repo.Search("login", 2)
	suite.Empty(scoped)
}

// TestGetByAssignee tests the optional status filter
func (suite *TaskRepositoryTestSuite) TestGetByAssignee() {
	all := suite.repo.GetByAssignee(3, "")
	suite.Len(all, 3)

	completed := suite.repo.GetByAssignee(3, models.TaskStatusCompleted)
	suite.Require().Len(completed, 1)
	suite.Equal(1, completed[0].ID)
}

// TestAddComment tests author resolution and parent validation
func (suite *TaskRepositoryTestSuite) TestAddComment() {
	c := &models.TaskComment{TaskID: 3, UserID: 2, Content: "Scope confirmed."}
	err := suite.repo.AddComment(c)
	suite.Require().NoError(err)
	suite.Equal(5, c.ID)
	suite.Equal("David", c.User.FirstName)

	// Replies must target a comment on the same task
	other := 1 // comment 1 lives on task 2
	bad := &models.TaskComment{TaskID: 3, UserID: 2, Content: "reply", ParentCommentID: &other}
	err = suite.repo.AddComment(bad)
	suite.True(apperrors.IsInvalidReference(err))
}

func TestTaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryTestSuite))
}
