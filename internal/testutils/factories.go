package testutils

import (
	"fmt"
	"time"

	"projecthub-backend/internal/models"
)

// Factories hand out entities with sensible defaults for store-backed tests.
// Ids are left zero; repositories assign them on create.

// UserFactory provides methods to create test User data
type UserFactory struct {
	seq int
}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique email
func (f *UserFactory) Create() *models.User {
	f.seq++
	return &models.User{
		FirstName:   "Test",
		LastName:    fmt.Sprintf("User%d", f.seq),
		Email:       fmt.Sprintf("test.user%d@projecthub.dev", f.seq),
		PhoneNumber: "+1-555-0199",
		Role:        models.RoleTeamMember,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	u := f.Create()
	u.Email = email
	return u
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	u := f.Create()
	u.Role = role
	return u
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct {
	seq int
}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project managed by the given user
func (f *ProjectFactory) Create(managerID int) *models.Project {
	f.seq++
	now := time.Now()
	return &models.Project{
		Name:             fmt.Sprintf("Test Project %d", f.seq),
		Description:      "A test project",
		StartDate:        now,
		EndDate:          now.AddDate(0, 6, 0),
		Status:           models.ProjectStatusPlanning,
		Budget:           10000,
		Color:            "#3B82F6",
		Priority:         models.PriorityMedium,
		ProjectManagerID: managerID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// WithEndDate sets a custom end date for the project
func (f *ProjectFactory) WithEndDate(managerID int, end time.Time) *models.Project {
	p := f.Create(managerID)
	p.EndDate = end
	return p
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct {
	seq int
}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task in the given project assigned to the given user
func (f *TaskFactory) Create(projectID, assigneeID int) *models.Task {
	f.seq++
	now := time.Now()
	return &models.Task{
		Title:          fmt.Sprintf("Test Task %d", f.seq),
		Description:    "A test task",
		Priority:       models.PriorityMedium,
		Status:         models.TaskStatusToDo,
		DueDate:        now.AddDate(0, 1, 0),
		EstimatedHours: 8,
		ProjectID:      projectID,
		AssignedToID:   assigneeID,
		Tags:           "test",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// WithDueDate sets a custom due date for the task
func (f *TaskFactory) WithDueDate(projectID, assigneeID int, due time.Time) *models.Task {
	t := f.Create(projectID, assigneeID)
	t.DueDate = due
	return t
}

// WithParent sets a parent task id for the task
func (f *TaskFactory) WithParent(projectID, assigneeID, parentID int) *models.Task {
	t := f.Create(projectID, assigneeID)
	t.ParentTaskID = &parentID
	return t
}

// NotificationFactory provides methods to create test Notification data
type NotificationFactory struct {
	seq int
}

// NewNotificationFactory creates a new NotificationFactory
func NewNotificationFactory() *NotificationFactory {
	return &NotificationFactory{}
}

// Create creates a test Notification for the given user
func (f *NotificationFactory) Create(userID int) *models.Notification {
	f.seq++
	return &models.Notification{
		UserID:            userID,
		Type:              models.NotificationTaskAssigned,
		Title:             fmt.Sprintf("Test notification %d", f.seq),
		Message:           "Something happened",
		RelatedEntityType: "task",
		RelatedEntityID:   1,
		CreatedAt:         time.Now(),
	}
}

// FactorySet bundles all factories for convenience in test suites
type FactorySet struct {
	User         *UserFactory
	Project      *ProjectFactory
	Task         *TaskFactory
	Notification *NotificationFactory
}

// NewFactorySet creates a FactorySet with fresh factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Project:      NewProjectFactory(),
		Task:         NewTaskFactory(),
		Notification: NewNotificationFactory(),
	}
}
