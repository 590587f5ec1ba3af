package repository

import (
	"time"

	"projecthub-backend/internal/models"
)

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	GetAll() []models.User
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Filter(search string, role models.UserRole) []models.User
	GetByRole(role models.UserRole) []models.User
	GetActive() []models.User
	Search(term string) []models.User
	Create(u *models.User) error
	Update(u models.User) error
	SetActiveStatus(id int, active bool) (*models.User, error)
	StampLastLogin(id int, at time.Time) error
	Delete(id int) error
	Stats(userID int, now time.Time) (*models.UserStats, error)
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	GetAll() []models.Project
	GetByID(id int) (*models.Project, error)
	GetWithDetails(id int) (*models.Project, error)
	GetForUser(userID int) []models.Project
	GetByStatus(status models.ProjectStatus) []models.Project
	GetOverdue(now time.Time) []models.Project
	StatusCounts() map[models.ProjectStatus]int
	Search(term string) []models.Project
	Create(p *models.Project) error
	Update(p models.Project) error
	Delete(id int) error
	ListMembers(projectID int) ([]models.ProjectMember, error)
	AddMember(m *models.ProjectMember) error
	RemoveMember(projectID, userID int) error
	UpdateMemberRole(projectID, userID int, role models.ProjectMemberRole) (*models.ProjectMember, error)
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	GetAll() []models.Task
	GetByID(id int) (*models.Task, error)
	GetByProject(projectID int) ([]models.Task, error)
	GetByAssignee(userID int, status models.TaskStatus) []models.Task
	GetByStatus(status models.TaskStatus) []models.Task
	GetOverdue(now time.Time) []models.Task
	GetDueSoon(now time.Time, days int) []models.Task
	StatusCounts(projectID int) map[models.TaskStatus]int
	Search(term string, projectID int) []models.Task
	Create(t *models.Task) error
	Update(t models.Task) error
	Delete(id int) error
	Assign(taskID, userID int, at time.Time) (*models.Task, error)
	UpdateStatus(taskID int, status models.TaskStatus, at time.Time) (*models.Task, error)
	UpdateProgress(taskID, progress int, at time.Time) (*models.Task, error)
	GetComments(taskID int) ([]models.TaskComment, error)
	AddComment(c *models.TaskComment) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	GetByUser(userID int, unreadOnly bool) []models.Notification
	Counts(userID int) *models.NotificationCounts
	MarkRead(id int, at time.Time) (*models.Notification, error)
	MarkUnread(id int) (*models.Notification, error)
	MarkAllRead(userID int, at time.Time) int
	Delete(id int) error
	Create(n *models.Notification) error
	CreateBulk(userIDs []int, template models.Notification) (int, error)
}

// ActivityRepositoryInterface defines the interface for activity repository operations
type ActivityRepositoryInterface interface {
	GetRecent(limit, projectID, userID int) []models.Activity
	GetByProject(projectID int) ([]models.Activity, error)
	Search(term string, projectID int) []models.Activity
	Record(a *models.Activity) error
	Stats(projectID, userID int) *models.ActivityStats
}
