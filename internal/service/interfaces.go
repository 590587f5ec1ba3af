package service

import (
	"projecthub-backend/internal/auth"
	"projecthub-backend/internal/models"
)

// UserServiceInterface defines the user facade
type UserServiceInterface interface {
	GetAll() ([]models.User, error)
	GetByID(id int) (*models.User, error)
	List(page, pageSize int, search string, role models.UserRole) (*models.PaginatedResponse[models.User], error)
	GetByRole(role models.UserRole) ([]models.User, error)
	GetActive() ([]models.User, error)
	Search(term string) ([]models.User, error)
	Create(req CreateUserRequest) (*models.User, error)
	Update(id int, req UpdateUserRequest) (*models.User, error)
	Deactivate(id int) (*models.User, error)
	Activate(id int) (*models.User, error)
	ResetPassword(email string) error
	Delete(id int) error
	GetStats(userID int) (*models.UserStats, error)
	GetMyStats(session *auth.Session) (*models.UserStats, error)
}

// ProjectServiceInterface defines the project facade
type ProjectServiceInterface interface {
	GetAll() ([]models.Project, error)
	GetByID(id int) (*models.Project, error)
	GetWithDetails(id int) (*models.Project, error)
	GetMy(session *auth.Session) ([]models.Project, error)
	GetByStatus(status models.ProjectStatus) ([]models.Project, error)
	GetOverdue() ([]models.Project, error)
	GetStatusCounts() (map[models.ProjectStatus]int, error)
	Search(term string) ([]models.Project, error)
	Create(session *auth.Session, req CreateProjectRequest) (*models.Project, error)
	Update(session *auth.Session, id int, req UpdateProjectRequest) (*models.Project, error)
	Delete(session *auth.Session, id int) error
	ListMembers(projectID int) ([]models.ProjectMember, error)
	AddMember(session *auth.Session, projectID int, req AddMemberRequest) (*models.ProjectMember, error)
	RemoveMember(session *auth.Session, projectID, userID int) error
	UpdateMemberRole(session *auth.Session, projectID, userID int, role models.ProjectMemberRole) (*models.ProjectMember, error)
}

// TaskServiceInterface defines the task facade
type TaskServiceInterface interface {
	GetAll() ([]models.Task, error)
	GetByID(id int) (*models.Task, error)
	GetMy(session *auth.Session, status models.TaskStatus) ([]models.Task, error)
	GetByProject(projectID int) ([]models.Task, error)
	GetByStatus(status models.TaskStatus) ([]models.Task, error)
	GetOverdue() ([]models.Task, error)
	GetDueSoon(days int) ([]models.Task, error)
	GetStatusCounts(projectID int) (map[models.TaskStatus]int, error)
	Search(term string, projectID int) ([]models.Task, error)
	Create(session *auth.Session, req CreateTaskRequest) (*models.Task, error)
	Update(session *auth.Session, id int, req UpdateTaskRequest) (*models.Task, error)
	Delete(session *auth.Session, id int) error
	Assign(session *auth.Session, taskID, userID int) (*models.Task, error)
	UpdateStatus(session *auth.Session, taskID int, status models.TaskStatus) (*models.Task, error)
	UpdateProgress(session *auth.Session, taskID, progress int) (*models.Task, error)
	GetComments(taskID int) ([]models.TaskComment, error)
	AddComment(session *auth.Session, taskID int, req AddCommentRequest) (*models.TaskComment, error)
}

// NotificationServiceInterface defines the notification facade
type NotificationServiceInterface interface {
	GetMy(session *auth.Session, page, pageSize int, unreadOnly bool) (*models.PaginatedResponse[models.Notification], error)
	GetUnread(session *auth.Session) ([]models.Notification, error)
	GetCounts(session *auth.Session) (*models.NotificationCounts, error)
	MarkAsRead(id int) (*models.Notification, error)
	MarkAsUnread(id int) (*models.Notification, error)
	MarkAllRead(session *auth.Session) (int, error)
	Delete(id int) error
	Create(req CreateNotificationRequest) (*models.Notification, error)
	CreateBulk(req CreateBulkRequest) (int, error)
}

// ActivityServiceInterface defines the activity feed facade
type ActivityServiceInterface interface {
	GetRecent(limit, projectID, userID int) ([]models.Activity, error)
	GetProjectActivities(projectID, page, pageSize int) (*models.PaginatedResponse[models.Activity], error)
	Search(term string, page, pageSize, projectID int) (*models.PaginatedResponse[models.Activity], error)
	Record(req RecordActivityRequest) (*models.Activity, error)
	Stats(projectID, userID int) (*models.ActivityStats, error)
}
