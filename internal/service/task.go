package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"projecthub-backend/internal/auth"
	apperrors "projecthub-backend/internal/errors"
	"projecthub-backend/internal/logger"
	"projecthub-backend/internal/models"
	"projecthub-backend/internal/repository"
)

// TaskService provides task-related business logic. Assignment, status and
// comment mutations emit notifications and activity entries as best-effort
// side effects.
type TaskService struct {
	simulatedDelay
	repo          repository.TaskRepositoryInterface
	activities    repository.ActivityRepositoryInterface
	notifications repository.NotificationRepositoryInterface
	validator     *validator.Validate
	log           *logger.Logger
}

// Ensure TaskService implements TaskServiceInterface
var _ TaskServiceInterface = (*TaskService)(nil)

// NewTaskService creates a new TaskService
func NewTaskService(
	repo repository.TaskRepositoryInterface,
	activities repository.ActivityRepositoryInterface,
	notifications repository.NotificationRepositoryInterface,
	validator *validator.Validate,
	log *logger.Logger,
	latency time.Duration,
) *TaskService {
	return &TaskService{
		simulatedDelay: simulatedDelay{latency: latency},
		repo:           repo,
		activities:     activities,
		notifications:  notifications,
		validator:      validator,
		log:            log,
	}
}

// CreateTaskRequest represents the request to create a task. Status,
// progress and actual hours are not accepted: new tasks start in ToDo at
// zero progress.
type CreateTaskRequest struct {
	Title          string    `json:"title" validate:"required,min=1,max=200"`
	Description    string    `json:"description" validate:"max=2000"`
	Priority       string    `json:"priority" validate:"omitempty,oneof=Low Medium High Critical"`
	DueDate        time.Time `json:"dueDate" validate:"required"`
	EstimatedHours float64   `json:"estimatedHours" validate:"gte=0"`
	ProjectID      int       `json:"projectId" validate:"required,gt=0"`
	AssignedToID   int       `json:"assignedToId" validate:"required,gt=0"`
	ParentTaskID   *int      `json:"parentTaskId" validate:"omitempty,gt=0"`
	Tags           string    `json:"tags" validate:"max=500"`
}

// UpdateTaskRequest represents a partial update of a task. ParentTaskID nil
// leaves the parent unchanged; an explicit 0 detaches the task from it.
type UpdateTaskRequest struct {
	Title          *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description    *string    `json:"description" validate:"omitempty,max=2000"`
	Priority       *string    `json:"priority" validate:"omitempty,oneof=Low Medium High Critical"`
	Status         *string    `json:"status" validate:"omitempty,oneof=NotStarted ToDo InProgress Review Completed Blocked Cancelled OnHold"`
	DueDate        *time.Time `json:"dueDate"`
	EstimatedHours *float64   `json:"estimatedHours" validate:"omitempty,gte=0"`
	ActualHours    *float64   `json:"actualHours" validate:"omitempty,gte=0"`
	AssignedToID   *int       `json:"assignedToId" validate:"omitempty,gt=0"`
	ParentTaskID   *int       `json:"parentTaskId" validate:"omitempty,gte=0"`
	Tags           *string    `json:"tags" validate:"omitempty,max=500"`
	Progress       *int       `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

// AddCommentRequest represents the request to comment on a task
type AddCommentRequest struct {
	Content         string `json:"content" validate:"required,min=1,max=5000"`
	ParentCommentID *int   `json:"parentCommentId" validate:"omitempty,gt=0"`
}

// GetAll retrieves all tasks
func (s *TaskService) GetAll() ([]models.Task, error) {
	s.delay()
	return s.repo.GetAll(), nil
}

// GetByID retrieves a task with its subtasks and comment thread
func (s *TaskService) GetByID(id int) (*models.Task, error) {
	s.delay()
	return s.repo.GetByID(id)
}

// GetMy retrieves the session user's tasks, optionally filtered by status.
// Without a session the result is empty rather than an error.
func (s *TaskService) GetMy(session *auth.Session, status models.TaskStatus) ([]models.Task, error) {
	s.delay()
	if session == nil {
		return []models.Task{}, nil
	}
	if status != "" && !validTaskStatus(status) {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
	return s.repo.GetByAssignee(session.UserID, status), nil
}

// GetByProject retrieves a project's tasks
func (s *TaskService) GetByProject(projectID int) ([]models.Task, error) {
	s.delay()
	return s.repo.GetByProject(projectID)
}

// GetByStatus retrieves all tasks with the given status
func (s *TaskService) GetByStatus(status models.TaskStatus) ([]models.Task, error) {
	s.delay()
	if !validTaskStatus(status) {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
	return s.repo.GetByStatus(status), nil
}

// GetOverdue retrieves tasks past their due date and not completed
func (s *TaskService) GetOverdue() ([]models.Task, error) {
	s.delay()
	return s.repo.GetOverdue(time.Now()), nil
}

// GetDueSoon retrieves incomplete tasks due within the given number of days
func (s *TaskService) GetDueSoon(days int) ([]models.Task, error) {
	s.delay()
	if days <= 0 {
		days = 7
	}
	return s.repo.GetDueSoon(time.Now(), days), nil
}

// GetStatusCounts returns the number of tasks per status, optionally scoped
// to a project
func (s *TaskService) GetStatusCounts(projectID int) (map[models.TaskStatus]int, error) {
	s.delay()
	return s.repo.StatusCounts(projectID), nil
}

// Search retrieves tasks by title, description or tags
func (s *TaskService) Search(term string, projectID int) ([]models.Task, error) {
	s.delay()
	return s.repo.Search(term, projectID), nil
}

// Create creates a task attributed to the session user and notifies the
// assignee
func (s *TaskService) Create(session *auth.Session, req CreateTaskRequest) (*models.Task, error) {
	s.delay()
	if session == nil {
		return nil, apperrors.ErrNoSession
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	now := time.Now()
	priority := models.Priority(req.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}
	task := models.Task{
		Title:          req.Title,
		Description:    req.Description,
		Priority:       priority,
		Status:         models.TaskStatusToDo,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
		ActualHours:    0,
		ProjectID:      req.ProjectID,
		AssignedToID:   req.AssignedToID,
		ParentTaskID:   req.ParentTaskID,
		Tags:           req.Tags,
		Progress:       0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(&task); err != nil {
		return nil, err
	}

	s.recordActivity(models.Activity{
		ProjectID:    task.ProjectID,
		UserID:       session.UserID,
		ActivityType: models.ActivityTaskCreated,
		Description:  fmt.Sprintf("%s created task '%s'", session.User.FullName(), task.Title),
		EntityType:   "task",
		EntityID:     task.ID,
		CreatedAt:    now,
	})
	if task.AssignedToID != session.UserID {
		s.notify(models.Notification{
			UserID:            task.AssignedToID,
			Type:              models.NotificationTaskAssigned,
			Title:             "New task assigned",
			Message:           fmt.Sprintf("You have been assigned '%s'", task.Title),
			RelatedEntityType: "task",
			RelatedEntityID:   task.ID,
			CreatedAt:         now,
		})
	}
	return &task, nil
}

// Update applies a partial update to a task
func (s *TaskService) Update(session *auth.Session, id int, req UpdateTaskRequest) (*models.Task, error) {
	s.delay()
	if session == nil {
		return nil, apperrors.ErrNoSession
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	task, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	oldStatus := task.Status

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = models.Priority(*req.Priority)
	}
	if req.Status != nil {
		task.Status = models.TaskStatus(*req.Status)
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.EstimatedHours != nil {
		task.EstimatedHours = *req.EstimatedHours
	}
	if req.ActualHours != nil {
		task.ActualHours = *req.ActualHours
	}
	if req.AssignedToID != nil {
		task.AssignedToID = *req.AssignedToID
	}
	if req.ParentTaskID != nil {
		if *req.ParentTaskID == 0 {
			task.ParentTaskID = nil
		} else {
			task.ParentTaskID = req.ParentTaskID
		}
	}
	if req.Tags != nil {
		task.Tags = *req.Tags
	}
	if req.Progress != nil {
		task.Progress = *req.Progress
	}
	now := time.Now()
	task.UpdatedAt = now

	if err := s.repo.Update(*task); err != nil {
		return nil, err
	}
	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.recordActivity(models.Activity{
		ProjectID:    updated.ProjectID,
		UserID:       session.UserID,
		ActivityType: models.ActivityTaskUpdated,
		Description:  fmt.Sprintf("%s updated task '%s'", session.User.FullName(), updated.Title),
		EntityType:   "task",
		EntityID:     id,
		CreatedAt:    now,
	})
	if oldStatus != updated.Status {
		s.emitStatusChange(session, updated, oldStatus, now)
	}
	return updated, nil
}

// Delete removes a task, its comments and its subtask subtree
func (s *TaskService) Delete(session *auth.Session, id int) error {
	s.delay()
	if session == nil {
		return apperrors.ErrNoSession
	}
	return s.repo.Delete(id)
}

// Assign reassigns a task and notifies the new assignee
func (s *TaskService) Assign(session *auth.Session, taskID, userID int) (*models.Task, error) {
	s.delay()
	if session == nil {
		return nil, apperrors.ErrNoSession
	}

	now := time.Now()
	task, err := s.repo.Assign(taskID, userID, now)
	if err != nil {
		return nil, err
	}

	s.recordActivity(models.Activity{
		ProjectID:    task.ProjectID,
		UserID:       session.UserID,
		ActivityType: models.ActivityTaskAssigned,
		Description:  fmt.Sprintf("%s assigned '%s' to %s", session.User.FullName(), task.Title, task.AssignedTo.FullName()),
		EntityType:   "task",
		EntityID:     taskID,
		CreatedAt:    now,
	})
	if userID != session.UserID {
		s.notify(models.Notification{
			UserID:            userID,
			Type:              models.NotificationTaskAssigned,
			Title:             "New task assigned",
			Message:           fmt.Sprintf("You have been assigned '%s'", task.Title),
			RelatedEntityType: "task",
			RelatedEntityID:   taskID,
			CreatedAt:         now,
		})
	}
	return task, nil
}

// UpdateStatus changes a task's workflow status, recording the transition
func (s *TaskService) UpdateStatus(session *auth.Session, taskID int, status models.TaskStatus) (*models.Task, error) {
	s.delay()
	if session == nil {
		return nil, apperrors.ErrNoSession
	}
	if !validTaskStatus(status) {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}

	before, err := s.repo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	oldStatus := before.Status

	now := time.Now()
	task, err := s.repo.UpdateStatus(taskID, status, now)
	if err != nil {
		return nil, err
	}
	if oldStatus != status {
		s.emitStatusChange(session, task, oldStatus, now)
	}
	return task, nil
}

// UpdateProgress changes a task's progress percentage
func (s *TaskService) UpdateProgress(session *auth.Session, taskID, progress int) (*models.Task, error) {
	s.delay()
	if session == nil {
		return nil, apperrors.ErrNoSession
	}
	if progress < 0 || progress > 100 {
		return nil, apperrors.NewValidationError("progress", "must be between 0 and 100")
	}
	return s.repo.UpdateProgress(taskID, progress, time.Now())
}

// GetComments retrieves a task's comment thread
func (s *TaskService) GetComments(taskID int) ([]models.TaskComment, error) {
	s.delay()
	return s.repo.GetComments(taskID)
}

// AddComment adds a comment authored by the session user and notifies the
// task assignee
func (s *TaskService) AddComment(session *auth.Session, taskID int, req AddCommentRequest) (*models.TaskComment, error) {
	s.delay()
	if session == nil {
		return nil, apperrors.ErrNoSession
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	now := time.Now()
	comment := models.TaskComment{
		TaskID:          taskID,
		UserID:          session.UserID,
		Content:         req.Content,
		ParentCommentID: req.ParentCommentID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.AddComment(&comment); err != nil {
		return nil, err
	}

	task, err := s.repo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	s.recordActivity(models.Activity{
		ProjectID:    task.ProjectID,
		UserID:       session.UserID,
		ActivityType: models.ActivityCommentAdded,
		Description:  fmt.Sprintf("%s commented on '%s'", session.User.FullName(), task.Title),
		EntityType:   "task",
		EntityID:     taskID,
		CreatedAt:    now,
	})
	if task.AssignedToID != session.UserID {
		s.notify(models.Notification{
			UserID:            task.AssignedToID,
			Type:              models.NotificationTaskCommentAdded,
			Title:             "New comment",
			Message:           fmt.Sprintf("%s commented on '%s'", session.User.FullName(), task.Title),
			RelatedEntityType: "task",
			RelatedEntityID:   taskID,
			CreatedAt:         now,
		})
	}
	return &comment, nil
}

// emitStatusChange records a status transition and notifies the project
// manager; completion gets its own notification type
func (s *TaskService) emitStatusChange(session *auth.Session, task *models.Task, oldStatus models.TaskStatus, now time.Time) {
	activityType := models.ActivityTaskStatusChanged
	if task.Status == models.TaskStatusCompleted {
		activityType = models.ActivityTaskCompleted
	}
	s.recordActivity(models.Activity{
		ProjectID:    task.ProjectID,
		UserID:       session.UserID,
		ActivityType: activityType,
		Description:  fmt.Sprintf("%s moved '%s' to %s", session.User.FullName(), task.Title, task.Status),
		EntityType:   "task",
		EntityID:     task.ID,
		OldValues:    marshalValues(map[string]interface{}{"status": oldStatus}),
		NewValues:    marshalValues(map[string]interface{}{"status": task.Status}),
		CreatedAt:    now,
	})

	if task.Project == nil || task.Project.ProjectManagerID == session.UserID {
		return
	}
	notificationType := models.NotificationTaskStatusChanged
	title := "Task status changed"
	message := fmt.Sprintf("'%s' moved to %s", task.Title, task.Status)
	if task.Status == models.TaskStatusCompleted {
		notificationType = models.NotificationTaskCompleted
		title = "Task completed"
		message = fmt.Sprintf("'%s' was completed", task.Title)
	}
	s.notify(models.Notification{
		UserID:            task.Project.ProjectManagerID,
		Type:              notificationType,
		Title:             title,
		Message:           message,
		RelatedEntityType: "task",
		RelatedEntityID:   task.ID,
		CreatedAt:         now,
	})
}

// recordActivity appends a feed entry; failures are logged, not propagated
func (s *TaskService) recordActivity(a models.Activity) {
	if err := s.activities.Record(&a); err != nil {
		s.log.WithError(err).Warn("failed to record task activity")
	}
}

// notify emits a notification; failures are logged, not propagated
func (s *TaskService) notify(n models.Notification) {
	if err := s.notifications.Create(&n); err != nil {
		s.log.WithError(err).Warn("failed to create notification")
	}
}

func validTaskStatus(status models.TaskStatus) bool {
	for _, st := range models.TaskStatuses {
		if st == status {
			return true
		}
	}
	return false
}
