package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"projecthub-backend/internal/auth"
	apperrors "projecthub-backend/internal/errors"
	"projecthub-backend/internal/logger"
	"projecthub-backend/internal/models"
	"projecthub-backend/internal/repository"
)

const defaultProjectColor = "#3B82F6"

// ProjectService provides project-related business logic. Mutations record
// activities and emit notifications as side effects; those are best-effort
// and never fail the primary write.
type ProjectService struct {
	simulatedDelay
	repo          repository.ProjectRepositoryInterface
	activities    repository.ActivityRepositoryInterface
	notifications repository.NotificationRepositoryInterface
	validator     *validator.Validate
	log           *logger.Logger
}

// Ensure ProjectService implements ProjectServiceInterface
var _ ProjectServiceInterface = (*ProjectService)(nil)

// NewProjectService creates a new ProjectService
func NewProjectService(
	repo repository.ProjectRepositoryInterface,
	activities repository.ActivityRepositoryInterface,
	notifications repository.NotificationRepositoryInterface,
	validator *validator.Validate,
	log *logger.Logger,
	latency time.Duration,
) *ProjectService {
	return &ProjectService{
		simulatedDelay: simulatedDelay{latency: latency},
		repo:           repo,
		activities:     activities,
		notifications:  notifications,
		validator:      validator,
		log:            log,
	}
}

// CreateProjectRequest represents the request to create a project. Status is
// not accepted: new projects always start in Planning with zero actual cost.
type CreateProjectRequest struct {
	Name             string    `json:"name" validate:"required,min=1,max=200"`
	Description      string    `json:"description" validate:"max=2000"`
	StartDate        time.Time `json:"startDate" validate:"required"`
	EndDate          time.Time `json:"endDate" validate:"required"`
	Budget           float64   `json:"budget" validate:"gte=0"`
	Color            string    `json:"color" validate:"omitempty,hexcolor"`
	Priority         string    `json:"priority" validate:"omitempty,oneof=Low Medium High Critical"`
	ProjectManagerID int       `json:"projectManagerId" validate:"required,gt=0"`
}

// UpdateProjectRequest represents a partial update of a project
type UpdateProjectRequest struct {
	Name             *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Description      *string    `json:"description" validate:"omitempty,max=2000"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	Status           *string    `json:"status" validate:"omitempty,oneof=Planning InProgress OnHold Completed Cancelled"`
	Budget           *float64   `json:"budget" validate:"omitempty,gte=0"`
	ActualCost       *float64   `json:"actualCost" validate:"omitempty,gte=0"`
	Color            *string    `json:"color" validate:"omitempty,hexcolor"`
	Priority         *string    `json:"priority" validate:"omitempty,oneof=Low Medium High Critical"`
	ProjectManagerID *int       `json:"projectManagerId" validate:"omitempty,gt=0"`
}

// AddMemberRequest represents the request to add a project member
type AddMemberRequest struct {
	UserID int    `json:"userId" validate:"required,gt=0"`
	Role   string `json:"role" validate:"required,oneof=ProjectManager Developer Designer QA BusinessAnalyst"`
}

// GetAll retrieves all projects
func (s *ProjectService) GetAll() ([]models.Project, error) {
	s.delay()
	return s.repo.GetAll(), nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(id int) (*models.Project, error) {
	s.delay()
	return s.repo.GetByID(id)
}

// GetWithDetails retrieves a project joined with its tasks and members
func (s *ProjectService) GetWithDetails(id int) (*models.Project, error) {
	s.delay()
	return s.repo.GetWithDetails(id)
}

// GetMy retrieves the projects the session user manages or belongs to.
// Without a session the result is empty rather than an error.
func (s *ProjectService) GetMy(session *auth.Session) ([]models.Project, error) {
	s.delay()
	if session == nil {
		return []models.Project{}, nil
	}
	return s.repo.GetForUser(session.UserID), nil
}

// GetByStatus retrieves all projects with the given status
func (s *ProjectService) GetByStatus(status models.ProjectStatus) ([]models.Project, error) {
	s.delay()
	if !validProjectStatus(status) {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
	return s.repo.GetByStatus(status), nil
}

// GetOverdue retrieves projects past their end date and not completed
func (s *ProjectService) GetOverdue() ([]models.Project, error) {
	s.delay()
	return s.repo.GetOverdue(time.Now()), nil
}

// GetStatusCounts returns the number of projects per status
func (s *ProjectService) GetStatusCounts() (map[models.ProjectStatus]int, error) {
	s.delay()
	return s.repo.StatusCounts(), nil
}

// Search retrieves projects by name or description
func (s *ProjectService) Search(term string) ([]models.Project, error) {
	s.delay()
	return s.repo.Search(term), nil
}

// Create creates a project attributed to the session user
func (s *ProjectService) Create(session *auth.Session, req CreateProjectRequest) (*models.Project, error) {
	s.delay()
	if session == nil {
		return nil, apperrors.ErrNoSession
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	now := time.Now()
	color := req.Color
	if color == "" {
		color = defaultProjectColor
	}
	priority := models.Priority(req.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}
	project := models.Project{
		Name:             req.Name,
		Description:      req.Description,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Status:           models.ProjectStatusPlanning,
		Budget:           req.Budget,
		ActualCost:       0,
		Color:            color,
		Priority:         priority,
		ProjectManagerID: req.ProjectManagerID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Create(&project); err != nil {
		return nil, err
	}

	s.recordActivity(models.Activity{
		ProjectID:    project.ID,
		UserID:       session.UserID,
		ActivityType: models.ActivityProjectCreated,
		Description:  fmt.Sprintf("%s created project '%s'", session.User.FullName(), project.Name),
		EntityType:   "project",
		EntityID:     project.ID,
		CreatedAt:    now,
	})
	return &project, nil
}

// Update applies a partial update to a project, recording the change and
// notifying the project manager
func (s *ProjectService) Update(session *auth.Session, id int, req UpdateProjectRequest) (*models.Project, error) {
	s.delay()
	if session == nil {
		return nil, apperrors.ErrNoSession
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	project, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	before := *project

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.StartDate != nil {
		project.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = *req.EndDate
	}
	if req.Status != nil {
		project.Status = models.ProjectStatus(*req.Status)
	}
	if req.Budget != nil {
		project.Budget = *req.Budget
	}
	if req.ActualCost != nil {
		project.ActualCost = *req.ActualCost
	}
	if req.Color != nil {
		project.Color = *req.Color
	}
	if req.Priority != nil {
		project.Priority = models.Priority(*req.Priority)
	}
	if req.ProjectManagerID != nil {
		project.ProjectManagerID = *req.ProjectManagerID
	}
	now := time.Now()
	project.UpdatedAt = now

	if err := s.repo.Update(*project); err != nil {
		return nil, err
	}
	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.recordActivity(models.Activity{
		ProjectID:    id,
		UserID:       session.UserID,
		ActivityType: models.ActivityProjectUpdated,
		Description:  fmt.Sprintf("%s updated project '%s'", session.User.FullName(), updated.Name),
		EntityType:   "project",
		EntityID:     id,
		OldValues:    marshalValues(map[string]interface{}{"status": before.Status, "name": before.Name}),
		NewValues:    marshalValues(map[string]interface{}{"status": updated.Status, "name": updated.Name}),
		CreatedAt:    now,
	})
	if updated.ProjectManagerID != session.UserID {
		s.notify(models.Notification{
			UserID:            updated.ProjectManagerID,
			Type:              models.NotificationProjectUpdated,
			Title:             "Project updated",
			Message:           fmt.Sprintf("'%s' details were updated", updated.Name),
			RelatedEntityType: "project",
			RelatedEntityID:   id,
			CreatedAt:         now,
		})
	}
	return updated, nil
}

// Delete removes a project and cascades to its tasks, comments and members
func (s *ProjectService) Delete(session *auth.Session, id int) error {
	s.delay()
	if session == nil {
		return apperrors.ErrNoSession
	}
	return s.repo.Delete(id)
}

// ListMembers retrieves a project's memberships
func (s *ProjectService) ListMembers(projectID int) ([]models.ProjectMember, error) {
	s.delay()
	return s.repo.ListMembers(projectID)
}

// AddMember adds a user to a project and notifies them
func (s *ProjectService) AddMember(session *auth.Session, projectID int, req AddMemberRequest) (*models.ProjectMember, error) {
	s.delay()
	if session == nil {
		return nil, apperrors.ErrNoSession
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	now := time.Now()
	member := models.ProjectMember{
		ProjectID: projectID,
		UserID:    req.UserID,
		Role:      models.ProjectMemberRole(req.Role),
		JoinedAt:  now,
		IsActive:  true,
	}
	if err := s.repo.AddMember(&member); err != nil {
		return nil, err
	}

	project, err := s.repo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	s.recordActivity(models.Activity{
		ProjectID:    projectID,
		UserID:       session.UserID,
		ActivityType: models.ActivityMemberAdded,
		Description:  fmt.Sprintf("%s added %s to '%s'", session.User.FullName(), member.User.FullName(), project.Name),
		EntityType:   "member",
		EntityID:     member.ID,
		CreatedAt:    now,
	})
	s.notify(models.Notification{
		UserID:            req.UserID,
		Type:              models.NotificationProjectMemberAdded,
		Title:             "Added to project",
		Message:           fmt.Sprintf("You were added to '%s' as %s", project.Name, member.Role),
		RelatedEntityType: "project",
		RelatedEntityID:   projectID,
		CreatedAt:         now,
	})
	return &member, nil
}

// RemoveMember removes a user from a project
func (s *ProjectService) RemoveMember(session *auth.Session, projectID, userID int) error {
	s.delay()
	if session == nil {
		return apperrors.ErrNoSession
	}
	if err := s.repo.RemoveMember(projectID, userID); err != nil {
		return err
	}
	s.recordActivity(models.Activity{
		ProjectID:    projectID,
		UserID:       session.UserID,
		ActivityType: models.ActivityMemberRemoved,
		Description:  fmt.Sprintf("%s removed a member from the project", session.User.FullName()),
		EntityType:   "member",
		CreatedAt:    time.Now(),
	})
	return nil
}

// UpdateMemberRole changes a member's project-scoped role, recording the
// change on the project feed
func (s *ProjectService) UpdateMemberRole(session *auth.Session, projectID, userID int, role models.ProjectMemberRole) (*models.ProjectMember, error) {
	s.delay()
	if session == nil {
		return nil, apperrors.ErrNoSession
	}
	if !validMemberRole(role) {
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}

	member, err := s.repo.UpdateMemberRole(projectID, userID, role)
	if err != nil {
		return nil, err
	}
	s.recordActivity(models.Activity{
		ProjectID:    projectID,
		UserID:       session.UserID,
		ActivityType: models.ActivityProjectUpdated,
		Description:  fmt.Sprintf("%s changed %s's role to %s", session.User.FullName(), member.User.FullName(), member.Role),
		EntityType:   "member",
		EntityID:     member.ID,
		CreatedAt:    time.Now(),
	})
	return member, nil
}

// recordActivity appends a feed entry; failures are logged, not propagated
func (s *ProjectService) recordActivity(a models.Activity) {
	if err := s.activities.Record(&a); err != nil {
		s.log.WithError(err).Warn("failed to record project activity")
	}
}

// notify emits a notification; failures are logged, not propagated
func (s *ProjectService) notify(n models.Notification) {
	if err := s.notifications.Create(&n); err != nil {
		s.log.WithError(err).Warn("failed to create notification")
	}
}

func validProjectStatus(status models.ProjectStatus) bool {
	for _, st := range models.ProjectStatuses {
		if st == status {
			return true
		}
	}
	return false
}

func validMemberRole(role models.ProjectMemberRole) bool {
	switch role {
	case models.MemberRoleProjectManager, models.MemberRoleDeveloper, models.MemberRoleDesigner,
		models.MemberRoleQA, models.MemberRoleBusinessAnalyst:
		return true
	}
	return false
}

// marshalValues renders an activity value snapshot as JSON
func marshalValues(values map[string]interface{}) string {
	b, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	return string(b)
}
