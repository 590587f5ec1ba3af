package service

import (
	"time"

	"github.com/go-playground/validator/v10"

	"projecthub-backend/internal/models"
	"projecthub-backend/internal/repository"
)

const defaultRecentActivityLimit = 10

// ActivityService provides the project activity feed
type ActivityService struct {
	simulatedDelay
	repo      repository.ActivityRepositoryInterface
	validator *validator.Validate
}

// Ensure ActivityService implements ActivityServiceInterface
var _ ActivityServiceInterface = (*ActivityService)(nil)

// NewActivityService creates a new ActivityService
func NewActivityService(repo repository.ActivityRepositoryInterface, validator *validator.Validate, latency time.Duration) *ActivityService {
	return &ActivityService{
		simulatedDelay: simulatedDelay{latency: latency},
		repo:           repo,
		validator:      validator,
	}
}

// RecordActivityRequest represents a system-recorded feed entry
type RecordActivityRequest struct {
	ProjectID    int    `json:"projectId" validate:"required,gt=0"`
	UserID       int    `json:"userId" validate:"required,gt=0"`
	ActivityType string `json:"activityType" validate:"required"`
	Description  string `json:"description" validate:"required,max=500"`
	EntityType   string `json:"entityType" validate:"omitempty,max=50"`
	EntityID     int    `json:"entityId" validate:"omitempty,gt=0"`
	OldValues    string `json:"oldValues" validate:"omitempty,max=2000"`
	NewValues    string `json:"newValues" validate:"omitempty,max=2000"`
}

// GetRecent retrieves the newest activities, optionally scoped by project
// and/or user; limit defaults to 10
func (s *ActivityService) GetRecent(limit, projectID, userID int) ([]models.Activity, error) {
	s.delay()
	if limit <= 0 {
		limit = defaultRecentActivityLimit
	}
	return s.repo.GetRecent(limit, projectID, userID), nil
}

// GetProjectActivities retrieves a project's activity feed newest first,
// paginated
func (s *ActivityService) GetProjectActivities(projectID, page, pageSize int) (*models.PaginatedResponse[models.Activity], error) {
	s.delay()
	page, pageSize = models.ClampPageArgs(page, pageSize)
	items, err := s.repo.GetByProject(projectID)
	if err != nil {
		return nil, err
	}
	return models.Paginate(items, page, pageSize), nil
}

// Search retrieves activities by description text, newest first, paginated
func (s *ActivityService) Search(term string, page, pageSize, projectID int) (*models.PaginatedResponse[models.Activity], error) {
	s.delay()
	page, pageSize = models.ClampPageArgs(page, pageSize)
	items := s.repo.Search(term, projectID)
	return models.Paginate(items, page, pageSize), nil
}

// Record appends a feed entry, capturing current project and user snapshots
func (s *ActivityService) Record(req RecordActivityRequest) (*models.Activity, error) {
	s.delay()
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	a := models.Activity{
		ProjectID:    req.ProjectID,
		UserID:       req.UserID,
		ActivityType: models.ActivityType(req.ActivityType),
		Description:  req.Description,
		EntityType:   req.EntityType,
		EntityID:     req.EntityID,
		OldValues:    req.OldValues,
		NewValues:    req.NewValues,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Record(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Stats aggregates activity volume, optionally scoped by project and/or user
func (s *ActivityService) Stats(projectID, userID int) (*models.ActivityStats, error) {
	s.delay()
	return s.repo.Stats(projectID, userID), nil
}
