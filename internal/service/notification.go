package service

import (
	"time"

	"github.com/go-playground/validator/v10"

	"projecthub-backend/internal/auth"
	apperrors "projecthub-backend/internal/errors"
	"projecthub-backend/internal/models"
	"projecthub-backend/internal/repository"
)

// NotificationService provides notification inbox logic
type NotificationService struct {
	simulatedDelay
	repo      repository.NotificationRepositoryInterface
	validator *validator.Validate
}

// Ensure NotificationService implements NotificationServiceInterface
var _ NotificationServiceInterface = (*NotificationService)(nil)

// NewNotificationService creates a new NotificationService
func NewNotificationService(repo repository.NotificationRepositoryInterface, validator *validator.Validate, latency time.Duration) *NotificationService {
	return &NotificationService{
		simulatedDelay: simulatedDelay{latency: latency},
		repo:           repo,
		validator:      validator,
	}
}

// CreateNotificationRequest represents the request to create a notification
type CreateNotificationRequest struct {
	UserID            int    `json:"userId" validate:"required,gt=0"`
	Type              string `json:"type" validate:"required"`
	Title             string `json:"title" validate:"required,max=200"`
	Message           string `json:"message" validate:"required,max=1000"`
	ActionURL         string `json:"actionUrl" validate:"omitempty,max=500"`
	RelatedEntityType string `json:"relatedEntityType" validate:"omitempty,max=50"`
	RelatedEntityID   int    `json:"relatedEntityId" validate:"omitempty,gt=0"`
}

// CreateBulkRequest fans a notification out to several users
type CreateBulkRequest struct {
	UserIDs           []int  `json:"userIds" validate:"required,min=1,dive,gt=0"`
	Type              string `json:"type" validate:"required"`
	Title             string `json:"title" validate:"required,max=200"`
	Message           string `json:"message" validate:"required,max=1000"`
	ActionURL         string `json:"actionUrl" validate:"omitempty,max=500"`
	RelatedEntityType string `json:"relatedEntityType" validate:"omitempty,max=50"`
	RelatedEntityID   int    `json:"relatedEntityId" validate:"omitempty,gt=0"`
}

// GetMy retrieves the session user's notifications newest first, paginated.
// Without a session the envelope is empty rather than an error.
func (s *NotificationService) GetMy(session *auth.Session, page, pageSize int, unreadOnly bool) (*models.PaginatedResponse[models.Notification], error) {
	s.delay()
	page, pageSize = models.ClampPageArgs(page, pageSize)
	if session == nil {
		return models.Paginate([]models.Notification{}, page, pageSize), nil
	}
	items := s.repo.GetByUser(session.UserID, unreadOnly)
	return models.Paginate(items, page, pageSize), nil
}

// GetUnread retrieves the session user's unread notifications
func (s *NotificationService) GetUnread(session *auth.Session) ([]models.Notification, error) {
	s.delay()
	if session == nil {
		return []models.Notification{}, nil
	}
	return s.repo.GetByUser(session.UserID, true), nil
}

// GetCounts summarizes the session user's inbox
func (s *NotificationService) GetCounts(session *auth.Session) (*models.NotificationCounts, error) {
	s.delay()
	if session == nil {
		counts := &models.NotificationCounts{ByType: make(map[models.NotificationType]int)}
		return counts, nil
	}
	return s.repo.Counts(session.UserID), nil
}

// MarkAsRead marks a notification read; repeating it keeps the original
// readAt timestamp
func (s *NotificationService) MarkAsRead(id int) (*models.Notification, error) {
	s.delay()
	return s.repo.MarkRead(id, time.Now())
}

// MarkAsUnread marks a notification unread and clears readAt
func (s *NotificationService) MarkAsUnread(id int) (*models.Notification, error) {
	s.delay()
	return s.repo.MarkUnread(id)
}

// MarkAllRead marks all of the session user's notifications read and
// returns how many changed
func (s *NotificationService) MarkAllRead(session *auth.Session) (int, error) {
	s.delay()
	if session == nil {
		return 0, apperrors.ErrNoSession
	}
	return s.repo.MarkAllRead(session.UserID, time.Now()), nil
}

// Delete removes a notification
func (s *NotificationService) Delete(id int) error {
	s.delay()
	return s.repo.Delete(id)
}

// Create creates a notification for a single user
func (s *NotificationService) Create(req CreateNotificationRequest) (*models.Notification, error) {
	s.delay()
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	n := models.Notification{
		UserID:            req.UserID,
		Type:              models.NotificationType(req.Type),
		Title:             req.Title,
		Message:           req.Message,
		ActionURL:         req.ActionURL,
		RelatedEntityType: req.RelatedEntityType,
		RelatedEntityID:   req.RelatedEntityID,
		CreatedAt:         time.Now(),
	}
	if err := s.repo.Create(&n); err != nil {
		return nil, err
	}
	return &n, nil
}

// CreateBulk fans a notification out to several users and returns how many
// were created
func (s *NotificationService) CreateBulk(req CreateBulkRequest) (int, error) {
	s.delay()
	if err := validateStruct(s.validator, req); err != nil {
		return 0, err
	}

	template := models.Notification{
		Type:              models.NotificationType(req.Type),
		Title:             req.Title,
		Message:           req.Message,
		ActionURL:         req.ActionURL,
		RelatedEntityType: req.RelatedEntityType,
		RelatedEntityID:   req.RelatedEntityID,
		CreatedAt:         time.Now(),
	}
	return s.repo.CreateBulk(req.UserIDs, template)
}
