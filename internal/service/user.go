package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"projecthub-backend/internal/auth"
	apperrors "projecthub-backend/internal/errors"
	"projecthub-backend/internal/models"
	"projecthub-backend/internal/repository"
)

// UserService provides user-related business logic
type UserService struct {
	simulatedDelay
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate, latency time.Duration) *UserService {
	return &UserService{
		simulatedDelay: simulatedDelay{latency: latency},
		repo:           repo,
		validator:      validator,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	FirstName       string `json:"firstName" validate:"required,min=1,max=100"`
	LastName        string `json:"lastName" validate:"required,min=1,max=100"`
	Email           string `json:"email" validate:"required,email"`
	PhoneNumber     string `json:"phoneNumber" validate:"omitempty,max=30"`
	Role            string `json:"role" validate:"required,oneof=Admin ProjectManager TeamMember"`
	ProfileImageURL string `json:"profileImageUrl" validate:"omitempty,url"`
}

// UpdateUserRequest represents a partial update of a user; nil fields keep
// their current value
type UpdateUserRequest struct {
	FirstName       *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName        *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Email           *string `json:"email" validate:"omitempty,email"`
	PhoneNumber     *string `json:"phoneNumber" validate:"omitempty,max=30"`
	Role            *string `json:"role" validate:"omitempty,oneof=Admin ProjectManager TeamMember"`
	ProfileImageURL *string `json:"profileImageUrl" validate:"omitempty,url"`
}

// GetAll retrieves all users
func (s *UserService) GetAll() ([]models.User, error) {
	s.delay()
	return s.repo.GetAll(), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id int) (*models.User, error) {
	s.delay()
	return s.repo.GetByID(id)
}

// List retrieves users filtered by search term and role, paginated
func (s *UserService) List(page, pageSize int, search string, role models.UserRole) (*models.PaginatedResponse[models.User], error) {
	s.delay()
	if role != "" && !models.ValidUserRole(role) {
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}
	page, pageSize = models.ClampPageArgs(page, pageSize)
	users := s.repo.Filter(search, role)
	return models.Paginate(users, page, pageSize), nil
}

// GetByRole retrieves all users with the given role
func (s *UserService) GetByRole(role models.UserRole) ([]models.User, error) {
	s.delay()
	if !models.ValidUserRole(role) {
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}
	return s.repo.GetByRole(role), nil
}

// GetActive retrieves all active users
func (s *UserService) GetActive() ([]models.User, error) {
	s.delay()
	return s.repo.GetActive(), nil
}

// Search retrieves users matching the term by name or email
func (s *UserService) Search(term string) ([]models.User, error) {
	s.delay()
	return s.repo.Search(term), nil
}

// Create creates a new user
func (s *UserService) Create(req CreateUserRequest) (*models.User, error) {
	s.delay()
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	now := time.Now()
	user := models.User{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Role:            models.UserRole(req.Role),
		IsActive:        true,
		ProfileImageURL: req.ProfileImageURL,
		CreatedAt:       now,
	}
	if err := s.repo.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update applies a partial update to a user
func (s *UserService) Update(id int, req UpdateUserRequest) (*models.User, error) {
	s.delay()
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Role != nil {
		user.Role = models.UserRole(*req.Role)
	}
	if req.ProfileImageURL != nil {
		user.ProfileImageURL = *req.ProfileImageURL
	}

	if err := s.repo.Update(*user); err != nil {
		return nil, err
	}
	return user, nil
}

// Deactivate flips the user inactive, leaving all references intact
func (s *UserService) Deactivate(id int) (*models.User, error) {
	s.delay()
	return s.repo.SetActiveStatus(id, false)
}

// Activate flips the user active
func (s *UserService) Activate(id int) (*models.User, error) {
	s.delay()
	return s.repo.SetActiveStatus(id, true)
}

// ResetPassword verifies the account exists. Credentials are the shared
// development sentinel, so there is nothing to rotate.
func (s *UserService) ResetPassword(email string) error {
	s.delay()
	_, err := s.repo.GetByEmail(email)
	return err
}

// Delete removes a user; refused while the user has dependents
func (s *UserService) Delete(id int) error {
	s.delay()
	return s.repo.Delete(id)
}

// GetStats aggregates a user's workload
func (s *UserService) GetStats(userID int) (*models.UserStats, error) {
	s.delay()
	return s.repo.Stats(userID, time.Now())
}

// GetMyStats aggregates the session user's workload. Without a session the
// result is empty rather than an error.
func (s *UserService) GetMyStats(session *auth.Session) (*models.UserStats, error) {
	if session == nil {
		s.delay()
		return &models.UserStats{}, nil
	}
	return s.GetStats(session.UserID)
}
