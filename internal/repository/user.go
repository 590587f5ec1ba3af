package repository

import (
	"strings"
	"time"

	apperrors "projecthub-backend/internal/errors"
	"projecthub-backend/internal/models"
	"projecthub-backend/internal/store"
)

// UserRepository handles store operations for users
type UserRepository struct {
	store *store.Store
}

// NewUserRepository creates a new user repository
func NewUserRepository(s *store.Store) *UserRepository {
	return &UserRepository{store: s}
}

// GetAll retrieves all users in insertion order
func (r *UserRepository) GetAll() []models.User {
	r.store.RLock()
	defer r.store.RUnlock()

	users := make([]models.User, len(r.store.Users))
	copy(users, r.store.Users)
	return users
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	u := r.store.UserByID(id)
	if u == nil {
		return nil, apperrors.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

// GetByEmail retrieves a user by email (case-insensitive)
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	for i := range r.store.Users {
		if strings.EqualFold(r.store.Users[i].Email, email) {
			out := r.store.Users[i]
			return &out, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// Filter retrieves users matching an optional search term and role.
// Empty search matches everyone; empty role matches every role. The search
// term is matched case-insensitively against first name, last name and email.
func (r *UserRepository) Filter(search string, role models.UserRole) []models.User {
	r.store.RLock()
	defer r.store.RUnlock()

	term := strings.ToLower(strings.TrimSpace(search))
	var users []models.User
	for _, u := range r.store.Users {
		if role != "" && u.Role != role {
			continue
		}
		if term != "" && !userMatches(u, term) {
			continue
		}
		users = append(users, u)
	}
	return users
}

func userMatches(u models.User, term string) bool {
	return strings.Contains(strings.ToLower(u.FirstName), term) ||
		strings.Contains(strings.ToLower(u.LastName), term) ||
		strings.Contains(strings.ToLower(u.Email), term)
}

// GetByRole retrieves all users with the given role
func (r *UserRepository) GetByRole(role models.UserRole) []models.User {
	return r.Filter("", role)
}

// GetActive retrieves all active users
func (r *UserRepository) GetActive() []models.User {
	r.store.RLock()
	defer r.store.RUnlock()

	var users []models.User
	for _, u := range r.store.Users {
		if u.IsActive {
			users = append(users, u)
		}
	}
	return users
}

// Search retrieves users matching the term by name or email
func (r *UserRepository) Search(term string) []models.User {
	return r.Filter(term, "")
}

// Create appends a new user and assigns its id. Fails with ErrEmailExists
// when another user already holds the email.
func (r *UserRepository) Create(u *models.User) error {
	r.store.Lock()
	defer r.store.Unlock()

	for i := range r.store.Users {
		if strings.EqualFold(r.store.Users[i].Email, u.Email) {
			return apperrors.ErrEmailExists
		}
	}

	u.ID = r.store.NextUserID()
	r.store.Users = append(r.store.Users, *u)
	return nil
}

// Update replaces the stored user and fans the change out to every embedded
// snapshot of that user.
func (r *UserRepository) Update(u models.User) error {
	r.store.Lock()
	defer r.store.Unlock()

	for i := range r.store.Users {
		if r.store.Users[i].ID != u.ID {
			continue
		}
		if !strings.EqualFold(r.store.Users[i].Email, u.Email) {
			for j := range r.store.Users {
				if j != i && strings.EqualFold(r.store.Users[j].Email, u.Email) {
					return apperrors.ErrEmailExists
				}
			}
		}
		r.store.Users[i] = u
		r.store.RefreshUserSnapshots(u)
		return nil
	}
	return apperrors.ErrUserNotFound
}

// SetActiveStatus flips the active flag, leaving all references intact
func (r *UserRepository) SetActiveStatus(id int, active bool) (*models.User, error) {
	r.store.Lock()
	defer r.store.Unlock()

	u := r.store.UserByID(id)
	if u == nil {
		return nil, apperrors.ErrUserNotFound
	}
	u.IsActive = active
	r.store.RefreshUserSnapshots(*u)
	out := *u
	return &out, nil
}

// StampLastLogin records a successful login time
func (r *UserRepository) StampLastLogin(id int, at time.Time) error {
	r.store.Lock()
	defer r.store.Unlock()

	u := r.store.UserByID(id)
	if u == nil {
		return apperrors.ErrUserNotFound
	}
	u.LastLoginAt = at
	r.store.RefreshUserSnapshots(*u)
	return nil
}

// Delete removes a user. The delete is refused while the user still manages
// a project, is assigned an incomplete task, or holds an active membership;
// deactivation is the supported path for users with history.
func (r *UserRepository) Delete(id int) error {
	r.store.Lock()
	defer r.store.Unlock()

	u := r.store.UserByID(id)
	if u == nil {
		return apperrors.ErrUserNotFound
	}

	for i := range r.store.Projects {
		if r.store.Projects[i].ProjectManagerID == id {
			return apperrors.ErrUserHasDependents
		}
	}
	for i := range r.store.Tasks {
		if r.store.Tasks[i].AssignedToID == id && r.store.Tasks[i].Status != models.TaskStatusCompleted {
			return apperrors.ErrUserHasDependents
		}
	}
	for i := range r.store.Members {
		if r.store.Members[i].UserID == id && r.store.Members[i].IsActive {
			return apperrors.ErrUserHasDependents
		}
	}

	for i := range r.store.Users {
		if r.store.Users[i].ID == id {
			r.store.Users = append(r.store.Users[:i], r.store.Users[i+1:]...)
			break
		}
	}
	return nil
}

// Stats aggregates a user's workload. Projects count memberships plus managed
// projects; the completion rate is a percentage with a zero-task guard.
func (r *UserRepository) Stats(userID int, now time.Time) (*models.UserStats, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	if r.store.UserByID(userID) == nil {
		return nil, apperrors.ErrUserNotFound
	}

	stats := &models.UserStats{}
	projectIDs := make(map[int]bool)
	for _, m := range r.store.Members {
		if m.UserID == userID && m.IsActive {
			projectIDs[m.ProjectID] = true
		}
	}
	for _, p := range r.store.Projects {
		if p.ProjectManagerID == userID {
			projectIDs[p.ID] = true
		}
	}
	stats.TotalProjects = len(projectIDs)
	for _, p := range r.store.Projects {
		if projectIDs[p.ID] && p.Status == models.ProjectStatusInProgress {
			stats.ActiveProjects++
		}
	}

	for _, t := range r.store.Tasks {
		if t.AssignedToID != userID {
			continue
		}
		stats.TotalTasks++
		if t.Status == models.TaskStatusCompleted {
			stats.CompletedTasks++
		}
		if t.IsOverdue(now) {
			stats.OverdueTasks++
		}
	}
	if stats.TotalTasks > 0 {
		stats.TaskCompletionRate = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	}
	return stats, nil
}
