package repository

import (
	"sort"
	"strings"

	apperrors "projecthub-backend/internal/errors"
	"projecthub-backend/internal/models"
	"projecthub-backend/internal/store"
)

// ActivityRepository handles store operations for the project activity feed
type ActivityRepository struct {
	store *store.Store
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(s *store.Store) *ActivityRepository {
	return &ActivityRepository{store: s}
}

// GetRecent retrieves the newest activities, optionally scoped to a project
// and/or user (zero means unscoped), capped at limit
func (r *ActivityRepository) GetRecent(limit, projectID, userID int) []models.Activity {
	activities := r.filter("", projectID, userID)
	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	return activities
}

// GetByProject retrieves a project's full activity feed newest first
func (r *ActivityRepository) GetByProject(projectID int) ([]models.Activity, error) {
	r.store.RLock()
	exists := r.store.ProjectByID(projectID) != nil
	r.store.RUnlock()
	if !exists {
		return nil, apperrors.ErrProjectNotFound
	}
	return r.filter("", projectID, 0), nil
}

// Search retrieves activities whose description contains the term,
// case-insensitively, newest first, optionally scoped to a project
func (r *ActivityRepository) Search(term string, projectID int) []models.Activity {
	return r.filter(term, projectID, 0)
}

// filter collects matching activities sorted by createdAt descending.
// Ties keep the higher id first so the order is stable.
func (r *ActivityRepository) filter(term string, projectID, userID int) []models.Activity {
	r.store.RLock()
	defer r.store.RUnlock()

	q := strings.ToLower(strings.TrimSpace(term))
	var out []models.Activity
	for _, a := range r.store.Activities {
		if projectID != 0 && a.ProjectID != projectID {
			continue
		}
		if userID != 0 && a.UserID != userID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(a.Description), q) {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Record appends an activity entry, capturing project and user snapshots as
// they stand now. Snapshots on activities are never refreshed afterwards.
func (r *ActivityRepository) Record(a *models.Activity) error {
	r.store.Lock()
	defer r.store.Unlock()

	p := r.store.ProjectByID(a.ProjectID)
	if p == nil {
		return apperrors.NewInvalidReferenceError("project", a.ProjectID)
	}
	u := r.store.UserByID(a.UserID)
	if u == nil {
		return apperrors.NewInvalidReferenceError("user", a.UserID)
	}

	a.ID = r.store.NextActivityID()
	a.Project = store.ProjectRef(*p)
	a.User = *u
	r.store.Activities = append(r.store.Activities, *a)
	return nil
}

// Stats aggregates activity volume, optionally scoped to a project and/or
// user (zero means unscoped)
func (r *ActivityRepository) Stats(projectID, userID int) *models.ActivityStats {
	r.store.RLock()
	defer r.store.RUnlock()

	stats := &models.ActivityStats{
		ByType: make(map[models.ActivityType]int),
		ByUser: make(map[int]int),
	}
	for _, a := range r.store.Activities {
		if projectID != 0 && a.ProjectID != projectID {
			continue
		}
		if userID != 0 && a.UserID != userID {
			continue
		}
		stats.Total++
		stats.ByType[a.ActivityType]++
		stats.ByUser[a.UserID]++
	}
	return stats
}
