package repository

import (
	"time"

	apperrors "projecthub-backend/internal/errors"
	"projecthub-backend/internal/models"
	"projecthub-backend/internal/store"
)

// NotificationRepository handles store operations for notifications
type NotificationRepository struct {
	store *store.Store
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(s *store.Store) *NotificationRepository {
	return &NotificationRepository{store: s}
}

// GetByUser retrieves a user's notifications newest first, optionally only
// the unread ones
func (r *NotificationRepository) GetByUser(userID int, unreadOnly bool) []models.Notification {
	r.store.RLock()
	defer r.store.RUnlock()

	var out []models.Notification
	// Collections are insertion-ordered and ids are monotonic, so walking
	// backwards yields newest first.
	for i := len(r.store.Notifications) - 1; i >= 0; i-- {
		n := r.store.Notifications[i]
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Counts summarizes a user's inbox, with every known type present in ByType
func (r *NotificationRepository) Counts(userID int) *models.NotificationCounts {
	r.store.RLock()
	defer r.store.RUnlock()

	counts := &models.NotificationCounts{
		ByType: make(map[models.NotificationType]int, len(models.NotificationTypes)),
	}
	for _, t := range models.NotificationTypes {
		counts.ByType[t] = 0
	}
	for _, n := range r.store.Notifications {
		if n.UserID != userID {
			continue
		}
		counts.Total++
		if !n.IsRead {
			counts.Unread++
		}
		counts.ByType[n.Type]++
	}
	return counts
}

// MarkRead marks a notification read. Marking an already-read notification
// is a no-op that keeps the original readAt.
func (r *NotificationRepository) MarkRead(id int, at time.Time) (*models.Notification, error) {
	r.store.Lock()
	defer r.store.Unlock()

	for i := range r.store.Notifications {
		if r.store.Notifications[i].ID != id {
			continue
		}
		if !r.store.Notifications[i].IsRead {
			r.store.Notifications[i].IsRead = true
			t := at
			r.store.Notifications[i].ReadAt = &t
		}
		out := r.store.Notifications[i]
		return &out, nil
	}
	return nil, apperrors.ErrNotificationNotFound
}

// MarkUnread marks a notification unread and clears readAt
func (r *NotificationRepository) MarkUnread(id int) (*models.Notification, error) {
	r.store.Lock()
	defer r.store.Unlock()

	for i := range r.store.Notifications {
		if r.store.Notifications[i].ID != id {
			continue
		}
		r.store.Notifications[i].IsRead = false
		r.store.Notifications[i].ReadAt = nil
		out := r.store.Notifications[i]
		return &out, nil
	}
	return nil, apperrors.ErrNotificationNotFound
}

// MarkAllRead marks every unread notification of the user read and returns
// how many were affected
func (r *NotificationRepository) MarkAllRead(userID int, at time.Time) int {
	r.store.Lock()
	defer r.store.Unlock()

	affected := 0
	for i := range r.store.Notifications {
		if r.store.Notifications[i].UserID != userID || r.store.Notifications[i].IsRead {
			continue
		}
		r.store.Notifications[i].IsRead = true
		t := at
		r.store.Notifications[i].ReadAt = &t
		affected++
	}
	return affected
}

// Delete removes a notification
func (r *NotificationRepository) Delete(id int) error {
	r.store.Lock()
	defer r.store.Unlock()

	for i := range r.store.Notifications {
		if r.store.Notifications[i].ID == id {
			r.store.Notifications = append(r.store.Notifications[:i], r.store.Notifications[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotificationNotFound
}

// Create appends a notification for a single user and assigns its id
func (r *NotificationRepository) Create(n *models.Notification) error {
	r.store.Lock()
	defer r.store.Unlock()
	return r.createLocked(n)
}

// CreateBulk fans one notification out to many users and returns how many
// were created. An unknown recipient fails the whole batch before anything
// is written.
func (r *NotificationRepository) CreateBulk(userIDs []int, template models.Notification) (int, error) {
	r.store.Lock()
	defer r.store.Unlock()

	for _, id := range userIDs {
		if r.store.UserByID(id) == nil {
			return 0, apperrors.NewInvalidReferenceError("user", id)
		}
	}
	for _, id := range userIDs {
		n := template
		n.UserID = id
		if err := r.createLocked(&n); err != nil {
			return 0, err
		}
	}
	return len(userIDs), nil
}

// createLocked appends a notification. Caller holds the write lock.
func (r *NotificationRepository) createLocked(n *models.Notification) error {
	if r.store.UserByID(n.UserID) == nil {
		return apperrors.NewInvalidReferenceError("user", n.UserID)
	}
	n.ID = r.store.NextNotificationID()
	r.store.Notifications = append(r.store.Notifications, *n)
	return nil
}
