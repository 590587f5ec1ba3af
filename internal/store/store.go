// Package store holds the authoritative in-memory state for all entity
// collections. It exposes the collections and a lock; the repository layer
// implements queries and mutations on top of it.
package store

import (
	"sync"

	"projecthub-backend/internal/models"
)

// Store is the in-memory database. Collections preserve insertion order.
// Ids are assigned from per-collection counters and are never reused, so
// deletions cannot corrupt subsequent assignment.
//
// All exported fields are guarded by the store lock: hold RLock for reads
// and Lock for any mutation, including id assignment.
type Store struct {
	mu sync.RWMutex

	Users         []models.User
	Projects      []models.Project
	Members       []models.ProjectMember
	Tasks         []models.Task
	Comments      []models.TaskComment
	Notifications []models.Notification
	Activities    []models.Activity

	nextUserID         int
	nextProjectID      int
	nextMemberID       int
	nextTaskID         int
	nextCommentID      int
	nextNotificationID int
	nextActivityID     int
}

// New returns an empty store with all id counters starting at 1.
func New() *Store {
	return &Store{
		nextUserID:         1,
		nextProjectID:      1,
		nextMemberID:       1,
		nextTaskID:         1,
		nextCommentID:      1,
		nextNotificationID: 1,
		nextActivityID:     1,
	}
}

func (s *Store) Lock()    { s.mu.Lock() }
func (s *Store) Unlock()  { s.mu.Unlock() }
func (s *Store) RLock()   { s.mu.RLock() }
func (s *Store) RUnlock() { s.mu.RUnlock() }

// Id assignment. Callers must hold the write lock.

func (s *Store) NextUserID() int {
	id := s.nextUserID
	s.nextUserID++
	return id
}

func (s *Store) NextProjectID() int {
	id := s.nextProjectID
	s.nextProjectID++
	return id
}

func (s *Store) NextMemberID() int {
	id := s.nextMemberID
	s.nextMemberID++
	return id
}

func (s *Store) NextTaskID() int {
	id := s.nextTaskID
	s.nextTaskID++
	return id
}

func (s *Store) NextCommentID() int {
	id := s.nextCommentID
	s.nextCommentID++
	return id
}

func (s *Store) NextNotificationID() int {
	id := s.nextNotificationID
	s.nextNotificationID++
	return id
}

func (s *Store) NextActivityID() int {
	id := s.nextActivityID
	s.nextActivityID++
	return id
}

// UserByID returns a pointer into the Users collection, or nil.
// Callers must hold at least the read lock.
func (s *Store) UserByID(id int) *models.User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// ProjectByID returns a pointer into the Projects collection, or nil.
// Callers must hold at least the read lock.
func (s *Store) ProjectByID(id int) *models.Project {
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			return &s.Projects[i]
		}
	}
	return nil
}

// TaskByID returns a pointer into the Tasks collection, or nil.
// Callers must hold at least the read lock.
func (s *Store) TaskByID(id int) *models.Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

// ProjectRef returns a flat snapshot of a project suitable for embedding on
// tasks and activities: owned collections are stripped so reads stay flat.
func ProjectRef(p models.Project) *models.Project {
	ref := p
	ref.Tasks = nil
	ref.Members = nil
	return &ref
}

// RefreshUserSnapshots re-resolves every embedded copy of the given user
// across projects, members, tasks and comments. Activities keep the snapshot
// captured when they were recorded. Callers must hold the write lock.
func (s *Store) RefreshUserSnapshots(u models.User) {
	for i := range s.Projects {
		if s.Projects[i].ProjectManagerID == u.ID {
			s.Projects[i].ProjectManager = u
		}
	}
	for i := range s.Members {
		if s.Members[i].UserID == u.ID {
			s.Members[i].User = u
		}
	}
	for i := range s.Tasks {
		if s.Tasks[i].AssignedToID == u.ID {
			s.Tasks[i].AssignedTo = u
		}
		// The embedded project ref may be aliased by task copies already
		// returned to callers; fork it instead of writing through it.
		if s.Tasks[i].Project != nil && s.Tasks[i].Project.ProjectManagerID == u.ID {
			ref := *s.Tasks[i].Project
			ref.ProjectManager = u
			s.Tasks[i].Project = &ref
		}
	}
	for i := range s.Comments {
		if s.Comments[i].UserID == u.ID {
			s.Comments[i].User = u
		}
	}
}

// RefreshProjectSnapshots re-resolves the embedded project copy on every
// task that belongs to the given project. Callers must hold the write lock.
func (s *Store) RefreshProjectSnapshots(p models.Project) {
	ref := ProjectRef(p)
	for i := range s.Tasks {
		if s.Tasks[i].ProjectID == p.ID {
			s.Tasks[i].Project = ref
		}
	}
}
