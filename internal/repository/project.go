package repository

import (
	"strings"
	"time"

	apperrors "projecthub-backend/internal/errors"
	"projecthub-backend/internal/models"
	"projecthub-backend/internal/store"
)

// ProjectRepository handles store operations for projects and their members
type ProjectRepository struct {
	store *store.Store
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(s *store.Store) *ProjectRepository {
	return &ProjectRepository{store: s}
}

// GetAll retrieves all projects in insertion order. Tasks and Members are
// left empty on list reads; use GetWithDetails for the joined view.
func (r *ProjectRepository) GetAll() []models.Project {
	r.store.RLock()
	defer r.store.RUnlock()

	projects := make([]models.Project, len(r.store.Projects))
	copy(projects, r.store.Projects)
	return projects
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id int) (*models.Project, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	p := r.store.ProjectByID(id)
	if p == nil {
		return nil, apperrors.ErrProjectNotFound
	}
	out := *p
	return &out, nil
}

// GetWithDetails retrieves a project with its tasks and members populated
func (r *ProjectRepository) GetWithDetails(id int) (*models.Project, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	p := r.store.ProjectByID(id)
	if p == nil {
		return nil, apperrors.ErrProjectNotFound
	}
	out := *p
	for _, t := range r.store.Tasks {
		if t.ProjectID == id {
			out.Tasks = append(out.Tasks, t)
		}
	}
	for _, m := range r.store.Members {
		if m.ProjectID == id {
			out.Members = append(out.Members, m)
		}
	}
	return &out, nil
}

// GetForUser retrieves projects the user manages or is an active member of
func (r *ProjectRepository) GetForUser(userID int) []models.Project {
	r.store.RLock()
	defer r.store.RUnlock()

	memberOf := make(map[int]bool)
	for _, m := range r.store.Members {
		if m.UserID == userID && m.IsActive {
			memberOf[m.ProjectID] = true
		}
	}

	var projects []models.Project
	for _, p := range r.store.Projects {
		if p.ProjectManagerID == userID || memberOf[p.ID] {
			projects = append(projects, p)
		}
	}
	return projects
}

// GetByStatus retrieves all projects with the given status
func (r *ProjectRepository) GetByStatus(status models.ProjectStatus) []models.Project {
	r.store.RLock()
	defer r.store.RUnlock()

	var projects []models.Project
	for _, p := range r.store.Projects {
		if p.Status == status {
			projects = append(projects, p)
		}
	}
	return projects
}

// GetOverdue retrieves projects whose end date has passed without completion
func (r *ProjectRepository) GetOverdue(now time.Time) []models.Project {
	r.store.RLock()
	defer r.store.RUnlock()

	var projects []models.Project
	for _, p := range r.store.Projects {
		if p.IsOverdue(now) {
			projects = append(projects, p)
		}
	}
	return projects
}

// StatusCounts returns the number of projects per status, with every known
// status present in the map
func (r *ProjectRepository) StatusCounts() map[models.ProjectStatus]int {
	r.store.RLock()
	defer r.store.RUnlock()

	counts := make(map[models.ProjectStatus]int, len(models.ProjectStatuses))
	for _, s := range models.ProjectStatuses {
		counts[s] = 0
	}
	for _, p := range r.store.Projects {
		counts[p.Status]++
	}
	return counts
}

// Search retrieves projects whose name or description contains the term,
// case-insensitively
func (r *ProjectRepository) Search(term string) []models.Project {
	r.store.RLock()
	defer r.store.RUnlock()

	q := strings.ToLower(strings.TrimSpace(term))
	var projects []models.Project
	for _, p := range r.store.Projects {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			projects = append(projects, p)
		}
	}
	return projects
}

// Create appends a new project and assigns its id. The manager reference is
// resolved into an embedded snapshot; an unknown manager fails the write.
func (r *ProjectRepository) Create(p *models.Project) error {
	r.store.Lock()
	defer r.store.Unlock()

	manager := r.store.UserByID(p.ProjectManagerID)
	if manager == nil {
		return apperrors.NewInvalidReferenceError("user", p.ProjectManagerID)
	}

	p.ID = r.store.NextProjectID()
	p.ProjectManager = *manager
	r.store.Projects = append(r.store.Projects, *p)
	return nil
}

// Update replaces the stored project, re-resolving the manager snapshot and
// refreshing the project snapshot embedded on its tasks
func (r *ProjectRepository) Update(p models.Project) error {
	r.store.Lock()
	defer r.store.Unlock()

	manager := r.store.UserByID(p.ProjectManagerID)
	if manager == nil {
		return apperrors.NewInvalidReferenceError("user", p.ProjectManagerID)
	}
	p.ProjectManager = *manager

	for i := range r.store.Projects {
		if r.store.Projects[i].ID != p.ID {
			continue
		}
		// Tasks/Members are a detail-read join, never stored on the row.
		p.Tasks = nil
		p.Members = nil
		r.store.Projects[i] = p
		r.store.RefreshProjectSnapshots(p)
		return nil
	}
	return apperrors.ErrProjectNotFound
}

// Delete removes a project together with its tasks, those tasks' comments
// and its memberships. Activities keep their captured snapshots.
func (r *ProjectRepository) Delete(id int) error {
	r.store.Lock()
	defer r.store.Unlock()

	if r.store.ProjectByID(id) == nil {
		return apperrors.ErrProjectNotFound
	}

	taskIDs := make(map[int]bool)
	for _, t := range r.store.Tasks {
		if t.ProjectID == id {
			taskIDs[t.ID] = true
		}
	}

	comments := r.store.Comments[:0]
	for _, c := range r.store.Comments {
		if !taskIDs[c.TaskID] {
			comments = append(comments, c)
		}
	}
	r.store.Comments = comments

	tasks := r.store.Tasks[:0]
	for _, t := range r.store.Tasks {
		if t.ProjectID != id {
			tasks = append(tasks, t)
		}
	}
	r.store.Tasks = tasks

	members := r.store.Members[:0]
	for _, m := range r.store.Members {
		if m.ProjectID != id {
			members = append(members, m)
		}
	}
	r.store.Members = members

	for i := range r.store.Projects {
		if r.store.Projects[i].ID == id {
			r.store.Projects = append(r.store.Projects[:i], r.store.Projects[i+1:]...)
			break
		}
	}
	return nil
}

// ListMembers retrieves all memberships of a project
func (r *ProjectRepository) ListMembers(projectID int) ([]models.ProjectMember, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	if r.store.ProjectByID(projectID) == nil {
		return nil, apperrors.ErrProjectNotFound
	}
	var members []models.ProjectMember
	for _, m := range r.store.Members {
		if m.ProjectID == projectID {
			members = append(members, m)
		}
	}
	return members, nil
}

// AddMember appends a membership, resolving the user snapshot. A user can
// hold at most one membership per project.
func (r *ProjectRepository) AddMember(m *models.ProjectMember) error {
	r.store.Lock()
	defer r.store.Unlock()

	if r.store.ProjectByID(m.ProjectID) == nil {
		return apperrors.NewInvalidReferenceError("project", m.ProjectID)
	}
	u := r.store.UserByID(m.UserID)
	if u == nil {
		return apperrors.NewInvalidReferenceError("user", m.UserID)
	}
	for i := range r.store.Members {
		if r.store.Members[i].ProjectID == m.ProjectID && r.store.Members[i].UserID == m.UserID {
			return apperrors.ErrMemberExists
		}
	}

	m.ID = r.store.NextMemberID()
	m.User = *u
	r.store.Members = append(r.store.Members, *m)
	return nil
}

// RemoveMember deletes the membership linking the user to the project
func (r *ProjectRepository) RemoveMember(projectID, userID int) error {
	r.store.Lock()
	defer r.store.Unlock()

	for i := range r.store.Members {
		if r.store.Members[i].ProjectID == projectID && r.store.Members[i].UserID == userID {
			r.store.Members = append(r.store.Members[:i], r.store.Members[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrMemberNotFound
}

// UpdateMemberRole changes the project-scoped role of a member
func (r *ProjectRepository) UpdateMemberRole(projectID, userID int, role models.ProjectMemberRole) (*models.ProjectMember, error) {
	r.store.Lock()
	defer r.store.Unlock()

	for i := range r.store.Members {
		if r.store.Members[i].ProjectID == projectID && r.store.Members[i].UserID == userID {
			r.store.Members[i].Role = role
			out := r.store.Members[i]
			return &out, nil
		}
	}
	return nil, apperrors.ErrMemberNotFound
}
