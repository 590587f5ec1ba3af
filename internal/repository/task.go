package repository

import (
	"strings"
	"time"

	apperrors "projecthub-backend/internal/errors"
	"projecthub-backend/internal/models"
	"projecthub-backend/internal/store"
)

// TaskRepository handles store operations for tasks and their comments
type TaskRepository struct {
	store *store.Store
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(s *store.Store) *TaskRepository {
	return &TaskRepository{store: s}
}

// GetAll retrieves all tasks in insertion order. Subtasks and comments are
// populated only by GetByID.
func (r *TaskRepository) GetAll() []models.Task {
	r.store.RLock()
	defer r.store.RUnlock()

	tasks := make([]models.Task, len(r.store.Tasks))
	copy(tasks, r.store.Tasks)
	return tasks
}

// GetByID retrieves a task with its direct subtasks and threaded comments
func (r *TaskRepository) GetByID(id int) (*models.Task, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	t := r.store.TaskByID(id)
	if t == nil {
		return nil, apperrors.ErrTaskNotFound
	}
	out := *t
	for _, st := range r.store.Tasks {
		if st.ParentTaskID != nil && *st.ParentTaskID == id {
			out.SubTasks = append(out.SubTasks, st)
		}
	}
	out.Comments = r.threadedComments(id)
	return &out, nil
}

// GetByProject retrieves all tasks belonging to a project
func (r *TaskRepository) GetByProject(projectID int) ([]models.Task, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	if r.store.ProjectByID(projectID) == nil {
		return nil, apperrors.ErrProjectNotFound
	}
	var tasks []models.Task
	for _, t := range r.store.Tasks {
		if t.ProjectID == projectID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// GetByAssignee retrieves a user's tasks, optionally filtered by status
func (r *TaskRepository) GetByAssignee(userID int, status models.TaskStatus) []models.Task {
	r.store.RLock()
	defer r.store.RUnlock()

	var tasks []models.Task
	for _, t := range r.store.Tasks {
		if t.AssignedToID != userID {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks
}

// GetByStatus retrieves all tasks with the given status
func (r *TaskRepository) GetByStatus(status models.TaskStatus) []models.Task {
	r.store.RLock()
	defer r.store.RUnlock()

	var tasks []models.Task
	for _, t := range r.store.Tasks {
		if t.Status == status {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// GetOverdue retrieves tasks whose due date has passed without completion
func (r *TaskRepository) GetOverdue(now time.Time) []models.Task {
	r.store.RLock()
	defer r.store.RUnlock()

	var tasks []models.Task
	for _, t := range r.store.Tasks {
		if t.IsOverdue(now) {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// GetDueSoon retrieves incomplete tasks due within the given number of days
func (r *TaskRepository) GetDueSoon(now time.Time, days int) []models.Task {
	r.store.RLock()
	defer r.store.RUnlock()

	horizon := now.AddDate(0, 0, days)
	var tasks []models.Task
	for _, t := range r.store.Tasks {
		if t.Status == models.TaskStatusCompleted || t.Status == models.TaskStatusCancelled {
			continue
		}
		if !t.DueDate.Before(now) && !t.DueDate.After(horizon) {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// StatusCounts returns the number of tasks per status, scoped to a project
// when projectID is non-zero. Every known status is present in the map.
func (r *TaskRepository) StatusCounts(projectID int) map[models.TaskStatus]int {
	r.store.RLock()
	defer r.store.RUnlock()

	counts := make(map[models.TaskStatus]int, len(models.TaskStatuses))
	for _, s := range models.TaskStatuses {
		counts[s] = 0
	}
	for _, t := range r.store.Tasks {
		if projectID != 0 && t.ProjectID != projectID {
			continue
		}
		counts[t.Status]++
	}
	return counts
}

// Search retrieves tasks whose title, description or tags contain the term,
// case-insensitively, scoped to a project when projectID is non-zero
func (r *TaskRepository) Search(term string, projectID int) []models.Task {
	r.store.RLock()
	defer r.store.RUnlock()

	q := strings.ToLower(strings.TrimSpace(term))
	var tasks []models.Task
	for _, t := range r.store.Tasks {
		if projectID != 0 && t.ProjectID != projectID {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) &&
			!strings.Contains(strings.ToLower(t.Tags), q) {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks
}

// Create appends a new task and assigns its id. Project, assignee and parent
// references are resolved before anything is written; a failed resolution
// leaves the store untouched.
func (r *TaskRepository) Create(t *models.Task) error {
	r.store.Lock()
	defer r.store.Unlock()

	p := r.store.ProjectByID(t.ProjectID)
	if p == nil {
		return apperrors.NewInvalidReferenceError("project", t.ProjectID)
	}
	assignee := r.store.UserByID(t.AssignedToID)
	if assignee == nil {
		return apperrors.NewInvalidReferenceError("user", t.AssignedToID)
	}
	if t.ParentTaskID != nil {
		parent := r.store.TaskByID(*t.ParentTaskID)
		if parent == nil {
			return apperrors.NewInvalidReferenceError("task", *t.ParentTaskID)
		}
	}

	t.ID = r.store.NextTaskID()
	t.Project = store.ProjectRef(*p)
	t.AssignedTo = *assignee
	r.store.Tasks = append(r.store.Tasks, *t)
	return nil
}

// Update replaces the stored task, re-resolving its snapshots. A parent
// change is rejected when it would form a cycle through the subtask tree.
func (r *TaskRepository) Update(t models.Task) error {
	r.store.Lock()
	defer r.store.Unlock()

	p := r.store.ProjectByID(t.ProjectID)
	if p == nil {
		return apperrors.NewInvalidReferenceError("project", t.ProjectID)
	}
	assignee := r.store.UserByID(t.AssignedToID)
	if assignee == nil {
		return apperrors.NewInvalidReferenceError("user", t.AssignedToID)
	}
	if t.ParentTaskID != nil {
		if err := r.checkParent(t.ID, *t.ParentTaskID); err != nil {
			return err
		}
	}

	t.Project = store.ProjectRef(*p)
	t.AssignedTo = *assignee
	for i := range r.store.Tasks {
		if r.store.Tasks[i].ID != t.ID {
			continue
		}
		// Joined views are built on read, never stored.
		t.SubTasks = nil
		t.Comments = nil
		r.store.Tasks[i] = t
		return nil
	}
	return apperrors.ErrTaskNotFound
}

// checkParent validates a parent assignment: the parent must exist, differ
// from the task, and not be one of the task's descendants. Caller holds the
// lock.
func (r *TaskRepository) checkParent(taskID, parentID int) error {
	if parentID == taskID {
		return apperrors.ErrParentTaskCycle
	}
	if r.store.TaskByID(parentID) == nil {
		return apperrors.NewInvalidReferenceError("task", parentID)
	}
	// Walk up from the proposed parent; hitting taskID means a cycle.
	cur := parentID
	for {
		t := r.store.TaskByID(cur)
		if t == nil || t.ParentTaskID == nil {
			return nil
		}
		cur = *t.ParentTaskID
		if cur == taskID {
			return apperrors.ErrParentTaskCycle
		}
	}
}

// Delete removes a task, its comments and its whole subtask subtree
func (r *TaskRepository) Delete(id int) error {
	r.store.Lock()
	defer r.store.Unlock()

	if r.store.TaskByID(id) == nil {
		return apperrors.ErrTaskNotFound
	}

	doomed := map[int]bool{id: true}
	// Children appear after parents is not guaranteed, so iterate until the
	// subtree closure stops growing.
	for {
		grew := false
		for _, t := range r.store.Tasks {
			if t.ParentTaskID != nil && doomed[*t.ParentTaskID] && !doomed[t.ID] {
				doomed[t.ID] = true
				grew = true
			}
		}
		if !grew {
			break
		}
	}

	comments := r.store.Comments[:0]
	for _, c := range r.store.Comments {
		if !doomed[c.TaskID] {
			comments = append(comments, c)
		}
	}
	r.store.Comments = comments

	tasks := r.store.Tasks[:0]
	for _, t := range r.store.Tasks {
		if !doomed[t.ID] {
			tasks = append(tasks, t)
		}
	}
	r.store.Tasks = tasks
	return nil
}

// Assign reassigns a task, resolving the new assignee snapshot
func (r *TaskRepository) Assign(taskID, userID int, at time.Time) (*models.Task, error) {
	r.store.Lock()
	defer r.store.Unlock()

	t := r.store.TaskByID(taskID)
	if t == nil {
		return nil, apperrors.ErrTaskNotFound
	}
	u := r.store.UserByID(userID)
	if u == nil {
		return nil, apperrors.NewInvalidReferenceError("user", userID)
	}
	t.AssignedToID = userID
	t.AssignedTo = *u
	t.UpdatedAt = at
	out := *t
	return &out, nil
}

// UpdateStatus changes a task's workflow status
func (r *TaskRepository) UpdateStatus(taskID int, status models.TaskStatus, at time.Time) (*models.Task, error) {
	r.store.Lock()
	defer r.store.Unlock()

	t := r.store.TaskByID(taskID)
	if t == nil {
		return nil, apperrors.ErrTaskNotFound
	}
	t.Status = status
	t.UpdatedAt = at
	out := *t
	return &out, nil
}

// UpdateProgress changes a task's progress percentage
func (r *TaskRepository) UpdateProgress(taskID, progress int, at time.Time) (*models.Task, error) {
	r.store.Lock()
	defer r.store.Unlock()

	t := r.store.TaskByID(taskID)
	if t == nil {
		return nil, apperrors.ErrTaskNotFound
	}
	t.Progress = progress
	t.UpdatedAt = at
	out := *t
	return &out, nil
}

// GetComments retrieves a task's comments as a thread: top-level comments in
// insertion order, replies nested one level under their parent
func (r *TaskRepository) GetComments(taskID int) ([]models.TaskComment, error) {
	r.store.RLock()
	defer r.store.RUnlock()

	if r.store.TaskByID(taskID) == nil {
		return nil, apperrors.ErrTaskNotFound
	}
	return r.threadedComments(taskID), nil
}

// threadedComments builds the reply tree for a task. Caller holds the lock.
func (r *TaskRepository) threadedComments(taskID int) []models.TaskComment {
	byParent := make(map[int][]models.TaskComment)
	var roots []models.TaskComment
	for _, c := range r.store.Comments {
		if c.TaskID != taskID {
			continue
		}
		if c.ParentCommentID == nil {
			roots = append(roots, c)
		} else {
			byParent[*c.ParentCommentID] = append(byParent[*c.ParentCommentID], c)
		}
	}
	var attach func(c *models.TaskComment)
	attach = func(c *models.TaskComment) {
		c.Replies = byParent[c.ID]
		for i := range c.Replies {
			attach(&c.Replies[i])
		}
	}
	for i := range roots {
		attach(&roots[i])
	}
	return roots
}

// AddComment appends a comment to a task, resolving the author snapshot
func (r *TaskRepository) AddComment(c *models.TaskComment) error {
	r.store.Lock()
	defer r.store.Unlock()

	if r.store.TaskByID(c.TaskID) == nil {
		return apperrors.NewInvalidReferenceError("task", c.TaskID)
	}
	u := r.store.UserByID(c.UserID)
	if u == nil {
		return apperrors.NewInvalidReferenceError("user", c.UserID)
	}
	if c.ParentCommentID != nil {
		found := false
		for i := range r.store.Comments {
			if r.store.Comments[i].ID == *c.ParentCommentID && r.store.Comments[i].TaskID == c.TaskID {
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewInvalidReferenceError("comment", *c.ParentCommentID)
		}
	}

	c.ID = r.store.NextCommentID()
	c.User = *u
	r.store.Comments = append(r.store.Comments, *c)
	return nil
}
