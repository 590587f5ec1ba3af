package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"projecthub-backend/internal/models"
	"projecthub-backend/internal/service"
)

// GetTasks retrieves all tasks
func (c *Client) GetTasks() ([]models.Task, error) {
	return getJSON[[]models.Task](c, "/api/v1/tasks", nil)
}

// GetTask retrieves a task with its subtasks and comment thread
func (c *Client) GetTask(id int) (*models.Task, error) {
	return getJSON[*models.Task](c, fmt.Sprintf("/api/v1/tasks/%d", id), nil)
}

// GetMyTasks retrieves the session user's tasks, optionally by status
func (c *Client) GetMyTasks(status models.TaskStatus) ([]models.Task, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}
	return getJSON[[]models.Task](c, "/api/v1/tasks/my", q)
}

// GetTasksByProject retrieves a project's tasks
func (c *Client) GetTasksByProject(projectID int) ([]models.Task, error) {
	return getJSON[[]models.Task](c, fmt.Sprintf("/api/v1/tasks/project/%d", projectID), nil)
}

// GetTasksByStatus retrieves tasks with the given status
func (c *Client) GetTasksByStatus(status models.TaskStatus) ([]models.Task, error) {
	return getJSON[[]models.Task](c, "/api/v1/tasks/status/"+string(status), nil)
}

// GetOverdueTasks retrieves tasks past their due date
func (c *Client) GetOverdueTasks() ([]models.Task, error) {
	return getJSON[[]models.Task](c, "/api/v1/tasks/overdue", nil)
}

// GetTasksDueSoon retrieves incomplete tasks due within the given days
func (c *Client) GetTasksDueSoon(days int) ([]models.Task, error) {
	q := url.Values{"days": {strconv.Itoa(days)}}
	return getJSON[[]models.Task](c, "/api/v1/tasks/due-soon", q)
}

// GetTaskStatusCounts retrieves per-status task counts, optionally scoped
// to a project
func (c *Client) GetTaskStatusCounts(projectID int) (map[models.TaskStatus]int, error) {
	q := url.Values{}
	if projectID != 0 {
		q.Set("projectId", strconv.Itoa(projectID))
	}
	return getJSON[map[models.TaskStatus]int](c, "/api/v1/tasks/status-counts", q)
}

// SearchTasks retrieves tasks matching the term
func (c *Client) SearchTasks(term string, projectID int) ([]models.Task, error) {
	q := url.Values{"q": {term}}
	if projectID != 0 {
		q.Set("projectId", strconv.Itoa(projectID))
	}
	return getJSON[[]models.Task](c, "/api/v1/tasks/search", q)
}

// CreateTask creates a task
func (c *Client) CreateTask(req service.CreateTaskRequest) (*models.Task, error) {
	return postJSON[*models.Task](c, "/api/v1/tasks", req)
}

// UpdateTask applies a partial update to a task
func (c *Client) UpdateTask(id int, req service.UpdateTaskRequest) (*models.Task, error) {
	return putJSON[*models.Task](c, fmt.Sprintf("/api/v1/tasks/%d", id), req)
}

// DeleteTask removes a task and its subtree
func (c *Client) DeleteTask(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/v1/tasks/%d", id), nil, nil, nil)
}

// AssignTask reassigns a task to a user
func (c *Client) AssignTask(taskID, userID int) (*models.Task, error) {
	return postJSON[*models.Task](c, fmt.Sprintf("/api/v1/tasks/%d/assign", taskID), map[string]int{"userId": userID})
}

// UpdateTaskStatus changes a task's workflow status
func (c *Client) UpdateTaskStatus(taskID int, status models.TaskStatus) (*models.Task, error) {
	return postJSON[*models.Task](c, fmt.Sprintf("/api/v1/tasks/%d/status", taskID), map[string]string{"status": string(status)})
}

// UpdateTaskProgress changes a task's progress percentage
func (c *Client) UpdateTaskProgress(taskID, progress int) (*models.Task, error) {
	return postJSON[*models.Task](c, fmt.Sprintf("/api/v1/tasks/%d/progress", taskID), map[string]int{"progress": progress})
}

// GetTaskComments retrieves a task's comment thread
func (c *Client) GetTaskComments(taskID int) ([]models.TaskComment, error) {
	return getJSON[[]models.TaskComment](c, fmt.Sprintf("/api/v1/tasks/%d/comments", taskID), nil)
}

// AddTaskComment comments on a task as the session user
func (c *Client) AddTaskComment(taskID int, req service.AddCommentRequest) (*models.TaskComment, error) {
	return postJSON[*models.TaskComment](c, fmt.Sprintf("/api/v1/tasks/%d/comments", taskID), req)
}
