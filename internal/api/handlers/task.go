package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"projecthub-backend/internal/auth"
	"projecthub-backend/internal/models"
	"projecthub-backend/internal/service"
)

// TaskHandler handles HTTP requests for task operations
type TaskHandler struct {
	taskService service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks handles GET /tasks
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Success 200 {array} models.Task
// @Router /api/v1/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetMyTasks handles GET /tasks/my. Without a session the list is empty.
func (h *TaskHandler) GetMyTasks(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	tasks, err := h.taskService.GetMy(session, models.TaskStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetOverdueTasks handles GET /tasks/overdue
func (h *TaskHandler) GetOverdueTasks(c *gin.Context) {
	tasks, err := h.taskService.GetOverdue()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTasksDueSoon handles GET /tasks/due-soon
func (h *TaskHandler) GetTasksDueSoon(c *gin.Context) {
	tasks, err := h.taskService.GetDueSoon(queryInt(c, "days", 7))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTaskStatusCounts handles GET /tasks/status-counts
func (h *TaskHandler) GetTaskStatusCounts(c *gin.Context) {
	counts, err := h.taskService.GetStatusCounts(queryInt(c, "projectId", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// GetTasksByStatus handles GET /tasks/status/:status
func (h *TaskHandler) GetTasksByStatus(c *gin.Context) {
	tasks, err := h.taskService.GetByStatus(models.TaskStatus(c.Param("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// SearchTasks handles GET /tasks/search
func (h *TaskHandler) SearchTasks(c *gin.Context) {
	tasks, err := h.taskService.Search(c.Query("q"), queryInt(c, "projectId", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTasksByProject handles GET /tasks/project/:projectId
func (h *TaskHandler) GetTasksByProject(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	tasks, err := h.taskService.GetByProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTask handles GET /tasks/:id
// @Summary Get a task
// @Description Returns the task with its subtasks and threaded comments
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} models.Task
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	task, err := h.taskService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask handles POST /tasks
// @Summary Create a task
// @Description New tasks start in ToDo at zero progress; the assignee is notified
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body service.CreateTaskRequest true "New task"
// @Success 201 {object} models.Task
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{} "Unknown project, assignee or parent task"
// @Security BearerAuth
// @Router /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	task, err := h.taskService.Create(session, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	task, err := h.taskService.Update(session, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.taskService.Delete(session, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AssignTask handles POST /tasks/:id/assign
func (h *TaskHandler) AssignTask(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		UserID int `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}
	task, err := h.taskService.Assign(session, id, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTaskStatus handles POST /tasks/:id/status
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	task, err := h.taskService.UpdateStatus(session, id, models.TaskStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTaskProgress handles POST /tasks/:id/progress
func (h *TaskHandler) UpdateTaskProgress(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Progress *int `json:"progress" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Progress == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "progress is required"})
		return
	}
	task, err := h.taskService.UpdateProgress(session, id, *req.Progress)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// GetTaskComments handles GET /tasks/:id/comments
func (h *TaskHandler) GetTaskComments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	comments, err := h.taskService.GetComments(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// AddTaskComment handles POST /tasks/:id/comments
// @Summary Comment on a task
// @Description The comment is attributed to the session user; the assignee is notified
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body service.AddCommentRequest true "Comment"
// @Success 201 {object} models.TaskComment
// @Failure 401 {object} map[string]interface{} "No session"
// @Security BearerAuth
// @Router /api/v1/tasks/{id}/comments [post]
func (h *TaskHandler) AddTaskComment(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	comment, err := h.taskService.AddComment(session, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
