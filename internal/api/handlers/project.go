package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"projecthub-backend/internal/auth"
	"projecthub-backend/internal/models"
	"projecthub-backend/internal/service"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects handles GET /projects
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project
// @Router /api/v1/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetMyProjects handles GET /projects/my. Without a session the list is
// empty, not an error.
func (h *ProjectHandler) GetMyProjects(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	projects, err := h.projectService.GetMy(session)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetOverdueProjects handles GET /projects/overdue
func (h *ProjectHandler) GetOverdueProjects(c *gin.Context) {
	projects, err := h.projectService.GetOverdue()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProjectStatusCounts handles GET /projects/status-counts
func (h *ProjectHandler) GetProjectStatusCounts(c *gin.Context) {
	counts, err := h.projectService.GetStatusCounts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// GetProjectsByStatus handles GET /projects/status/:status
func (h *ProjectHandler) GetProjectsByStatus(c *gin.Context) {
	projects, err := h.projectService.GetByStatus(models.ProjectStatus(c.Param("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// SearchProjects handles GET /projects/search
func (h *ProjectHandler) SearchProjects(c *gin.Context) {
	projects, err := h.projectService.Search(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /projects/:id
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// GetProjectWithDetails handles GET /projects/:id/details
func (h *ProjectHandler) GetProjectWithDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	project, err := h.projectService.GetWithDetails(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject handles POST /projects
// @Summary Create a project
// @Description New projects start in Planning with zero actual cost
// @Tags projects
// @Accept json
// @Produce json
// @Param request body service.CreateProjectRequest true "New project"
// @Success 201 {object} models.Project
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{} "Unknown project manager"
// @Security BearerAuth
// @Router /api/v1/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	project, err := h.projectService.Create(session, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject handles PUT /projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	project, err := h.projectService.Update(session, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:id
// @Summary Delete a project
// @Description Cascades to the project's tasks, comments and memberships
// @Tags projects
// @Param id path int true "Project ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/v1/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.projectService.Delete(session, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetProjectMembers handles GET /projects/:id/members
func (h *ProjectHandler) GetProjectMembers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	members, err := h.projectService.ListMembers(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// AddProjectMember handles POST /projects/:id/members
func (h *ProjectHandler) AddProjectMember(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	member, err := h.projectService.AddMember(session, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// RemoveProjectMember handles DELETE /projects/:id/members/:userId
func (h *ProjectHandler) RemoveProjectMember(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if err := h.projectService.RemoveMember(session, id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateProjectMemberRole handles PUT /projects/:id/members/:userId
func (h *ProjectHandler) UpdateProjectMemberRole(c *gin.Context) {
	session, _ := auth.CurrentSession(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role is required"})
		return
	}
	member, err := h.projectService.UpdateMemberRole(session, id, userID, models.ProjectMemberRole(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}
