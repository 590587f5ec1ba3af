package client

import (
	"fmt"
	"net/http"
	"net/url"

	"projecthub-backend/internal/models"
	"projecthub-backend/internal/service"
)

// GetProjects retrieves all projects
func (c *Client) GetProjects() ([]models.Project, error) {
	return getJSON[[]models.Project](c, "/api/v1/projects", nil)
}

// GetProject retrieves a project by id
func (c *Client) GetProject(id int) (*models.Project, error) {
	return getJSON[*models.Project](c, fmt.Sprintf("/api/v1/projects/%d", id), nil)
}

// GetProjectWithDetails retrieves a project joined with tasks and members
func (c *Client) GetProjectWithDetails(id int) (*models.Project, error) {
	return getJSON[*models.Project](c, fmt.Sprintf("/api/v1/projects/%d/details", id), nil)
}

// GetMyProjects retrieves the session user's projects
func (c *Client) GetMyProjects() ([]models.Project, error) {
	return getJSON[[]models.Project](c, "/api/v1/projects/my", nil)
}

// GetProjectsByStatus retrieves projects with the given status
func (c *Client) GetProjectsByStatus(status models.ProjectStatus) ([]models.Project, error) {
	return getJSON[[]models.Project](c, "/api/v1/projects/status/"+string(status), nil)
}

// GetOverdueProjects retrieves projects past their end date
func (c *Client) GetOverdueProjects() ([]models.Project, error) {
	return getJSON[[]models.Project](c, "/api/v1/projects/overdue", nil)
}

// GetProjectStatusCounts retrieves the per-status project counts
func (c *Client) GetProjectStatusCounts() (map[models.ProjectStatus]int, error) {
	return getJSON[map[models.ProjectStatus]int](c, "/api/v1/projects/status-counts", nil)
}

// SearchProjects retrieves projects matching the term
func (c *Client) SearchProjects(term string) ([]models.Project, error) {
	q := url.Values{"q": {term}}
	return getJSON[[]models.Project](c, "/api/v1/projects/search", q)
}

// CreateProject creates a project
func (c *Client) CreateProject(req service.CreateProjectRequest) (*models.Project, error) {
	return postJSON[*models.Project](c, "/api/v1/projects", req)
}

// UpdateProject applies a partial update to a project
func (c *Client) UpdateProject(id int, req service.UpdateProjectRequest) (*models.Project, error) {
	return putJSON[*models.Project](c, fmt.Sprintf("/api/v1/projects/%d", id), req)
}

// DeleteProject removes a project and everything it owns
func (c *Client) DeleteProject(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/v1/projects/%d", id), nil, nil, nil)
}

// GetProjectMembers retrieves a project's memberships
func (c *Client) GetProjectMembers(projectID int) ([]models.ProjectMember, error) {
	return getJSON[[]models.ProjectMember](c, fmt.Sprintf("/api/v1/projects/%d/members", projectID), nil)
}

// AddProjectMember adds a user to a project
func (c *Client) AddProjectMember(projectID int, req service.AddMemberRequest) (*models.ProjectMember, error) {
	return postJSON[*models.ProjectMember](c, fmt.Sprintf("/api/v1/projects/%d/members", projectID), req)
}

// RemoveProjectMember removes a user from a project
func (c *Client) RemoveProjectMember(projectID, userID int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/v1/projects/%d/members/%d", projectID, userID), nil, nil, nil)
}

// UpdateProjectMemberRole changes a member's project-scoped role
func (c *Client) UpdateProjectMemberRole(projectID, userID int, role models.ProjectMemberRole) (*models.ProjectMember, error) {
	return putJSON[*models.ProjectMember](c, fmt.Sprintf("/api/v1/projects/%d/members/%d", projectID, userID), map[string]string{"role": string(role)})
}
