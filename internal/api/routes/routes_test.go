package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"projecthub-backend/internal/auth"
	"projecthub-backend/internal/config"
	"projecthub-backend/internal/models"
	"projecthub-backend/internal/store"
)

// RoutesTestSuite drives the full router over a seeded store
type RoutesTestSuite struct {
	suite.Suite
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s, err := store.Seed()
	suite.Require().NoError(err)

	cfg := &config.Config{
		Environment:    "test",
		Port:           "0",
		LogLevel:       "error",
		JWTSecret:      "test-secret",
		SessionTTLMin:  30,
		MockPassword:   "password",
		MockLatencyMS:  0,
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	suite.router = SetupRoutes(s, cfg)
}

func (suite *RoutesTestSuite) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RoutesTestSuite) login(email string) *auth.LoginResponse {
	w := suite.request(http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": "password",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp auth.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return &resp
}

// TestHealth tests the liveness endpoint and its entity counts
func (suite *RoutesTestSuite) TestHealth() {
	w := suite.request(http.MethodGet, "/health", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var body struct {
		Status   string         `json:"status"`
		Entities map[string]int `json:"entities"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("ok", body.Status)
	suite.Equal(5, body.Entities["users"])
	suite.Equal(3, body.Entities["projects"])
	suite.Equal(8, body.Entities["tasks"])
}

// TestLoginAndMe tests the auth round trip over HTTP
func (suite *RoutesTestSuite) TestLoginAndMe() {
	resp := suite.login("david.chen@projecthub.dev")
	suite.Equal("Bearer", resp.TokenType)

	w := suite.request(http.MethodGet, "/api/auth/me", resp.AccessToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var user models.User
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &user))
	suite.Equal(2, user.ID)
}

// TestLoginRejectsBadPassword tests the 401 mapping
func (suite *RoutesTestSuite) TestLoginRejectsBadPassword() {
	w := suite.request(http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "david.chen@projecthub.dev",
		"password": "wrong",
	})
	suite.Equal(http.StatusUnauthorized, w.Code)
}

// TestCreateProjectRequiresSession tests the auth guard on mutations
func (suite *RoutesTestSuite) TestCreateProjectRequiresSession() {
	body := gin.H{
		"name":             "Partner API",
		"startDate":        "2026-09-01T00:00:00Z",
		"endDate":          "2027-02-28T00:00:00Z",
		"projectManagerId": 2,
	}

	w := suite.request(http.MethodPost, "/api/v1/projects", "", body)
	suite.Equal(http.StatusUnauthorized, w.Code)

	token := suite.login("sarah.mitchell@projecthub.dev").AccessToken
	w = suite.request(http.MethodPost, "/api/v1/projects", token, body)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var project models.Project
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &project))
	suite.Equal(models.ProjectStatusPlanning, project.Status)
	suite.Equal(4, project.ID)
}

// TestMyProjectsWithAndWithoutSession tests the opportunistic session scoping
func (suite *RoutesTestSuite) TestMyProjectsWithAndWithoutSession() {
	w := suite.request(http.MethodGet, "/api/v1/projects/my", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var projects []models.Project
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &projects))
	suite.Empty(projects)

	token := suite.login("david.chen@projecthub.dev").AccessToken
	w = suite.request(http.MethodGet, "/api/v1/projects/my", token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &projects))
	suite.Len(projects, 2)
}

// TestTaskLifecycleOverHTTP walks create, status change and comments
func (suite *RoutesTestSuite) TestTaskLifecycleOverHTTP() {
	token := suite.login("david.chen@projecthub.dev").AccessToken

	w := suite.request(http.MethodPost, "/api/v1/tasks", token, gin.H{
		"title":        "API rate limiting",
		"dueDate":      "2026-10-01T00:00:00Z",
		"projectId":    1,
		"assignedToId": 3,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var task models.Task
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &task))
	suite.Equal(models.TaskStatusToDo, task.Status)

	w = suite.request(http.MethodPost, fmt.Sprintf("/api/v1/tasks/%d/status", task.ID), token, gin.H{
		"status": "InProgress",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &task))
	suite.Equal(models.TaskStatusInProgress, task.Status)

	w = suite.request(http.MethodPost, fmt.Sprintf("/api/v1/tasks/%d/comments", task.ID), token, gin.H{
		"content": "Throttle writes first.",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var comment models.TaskComment
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &comment))
	suite.Equal(2, comment.UserID)
}

// TestMemberMutationsRequireSession tests the auth guard on every member route
func (suite *RoutesTestSuite) TestMemberMutationsRequireSession() {
	w := suite.request(http.MethodPut, "/api/v1/projects/1/members/3", "", gin.H{"role": "Designer"})
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.request(http.MethodPost, "/api/v1/projects/1/members", "", gin.H{"userId": 5, "role": "QA"})
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.request(http.MethodDelete, "/api/v1/projects/1/members/3", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)

	token := suite.login("sarah.mitchell@projecthub.dev").AccessToken
	w = suite.request(http.MethodPut, "/api/v1/projects/1/members/3", token, gin.H{"role": "Designer"})
	suite.Require().Equal(http.StatusOK, w.Code)

	var member models.ProjectMember
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &member))
	suite.Equal(models.MemberRoleDesigner, member.Role)
}

// TestNotFoundMappings tests the 404 paths for entities and routes
func (suite *RoutesTestSuite) TestNotFoundMappings() {
	w := suite.request(http.MethodGet, "/api/v1/projects/999", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.request(http.MethodGet, "/api/v1/nope", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Endpoint not found")
}

// TestValidationMapsToBadRequest tests the 400 mapping on bad payloads
func (suite *RoutesTestSuite) TestValidationMapsToBadRequest() {
	token := suite.login("david.chen@projecthub.dev").AccessToken

	w := suite.request(http.MethodPost, "/api/v1/tasks", token, gin.H{
		"title":        "",
		"dueDate":      "2026-10-01T00:00:00Z",
		"projectId":    1,
		"assignedToId": 3,
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

// TestNotificationsMyEndpoints tests the inbox routes end to end
func (suite *RoutesTestSuite) TestNotificationsMyEndpoints() {
	token := suite.login("david.chen@projecthub.dev").AccessToken

	w := suite.request(http.MethodGet, "/api/v1/notifications/my?unreadOnly=true", token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var page models.PaginatedResponse[models.Notification]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))
	suite.Equal(1, page.Total)

	w = suite.request(http.MethodPost, "/api/v1/notifications/my/read-all", token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"count":1`)

	// Without a session the bulk mutation is refused
	w = suite.request(http.MethodPost, "/api/v1/notifications/my/read-all", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
