package client_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"projecthub-backend/internal/api/routes"
	"projecthub-backend/internal/client"
	"projecthub-backend/internal/config"
	apperrors "projecthub-backend/internal/errors"
	"projecthub-backend/internal/models"
	"projecthub-backend/internal/service"
	"projecthub-backend/internal/store"
)

// ClientTestSuite drives the network client against a real in-process server
type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
	client *client.Client
}

// SetupTest runs before each test
func (suite *ClientTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s, err := store.Seed()
	suite.Require().NoError(err)

	cfg := &config.Config{
		Environment:   "test",
		JWTSecret:     "test-secret",
		SessionTTLMin: 30,
		MockPassword:  "password",
	}
	suite.server = httptest.NewServer(routes.SetupRoutes(s, cfg))
	suite.client = client.New(suite.server.URL, 5*time.Second)
}

// TearDownTest runs after each test
func (suite *ClientTestSuite) TearDownTest() {
	suite.server.Close()
}

// TestLoginInstallsToken tests that the token carries over to later calls
func (suite *ClientTestSuite) TestLoginInstallsToken() {
	resp, err := suite.client.Login("david.chen@projecthub.dev", "password")
	suite.Require().NoError(err)
	suite.Equal(2, resp.User.ID)

	user, err := suite.client.CurrentUser()
	suite.Require().NoError(err)
	suite.Equal("David", user.FirstName)

	projects, err := suite.client.GetMyProjects()
	suite.Require().NoError(err)
	suite.Len(projects, 2)
}

// TestLoginFailure tests the unauthorized mapping
func (suite *ClientTestSuite) TestLoginFailure() {
	_, err := suite.client.Login("david.chen@projecthub.dev", "wrong")
	suite.True(apperrors.IsUnauthorized(err))
}

// TestLogoutClearsToken tests that the local token goes away
func (suite *ClientTestSuite) TestLogoutClearsToken() {
	_, err := suite.client.Login("david.chen@projecthub.dev", "password")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.client.Logout())

	_, err = suite.client.CurrentUser()
	suite.True(apperrors.IsUnauthorized(err))
}

// TestNotFoundMapping tests the 404 translation
func (suite *ClientTestSuite) TestNotFoundMapping() {
	_, err := suite.client.GetProject(999)
	suite.True(apperrors.IsNotFound(err))
}

// TestConflictMapping tests the 409 translation
func (suite *ClientTestSuite) TestConflictMapping() {
	_, err := suite.client.CreateUser(service.CreateUserRequest{
		FirstName: "Another",
		LastName:  "David",
		Email:     "david.chen@projecthub.dev",
		Role:      "TeamMember",
	})
	suite.True(apperrors.IsAlreadyExists(err))
}

// TestValidationMapping tests the 400 translation
func (suite *ClientTestSuite) TestValidationMapping() {
	_, err := suite.client.Login("david.chen@projecthub.dev", "password")
	suite.Require().NoError(err)

	_, err = suite.client.CreateTask(service.CreateTaskRequest{
		Title:        "",
		DueDate:      time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		ProjectID:    1,
		AssignedToID: 3,
	})
	suite.True(apperrors.IsValidation(err))
}

// TestTaskRoundTrip creates a task remotely and reads it back
func (suite *ClientTestSuite) TestTaskRoundTrip() {
	_, err := suite.client.Login("david.chen@projecthub.dev", "password")
	suite.Require().NoError(err)

	created, err := suite.client.CreateTask(service.CreateTaskRequest{
		Title:        "API rate limiting",
		DueDate:      time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		ProjectID:    1,
		AssignedToID: 3,
	})
	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusToDo, created.Status)

	fetched, err := suite.client.GetTask(created.ID)
	suite.Require().NoError(err)
	suite.Equal(created.Title, fetched.Title)
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

// TestTimeoutClassification tests that deadline expiry surfaces as a timeout
func TestTimeoutClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := client.New(server.URL, 20*time.Millisecond)
	_, err := c.GetUsers()
	require.Error(t, err)
	assert.True(t, apperrors.IsTimeout(err))
	assert.False(t, apperrors.IsNetwork(err))
}

// TestNetworkErrorClassification tests that a dead endpoint is a network error
func TestNetworkErrorClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := client.New(server.URL, time.Second)
	_, err := c.GetUsers()
	require.Error(t, err)
	assert.True(t, apperrors.IsNetwork(err))
	assert.False(t, apperrors.IsTimeout(err))
}

// TestMalformedResponse tests that undecodable bodies are network errors
func TestMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := client.New(server.URL, time.Second)
	_, err := c.GetUsers()
	require.Error(t, err)
	assert.True(t, apperrors.IsNetwork(err))
}
