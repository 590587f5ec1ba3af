package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	apperrors "projecthub-backend/internal/errors"
	"projecthub-backend/internal/models"
	"projecthub-backend/internal/repository"
	"projecthub-backend/internal/store"
)

// AuthServiceTestSuite tests login, refresh and session resolution
type AuthServiceTestSuite struct {
	suite.Suite
	store    *store.Store
	userRepo *repository.UserRepository
	service  *AuthService
}

// SetupTest runs before each test
func (suite *AuthServiceTestSuite) SetupTest() {
	s, err := store.Seed()
	suite.Require().NoError(err)
	suite.store = s
	suite.userRepo = repository.NewUserRepository(s)
	suite.service = NewAuthService("test-secret", "password", 30*time.Minute, suite.userRepo)
}

// TestLogin tests the happy path: token resolves and lastLoginAt is stamped
func (suite *AuthServiceTestSuite) TestLogin() {
	at := time.Now().Truncate(time.Second)
	suite.service.now = func() time.Time { return at }

	resp, err := suite.service.Login("david.chen@projecthub.dev", "password")
	suite.Require().NoError(err)
	suite.Equal("Bearer", resp.TokenType)
	suite.Equal(int64(1800), resp.ExpiresIn)
	suite.Equal(2, resp.User.ID)
	suite.Equal(at, resp.User.LastLoginAt)

	session, err := suite.service.SessionFromToken(resp.AccessToken)
	suite.Require().NoError(err)
	suite.Equal(2, session.UserID)

	stored, err := suite.userRepo.GetByID(2)
	suite.Require().NoError(err)
	suite.Equal(at, stored.LastLoginAt)
}

// TestLoginRejections tests the credential checks
func (suite *AuthServiceTestSuite) TestLoginRejections() {
	_, err := suite.service.Login("david.chen@projecthub.dev", "wrong")
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)

	_, err = suite.service.Login("nobody@projecthub.dev", "password")
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)

	// Emma's account is deactivated
	_, err = suite.service.Login("emma.novak@projecthub.dev", "password")
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

// TestRefreshRotatesSession tests that refresh invalidates the old pair
func (suite *AuthServiceTestSuite) TestRefreshRotatesSession() {
	resp, err := suite.service.Login("maria.lopez@projecthub.dev", "password")
	suite.Require().NoError(err)

	fresh, err := suite.service.Refresh(resp.RefreshToken)
	suite.Require().NoError(err)
	suite.NotEqual(resp.RefreshToken, fresh.RefreshToken)

	// The old session is gone on both sides
	_, err = suite.service.Refresh(resp.RefreshToken)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
	_, err = suite.service.SessionFromToken(resp.AccessToken)
	suite.ErrorIs(err, apperrors.ErrNoSession)

	_, err = suite.service.SessionFromToken(fresh.AccessToken)
	suite.NoError(err)
}

// TestLogout tests session invalidation, including for garbage tokens
func (suite *AuthServiceTestSuite) TestLogout() {
	resp, err := suite.service.Login("maria.lopez@projecthub.dev", "password")
	suite.Require().NoError(err)

	suite.service.Logout(resp.AccessToken)

	_, err = suite.service.SessionFromToken(resp.AccessToken)
	suite.ErrorIs(err, apperrors.ErrNoSession)

	suite.NotPanics(func() { suite.service.Logout("not-a-token") })
}

// TestSessionExpiry tests that expired sessions are evicted
func (suite *AuthServiceTestSuite) TestSessionExpiry() {
	at := time.Now()
	suite.service.now = func() time.Time { return at }

	resp, err := suite.service.Login("david.chen@projecthub.dev", "password")
	suite.Require().NoError(err)

	suite.service.now = func() time.Time { return at.Add(31 * time.Minute) }
	_, err = suite.service.SessionFromToken(resp.AccessToken)
	suite.ErrorIs(err, apperrors.ErrSessionExpired)

	// Evicted for good: a retry no longer finds the session at all
	_, err = suite.service.SessionFromToken(resp.AccessToken)
	suite.ErrorIs(err, apperrors.ErrNoSession)
}

// TestSessionFromTokenRejectsForgery tests the signature check
func (suite *AuthServiceTestSuite) TestSessionFromTokenRejectsForgery() {
	other := NewAuthService("other-secret", "password", 30*time.Minute, suite.userRepo)
	resp, err := other.Login("david.chen@projecthub.dev", "password")
	suite.Require().NoError(err)

	_, err = suite.service.SessionFromToken(resp.AccessToken)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
}

// TestRegister tests self-registration as a TeamMember
func (suite *AuthServiceTestSuite) TestRegister() {
	resp, err := suite.service.Register(RegisterRequest{
		FirstName: "Priya",
		LastName:  "Nair",
		Email:     "priya.nair@projecthub.dev",
	})
	suite.Require().NoError(err)
	suite.Equal(models.RoleTeamMember, resp.User.Role)
	suite.Equal(6, resp.User.ID)
	suite.True(resp.User.IsActive)

	session, err := suite.service.SessionFromToken(resp.AccessToken)
	suite.Require().NoError(err)
	suite.Equal(6, session.UserID)
}

// TestRegisterDuplicateEmail tests the uniqueness check
func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	_, err := suite.service.Register(RegisterRequest{
		FirstName: "Another",
		LastName:  "David",
		Email:     "david.chen@projecthub.dev",
	})
	suite.ErrorIs(err, apperrors.ErrEmailExists)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
