package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "projecthub-backend/internal/errors"
	"projecthub-backend/internal/models"
	"projecthub-backend/internal/repository"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID    int    `json:"userId" example:"1"`
	Email     string `json:"email" example:"sarah.mitchell@projecthub.dev"`
	Role      string `json:"role" example:"Admin"`
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// LoginResponse is returned on successful login or register
type LoginResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType" example:"Bearer"`
	ExpiresIn    int64       `json:"expiresIn" example:"3600"`
	RefreshToken string      `json:"refreshToken"`
	User         models.User `json:"user"`
}

// AuthService issues sessions against the user collection. The password
// check is the development sentinel shared by every account; there is no
// per-user credential storage.
type AuthService struct {
	jwtSecret    string
	sessionTTL   time.Duration
	mockPassword string
	userRepo     repository.UserRepositoryInterface
	sessions     *sessionRegistry
	now          func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(jwtSecret, mockPassword string, sessionTTL time.Duration, userRepo repository.UserRepositoryInterface) *AuthService {
	return &AuthService{
		jwtSecret:    jwtSecret,
		sessionTTL:   sessionTTL,
		mockPassword: mockPassword,
		userRepo:     userRepo,
		sessions:     newSessionRegistry(),
		now:          time.Now,
	}
}

// Login authenticates a user by email and the shared development password,
// stamps lastLoginAt and registers a session.
func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if password != s.mockPassword {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	now := s.now()
	if err := s.userRepo.StampLastLogin(user.ID, now); err != nil {
		return nil, fmt.Errorf("stamping last login: %w", err)
	}
	user.LastLoginAt = now

	return s.openSession(*user, now)
}

// RegisterRequest carries the fields accepted at self-registration
type RegisterRequest struct {
	FirstName   string `json:"firstName" validate:"required,min=1,max=100"`
	LastName    string `json:"lastName" validate:"required,min=1,max=100"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=30"`
}

// Register creates a TeamMember account and logs it in
func (s *AuthService) Register(req RegisterRequest) (*LoginResponse, error) {
	now := s.now()
	user := models.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        models.RoleTeamMember,
		IsActive:    true,
		LastLoginAt: now,
		CreatedAt:   now,
	}
	if err := s.userRepo.Create(&user); err != nil {
		return nil, err
	}
	return s.openSession(user, now)
}

// openSession registers a session for the user and issues its tokens
func (s *AuthService) openSession(user models.User, now time.Time) (*LoginResponse, error) {
	session := &Session{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		User:         user,
		RefreshToken: uuid.NewString(),
		ExpiresAt:    now.Add(s.sessionTTL),
		CreatedAt:    now,
	}

	token, err := s.generateJWT(session)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}
	s.sessions.put(session)

	return &LoginResponse{
		AccessToken:  token,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.sessionTTL.Seconds()),
		RefreshToken: session.RefreshToken,
		User:         user,
	}, nil
}

// Refresh exchanges a refresh token for a fresh access token and session
func (s *AuthService) Refresh(refreshToken string) (*LoginResponse, error) {
	old, ok := s.sessions.getByRefresh(refreshToken)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}
	s.sessions.remove(old.ID)

	user, err := s.userRepo.GetByID(old.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	return s.openSession(*user, s.now())
}

// Logout removes the session. Unknown tokens are not an error; logout always
// clears local state.
func (s *AuthService) Logout(tokenString string) {
	claims, err := s.parseJWT(tokenString)
	if err != nil {
		return
	}
	s.sessions.remove(claims.SessionID)
}

// SessionFromToken validates the token and returns the live session behind
// it. Expired sessions are evicted and reported as such.
func (s *AuthService) SessionFromToken(tokenString string) (*Session, error) {
	claims, err := s.parseJWT(tokenString)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	session, ok := s.sessions.get(claims.SessionID)
	if !ok {
		return nil, apperrors.ErrNoSession
	}
	if session.Expired(s.now()) {
		s.sessions.remove(session.ID)
		return nil, apperrors.ErrSessionExpired
	}
	return session, nil
}

// CurrentUser returns the up-to-date user behind a session token
func (s *AuthService) CurrentUser(tokenString string) (*models.User, error) {
	session, err := s.SessionFromToken(tokenString)
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(session.UserID)
}

// generateJWT creates a signed token carrying the session identity
func (s *AuthService) generateJWT(session *Session) (string, error) {
	claims := &AuthClaims{
		UserID:    session.UserID,
		Email:     session.User.Email,
		Role:      string(session.User.Role),
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			NotBefore: jwt.NewNumericDate(session.CreatedAt),
			Issuer:    "projecthub-backend",
			Subject:   fmt.Sprintf("%d", session.UserID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// parseJWT validates and parses a JWT token
func (s *AuthService) parseJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
