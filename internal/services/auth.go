package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
	"github.com/harentsoaR/carewave-api/internal/utils"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidToken       = "Invalid token"
)

type AuthService struct {
	users  store.UserRepository
	tokens *utils.TokenManager
}

func NewAuthService(users store.UserRepository, tokens *utils.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// NewUser holds the fields needed to register a credential.
type NewUser struct {
	Email    string
	Name     string
	Role     string
	Password string
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, &AuthError{Message: msgInvalidCredentials}
	}
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		log.Warn().Str("email", normalizeEmail(email)).Msg("login attempt for unknown email")
		return nil, &AuthError{Message: msgInvalidCredentials}
	}
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		log.Warn().Str("userId", user.ID).Msg("login attempt with wrong password")
		return nil, &AuthError{Message: msgInvalidCredentials}
	}

	token, err := s.tokens.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	log.Info().Str("userId", user.ID).Str("role", user.Role).Msg("user logged in")
	return &LoginResult{Token: token, User: user}, nil
}

// VerifyToken validates token and returns the user it was issued to.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.ValidateJWT(token)
	if err != nil {
		return nil, &AuthError{Message: msgInvalidToken}
	}
	user, err := s.users.Get(ctx, claims.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &AuthError{Message: msgInvalidToken}
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, notFound(err, "User")
	}
	return user, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *AuthService) CreateUser(ctx context.Context, in NewUser) (*models.User, error) {
	if err := requireFields(
		[2]string{"email", in.Email},
		[2]string{"name", in.Name},
		[2]string{"role", in.Role},
		[2]string{"password", in.Password},
	); err != nil {
		return nil, err
	}
	if _, ok := EmailAddress(in.Email); !ok {
		return nil, invalid("email must be a valid email address")
	}
	if !models.ValidRole(in.Role) {
		return nil, invalid("role must be one of %s", strings.Join(models.Roles, ", "))
	}
	if len(in.Password) < 8 {
		return nil, invalid("password must be at least 8 characters")
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:        normalizeEmail(in.Email),
		Name:         strings.TrimSpace(in.Name),
		Role:         in.Role,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	log.Info().Str("userId", user.ID).Str("role", user.Role).Msg("user created")
	return user, nil
}
