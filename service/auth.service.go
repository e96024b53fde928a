package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"merobazar-backend/models"
	"merobazar-backend/repository"
	"merobazar-backend/token"
)

// bcryptCost matches the cost the rest of the platform uses for account
// passwords.
const bcryptCost = 14

// AuthService handles registration and login.
type AuthService struct {
	users repository.UserRepository
	maker *token.Maker
}

func NewAuthService(users repository.UserRepository, maker *token.Maker) *AuthService {
	return &AuthService{users: users, maker: maker}
}

// Register creates a new account. The email pre-check is read-then-write;
// the unique index on users.email is the backstop when two registrations
// race.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, errf(ErrInvalidInput, "username, email and password are required")
	}
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return nil, errf(ErrInvalidInput, "invalid role")
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, errf(ErrConflict, "email is already registered")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errf(ErrConflict, "email is already registered")
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (string, *models.User, error) {
	if req.Email == "" || req.Password == "" {
		return "", nil, errf(ErrInvalidInput, "email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, errf(ErrInvalidCredentials, "invalid credentials")
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return "", nil, errf(ErrInvalidCredentials, "invalid credentials")
	}

	tok, err := s.maker.CreateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return "", nil, err
	}
	return tok, user, nil
}
