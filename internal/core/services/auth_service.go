package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"evercare-dental/internal/adapters/persistence/models"
	"evercare-dental/internal/adapters/persistence/repositories"
	"evercare-dental/internal/config"
	"evercare-dental/internal/pkg/jwt"
	"evercare-dental/internal/pkg/password"

	"gorm.io/gorm"
)

// Auth errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAdmin           = errors.New("user is not an admin")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrWeakPassword       = errors.New("password does not meet requirements")
)

// AuthService handles the admin access gate
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// AuthResponse represents a successful sign-in
type AuthResponse struct {
	Token string               `json:"token"`
	User  *models.UserResponse `json:"user"`
}

// AdminLogin authenticates the dashboard sign-in. Unknown email and
// wrong password both come back as ErrInvalidCredentials; a valid
// non-admin account comes back as ErrNotAdmin.
func (s *AuthService) AdminLogin(ctx context.Context, email, pass string) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsAdmin() {
		return nil, ErrNotAdmin
	}

	if !password.Verify(pass, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.Generate(user.ID, user.Email, user.Role, s.cfg.JWT.Secret, s.cfg.JWT.TokenHours)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Admin signed in: %s", user.Email)

	return &AuthResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

// Register creates a new account. The registration path never grants
// the admin role; admins come from the seeder or an explicit promote.
func (s *AuthService) Register(ctx context.Context, name, email, pass string) (*models.UserResponse, error) {
	if !password.Validate(pass) {
		return nil, ErrWeakPassword
	}

	email = strings.ToLower(strings.TrimSpace(email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashed, err := password.Hash(pass)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: hashed,
		Role:     models.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User registered: %s", user.Email)
	return user.ToResponse(), nil
}

// GetUserByID gets a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// SetRole promotes or demotes an account. This is the only in-band
// path to an admin role.
func (s *AuthService) SetRole(ctx context.Context, id uint, role string) (*models.UserResponse, error) {
	if role != models.RoleAdmin && role != models.RoleUser {
		return nil, ErrInvalidRole
	}

	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ Role of %s set to %s", user.Email, role)
	return user.ToResponse(), nil
}

// ListUsers lists accounts with pagination
func (s *AuthService) ListUsers(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	return s.userRepo.List(ctx, offset, limit)
}
