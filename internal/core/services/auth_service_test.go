package services

import (
	"context"
	"errors"
	"testing"

	"evercare-dental/internal/adapters/persistence/models"
	"evercare-dental/internal/config"
	"evercare-dental/internal/pkg/jwt"
	"evercare-dental/internal/pkg/password"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			TokenHours: 12,
		},
	}
}

func seedUser(t *testing.T, email, pass, role string) models.User {
	t.Helper()
	hashed, err := password.Hash(pass)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return models.User{Name: "Test User", Email: email, Password: hashed, Role: role}
}

func TestAdminLogin(t *testing.T) {
	admin := seedUser(t, "admin@ever-care.com", "admin1234", models.RoleAdmin)
	regular := seedUser(t, "user@ever-care.com", "user12345", models.RoleUser)
	repo := newFakeUserRepo(admin, regular)
	svc := NewAuthService(repo, testAuthConfig())
	ctx := context.Background()

	t.Run("valid admin credentials", func(t *testing.T) {
		resp, err := svc.AdminLogin(ctx, "admin@ever-care.com", "admin1234")
		if err != nil {
			t.Fatalf("AdminLogin() error = %v", err)
		}
		if resp.Token == "" {
			t.Fatal("no token issued")
		}
		claims, err := jwt.Validate(resp.Token, "test-secret")
		if err != nil {
			t.Fatalf("issued token invalid: %v", err)
		}
		if claims.Role != models.RoleAdmin {
			t.Errorf("token role = %q, want admin", claims.Role)
		}
		if claims.Email != "admin@ever-care.com" {
			t.Errorf("token email = %q", claims.Email)
		}
		if resp.User == nil || resp.User.Email != "admin@ever-care.com" {
			t.Errorf("user payload = %+v", resp.User)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		if _, err := svc.AdminLogin(ctx, "nobody@ever-care.com", "admin1234"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("AdminLogin() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if _, err := svc.AdminLogin(ctx, "admin@ever-care.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("AdminLogin() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("valid non-admin credentials", func(t *testing.T) {
		if _, err := svc.AdminLogin(ctx, "user@ever-care.com", "user12345"); !errors.Is(err, ErrNotAdmin) {
			t.Errorf("AdminLogin() error = %v, want ErrNotAdmin", err)
		}
	})

	t.Run("email case and spacing ignored", func(t *testing.T) {
		if _, err := svc.AdminLogin(ctx, "  Admin@Ever-Care.com ", "admin1234"); err != nil {
			t.Errorf("AdminLogin() error = %v", err)
		}
	})
}

func TestRegister(t *testing.T) {
	existing := seedUser(t, "taken@ever-care.com", "whatever1", models.RoleUser)
	repo := newFakeUserRepo(existing)
	svc := NewAuthService(repo, testAuthConfig())
	ctx := context.Background()

	t.Run("success never grants admin", func(t *testing.T) {
		user, err := svc.Register(ctx, "New User", "new@ever-care.com", "secret123")
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if user.Role != models.RoleUser {
			t.Errorf("role = %q, want %q", user.Role, models.RoleUser)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		if _, err := svc.Register(ctx, "Other", "taken@ever-care.com", "secret123"); !errors.Is(err, ErrUserAlreadyExists) {
			t.Errorf("Register() error = %v, want ErrUserAlreadyExists", err)
		}
	})

	t.Run("short password", func(t *testing.T) {
		if _, err := svc.Register(ctx, "Other", "other@ever-care.com", "short"); !errors.Is(err, ErrWeakPassword) {
			t.Errorf("Register() error = %v, want ErrWeakPassword", err)
		}
	})
}

func TestSetRole(t *testing.T) {
	user := seedUser(t, "user@ever-care.com", "user12345", models.RoleUser)
	repo := newFakeUserRepo(user)
	svc := NewAuthService(repo, testAuthConfig())
	ctx := context.Background()

	t.Run("promote to admin", func(t *testing.T) {
		resp, err := svc.SetRole(ctx, 1, models.RoleAdmin)
		if err != nil {
			t.Fatalf("SetRole() error = %v", err)
		}
		if resp.Role != models.RoleAdmin {
			t.Errorf("role = %q, want admin", resp.Role)
		}

		// Promoted accounts can sign in to the dashboard.
		if _, err := svc.AdminLogin(ctx, "user@ever-care.com", "user12345"); err != nil {
			t.Errorf("AdminLogin() after promote error = %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		if _, err := svc.SetRole(ctx, 1, "superuser"); !errors.Is(err, ErrInvalidRole) {
			t.Errorf("SetRole() error = %v, want ErrInvalidRole", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		if _, err := svc.SetRole(ctx, 99, models.RoleAdmin); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("SetRole() error = %v, want ErrUserNotFound", err)
		}
	})
}
