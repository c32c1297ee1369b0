package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"evercare-dental/internal/adapters/persistence/models"
	"evercare-dental/internal/config"
	"evercare-dental/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

func testApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware(cfg), AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", TokenHours: 12},
	}
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	app := testApp(cfg)

	adminToken, err := jwt.Generate(1, "admin@clinic.com", models.RoleAdmin, cfg.JWT.Secret, cfg.JWT.TokenHours)
	if err != nil {
		t.Fatal(err)
	}
	userToken, err := jwt.Generate(2, "user@clinic.com", models.RoleUser, cfg.JWT.Secret, cfg.JWT.TokenHours)
	if err != nil {
		t.Fatal(err)
	}
	expiredToken, err := jwt.Generate(1, "admin@clinic.com", models.RoleAdmin, cfg.JWT.Secret, -1)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized},
		{"non-admin token", "Bearer " + userToken, http.StatusForbidden},
		{"admin token", "Bearer " + adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestAuthMiddlewareSetsLocals(t *testing.T) {
	cfg := testConfig()
	app := fiber.New()

	var gotEmail, gotRole string
	app.Get("/me", AuthMiddleware(cfg), func(c *fiber.Ctx) error {
		gotEmail, _ = c.Locals("email").(string)
		gotRole, _ = c.Locals("role").(string)
		return c.SendString("ok")
	})

	token, err := jwt.Generate(7, "admin@clinic.com", models.RoleAdmin, cfg.JWT.Secret, 12)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if gotEmail != "admin@clinic.com" || gotRole != models.RoleAdmin {
		t.Errorf("locals = (%q, %q)", gotEmail, gotRole)
	}
}
