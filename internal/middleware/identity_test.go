package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nutritrack/nutritrack-backend/internal/identity"
	"github.com/gofiber/fiber/v2"
)

func identityApp() *fiber.App {
	app := fiber.New()
	app.Use(Identity())
	app.Get("/api/whoami", func(c *fiber.Ctx) error {
		return c.SendString(identity.GetUserID(c))
	})
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestIdentity_HeaderResolved(t *testing.T) {
	app := identityApp()
	req := httptest.NewRequest("GET", "/api/whoami", nil)
	req.Header.Set("X-User-ID", "device-abc123")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	if got := string(body[:n]); got != "device-abc123" {
		t.Errorf("resolved user ID = %q", got)
	}
}

func TestIdentity_QueryFallback(t *testing.T) {
	app := identityApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/api/whoami?user_id=device-xyz", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200 with query fallback", resp.StatusCode)
	}
}

func TestIdentity_MissingHeaderRejected(t *testing.T) {
	app := identityApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/api/whoami", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestIdentity_OverlongIDRejected(t *testing.T) {
	app := identityApp()
	req := httptest.NewRequest("GET", "/api/whoami", nil)
	req.Header.Set("X-User-ID", strings.Repeat("x", 65))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestIdentity_HealthSkipped(t *testing.T) {
	app := identityApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, health must not require identity", resp.StatusCode)
	}
}
