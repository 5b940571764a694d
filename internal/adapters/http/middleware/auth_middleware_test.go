package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petcare-booking/internal/core/domain"
	"petcare-booking/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

func newGuardedApp(codec *jwt.Codec, extra ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	handlers := []fiber.Handler{AuthMiddleware(codec)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		identity, ok := IdentityFrom(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.JSON(fiber.Map{"userId": identity.UserID, "role": identity.Role})
	})
	app.Get("/", handlers...)
	return app
}

func doGet(t *testing.T, app *fiber.App, authHeader string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	body := map[string]interface{}{}
	_ = json.Unmarshal(raw, &body)
	return resp.StatusCode, body
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	codec := jwt.NewCodec("secret", time.Hour)
	token, err := codec.Issue(domain.Identity{UserID: 7, Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	status, body := doGet(t, newGuardedApp(codec), "Bearer "+token)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", status, body)
	}
	if body["userId"] != float64(7) || body["role"] != "admin" {
		t.Fatalf("identity not attached: %v", body)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	status, body := doGet(t, newGuardedApp(jwt.NewCodec("secret", time.Hour)), "")
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	if body["error"] == nil {
		t.Fatalf("expected error body, got %v", body)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	codec := jwt.NewCodec("secret", time.Hour)
	foreign, _ := jwt.NewCodec("other", time.Hour).Issue(domain.Identity{UserID: 1})
	valid, _ := codec.Issue(domain.Identity{UserID: 1})

	cases := map[string]string{
		"garbage":      "Bearer not-a-token",
		"wrong secret": "Bearer " + foreign,
		"no scheme":    valid,
		"other scheme": "Token " + valid,
		"empty bearer": "Bearer ",
	}
	app := newGuardedApp(codec)
	for name, header := range cases {
		status, body := doGet(t, app, header)
		if status != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, status)
		}
		if body["error"] != "Invalid or expired token" {
			t.Fatalf("%s: unexpected body %v", name, body)
		}
	}
}

func TestRequireRole(t *testing.T) {
	codec := jwt.NewCodec("secret", time.Hour)
	app := newGuardedApp(codec, AdminOnly())

	userToken, _ := codec.Issue(domain.Identity{UserID: 1, Role: domain.RoleUser})
	adminToken, _ := codec.Issue(domain.Identity{UserID: 2, Role: domain.RoleAdmin})

	if status, _ := doGet(t, app, "Bearer "+userToken); status != http.StatusForbidden {
		t.Fatalf("expected 403 for user, got %d", status)
	}
	if status, _ := doGet(t, app, "Bearer "+adminToken); status != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", status)
	}
}

func TestRequireRole_WithoutGuard(t *testing.T) {
	app := fiber.New()
	app.Get("/", RequireRole(domain.RoleAdmin), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", resp.StatusCode)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":  "abc",
		"bearer abc":  "abc",
		"Bearer  abc": "abc",
		"Basic abc":   "",
		"abc":         "",
		"":            "",
	}
	for in, want := range cases {
		if got := bearerToken(in); got != want {
			t.Fatalf("bearerToken(%q) = %q, want %q", in, got, want)
		}
	}
}
