package middleware

import (
	"errors"
	"strings"

	"petcare-booking/internal/core/domain"
	"petcare-booking/internal/pkg/jwt"
	"petcare-booking/internal/pkg/metrics"
	"petcare-booking/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const identityKey = "identity"

// AuthMiddleware verifies the bearer token and stores the identity in the
// request locals. Malformed, unsigned and expired tokens share one response.
func AuthMiddleware(codec *jwt.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
			return response.Unauthorized(c, "Token missing")
		}

		identity, err := codec.Verify(bearerToken(authHeader))
		if err != nil {
			reason := "invalid_token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				reason = "expired_token"
			}
			metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
			return response.Error(c, response.StatusOf(err), "Invalid or expired token")
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// RequireRole rejects identities whose role differs from the required one.
// Must run after AuthMiddleware.
func RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFrom(c)
		if !ok {
			metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
			return response.Unauthorized(c, "Token missing")
		}

		if err := domain.Authorize(identity, role); err != nil {
			metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
			return response.Error(c, response.StatusOf(err), "Only administrators can access this resource")
		}

		return c.Next()
	}
}

// AdminOnly middleware allows only the admin role
func AdminOnly() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}

// IdentityFrom returns the identity attached by AuthMiddleware
func IdentityFrom(c *fiber.Ctx) (domain.Identity, bool) {
	identity, ok := c.Locals(identityKey).(domain.Identity)
	return identity, ok
}

// bearerToken returns what follows "Bearer ", or "" for any other shape
func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
