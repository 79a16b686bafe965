package middleware

import (
	"errors"
	"log"
	"strings"

	"health-records-service/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// PrincipalKey is the fiber Locals key under which the authenticated
// principal is stored for downstream handlers.
const PrincipalKey = "principal"

const bearerPrefix = "Bearer "

// Authenticate returns a middleware that extracts the bearer token,
// verifies it, and resolves the caller's principal. It runs before any
// authorization or payload validation: an invalid credential is rejected
// here, before the request shape is even looked at. A verified token whose
// subject no longer exists is reported exactly like an invalid token.
func Authenticate(verifier *auth.TokenVerifier, loader *auth.PrincipalLoader, logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "No token provided",
			})
		}

		claims, err := verifier.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		principal, err := loader.Load(c.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, auth.ErrPrincipalNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "Invalid or expired token",
				})
			}
			logger.Printf("loading principal: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Server error",
			})
		}

		c.Locals(PrincipalKey, principal)
		return c.Next()
	}
}

// PrincipalFrom returns the authenticated principal attached by
// Authenticate, or nil when the request never passed through it.
func PrincipalFrom(c *fiber.Ctx) *auth.Principal {
	principal, _ := c.Locals(PrincipalKey).(*auth.Principal)
	return principal
}
