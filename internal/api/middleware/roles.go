package middleware

import (
	"health-records-service/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// Permit returns a middleware that checks the authenticated principal's
// role against the policy entry for operation. It must run after
// Authenticate; denial is a 403, distinct from the 401s issued there.
func Permit(policy auth.Policy, operation string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := PrincipalFrom(c)
		if principal == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "No token provided",
			})
		}
		if !policy.Allows(operation, principal.Role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden: insufficient role",
			})
		}
		return c.Next()
	}
}
