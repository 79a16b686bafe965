package handlers

import (
	"errors"
	"log"

	"health-records-service/internal/domain/dtos"
	"health-records-service/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler exposes the registration and login endpoints.
type AuthHandler struct {
	authService services.AuthServiceContract
	logger      *log.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthServiceContract, logger *log.Logger) *AuthHandler {
	return &AuthHandler{
		authService: as,
		logger:      logger,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dtos.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "name, email, and password are required",
		})
	}

	user, err := h.authService.Register(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "name, email, and password are required",
			})
		case errors.Is(err, services.ErrEmailTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Email already registered",
			})
		default:
			h.logger.Printf("register error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Server error",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dtos.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "email and password are required",
		})
	}

	resp, err := h.authService.Login(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "email and password are required",
			})
		case errors.Is(err, services.ErrInvalidLogin):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid credentials",
			})
		default:
			h.logger.Printf("login error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Server error",
			})
		}
	}

	return c.JSON(resp)
}

// RegisterAuthRoutes wires the auth endpoints under /api/auth. These are
// the only record-related routes that take no bearer token.
func RegisterAuthRoutes(app *fiber.App, h *AuthHandler) {
	group := app.Group("/api/auth")
	group.Post("/register", h.Register)
	group.Post("/login", h.Login)
}
