package dtos

import (
	"github.com/google/uuid"

	"health-records-service/internal/domain/entities"
)

// RegisterRequest defines the payload for creating a user account.
type RegisterRequest struct {
	Name     string        `json:"name" validate:"required,min=2,max=100"`
	Email    string        `json:"email" validate:"required,email"`
	Password string        `json:"password" validate:"required,min=8"`
	Role     entities.Role `json:"role" validate:"omitempty,oneof=admin doctor nurse staff"`
}

// LoginRequest defines the payload for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserDTO represents user account data in API responses. It never carries
// the password hash.
type UserDTO struct {
	ID    uuid.UUID     `json:"id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Role  entities.Role `json:"role"`
}

// LoginResponse carries a freshly issued bearer token and the account it
// belongs to.
type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
