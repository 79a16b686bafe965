package services

import (
	"context"

	"health-records-service/internal/domain/dtos"
)

// AuthServiceContract defines user registration and credential issuance.
type AuthServiceContract interface {
	Register(ctx context.Context, req dtos.RegisterRequest) (*dtos.UserDTO, error)
	Login(ctx context.Context, req dtos.LoginRequest) (*dtos.LoginResponse, error)
}
