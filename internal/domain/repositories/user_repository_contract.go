package repositories

import (
	"context"

	"health-records-service/internal/domain/entities"

	"github.com/google/uuid"
)

// UserRepositoryContract defines the interface for user data operations.
// GetByID and FindByEmail return (nil, nil) when no row matches.
type UserRepositoryContract interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
