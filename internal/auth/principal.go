package auth

import (
	"context"
	"fmt"

	"health-records-service/internal/domain/entities"
	"health-records-service/internal/domain/repositories"

	"github.com/google/uuid"
)

// Principal is the authenticated identity attached to a request. It carries
// no credential material by construction: there is no field to leak.
type Principal struct {
	ID   uuid.UUID
	Name string
	Role entities.Role
}

// PrincipalLoader resolves verified token claims to a Principal.
type PrincipalLoader struct {
	users repositories.UserRepositoryContract
}

// NewPrincipalLoader creates a PrincipalLoader over the user repository.
func NewPrincipalLoader(users repositories.UserRepositoryContract) *PrincipalLoader {
	return &PrincipalLoader{users: users}
}

// Load fetches the user behind a verified subject id. A missing user yields
// ErrPrincipalNotFound; the HTTP boundary reports it as an invalid token.
func (l *PrincipalLoader) Load(ctx context.Context, userID uuid.UUID) (*Principal, error) {
	user, err := l.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading principal: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", ErrPrincipalNotFound, userID)
	}
	return &Principal{
		ID:   user.ID,
		Name: user.Name,
		Role: user.Role,
	}, nil
}
