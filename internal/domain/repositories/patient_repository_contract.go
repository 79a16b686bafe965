package repositories

import (
	"context"

	"health-records-service/internal/domain/entities"

	"github.com/google/uuid"
)

// PatientRepositoryContract defines the interface for patient data
// operations. GetByID returns (nil, nil) when no row matches.
type PatientRepositoryContract interface {
	Create(ctx context.Context, patient *entities.Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Patient, error)
	ListAll(ctx context.Context) ([]*entities.Patient, error)
}
