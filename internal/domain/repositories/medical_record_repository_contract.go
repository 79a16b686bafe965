package repositories

import (
	"context"

	"health-records-service/internal/domain/entities"

	"github.com/google/uuid"
)

// MedicalRecordRepositoryContract defines the interface for medical record
// data operations. Records are immutable: there is no update or delete.
type MedicalRecordRepositoryContract interface {
	Create(ctx context.Context, record *entities.MedicalRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.MedicalRecord, error)
	// FindByPatientID returns the patient's records newest-first by creation
	// time, with same-timestamp rows ordered by insertion sequence.
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]*entities.MedicalRecord, error)
}
