package repositories

import (
	"context"
	"errors"
	"fmt"

	"health-records-service/internal/domain/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientRepositoryImpl implements PatientRepositoryContract backed by GORM.
type PatientRepositoryImpl struct {
	db *gorm.DB
}

// NewPatientRepository creates a new instance of PatientRepositoryImpl.
func NewPatientRepository(db *gorm.DB) PatientRepositoryContract {
	return &PatientRepositoryImpl{db: db}
}

func (r *PatientRepositoryImpl) Create(ctx context.Context, patient *entities.Patient) error {
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		return fmt.Errorf("creating patient: %w", err)
	}
	return nil
}

func (r *PatientRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Patient, error) {
	var patient entities.Patient
	err := r.db.WithContext(ctx).First(&patient, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching patient %s: %w", id, err)
	}
	return &patient, nil
}

func (r *PatientRepositoryImpl) ListAll(ctx context.Context) ([]*entities.Patient, error) {
	var patients []*entities.Patient
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("listing patients: %w", err)
	}
	return patients, nil
}
