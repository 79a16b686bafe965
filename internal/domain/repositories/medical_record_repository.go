package repositories

import (
	"context"
	"errors"
	"fmt"

	"health-records-service/internal/domain/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MedicalRecordRepositoryImpl implements MedicalRecordRepositoryContract
// backed by GORM.
type MedicalRecordRepositoryImpl struct {
	db *gorm.DB
}

// NewMedicalRecordRepository creates a new instance of MedicalRecordRepositoryImpl.
func NewMedicalRecordRepository(db *gorm.DB) MedicalRecordRepositoryContract {
	return &MedicalRecordRepositoryImpl{db: db}
}

func (r *MedicalRecordRepositoryImpl) Create(ctx context.Context, record *entities.MedicalRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("creating medical record: %w", err)
	}
	return nil
}

func (r *MedicalRecordRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.MedicalRecord, error) {
	var record entities.MedicalRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching medical record %s: %w", id, err)
	}
	return &record, nil
}

func (r *MedicalRecordRepositoryImpl) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]*entities.MedicalRecord, error) {
	var records []*entities.MedicalRecord
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Order("seq DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("listing medical records for patient %s: %w", patientID, err)
	}
	return records, nil
}
