package services

import (
	"context"

	"health-records-service/internal/domain/dtos"

	"github.com/google/uuid"
)

// PatientServiceContract defines the operations for patient demographics.
type PatientServiceContract interface {
	CreatePatient(ctx context.Context, req dtos.CreatePatientRequest) (*dtos.PatientDTO, error)
	ListPatients(ctx context.Context) ([]dtos.PatientDTO, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*dtos.PatientDTO, error)
}
