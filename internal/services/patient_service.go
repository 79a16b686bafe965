package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"health-records-service/internal/domain/dtos"
	"health-records-service/internal/domain/entities"
	"health-records-service/internal/domain/repositories"

	"github.com/google/uuid"
)

const dateOfBirthLayout = "2006-01-02"

// PatientServiceImpl implements PatientServiceContract.
type PatientServiceImpl struct {
	patientRepo repositories.PatientRepositoryContract
	logger      *log.Logger
}

// NewPatientService creates a new instance of PatientServiceImpl.
func NewPatientService(repo repositories.PatientRepositoryContract, logger *log.Logger) PatientServiceContract {
	return &PatientServiceImpl{
		patientRepo: repo,
		logger:      logger,
	}
}

func (s *PatientServiceImpl) CreatePatient(ctx context.Context, req dtos.CreatePatientRequest) (*dtos.PatientDTO, error) {
	if req.FirstName == "" || req.LastName == "" || req.DOB == "" || req.Gender == "" {
		return nil, fmt.Errorf("%w: firstName, lastName, dob, and gender are required", ErrValidation)
	}
	dob, err := time.Parse(dateOfBirthLayout, req.DOB)
	if err != nil {
		return nil, fmt.Errorf("%w: dob must be formatted as YYYY-MM-DD", ErrValidation)
	}
	switch req.Gender {
	case "male", "female", "other":
	default:
		return nil, fmt.Errorf("%w: gender must be male, female, or other", ErrValidation)
	}

	patient := &entities.Patient{
		ID:          uuid.New(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
		Gender:      req.Gender,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
	}
	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, err
	}

	s.logger.Printf("patient %s registered", patient.ID)
	return patientToDTO(patient), nil
}

func (s *PatientServiceImpl) ListPatients(ctx context.Context) ([]dtos.PatientDTO, error) {
	patients, err := s.patientRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dtos.PatientDTO, 0, len(patients))
	for _, patient := range patients {
		result = append(result, *patientToDTO(patient))
	}
	return result, nil
}

func (s *PatientServiceImpl) GetPatient(ctx context.Context, id uuid.UUID) (*dtos.PatientDTO, error) {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, fmt.Errorf("%w: %s", ErrPatientNotFound, id)
	}
	return patientToDTO(patient), nil
}

func patientToDTO(patient *entities.Patient) *dtos.PatientDTO {
	return &dtos.PatientDTO{
		ID:          patient.ID,
		FirstName:   patient.FirstName,
		LastName:    patient.LastName,
		DateOfBirth: patient.DateOfBirth.Format(dateOfBirthLayout),
		Gender:      patient.Gender,
		Phone:       patient.Phone,
		Address:     patient.Address,
		City:        patient.City,
		State:       patient.State,
		Country:     patient.Country,
		CreatedAt:   patient.CreatedAt,
	}
}
