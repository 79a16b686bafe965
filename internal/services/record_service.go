package services

import (
	"context"
	"fmt"
	"log"

	"health-records-service/internal/auth"
	"health-records-service/internal/crypto"
	"health-records-service/internal/domain/dtos"
	"health-records-service/internal/domain/entities"
	"health-records-service/internal/domain/repositories"

	"github.com/google/uuid"
)

// RecordServiceImpl implements RecordServiceContract. The plaintext
// clinical body exists only transiently inside this service during seal and
// open; it is never logged and never persisted.
type RecordServiceImpl struct {
	recordRepo  repositories.MedicalRecordRepositoryContract
	patientRepo repositories.PatientRepositoryContract
	userRepo    repositories.UserRepositoryContract
	cipher      *crypto.EnvelopeCipher
	logger      *log.Logger
}

// NewRecordService creates a new instance of RecordServiceImpl.
func NewRecordService(
	recordRepo repositories.MedicalRecordRepositoryContract,
	patientRepo repositories.PatientRepositoryContract,
	userRepo repositories.UserRepositoryContract,
	cipher *crypto.EnvelopeCipher,
	logger *log.Logger,
) RecordServiceContract {
	return &RecordServiceImpl{
		recordRepo:  recordRepo,
		patientRepo: patientRepo,
		userRepo:    userRepo,
		cipher:      cipher,
		logger:      logger,
	}
}

// CreateRecord runs the write flow: validate payload shape → referenced
// patient exists → seal body → persist. Authentication and role checks have
// already happened at the middleware boundary; caller is the verified
// principal.
func (s *RecordServiceImpl) CreateRecord(ctx context.Context, caller *auth.Principal, req dtos.CreateRecordRequest) (*dtos.CreateRecordResponse, error) {
	if req.PatientID == uuid.Nil || req.RecordType == "" || req.Data == "" {
		return nil, fmt.Errorf("%w: patientId, recordType, and data are required", ErrValidation)
	}

	patient, err := s.patientRepo.GetByID(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, fmt.Errorf("%w: %s", ErrPatientNotFound, req.PatientID)
	}

	envelope, err := s.cipher.Seal([]byte(req.Data))
	if err != nil {
		return nil, fmt.Errorf("sealing record body: %w", err)
	}

	// The envelope is fully constructed in memory before the write is
	// issued; a partial envelope can never reach storage.
	record := &entities.MedicalRecord{
		ID:            uuid.New(),
		PatientID:     req.PatientID,
		CreatedByID:   caller.ID,
		RecordType:    req.RecordType,
		Summary:       req.Summary,
		EncryptedData: envelope.String(),
	}
	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Printf("record %s created for patient %s by %s", record.ID, record.PatientID, caller.ID)
	return &dtos.CreateRecordResponse{
		Message:  "Record created",
		RecordID: record.ID,
	}, nil
}

// ListByPatient runs the read flow: referenced patient exists → fetch
// newest-first → open each envelope → attach creator identity. A failed
// decrypt is a data-integrity defect for that record alone; it is logged
// and flagged while the remaining records still come back decrypted.
func (s *RecordServiceImpl) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]dtos.RecordDTO, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, fmt.Errorf("%w: %s", ErrPatientNotFound, patientID)
	}

	records, err := s.recordRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	authors := make(map[uuid.UUID]dtos.RecordAuthorDTO)
	result := make([]dtos.RecordDTO, 0, len(records))
	for _, record := range records {
		dto := dtos.RecordDTO{
			ID:         record.ID,
			PatientID:  record.PatientID,
			RecordType: record.RecordType,
			Summary:    record.Summary,
			CreatedAt:  record.CreatedAt,
		}

		plaintext, err := s.openEnvelope(record.EncryptedData)
		if err != nil {
			// Corruption or a key mismatch across deployments. Logged as an
			// integrity incident; the raw cipher error stays server-side.
			s.logger.Printf("integrity failure opening record %s: %v", record.ID, err)
			dto.DataError = "integrity check failed"
		} else {
			dto.Data = string(plaintext)
		}

		author, err := s.authorFor(ctx, authors, record.CreatedByID)
		if err != nil {
			return nil, err
		}
		dto.CreatedBy = author

		result = append(result, dto)
	}
	return result, nil
}

func (s *RecordServiceImpl) openEnvelope(payload string) ([]byte, error) {
	envelope, err := crypto.ParseEnvelope(payload)
	if err != nil {
		return nil, err
	}
	return s.cipher.Open(envelope)
}

// authorFor resolves a creator id to its display identity, memoized per
// request. A creator account that no longer exists yields an empty
// identity rather than failing the listing.
func (s *RecordServiceImpl) authorFor(ctx context.Context, cache map[uuid.UUID]dtos.RecordAuthorDTO, userID uuid.UUID) (dtos.RecordAuthorDTO, error) {
	if author, ok := cache[userID]; ok {
		return author, nil
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return dtos.RecordAuthorDTO{}, err
	}
	author := dtos.RecordAuthorDTO{}
	if user != nil {
		author.Name = user.Name
		author.Role = user.Role
	}
	cache[userID] = author
	return author, nil
}
