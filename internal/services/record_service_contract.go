package services

import (
	"context"

	"health-records-service/internal/auth"
	"health-records-service/internal/domain/dtos"

	"github.com/google/uuid"
)

// RecordServiceContract defines the operations on encrypted medical
// records. The service exclusively owns the transformation between the
// plaintext clinical body and its sealed envelope; callers only ever see
// one side of it.
type RecordServiceContract interface {
	// CreateRecord seals the clinical body and persists the record on
	// behalf of caller. The acknowledgment carries the new record id only,
	// never the plaintext.
	CreateRecord(ctx context.Context, caller *auth.Principal, req dtos.CreateRecordRequest) (*dtos.CreateRecordResponse, error)

	// ListByPatient returns the patient's records newest-first, decrypted,
	// with creator identity attached. A record whose envelope fails
	// integrity checks is flagged individually; the rest still decrypt.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]dtos.RecordDTO, error)
}
