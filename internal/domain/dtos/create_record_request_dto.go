package dtos

import (
	"github.com/google/uuid"
)

// CreateRecordRequest defines the payload for creating a new medical record.
// Data carries the clinical body in plaintext; it is sealed before persistence
// and never echoed back.
type CreateRecordRequest struct {
	PatientID  uuid.UUID `json:"patientId" validate:"required"`
	RecordType string    `json:"recordType" validate:"required"`
	Summary    string    `json:"summary" validate:"max=500"`
	Data       string    `json:"data" validate:"required"`
}
