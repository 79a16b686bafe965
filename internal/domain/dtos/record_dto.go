package dtos

import (
	"time"

	"health-records-service/internal/domain/entities"

	"github.com/google/uuid"
)

// CreateRecordResponse acknowledges a stored record. The plaintext body is
// deliberately absent.
type CreateRecordResponse struct {
	Message  string    `json:"message"`
	RecordID uuid.UUID `json:"recordId"`
}

// RecordAuthorDTO identifies the user that created a record, without any
// credential material.
type RecordAuthorDTO struct {
	Name string        `json:"name"`
	Role entities.Role `json:"role"`
}

// RecordDTO represents one decrypted medical record in API responses.
// DataError is set (and Data left empty) when the stored envelope failed
// integrity checks; other records in the same listing are unaffected.
type RecordDTO struct {
	ID         uuid.UUID       `json:"id"`
	PatientID  uuid.UUID       `json:"patient"`
	CreatedBy  RecordAuthorDTO `json:"createdBy"`
	RecordType string          `json:"recordType"`
	Summary    string          `json:"summary"`
	Data       string          `json:"data"`
	DataError  string          `json:"dataError,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}
