package entities

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord represents one clinical record for a patient. The clinical
// body is stored only as a sealed envelope string (EncryptedData); records
// are immutable after creation. Seq orders records created with identical
// timestamps by insertion sequence.
type MedicalRecord struct {
	ID            uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Seq           int64     `json:"-" db:"seq" gorm:"autoIncrement;uniqueIndex"`
	PatientID     uuid.UUID `json:"patientId" db:"patient_id" gorm:"type:uuid;not null;index"`
	CreatedByID   uuid.UUID `json:"createdById" db:"created_by_id" gorm:"type:uuid;not null"`
	RecordType    string    `json:"recordType" db:"record_type" gorm:"not null"`
	Summary       string    `json:"summary" db:"summary"`
	EncryptedData string    `json:"-" db:"encrypted_data" gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
}
