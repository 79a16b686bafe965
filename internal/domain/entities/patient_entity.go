package entities

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a patient in the system. Demographic fields are
// plaintext; clinical detail lives in MedicalRecord, encrypted.
type Patient struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	FirstName   string    `json:"firstName" db:"first_name" gorm:"not null"`
	LastName    string    `json:"lastName" db:"last_name" gorm:"not null"`
	DateOfBirth time.Time `json:"dob" db:"date_of_birth" gorm:"not null"`
	Gender      string    `json:"gender" db:"gender" gorm:"type:varchar(16);not null"`
	Phone       string    `json:"phone" db:"phone"`
	Address     string    `json:"address" db:"address"`
	City        string    `json:"city" db:"city"`
	State       string    `json:"state" db:"state"`
	Country     string    `json:"country" db:"country"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" gorm:"not null"`
}
