package dtos

import (
	"time"

	"github.com/google/uuid"
)

// PatientDTO represents patient data in API responses.
type PatientDTO struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DateOfBirth string    `json:"dob"` // Formatted as YYYY-MM-DD
	Gender      string    `json:"gender"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Country     string    `json:"country,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
