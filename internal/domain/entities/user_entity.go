package entities

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access level assigned to a user account.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDoctor Role = "doctor"
	RoleNurse  Role = "nurse"
	RoleStaff  Role = "staff"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleNurse, RoleStaff:
		return true
	}
	return false
}

// User represents a system user account. PasswordHash is never serialized
// in API responses.
type User struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name         string    `json:"name" db:"name" gorm:"not null"`
	Email        string    `json:"email" db:"email" gorm:"unique;not null"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"not null"`
	Role         Role      `json:"role" db:"role" gorm:"type:varchar(16);not null;default:'doctor'"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" gorm:"not null"`
}
