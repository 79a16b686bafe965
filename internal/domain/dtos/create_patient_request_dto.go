package dtos

// CreatePatientRequest defines the payload for registering a new patient.
type CreatePatientRequest struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string `json:"lastName" validate:"required,min=1,max=100"`
	DOB       string `json:"dob" validate:"required,datetime=2006-01-02"` // ISO 8601 date YYYY-MM-DD
	Gender    string `json:"gender" validate:"required,oneof=male female other"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
}
