package auth

import "health-records-service/internal/domain/entities"

// Operation names used as keys in the access policy.
const (
	OpRecordsWrite  = "records:write"
	OpRecordsRead   = "records:read"
	OpPatientsWrite = "patients:write"
	OpPatientsRead  = "patients:read"
)

// Policy maps an operation to the set of roles permitted to perform it.
// A single table consulted by one shared authorization step keeps the role
// sets from drifting between endpoints.
type Policy map[string][]entities.Role

// Allows reports whether role may perform operation. Unknown operations are
// denied.
func (p Policy) Allows(operation string, role entities.Role) bool {
	for _, allowed := range p[operation] {
		if allowed == role {
			return true
		}
	}
	return false
}

// DefaultPolicy returns the access table for the service. Record reads and
// writes share one role set: there is no finer read/write split.
func DefaultPolicy() Policy {
	clinical := []entities.Role{entities.RoleDoctor, entities.RoleNurse, entities.RoleAdmin}
	return Policy{
		OpRecordsWrite:  clinical,
		OpRecordsRead:   clinical,
		OpPatientsWrite: clinical,
		OpPatientsRead:  clinical,
	}
}
