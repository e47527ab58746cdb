package domain

import "time"

// Role is the authorization role of a user.
type Role string

const (
	RoleUser   Role = "user"
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleMember, RoleAdmin:
		return true
	}
	return false
}

// User represents an identity record in the directory.
// Email is the identity key; Role is mutated only by the membership
// workflow or an administrative action.
type User struct {
	UserID                string     `json:"userID"` // Primary Key (UUID)
	Email                 string     `json:"email"`
	Name                  string     `json:"name"`
	Role                  Role       `json:"role"`
	AgreementAcceptedDate *time.Time `json:"agreementAcceptedDate,omitempty"`
	AuditFields
}
