package identity

import (
	"strings"

	"github.com/talenttrek/backend/internal/domain/shared"
)

// Role represents the role of a user. It is a closed set: a user is
// either a student or a recruiter, fixed at sign-up.
type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
)

// ParseRole parses and validates a role string
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleRecruiter:
		return RoleRecruiter, nil
	default:
		return "", shared.NewDomainError("INVALID_ROLE", "Role must be either student or recruiter")
	}
}

// IsValid returns true if the role is one of the known roles
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleRecruiter
}

// String returns the role as a string
func (r Role) String() string {
	return string(r)
}
