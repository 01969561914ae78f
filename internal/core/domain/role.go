package domain

import (
	"fmt"
	"strings"
)

// Role is the closed set of actor types. Every identity lives in exactly one
// role partition, and endpoint authorization compares roles for equality.
type Role uint8

const (
	roleUnknown Role = iota
	RolePatient
	RoleDoctor
	RoleASHA
	RolePharmacy

	roleCount
)

var roleNames = [roleCount]string{
	roleUnknown:  "",
	RolePatient:  "patient",
	RoleDoctor:   "doctor",
	RoleASHA:     "asha",
	RolePharmacy: "pharmacy",
}

// Roles returns every valid role in declaration order.
func Roles() []Role {
	return []Role{RolePatient, RoleDoctor, RoleASHA, RolePharmacy}
}

// ParseRole converts a role tag into a Role. Tags are matched case-insensitively.
func ParseRole(s string) (Role, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	for r := RolePatient; r < roleCount; r++ {
		if roleNames[r] == tag {
			return r, nil
		}
	}
	return roleUnknown, fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// Valid reports whether r is one of the four role tags.
func (r Role) Valid() bool {
	return r > roleUnknown && r < roleCount
}

func (r Role) String() string {
	if !r.Valid() {
		return "unknown"
	}
	return roleNames[r]
}

// MarshalText encodes the role as its tag so JSON carries "patient", not 1.
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, ErrInvalidRole
	}
	return []byte(roleNames[r]), nil
}

// UnmarshalText parses a role tag.
func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
