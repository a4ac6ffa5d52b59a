package entity

import (
	"slices"
	"strings"
)

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleAdmin indicates an HR administrator.
	RoleAdmin Role = "admin"
	// RoleEmployee indicates a regular staff member.
	RoleEmployee Role = "employee"
	// RoleHR indicates an HR officer.
	RoleHR Role = "hr"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleHR:
		return true
	default:
		return false
	}
}

// ParseRole converts a case-insensitive string into a Role.
// The second return value is false when the string names no known role.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))

	return role, role.IsValid()
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
