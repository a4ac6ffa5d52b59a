// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// Credential is a stored account entry used to verify a login attempt.
// It is owned by the directory; the verifier only ever reads it.
type Credential struct {
	SubjectID  int64     // Opaque unique identifier of the account (users.id).
	Username   string    // Login name. May be empty when the account only has an email.
	Email      string    // Account email, also usable as a login identifier.
	Secret     string    // Stored password: a tagged one-way hash, or a legacy plaintext value.
	Role       Role      // The account's role.
	EmployeeID *int64    // Optional link to an employee profile.
	CreatedAt  time.Time // Timestamp of when this account was created.
	UpdatedAt  time.Time // Timestamp of the last modification to this account.
}

// CanonicalIdentifier returns the stored identifier that represents the account
// in issued session claims: the username when set, otherwise the email.
func (c *Credential) CanonicalIdentifier() string {
	if c.Username != "" {
		return c.Username
	}

	return c.Email
}

// HasIdentifier reports whether identifier names this account's username or email,
// compared case-insensitively.
func (c *Credential) HasIdentifier(identifier string) bool {
	needle := NormalizeIdentifier(identifier)
	if needle == "" {
		return false
	}

	return NormalizeIdentifier(c.Username) == needle || NormalizeIdentifier(c.Email) == needle
}

// NormalizeIdentifier trims and lower-cases a login identifier for comparison.
func NormalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

// Employee is the profile record a credential may be linked to.
// Employee management lives outside this service; the record is read-only here.
type Employee struct {
	ID         int64
	Name       string
	Email      string
	Department string
	Position   string
}
