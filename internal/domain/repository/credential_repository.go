// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"hrdesk/internal/domain/entity"
)

// Domain-specific errors for the user directory.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrCredentialNotFound is returned when no account matches the identifier.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrAmbiguousIdentifier is returned when an identifier matches more than one account.
	ErrAmbiguousIdentifier = errors.New("identifier matches more than one account")
	// ErrCredentialConflict is returned when a username or email is already registered.
	ErrCredentialConflict = errors.New("username or email already registered")
	// ErrLinkedProfileNotFound is returned when a new account references an employee that does not exist.
	ErrLinkedProfileNotFound = errors.New("linked employee profile not found")
)

// CredentialRepository is the user directory: the source of truth for credential records.
type CredentialRepository interface {
	// FindByIdentifier returns the single account whose username, email, or linked employee
	// email equals identifier, compared case-insensitively.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Credential, error)

	// FindByEmail is FindByIdentifier restricted to the account email and the linked
	// employee email; usernames never match.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// ResolveLinkedProfile returns the id of the employee profile linked to the account,
	// or nil when the account has none or the profile no longer exists.
	ResolveLinkedProfile(ctx context.Context, subjectID int64) (*int64, error)

	// Create persists a new account and fills in its SubjectID.
	Create(ctx context.Context, cred *entity.Credential) error

	// UpdateSecret replaces the stored secret of an account.
	UpdateSecret(ctx context.Context, subjectID int64, secret string) error
}
