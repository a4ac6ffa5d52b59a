// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"hrdesk/internal/domain/entity"
)

// --- Input DTOs ---

// AuthenticateInput is a login attempt. Identifier is a username or an email.
type AuthenticateInput struct {
	Identifier string
	Password   string
}

// --- Output DTOs ---

// LoginOutput carries the issued session and its signed bearer token.
type LoginOutput struct {
	Claim *entity.SessionClaim
	Token string
}

// AuthUsecase verifies credentials and issues sessions.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Authenticate verifies the identifier and password against the user directory and
	// returns a fresh session claim. Failures are ErrInvalidRequest, ErrInvalidCredentials
	// or ErrDirectoryUnavailable.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*entity.SessionClaim, error)

	// Login authenticates and signs the resulting claim as a bearer token.
	Login(ctx context.Context, input *AuthenticateInput) (*LoginOutput, error)

	// VerifySession decodes a bearer token into the claim it carries.
	VerifySession(ctx context.Context, token string) (*entity.SessionClaim, error)
}
