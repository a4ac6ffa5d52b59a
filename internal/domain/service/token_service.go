package service

import "hrdesk/internal/domain/entity"

// TokenService serializes session claims into signed bearer tokens and back.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Sign encodes the claim as a signed token string.
	Sign(claim *entity.SessionClaim) (string, error)

	// Parse validates a token string and returns the claim it carries.
	Parse(token string) (*entity.SessionClaim, error)
}
