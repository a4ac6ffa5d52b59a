package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTTL is the lifetime of an issued session claim.
const DefaultSessionTTL = time.Hour

// SessionClaim is the set of facts about an authenticated subject issued after
// successful verification. It has no persisted representation and cannot be renewed.
type SessionClaim struct {
	TokenID         uuid.UUID // Unique id of this issuance (JWT "jti").
	SubjectID       int64     // The authenticated account.
	Role            Role      // The account's role at issuance time.
	Identifier      string    // The canonical stored identifier, not necessarily what the caller typed.
	LinkedProfileID *int64    // The linked employee profile, if any.
	IssuedAt        time.Time
	ExpiresAt       time.Time // Always IssuedAt + TTL.
}

// NewSessionClaim builds a claim for cred issued at issuedAt and valid for ttl.
func NewSessionClaim(cred *Credential, linkedProfileID *int64, issuedAt time.Time, ttl time.Duration) *SessionClaim {
	return &SessionClaim{
		TokenID:         uuid.New(),
		SubjectID:       cred.SubjectID,
		Role:            cred.Role,
		Identifier:      cred.CanonicalIdentifier(),
		LinkedProfileID: linkedProfileID,
		IssuedAt:        issuedAt,
		ExpiresAt:       issuedAt.Add(ttl),
	}
}

// TTL returns the validity window of the claim.
func (c *SessionClaim) TTL() time.Duration {
	return c.ExpiresAt.Sub(c.IssuedAt)
}

// IsExpired reports whether the claim is no longer valid at now.
func (c *SessionClaim) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
