package auth

import (
	"crypto/sha256"
	"crypto/subtle"

	"hrdesk/internal/domain/service"
)

// plaintextVerifier matches legacy records whose secret was stored verbatim.
// It is consulted last, after every tagged hash format has declined the secret.
type plaintextVerifier struct{}

// NewPlaintextVerifier creates the verifier for legacy plaintext secrets.
func NewPlaintextVerifier() service.SecretVerifier {
	return &plaintextVerifier{}
}

// Supports accepts any non-empty stored value.
func (v *plaintextVerifier) Supports(secret string) bool {
	return secret != ""
}

// Verify compares fixed-size digests so the comparison time does not depend on
// where the inputs first differ or on their lengths.
func (v *plaintextVerifier) Verify(password, secret string) (bool, error) {
	submitted := sha256.Sum256([]byte(password))
	stored := sha256.Sum256([]byte(secret))

	return subtle.ConstantTimeCompare(submitted[:], stored[:]) == 1, nil
}
