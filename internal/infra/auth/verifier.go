package auth

import (
	"hrdesk/config"
	"hrdesk/internal/domain/service"
	"hrdesk/internal/errors"
)

var (
	// ErrMalformedSecret is returned when a stored secret carries a known format tag but cannot be parsed.
	ErrMalformedSecret = errors.New("malformed stored secret")
	// ErrUnsupportedSecret is returned when no verifier recognises the stored secret.
	ErrUnsupportedSecret = errors.New("unsupported stored secret format")
)

// compositeVerifier dispatches to the first verifier that supports the stored secret.
type compositeVerifier struct {
	verifiers []service.SecretVerifier
}

// NewCompositeVerifier builds a verifier that tries each delegate in order.
// Order matters: tagged hash formats must come before the plaintext fallback.
func NewCompositeVerifier(verifiers ...service.SecretVerifier) service.SecretVerifier {
	return &compositeVerifier{verifiers: verifiers}
}

// Supports reports whether any delegate understands the secret.
func (c *compositeVerifier) Supports(secret string) bool {
	return c.pick(secret) != nil
}

// Verify forwards to the selected delegate.
func (c *compositeVerifier) Verify(password, secret string) (bool, error) {
	verifier := c.pick(secret)
	if verifier == nil {
		return false, ErrUnsupportedSecret
	}

	return verifier.Verify(password, secret)
}

func (c *compositeVerifier) pick(secret string) service.SecretVerifier {
	for _, v := range c.verifiers {
		if v.Supports(secret) {
			return v
		}
	}

	return nil
}

// NewPasswordHasher selects the hasher for newly written secrets from configuration.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	switch cfg.Auth.HashAlgorithm {
	case "", config.HashAlgorithmBcrypt:
		return NewBcryptHasherWithCost(cfg.Auth.BcryptCost), nil
	case config.HashAlgorithmArgon2id:
		return NewArgon2idHasher(), nil
	default:
		return nil, errors.Errorf("unknown hash algorithm %q", cfg.Auth.HashAlgorithm)
	}
}

// NewSecretVerifier builds the verifier used at login: bcrypt, then argon2id,
// then plaintext when legacy secrets are allowed.
func NewSecretVerifier(cfg *config.Config) service.SecretVerifier {
	verifiers := []service.SecretVerifier{
		NewBcryptHasherWithCost(cfg.Auth.BcryptCost),
		NewArgon2idHasher(),
	}
	if cfg.Auth.PlaintextAllowed() {
		verifiers = append(verifiers, NewPlaintextVerifier())
	}

	return NewCompositeVerifier(verifiers...)
}
