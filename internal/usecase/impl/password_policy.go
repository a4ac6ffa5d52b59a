package impl

import (
	"strconv"
	"unicode/utf8"

	"hrdesk/config"
	domainerrors "hrdesk/internal/domain/errors"
)

const defaultPasswordMinLength = 6

// passwordPolicy applies to every newly written password.
type passwordPolicy struct {
	minLength int
	maxLength int // zero means unbounded
}

func newPasswordPolicy(cfg *config.Config) passwordPolicy {
	policy := passwordPolicy{minLength: defaultPasswordMinLength}
	if cfg != nil && cfg.PasswordPolicy != nil {
		if cfg.PasswordPolicy.MinLength > 0 {
			policy.minLength = cfg.PasswordPolicy.MinLength
		}
		policy.maxLength = cfg.PasswordPolicy.MaxLength
	}

	return policy
}

func (p passwordPolicy) check(password string) error {
	length := utf8.RuneCountInString(password)
	if length < p.minLength {
		return domainerrors.ErrPasswordPolicy.WithDetails("password must be at least " + strconv.Itoa(p.minLength) + " characters")
	}
	if p.maxLength > 0 && length > p.maxLength {
		return domainerrors.ErrPasswordPolicy.WithDetails("password must be at most " + strconv.Itoa(p.maxLength) + " characters")
	}

	return nil
}
