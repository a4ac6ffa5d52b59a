package impl

import (
	"testing"

	"hrdesk/config"
	domainerrors "hrdesk/internal/domain/errors"
	"hrdesk/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestPasswordPolicy(t *testing.T) {
	policy := newPasswordPolicy(&config.Config{PasswordPolicy: &config.PasswordPolicyConfig{MinLength: 8, MaxLength: 10}})

	assert.NoError(t, policy.check("12345678"))
	assert.NoError(t, policy.check("ééééééééé"))
	assert.True(t, errors.Is(policy.check("1234567"), domainerrors.ErrPasswordPolicy))
	assert.True(t, errors.Is(policy.check("12345678901"), domainerrors.ErrPasswordPolicy))
}

func TestPasswordPolicy_Defaults(t *testing.T) {
	policy := newPasswordPolicy(nil)

	assert.Equal(t, defaultPasswordMinLength, policy.minLength)
	assert.Zero(t, policy.maxLength)
	assert.NoError(t, policy.check("123456"))
	assert.Error(t, policy.check("12345"))
}
