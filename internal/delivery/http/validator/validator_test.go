package validator

import (
	"testing"

	domainerrors "hrdesk/internal/domain/errors"
	"hrdesk/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required"`
}

func TestCustomValidator(t *testing.T) {
	cv := New(nil)

	require.NoError(t, cv.Validate(&sample{Email: "a@example.com", Name: "a"}))

	err := cv.Validate(&sample{Email: "nope"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Email: email; Name: required", appErr.Details())
}
