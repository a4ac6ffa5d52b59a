// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	domainerrors "hrdesk/internal/domain/errors"
	"hrdesk/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

var _ echo.Validator = (*CustomValidator)(nil)

// NewValidate builds the shared struct validator.
func NewValidate() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// New wraps validate for use as echo's validator.
func New(validate *validator.Validate) *CustomValidator {
	if validate == nil {
		validate = NewValidate()
	}

	return &CustomValidator{validate: validate}
}

// Validate checks i against its `validate` tags and reports failures as ErrValidationFailed.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, fe.Field()+": "+fe.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}
