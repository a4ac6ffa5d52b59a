package usecase

import (
	"context"

	"hrdesk/internal/domain/entity"
)

// RequestResetInput is a staff member asking for their password to be reset.
type RequestResetInput struct {
	Email string `validate:"required,email"`
}

// CompleteResetInput is an administrator setting a new password for a pending request.
type CompleteResetInput struct {
	RequestID   int64  `validate:"required,gt=0"`
	Email       string `validate:"required,email"`
	NewPassword string `validate:"required"`
}

// PasswordResetUsecase handles the administrator-mediated password reset desk.
type PasswordResetUsecase interface {
	RequestReset(ctx context.Context, input *RequestResetInput) (*entity.PasswordResetRequest, error)
	ListResets(ctx context.Context) ([]*entity.PasswordResetRequest, error)
	CompleteReset(ctx context.Context, input *CompleteResetInput) error
}
