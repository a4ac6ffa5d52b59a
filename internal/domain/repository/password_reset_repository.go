package repository

import (
	"context"
	"errors"

	"hrdesk/internal/domain/entity"
)

// ErrResetNotFound is returned when a password reset request does not exist.
var ErrResetNotFound = errors.New("password reset request not found")

// PasswordResetRepository stores pending password reset requests.
type PasswordResetRepository interface {
	// Create persists a new request and fills in its ID.
	Create(ctx context.Context, req *entity.PasswordResetRequest) error

	// List returns all pending requests, newest first.
	List(ctx context.Context) ([]*entity.PasswordResetRequest, error)

	// FindByID retrieves a single request.
	FindByID(ctx context.Context, id int64) (*entity.PasswordResetRequest, error)

	// Delete removes a request once it has been handled.
	Delete(ctx context.Context, id int64) error
}
