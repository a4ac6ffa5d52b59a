package usecase

import (
	"context"

	"hrdesk/internal/domain/entity"
)

// ProvisionAccountInput defines the data required to create an account.
type ProvisionAccountInput struct {
	Username   string
	Email      string `validate:"omitempty,email"`
	Password   string `validate:"required"`
	Role       string `validate:"required"`
	EmployeeID *int64
}

// AccountUsecase creates accounts. Secrets are always hashed before they are stored.
type AccountUsecase interface {
	Provision(ctx context.Context, input *ProvisionAccountInput) (*entity.Credential, error)
}
