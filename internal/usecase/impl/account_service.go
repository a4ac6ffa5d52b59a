package impl

import (
	"context"
	"log/slog"
	"strings"

	"hrdesk/config"
	deliverycontext "hrdesk/internal/delivery/context"
	"hrdesk/internal/domain/entity"
	domainerrors "hrdesk/internal/domain/errors"
	"hrdesk/internal/domain/repository"
	"hrdesk/internal/domain/service"
	"hrdesk/internal/errors"
	"hrdesk/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	validate       *validator.Validate
	policy         passwordPolicy
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	Validate       *validator.Validate
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	validate := params.Validate
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}

	return &accountService{
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		validate:       validate,
		policy:         newPasswordPolicy(params.Config),
		logger:         params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Provision creates an account with a hashed secret.
func (srv *accountService) Provision(ctx context.Context, input *usecase.ProvisionAccountInput) (*entity.Credential, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}

	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	if err := srv.validate.StructCtx(ctx, input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if input.Username == "" && input.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username or email is required")
	}

	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + input.Role)
	}

	if err := srv.policy.check(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	cred := &entity.Credential{
		Username:   input.Username,
		Email:      strings.ToLower(input.Email),
		Secret:     hash,
		Role:       role,
		EmployeeID: input.EmployeeID,
	}

	if err := srv.credentialRepo.Create(ctx, cred); err != nil {
		switch {
		case errors.Is(err, repository.ErrCredentialConflict):
			return nil, domainerrors.ErrUserAlreadyExists
		case errors.Is(err, repository.ErrLinkedProfileNotFound):
			return nil, domainerrors.ErrValidationFailed.WithDetails("linked employee does not exist")
		default:
			srv.log(ctx).Error("Failed to create account", slog.Any("error", err))

			return nil, domainerrors.ErrUserCreationFailed.WrapMessage("failed to create account")
		}
	}

	srv.log(ctx).Info("Account provisioned",
		slog.Int64("subject_id", cred.SubjectID),
		slog.String("role", role.String()),
	)

	return cred, nil
}
