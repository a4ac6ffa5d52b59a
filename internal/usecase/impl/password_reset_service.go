package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

// passwordResetService implements the PasswordResetUsecase interface.
type passwordResetService struct {
	txManager      repository.TransactionManager
	resetRepo      repository.PasswordResetRepository
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	validate       *validator.Validate
	policy         passwordPolicy
	now            func() time.Time
	logger         *slog.Logger
}

// PasswordResetServiceParams holds dependencies for PasswordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ResetRepo      repository.PasswordResetRepository
	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	Validate       *validator.Validate
	Config         *config.Config
	Logger         *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	return newPasswordResetService(params, time.Now)
}

func newPasswordResetService(params PasswordResetServiceParams, now func() time.Time) *passwordResetService {
	validate := params.Validate
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}

	return &passwordResetService{
		txManager:      params.TxManager,
		resetRepo:      params.ResetRepo,
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		validate:       validate,
		policy:         newPasswordPolicy(params.Config),
		now:            now,
		logger:         params.Logger,
	}
}

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReset records a reset request. The outcome never reveals whether the email belongs to an account.
func (srv *passwordResetService) RequestReset(ctx context.Context, input *usecase.RequestResetInput) (*entity.PasswordResetRequest, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}

	input.Email = strings.TrimSpace(input.Email)
	if err := srv.validate.StructCtx(ctx, input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a valid email is required")
	}

	req := &entity.PasswordResetRequest{
		Email:       strings.ToLower(input.Email),
		RequestedAt: srv.now(),
	}
	if err := srv.resetRepo.Create(ctx, req); err != nil {
		srv.log(ctx).Error("Failed to record password reset request", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to record password reset request")
	}

	srv.log(ctx).Info("Password reset requested", slog.Int64("request_id", req.ID))

	return req, nil
}

// ListResets returns pending requests, newest first.
func (srv *passwordResetService) ListResets(ctx context.Context) ([]*entity.PasswordResetRequest, error) {
	requests, err := srv.resetRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list password reset requests")
	}

	return requests, nil
}

// CompleteReset hashes the new password, stores it and closes the request in one transaction.
func (srv *passwordResetService) CompleteReset(ctx context.Context, input *usecase.CompleteResetInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed
	}

	input.Email = strings.TrimSpace(input.Email)
	if err := srv.validate.StructCtx(ctx, input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id, email and newPassword are required")
	}

	if err := srv.policy.check(input.NewPassword); err != nil {
		return err
	}

	// Hash outside the transaction so the database is not held during the slow step.
	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	var subjectID int64
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		resetRepo := factory.NewPasswordResetRepository()
		credentialRepo := factory.NewCredentialRepository()

		if _, err := resetRepo.FindByID(ctx, input.RequestID); err != nil {
			return err
		}

		cred, err := credentialRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			return err
		}
		subjectID = cred.SubjectID

		if err := credentialRepo.UpdateSecret(ctx, cred.SubjectID, hash); err != nil {
			return err
		}

		return resetRepo.Delete(ctx, input.RequestID)
	})
	if err != nil {
		return srv.mapCompleteError(ctx, err)
	}

	srv.log(ctx).Info("Password reset completed",
		slog.Int64("request_id", input.RequestID),
		slog.Int64("subject_id", subjectID),
	)

	return nil
}

func (srv *passwordResetService) mapCompleteError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrResetNotFound):
		return domainerrors.ErrResetNotFound
	case errors.IsAny(err, repository.ErrCredentialNotFound, repository.ErrAmbiguousIdentifier):
		return domainerrors.ErrUserNotFound
	default:
		srv.log(ctx).Error("Password reset transaction failed", slog.Any("error", err))

		return domainerrors.ErrTransactionFailed.WrapMessage("password reset failed")
	}
}
