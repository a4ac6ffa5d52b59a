// Package impl contains the implementation of the application's business logic.
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

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultLookupTimeout = 3 * time.Second

// authService implements the AuthUsecase interface.
// It holds only immutable configuration, so a single instance serves concurrent calls.
type authService struct {
	credentialRepo repository.CredentialRepository
	verifier       service.SecretVerifier
	tokenService   service.TokenService
	sessionTTL     time.Duration
	lookupTimeout  time.Duration
	// dummySecret is verified when no account matches, so unknown identifiers cost
	// about as much time as a wrong password.
	dummySecret string
	now         func() time.Time
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	Verifier       service.SecretVerifier
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) (usecase.AuthUsecase, error) {
	return newAuthService(params, time.Now)
}

func newAuthService(params AuthServiceParams, now func() time.Time) (*authService, error) {
	sessionTTL := entity.DefaultSessionTTL
	lookupTimeout := defaultLookupTimeout
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.SessionTTL > 0 {
			sessionTTL = params.Config.Auth.SessionTTL
		}
		if params.Config.Auth.LookupTimeout > 0 {
			lookupTimeout = params.Config.Auth.LookupTimeout
		}
	}

	dummySecret, err := params.Hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare dummy secret")
	}

	return &authService{
		credentialRepo: params.CredentialRepo,
		verifier:       params.Verifier,
		tokenService:   params.TokenService,
		sessionTTL:     sessionTTL,
		lookupTimeout:  lookupTimeout,
		dummySecret:    dummySecret,
		now:            now,
		logger:         params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies a login attempt and issues a session claim.
// Passwords and stored secrets never reach the logs.
func (srv *authService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*entity.SessionClaim, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidRequest
	}

	identifier := strings.TrimSpace(input.Identifier)
	if identifier == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidRequest
	}

	logger := srv.log(ctx)
	logger.Debug("Authenticating", slog.String("identifier", identifier))

	cred, err := srv.lookup(ctx, identifier)
	if err != nil {
		return nil, srv.handleLookupError(ctx, input.Password, err)
	}

	matched, err := srv.verify(ctx, input.Password, cred.Secret)
	if err != nil {
		if errors.IsContextError(err) {
			logger.Warn("Verification abandoned", slog.Any("error", err))

			return nil, domainerrors.ErrDirectoryUnavailable.WrapMessage("verification abandoned")
		}

		// A corrupt stored secret is an operator problem, not something to reveal to the caller.
		logger.Warn("Stored secret could not be verified",
			slog.Int64("subject_id", cred.SubjectID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !matched {
		logger.Debug("Password mismatch", slog.Int64("subject_id", cred.SubjectID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	var linkedProfileID *int64
	if cred.EmployeeID != nil {
		linkedProfileID, err = srv.credentialRepo.ResolveLinkedProfile(ctx, cred.SubjectID)
		if err != nil {
			logger.Error("Linked profile lookup failed",
				slog.Int64("subject_id", cred.SubjectID),
				slog.Any("error", err),
			)

			return nil, domainerrors.ErrDirectoryUnavailable.WrapMessage("linked profile lookup failed")
		}
	}

	return entity.NewSessionClaim(cred, linkedProfileID, srv.now(), srv.sessionTTL), nil
}

// Login authenticates and signs the claim as a bearer token.
func (srv *authService) Login(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.LoginOutput, error) {
	claim, err := srv.Authenticate(ctx, input)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.Sign(claim)
	if err != nil {
		srv.log(ctx).Error("Failed to sign session token", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to sign session token")
	}

	srv.log(ctx).Info("Session issued",
		slog.Int64("subject_id", claim.SubjectID),
		slog.String("role", claim.Role.String()),
		slog.Time("expires_at", claim.ExpiresAt),
	)

	return &usecase.LoginOutput{Claim: claim, Token: token}, nil
}

// VerifySession decodes and validates a bearer token.
func (srv *authService) VerifySession(ctx context.Context, token string) (*entity.SessionClaim, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claim, err := srv.tokenService.Parse(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected session token", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized.WrapMessage("invalid session token")
	}

	return claim, nil
}

func (srv *authService) lookup(ctx context.Context, identifier string) (*entity.Credential, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, srv.lookupTimeout)
	defer cancel()

	return runAbandonable(lookupCtx, func() (*entity.Credential, error) {
		return srv.credentialRepo.FindByIdentifier(lookupCtx, identifier)
	})
}

func (srv *authService) handleLookupError(ctx context.Context, password string, err error) error {
	logger := srv.log(ctx)

	if errors.IsAny(err, repository.ErrCredentialNotFound, repository.ErrAmbiguousIdentifier) {
		// Same cost as a real comparison; the result is irrelevant.
		_, _ = srv.verify(ctx, password, srv.dummySecret)

		if errors.Is(err, repository.ErrAmbiguousIdentifier) {
			logger.Warn("Identifier matches more than one account")
		} else {
			logger.Debug("No account for identifier")
		}

		return domainerrors.ErrInvalidCredentials
	}

	logger.Error("Credential lookup failed", slog.Any("error", err))

	return domainerrors.ErrDirectoryUnavailable.WrapMessage("credential lookup failed")
}

// verify runs the comparison off the caller's goroutine so cancellation is observed
// even while a slow hash is being computed.
func (srv *authService) verify(ctx context.Context, password, secret string) (bool, error) {
	return runAbandonable(ctx, func() (bool, error) {
		return srv.verifier.Verify(password, secret)
	})
}

// runAbandonable returns fn's result, or ctx's error if ctx is done first.
// The channel is buffered so an abandoned fn can still finish and exit.
// A panic in fn is returned as an error.
func runAbandonable[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		val T
		err error
	}

	if err := ctx.Err(); err != nil {
		var zero T

		return zero, err
	}

	done := make(chan result, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- result{err: errors.Errorf("verification panicked: %v", rec)}
			}
		}()

		val, err := fn()
		done <- result{val: val, err: err}
	}()

	select {
	case r := <-done:
		return r.val, r.err
	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	}
}
