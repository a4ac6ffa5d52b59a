package impl

import (
	"context"
	"testing"
	"time"

	"hrdesk/internal/domain/entity"
	domainerrors "hrdesk/internal/domain/errors"
	"hrdesk/internal/domain/repository"
	"hrdesk/internal/errors"
	"hrdesk/internal/infra/auth"
	"hrdesk/internal/infra/persistence/memory"
	mockRepo "hrdesk/internal/mocks/repository"
	mockSvc "hrdesk/internal/mocks/service"
	"hrdesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type resetFixture struct {
	service *passwordResetService
	store   *memory.Store
	account *entity.Credential
}

func newResetFixture(t *testing.T) resetFixture {
	t.Helper()

	store := memory.NewStore()
	account := store.PutCredential(&entity.Credential{
		Username: "carol",
		Email:    "carol@example.com",
		Secret:   "legacy-pass",
		Role:     entity.RoleEmployee,
	})

	srv := newPasswordResetService(PasswordResetServiceParams{
		TxManager:      memory.NewTransactionManager(store),
		ResetRepo:      memory.NewPasswordResetRepository(store),
		CredentialRepo: memory.NewCredentialRepository(store),
		Hasher:         auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	}, fixedClock(testIssuedAt))

	return resetFixture{service: srv, store: store, account: account}
}

func TestRequestReset(t *testing.T) {
	fx := newResetFixture(t)
	ctx := context.Background()

	req, err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{Email: " Carol@Example.com "})
	require.NoError(t, err)
	assert.Equal(t, "carol@example.com", req.Email)
	assert.Equal(t, testIssuedAt, req.RequestedAt)

	// Unknown addresses are recorded the same way.
	other, err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{Email: "nobody@example.com"})
	require.NoError(t, err)
	assert.NotEqual(t, req.ID, other.ID)

	list, err := fx.service.ListResets(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, other.ID, list[0].ID, "newest first")
	assert.Equal(t, req.ID, list[1].ID)
}

func TestRequestReset_Validation(t *testing.T) {
	fx := newResetFixture(t)

	tests := []struct {
		name  string
		input *usecase.RequestResetInput
	}{
		{name: "nil input", input: nil},
		{name: "empty email", input: &usecase.RequestResetInput{}},
		{name: "not an email", input: &usecase.RequestResetInput{Email: "carol"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.RequestReset(context.Background(), tt.input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
		})
	}
}

func TestRequestReset_StorageFailure(t *testing.T) {
	resetRepo := mockRepo.NewMockPasswordResetRepository(t)
	resetRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	srv := newPasswordResetService(PasswordResetServiceParams{
		ResetRepo: resetRepo,
		Logger:    newDiscardLogger(),
	}, time.Now)

	_, err := srv.RequestReset(context.Background(), &usecase.RequestResetInput{Email: "carol@example.com"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestCompleteReset(t *testing.T) {
	fx := newResetFixture(t)
	ctx := context.Background()

	req, err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{Email: "carol@example.com"})
	require.NoError(t, err)

	err = fx.service.CompleteReset(ctx, &usecase.CompleteResetInput{
		RequestID:   req.ID,
		Email:       "carol@example.com",
		NewPassword: "brand-new-pass",
	})
	require.NoError(t, err)

	cred, err := memory.NewCredentialRepository(fx.store).FindByIdentifier(ctx, "carol")
	require.NoError(t, err)
	assert.NotEqual(t, "brand-new-pass", cred.Secret)

	ok, err := auth.NewBcryptHasher().Verify("brand-new-pass", cred.Secret)
	require.NoError(t, err)
	assert.True(t, ok)

	list, err := fx.service.ListResets(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCompleteReset_MatchesEmailsOnly(t *testing.T) {
	fx := newResetFixture(t)
	ctx := context.Background()

	fx.store.PutEmployee(&entity.Employee{ID: 5, Name: "Erin Lee", Email: "erin.lee@example.com"})
	erin := fx.store.PutCredential(&entity.Credential{Username: "erin", Secret: "legacy-erin", Role: entity.RoleEmployee, EmployeeID: ptr(int64(5))})
	dave := fx.store.PutCredential(&entity.Credential{Username: "dave@example.com", Secret: "legacy-dave", Role: entity.RoleEmployee})

	byUsername, err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{Email: "dave@example.com"})
	require.NoError(t, err)

	err = fx.service.CompleteReset(ctx, &usecase.CompleteResetInput{RequestID: byUsername.ID, Email: "dave@example.com", NewPassword: "brand-new-pass"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound), "got %v", err)

	byEmployeeEmail, err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{Email: "Erin.Lee@example.com"})
	require.NoError(t, err)

	require.NoError(t, fx.service.CompleteReset(ctx, &usecase.CompleteResetInput{
		RequestID:   byEmployeeEmail.ID,
		Email:       "erin.lee@example.com",
		NewPassword: "brand-new-pass",
	}))

	repo := memory.NewCredentialRepository(fx.store)

	updated, err := repo.FindByIdentifier(ctx, "erin")
	require.NoError(t, err)
	assert.Equal(t, erin.SubjectID, updated.SubjectID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Secret), []byte("brand-new-pass")))

	untouched, err := repo.FindByIdentifier(ctx, "dave@example.com")
	require.NoError(t, err)
	assert.Equal(t, dave.SubjectID, untouched.SubjectID)
	assert.Equal(t, "legacy-dave", untouched.Secret)
}

func TestCompleteReset_Failures(t *testing.T) {
	tests := []struct {
		name    string
		input   func(reqID int64) *usecase.CompleteResetInput
		wantErr error
	}{
		{
			name:    "nil input",
			input:   func(int64) *usecase.CompleteResetInput { return nil },
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "missing email",
			input: func(id int64) *usecase.CompleteResetInput {
				return &usecase.CompleteResetInput{RequestID: id, NewPassword: "brand-new-pass"}
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "password too short",
			input: func(id int64) *usecase.CompleteResetInput {
				return &usecase.CompleteResetInput{RequestID: id, Email: "carol@example.com", NewPassword: "abc"}
			},
			wantErr: domainerrors.ErrPasswordPolicy,
		},
		{
			name: "unknown request",
			input: func(id int64) *usecase.CompleteResetInput {
				return &usecase.CompleteResetInput{RequestID: id + 100, Email: "carol@example.com", NewPassword: "brand-new-pass"}
			},
			wantErr: domainerrors.ErrResetNotFound,
		},
		{
			name: "unknown account",
			input: func(id int64) *usecase.CompleteResetInput {
				return &usecase.CompleteResetInput{RequestID: id, Email: "nobody@example.com", NewPassword: "brand-new-pass"}
			},
			wantErr: domainerrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newResetFixture(t)
			ctx := context.Background()

			req, err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{Email: "carol@example.com"})
			require.NoError(t, err)

			err = fx.service.CompleteReset(ctx, tt.input(req.ID))
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			// Nothing changed.
			cred, err := memory.NewCredentialRepository(fx.store).FindByIdentifier(ctx, "carol")
			require.NoError(t, err)
			assert.Equal(t, "legacy-pass", cred.Secret)

			list, err := fx.service.ListResets(ctx)
			require.NoError(t, err)
			assert.Len(t, list, 1)
		})
	}
}

func TestCompleteReset_RollsBackOnDeleteFailure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	resetRepo := mockRepo.NewMockPasswordResetRepository(t)
	credRepo := mockRepo.NewMockCredentialRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	hasher.EXPECT().Hash("brand-new-pass").Return("$2a$04$hash", nil).Once()
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Once()
	factory.EXPECT().NewPasswordResetRepository().Return(resetRepo).Once()
	factory.EXPECT().NewCredentialRepository().Return(credRepo).Once()
	resetRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(&entity.PasswordResetRequest{ID: 3}, nil).Once()
	credRepo.EXPECT().FindByEmail(mock.Anything, "carol@example.com").Return(&entity.Credential{SubjectID: 9}, nil).Once()
	credRepo.EXPECT().UpdateSecret(mock.Anything, int64(9), "$2a$04$hash").Return(nil).Once()
	resetRepo.EXPECT().Delete(mock.Anything, int64(3)).Return(errors.New("lock timeout")).Once()

	srv := newPasswordResetService(PasswordResetServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	}, time.Now)

	err := srv.CompleteReset(context.Background(), &usecase.CompleteResetInput{
		RequestID:   3,
		Email:       "carol@example.com",
		NewPassword: "brand-new-pass",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))
}

func TestCompleteReset_HashFailure(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("boom")).Once()

	srv := newPasswordResetService(PasswordResetServiceParams{
		Hasher: hasher,
		Logger: newDiscardLogger(),
	}, time.Now)

	err := srv.CompleteReset(context.Background(), &usecase.CompleteResetInput{
		RequestID:   1,
		Email:       "carol@example.com",
		NewPassword: "brand-new-pass",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}
