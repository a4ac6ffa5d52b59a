package impl

import (
	"context"
	"testing"

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

func newMemoryAccountService(store *memory.Store) usecase.AccountUsecase {
	return NewAccountService(AccountServiceParams{
		CredentialRepo: memory.NewCredentialRepository(store),
		Hasher:         auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})
}

func TestProvision(t *testing.T) {
	store := memory.NewStore()
	store.PutEmployee(&entity.Employee{ID: 1, Name: "Alice Martin", Email: "alice.martin@example.com"})
	srv := newMemoryAccountService(store)

	cred, err := srv.Provision(context.Background(), &usecase.ProvisionAccountInput{
		Username:   " alice ",
		Email:      "Alice@Example.com",
		Password:   "alice123",
		Role:       "HR",
		EmployeeID: ptr(int64(1)),
	})
	require.NoError(t, err)
	assert.NotZero(t, cred.SubjectID)
	assert.Equal(t, "alice", cred.Username)
	assert.Equal(t, "alice@example.com", cred.Email)
	assert.Equal(t, entity.RoleHR, cred.Role)
	assert.NotEqual(t, "alice123", cred.Secret)

	ok, err := auth.NewBcryptHasher().Verify("alice123", cred.Secret)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProvision_Failures(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.ProvisionAccountInput
		wantErr error
	}{
		{name: "nil input", input: nil, wantErr: domainerrors.ErrValidationFailed},
		{
			name:    "no identifier",
			input:   &usecase.ProvisionAccountInput{Password: "secret1", Role: "admin"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "bad email",
			input:   &usecase.ProvisionAccountInput{Email: "nope", Password: "secret1", Role: "admin"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown role",
			input:   &usecase.ProvisionAccountInput{Username: "dave", Password: "secret1", Role: "ceo"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "short password",
			input:   &usecase.ProvisionAccountInput{Username: "dave", Password: "abc", Role: "employee"},
			wantErr: domainerrors.ErrPasswordPolicy,
		},
		{
			name:    "duplicate username",
			input:   &usecase.ProvisionAccountInput{Username: "ADMIN", Password: "secret1", Role: "employee"},
			wantErr: domainerrors.ErrUserAlreadyExists,
		},
		{
			name:    "missing linked employee",
			input:   &usecase.ProvisionAccountInput{Username: "erin", Password: "secret1", Role: "employee", EmployeeID: ptr(int64(42))},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore()
			store.PutCredential(&entity.Credential{Username: "admin", Email: "admin@example.com", Secret: "admin123", Role: entity.RoleAdmin})
			srv := newMemoryAccountService(store)

			cred, err := srv.Provision(context.Background(), tt.input)
			assert.Nil(t, cred)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestProvision_StorageFailure(t *testing.T) {
	repo := mockRepo.NewMockCredentialRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	hasher.EXPECT().Hash("secret1").Return("$2a$04$hash", nil).Once()
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *entity.Credential) bool {
		return c.Secret == "$2a$04$hash" && c.Role == entity.RoleEmployee
	})).Return(errors.Wrap(repository.ErrCredentialConflict, "users_username_key")).Once()

	srv := NewAccountService(AccountServiceParams{CredentialRepo: repo, Hasher: hasher, Logger: newDiscardLogger()})

	_, err := srv.Provision(context.Background(), &usecase.ProvisionAccountInput{Username: "dave", Password: "secret1", Role: "employee"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestProvision_UnexpectedStorageError(t *testing.T) {
	repo := mockRepo.NewMockCredentialRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	hasher.EXPECT().Hash("secret1").Return("$2a$04$hash", nil).Once()
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	srv := NewAccountService(AccountServiceParams{CredentialRepo: repo, Hasher: hasher, Logger: newDiscardLogger()})

	_, err := srv.Provision(context.Background(), &usecase.ProvisionAccountInput{Username: "dave", Password: "secret1", Role: "employee"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserCreationFailed))
}
