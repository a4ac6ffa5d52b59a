package impl

import (
	"context"
	"testing"

	"hrdesk/config"
	domainerrors "hrdesk/internal/domain/errors"
	"hrdesk/internal/errors"
	"hrdesk/internal/infra/persistence/memory"
	mockUsecase "hrdesk/internal/mocks/usecase"
	"hrdesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestSeedAccounts_Idempotent(t *testing.T) {
	store := memory.NewStore()
	accounts := newMemoryAccountService(store)
	seeds := []config.SeedAccount{
		{Username: "admin", Email: "admin@example.com", Password: "admin123", Role: "admin"},
		{Username: "bob", Password: "bob-pass", Role: "employee"},
	}

	require.NoError(t, SeedAccounts(context.Background(), accounts, seeds, newDiscardLogger()))
	require.NoError(t, SeedAccounts(context.Background(), accounts, seeds, newDiscardLogger()))

	repo := memory.NewCredentialRepository(store)
	for _, id := range []string{"admin", "admin@example.com", "bob"} {
		_, err := repo.FindByIdentifier(context.Background(), id)
		assert.NoError(t, err, id)
	}
}

func TestSeedAccounts_StopsOnFailure(t *testing.T) {
	accounts := mockUsecase.NewMockAccountUsecase(t)
	accounts.EXPECT().Provision(mock.Anything, mock.MatchedBy(func(in *usecase.ProvisionAccountInput) bool {
		return in.Username == "broken"
	})).Return(nil, domainerrors.ErrPasswordPolicy).Once()

	err := SeedAccounts(context.Background(), accounts, []config.SeedAccount{
		{Username: "broken", Password: "x", Role: "admin"},
		{Username: "never", Password: "secret1", Role: "admin"},
	}, newDiscardLogger())
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordPolicy))
}

func TestRegisterSeeder(t *testing.T) {
	accounts := mockUsecase.NewMockAccountUsecase(t)
	accounts.EXPECT().Provision(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists).Once()

	lc := fxtest.NewLifecycle(t)
	RegisterSeeder(SeederParams{
		Lifecycle: lc,
		Accounts:  accounts,
		Config: &config.Config{Seed: &config.SeedConfig{
			Enabled:  true,
			Accounts: []config.SeedAccount{{Username: "admin", Password: "admin123", Role: "admin"}},
		}},
		Logger: newDiscardLogger(),
	})

	lc.RequireStart().RequireStop()
}

func TestRegisterSeeder_Disabled(t *testing.T) {
	accounts := mockUsecase.NewMockAccountUsecase(t)
	lc := fxtest.NewLifecycle(t)

	RegisterSeeder(SeederParams{
		Lifecycle: lc,
		Accounts:  accounts,
		Config:    &config.Config{Seed: &config.SeedConfig{Enabled: false}},
		Logger:    newDiscardLogger(),
	})

	lc.RequireStart().RequireStop()
}
