package impl

import (
	"context"
	"log/slog"

	"hrdesk/config"
	domainerrors "hrdesk/internal/domain/errors"
	"hrdesk/internal/domain/lifecycle"
	"hrdesk/internal/errors"
	"hrdesk/internal/usecase"

	"go.uber.org/fx"
)

// SeederParams holds dependencies for the startup seeder, injected by Fx.
type SeederParams struct {
	fx.In
	fx.Lifecycle

	Accounts usecase.AccountUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// RegisterSeeder provisions the configured accounts when the application starts.
func RegisterSeeder(params SeederParams) {
	if params.Config.Seed == nil || !params.Config.Seed.Enabled {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return SeedAccounts(ctx, params.Accounts, params.Config.Seed.Accounts, params.Logger)
		},
	})
}

// SeedAccounts provisions each account, skipping those that already exist.
func SeedAccounts(ctx context.Context, accounts usecase.AccountUsecase, seeds []config.SeedAccount, logger *slog.Logger) error {
	created := 0
	for _, seed := range seeds {
		_, err := accounts.Provision(ctx, &usecase.ProvisionAccountInput{
			Username:   seed.Username,
			Email:      seed.Email,
			Password:   seed.Password,
			Role:       seed.Role,
			EmployeeID: seed.EmployeeID,
		})
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			logger.Info("Seed account already exists", slog.String("username", seed.Username))

			continue
		}
		if err != nil {
			return errors.Wrapf(err, "failed to seed account %q", seed.Username)
		}
		created++
	}

	logger.Info("Seed accounts provisioned", slog.Int("created", created), slog.Int("configured", len(seeds)))

	return nil
}
