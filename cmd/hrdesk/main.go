package main

import (
	"context"
	"log/slog"
	"os"

	"hrdesk/config"
	"hrdesk/internal/delivery"
	"hrdesk/internal/delivery/http"
	"hrdesk/internal/delivery/http/middleware"
	"hrdesk/internal/delivery/http/router/handler"
	"hrdesk/internal/delivery/http/validator"
	"hrdesk/internal/infra/auth"
	logs "hrdesk/internal/infra/log"
	"hrdesk/internal/infra/metrics"
	"hrdesk/internal/infra/persistence/memory"
	"hrdesk/internal/infra/persistence/postgres"
	"hrdesk/internal/infra/ratelimit"
	"hrdesk/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// Loaded up front because the directory driver decides which providers exist.
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		injectInfra(cfg),
		injectRepo(cfg.Directory.Driver),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			impl.RegisterSeeder,
			startServer,
		),
	).Run()
}

func injectInfra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			context.Background,
			metrics.New,
			ratelimit.New,
			validator.NewValidate,
		),
	)
}

func injectRepo(driver string) fx.Option {
	if driver == config.DirectoryDriverPostgres {
		return fx.Provide(
			postgres.New,
			postgres.NewCredentialRepository,
			postgres.NewPasswordResetRepository,
			postgres.NewTransactionManager,
		)
	}

	return fx.Provide(
		memory.New,
		memory.NewCredentialRepository,
		memory.NewPasswordResetRepository,
		memory.NewTransactionManager,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPasswordHasher,
			auth.NewSecretVerifier,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPasswordResetService,
			impl.NewAccountService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPasswordResetHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
