package main

import (
	"context"
	"log/slog"
	"os"

	"arcade/config"
	"arcade/internal/delivery"
	"arcade/internal/delivery/http"
	"arcade/internal/delivery/http/middleware"
	"arcade/internal/delivery/http/router/handler"
	"arcade/internal/infra/auth"
	logs "arcade/internal/infra/log"
	"arcade/internal/infra/mail"
	"arcade/internal/infra/persistence/postgres"
	"arcade/internal/infra/task"
	"arcade/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newRegisterPool,
	)
}

// newRegisterPool sizes the registration worker pool from config and ties
// its drain to application shutdown.
func newRegisterPool(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) *task.Pool {
	workers, queueSize := 4, 64
	if cfg.Register != nil {
		if cfg.Register.Workers > 0 {
			workers = cfg.Register.Workers
		}
		if cfg.Register.QueueSize > 0 {
			queueSize = cfg.Register.QueueSize
		}
	}

	pool := task.NewPool(workers, queueSize, logger)
	lc.Append(fx.Hook{
		OnStop: pool.Shutdown,
	})

	return pool
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPBKDF2Hasher,
			auth.NewJWTService,
			auth.NewOTPGenerator,
			mail.NewSMTPSender,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewMailService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewMailHandler,
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
