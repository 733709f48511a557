package main

import (
	"context"
	"log/slog"
	"os"

	"smachna/config"
	"smachna/internal/delivery"
	"smachna/internal/delivery/http"
	"smachna/internal/delivery/http/middleware"
	"smachna/internal/delivery/http/router/handler"
	"smachna/internal/domain/repository"
	"smachna/internal/domain/service"
	"smachna/internal/infra/audit"
	"smachna/internal/infra/auth"
	logs "smachna/internal/infra/log"
	"smachna/internal/infra/persistence/postgres"
	"smachna/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewEstablishmentRepository,
			postgres.NewReviewRepository,
			postgres.NewAuditLogRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newAuditRecorder,
		),
	)
}

// newAuditRecorder creates the async audit recorder and drains it on shutdown.
func newAuditRecorder(lc fx.Lifecycle, auditRepo repository.AuditLogRepository, cfg *config.Config, logger *slog.Logger) service.AuditRecorder {
	recorder := audit.NewRecorder(auditRepo, cfg, logger)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return recorder.Close()
		},
	})

	return recorder
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAggregateService,
			impl.NewPartnerService,
			impl.NewModerationService,
			impl.NewCatalogService,
			impl.NewReviewService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewEstablishmentHandler,
			handler.NewModerationHandler,
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
