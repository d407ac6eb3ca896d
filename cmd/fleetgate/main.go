package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"fleetgate/config"
	"fleetgate/internal/delivery"
	"fleetgate/internal/delivery/http"
	"fleetgate/internal/delivery/http/middleware"
	"fleetgate/internal/delivery/http/router/handler"
	deliverymiddleware "fleetgate/internal/delivery/middleware"
	"fleetgate/internal/infra/auth"
	logs "fleetgate/internal/infra/log"
	"fleetgate/internal/infra/persistence/postgres"
	"fleetgate/internal/infra/upstream"
	"fleetgate/internal/usecase/impl"
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
		upstream.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			upstream.NewAuthRepository,
			upstream.NewDeviceRepository,
			upstream.NewVehicleRepository,
			postgres.NewSessionRepository,
			postgres.NewRecentDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenDecoder,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewDeviceService,
			impl.NewVehicleService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewDeviceHandler,
			handler.NewVehicleHandler,
			handler.NewSearchHandler,
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
