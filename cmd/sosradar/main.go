package main

import (
	"context"
	"log/slog"
	"os"

	"sosradar/config"
	"sosradar/internal/delivery"
	"sosradar/internal/delivery/http"
	httphandler "sosradar/internal/delivery/http/router/handler"
	"sosradar/internal/delivery/worker"
	workerhandler "sosradar/internal/delivery/worker/handler"
	"sosradar/internal/domain/service"
	"sosradar/internal/infra/geo"
	logs "sosradar/internal/infra/log"
	"sosradar/internal/infra/persistence"
	"sosradar/internal/infra/push"
	"sosradar/internal/infra/pubsub"
	"sosradar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
	)
}

func injectRepo() fx.Option {
	return persistence.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				geo.NewIndex,
				fx.As(new(service.GeoIndex)),
			),
		),
		push.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
			impl.NewSessionTracker,
			impl.NewAlertService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			httphandler.NewLocationHandler,
			httphandler.NewAlertHandler,
			httphandler.NewEventHandler,
			workerhandler.NewPushHandler,
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
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
