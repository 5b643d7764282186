// Package persistence wires the repository implementations into the
// application. Production runs on PostgreSQL; the develop config omits the
// postgres section and runs on the in-memory stores instead.
package persistence

import (
	"log/slog"

	"sosradar/config"
	"sosradar/internal/domain/repository"
	"sosradar/internal/infra/persistence/memory"
	"sosradar/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// RepoResult bundles the repository implementations for Fx.
type RepoResult struct {
	fx.Out

	Locations repository.LocationRepository
	Sessions  repository.SessionRepository
}

// NewRepositories selects the backing store from configuration.
func NewRepositories(params Params) (RepoResult, error) {
	if params.Config.Postgres == nil {
		params.Logger.Info("Postgres not configured, using in-memory stores")

		return RepoResult{
			Locations: memory.NewLocationRepository(),
			Sessions:  memory.NewSessionRepository(),
		}, nil
	}

	db, err := postgres.New(params.Lifecycle, params.Config, params.Logger)
	if err != nil {
		return RepoResult{}, err
	}

	params.Logger.Info("Using PostgreSQL stores")

	return RepoResult{
		Locations: postgres.NewLocationRepository(db),
		Sessions:  postgres.NewSessionRepository(db),
	}, nil
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
