//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"dashd/internal"
	"dashd/internal/collector"
	"dashd/internal/controllers"
	"dashd/internal/generator"
	"dashd/internal/providers"
	"dashd/internal/services"
	"dashd/internal/store"
	"dashd/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		store.NewDocumentStore,
		generator.NewRand,
		generator.NewRegistry,
		services.NewStatisticService,
		services.NewBoardService,
		collector.NewScheduler,
		controllers.NewApiController,
		controllers.NewBoardController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
