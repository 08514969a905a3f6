//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"lifetracker/internal"
	"lifetracker/internal/controllers"
	"lifetracker/internal/messaging"
	"lifetracker/internal/providers"
	"lifetracker/internal/services"
	"lifetracker/internal/structures"
	"lifetracker/internal/tracker"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewMetricsProvider,

		services.NewTrackerService,
		messaging.NewNotifier,

		tracker.NewZstdCompressor,
		tracker.NewFileManager,
		tracker.NewReminderJob,
		tracker.NewPraiseJob,
		tracker.NewMoodJob,
		tracker.NewSpendingMonitor,
		tracker.NewArchive,
		tracker.NewScheduler,

		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
