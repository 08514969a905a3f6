package internal

import (
	"net/http"

	"lifetracker/internal/controllers"
	"lifetracker/internal/providers"
	"lifetracker/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/api/sync", http.HandlerFunc(apiController.Sync))
	routers.Get("/api/user", http.HandlerFunc(apiController.GetUser))
	routers.Get("/api/data", http.HandlerFunc(apiController.GetData))
	routers.Post("/api/mood", http.HandlerFunc(apiController.SaveMood))
	routers.Get("/api/mood/calendar", http.HandlerFunc(apiController.GetMoodCalendar))
	routers.Post("/api/settings", http.HandlerFunc(apiController.SaveSettings))
	return routers
}
