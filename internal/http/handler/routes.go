package handler

import (
	"github.com/gofiber/fiber/v2"

	"fixtureplanner/internal/assets"
	"fixtureplanner/internal/service"
)

// RegisterRoutes attaches the API and probe routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, store assets.Store, indexFile string, gen service.FixtureGenerator) {
	app.Post("/generate", Generate(gen))

	app.Get("/health", HealthCheck(store, indexFile))
	app.Get("/healthz", LivenessProbe())
}

// RegisterStatic attaches the static file routes. The asset route matches every GET path,
// so it must be registered after all other GET routes.
func RegisterStatic(app *fiber.App, store assets.Store, indexFile string) {
	app.Get("/", ServeIndex(store, indexFile))
	app.Get("/*", ServeAsset(store))
}
