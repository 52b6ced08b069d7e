package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DeckDev-RC/hubapps/internal/server/handlers"
	"github.com/DeckDev-RC/hubapps/internal/server/middleware"
)

func RegisterRoutes(app *fiber.App, deps Deps) {
	appsH := handlers.NewAppHandler(deps.Apps)
	docsH := handlers.NewDocHandler(deps.Docs)

	api := app.Group("/api")

	// Auth
	auth := api.Group("/auth")
	auth.Post("/login", handlers.Login)
	auth.Get("/me", middleware.AuthRequired(), handlers.Me)

	// Apps catalog
	apps := api.Group("/apps")
	apps.Get("/", appsH.List)
	apps.Get("/stats/summary", middleware.AuthRequired(), appsH.Stats)
	apps.Get("/:id", appsH.Get)
	apps.Post("/", middleware.AuthRequired(), appsH.Create)
	apps.Put("/:id", middleware.AuthRequired(), appsH.Update)
	apps.Delete("/:id", middleware.AuthRequired(), appsH.Delete)
	apps.Post("/:id/download", appsH.Download) // public counter

	// Docs library
	docs := api.Group("/docs")
	docs.Get("/", docsH.List)
	docs.Get("/:id", docsH.Get)
	docs.Post("/", middleware.AuthRequired(), docsH.Create)
	docs.Put("/:id", middleware.AuthRequired(), docsH.Update)
	docs.Delete("/:id", middleware.AuthRequired(), docsH.Delete)

	// Root + health
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hub Apps API is running"})
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "time": time.Now()})
	})
}
