// Package server wires the HTTP surface: routing, middleware, static asset
// serving, and the JSON error envelope.
package server

import (
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/DeckDev-RC/hubapps/internal/config"
	"github.com/DeckDev-RC/hubapps/internal/repository"
)

type Deps struct {
	Apps *repository.Apps
	Docs *repository.Docs

	// AssetRoot is the directory holding logos/, uploads/ and docs/.
	AssetRoot string
}

func New(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Hub Apps API",
		// Largest legal request: installer plus logo plus form fields.
		BodyLimit:    int(config.Current.MaxInstallerSize+config.Current.MaxLogoSize) + (8 << 20),
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(helmet.New(helmet.Config{
		// Assets are fetched cross-origin by the portal frontend.
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(cors.New())

	// Stored assets are served at their recorded relative paths.
	app.Static("/logos", filepath.Join(deps.AssetRoot, "logos"))
	app.Static("/uploads", filepath.Join(deps.AssetRoot, "uploads"))
	app.Static("/docs", filepath.Join(deps.AssetRoot, "docs"))

	RegisterRoutes(app, deps)
	return app
}

// errorHandler renders every error as {"message": "..."} with its status.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return c.Status(code).JSON(fiber.Map{"message": msg})
}
