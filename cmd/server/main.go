package main

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/DeckDev-RC/hubapps/internal/assets"
	"github.com/DeckDev-RC/hubapps/internal/config"
	"github.com/DeckDev-RC/hubapps/internal/models"
	"github.com/DeckDev-RC/hubapps/internal/repository"
	"github.com/DeckDev-RC/hubapps/internal/server"
	"github.com/DeckDev-RC/hubapps/internal/storage"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatal("config load failed", "err", err)
	}
	cfg := config.Current
	if cfg.AdminPasswordHash == "" {
		log.Warn("ADMIN_PASSWORD_HASH not set; admin login is disabled")
	}

	files, err := assets.New(cfg.DataDir, assets.Limits{
		Logo:      cfg.MaxLogoSize,
		Installer: cfg.MaxInstallerSize,
		Doc:       cfg.MaxDocSize,
	})
	if err != nil {
		log.Fatal("asset store init failed", "err", err)
	}

	appsFile, err := storage.NewJSONFile[models.App](filepath.Join(cfg.DataDir, "data", "apps.json"), "apps")
	if err != nil {
		log.Fatal("apps store init failed", "err", err)
	}
	docsFile, err := storage.NewJSONFile[models.Doc](filepath.Join(cfg.DataDir, "data", "docs.json"), "docs")
	if err != nil {
		log.Fatal("docs store init failed", "err", err)
	}

	app := server.New(server.Deps{
		Apps:      repository.NewApps(appsFile, files),
		Docs:      repository.NewDocs(docsFile, files),
		AssetRoot: cfg.DataDir,
	})

	log.Info("server listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server failed", "err", err)
	}
}
