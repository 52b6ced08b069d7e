package repository

import (
	"fmt"
	"mime/multipart"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/DeckDev-RC/hubapps/internal/assets"
	"github.com/DeckDev-RC/hubapps/internal/models"
	"github.com/DeckDev-RC/hubapps/internal/storage"
)

// Apps is the record store for the application catalog. Mutations are
// serialized in-process by a mutex so overlapping requests touching different
// records cannot lose each other's writes; the whole-collection
// last-write-wins race across processes remains (see package storage).
type Apps struct {
	mu    sync.Mutex
	store storage.Collection[models.App]
	files *assets.Store
}

func NewApps(store storage.Collection[models.App], files *assets.Store) *Apps {
	return &Apps{store: store, files: files}
}

// AppInput carries the creation fields.
type AppInput struct {
	Name             string
	Version          string
	Category         string
	ShortDescription string
	FullDescription  string
	Changelog        string
	Requirements     string
}

// AppUpdate carries a partial update; nil fields are left untouched.
type AppUpdate struct {
	Name             *string
	Version          *string
	Category         *string
	ShortDescription *string
	FullDescription  *string
	Changelog        *string
	Requirements     *string
}

func (r *Apps) List() ([]models.App, error) {
	apps, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []models.App{}
	}
	return apps, nil
}

func (r *Apps) Get(id string) (models.App, error) {
	apps, err := r.store.Load()
	if err != nil {
		return models.App{}, err
	}
	for _, a := range apps {
		if a.ID == id {
			return a, nil
		}
	}
	return models.App{}, ErrNotFound
}

// Create validates the input, stores both assets, and appends the record.
// If anything fails after a file was written, the file is removed again so
// no orphan survives a failed POST.
func (r *Apps) Create(in AppInput, logo, installer *multipart.FileHeader) (models.App, error) {
	switch {
	case in.Name == "":
		return models.App{}, validationf("name is required")
	case in.Version == "":
		return models.App{}, validationf("version is required")
	case in.Category == "":
		return models.App{}, validationf("category is required")
	case logo == nil:
		return models.App{}, validationf("logo file is required")
	case installer == nil:
		return models.App{}, validationf("installer file is required")
	}

	logoURL, err := r.files.SaveUpload(assets.Logo, logo)
	if err != nil {
		return models.App{}, fmt.Errorf("store logo: %w", err)
	}
	downloadURL, err := r.files.SaveUpload(assets.Installer, installer)
	if err != nil {
		r.cleanup(logoURL)
		return models.App{}, fmt.Errorf("store installer: %w", err)
	}

	now := time.Now().UTC()
	app := models.App{
		ID:               uuid.NewString(),
		Name:             in.Name,
		Version:          in.Version,
		Category:         in.Category,
		ShortDescription: in.ShortDescription,
		FullDescription:  in.FullDescription,
		Changelog:        in.Changelog,
		Requirements:     in.Requirements,
		LogoURL:          logoURL,
		DownloadURL:      downloadURL,
		FileSize:         humanSize(installer.Size),
		Downloads:        0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	apps, err := r.store.Load()
	if err != nil {
		r.cleanup(logoURL, downloadURL)
		return models.App{}, err
	}
	apps = append(apps, app)
	if err := r.store.Save(apps); err != nil {
		r.cleanup(logoURL, downloadURL)
		return models.App{}, err
	}
	return app, nil
}

// Update merges the provided fields over the stored record. A new logo or
// installer replaces the old asset; the superseded file is deleted only once
// the replacement is on disk.
func (r *Apps) Update(id string, in AppUpdate, logo, installer *multipart.FileHeader) (models.App, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	apps, err := r.store.Load()
	if err != nil {
		return models.App{}, err
	}
	idx := -1
	for i := range apps {
		if apps[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.App{}, ErrNotFound
	}
	app := apps[idx]

	setIf(&app.Name, in.Name)
	setIf(&app.Version, in.Version)
	setIf(&app.Category, in.Category)
	setIf(&app.ShortDescription, in.ShortDescription)
	setIf(&app.FullDescription, in.FullDescription)
	setIf(&app.Changelog, in.Changelog)
	setIf(&app.Requirements, in.Requirements)

	if logo != nil {
		newLogo, err := r.files.SaveUpload(assets.Logo, logo)
		if err != nil {
			return models.App{}, fmt.Errorf("store logo: %w", err)
		}
		r.cleanup(app.LogoURL)
		app.LogoURL = newLogo
	}
	if installer != nil {
		newInstaller, err := r.files.SaveUpload(assets.Installer, installer)
		if err != nil {
			return models.App{}, fmt.Errorf("store installer: %w", err)
		}
		r.cleanup(app.DownloadURL)
		app.DownloadURL = newInstaller
		app.FileSize = humanSize(installer.Size)
	}

	app.UpdatedAt = time.Now().UTC()
	apps[idx] = app
	if err := r.store.Save(apps); err != nil {
		return models.App{}, err
	}
	return app, nil
}

// Delete removes the record and best-effort deletes its asset files. A file
// that is already gone never fails the delete.
func (r *Apps) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	apps, err := r.store.Load()
	if err != nil {
		return err
	}
	kept := apps[:0:0]
	found := false
	for _, a := range apps {
		if a.ID == id {
			found = true
			r.cleanup(a.LogoURL, a.DownloadURL)
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return ErrNotFound
	}
	return r.store.Save(kept)
}

// IncrementDownload bumps the public download counter by one.
func (r *Apps) IncrementDownload(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	apps, err := r.store.Load()
	if err != nil {
		return err
	}
	for i := range apps {
		if apps[i].ID == id {
			apps[i].Downloads++
			return r.store.Save(apps)
		}
	}
	return ErrNotFound
}

// StatsSummary recomputes the collection totals on every call.
func (r *Apps) StatsSummary() (models.AppStats, error) {
	apps, err := r.store.Load()
	if err != nil {
		return models.AppStats{}, err
	}
	stats := models.AppStats{TotalApps: len(apps)}
	for _, a := range apps {
		stats.TotalDownloads += a.Downloads
		if stats.LastUpdate == nil || a.UpdatedAt.After(*stats.LastUpdate) {
			t := a.UpdatedAt
			stats.LastUpdate = &t
		}
	}
	return stats, nil
}

func (r *Apps) cleanup(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := r.files.Delete(p); err != nil {
			log.Warn("asset cleanup failed", "path", p, "err", err)
		}
	}
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func humanSize(bytes int64) string {
	return fmt.Sprintf("%.1f MB", float64(bytes)/(1<<20))
}
