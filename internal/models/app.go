package models

import "time"

// App is one catalog entry of the download portal. Asset URLs are relative
// paths under the static mounts (/logos, /uploads).
type App struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Version          string    `json:"version"`
	Category         string    `json:"category"`
	ShortDescription string    `json:"shortDescription"`
	FullDescription  string    `json:"fullDescription"`
	Changelog        string    `json:"changelog"`
	Requirements     string    `json:"requirements"`
	LogoURL          string    `json:"logoUrl"`
	DownloadURL      string    `json:"downloadUrl"`
	FileSize         string    `json:"fileSize"` // fixed at upload time, e.g. "12.4 MB"
	Downloads        int64     `json:"downloads"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// AppStats is the derived summary over the whole collection.
type AppStats struct {
	TotalApps      int        `json:"totalApps"`
	TotalDownloads int64      `json:"totalDownloads"`
	LastUpdate     *time.Time `json:"lastUpdate"`
}
