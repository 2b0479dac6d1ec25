package cmd

import (
	"github.com/kasuboski/ingestz/config"
	pkghttp "github.com/kasuboski/ingestz/pkg/http"
	"github.com/kasuboski/ingestz/pkg/ingest"
	"github.com/kasuboski/ingestz/pkg/qbittorrent"
)

// newClient builds a qBittorrent client with its own cookie session
func newClient(cfg config.Config) (*qbittorrent.QBittorrentClient, error) {
	httpClient, err := pkghttp.NewSessionClient()
	if err != nil {
		return nil, err
	}

	return qbittorrent.New(httpClient, cfg.QBittorrent.URL, cfg.QBittorrent.Username, cfg.QBittorrent.Password)
}

// ingestConfig maps the loaded configuration onto the ingester settings
func ingestConfig(cfg config.Config) ingest.Config {
	return ingest.Config{
		MovieCategories:  cfg.Categories.Movie,
		TVCategories:     cfg.Categories.TV,
		MovieSavePath:    cfg.Paths.Movie,
		TVSavePath:       cfg.Paths.TV,
		DownloadLimit:    cfg.Limits.Download,
		UploadLimit:      cfg.Limits.Upload,
		IdentifyAttempts: cfg.Identify.Attempts,
		IdentifyInterval: cfg.Identify.Interval,
	}
}
