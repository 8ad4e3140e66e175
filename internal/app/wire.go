package app

import (
	"net/http"

	"trendline/internal/api"
	"trendline/internal/chart"
	"trendline/internal/client"
	"trendline/internal/dataset"
	"trendline/internal/services/trendline"
	"trendline/internal/store"
)

// Wire bundles the loader, stores, services and clients.
type Wire struct {
	Tables     *dataset.Loader
	Images     *store.ImageStore
	Renderer   *chart.Renderer
	Trendlines *trendline.Service
	Client     *client.HTTP // nil unless ServerURL is set
	HTTP       *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	tables := dataset.NewLoader(cfg.Dataset.Path, cfg.Dataset.Options())
	images := store.NewImageStore(cfg.OutputDir)
	renderer := chart.NewRenderer(chart.Options{DPI: cfg.DPI})

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	var rc *client.HTTP
	if cfg.ServerURL != "" {
		rc = client.NewHTTP(cfg.ServerURL, httpClient)
	}

	return &Wire{
		Tables:     tables,
		Images:     images,
		Renderer:   renderer,
		Trendlines: trendline.New(tables, renderer, images),
		Client:     rc,
		HTTP:       httpClient,
	}, nil
}

// Server returns the HTTP API over the wired service.
func (w *Wire) Server() *api.Server {
	return api.New(w.Trendlines, w.Images)
}
