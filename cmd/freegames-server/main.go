package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"strings"

	"freegames-backend/lib/configutil"
	"freegames-backend/lib/dataset"
	"freegames-backend/lib/serviceutil"
	"freegames-backend/services/site"
)

type DatasetConfig struct {
	// Path points at a local games.json; Url fetches a published one.
	// Url wins when both are set.
	Path string `json:"path"`
	Url  string `json:"url"`
}

type Config struct {
	Port    int           `json:"port"`
	Dataset DatasetConfig `json:"dataset"`
}

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	port := flag.Int("port", 0, "Override the configured port.")
	flag.Parse()

	ctx := serviceutil.SignalContext()
	InitTelemetry(ctx, *verbose)

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	if cfg.Port == 0 {
		cfg.Port = 8000
	}
	if *port != 0 {
		cfg.Port = *port
	}

	snap, err := loadSnapshot(ctx, cfg.Dataset)
	if err != nil {
		// refuse to serve over a partial dataset
		serviceutil.Fatal("failed to load dataset", err)
	}
	slog.Info("dataset loaded",
		"games", len(snap.AllGames),
		"current", len(snap.CurrentGames),
		"lastUpdated", snap.LastUpdated,
	)

	service, err := site.NewService(snap)
	if err != nil {
		serviceutil.Fatal("init site service", err)
	}
	mux := http.NewServeMux()
	service.RegisterRoutes(mux)

	go serviceutil.StartHttpServer(cfg.Port, mux)
	<-ctx.Done()
}

func loadSnapshot(ctx context.Context, cfg DatasetConfig) (*dataset.Snapshot, error) {
	if cfg.Url != "" {
		return dataset.Fetch(ctx, cfg.Url)
	}
	path := cfg.Path
	if path == "" {
		path = "website/data/games.json"
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return dataset.Fetch(ctx, path)
	}
	return dataset.LoadFile(path)
}
