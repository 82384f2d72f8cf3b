package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/goaltrack-dev/goaltrack/internal/config"
	"github.com/goaltrack-dev/goaltrack/internal/logger"
	"github.com/goaltrack-dev/goaltrack/internal/router"
	"github.com/goaltrack-dev/goaltrack/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.New(cfg)
	if err != nil {
		logger.Log.Error("failed to initialize dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Cleanup()

	r := router.New(deps)

	httpPort := os.Getenv("PORT")
	if httpPort == "" {
		httpPort = "8080"
	}

	logger.Log.Info("server started", "port", httpPort, "storage", cfg.Public.Storage)
	if err := http.ListenAndServe(":"+httpPort, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
