package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cytora/cz-company-lambda/internal/app"
	"github.com/cytora/cz-company-lambda/internal/config"
	"github.com/cytora/cz-company-lambda/internal/logging"
)

var (
	configs *config.Config
)

func init() {
	var err error
	configs, err = config.Load()
	if err != nil {
		logging.FatalNoCtx(err, nil, "failed to load configuration")
	}
	logging.Setup(configs.Service, configs.Version, configs.LogLevel)
}

func main() {
	srv, err := app.NewServer(configs, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	if err != nil {
		logging.FatalNoCtx(err, nil, "failed to create server")
	}
	if err := srv.Run(); err != nil {
		logging.FatalNoCtx(err, nil, "server stopped")
	}
}
