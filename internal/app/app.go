// Package app wires configuration, sources and routes into a server.
package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cytora/cz-company-lambda/internal"
	"github.com/cytora/cz-company-lambda/internal/config"
	"github.com/cytora/cz-company-lambda/internal/handler"
	"github.com/cytora/cz-company-lambda/internal/metrics"
	"github.com/cytora/cz-company-lambda/internal/server"
	"github.com/cytora/cz-company-lambda/internal/source"
	"github.com/cytora/cz-company-lambda/internal/source/ares"
	"github.com/cytora/cz-company-lambda/internal/source/hlidac"
	"github.com/cytora/cz-company-lambda/internal/source/justice"
	"github.com/cytora/cz-company-lambda/internal/transport"
)

// Sources returns the enabled sources in SOURCES order.
func Sources(cfg *config.Config, fetcher transport.Fetcher) []source.Source {
	var out []source.Source
	for _, name := range cfg.EnabledSources() {
		switch name {
		case config.SourceAres:
			out = append(out, ares.New(fetcher, cfg.AresBaseURL))
		case config.SourceJustice:
			out = append(out, justice.New(fetcher, cfg.JusticeBaseURL))
		case config.SourceBeneficial:
			out = append(out, hlidac.New(fetcher, cfg.HlidacBaseURL, cfg.HlidacDataset, cfg.HlidacToken))
		}
	}
	return out
}

// NewServer builds the server with the lookup route. Metrics are registered
// with reg and, in local mode, served from gatherer.
func NewServer(cfg *config.Config, reg prometheus.Registerer, gatherer prometheus.Gatherer) (*server.Server, error) {
	var opts []server.Option
	if cfg.Local {
		opts = append(opts, server.WithLocal(cfg.Port), server.WithMetrics(gatherer))
	}
	srv, err := server.New(cfg.Env, cfg.Service, cfg.Version, opts...)
	if err != nil {
		return nil, err
	}
	h := handler.New(
		Sources(cfg, transport.New(cfg.HTTPTimeout)),
		handler.WithDemoMode(cfg.DemoMode),
		handler.WithMetrics(metrics.New(reg)),
	)
	srv.MustAddRoute(server.RouteOption{
		API:    internal.CompanyLookupEndpoint,
		Method: http.MethodGet,
		Path:   internal.CompanyLookupPath,
	}, server.ToHTTPHandlerFunc(h.Lookup))
	return srv, nil
}
