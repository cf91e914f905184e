package handler

import (
	"github.com/cytora/cz-company-lambda/internal/company"
	"github.com/cytora/cz-company-lambda/internal/metrics"
)

type OptionFunc func(opt *Options)

type Options struct {
	demoMode  bool
	metrics   *metrics.Metrics
	mandatory []company.Source
}

// WithDemoMode serves the demo record for every query.
func WithDemoMode(enabled bool) OptionFunc {
	return func(opt *Options) {
		opt.demoMode = enabled
	}
}

func WithMetrics(m *metrics.Metrics) OptionFunc {
	return func(opt *Options) {
		opt.metrics = m
	}
}

// WithMandatory replaces the sources whose joint failure fails a lookup.
func WithMandatory(sources ...company.Source) OptionFunc {
	return func(opt *Options) {
		opt.mandatory = sources
	}
}

func defaultHandlerOptions() *Options {
	return &Options{
		mandatory: []company.Source{company.SourceRegistry, company.SourceCourt},
	}
}
