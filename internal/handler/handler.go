package handler

import (
	"github.com/go-playground/validator"

	"github.com/cytora/cz-company-lambda/internal/company"
	"github.com/cytora/cz-company-lambda/internal/metrics"
	"github.com/cytora/cz-company-lambda/internal/source"
)

type Handler struct {
	validator *validator.Validate
	sources   []source.Source
	mandatory map[company.Source]bool
	demoMode  bool
	metrics   *metrics.Metrics
}

func New(sources []source.Source, opts ...OptionFunc) *Handler {
	opt := defaultHandlerOptions()
	for _, f := range opts {
		f(opt)
	}
	mandatory := make(map[company.Source]bool, len(opt.mandatory))
	for _, s := range opt.mandatory {
		mandatory[s] = true
	}
	return &Handler{
		validator: newValidator(),
		sources:   sources,
		mandatory: mandatory,
		demoMode:  opt.demoMode,
		metrics:   opt.metrics,
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	// registration of a static tag name cannot fail
	_ = v.RegisterValidation("ico", func(fl validator.FieldLevel) bool {
		return company.ValidRegistrationID(fl.Field().String())
	})
	return v
}
