// Package server runs the HTTP routes either behind API Gateway on Lambda or
// as a plain local HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/gorillamux"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cytora/cz-company-lambda/internal/logging"
)

const shutdownTimeout = 5 * time.Second

type RouteOption struct {
	// API names the endpoint in logs.
	API    string
	Method string
	Path   string
}

type Server struct {
	env     string
	service string
	version string

	local    bool
	port     int
	gatherer prometheus.Gatherer

	router *mux.Router
}

type Option func(s *Server)

// WithLocal serves on port with net/http instead of starting the Lambda runtime.
func WithLocal(port int) Option {
	return func(s *Server) {
		s.local = true
		s.port = port
	}
}

// WithMetrics exposes g on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

func New(env, service, version string, opts ...Option) (*Server, error) {
	if env == "" || service == "" {
		return nil, errors.New("server: env and service are required")
	}
	s := &Server{
		env:     env,
		service: service,
		version: version,
		router:  mux.NewRouter(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.local && s.port <= 0 {
		return nil, fmt.Errorf("server: invalid port %d", s.port)
	}
	if s.gatherer != nil {
		s.router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
	return s, nil
}

// MustAddRoute registers h and panics on an incomplete route.
func (s *Server) MustAddRoute(opt RouteOption, h http.HandlerFunc) {
	if opt.Path == "" || opt.Method == "" {
		panic(fmt.Sprintf("server: route %q needs a method and a path", opt.API))
	}
	s.router.HandleFunc(opt.Path, s.withAPI(opt.API, h)).Methods(opt.Method)
}

// Handler returns the routes as a plain http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) withAPI(api string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.WithData(r.Context(), logging.Data{"api": api, "env": s.env})
		start := time.Now()
		h(w, r.WithContext(ctx))
		logging.Debug(ctx, logging.Data{"path": r.URL.Path, "duration_ms": time.Since(start).Milliseconds()}, "request served")
	}
}

// Run blocks serving requests.
func (s *Server) Run() error {
	if !s.local {
		lambda.Start(gorillamux.New(s.router).ProxyWithContext)
		return nil
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logging.Info(ctx, logging.Data{"addr": srv.Addr}, "listening")
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
