package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cytora/cz-company-lambda/internal/company"
	"github.com/cytora/cz-company-lambda/internal/logging"
	"github.com/cytora/cz-company-lambda/internal/server"
)

type lookupQueryParams struct {
	Q string `schema:"q" validate:"ico"`
}

type fetchResult struct {
	source  company.Source
	partial *company.Partial
	err     error
}

// Lookup serves GET ?q=<IČO>. An empty query, or any query in demo mode, is
// answered with the demo record without contacting upstreams.
func (h *Handler) Lookup(r *http.Request) (int, interface{}, error) {
	ctx := logging.WithData(r.Context(), logging.Data{"request_id": uuid.NewString()})
	code, payload := h.lookup(ctx, r)
	h.metrics.IncrementLookup(code)
	return code, payload, nil
}

func (h *Handler) lookup(ctx context.Context, r *http.Request) (int, interface{}) {
	req, err := server.Unmarshal(r)
	if err != nil {
		logging.Error(ctx, err, nil, "invalid request")
		return errorResponse(ErrInvalidRequest, http.StatusBadRequest)
	}
	params := &lookupQueryParams{}
	if err := req.UnmarshalQueryParams(params, true); err != nil {
		logging.Error(ctx, err, nil, "invalid query params")
		return errorResponse(ErrInvalidQueryParams, http.StatusBadRequest)
	}
	params.Q = strings.TrimSpace(params.Q)
	if params.Q == "" || h.demoMode {
		logging.Info(ctx, logging.Data{"q": params.Q, "demo_mode": h.demoMode}, "serving demo record")
		return http.StatusOK, company.Demo(params.Q)
	}
	if err := h.validator.Struct(params); err != nil {
		logging.Info(ctx, logging.Data{"q": params.Q}, "rejected query")
		return errorResponse(fmt.Errorf("%w: q must be an 8-digit IČO", ErrInvalidQueryParams), http.StatusBadRequest)
	}

	ctx = logging.WithData(ctx, logging.Data{"ico": params.Q})
	results := h.fetchAll(ctx, params.Q)

	var (
		partials []*company.Partial
		failures []string
		required int
		failed   int
	)
	for _, res := range results {
		mandatory := h.mandatory[res.source]
		if mandatory {
			required++
		}
		if res.err != nil {
			logging.Warn(ctx, res.err, logging.Data{"source": string(res.source)}, "source failed")
			if mandatory {
				failures = append(failures, res.err.Error())
				failed++
			}
			continue
		}
		partials = append(partials, res.partial)
	}
	if required > 0 && failed == required {
		err := fmt.Errorf("%w: %s", ErrUpstream, strings.Join(failures, "; "))
		logging.Error(ctx, err, nil, "all mandatory sources failed")
		return errorResponse(err, http.StatusBadGateway)
	}
	return http.StatusOK, company.Reconcile(params.Q, partials...)
}

// fetchAll queries every source concurrently and waits for all of them.
// A failing source never cancels the others.
func (h *Handler) fetchAll(ctx context.Context, ico string) []fetchResult {
	results := make([]fetchResult, len(h.sources))
	var g errgroup.Group
	for i, src := range h.sources {
		i, src := i, src
		g.Go(func() error {
			start := time.Now()
			p, err := src.Fetch(ctx, ico)
			h.metrics.ObserveSource(string(src.Name()), time.Since(start), err)
			results[i] = fetchResult{source: src.Name(), partial: p, err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func errorResponse(err error, code int) (int, interface{}) {
	code, payload, _ := server.ErrorToResponse(err, code)
	return code, payload
}
