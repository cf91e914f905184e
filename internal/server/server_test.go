package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoParams struct {
	Q string `schema:"q"`
}

func echo(r *http.Request) (int, interface{}, error) {
	req, err := Unmarshal(r)
	if err != nil {
		return ErrorToResponse(err, http.StatusBadRequest)
	}
	params := &echoParams{}
	if err := req.UnmarshalQueryParams(params, true); err != nil {
		return ErrorToResponse(err, http.StatusBadRequest)
	}
	return http.StatusOK, map[string]string{"q": params.Q, "id": req.PathParams["id"]}, nil
}

func TestServer_Routes(t *testing.T) {
	srv, err := New("test", "cz-company-lambda", "v0")
	require.NoError(t, err)
	srv.MustAddRoute(RouteOption{API: "Echo", Method: http.MethodGet, Path: "/v1/echo/{id}"}, ToHTTPHandlerFunc(echo))
	srv.MustAddRoute(RouteOption{API: "Fail", Method: http.MethodGet, Path: "/v1/fail"}, ToHTTPHandlerFunc(
		func(r *http.Request) (int, interface{}, error) {
			return 0, nil, errors.New("boom")
		}))

	tests := []struct {
		name     string
		method   string
		target   string
		wantCode int
		wantBody string
	}{
		{name: "query and path", method: http.MethodGet, target: "/v1/echo/7?q=abc&other=1", wantCode: http.StatusOK, wantBody: `{"id":"7","q":"abc"}`},
		{name: "handler error", method: http.MethodGet, target: "/v1/fail", wantCode: http.StatusInternalServerError, wantBody: `{"error":"Internal Server Error"}`},
		{name: "wrong method", method: http.MethodPost, target: "/v1/echo/7", wantCode: http.StatusMethodNotAllowed},
		{name: "unknown path", method: http.MethodGet, target: "/v2/echo", wantCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.wantCode, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestErrorToResponse(t *testing.T) {
	code, payload, err := ErrorToResponse(errors.New("invalid query"), http.StatusBadRequest)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, code)
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"invalid query"}`, string(body))
}

func TestServer_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	srv, err := New("test", "cz-company-lambda", "v0", WithMetrics(reg))
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "test_total 1"))
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		service string
		opts    []Option
		wantErr bool
	}{
		{name: "lambda", env: "test", service: "svc"},
		{name: "local", env: "test", service: "svc", opts: []Option{WithLocal(3000)}},
		{name: "missing env", service: "svc", wantErr: true},
		{name: "bad port", env: "test", service: "svc", opts: []Option{WithLocal(0)}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.env, tt.service, "v0", tt.opts...)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestMustAddRoute_Panics(t *testing.T) {
	srv, err := New("test", "svc", "v0")
	require.NoError(t, err)
	assert.Panics(t, func() {
		srv.MustAddRoute(RouteOption{API: "Broken"}, ToHTTPHandlerFunc(echo))
	})
}
