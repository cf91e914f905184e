package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cytora/cz-company-lambda/internal/logging"
)

// HandlerFunc returns the status code and payload of a response. A non-nil
// error is reported as an internal server error.
type HandlerFunc func(r *http.Request) (int, interface{}, error)

// ErrorResponse is the body of every failed response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorToResponse turns err into a JSON error payload with the given status.
func ErrorToResponse(err error, code int) (int, interface{}, error) {
	return code, &ErrorResponse{Error: err.Error()}, nil
}

// ToHTTPHandlerFunc adapts h to net/http, encoding the payload as JSON.
func ToHTTPHandlerFunc(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, payload, err := h(r)
		if err != nil {
			logging.Error(r.Context(), err, nil, "unhandled handler error")
			code, payload = http.StatusInternalServerError, &ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}
		}
		writeJSON(r.Context(), w, code, payload)
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		logging.Error(ctx, err, nil, "failed to encode response")
		code = http.StatusInternalServerError
		body, _ = json.Marshal(&ErrorResponse{Error: http.StatusText(code)})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		logging.Warn(ctx, err, nil, "failed to write response")
	}
}
