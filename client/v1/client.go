// Package v1 is a Go client for the company lookup endpoint.
package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cytora/cz-company-lambda/internal"
	"github.com/cytora/cz-company-lambda/internal/company"
	"github.com/cytora/cz-company-lambda/internal/server"
)

var ErrClient = errors.New("company client error")

// APIError is returned for any non-200 response.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", internal.ServiceName, e.Code, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrClient
}

type CompanyService interface {
	Lookup(ctx context.Context, ico string) (*company.Record, error)
}

type Client struct {
	baseURL string
	http    *http.Client
}

type HTTPClientFunc func(c *Client)

func WithHTTPClient(hc *http.Client) HTTPClientFunc {
	return func(c *Client) {
		c.http = hc
	}
}

func New(baseURL string, opts ...HTTPClientFunc) (CompanyService, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid base url: %v", ErrClient, err)
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (s *Client) Lookup(ctx context.Context, ico string) (*company.Record, error) {
	u := s.baseURL + internal.CompanyLookupPath + "?" + url.Values{"q": {ico}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClient, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClient, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClient, err)
	}
	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Code: resp.StatusCode}
		e := server.ErrorResponse{}
		if json.Unmarshal(body, &e) == nil {
			apiErr.Message = e.Error
		}
		return nil, apiErr
	}
	rec := &company.Record{}
	if err := json.Unmarshal(body, rec); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrClient, err)
	}
	return rec, nil
}
