package mock

import (
	"context"
	"errors"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/cytora/cz-company-lambda/internal/transport"
)

// Response is what the mock returns for a given URL.
type Response struct {
	Body string
	Err  error
}

type FetcherMock struct {
	Responses map[string]Response

	mu     sync.Mutex
	Called []string
	// Headers records the headers of the last call per URL.
	Headers map[string]transport.Headers
}

func (f *FetcherMock) FetchText(ctx context.Context, url string, headers transport.Headers) (string, error) {
	f.mu.Lock()
	f.Called = append(f.Called, url)
	if f.Headers == nil {
		f.Headers = map[string]transport.Headers{}
	}
	f.Headers[url] = headers
	f.mu.Unlock()
	res, ok := f.Responses[url]
	if !ok {
		return "", &transport.HTTPError{Code: 404, URL: url}
	}
	if res.Err != nil {
		return "", res.Err
	}
	return res.Body, nil
}

func (f *FetcherMock) FetchJSON(ctx context.Context, url string, headers transport.Headers) (gjson.Result, error) {
	text, err := f.FetchText(ctx, url, headers)
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.Valid(text) {
		return gjson.Result{}, transport.ErrParse
	}
	return gjson.Parse(text), nil
}

// Calls returns a copy of the recorded URLs.
func (f *FetcherMock) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Called...)
}

var errNotConfigured = errors.New("mock not configured")

// Failing returns an error for every request.
type Failing struct{}

func (Failing) FetchText(context.Context, string, transport.Headers) (string, error) {
	return "", errNotConfigured
}

func (Failing) FetchJSON(context.Context, string, transport.Headers) (gjson.Result, error) {
	return gjson.Result{}, errNotConfigured
}
