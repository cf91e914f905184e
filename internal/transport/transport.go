package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/net/html/charset"
)

// Headers are sent verbatim with a request.
type Headers map[string]string

// Fetcher issues outbound GET requests.
type Fetcher interface {
	FetchText(ctx context.Context, url string, headers Headers) (string, error)
	FetchJSON(ctx context.Context, url string, headers Headers) (gjson.Result, error)
}

type Client struct {
	http *http.Client
}

// New returns a Client. A zero timeout leaves requests unbounded.
func New(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

func (c *Client) FetchText(ctx context.Context, url string, headers Headers) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &HTTPError{Code: resp.StatusCode, URL: url}
	}
	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		body = resp.Body
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return string(data), nil
}

func (c *Client) FetchJSON(ctx context.Context, url string, headers Headers) (gjson.Result, error) {
	text, err := c.FetchText(ctx, url, headers)
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.Valid(text) {
		return gjson.Result{}, ErrParse
	}
	return gjson.Parse(text), nil
}
