package transport

import (
	"errors"
	"fmt"
)

var (
	ErrTransport = errors.New("transport error")
	ErrParse     = errors.New("unparseable response body")
)

// HTTPError reports a response with a status outside 200-299.
type HTTPError struct {
	Code int
	URL  string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d", e.Code)
}

func (e *HTTPError) Is(target error) bool {
	return target == ErrTransport
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return 0
}
