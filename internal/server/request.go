package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
)

type Request struct {
	*http.Request
	PathParams map[string]string
}

// Unmarshal wraps r together with its route variables.
func Unmarshal(r *http.Request) (*Request, error) {
	if r == nil {
		return nil, fmt.Errorf("nil request")
	}
	return &Request{Request: r, PathParams: mux.Vars(r)}, nil
}

// UnmarshalQueryParams decodes the query string into dst using its schema tags.
func (r *Request) UnmarshalQueryParams(dst interface{}, ignoreUnknown bool) error {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(ignoreUnknown)
	return dec.Decode(dst, r.URL.Query())
}
