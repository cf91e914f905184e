// Package justice extracts company details from the public commercial
// register pages at or.justice.cz.
package justice

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/cytora/cz-company-lambda/internal/company"
	"github.com/cytora/cz-company-lambda/internal/source"
	"github.com/cytora/cz-company-lambda/internal/transport"
)

const excerptPath = "/ias/ui/rejstrik-$firma?ico="

var headers = transport.Headers{
	"User-Agent":      "Mozilla/5.0",
	"Accept-Language": "cs-CZ,cs;q=0.9,en;q=0.8",
}

type Source struct {
	fetcher transport.Fetcher
	baseURL string
}

func New(fetcher transport.Fetcher, baseURL string) *Source {
	return &Source{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *Source) Name() company.Source {
	return company.SourceCourt
}

// Fetch loads the current excerpt, falling back once to the full excerpt.
func (s *Source) Fetch(ctx context.Context, ico string) (*company.Partial, error) {
	primary := s.baseURL + excerptPath + url.QueryEscape(ico)
	urls := []string{primary, primary + "&typ=plny"}
	var page string
	err := source.FirstSuccess(ctx, len(urls), func(ctx context.Context, variant int) error {
		body, err := s.fetcher.FetchText(ctx, urls[variant], headers)
		if err != nil {
			return err
		}
		page = body
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("court register: %w", err)
	}
	text, err := Flatten(page)
	if err != nil {
		return nil, fmt.Errorf("court register: %w: %v", transport.ErrParse, err)
	}
	return Extract(text), nil
}
