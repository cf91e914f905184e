package justice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cytora/cz-company-lambda/internal/company"
	"github.com/cytora/cz-company-lambda/internal/transport"
	"github.com/cytora/cz-company-lambda/internal/transport/mock"
)

const (
	excerptURL = "https://or.example/ias/ui/rejstrik-$firma?ico=02597136"
	fullURL    = excerptURL + "&typ=plny"
)

func TestSource_Fetch(t *testing.T) {
	unavailable := &transport.HTTPError{Code: 503, URL: excerptURL}
	tests := []struct {
		name      string
		responses map[string]mock.Response
		wantCalls []string
		wantName  *string
		wantErr   bool
	}{
		{
			name:      "current excerpt",
			responses: map[string]mock.Response{excerptURL: {Body: registerPage}},
			wantCalls: []string{excerptURL},
			wantName:  company.String("ACME s.r.o."),
		},
		{
			name: "falls back to full excerpt",
			responses: map[string]mock.Response{
				excerptURL: {Err: unavailable},
				fullURL:    {Body: registerPage},
			},
			wantCalls: []string{excerptURL, fullURL},
			wantName:  company.String("ACME s.r.o."),
		},
		{
			name:      "both excerpts fail",
			responses: map[string]mock.Response{excerptURL: {Err: unavailable}},
			wantCalls: []string{excerptURL, fullURL},
			wantErr:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &mock.FetcherMock{Responses: tt.responses}
			src := New(fetcher, "https://or.example/")

			got, err := src.Fetch(context.Background(), "02597136")

			assert.Equal(t, tt.wantCalls, fetcher.Calls())
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, transport.ErrTransport))
				assert.Contains(t, err.Error(), "court register")
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, company.SourceCourt, got.Source)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestSource_Headers(t *testing.T) {
	fetcher := &mock.FetcherMock{Responses: map[string]mock.Response{excerptURL: {Body: "<p></p>"}}}
	_, err := New(fetcher, "https://or.example").Fetch(context.Background(), "02597136")
	require.NoError(t, err)

	h := fetcher.Headers[excerptURL]
	assert.Equal(t, "Mozilla/5.0", h["User-Agent"])
	assert.Contains(t, h["Accept-Language"], "cs-CZ")
}

func TestSource_Name(t *testing.T) {
	assert.Equal(t, company.SourceCourt, New(mock.Failing{}, "").Name())
}
