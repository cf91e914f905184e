package source

import (
	"context"

	"github.com/cytora/cz-company-lambda/internal/company"
)

// Source fetches the part of a company record one upstream can provide.
type Source interface {
	Name() company.Source
	Fetch(ctx context.Context, ico string) (*company.Partial, error)
}
