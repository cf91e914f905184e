package mock

import (
	"context"
	"errors"

	"github.com/cytora/cz-company-lambda/internal/company"
)

type SourceMock struct {
	Source  company.Source
	Results *company.Partial
	Err     error

	IsCalled      bool
	CalledWithICO string
}

func (s *SourceMock) Name() company.Source {
	return s.Source
}

func (s *SourceMock) Fetch(ctx context.Context, ico string) (*company.Partial, error) {
	s.IsCalled = true
	s.CalledWithICO = ico
	if s.Results == nil && s.Err == nil {
		return nil, errors.New("mock not configured")
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.Results.Source = s.Source
	return s.Results, nil
}
