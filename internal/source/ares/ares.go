// Package ares maps the ARES economic subjects API onto company partials.
package ares

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/cytora/cz-company-lambda/internal/company"
	"github.com/cytora/cz-company-lambda/internal/source"
	"github.com/cytora/cz-company-lambda/internal/transport"
)

const subjectPath = "/ekonomicke-subjekty-v-be/rest/ekonomicke-subjekty/"

// Synonymous upstream keys, most preferred first.
var (
	namePaths = []string{"obchodniJmeno", "obchodniJmenoText", "obchodniJmenoZkracene"}
	datePaths = []string{"datumVzniku", "vznik"}

	streetPaths       = []string{"sidlo.uliceNazev", "sidlo.nazevUlice"}
	houseNumberPaths  = []string{"sidlo.cisloDomovni", "sidlo.cisloPopisne"}
	orientationPaths  = []string{"sidlo.cisloOrientacni"}
	orientationLetter = []string{"sidlo.cisloOrientacniPismeno"}
	municipalityPaths = []string{"sidlo.obecNazev", "sidlo.nazevObce", "sidlo.obec"}
	postalCodePaths   = []string{"sidlo.psc", "sidlo.PSC"}
	countryPaths      = []string{"sidlo.statNazev", "sidlo.stat"}
	textAddressPaths  = []string{"sidlo.textovaAdresa"}
)

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
	return company.SourceRegistry
}

func (s *Source) Fetch(ctx context.Context, ico string) (*company.Partial, error) {
	u := s.baseURL + subjectPath + url.PathEscape(ico)
	doc, err := s.fetcher.FetchJSON(ctx, u, transport.Headers{"Accept": "application/json"})
	if err != nil {
		return nil, fmt.Errorf("ares: %w", err)
	}
	return Map(doc), nil
}

// Map converts an ARES subject document into a partial record.
func Map(doc gjson.Result) *company.Partial {
	p := &company.Partial{
		Source:  company.SourceRegistry,
		Name:    company.String(source.First(doc, namePaths...)),
		Address: company.String(address(doc)),
	}
	if ico := source.First(doc, "ico"); company.ValidRegistrationID(ico) {
		p.RegistrationID = &ico
	}
	if raw := source.First(doc, datePaths...); raw != "" {
		p.IncorporationDate = company.NormalizeDate(raw)
	}
	return p
}

func address(doc gjson.Result) string {
	orientation := source.First(doc, orientationPaths...)
	if orientation != "" {
		orientation += source.First(doc, orientationLetter...)
	}
	parts := []string{
		source.First(doc, streetPaths...),
		source.First(doc, houseNumberPaths...),
		orientation,
		source.First(doc, municipalityPaths...),
		source.First(doc, postalCodePaths...),
		source.First(doc, countryPaths...),
	}
	var nonEmpty []string
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	if len(nonEmpty) == 0 {
		return source.First(doc, textAddressPaths...)
	}
	return strings.Join(nonEmpty, ", ")
}
