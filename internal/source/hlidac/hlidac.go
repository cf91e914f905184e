// Package hlidac reads disclosed beneficial owners from the Hlídač státu
// dataset API.
package hlidac

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/tidwall/gjson"

	"github.com/cytora/cz-company-lambda/internal/company"
	"github.com/cytora/cz-company-lambda/internal/source"
	"github.com/cytora/cz-company-lambda/internal/transport"
)

const (
	searchPath  = "/api/v2/datasety/%s/hledat"
	defaultKind = "skutečný majitel"
)

// The search parameter was renamed upstream; both names are still seen.
var queryParams = []string{"dotaz", "q"}

var number = regexp.MustCompile(`\d[\d\s]*(?:[.,]\d+)?`)

// Synonymous upstream keys, most preferred first.
var (
	resultsPaths      = []string{"results", "Results", "records", "items"}
	namePaths         = []string{"jmeno", "nazev", "name", "osoba.jmeno", "osoba.nazev", "fullName"}
	givenNamePaths    = []string{"jmeno", "osoba.jmeno"}
	familyNamePaths   = []string{"prijmeni", "osoba.prijmeni"}
	contributionPaths = []string{"podil", "vklad", "podilNaHlasovani", "share", "contribution"}
	amountPaths       = map[string]bool{"vklad": true, "contribution": true}
	kindPaths         = []string{"typ", "druh", "kind", "postaveni"}
	notePaths         = []string{"poznamka", "note", "popis"}
)

type Source struct {
	fetcher transport.Fetcher
	baseURL string
	dataset string
	token   string
}

func New(fetcher transport.Fetcher, baseURL, dataset, token string) *Source {
	return &Source{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
		dataset: dataset,
		token:   token,
	}
}

func (s *Source) Name() company.Source {
	return company.SourceBeneficial
}

// Fetch searches the dataset for records of ico. A dataset without records
// for the company yields an empty owner list.
func (s *Source) Fetch(ctx context.Context, ico string) (*company.Partial, error) {
	if s.token == "" {
		return nil, fmt.Errorf("beneficial owners: %w: missing API token", source.ErrConfiguration)
	}
	headers := transport.Headers{
		"Authorization": "Token " + s.token,
		"Accept":        "application/json",
	}
	query := "ico.keyword:" + ico
	var doc gjson.Result
	err := source.FirstSuccess(ctx, len(queryParams), func(ctx context.Context, variant int) error {
		res, err := s.fetcher.FetchJSON(ctx, s.searchURL(queryParams[variant], query), headers)
		if err != nil {
			return err
		}
		doc = res
		return nil
	})
	if err != nil {
		if transport.StatusCode(err) == http.StatusNotFound {
			return &company.Partial{Source: company.SourceBeneficial, BeneficialOwners: []company.BeneficialOwner{}}, nil
		}
		return nil, fmt.Errorf("beneficial owners: %w", err)
	}
	return &company.Partial{Source: company.SourceBeneficial, BeneficialOwners: Map(doc)}, nil
}

func (s *Source) searchURL(param, query string) string {
	return s.baseURL + fmt.Sprintf(searchPath, url.PathEscape(s.dataset)) + "?" + url.Values{param: {query}}.Encode()
}

// Map converts a search response into owners, keeping only named records and
// the first record of every name.
func Map(doc gjson.Result) []company.BeneficialOwner {
	out := []company.BeneficialOwner{}
	seen := map[string]bool{}
	for _, rec := range records(doc) {
		name := ownerName(rec)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		owner := company.BeneficialOwner{
			Kind: source.First(rec, kindPaths...),
			Name: name,
			Note: source.First(rec, notePaths...),
		}
		if owner.Kind == "" {
			owner.Kind = defaultKind
		}
		if owner.Note == "" {
			owner.Note = shareNote(rec)
		}
		out = append(out, owner)
	}
	return out
}

func records(doc gjson.Result) []gjson.Result {
	if doc.IsArray() {
		return doc.Array()
	}
	for _, path := range resultsPaths {
		if v := doc.Get(path); v.IsArray() {
			return v.Array()
		}
	}
	return nil
}

func ownerName(rec gjson.Result) string {
	if family := source.First(rec, familyNamePaths...); family != "" {
		return strings.TrimSpace(source.First(rec, givenNamePaths...) + " " + family)
	}
	return strings.Join(strings.Fields(source.First(rec, namePaths...)), " ")
}

// shareNote describes the first share or contribution field of rec. Numbers
// are written the same way whether upstream sent them as JSON numbers or as
// text such as "100 %".
func shareNote(rec gjson.Result) string {
	for _, path := range contributionPaths {
		v := rec.Get(path)
		raw := strings.TrimSpace(v.String())
		if raw == "" {
			continue
		}
		n, ok := formatNumber(v)
		switch {
		case !ok:
			return "podíl " + raw
		case amountPaths[path]:
			return "vklad " + n + " Kč"
		default:
			return "podíl " + n + " %"
		}
	}
	return ""
}

// formatNumber renders v with a decimal comma and no grouping.
func formatNumber(v gjson.Result) (string, bool) {
	f := v.Num
	if v.Type != gjson.Number {
		m := number.FindString(v.String())
		if m == "" {
			return "", false
		}
		m = strings.Replace(strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, m), ",", ".", 1)
		var err error
		if f, err = strconv.ParseFloat(m, 64); err != nil {
			return "", false
		}
	}
	return strings.Replace(strconv.FormatFloat(f, 'f', -1, 64), ".", ",", 1), true
}
