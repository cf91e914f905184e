// Package company holds the normalized company record, the partial records
// produced by the sources and the rules that reconcile them.
package company

import (
	"math"
	"regexp"
)

// DefaultGoverningBodyLabel is used when a source cannot name the body.
const DefaultGoverningBodyLabel = "Statutární orgán"

// MaxGoverningBody caps the number of statutory representatives.
const MaxGoverningBody = 8

var registrationIDPattern = regexp.MustCompile(`^\d{8}$`)

// ValidRegistrationID reports whether id is an 8 digit IČO.
func ValidRegistrationID(id string) bool {
	return registrationIDPattern.MatchString(id)
}

type Links struct {
	RegistryExcerpt    string `json:"registryExcerpt,omitempty"`
	FullExcerpt        string `json:"fullExcerpt,omitempty"`
	FilingCollection   string `json:"filingCollection,omitempty"`
	InsolvencyRegistry string `json:"insolvencyRegistry,omitempty"`
}

type Member struct {
	Name        string  `json:"name"`
	AppointedOn *string `json:"appointedOn"`
}

type Owner struct {
	Name         *string `json:"name"`
	Contribution *int64  `json:"contribution"`
}

// Percentage returns the owner's share of capital rounded to two decimals.
// ok is false when either value is unknown or capital is zero.
func (o Owner) Percentage(capital *int64) (pct float64, ok bool) {
	if o.Contribution == nil || capital == nil || *capital == 0 {
		return 0, false
	}
	return math.Round(float64(*o.Contribution)/float64(*capital)*10000) / 100, true
}

type BeneficialOwner struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	Note string `json:"note"`
}

// Record is the normalized output of a lookup.
type Record struct {
	Name               *string            `json:"name"`
	RegistrationID     string             `json:"registrationId"`
	Address            *string            `json:"address"`
	IncorporationDate  *string            `json:"incorporationDate"`
	Court              *string            `json:"court"`
	FileReference      *string            `json:"fileReference"`
	RegisteredCapital  *int64             `json:"registeredCapital"`
	Links              Links              `json:"links"`
	GoverningBodyLabel string             `json:"governingBodyLabel"`
	GoverningBody      []Member           `json:"governingBody"`
	ActingRule         *string            `json:"actingRule"`
	Owners             []Owner            `json:"owners"`
	BeneficialOwners   *[]BeneficialOwner `json:"beneficialOwners,omitempty"`
}

// String returns a pointer to s, or nil when s is empty.
func String(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Int64 returns a pointer to v.
func Int64(v int64) *int64 {
	return &v
}
