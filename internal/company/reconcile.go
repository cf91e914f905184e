package company

// Source names the adapter a Partial came from.
type Source string

const (
	SourceRegistry   Source = "ares"
	SourceCourt      Source = "justice"
	SourceBeneficial Source = "beneficial"
)

// Partial is the subset of a Record a single source could produce.
type Partial struct {
	Source Source

	Name              *string
	RegistrationID    *string
	Address           *string
	IncorporationDate *string

	Court              *string
	FileReference      *string
	RegisteredCapital  *int64
	ActingRule         *string
	GoverningBodyLabel string
	GoverningBody      []Member
	Owners             []Owner

	BeneficialOwners []BeneficialOwner
}

// Reconcile merges the partials of the sources that succeeded into one
// Record. Sources that failed are simply absent from parts.
//
// Scalar identity fields prefer the registry, then the court register.
// Court, file reference, capital, acting rule and governing body only come
// from the court register. Owners (court register) and beneficial owners are
// kept apart. Links are always derived from id.
func Reconcile(id string, parts ...*Partial) Record {
	var registry, court, beneficial *Partial
	for _, p := range parts {
		if p == nil {
			continue
		}
		switch p.Source {
		case SourceRegistry:
			if registry == nil {
				registry = p
			}
		case SourceCourt:
			if court == nil {
				court = p
			}
		case SourceBeneficial:
			if beneficial == nil {
				beneficial = p
			}
		}
	}
	if registry == nil {
		registry = &Partial{}
	}
	if court == nil {
		court = &Partial{}
	}

	rec := Record{
		Name:               firstString(registry.Name, court.Name),
		RegistrationID:     id,
		Address:            firstString(registry.Address, court.Address),
		IncorporationDate:  firstString(registry.IncorporationDate, court.IncorporationDate),
		Court:              court.Court,
		FileReference:      court.FileReference,
		RegisteredCapital:  court.RegisteredCapital,
		Links:              LinksFor(id),
		GoverningBodyLabel: court.GoverningBodyLabel,
		GoverningBody:      NormalizeMembers(court.GoverningBody),
		ActingRule:         court.ActingRule,
		Owners:             court.Owners,
	}
	for _, candidate := range []*string{registry.RegistrationID, court.RegistrationID} {
		if candidate != nil && ValidRegistrationID(*candidate) {
			rec.RegistrationID = *candidate
			break
		}
	}
	if rec.GoverningBodyLabel == "" {
		rec.GoverningBodyLabel = DefaultGoverningBodyLabel
	}
	if rec.Owners == nil {
		rec.Owners = []Owner{}
	}
	if beneficial != nil {
		owners := make([]BeneficialOwner, 0, len(beneficial.BeneficialOwners))
		owners = append(owners, beneficial.BeneficialOwners...)
		rec.BeneficialOwners = &owners
	}
	return rec
}

// NormalizeMembers drops unnamed and repeated members, keeping first-seen
// order, and caps the result at MaxGoverningBody.
func NormalizeMembers(members []Member) []Member {
	out := make([]Member, 0, len(members))
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if m.Name == "" || seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		out = append(out, m)
		if len(out) == MaxGoverningBody {
			break
		}
	}
	return out
}

func firstString(values ...*string) *string {
	for _, v := range values {
		if v != nil && *v != "" {
			return v
		}
	}
	return nil
}
