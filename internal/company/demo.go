package company

import "fmt"

// Demo returns the fixture served when live lookups are disabled. A valid
// id replaces the fixture's registration id and links; any other non-empty
// query is appended to the name so responses can be traced back.
func Demo(query string) Record {
	rec := Record{
		Name:               String("Ukázková obchodní společnost s.r.o."),
		RegistrationID:     "12345678",
		Address:            String("Vinohradská, 1511, 230, Praha, 13000, Česká republika"),
		IncorporationDate:  String("2014-01-29"),
		Court:              String("Městského soudu v Praze"),
		FileReference:      String("C 221234"),
		RegisteredCapital:  Int64(200000),
		GoverningBodyLabel: "Jednatelé",
		GoverningBody: []Member{
			{Name: "Jan Novák", AppointedOn: String("2014-01-29")},
			{Name: "Petra Svobodová", AppointedOn: String("2016-06-01")},
		},
		ActingRule: String("Za společnost jedná každý jednatel samostatně."),
		Owners: []Owner{
			{Name: String("Jan Novák"), Contribution: Int64(100000)},
			{Name: String("Petra Svobodová"), Contribution: Int64(100000)},
		},
	}
	switch {
	case ValidRegistrationID(query):
		rec.RegistrationID = query
	case query != "":
		rec.Name = String(fmt.Sprintf("%s (%s)", *rec.Name, query))
	}
	rec.Links = LinksFor(rec.RegistrationID)
	return rec
}
