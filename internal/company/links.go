package company

import "net/url"

const (
	registerBaseURL       = "https://or.justice.cz/ias/ui/"
	insolvencyRegistryURL = "https://isir.justice.cz/isir/ueu/vysledek_lustrace.do"
)

// LinksFor builds the fixed set of public register links for id.
func LinksFor(id string) Links {
	q := url.QueryEscape(id)
	excerpt := registerBaseURL + "rejstrik-$firma?ico=" + q
	return Links{
		RegistryExcerpt:    excerpt,
		FullExcerpt:        excerpt + "&typ=plny",
		FilingCollection:   registerBaseURL + "sbirka-listin?ico=" + q,
		InsolvencyRegistry: insolvencyRegistryURL,
	}
}
