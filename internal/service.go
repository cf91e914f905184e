package internal

// constants exported by this package
const (
	ServiceName = "cz-company-lambda"

	// endpoints
	CompanyLookupEndpoint = "CompanyLookup"

	CompanyLookupPath = "/v1/company"
)
