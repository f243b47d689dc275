package backends

// IPRecord is the geolocation record returned for a single IP
// address. Field names follow the wire contract of the emulated API.
type IPRecord struct {
	CountryCode  string  `json:"country_code"`
	CountryCode3 string  `json:"country_code3"`
	CountryName  string  `json:"country_name"`
	Region       string  `json:"region"`
	Locality     string  `json:"locality"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	DMACode      int     `json:"dma_code"`
	AreaCode     int     `json:"area_code"`
	PostalCode   string  `json:"postal_code"`
}

// StreetRecord is the geolocation record returned for a single street
// address. The census data is US-only, so the country fields are
// constant.
type StreetRecord struct {
	CountryCode   string  `json:"country_code"`
	CountryCode3  string  `json:"country_code3"`
	CountryName   string  `json:"country_name"`
	Region        string  `json:"region"`
	Locality      string  `json:"locality"`
	StreetAddress string  `json:"street_address"`
	StreetNumber  string  `json:"street_number"`
	StreetName    string  `json:"street_name"`
	Confidence    float64 `json:"confidence"`
	FIPSCounty    string  `json:"fips_county"`
}

// IPLocator resolves one IP address to its geolocation record. An
// error means the address could not be resolved; batch processing
// turns it into an absent entry instead of propagating it.
type IPLocator interface {
	Lookup(ip string) (*IPRecord, error)
}

// StreetGeocoder resolves one street address against the census
// database. A nil record with a nil error means no match.
type StreetGeocoder interface {
	Geocode(address string) (*StreetRecord, error)
}
