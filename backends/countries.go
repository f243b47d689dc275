package backends

import "github.com/pariz/gountries"

var countryQuery = gountries.New()

// expandCountry resolves an ISO 3166 alpha-2 code to its alpha-3 code
// and common name. Unknown codes expand to empty strings.
func expandCountry(alpha2 string) (string, string) {
	country, err := countryQuery.FindCountryByAlpha(alpha2)
	if err != nil {
		return "", ""
	}

	return country.Alpha3, country.Name.Common
}
