package api

import (
	"encoding/json"
	"strings"

	"github.com/geodict/geodict/placemaker"
)

var listStripper = strings.NewReplacer(`"`, "", "[", "", "]", "")

// IPsFromString splits a comma separated list of addresses. Brackets
// and quotes are stripped first, so both a bare list and a JSON-ish
// array of strings come out the same way without a real JSON parse.
func IPsFromString(raw string) []string {
	stripped := listStripper.Replace(raw)
	if stripped == "" {
		return nil
	}

	return strings.Split(stripped, ",")
}

// AddressesFromString parses a street address batch. A leading bracket
// means the input is a real JSON array of strings, anything else is
// taken as one single address.
func AddressesFromString(raw string) ([]string, *placemaker.APIError) {
	if raw == "" {
		return nil, placemaker.NewAPIError("Empy string passed in to street2location")
	}

	if raw[0] == '[' {
		var parsed []string

		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			return nil, placemaker.NewAPIError(
				"Cannot parse the street addresses as a JSON array: " + err.Error())
		}

		return parsed, nil
	}

	return []string{raw}, nil
}
