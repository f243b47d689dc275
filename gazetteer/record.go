package gazetteer

import (
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// Kind classifies a gazetteer entry.
type Kind string

const (
	KindCountry Kind = "COUNTRY"
	KindRegion  Kind = "REGION"
	KindCity    Kind = "CITY"
)

var validKinds = map[string]Kind{
	"country": KindCountry,
	"region":  KindRegion,
	"city":    KindCity,
}

// Record presents an extracted data from a gazetteer CSV row.
type Record struct {
	Name string
	Kind Kind
	Code string
	Lat  float64
	Lon  float64
}

// NewRecord creates new gazetteer record.
func NewRecord(name, kind, code, lat, lon string) (*Record, error) {
	name = normalizePhrase(name)
	if name == "" {
		return nil, errors.New("Name is empty")
	}

	parsedKind, ok := validKinds[strings.ToLower(kind)]
	if !ok {
		return nil, errors.Errorf("Unknown kind %s", kind)
	}

	parsedLat, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil, errors.Annotate(err, "Latitude is not correct")
	}

	parsedLon, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return nil, errors.Annotate(err, "Longitude is not correct")
	}

	return &Record{
		Name: name,
		Kind: parsedKind,
		Code: strings.ToUpper(code),
		Lat:  parsedLat,
		Lon:  parsedLon,
	}, nil
}

func normalizePhrase(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
}
