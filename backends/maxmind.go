package backends

import (
	"net"

	maxminddb "github.com/oschwald/geoip2-golang"

	"github.com/juju/errors"
)

// MaxmindLocator resolves IPs against a GeoLite2/GeoIP2 city database
// file. The reader is safe for concurrent use, one instance is shared
// by all requests.
type MaxmindLocator struct {
	db *maxminddb.Reader
}

func (ml *MaxmindLocator) Lookup(ip string) (*IPRecord, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return nil, errors.Errorf("Cannot parse %s as IP", ip)
	}

	city, err := ml.db.City(parsed)
	if err != nil {
		return nil, errors.Annotatef(err, "Cannot resolve %s", ip)
	}

	if city.Country.IsoCode == "" {
		return nil, errors.Errorf("No record for %s", ip)
	}

	record := &IPRecord{
		CountryCode: city.Country.IsoCode,
		CountryName: city.Country.Names["en"],
		Locality:    city.City.Names["en"],
		Latitude:    city.Location.Latitude,
		Longitude:   city.Location.Longitude,
		DMACode:     int(city.Location.MetroCode),
		PostalCode:  city.Postal.Code,
	}

	if len(city.Subdivisions) > 0 {
		record.Region = city.Subdivisions[0].IsoCode
	}

	code3, name := expandCountry(record.CountryCode)
	record.CountryCode3 = code3
	if record.CountryName == "" {
		record.CountryName = name
	}

	return record, nil
}

func (ml *MaxmindLocator) Close() error {
	return ml.db.Close()
}

// NewMaxmindLocator opens the database file at the given path.
func NewMaxmindLocator(path string) (*MaxmindLocator, error) {
	db, err := maxminddb.Open(path)
	if err != nil {
		return nil, errors.Annotatef(err, "Cannot open maxmind database %s", path)
	}

	return &MaxmindLocator{db: db}, nil
}
