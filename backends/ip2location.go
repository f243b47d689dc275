package backends

import (
	"net"
	"strconv"
	"strings"
	"sync"

	ip2location "github.com/ip2location/ip2location-go"

	"github.com/juju/errors"
)

// IP2LocationLocator resolves IPs against an IP2Location BIN
// database. The underlying package keeps a single global handle and
// is not safe for concurrent reads, hence the mutex.
type IP2LocationLocator struct {
	dbLock *sync.Mutex
}

func (i2l *IP2LocationLocator) Lookup(ip string) (*IPRecord, error) {
	if net.ParseIP(ip) == nil {
		return nil, errors.Errorf("Cannot parse %s as IP", ip)
	}

	i2l.dbLock.Lock()
	result := ip2location.Get_all(ip)
	i2l.dbLock.Unlock()

	country := cleanIP2LocationField(result.Country_short)
	if country == "" {
		return nil, errors.Errorf("No record for %s", ip)
	}

	record := &IPRecord{
		CountryCode: country,
		CountryName: cleanIP2LocationField(result.Country_long),
		Region:      cleanIP2LocationField(result.Region),
		Locality:    cleanIP2LocationField(result.City),
		Latitude:    float64(result.Latitude),
		Longitude:   float64(result.Longitude),
		PostalCode:  cleanIP2LocationField(result.Zipcode),
	}

	if code, err := strconv.Atoi(cleanIP2LocationField(result.Areacode)); err == nil {
		record.AreaCode = code
	}

	code3, name := expandCountry(record.CountryCode)
	record.CountryCode3 = code3
	if record.CountryName == "" {
		record.CountryName = name
	}

	return record, nil
}

func (i2l *IP2LocationLocator) Close() error {
	ip2location.Close()

	return nil
}

// cleanIP2LocationField strips the database's in-band sentinels so
// that degenerate values come out as empty strings instead of error
// text.
func cleanIP2LocationField(value string) string {
	switch {
	case value == "-":
		return ""
	case strings.Contains(value, "This parameter is unavailable"):
		return ""
	case strings.Contains(value, "Invalid database file"):
		return ""
	case strings.Contains(value, "Invalid IP address"):
		return ""
	}

	return value
}

// NewIP2LocationLocator opens the database file at the given path.
func NewIP2LocationLocator(path string) *IP2LocationLocator {
	ip2location.Open(path)

	return &IP2LocationLocator{dbLock: &sync.Mutex{}}
}
