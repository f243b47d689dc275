package backends

import (
	"database/sql"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	"github.com/xrash/smetrics"

	"github.com/juju/errors"
)

// street_ranges rows come from the census TIGER import, one row per
// address range on one side of a street.
const streetQuery = `
	SELECT street, city, state, fips_county
	FROM street_ranges
	WHERE from_number <= $1
	  AND to_number >= $1
	  AND street ILIKE $2 || '%'`

const (
	streetMatchThreshold = 0.8

	streetCountryCode  = "US"
	streetCountryCode3 = "USA"
	streetCountryName  = "United States"
)

// PostgresGeocoder matches street addresses against census address
// ranges stored in Postgres. Results, including misses, are cached
// per input string.
type PostgresGeocoder struct {
	db    *sql.DB
	cache *lru.Cache
}

func (pg *PostgresGeocoder) Geocode(address string) (*StreetRecord, error) {
	if cached, ok := pg.cache.Get(address); ok {
		record, _ := cached.(*StreetRecord)

		return record, nil
	}

	record, err := pg.geocode(address)
	if err != nil {
		// Database failures are not cached, they may be transient.
		return nil, err
	}

	pg.cache.Add(address, record)

	return record, nil
}

func (pg *PostgresGeocoder) geocode(address string) (*StreetRecord, error) {
	parsed := parseStreetAddress(address)
	if parsed == nil {
		return nil, nil
	}

	number, err := strconv.Atoi(parsed.Number)
	if err != nil {
		return nil, nil
	}

	firstWord := strings.Fields(parsed.Street)[0]

	rows, err := pg.db.Query(streetQuery, number, firstWord)
	if err != nil {
		return nil, errors.Annotatef(err, "Cannot query street database for %s", address)
	}
	defer rows.Close() // nolint

	var (
		bestScore  float64
		bestStreet string
		bestCity   string
		bestState  string
		bestFIPS   string
	)

	for rows.Next() {
		var street, city, state, fips string

		if err := rows.Scan(&street, &city, &state, &fips); err != nil {
			return nil, errors.Annotate(err, "Cannot scan street row")
		}

		if parsed.City != "" && !strings.EqualFold(city, parsed.City) {
			continue
		}
		if parsed.State != "" && !strings.EqualFold(state, parsed.State) {
			continue
		}

		score := smetrics.JaroWinkler(
			strings.ToLower(parsed.Street), strings.ToLower(street), 0.7, 4)
		if score > bestScore {
			bestScore = score
			bestStreet = street
			bestCity = city
			bestState = state
			bestFIPS = fips
		}
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Annotate(err, "Error during street rows iteration")
	}

	if bestScore < streetMatchThreshold {
		log.WithFields(log.Fields{
			"address": address,
			"score":   bestScore,
		}).Debug("No street match")

		return nil, nil
	}

	return &StreetRecord{
		CountryCode:   streetCountryCode,
		CountryCode3:  streetCountryCode3,
		CountryName:   streetCountryName,
		Region:        bestState,
		Locality:      bestCity,
		StreetAddress: parsed.Number + " " + bestStreet,
		StreetNumber:  parsed.Number,
		StreetName:    bestStreet,
		Confidence:    bestScore,
		FIPSCounty:    bestFIPS,
	}, nil
}

func (pg *PostgresGeocoder) Close() error {
	return pg.db.Close()
}

type parsedStreetAddress struct {
	Number string
	Street string
	City   string
	State  string
}

// parseStreetAddress splits "123 Main St, Springfield, IL 62701" into
// its components. A nil result means the string does not look like a
// street address at all.
func parseStreetAddress(address string) *parsedStreetAddress {
	parts := strings.Split(address, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	fields := strings.Fields(parts[0])
	if len(fields) < 2 {
		return nil
	}

	number := fields[0]
	for _, char := range number {
		if char < '0' || char > '9' {
			return nil
		}
	}

	parsed := &parsedStreetAddress{
		Number: number,
		Street: strings.Join(fields[1:], " "),
	}

	if len(parts) > 1 && parts[1] != "" {
		parsed.City = parts[1]
	}

	if len(parts) > 2 {
		stateFields := strings.Fields(parts[2])
		if len(stateFields) > 0 && len(stateFields[0]) == 2 {
			parsed.State = stateFields[0]
		}
	}

	return parsed
}

// NewPostgresGeocoder wraps an already opened database handle. The
// handle is constructed once at process start and shared between
// requests.
func NewPostgresGeocoder(db *sql.DB, cacheSize int) (*PostgresGeocoder, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot create geocode cache")
	}

	return &PostgresGeocoder{db: db, cache: cache}, nil
}

// OpenStreetDatabase opens and checks the census database connection.
func OpenStreetDatabase(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot open street database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Annotate(err, "Cannot reach street database")
	}

	return db, nil
}
