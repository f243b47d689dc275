package config

import (
	"io"
	"io/ioutil"
	"net"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"
)

// VALID_IP_FLAVORS enumerates the supported IP database formats.
var VALID_IP_FLAVORS = map[string]bool{
	"maxmind":     true,
	"ip2location": true,
}

const (
	DefaultListen          = "127.0.0.1:4567"
	DefaultStreetCacheSize = 1024
)

// GazetteerConfig describes the place name data used by the text
// extractor.
type GazetteerConfig struct {
	Data string
}

// IPDatabaseConfig selects an IP geolocation database flavor and its
// location on disk.
type IPDatabaseConfig struct {
	Flavor string
	Path   string
}

// StreetDatabaseConfig describes the census address database
// connection.
type StreetDatabaseConfig struct {
	DSN       string
	CacheSize int `toml:"cache_size"`
}

type Config struct {
	Listen         string
	Gazetteer      GazetteerConfig
	IPDatabase     IPDatabaseConfig     `toml:"ip_database"`
	StreetDatabase StreetDatabaseConfig `toml:"street_database"`
}

func Parse(file io.Reader) (*Config, error) {
	conf := &Config{
		Listen: DefaultListen,
		StreetDatabase: StreetDatabaseConfig{
			CacheSize: DefaultStreetCacheSize,
		},
	}

	buf, err := ioutil.ReadAll(file)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot read config file")
	}

	if _, err := toml.Decode(string(buf), conf); err != nil {
		return nil, errors.Annotate(err, "Cannot parse config file")
	}

	if err = validate(conf); err != nil {
		return nil, errors.Annotate(err, "Invalid value")
	}

	return conf, nil
}

func validate(conf *Config) error {
	if _, _, err := net.SplitHostPort(conf.Listen); err != nil {
		return errors.Annotatef(err, "Incorrect listen address %s", conf.Listen)
	}

	if conf.Gazetteer.Data == "" {
		return errors.New("Gazetteer data file is not set")
	}

	if _, ok := VALID_IP_FLAVORS[conf.IPDatabase.Flavor]; !ok {
		return errors.Errorf("Unknown IP database flavor %s", conf.IPDatabase.Flavor)
	}

	if conf.IPDatabase.Path == "" {
		return errors.New("IP database path is not set")
	}

	if conf.StreetDatabase.DSN == "" {
		return errors.New("Street database DSN is not set")
	}

	if conf.StreetDatabase.CacheSize <= 0 {
		return errors.Errorf("Incorrect street cache size %d",
			conf.StreetDatabase.CacheSize)
	}

	return nil
}
