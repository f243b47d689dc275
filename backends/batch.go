package backends

import (
	"bytes"
	"encoding/json"

	log "github.com/sirupsen/logrus"
)

// BatchResult maps original, unmodified input strings to resolved
// records. Keys keep their insertion order when serialized, a nil
// value marks an input that could not be resolved. Duplicate inputs
// overwrite the same key.
type BatchResult struct {
	keys   []string
	values map[string]interface{}
}

func NewBatchResult() *BatchResult {
	return &BatchResult{values: make(map[string]interface{})}
}

func (br *BatchResult) Set(key string, value interface{}) {
	if _, ok := br.values[key]; !ok {
		br.keys = append(br.keys, key)
	}
	br.values[key] = value
}

func (br *BatchResult) Get(key string) (interface{}, bool) {
	value, ok := br.values[key]

	return value, ok
}

func (br *BatchResult) Len() int {
	return len(br.keys)
}

// Keys returns key names in insertion order.
func (br *BatchResult) Keys() []string {
	return br.keys
}

// MarshalJSON emits a JSON object whose keys follow input order.
// encoding/json sorts map keys, which would break the ordering
// contract, so the object is assembled manually.
func (br *BatchResult) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')

	for i, key := range br.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')

		encodedValue, err := json.Marshal(br.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(encodedValue)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// ResolveIPs looks up every IP in the batch. A failing item becomes a
// nil entry for that key only, it never aborts the rest of the batch.
func ResolveIPs(locator IPLocator, ips []string) *BatchResult {
	output := NewBatchResult()

	for _, ip := range ips {
		record, err := locator.Lookup(ip)
		if err != nil || record == nil {
			if err != nil {
				log.WithFields(log.Fields{
					"ip":  ip,
					"err": err,
				}).Debug("Cannot resolve ip")
			}
			output.Set(ip, nil)

			continue
		}

		output.Set(ip, record)
	}

	return output
}

// ResolveStreets geocodes every address in the batch with the same
// per-item isolation as ResolveIPs.
func ResolveStreets(geocoder StreetGeocoder, addresses []string) *BatchResult {
	output := NewBatchResult()

	for _, address := range addresses {
		record, err := geocoder.Geocode(address)
		if err != nil || record == nil {
			if err != nil {
				log.WithFields(log.Fields{
					"address": address,
					"err":     err,
				}).Debug("Cannot geocode address")
			}
			output.Set(address, nil)

			continue
		}

		output.Set(address, record)
	}

	return output
}
