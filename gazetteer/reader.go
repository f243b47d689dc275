package gazetteer

import (
	"encoding/csv"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/juju/errors"
)

// Rows are "name,kind,code,lat,lon". Kind is one of country, region or
// city. Code is an ISO 3166 alpha-2 code for countries, a postal
// abbreviation for regions and empty for cities.
const gazetteerFieldCount = 5

// CSVReader is a wrapper over csv.Reader to convert each row into
// Record instance. Malformed rows are logged and skipped, they never
// interrupt loading.
type CSVReader struct {
	reader *csv.Reader
}

func (cr *CSVReader) Read() (*Record, error) {
	data, err := cr.next()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Annotate(err, "Cannot read new record")
	}

	record, err := NewRecord(data[0], data[1], data[2], data[3], data[4])
	if err != nil {
		log.WithFields(log.Fields{
			"data": data,
			"err":  err,
		}).Debug("Cannot parse record")
		record = nil
	}

	return record, nil
}

func (cr *CSVReader) next() ([]string, error) {
	for {
		data, err := cr.reader.Read()
		if err != nil {
			if parseErr, ok := err.(*csv.ParseError); ok {
				log.WithFields(log.Fields{
					"err": parseErr,
				}).Debug("Malformed row")
				continue
			}
			return nil, err
		}
		if len(data) > 0 {
			return data, nil
		}
	}
}

// NewCSVReader converts given io.Reader instance into CSVReader.
func NewCSVReader(filefp io.Reader) *CSVReader {
	reader := csv.NewReader(filefp)
	reader.ReuseRecord = true
	reader.Comment = '#'
	reader.FieldsPerRecord = gazetteerFieldCount

	return &CSVReader{reader}
}
