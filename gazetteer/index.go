package gazetteer

import (
	"io"
	"strings"

	"github.com/juju/errors"
	"github.com/spf13/afero"
)

// Index is an in-memory lookup table from normalized place name
// phrases to gazetteer records. It is built once at process start and
// is read-only afterwards, so it is safe to share between requests.
type Index struct {
	phrases  map[string]*Record
	maxWords int
}

// Lookup returns the record for the given phrase or nil. Matching is
// case-insensitive and whitespace-insensitive.
func (ix *Index) Lookup(phrase string) *Record {
	return ix.phrases[normalizePhrase(phrase)]
}

// MaxWords returns the length, in words, of the longest place name in
// the index.
func (ix *Index) MaxWords() int {
	return ix.maxWords
}

// Len returns the number of indexed phrases.
func (ix *Index) Len() int {
	return len(ix.phrases)
}

func (ix *Index) add(record *Record) {
	words := strings.Count(record.Name, " ") + 1
	if words > ix.maxWords {
		ix.maxWords = words
	}

	// First entry wins so that more authoritative rows can be put
	// earlier in the data file.
	if _, ok := ix.phrases[record.Name]; !ok {
		ix.phrases[record.Name] = record
	}
}

// NewIndex reads gazetteer CSV rows and builds an Index.
func NewIndex(filefp io.Reader) (*Index, error) {
	index := &Index{phrases: make(map[string]*Record)}
	reader := NewCSVReader(filefp)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Annotate(err, "Error during parsing CSV")
		}
		if record == nil {
			continue
		}

		index.add(record)
	}

	return index, nil
}

// LoadIndex opens the gazetteer data file on the given filesystem and
// builds an Index from it.
func LoadIndex(fs afero.Fs, path string) (*Index, error) {
	filefp, err := fs.Open(path)
	if err != nil {
		return nil, errors.Annotatef(err, "Cannot open gazetteer data %s", path)
	}
	defer filefp.Close() // nolint

	return NewIndex(filefp)
}
