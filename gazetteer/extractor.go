package gazetteer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a single matched gazetteer entry inside a document.
// StartIndex and EndIndex are inclusive character offsets into the
// source text, so clients can slice the document they sent regardless
// of how it is encoded.
type Token struct {
	Kind          Kind
	Code          string
	Lat           float64
	Lon           float64
	StartIndex    int
	EndIndex      int
	MatchedString string
}

// MentionGroup is one located mention: an ordered, non-empty sequence
// of tokens. A mention like "Portland, Oregon" keeps the city and the
// region as separate tokens inside one group.
type MentionGroup struct {
	Tokens []Token
}

// Span returns the inclusive character range covered by the whole
// group, from the first token start to the last token end.
func (mg MentionGroup) Span() (int, int) {
	first := mg.Tokens[0]
	last := mg.Tokens[len(mg.Tokens)-1]

	return first.StartIndex, last.EndIndex
}

// Extractor finds place mentions in free text using a gazetteer Index.
type Extractor struct {
	index *Index
}

// FindLocationsInText scans the text and returns every located
// mention in document order. It returns an empty slice when nothing
// matches and never fails, even for empty input.
func (e *Extractor) FindLocationsInText(text string) []MentionGroup {
	words := tokenizeWords(text)
	groups := []MentionGroup{}

	for i := 0; i < len(words); {
		record, consumed := e.matchAt(words, i)
		if record == nil {
			i++
			continue
		}

		group := MentionGroup{
			Tokens: []Token{makeToken(text, record, words[i], words[i+consumed-1])},
		}
		prev := words[i+consumed-1]
		i += consumed

		// A city may be qualified by a region or a country right
		// after it, separated by whitespace or a single comma.
		for i < len(words) {
			if !connectorOK(text, prev.byteEnd, words[i].byteStart) {
				break
			}

			next, nextConsumed := e.matchAt(words, i)
			if next == nil || kindRank(next.Kind) <= kindRank(record.Kind) {
				break
			}

			group.Tokens = append(group.Tokens,
				makeToken(text, next, words[i], words[i+nextConsumed-1]))
			record = next
			prev = words[i+nextConsumed-1]
			i += nextConsumed
		}

		groups = append(groups, group)
	}

	return groups
}

func (e *Extractor) matchAt(words []word, at int) (*Record, int) {
	longest := e.index.MaxWords()
	if rest := len(words) - at; longest > rest {
		longest = rest
	}

	for n := longest; n >= 1; n-- {
		phrase := joinWords(words[at : at+n])
		if record := e.index.Lookup(phrase); record != nil {
			return record, n
		}
	}

	return nil, 0
}

// NewExtractor creates an Extractor over the given index.
func NewExtractor(index *Index) *Extractor {
	return &Extractor{index: index}
}

// start and end are rune offsets, byteStart and byteEnd index into
// the raw string for slicing. All four are inclusive.
type word struct {
	text      string
	start     int
	end       int
	byteStart int
	byteEnd   int
}

func tokenizeWords(text string) []word {
	words := []word{}
	current := word{byteStart: -1}
	runePos := 0

	for idx, char := range text {
		if unicode.IsLetter(char) || char == '\'' {
			if current.byteStart < 0 {
				current.byteStart = idx
				current.start = runePos
			}
			current.byteEnd = idx + utf8.RuneLen(char) - 1
			current.end = runePos
		} else if current.byteStart >= 0 {
			current.text = text[current.byteStart : current.byteEnd+1]
			words = append(words, current)
			current = word{byteStart: -1}
		}

		runePos++
	}

	if current.byteStart >= 0 {
		current.text = text[current.byteStart : current.byteEnd+1]
		words = append(words, current)
	}

	return words
}

func joinWords(words []word) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, w.text)
	}

	return strings.Join(parts, " ")
}

func makeToken(text string, record *Record, first, last word) Token {
	return Token{
		Kind:          record.Kind,
		Code:          record.Code,
		Lat:           record.Lat,
		Lon:           record.Lon,
		StartIndex:    first.start,
		EndIndex:      last.end,
		MatchedString: text[first.byteStart : last.byteEnd+1],
	}
}

func kindRank(kind Kind) int {
	switch kind {
	case KindCity:
		return 0
	case KindRegion:
		return 1
	default:
		return 2
	}
}

func connectorOK(text string, prevByteEnd, nextByteStart int) bool {
	gap := strings.TrimSpace(text[prevByteEnd+1 : nextByteStart])

	return gap == "" || gap == ","
}
