package placemaker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geodict/geodict/gazetteer"
)

func TestBuildPlacesPlaceholder(t *testing.T) {
	places, err := BuildPlaces("no places here", nil)
	assert.Nil(t, err)
	assert.Len(t, places, 1)

	placeholder := places[0]
	assert.Equal(t, placeholder.WoeID, "0")
	assert.Equal(t, placeholder.Type, TypeCountry)
	assert.Equal(t, placeholder.Name, "?")
	assert.InDelta(t, placeholder.Lat, 0.0, 1e-9)
	assert.InDelta(t, placeholder.Lon, 0.0, 1e-9)
	assert.Equal(t, placeholder.StartIndex, 0)
	assert.Equal(t, placeholder.EndIndex, 1)
	assert.Equal(t, placeholder.MatchedString, "")
}

func TestBuildPlacesSingleMention(t *testing.T) {
	text := "Paris is nice"
	groups := []gazetteer.MentionGroup{{
		Tokens: []gazetteer.Token{{
			Kind:          gazetteer.KindCity,
			Lat:           48.8,
			Lon:           2.3,
			StartIndex:    0,
			EndIndex:      4,
			MatchedString: "Paris",
		}},
	}}

	places, err := BuildPlaces(text, groups)
	assert.Nil(t, err)
	assert.Len(t, places, 1)

	place := places[0]
	assert.Equal(t, place.WoeID, "0")
	assert.Equal(t, place.Type, TypeTown)
	assert.Equal(t, place.Name, "Paris")
	assert.InDelta(t, place.Lat, 48.8, 1e-9)
	assert.InDelta(t, place.Lon, 2.3, 1e-9)
	assert.Equal(t, place.MatchedString, "Paris")
}

func TestBuildPlacesSequentialIdentifiers(t *testing.T) {
	text := "From Paris to France"
	groups := []gazetteer.MentionGroup{
		{Tokens: []gazetteer.Token{{
			Kind: gazetteer.KindCity, StartIndex: 5, EndIndex: 9,
			MatchedString: "Paris",
		}}},
		{Tokens: []gazetteer.Token{{
			Kind: gazetteer.KindCountry, StartIndex: 14, EndIndex: 19,
			MatchedString: "France",
		}}},
	}

	places, err := BuildPlaces(text, groups)
	assert.Nil(t, err)
	assert.Len(t, places, 2)
	assert.Equal(t, places[0].WoeID, "0")
	assert.Equal(t, places[1].WoeID, "1")
	assert.Equal(t, places[1].Type, TypeCountry)
}

func TestBuildPlacesGroupSpan(t *testing.T) {
	text := "Greetings from Portland, Oregon!"
	groups := []gazetteer.MentionGroup{{
		Tokens: []gazetteer.Token{
			{
				Kind: gazetteer.KindCity, Lat: 45.5, Lon: -122.6,
				StartIndex: 15, EndIndex: 22, MatchedString: "Portland",
			},
			{
				Kind: gazetteer.KindRegion, Lat: 43.8, Lon: -120.5,
				StartIndex: 25, EndIndex: 30, MatchedString: "Oregon",
			},
		},
	}}

	places, err := BuildPlaces(text, groups)
	assert.Nil(t, err)
	assert.Len(t, places, 1)

	place := places[0]
	// The first token drives the place data, the whole group drives
	// the matched substring.
	assert.Equal(t, place.Type, TypeTown)
	assert.Equal(t, place.Name, "Portland")
	assert.InDelta(t, place.Lat, 45.5, 1e-9)
	assert.Equal(t, place.StartIndex, 15)
	assert.Equal(t, place.EndIndex, 22)
	assert.Equal(t, place.MatchedString, "Portland, Oregon")
}

func TestBuildPlacesBadKind(t *testing.T) {
	groups := []gazetteer.MentionGroup{{
		Tokens: []gazetteer.Token{{Kind: gazetteer.Kind("PLANET")}},
	}}

	_, err := BuildPlaces("somewhere", groups)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "bad place type")
}

func TestBuildPlacesCharacterOffsets(t *testing.T) {
	// "café " is five characters but six bytes, the offsets count
	// characters.
	text := "café Paris"
	groups := []gazetteer.MentionGroup{{
		Tokens: []gazetteer.Token{{
			Kind:          gazetteer.KindCity,
			Lat:           48.8,
			Lon:           2.3,
			StartIndex:    5,
			EndIndex:      9,
			MatchedString: "Paris",
		}},
	}}

	places, err := BuildPlaces(text, groups)
	assert.Nil(t, err)
	assert.Equal(t, places[0].StartIndex, 5)
	assert.Equal(t, places[0].EndIndex, 9)
	assert.Equal(t, places[0].MatchedString, "Paris")
}
