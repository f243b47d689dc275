package placemaker

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geodict/geodict/gazetteer"
)

type fakeExtractor []gazetteer.MentionGroup

func (fe fakeExtractor) FindLocationsInText(text string) []gazetteer.MentionGroup {
	return fe
}

func parisMention() fakeExtractor {
	return fakeExtractor{{
		Tokens: []gazetteer.Token{{
			Kind:          gazetteer.KindCity,
			Lat:           48.8,
			Lon:           2.3,
			StartIndex:    0,
			EndIndex:      4,
			MatchedString: "Paris",
		}},
	}}
}

func TestAnnotateJSON(t *testing.T) {
	values := url.Values{}
	values.Set("outputType", "json")
	values.Set("documentContent", "Paris is nice")

	body, contentType, apiErr := Annotate(parisMention(), ParamsFromValues(values))
	assert.Nil(t, apiErr)
	assert.Equal(t, contentType, ContentTypeJSON)

	parsed := map[string]interface{}{}
	assert.Nil(t, json.Unmarshal([]byte(body), &parsed))
	assert.Equal(t, parsed["documentLength"], "13")

	document := parsed["document"].(map[string]interface{})
	details := document["0"].(map[string]interface{})["placeDetails"].(map[string]interface{})
	place := details["place"].(map[string]interface{})
	assert.Equal(t, place["type"], "Town")
	assert.Equal(t, place["name"], "Paris")
}

func TestAnnotateXMLDefaultFormat(t *testing.T) {
	values := url.Values{}
	values.Set("documentContent", "Paris is nice")

	body, contentType, apiErr := Annotate(parisMention(), ParamsFromValues(values))
	assert.Nil(t, apiErr)
	assert.Equal(t, contentType, ContentTypeXML)
	assert.Contains(t, body, "<version>Geodict build 000000</version>")
	assert.Contains(t, body, "<type>Town</type>")
}

func TestAnnotateEmptyExtractionGetsPlaceholder(t *testing.T) {
	values := url.Values{}
	values.Set("outputType", "json")
	values.Set("documentContent", "nothing to see")

	body, _, apiErr := Annotate(fakeExtractor{}, ParamsFromValues(values))
	assert.Nil(t, apiErr)

	parsed := map[string]interface{}{}
	assert.Nil(t, json.Unmarshal([]byte(body), &parsed))

	document := parsed["document"].(map[string]interface{})
	scope := document["administrativeScope"].(map[string]interface{})
	assert.Equal(t, scope["name"], "?")
	assert.Equal(t, scope["type"], "Country")

	centroid := scope["centroid"].(map[string]interface{})
	assert.Equal(t, centroid["latitude"], "0")
	assert.Equal(t, centroid["longitude"], "0")

	references := document["referenceList"].([]interface{})
	reference := references[0].(map[string]interface{})["reference"].(map[string]interface{})
	assert.Equal(t, reference["start"], "0")
	assert.Equal(t, reference["end"], "1")
	assert.Equal(t, reference["text"], "")
}

func TestAnnotateValidationFailure(t *testing.T) {
	values := url.Values{}
	values.Set("inputLanguage", "fr-FR")
	values.Set("documentContent", "Paris")

	_, _, apiErr := Annotate(parisMention(), ParamsFromValues(values))
	assert.NotNil(t, apiErr)
	assert.Equal(t, apiErr.Message, `Unsupported inputLanguage: "fr-FR"`)
}

func TestAnnotateBadPlaceType(t *testing.T) {
	values := url.Values{}
	values.Set("documentContent", "somewhere")

	badExtractor := fakeExtractor{{
		Tokens: []gazetteer.Token{{Kind: gazetteer.Kind("PLANET")}},
	}}

	_, _, apiErr := Annotate(badExtractor, ParamsFromValues(values))
	assert.NotNil(t, apiErr)
	assert.Contains(t, apiErr.Message, "bad place type")
}

func TestAnnotateJSONPContentType(t *testing.T) {
	values := url.Values{}
	values.Set("outputType", "json")
	values.Set("callback", "cb")
	values.Set("documentContent", "Paris is nice")

	body, contentType, apiErr := Annotate(parisMention(), ParamsFromValues(values))
	assert.Nil(t, apiErr)
	assert.Equal(t, contentType, ContentTypeJS)
	assert.Contains(t, body, "cb(")
}

func TestAnnotateDocumentLengthCountsCharacters(t *testing.T) {
	values := url.Values{}
	values.Set("outputType", "json")
	values.Set("documentContent", "café")

	body, _, apiErr := Annotate(fakeExtractor{}, ParamsFromValues(values))
	assert.Nil(t, apiErr)

	parsed := map[string]interface{}{}
	assert.Nil(t, json.Unmarshal([]byte(body), &parsed))
	assert.Equal(t, parsed["documentLength"], "4")
}
