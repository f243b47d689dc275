package placemaker

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testPlaces() []Place {
	return []Place{{
		WoeID:         "0",
		Type:          TypeTown,
		Name:          "Paris",
		Lat:           48.8,
		Lon:           2.3,
		StartIndex:    0,
		EndIndex:      4,
		MatchedString: "Paris",
	}}
}

func testEnvelope() Envelope {
	return NewEnvelope(250*time.Microsecond, 13)
}

func TestRenderXML(t *testing.T) {
	body, err := RenderXML(testPlaces(), testEnvelope())
	assert.Nil(t, err)

	assert.Contains(t, body, `<?xml version="1.0" encoding="utf-8"?>`)
	assert.Contains(t, body, "<processingTime>0.00025</processingTime>")
	assert.Contains(t, body, "<version>Geodict build 000000</version>")
	assert.Contains(t, body, "<documentLength>13</documentLength>")

	// Both scope blocks are present and carry the first place.
	assert.Contains(t, body, "<administrativeScope>")
	assert.Contains(t, body, "</administrativeScope>")
	assert.Contains(t, body, "<geographicScope>")
	assert.Equal(t, strings.Count(body, "<name><![CDATA[Paris]]></name>"), 3)

	assert.Contains(t, body, "<latitude>48.8</latitude>")
	assert.Contains(t, body, "<longitude>2.3</longitude>")
	assert.Contains(t, body, "<matchType>0</matchType>")
	assert.Contains(t, body, "<weight>1</weight>")
	assert.Contains(t, body, "<confidence>10</confidence>")
	assert.Contains(t, body, "<start>0</start>")
	assert.Contains(t, body, "<end>4</end>")
	assert.Contains(t, body, "<text><![CDATA[Paris]]></text>")
}

func TestRenderXMLPerPlaceBlocks(t *testing.T) {
	places := testPlaces()
	places = append(places, Place{
		WoeID: "1", Type: TypeCountry, Name: "France",
		Lat: 46.2, Lon: 2.2, StartIndex: 9, EndIndex: 14,
		MatchedString: "France",
	})

	body, err := RenderXML(places, testEnvelope())
	assert.Nil(t, err)

	assert.Equal(t, strings.Count(body, "<placeDetails>"), 2)
	assert.Equal(t, strings.Count(body, "<reference>"), 2)
	// The scope blocks still describe only the first place.
	assert.Equal(t, strings.Count(body, "<woeId>0</woeId>"), 3)
}

func TestRenderJSON(t *testing.T) {
	body, err := RenderJSON(testPlaces(), testEnvelope(), "")
	assert.Nil(t, err)

	parsed := map[string]interface{}{}
	assert.Nil(t, json.Unmarshal([]byte(body), &parsed))

	assert.Equal(t, parsed["processingTime"], "0.00025")
	assert.Equal(t, parsed["version"], "Geodict build 000000")
	assert.Equal(t, parsed["documentLength"], "13")

	document := parsed["document"].(map[string]interface{})

	adminScope := document["administrativeScope"].(map[string]interface{})
	assert.Equal(t, adminScope["woeId"], "0")
	assert.Equal(t, adminScope["type"], "Town")
	assert.Equal(t, adminScope["name"], "Paris")

	centroid := adminScope["centroid"].(map[string]interface{})
	assert.Equal(t, centroid["latitude"], "48.8")
	assert.Equal(t, centroid["longitude"], "2.3")

	details := document["0"].(map[string]interface{})["placeDetails"].(map[string]interface{})
	assert.Equal(t, details["placeId"], float64(1))
	assert.Equal(t, details["matchType"], float64(0))
	assert.Equal(t, details["weight"], float64(1))
	assert.Equal(t, details["confidence"], float64(10))

	place := details["place"].(map[string]interface{})
	assert.Equal(t, place["type"], "Town")
	assert.Equal(t, place["name"], "Paris")

	references := document["referenceList"].([]interface{})
	assert.Len(t, references, 1)

	reference := references[0].(map[string]interface{})["reference"].(map[string]interface{})
	assert.Equal(t, reference["start"], "0")
	assert.Equal(t, reference["end"], "4")
	assert.Equal(t, reference["text"], "Paris")
	assert.Equal(t, reference["isPlaintextMarker"], float64(1))
	assert.Equal(t, reference["type"], "plaintext")
}

func TestRenderJSONP(t *testing.T) {
	body, err := RenderJSON(testPlaces(), testEnvelope(), "cb")
	assert.Nil(t, err)

	assert.True(t, strings.HasPrefix(body, "cb("))
	assert.True(t, strings.HasSuffix(body, ");"))

	parsed := map[string]interface{}{}
	assert.Nil(t, json.Unmarshal([]byte(body[3:len(body)-2]), &parsed))
	assert.Equal(t, parsed["version"], "Geodict build 000000")
}

func TestAPIErrorRenderXML(t *testing.T) {
	apiErr := NewAPIError(`Unsupported inputLanguage: "fr-FR"`)

	body, code, contentType := apiErr.Render(FormatXML, "")
	assert.Equal(t, body,
		`<?xml version="1.0" encoding="utf-8"?><error>Unsupported inputLanguage: "fr-FR"</error>`)
	assert.Equal(t, code, http.StatusInternalServerError)
	assert.Equal(t, contentType, ContentTypeXML)
}

func TestAPIErrorRenderJSON(t *testing.T) {
	apiErr := NewAPIError(`Unsupported inputLanguage: "fr-FR"`)

	body, code, contentType := apiErr.Render(FormatJSON, "")
	assert.Equal(t, body, `{"error":"Unsupported inputLanguage: \"fr-FR\""}`)
	assert.Equal(t, code, http.StatusInternalServerError)
	assert.Equal(t, contentType, ContentTypeJSON)
}

func TestAPIErrorRenderJSONPForcesOK(t *testing.T) {
	apiErr := NewAPIError("boom")

	body, code, contentType := apiErr.Render(FormatJSON, "cb")
	assert.Equal(t, body, `cb({"error":"boom"});`)
	assert.Equal(t, code, http.StatusOK)
	assert.Equal(t, contentType, ContentTypeJS)
}

func TestAPIErrorRenderUnknownFormat(t *testing.T) {
	apiErr := NewAPIError("boom")

	body, code, contentType := apiErr.Render("yaml", "")
	assert.Equal(t, body, "boom")
	assert.Equal(t, code, http.StatusInternalServerError)
	assert.Equal(t, contentType, ContentTypeText)
}

func TestRenderXMLNoPlaces(t *testing.T) {
	_, err := RenderXML(nil, testEnvelope())
	assert.NotNil(t, err)
}

func TestRenderJSONNoPlaces(t *testing.T) {
	_, err := RenderJSON(nil, testEnvelope(), "")
	assert.NotNil(t, err)
}
