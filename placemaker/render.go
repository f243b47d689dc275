package placemaker

import (
	"bytes"
	"strconv"
	"text/template"
	"time"

	"github.com/juju/errors"
)

// Version is reported in every success envelope.
const Version = "Geodict build 000000"

// Envelope carries the fixed top-level metadata of every successful
// response.
type Envelope struct {
	ProcessingTime string
	Version        string
	DocumentLength int
}

// NewEnvelope builds the envelope for a processed document.
func NewEnvelope(elapsed time.Duration, documentLength int) Envelope {
	return Envelope{
		ProcessingTime: strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64),
		Version:        Version,
		DocumentLength: documentLength,
	}
}

type scopeData struct {
	Tag   string
	Place Place
}

// The administrative and geographic scopes are rendered by one shared
// sub-template invoked twice, so the two blocks cannot drift apart.
const xmlTemplateText = `{{define "scope"}}    <{{.Tag}}>
      <woeId>{{.Place.WoeID}}</woeId>
      <type>{{.Place.Type}}</type>
      <name><![CDATA[{{.Place.Name}}]]></name>
      <centroid>
        <latitude>{{coord .Place.Lat}}</latitude>
        <longitude>{{coord .Place.Lon}}</longitude>
      </centroid>
    </{{.Tag}}>
{{end}}<?xml version="1.0" encoding="utf-8"?>
<contentlocation
    xmlns:yahoo="http://www.yahooapis.com/v1/base.rng"
    xmlns:xml="http://www.w3.org/XML/1998/namespace"
    xmlns="http://wherein.yahooapis.com/v1/schema"
    xml:lang="en">
  <processingTime>{{.Envelope.ProcessingTime}}</processingTime>
  <version>{{.Envelope.Version}}</version>
  <documentLength>{{.Envelope.DocumentLength}}</documentLength>
  <document>
{{template "scope" withTag "administrativeScope" .First}}{{template "scope" withTag "geographicScope" .First}}    <extents>
      <center>
        <latitude>{{coord .First.Lat}}</latitude>
        <longitude>{{coord .First.Lon}}</longitude>
      </center>
      <southWest>
        <latitude>{{coord .First.Lat}}</latitude>
        <longitude>{{coord .First.Lon}}</longitude>
      </southWest>
      <northEast>
        <latitude>{{coord .First.Lat}}</latitude>
        <longitude>{{coord .First.Lon}}</longitude>
      </northEast>
    </extents>
{{range .Places}}    <placeDetails>
      <place>
        <woeId>{{.WoeID}}</woeId>
        <type>{{.Type}}</type>
        <name><![CDATA[{{.Name}}]]></name>
        <centroid>
          <latitude>{{coord .Lat}}</latitude>
          <longitude>{{coord .Lon}}</longitude>
        </centroid>
      </place>
      <matchType>0</matchType>
      <weight>1</weight>
      <confidence>10</confidence>
    </placeDetails>
{{end}}    <referenceList>
{{range .Places}}      <reference>
        <woeIds>{{.WoeID}}</woeIds>
        <start>{{.StartIndex}}</start>
        <end>{{.EndIndex}}</end>
        <isPlaintextMarker>1</isPlaintextMarker>
        <text><![CDATA[{{.MatchedString}}]]></text>
        <type>plaintext</type>
        <xpath><![CDATA[]]></xpath>
      </reference>
{{end}}    </referenceList>
  </document>
</contentlocation>
`

var xmlTemplate = template.Must(template.
	New("contentlocation").
	Funcs(template.FuncMap{
		"coord": formatCoordinate,
		"withTag": func(tag string, place Place) scopeData {
			return scopeData{Tag: tag, Place: place}
		},
	}).
	Parse(xmlTemplateText))

// RenderXML serializes the place list into the markup document of the
// emulated API. The list must not be empty: BuildPlaces supplies a
// placeholder place when extraction found nothing.
func RenderXML(places []Place, envelope Envelope) (string, error) {
	if len(places) == 0 {
		return "", errors.New("Cannot render an empty place list")
	}

	data := struct {
		Envelope Envelope
		Places   []Place
		First    Place
	}{
		Envelope: envelope,
		Places:   places,
		First:    places[0],
	}

	buf := &bytes.Buffer{}
	if err := xmlTemplate.Execute(buf, data); err != nil {
		return "", errors.Annotate(err, "Cannot render markup document")
	}

	return buf.String(), nil
}

// RenderJSON serializes the place list into the JSON document of the
// emulated API, optionally wrapped for JSONP. Coordinates and indices
// are emitted as strings, matching the documented field types.
func RenderJSON(places []Place, envelope Envelope, callback string) (string, error) {
	if len(places) == 0 {
		return "", errors.New("Cannot render an empty place list")
	}

	first := places[0]

	document := map[string]interface{}{
		"administrativeScope": scopeObject(first),
		"geographicScope":     scopeObject(first),
		"extents": map[string]interface{}{
			"center":    centroidObject(first),
			"southWest": centroidObject(first),
			"northEast": centroidObject(first),
		},
	}

	references := make([]interface{}, 0, len(places))

	for index, place := range places {
		document[strconv.Itoa(index)] = map[string]interface{}{
			"placeDetails": map[string]interface{}{
				"placeId":           index + 1,
				"place":             scopeObject(place),
				"placeReferenceIds": index,
				"matchType":         0,
				"weight":            1,
				"confidence":        10,
			},
		}

		references = append(references, map[string]interface{}{
			"reference": map[string]interface{}{
				"woeIds":            place.WoeID,
				"placeReferenceId":  index + 1,
				"placeIds":          index,
				"start":             strconv.Itoa(place.StartIndex),
				"end":               strconv.Itoa(place.EndIndex),
				"isPlaintextMarker": 1,
				"text":              place.MatchedString,
				"type":              "plaintext",
				"xpath":             "",
			},
		})
	}

	document["referenceList"] = references

	output := map[string]interface{}{
		"processingTime": envelope.ProcessingTime,
		"version":        envelope.Version,
		"documentLength": strconv.Itoa(envelope.DocumentLength),
		"document":       document,
	}

	return EncodeJSON(output, callback)
}

func scopeObject(place Place) map[string]interface{} {
	return map[string]interface{}{
		"woeId":    place.WoeID,
		"type":     place.Type,
		"name":     place.Name,
		"centroid": centroidObject(place),
	}
}

func centroidObject(place Place) map[string]interface{} {
	return map[string]interface{}{
		"latitude":  formatCoordinate(place.Lat),
		"longitude": formatCoordinate(place.Lon),
	}
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
