package placemaker

import (
	"time"
	"unicode/utf8"

	"github.com/geodict/geodict/gazetteer"
)

// Extractor is the free-text backend consumed by the document API.
type Extractor interface {
	FindLocationsInText(text string) []gazetteer.MentionGroup
}

// Annotate runs the whole document pipeline: option validation,
// extraction, normalization and rendering. It returns the response
// body and its content type, or the APIError to signal instead.
func Annotate(extractor Extractor, params Params) (string, string, *APIError) {
	if apiErr := params.Validate(); apiErr != nil {
		return "", "", apiErr
	}

	text := params.DocumentContent

	started := time.Now()
	groups := extractor.FindLocationsInText(text)
	elapsed := time.Since(started)

	places, err := BuildPlaces(text, groups)
	if err != nil {
		return "", "", NewAPIError(err.Error())
	}

	// documentLength counts characters, like the span offsets.
	envelope := NewEnvelope(elapsed, utf8.RuneCountInString(text))

	if params.OutputType == FormatJSON {
		body, err := RenderJSON(places, envelope, params.Callback)
		if err != nil {
			return "", "", NewAPIError(err.Error())
		}

		contentType := ContentTypeJSON
		if params.Callback != "" {
			contentType = ContentTypeJS
		}

		return body, contentType, nil
	}

	body, err := RenderXML(places, envelope)
	if err != nil {
		return "", "", NewAPIError(err.Error())
	}

	return body, ContentTypeXML, nil
}
