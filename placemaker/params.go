package placemaker

import (
	"net/url"
	"strings"
)

const (
	FormatXML  = "xml"
	FormatJSON = "json"

	DefaultInputLanguage = "en-US"
	DefaultDocumentType  = "text/plain"
	DefaultConfidence    = "8"
)

// Params is the full recognized option set of the emulated document
// API with defaults applied. Only a subset of the original service is
// supported; Validate rejects everything outside of it. The fields
// past DocumentType are accepted for wire compatibility but unused.
type Params struct {
	InputLanguage    string
	OutputType       string
	Callback         string
	DocumentContent  string
	DocumentTitle    string
	DocumentURL      string
	DocumentType     string
	AutoDisambiguate bool
	FocusWoeID       string
	Confidence       string
	CharacterLimit   string
	AppID            string

	hasContent bool
	hasURL     bool
}

// ParamsFromValues applies the option defaults over the supplied
// request values. Presence matters for documentContent/documentURL:
// an empty supplied value still counts as supplied.
func ParamsFromValues(values url.Values) Params {
	params := Params{
		InputLanguage:    getOrDefault(values, "inputLanguage", DefaultInputLanguage),
		OutputType:       getOrDefault(values, "outputType", FormatXML),
		Callback:         values.Get("callback"),
		DocumentContent:  values.Get("documentContent"),
		DocumentTitle:    values.Get("documentTitle"),
		DocumentURL:      values.Get("documentURL"),
		DocumentType:     getOrDefault(values, "documentType", DefaultDocumentType),
		AutoDisambiguate: true,
		FocusWoeID:       values.Get("focusWoeId"),
		Confidence:       getOrDefault(values, "confidence", DefaultConfidence),
		CharacterLimit:   values.Get("characterLimit"),
		AppID:            values.Get("appid"),
	}

	if _, ok := values["autoDisambiguate"]; ok {
		params.AutoDisambiguate = boolParam(values.Get("autoDisambiguate"))
	}

	_, params.hasContent = values["documentContent"]
	_, params.hasURL = values["documentURL"]

	return params
}

// Validate checks the option set against the supported subset. The
// first failing rule wins; the order is part of the emulated
// contract.
func (p Params) Validate() *APIError {
	if p.InputLanguage != DefaultInputLanguage {
		return NewAPIError(`Unsupported inputLanguage: "` + p.InputLanguage + `"`)
	}

	if p.OutputType != FormatXML && p.OutputType != FormatJSON {
		return NewAPIError(`Unsupported outputType: "` + p.OutputType + `"`)
	}

	if !p.hasContent && !p.hasURL {
		return NewAPIError(
			"You must specify either a documentContent or a documentURL parameter")
	}

	if p.hasURL {
		return NewAPIError(
			"The documentURL method of grabbing content is not yet supported")
	}

	if p.DocumentType != DefaultDocumentType {
		return NewAPIError(`Unsupported documentType: "` + p.DocumentType + `"`)
	}

	return nil
}

// getOrDefault falls back only when the key is absent. An explicitly
// supplied empty value stays empty and fails validation downstream.
func getOrDefault(values url.Values, key, defaultValue string) string {
	if supplied, ok := values[key]; ok && len(supplied) > 0 {
		return supplied[0]
	}

	return defaultValue
}

func boolParam(param string) bool {
	switch strings.ToLower(param) {
	case "1", "true", "enabled", "yes":
		return true
	default:
		return false
	}
}
