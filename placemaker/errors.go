package placemaker

import (
	"encoding/json"
	"net/http"
)

const (
	ContentTypeXML  = "application/xml; charset=utf-8"
	ContentTypeJSON = "application/json; charset=utf-8"
	ContentTypeJS   = "application/javascript; charset=utf-8"
	ContentTypeText = "text/plain; charset=utf-8"
)

// APIError is the single fatal error path of the emulated API. Any
// request-level failure is carried as one of these and rendered in
// the format the client asked for.
type APIError struct {
	Message string
	Code    int
}

func (ae *APIError) Error() string {
	return ae.Message
}

// Render produces the response body, HTTP status code and content
// type for this error. When a JSONP callback is present the status is
// forced to 200: a script tag client cannot read the real status and
// still needs invokable content.
func (ae *APIError) Render(format, callback string) (string, int, string) {
	switch format {
	case FormatXML:
		body := `<?xml version="1.0" encoding="utf-8"?><error>` +
			ae.Message + `</error>`

		return body, ae.Code, ContentTypeXML
	case FormatJSON:
		encoded, _ := json.Marshal(map[string]string{"error": ae.Message})

		if callback != "" {
			return WrapJSONP(string(encoded), callback), http.StatusOK, ContentTypeJS
		}

		return string(encoded), ae.Code, ContentTypeJSON
	}

	// The requested format itself was unsupported, there is no
	// structured encoding left to use.
	return ae.Message, ae.Code, ContentTypeText
}

// NewAPIError creates an APIError with the default 500 status.
func NewAPIError(message string) *APIError {
	return &APIError{Message: message, Code: http.StatusInternalServerError}
}

// WrapJSONP embeds a JSON payload into a callback invocation.
func WrapJSONP(body, callback string) string {
	return callback + "(" + body + ");"
}

// EncodeJSON serializes a value, optionally wrapping it for JSONP
// consumption.
func EncodeJSON(value interface{}, callback string) (string, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", err
	}

	if callback != "" {
		return WrapJSONP(string(encoded), callback), nil
	}

	return string(encoded), nil
}
