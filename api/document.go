package api

import (
	"net/http"

	"github.com/geodict/geodict/placemaker"
)

// annotateDocument serves the Placemaker-compatible endpoint. GET and
// POST share the implementation: options come from the query string
// and from a form-encoded body alike.
func (h *handlers) annotateDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w,
			placemaker.NewAPIError("Cannot parse the request parameters"),
			placemaker.FormatXML, "")
		return
	}

	params := placemaker.ParamsFromValues(r.Form)

	body, contentType, apiErr := placemaker.Annotate(h.extractor, params)
	if apiErr != nil {
		h.fail(w, apiErr, params.OutputType, params.Callback)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Write([]byte(body)) // nolint: errcheck
}
