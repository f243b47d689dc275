package api

import (
	"io/ioutil"
	"net/http"

	"github.com/geodict/geodict/backends"
	"github.com/geodict/geodict/placemaker"
)

const (
	missingAddressesBodyMessage = "You need to place the street addresses" +
		" as a JSON-encoded array of strings inside the POST body"
	missingAddressesURLMessage = "You need to place the street addresses" +
		" as a JSON-encoded array of strings as part of the URL"
)

func (h *handlers) postStreetBatch(w http.ResponseWriter, r *http.Request) {
	raw, err := ioutil.ReadAll(r.Body)
	r.Body.Close() // nolint: errcheck

	if err != nil || len(raw) == 0 {
		h.fail(w, placemaker.NewAPIError(missingAddressesBodyMessage),
			placemaker.FormatJSON, "")
		return
	}

	addresses, apiErr := AddressesFromString(string(raw))
	if apiErr != nil {
		h.fail(w, apiErr, placemaker.FormatJSON, "")
		return
	}

	h.renderBatch(w, backends.ResolveStreets(h.streets, addresses), "")
}

// getStreetBatch reads the batch from the addresses query parameter,
// not from the path segment, and splits it leniently, unlike the
// strict JSON parse of the POST body path.
func (h *handlers) getStreetBatch(w http.ResponseWriter, r *http.Request) {
	callback := r.URL.Query().Get("callback")

	addresses := IPsFromString(r.URL.Query().Get("addresses"))
	if len(addresses) == 0 {
		h.fail(w, placemaker.NewAPIError(missingAddressesURLMessage),
			placemaker.FormatJSON, callback)
		return
	}

	h.renderBatch(w, backends.ResolveStreets(h.streets, addresses), callback)
}
