package api

import (
	"io/ioutil"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/geodict/geodict/backends"
	"github.com/geodict/geodict/placemaker"
)

const (
	missingIPsBodyMessage = "You need to place the IP addresses as a" +
		" comma-separated list inside the POST body"
	missingIPsURLMessage = "You need to place the IP addresses as a" +
		" comma-separated list as part of the URL"
)

func (h *handlers) postIPBatch(w http.ResponseWriter, r *http.Request) {
	raw, err := ioutil.ReadAll(r.Body)
	r.Body.Close() // nolint: errcheck

	if err != nil || len(raw) == 0 {
		h.fail(w, placemaker.NewAPIError(missingIPsBodyMessage),
			placemaker.FormatJSON, "")
		return
	}

	ips := IPsFromString(string(raw))
	if len(ips) == 0 {
		h.fail(w, placemaker.NewAPIError(missingIPsBodyMessage),
			placemaker.FormatJSON, "")
		return
	}

	h.renderBatch(w, backends.ResolveIPs(h.ips, ips), "")
}

func (h *handlers) getIPBatch(w http.ResponseWriter, r *http.Request) {
	callback := r.URL.Query().Get("callback")

	ips := IPsFromString(chi.URLParam(r, "ips"))
	if len(ips) == 0 {
		h.fail(w, placemaker.NewAPIError(missingIPsURLMessage),
			placemaker.FormatJSON, callback)
		return
	}

	h.renderBatch(w, backends.ResolveIPs(h.ips, ips), callback)
}
