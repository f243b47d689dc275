package api

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/geodict/geodict/backends"
	"github.com/geodict/geodict/placemaker"
)

type handlers struct {
	extractor placemaker.Extractor
	ips       backends.IPLocator
	streets   backends.StreetGeocoder
}

// MakeServer wires every endpoint of the service into a router.
func MakeServer(extractor placemaker.Extractor, ips backends.IPLocator, streets backends.StreetGeocoder) *chi.Mux {
	h := &handlers{
		extractor: extractor,
		ips:       ips,
		streets:   streets,
	}
	router := chi.NewRouter()

	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)

	router.Get("/", h.welcomePage)
	router.Get("/developerdocs", h.developerDocsPage)
	router.Get("/about", h.aboutPage)

	router.Get("/v1/document", h.annotateDocument)
	router.Post("/v1/document", h.annotateDocument)

	router.Post("/ip2location", h.postIPBatch)
	router.Get("/ip2location/{ips}", h.getIPBatch)

	router.Post("/street2location", h.postStreetBatch)
	router.Get("/street2location/{ips}", h.getStreetBatch)

	return router
}

func (h *handlers) fail(w http.ResponseWriter, apiErr *placemaker.APIError, format string, callback string) {
	body, code, contentType := apiErr.Render(format, callback)

	log.WithFields(log.Fields{
		"message": apiErr.Message,
		"code":    code,
	}).Debug("Request failed")

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(code)
	w.Write([]byte(body)) // nolint: errcheck
}

func (h *handlers) renderBatch(w http.ResponseWriter, output *backends.BatchResult, callback string) {
	body, err := placemaker.EncodeJSON(output, callback)
	if err != nil {
		h.fail(w, placemaker.NewAPIError("Cannot serialize the lookup results"), placemaker.FormatJSON, callback)
		return
	}

	contentType := placemaker.ContentTypeJSON
	if callback != "" {
		contentType = placemaker.ContentTypeJS
	}
	w.Header().Set("Content-Type", contentType)
	w.Write([]byte(body)) // nolint: errcheck
}
