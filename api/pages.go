package api

import (
	"html/template"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const pageMarkup = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Headline}} - Geodict</title>
</head>
<body>
  <h1>{{.Headline}}</h1>
{{.Body}}
</body>
</html>
`

var pageTemplate = template.Must(template.New("page").Parse(pageMarkup))

type pageData struct {
	Headline string
	Body     template.HTML
}

const welcomeBody = `  <p>Geodict pulls country, city and region names out of
  unstructured English text and resolves them into coordinates. It also
  answers batch IP address and US street address lookups.</p>
  <p>See the <a href="/developerdocs">developer documentation</a> for the
  endpoints and their parameters.</p>`

const developerDocsBody = `  <p>The service speaks a Placemaker-compatible dialect.</p>
  <ul>
    <li><code>POST /v1/document</code>, <code>GET /v1/document</code>
    accept <code>documentContent</code> and return places found in the
    text as XML or, with <code>outputType=json</code>, as JSON. A
    <code>callback</code> parameter turns the JSON into JSONP.</li>
    <li><code>POST /ip2location</code> takes a comma separated list of
    IP addresses in the body. <code>GET /ip2location/&lt;ips&gt;</code>
    is the same lookup with the list in the URL.</li>
    <li><code>POST /street2location</code> takes a JSON array of US
    street addresses in the body.
    <code>GET /street2location/list?addresses=...</code> is the query
    string form.</li>
  </ul>`

const aboutBody = `  <p>Geodict is an open source geocoding toolkit. This server wraps
  its text extractor together with IP and street address location
  databases behind one HTTP interface.</p>`

func (h *handlers) welcomePage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "Welcome to the Geodict API Server", welcomeBody)
}

func (h *handlers) developerDocsPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "Developer Documentation", developerDocsBody)
}

func (h *handlers) aboutPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "About", aboutBody)
}

func renderPage(w http.ResponseWriter, headline, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	data := pageData{Headline: headline, Body: template.HTML(body)}
	if err := pageTemplate.Execute(w, data); err != nil {
		log.WithFields(log.Fields{
			"headline": headline,
			"error":    err.Error(),
		}).Warn("Cannot render a static page")
	}
}
