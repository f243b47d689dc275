// Geodict is a service that pulls location names out of unstructured
// English text and resolves them into coordinates, speaking a
// Placemaker-compatible dialect over HTTP.
//
// Idea is simple: you have a text like "I flew from New York to
// Paris". And you want to know which places it talks about and where
// they are on the map. So, this is a geoparsing task.
//
// Tool itself is organized into a few logical parts:
//
// Gazetteer
//
// gazetteer loads a CSV dictionary of country, region and city names
// and scans text for the longest phrases it knows, grouping a city
// with the region or country that follows it.
//
// Placemaker
//
// placemaker validates the request options, turns the found mentions
// into places and renders them as the XML or JSON documents the
// emulated API promises, including JSONP wrapping.
//
// Backends
//
// backends answers the batch lookups: IP addresses through a MaxMind
// or IP2Location database, US street addresses through a census data
// table in PostgreSQL.
//
// A main package wires all of that behind one HTTP server with a small
// CLI around it.
package main
