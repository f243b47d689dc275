package placemaker

import (
	"strconv"

	"github.com/juju/errors"

	"github.com/geodict/geodict/gazetteer"
)

// Place vocabulary of the emulated API.
const (
	TypeCountry = "Country"
	TypeRegion  = "Region"
	TypeTown    = "Town"
)

// Place is the canonical unit of output for the document API. WoeID
// is a per-response sequence number standing in for the real global
// place registry, so it is only unique within one response.
type Place struct {
	WoeID         string
	Type          string
	Name          string
	Lat           float64
	Lon           float64
	StartIndex    int
	EndIndex      int
	MatchedString string
}

// BuildPlaces converts extraction output into the place list of one
// response. Every response carries at least one place: when the
// extractor found nothing, a single placeholder stands in so that
// renderers can always rely on a first place being present.
func BuildPlaces(text string, groups []gazetteer.MentionGroup) ([]Place, error) {
	if len(groups) == 0 {
		return []Place{{
			WoeID:      "0",
			Type:       TypeCountry,
			Name:       "?",
			StartIndex: 0,
			EndIndex:   1,
		}}, nil
	}

	places := make([]Place, 0, len(groups))

	for index, group := range groups {
		first := group.Tokens[0]

		placeType, err := placeTypeFor(first.Kind)
		if err != nil {
			return nil, err
		}

		start, end := group.Span()

		places = append(places, Place{
			WoeID:         strconv.Itoa(index),
			Type:          placeType,
			Name:          first.MatchedString,
			Lat:           first.Lat,
			Lon:           first.Lon,
			StartIndex:    first.StartIndex,
			EndIndex:      first.EndIndex,
			MatchedString: substring(text, start, end),
		})
	}

	return places, nil
}

func placeTypeFor(kind gazetteer.Kind) (string, error) {
	switch kind {
	case gazetteer.KindCountry:
		return TypeCountry, nil
	case gazetteer.KindRegion:
		return TypeRegion, nil
	case gazetteer.KindCity:
		return TypeTown, nil
	}

	return "", errors.Errorf(`Internal error - bad place type "%s"`, kind)
}

// substring extracts the inclusive [start, end] character range,
// clamped to the text bounds. Offsets count characters, not bytes.
func substring(text string, start, end int) string {
	runes := []rune(text)

	if start < 0 {
		start = 0
	}
	if end+1 > len(runes) {
		end = len(runes) - 1
	}
	if start > end {
		return ""
	}

	return string(runes[start : end+1])
}
