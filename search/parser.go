package search

import (
	"bytes"
	"encoding/json"

	"github.com/purelyKai/Mosaic/types"
)

// ParsePlaces normalizes a places-search response body into a canonical
// Place list. The expected shape is a mapping from place ID to
// {name, image_url} under a "places" field; a missing field fails with
// MalformedResponseError. The parse is all-or-nothing, never partial.
// Category is nil: this backend supplies none at parse time.
func ParsePlaces(body []byte) ([]types.Place, error) {
	var resp types.RadiusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &MalformedResponseError{Reason: err.Error()}
	}

	if resp.Places == nil || bytes.Equal(resp.Places, []byte("null")) {
		return nil, &MalformedResponseError{Reason: "missing places field"}
	}

	var entries map[string]types.PlaceEntry
	if err := json.Unmarshal(resp.Places, &entries); err != nil {
		return nil, &MalformedResponseError{Reason: "places is not a keyed map"}
	}

	places := make([]types.Place, 0, len(entries))
	for id, entry := range entries {
		places = append(places, types.Place{
			ID:       id,
			Name:     entry.Name,
			Category: nil,
			ImageURL: entry.ImageURL,
		})
	}

	return places, nil
}
