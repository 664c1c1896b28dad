package types

import "encoding/json"

// PlaceEntry is one value of the keyed places map the search backend returns
// from /find_x_radius_locations and (in one historical shape) from
// /generate_group_feed.
type PlaceEntry struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// RadiusResponse is the success body of /find_x_radius_locations:
// {"places": {"<place_id>": {"name": ..., "image_url": ...}}}.
// Places is left as raw JSON so the parser can distinguish a missing field
// from an empty map.
type RadiusResponse struct {
	Places  json.RawMessage `json:"places"`
	Message string          `json:"message"`
}

// GroupFeedKind discriminates the two historical response shapes of
// /generate_group_feed.
type GroupFeedKind int

const (
	// GroupFeedPlaces means the backend returned a keyed places map.
	GroupFeedPlaces GroupFeedKind = iota
	// GroupFeedIDs means the backend returned a bare list of place IDs.
	GroupFeedIDs
)

// GroupFeed is the tagged result of a group feed fetch. Exactly one of
// Places or PlaceIDs is populated, according to Kind; callers switch on the
// discriminant instead of sniffing shapes.
type GroupFeed struct {
	Kind     GroupFeedKind `json:"kind"`
	Places   []Place       `json:"places,omitempty"`
	PlaceIDs []string      `json:"placeIds,omitempty"`
}
