package types

import "strconv"

// CategoryType is the fixed place category set used across the app.
type CategoryType string

const (
	CategoryFood          CategoryType = "food"
	CategoryDrinks        CategoryType = "drinks"
	CategoryEntertainment CategoryType = "entertainment"
	CategoryNature        CategoryType = "nature"
)

// ValidCategory reports whether value names a known category.
func ValidCategory(value string) bool {
	switch CategoryType(value) {
	case CategoryFood, CategoryDrinks, CategoryEntertainment, CategoryNature:
		return true
	}
	return false
}

// Place is a single feed entry. IDs are stable across repeated fetches of the
// same underlying entity, so selection state keyed by ID stays valid.
// Category is nil when the search backend supplies none.
type Place struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category *CategoryType `json:"category"`
	ImageURL string        `json:"imageUrl"`
}

// GeoQuery describes the geographic scope of a feed fetch. Immutable once
// constructed; owned by the caller issuing the fetch.
type GeoQuery struct {
	Latitude    float64
	Longitude   float64
	RadiusMiles float64
}

// RequestBody renders the query the way the search backend expects it:
// lat/long/radius as strings.
func (q GeoQuery) RequestBody() map[string]string {
	return map[string]string{
		"lat":    strconv.FormatFloat(q.Latitude, 'f', -1, 64),
		"long":   strconv.FormatFloat(q.Longitude, 'f', -1, 64),
		"radius": strconv.FormatFloat(q.RadiusMiles, 'f', -1, 64),
	}
}
