package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCategory(t *testing.T) {
	for _, category := range []CategoryType{CategoryFood, CategoryDrinks, CategoryEntertainment, CategoryNature} {
		assert.True(t, ValidCategory(string(category)), string(category))
	}

	assert.False(t, ValidCategory("shopping"))
	assert.False(t, ValidCategory("Food"), "categories are lowercase")
	assert.False(t, ValidCategory(""))
}

func TestGeoQueryRequestBodyRendersStrings(t *testing.T) {
	q := GeoQuery{Latitude: 38.72, Longitude: -9.14, RadiusMiles: 15}

	assert.Equal(t, map[string]string{
		"lat":    "38.72",
		"long":   "-9.14",
		"radius": "15",
	}, q.RequestBody())
}
