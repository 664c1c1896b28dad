package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlacesKeyedMap(t *testing.T) {
	body := []byte(`{
		"places": {
			"p1": {"name": "Cafe X", "image_url": "http://img/x"},
			"p2": {"name": "Museum Y", "image_url": ""}
		},
		"message": "ok"
	}`)

	places, err := ParsePlaces(body)

	require.NoError(t, err)
	require.Len(t, places, 2)

	byID := make(map[string]string)
	for _, p := range places {
		assert.Nil(t, p.Category, "this backend carries no category data")
		byID[p.ID] = p.Name
	}
	assert.Equal(t, "Cafe X", byID["p1"])
	assert.Equal(t, "Museum Y", byID["p2"])
}

func TestParsePlacesEmptyMap(t *testing.T) {
	places, err := ParsePlaces([]byte(`{"places": {}}`))

	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestParsePlacesMissingField(t *testing.T) {
	var malformed *MalformedResponseError

	_, err := ParsePlaces([]byte(`{"message": "ok"}`))
	require.ErrorAs(t, err, &malformed)

	_, err = ParsePlaces([]byte(`{"places": null}`))
	require.ErrorAs(t, err, &malformed)
}

func TestParsePlacesWrongShape(t *testing.T) {
	var malformed *MalformedResponseError

	_, err := ParsePlaces([]byte(`{"places": ["p1", "p2"]}`))
	require.ErrorAs(t, err, &malformed)

	_, err = ParsePlaces([]byte(`not json`))
	require.ErrorAs(t, err, &malformed)
}
