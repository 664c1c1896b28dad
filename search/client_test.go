package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/purelyKai/Mosaic/config"
	"github.com/purelyKai/Mosaic/types"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(&config.SearchConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, zap.NewNop())
	return client
}

func TestFetchRadiusSendsStringCoordinates(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"places": {"p1": {"name": "Cafe X", "image_url": "http://img/x"}}}`))
	}))

	places, err := client.FetchRadius(context.Background(), types.GeoQuery{
		Latitude:    38.72,
		Longitude:   -9.14,
		RadiusMiles: 15,
	})

	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "p1", places[0].ID)
	assert.Equal(t, "/find_x_radius_locations", gotPath)
	assert.Equal(t, map[string]string{"lat": "38.72", "long": "-9.14", "radius": "15"}, gotBody)
}

func TestUpstreamFailureCarriesStepAndMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "index rebuild in progress"}`))
	}))

	_, err := client.FetchRadius(context.Background(), types.GeoQuery{})

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, StepRadiusLocations, upErr.Step)
	assert.Equal(t, http.StatusInternalServerError, upErr.StatusCode)
	assert.Equal(t, "index rebuild in progress", upErr.Message)
}

func TestDiscoverTagsFailureWithBrokenStep(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/find_places" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"places": {}}`))
	}))

	_, err := client.Discover(context.Background(), types.GeoQuery{})

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, StepFindPlaces, upErr.Step)
}

func TestDiscoverWarmsThenFetches(t *testing.T) {
	var paths []string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"places": {}}`))
	}))

	_, err := client.Discover(context.Background(), types.GeoQuery{})

	require.NoError(t, err)
	assert.Equal(t, []string{"/find_places", "/find_x_radius_locations"}, paths)
}

func TestGroupFeedIDListShape(t *testing.T) {
	var gotBody map[string]interface{}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"group place ids": ["p3", "p1", "p2"]}`))
	}))

	feed, err := client.GroupFeed(context.Background(), []string{"u1", "u2"}, types.GeoQuery{RadiusMiles: 5})

	require.NoError(t, err)
	assert.Equal(t, types.GroupFeedIDs, feed.Kind)
	assert.Equal(t, []string{"p3", "p1", "p2"}, feed.PlaceIDs, "ID order is backend-chosen and must survive verbatim")
	assert.Equal(t, []interface{}{"u1", "u2"}, gotBody["user_ids"])
	assert.Equal(t, "5", gotBody["radius"])
}

func TestGroupFeedPlacesShape(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"places": {"p1": {"name": "Cafe X", "image_url": ""}}}`))
	}))

	feed, err := client.GroupFeed(context.Background(), []string{"u1"}, types.GeoQuery{})

	require.NoError(t, err)
	assert.Equal(t, types.GroupFeedPlaces, feed.Kind)
	require.Len(t, feed.Places, 1)
	assert.Equal(t, "Cafe X", feed.Places[0].Name)
}

func TestGroupFeedNeitherShape(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "ok"}`))
	}))

	_, err := client.GroupFeed(context.Background(), []string{"u1"}, types.GeoQuery{})

	var malformed *MalformedResponseError
	assert.ErrorAs(t, err, &malformed)
}

func TestAddUserWrapsFailureAsSubmissionError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	err := client.AddUser(context.Background(), "u1", "User has Dietary preferences of Vegan.")

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	var upErr *UpstreamError
	assert.ErrorAs(t, err, &upErr, "the upstream cause stays reachable through the wrapper")
	assert.Equal(t, StepAddUser, upErr.Step)
}

func TestAddUserSendsFormResponses(t *testing.T) {
	var gotBody map[string]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"message": "user added"}`))
	}))

	err := client.AddUser(context.Background(), "u1", "User has Dietary preferences of Vegan.")

	require.NoError(t, err)
	assert.Equal(t, "u1", gotBody["userId"])
	assert.Equal(t, "User has Dietary preferences of Vegan.", gotBody["form_responses"])
}
