package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/purelyKai/Mosaic/config"
	"github.com/purelyKai/Mosaic/types"
)

// Client talks to the search/indexing backend. All calls are POST with JSON
// bodies; there are no retries at this layer, a failed call surfaces
// immediately.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg *config.SearchConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// post issues the request and returns the raw response body. A non-2xx
// status becomes an UpstreamError tagged with the step, carrying the
// upstream "message" field when the body has one.
func (c *Client) post(ctx context.Context, step, path string, body interface{}) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", step, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", step, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", step, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", step, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upErr := &UpstreamError{Step: step, StatusCode: resp.StatusCode}
		var failure struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(respBody, &failure); err == nil {
			upErr.Message = failure.Message
		}
		c.logger.Warn("search backend call failed",
			zap.String("step", step),
			zap.Int("status", resp.StatusCode),
			zap.String("message", upErr.Message))
		return nil, upErr
	}

	return respBody, nil
}

// WarmPlaces asks the backend to discover and index candidate places around
// the query point. The response body is ignored; the call only warms the
// server-side index.
func (c *Client) WarmPlaces(ctx context.Context, q types.GeoQuery) error {
	_, err := c.post(ctx, StepFindPlaces, "/find_places", q.RequestBody())
	return err
}

// FetchRadius fetches the places within the query radius. Ordering is
// backend-defined; callers must not depend on it being stable across calls.
func (c *Client) FetchRadius(ctx context.Context, q types.GeoQuery) ([]types.Place, error) {
	body, err := c.post(ctx, StepRadiusLocations, "/find_x_radius_locations", q.RequestBody())
	if err != nil {
		return nil, err
	}
	return ParsePlaces(body)
}

// Discover is the multi-step variant: warm the index first, then fetch the
// radius feed with the same query. Either step failing fails the whole
// operation, tagged by the step that broke.
func (c *Client) Discover(ctx context.Context, q types.GeoQuery) ([]types.Place, error) {
	if err := c.WarmPlaces(ctx, q); err != nil {
		return nil, err
	}
	return c.FetchRadius(ctx, q)
}

// GroupFeed generates a feed for a set of trip members. The backend has two
// historical response shapes: a keyed places map (parsed like a radius
// response) or a bare place-ID list (returned verbatim, never routed through
// the parser). The result is a tagged union so callers switch exhaustively.
func (c *Client) GroupFeed(ctx context.Context, userIDs []string, q types.GeoQuery) (*types.GroupFeed, error) {
	reqBody := map[string]interface{}{"user_ids": userIDs}
	for k, v := range q.RequestBody() {
		reqBody[k] = v
	}

	body, err := c.post(ctx, StepGroupFeed, "/generate_group_feed", reqBody)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Places   json.RawMessage `json:"places"`
		PlaceIDs []string        `json:"group place ids"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &MalformedResponseError{Reason: err.Error()}
	}

	if resp.PlaceIDs != nil {
		return &types.GroupFeed{Kind: types.GroupFeedIDs, PlaceIDs: resp.PlaceIDs}, nil
	}

	places, err := ParsePlaces(body)
	if err != nil {
		return nil, err
	}
	return &types.GroupFeed{Kind: types.GroupFeedPlaces, Places: places}, nil
}

// AddUser submits synthesized preference text for a user to the search
// backend's index.
func (c *Client) AddUser(ctx context.Context, userID, formResponses string) error {
	_, err := c.post(ctx, StepAddUser, "/add_user", map[string]string{
		"form_responses": formResponses,
		"userId":         userID,
	})
	if err != nil {
		return &SubmissionError{Err: err}
	}
	return nil
}

// UpdateUserProfile posts a like signal so the backend can fold the place
// into the user's taste profile.
func (c *Client) UpdateUserProfile(ctx context.Context, userID, placeID string) error {
	_, err := c.post(ctx, StepUpdateUserProfile, "/update_user_profile", map[string]string{
		"userId":  userID,
		"placeId": placeID,
	})
	return err
}
