package search

import "fmt"

// Step names identify which backend call produced an error, which matters
// for the multi-step discovery flow.
const (
	StepFindPlaces        = "find_places"
	StepRadiusLocations   = "find_x_radius_locations"
	StepGroupFeed         = "generate_group_feed"
	StepAddUser           = "add_user"
	StepUpdateUserProfile = "update_user_profile"
)

// UpstreamError is a non-success HTTP status from the search backend,
// optionally carrying the upstream's own message.
type UpstreamError struct {
	Step       string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("search backend %s failed: %s", e.Step, e.Message)
	}
	return fmt.Sprintf("search backend %s failed: status %d", e.Step, e.StatusCode)
}

// MalformedResponseError means the parser could not find the expected shape
// in an otherwise successful response.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed search response: %s", e.Reason)
}

// SubmissionError means a preference submission did not reach the search
// backend. The caller should surface it so the user can retry.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("preference submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
