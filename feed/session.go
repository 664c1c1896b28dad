package feed

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/purelyKai/Mosaic/types"
)

// ErrSessionClosed is returned when a fetch completes after the owning
// session has been closed. The late response is dropped instead of mutating
// dead state.
var ErrSessionClosed = errors.New("feed session closed")

// Fetcher is the slice of the search client the session needs.
type Fetcher interface {
	FetchRadius(ctx context.Context, q types.GeoQuery) ([]types.Place, error)
}

// AnnotatedPlace is a feed entry decorated with the viewer's selection state.
type AnnotatedPlace struct {
	types.Place
	Liked bool `json:"liked"`
}

// Session owns the feed state for one user viewing one trip: the one-shot
// trip gate, the selection set, and the last fetched feed. It mirrors a
// screen session on the client; closing it guards against late responses.
type Session struct {
	gate      *Gate
	selection *SelectionStore
	fetcher   Fetcher
	logger    *zap.Logger

	mu     sync.Mutex
	closed bool
	places []types.Place
}

func NewSession(gate *Gate, fetcher Fetcher, logger *zap.Logger) *Session {
	return &Session{
		gate:      gate,
		selection: NewSelectionStore(),
		fetcher:   fetcher,
		logger:    logger,
	}
}

// Selection exposes the session's like set.
func (s *Session) Selection() *SelectionStore {
	return s.selection
}

// Feed resolves the trip (at most one lookup per session) and fetches the
// place feed scoped to it. A missing trip yields an empty feed, not an
// error. Fetch failures propagate so the caller can message the user.
func (s *Session) Feed(ctx context.Context) ([]AnnotatedPlace, error) {
	trip, err := s.gate.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return []AnnotatedPlace{}, nil
	}

	q := types.GeoQuery{
		Latitude:    trip.Latitude,
		Longitude:   trip.Longitude,
		RadiusMiles: trip.RadiusMiles,
	}

	places, err := s.fetcher.FetchRadius(ctx, q)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.logger.Debug("dropping feed fetched after session close")
		return nil, ErrSessionClosed
	}
	s.places = places
	s.mu.Unlock()

	return s.annotate(places), nil
}

// Places returns the last successfully fetched feed, annotated with current
// selection state.
func (s *Session) Places() []AnnotatedPlace {
	s.mu.Lock()
	places := s.places
	s.mu.Unlock()
	return s.annotate(places)
}

func (s *Session) annotate(places []types.Place) []AnnotatedPlace {
	out := make([]AnnotatedPlace, 0, len(places))
	for _, p := range places {
		out = append(out, AnnotatedPlace{Place: p, Liked: s.selection.IsSelected(p.ID)})
	}
	return out
}

// Close marks the session dead. In-flight fetches are not cancelled, but
// their results no longer land anywhere.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.places = nil
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
