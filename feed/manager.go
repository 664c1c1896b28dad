package feed

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sessionKey struct {
	UserID uuid.UUID
	TripID uuid.UUID
}

// LikeLoader reads the viewer's persisted likes for a trip, so a new
// session starts from the durable state instead of an empty set.
type LikeLoader interface {
	LikedPlaceIDs(ctx context.Context, userID, tripID uuid.UUID) ([]string, error)
}

// Manager hands out feed sessions keyed by user and trip, so repeated
// requests from the same viewer reuse the already-resolved trip and the
// live selection set.
type Manager struct {
	resolver TripResolver
	fetcher  Fetcher
	likes    LikeLoader
	logger   *zap.Logger

	mu       sync.Mutex
	sessions map[sessionKey]*Session
}

func NewManager(resolver TripResolver, fetcher Fetcher, likes LikeLoader, logger *zap.Logger) *Manager {
	return &Manager{
		resolver: resolver,
		fetcher:  fetcher,
		likes:    likes,
		logger:   logger,
		sessions: make(map[sessionKey]*Session),
	}
}

// Session returns the live session for the user and trip, creating one on
// first use. A fresh session is seeded with the viewer's persisted likes;
// otherwise a toggle on an already-liked place would run in the wrong
// direction.
func (m *Manager) Session(ctx context.Context, userID, tripID uuid.UUID) *Session {
	key := sessionKey{UserID: userID, TripID: tripID}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[key]; ok && !s.Closed() {
		return s
	}

	gate := NewGate(tripID, m.resolver, m.logger)
	s := NewSession(gate, m.fetcher, m.logger)

	liked, err := m.likes.LikedPlaceIDs(ctx, userID, tripID)
	if err != nil {
		m.logger.Warn("could not load persisted likes for session",
			zap.String("userId", userID.String()),
			zap.String("tripId", tripID.String()),
			zap.Error(err))
	}
	s.selection.Seed(liked)

	m.sessions[key] = s
	return s
}

// Close ends the session for the user and trip, discarding its selection
// state.
func (m *Manager) Close(userID, tripID uuid.UUID) {
	key := sessionKey{UserID: userID, TripID: tripID}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[key]; ok {
		s.Close()
		delete(m.sessions, key)
	}
}
