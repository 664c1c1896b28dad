package feed

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/purelyKai/Mosaic/models"
)

// ErrTripNotFound is the legitimate "no such trip" outcome from a resolver.
// The gate swallows it into an empty result rather than propagating it.
var ErrTripNotFound = errors.New("trip not found")

// TripResolver looks up a trip record by ID. Implementations return
// ErrTripNotFound when no record exists.
type TripResolver interface {
	ResolveTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
}

// GateState is the explicit lifecycle of a trip resolution.
type GateState int

const (
	GateIdle GateState = iota
	GateResolving
	GateResolved
	GateFailed
)

// Gate resolves a trip exactly once for the lifetime of a session. Resolving
// can only be entered from Idle, so re-invocations while a lookup is in
// flight wait on the first result instead of issuing another lookup.
//
// A resolver NotFound is a soft-fail: the gate settles to Resolved with a
// nil trip and the feed fetch it guards simply yields nothing.
type Gate struct {
	mu       sync.Mutex
	state    GateState
	tripID   uuid.UUID
	resolver TripResolver
	logger   *zap.Logger

	trip *models.Trip
	err  error
	done chan struct{}
}

func NewGate(tripID uuid.UUID, resolver TripResolver, logger *zap.Logger) *Gate {
	return &Gate{
		state:    GateIdle,
		tripID:   tripID,
		resolver: resolver,
		logger:   logger,
	}
}

func (g *Gate) State() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Resolve returns the trip, running the underlying lookup at most once.
// A nil trip with a nil error means the trip does not exist.
func (g *Gate) Resolve(ctx context.Context) (*models.Trip, error) {
	g.mu.Lock()

	switch g.state {
	case GateResolved:
		trip := g.trip
		g.mu.Unlock()
		return trip, nil
	case GateFailed:
		err := g.err
		g.mu.Unlock()
		return nil, err
	case GateResolving:
		done := g.done
		g.mu.Unlock()
		select {
		case <-done:
			return g.settled()
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	// Idle: this caller owns the lookup.
	g.state = GateResolving
	g.done = make(chan struct{})
	g.mu.Unlock()

	trip, err := g.resolver.ResolveTrip(ctx, g.tripID)

	g.mu.Lock()
	defer g.mu.Unlock()
	defer close(g.done)

	if errors.Is(err, ErrTripNotFound) {
		g.logger.Info("trip not found, feed will be empty", zap.String("tripId", g.tripID.String()))
		g.state = GateResolved
		g.trip = nil
		return nil, nil
	}
	if err != nil {
		g.state = GateFailed
		g.err = err
		return nil, err
	}

	g.state = GateResolved
	g.trip = trip
	return trip, nil
}

func (g *Gate) settled() (*models.Trip, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == GateFailed {
		return nil, g.err
	}
	return g.trip, nil
}
