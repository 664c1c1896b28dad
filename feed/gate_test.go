package feed

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/purelyKai/Mosaic/models"
)

type fakeResolver struct {
	trip    *models.Trip
	err     error
	calls   atomic.Int32
	entered chan struct{}
	release chan struct{}
}

func (f *fakeResolver) ResolveTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	if f.calls.Add(1) == 1 && f.entered != nil {
		close(f.entered)
	}
	if f.release != nil {
		<-f.release
	}
	return f.trip, f.err
}

func TestResolveCachesResult(t *testing.T) {
	trip := &models.Trip{ID: uuid.New(), Name: "Lisbon"}
	resolver := &fakeResolver{trip: trip}
	g := NewGate(trip.ID, resolver, zap.NewNop())

	got, err := g.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, trip, got)
	assert.Equal(t, GateResolved, g.State())

	got, err = g.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, trip, got)
	assert.Equal(t, int32(1), resolver.calls.Load(), "second resolve must reuse the cached trip")
}

func TestConcurrentResolvesShareOneLookup(t *testing.T) {
	trip := &models.Trip{ID: uuid.New()}
	resolver := &fakeResolver{trip: trip, release: make(chan struct{})}
	g := NewGate(trip.ID, resolver, zap.NewNop())

	const waiters = 8
	var wg sync.WaitGroup
	results := make([]*models.Trip, waiters)
	errs := make([]error, waiters)

	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = g.Resolve(context.Background())
		}(i)
	}

	close(resolver.release)
	wg.Wait()

	for i := 0; i < waiters; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, trip, results[i])
	}
	assert.Equal(t, int32(1), resolver.calls.Load())
}

func TestNotFoundSettlesAsEmptyResult(t *testing.T) {
	resolver := &fakeResolver{err: ErrTripNotFound}
	g := NewGate(uuid.New(), resolver, zap.NewNop())

	trip, err := g.Resolve(context.Background())

	require.NoError(t, err, "a missing trip is not an error")
	assert.Nil(t, trip)
	assert.Equal(t, GateResolved, g.State())
}

func TestLookupFailureSticks(t *testing.T) {
	boom := errors.New("connection refused")
	resolver := &fakeResolver{err: boom}
	g := NewGate(uuid.New(), resolver, zap.NewNop())

	_, err := g.Resolve(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, GateFailed, g.State())

	_, err = g.Resolve(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), resolver.calls.Load(), "a failed gate must not retry")
}

func TestWaiterHonorsContextCancellation(t *testing.T) {
	resolver := &fakeResolver{
		trip:    &models.Trip{},
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	g := NewGate(uuid.New(), resolver, zap.NewNop())

	go g.Resolve(context.Background())
	<-resolver.entered

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The owner is still blocked inside the resolver, so this call waits
	// and must give up when its own context is done.
	_, err := g.Resolve(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	close(resolver.release)
}
