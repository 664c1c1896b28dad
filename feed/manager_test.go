package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/purelyKai/Mosaic/models"
)

type fakeLikeLoader struct {
	ids   []string
	err   error
	calls int
}

func (f *fakeLikeLoader) LikedPlaceIDs(ctx context.Context, userID, tripID uuid.UUID) ([]string, error) {
	f.calls++
	return f.ids, f.err
}

func newTestManager(likes LikeLoader) *Manager {
	resolver := &fakeResolver{trip: &models.Trip{ID: uuid.New()}}
	return NewManager(resolver, &fakeFetcher{}, likes, zap.NewNop())
}

func TestSessionSeedsPersistedLikes(t *testing.T) {
	m := newTestManager(&fakeLikeLoader{ids: []string{"p1", "p2"}})

	s := m.Session(context.Background(), uuid.New(), uuid.New())

	assert.True(t, s.Selection().IsSelected("p1"))
	assert.True(t, s.Selection().IsSelected("p2"))
	assert.False(t, s.Selection().Toggle("p1"), "toggling a persisted like must unlike, not re-like")
}

func TestRecreatedSessionReseedsLikes(t *testing.T) {
	loader := &fakeLikeLoader{ids: []string{"p1"}}
	m := newTestManager(loader)
	userID, tripID := uuid.New(), uuid.New()

	first := m.Session(context.Background(), userID, tripID)
	require.True(t, first.Selection().IsSelected("p1"))
	m.Close(userID, tripID)

	second := m.Session(context.Background(), userID, tripID)
	require.NotSame(t, first, second)
	assert.True(t, second.Selection().IsSelected("p1"),
		"a new session must pick up likes persisted by the previous one")
	assert.Equal(t, 2, loader.calls)
}

func TestLiveSessionIsReusedWithoutReloading(t *testing.T) {
	loader := &fakeLikeLoader{}
	m := newTestManager(loader)
	userID, tripID := uuid.New(), uuid.New()

	first := m.Session(context.Background(), userID, tripID)
	second := m.Session(context.Background(), userID, tripID)

	assert.Same(t, first, second)
	assert.Equal(t, 1, loader.calls)
}

func TestSeedFailureStartsEmpty(t *testing.T) {
	m := newTestManager(&fakeLikeLoader{err: errors.New("db down")})

	s := m.Session(context.Background(), uuid.New(), uuid.New())

	assert.False(t, s.Selection().IsSelected("p1"))
	assert.Equal(t, 0, s.Selection().Len())
}
