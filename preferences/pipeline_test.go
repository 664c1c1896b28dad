package preferences

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSubmitter struct {
	err      error
	userID   string
	received string
	calls    int
}

func (f *fakeSubmitter) AddUser(ctx context.Context, userID, formResponses string) error {
	f.calls++
	f.userID = userID
	f.received = formResponses
	return f.err
}

type fakeProfileStore struct {
	err    error
	userID string
	calls  int
}

func (f *fakeProfileStore) MarkQuestionnaireFilled(ctx context.Context, userID string) error {
	f.calls++
	f.userID = userID
	return f.err
}

func TestSubmitPostsSentencesThenFlagsCompletion(t *testing.T) {
	submitter := &fakeSubmitter{}
	store := &fakeProfileStore{}
	p := NewPipeline(submitter, store, Default(), zap.NewNop())

	err := p.Submit(context.Background(), "user-1", []string{"Vegan", "Bars"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", submitter.userID)
	assert.Equal(t,
		"User has Dietary preferences of Vegan. User has Dining Styles & Venues preferences of Bars.",
		submitter.received)
	assert.Equal(t, 1, store.calls)
	assert.Equal(t, "user-1", store.userID)
}

func TestSubmitFailureSkipsFlagUpdate(t *testing.T) {
	submitter := &fakeSubmitter{err: errors.New("index unavailable")}
	store := &fakeProfileStore{}
	p := NewPipeline(submitter, store, Default(), zap.NewNop())

	err := p.Submit(context.Background(), "user-1", []string{"Vegan"})

	require.Error(t, err)
	assert.Equal(t, 0, store.calls, "flag update must not run when the search call failed")
}

func TestFlagUpdateFailureDoesNotFailSubmission(t *testing.T) {
	submitter := &fakeSubmitter{}
	store := &fakeProfileStore{err: errors.New("db down")}
	p := NewPipeline(submitter, store, Default(), zap.NewNop())

	err := p.Submit(context.Background(), "user-1", []string{"Vegan"})

	assert.NoError(t, err, "losing the flag is recoverable; the submission already succeeded")
	assert.Equal(t, 1, submitter.calls)
}
