package preferences

import (
	"context"

	"go.uber.org/zap"
)

// Submitter is the slice of the search client the pipeline needs.
type Submitter interface {
	AddUser(ctx context.Context, userID, formResponses string) error
}

// ProfileStore flags questionnaire completion in the relational store.
type ProfileStore interface {
	MarkQuestionnaireFilled(ctx context.Context, userID string) error
}

// Pipeline turns a free-form label selection into indexed preference text.
// The search-service call and the completion flag are deliberately not
// atomic: losing the flag is retryable later, losing the submitted text is
// not, so a flag failure never retroactively fails the submission.
type Pipeline struct {
	search   Submitter
	store    ProfileStore
	taxonomy Taxonomy
	logger   *zap.Logger
}

func NewPipeline(search Submitter, store ProfileStore, taxonomy Taxonomy, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		search:   search,
		store:    store,
		taxonomy: taxonomy,
		logger:   logger,
	}
}

// Submit synthesizes the preference sentences and posts them to the search
// backend, then flags the questionnaire as filled. The search call must
// succeed before the flag update is attempted.
func (p *Pipeline) Submit(ctx context.Context, userID string, selections []string) error {
	blob := p.taxonomy.SentencesText(selections)

	if err := p.search.AddUser(ctx, userID, blob); err != nil {
		return err
	}

	if err := p.store.MarkQuestionnaireFilled(ctx, userID); err != nil {
		p.logger.Error("preference text indexed but completion flag update failed",
			zap.String("userId", userID),
			zap.Error(err))
	}

	return nil
}
