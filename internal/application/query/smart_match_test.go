package query

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/domain/tutor"
)

// fakeMatcher is a controllable stand-in for the AI adapter.
type fakeMatcher struct {
	ids       []string
	reasoning string
	err       error

	mu    sync.Mutex
	calls int
	seen  []*tutor.Tutor
	block chan struct{}
}

func (f *fakeMatcher) SmartMatch(ctx context.Context, query string, candidates []*tutor.Tutor) ([]string, string, error) {
	f.mu.Lock()
	f.calls++
	f.seen = candidates
	f.mu.Unlock()

	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, "", ctx.Err()
		}
	}
	return f.ids, f.reasoning, f.err
}

func TestSmartMatch_ReturnsAdapterRecommendation(t *testing.T) {
	matcher := &fakeMatcher{
		ids:       []string{"T-004", "T-001"},
		reasoning: "Both teach advanced mathematics.",
	}
	handler := NewSmartMatchHandler(seededTutorRepo(t), matcher, time.Second, zap.NewNop())

	result, err := handler.Handle(context.Background(), SmartMatchQuery{Query: "advanced math"})
	require.NoError(t, err)
	assert.Equal(t, []string{"T-004", "T-001"}, result.RecommendedTutorIDs)
	assert.Equal(t, "Both teach advanced mathematics.", result.Reasoning)
}

func TestSmartMatch_AdapterSeesOnlyApprovedCandidates(t *testing.T) {
	matcher := &fakeMatcher{}
	handler := NewSmartMatchHandler(seededTutorRepo(t), matcher, time.Second, zap.NewNop())

	_, err := handler.Handle(context.Background(), SmartMatchQuery{Query: "math"})
	require.NoError(t, err)

	require.Len(t, matcher.seen, 6)
	for _, c := range matcher.seen {
		assert.NotEqual(t, "T-007", c.ID)
		assert.NotEqual(t, "T-008", c.ID)
	}
}

func TestSmartMatch_AdapterFailureBecomesFallback(t *testing.T) {
	matcher := &fakeMatcher{err: errors.New("api unavailable")}
	handler := NewSmartMatchHandler(seededTutorRepo(t), matcher, time.Second, zap.NewNop())

	result, err := handler.Handle(context.Background(), SmartMatchQuery{Query: "math"})
	require.NoError(t, err)
	assert.Empty(t, result.RecommendedTutorIDs)
	assert.NotNil(t, result.RecommendedTutorIDs)
	assert.Equal(t, FallbackReasoning, result.Reasoning)
}

func TestSmartMatch_EmptyQueryIsRejected(t *testing.T) {
	handler := NewSmartMatchHandler(seededTutorRepo(t), &fakeMatcher{}, time.Second, zap.NewNop())

	_, err := handler.Handle(context.Background(), SmartMatchQuery{Query: "   "})
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestSmartMatch_SecondConcurrentCallIsRejected(t *testing.T) {
	matcher := &fakeMatcher{block: make(chan struct{})}
	handler := NewSmartMatchHandler(seededTutorRepo(t), matcher, time.Second, zap.NewNop())

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_, _ = handler.Handle(context.Background(), SmartMatchQuery{Query: "math"})
	}()

	// Wait for the first call to reach the adapter.
	require.Eventually(t, func() bool {
		matcher.mu.Lock()
		defer matcher.mu.Unlock()
		return matcher.calls == 1
	}, time.Second, time.Millisecond)

	_, err := handler.Handle(context.Background(), SmartMatchQuery{Query: "science"})
	assert.ErrorIs(t, err, ErrSmartMatchInFlight)

	close(matcher.block)
	<-firstDone

	// After the first call finishes the handler accepts new ones.
	_, err = handler.Handle(context.Background(), SmartMatchQuery{Query: "science"})
	assert.NoError(t, err)
}

func TestSmartMatch_AdapterTimeoutBecomesFallback(t *testing.T) {
	matcher := &fakeMatcher{block: make(chan struct{})}
	handler := NewSmartMatchHandler(seededTutorRepo(t), matcher, 10*time.Millisecond, zap.NewNop())

	result, err := handler.Handle(context.Background(), SmartMatchQuery{Query: "math"})
	require.NoError(t, err)
	assert.Empty(t, result.RecommendedTutorIDs)
	assert.Equal(t, FallbackReasoning, result.Reasoning)
}
