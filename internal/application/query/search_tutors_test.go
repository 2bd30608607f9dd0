package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/domain/tutor"
	"github.com/findateacher/tutorhub/internal/infrastructure/persistence/memory"
)

func seededTutorRepo(t *testing.T) *memory.TutorRepository {
	t.Helper()
	ctx := context.Background()
	tutors := memory.NewTutorRepository()
	users := memory.NewUserRepository()
	requests := memory.NewRequestRepository()
	require.NoError(t, memory.Seed(ctx, tutors, users, requests))
	return tutors
}

func resultIDs(result *SearchTutorsResult) []string {
	ids := make([]string, 0, len(result.Tutors))
	for _, d := range result.Tutors {
		ids = append(ids, d.ID)
	}
	return ids
}

func TestSearchTutors_NoFiltersShowsOnlyApproved(t *testing.T) {
	handler := NewSearchTutorsHandler(seededTutorRepo(t))

	result, err := handler.Handle(context.Background(), SearchTutorsQuery{})
	require.NoError(t, err)

	assert.Equal(t, 6, result.Total)
	assert.NotContains(t, resultIDs(result), "T-007")
	assert.NotContains(t, resultIDs(result), "T-008")
}

func TestSearchTutors_EmptyQueryOrdersByRating(t *testing.T) {
	handler := NewSearchTutorsHandler(seededTutorRepo(t))

	result, err := handler.Handle(context.Background(), SearchTutorsQuery{})
	require.NoError(t, err)

	// 5.0 Michael, then two 4.9 tutors by review count (Sarah 124 > Jessica 78).
	assert.Equal(t, []string{"T-004", "T-001", "T-005", "T-003", "T-002", "T-006"}, resultIDs(result))
}

func TestSearchTutors_StructuredFilters(t *testing.T) {
	handler := NewSearchTutorsHandler(seededTutorRepo(t))

	result, err := handler.Handle(context.Background(), SearchTutorsQuery{
		Subject: "Piano",
		Mode:    "offline",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"T-005"}, resultIDs(result))
}

func TestSearchTutors_NonNumericPriceFilterIsIgnored(t *testing.T) {
	handler := NewSearchTutorsHandler(seededTutorRepo(t))

	strict, err := handler.Handle(context.Background(), SearchTutorsQuery{PriceMax: "35"})
	require.NoError(t, err)
	loose, err := handler.Handle(context.Background(), SearchTutorsQuery{PriceMax: "cheap"})
	require.NoError(t, err)

	assert.Less(t, strict.Total, loose.Total)
	assert.Equal(t, 6, loose.Total)
}

func TestSearchTutors_TextQueryRanksAndBadges(t *testing.T) {
	handler := NewSearchTutorsHandler(seededTutorRepo(t))

	result, err := handler.Handle(context.Background(), SearchTutorsQuery{Query: "piano"})
	require.NoError(t, err)

	require.NotEmpty(t, result.Tutors)
	assert.Equal(t, "T-005", result.Tutors[0].ID)
	assert.Equal(t, string(tutor.BadgeSubjectMatch), result.Tutors[0].Badge)
}

func TestSearchTutors_SmartMatchOverrideDictatesOrder(t *testing.T) {
	handler := NewSearchTutorsHandler(seededTutorRepo(t))

	result, err := handler.Handle(context.Background(), SearchTutorsQuery{
		SmartMatchActive: true,
		SmartMatchIDs:    []string{"T-006", "T-001", "T-999", "T-007"},
	})
	require.NoError(t, err)

	// Unknown and unapproved ids are dropped silently, order is preserved.
	assert.Equal(t, []string{"T-006", "T-001"}, resultIDs(result))
	assert.True(t, result.SmartMatchActive)
	for _, d := range result.Tutors {
		assert.Equal(t, string(tutor.BadgeAIRecommended), d.Badge)
	}
}

func TestSearchTutors_InvalidModeIsRejected(t *testing.T) {
	handler := NewSearchTutorsHandler(seededTutorRepo(t))

	_, err := handler.Handle(context.Background(), SearchTutorsQuery{Mode: "hybrid"})
	assert.ErrorIs(t, err, shared.ErrValidation)
}
