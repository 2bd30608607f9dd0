package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findateacher/tutorhub/internal/domain/chat"
	"github.com/findateacher/tutorhub/internal/domain/request"
	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/domain/tutor"
	"github.com/findateacher/tutorhub/internal/domain/user"
)

func TestTutorRepository_NextApplicationID(t *testing.T) {
	ctx := context.Background()
	repo := NewTutorRepository()

	id, err := repo.NextApplicationID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T-001", id)

	require.NoError(t, repo.Create(ctx, &tutor.Tutor{ID: id, Name: "First"}))

	id, err = repo.NextApplicationID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T-002", id)
}

func TestTutorRepository_NextApplicationIDSkipsSeeded(t *testing.T) {
	ctx := context.Background()
	repo := NewTutorRepository()
	require.NoError(t, repo.Create(ctx, &tutor.Tutor{ID: "T-008", Name: "Seeded"}))

	id, err := repo.NextApplicationID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T-009", id)
}

func TestTutorRepository_GetAllPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewTutorRepository()
	for _, id := range []string{"T-003", "T-001", "T-002"} {
		require.NoError(t, repo.Create(ctx, &tutor.Tutor{ID: id}))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "T-003", all[0].ID)
	assert.Equal(t, "T-001", all[1].ID)
	assert.Equal(t, "T-002", all[2].ID)
}

func TestTutorRepository_DefensiveCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewTutorRepository()
	require.NoError(t, repo.Create(ctx, &tutor.Tutor{
		ID:       "T-001",
		Subjects: []string{"Mathematics"},
	}))

	got, err := repo.GetByID(ctx, "T-001")
	require.NoError(t, err)
	got.Subjects[0] = "mutated"

	again, err := repo.GetByID(ctx, "T-001")
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", again.Subjects[0])
}

func TestRequestRepository_GetAllNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestRepository()
	now := time.Now()

	require.NoError(t, repo.Create(ctx, &request.StudentRequest{ID: "old", StudentID: "S-001", PostedAt: now.Add(-time.Hour)}))
	require.NoError(t, repo.Create(ctx, &request.StudentRequest{ID: "new", StudentID: "S-002", PostedAt: now}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "new", all[0].ID)
	assert.Equal(t, "old", all[1].ID)
}

func TestChatRepository_PairUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewChatRepository()

	first, err := chat.NewSession("sess-1", "S-001", "T-001")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	// Same pair in the opposite order must be rejected.
	dup, err := chat.NewSession("sess-2", "T-001", "S-001")
	require.NoError(t, err)
	err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestChatRepository_FindByParticipantsIsUnordered(t *testing.T) {
	ctx := context.Background()
	repo := NewChatRepository()

	s, err := chat.NewSession("sess-1", "S-001", "T-001")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, s))

	found, err := repo.FindByParticipants(ctx, "T-001", "S-001")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", found.ID)

	_, err = repo.FindByParticipants(ctx, "S-001", "T-002")
	assert.ErrorIs(t, err, shared.ErrSessionNotFound)
}

func TestChatRepository_GetForUserSortsByActivity(t *testing.T) {
	ctx := context.Background()
	repo := NewChatRepository()
	now := time.Now()

	stale, err := chat.NewSession("stale", "S-001", "T-001")
	require.NoError(t, err)
	stale.UpdatedAt = now.Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, stale))

	fresh, err := chat.NewSession("fresh", "S-001", "T-002")
	require.NoError(t, err)
	fresh.UpdatedAt = now
	require.NoError(t, repo.Create(ctx, fresh))

	other, err := chat.NewSession("other", "S-002", "T-001")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, other))

	sessions, err := repo.GetForUser(ctx, "S-001")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "fresh", sessions[0].ID)
	assert.Equal(t, "stale", sessions[1].ID)
}

func TestUserRepository_EmailLookupIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	require.NoError(t, repo.Create(ctx, &user.User{ID: "S-001", Email: "Alex.M@example.com"}))

	got, err := repo.GetByEmail(ctx, "alex.m@EXAMPLE.com")
	require.NoError(t, err)
	assert.Equal(t, "S-001", got.ID)

	err = repo.Create(ctx, &user.User{ID: "S-002", Email: "ALEX.M@example.com"})
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestSeed_LoadsDemoDataset(t *testing.T) {
	ctx := context.Background()
	tutors := NewTutorRepository()
	users := NewUserRepository()
	requests := NewRequestRepository()

	require.NoError(t, Seed(ctx, tutors, users, requests))

	allTutors, err := tutors.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, allTutors, 8)

	approved, err := tutors.GetByStatus(ctx, tutor.StatusApproved)
	require.NoError(t, err)
	assert.Len(t, approved, 6)

	pending, err := tutors.GetByStatus(ctx, tutor.StatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	students, err := users.GetByRole(ctx, user.RoleStudent)
	require.NoError(t, err)
	assert.Len(t, students, 5)

	admin, err := users.GetByID(ctx, user.AdminID)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	allRequests, err := requests.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, allRequests, 3)
	assert.Equal(t, "req3", allRequests[0].ID)

	// Seeded ids must not collide with newly issued application ids.
	next, err := tutors.NextApplicationID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T-009", next)
}
