package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findateacher/tutorhub/internal/domain/chat"
	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/domain/user"
	"github.com/findateacher/tutorhub/internal/infrastructure/persistence/memory"
)

func TestGetTutor_HidesUnapprovedFromPublic(t *testing.T) {
	handler := NewGetTutorHandler(seededTutorRepo(t))
	ctx := context.Background()

	dto, err := handler.Handle(ctx, GetTutorQuery{TutorID: "T-001"})
	require.NoError(t, err)
	assert.Equal(t, "Sarah Jenkins", dto.Name)

	_, err = handler.Handle(ctx, GetTutorQuery{TutorID: "T-007"})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	dto, err = handler.Handle(ctx, GetTutorQuery{TutorID: "T-007", IncludeUnapproved: true})
	require.NoError(t, err)
	assert.Equal(t, "Pending Paul", dto.Name)
}

func TestGetTutor_UnknownID(t *testing.T) {
	handler := NewGetTutorHandler(seededTutorRepo(t))

	_, err := handler.Handle(context.Background(), GetTutorQuery{TutorID: "T-999"})
	assert.ErrorIs(t, err, shared.ErrTutorNotFound)
}

func TestListRequests_AdminBoardAndStudentView(t *testing.T) {
	ctx := context.Background()
	requests := memory.NewRequestRepository()
	require.NoError(t, memory.Seed(ctx, memory.NewTutorRepository(), memory.NewUserRepository(), requests))

	handler := NewListRequestsHandler(requests)

	board, err := handler.Handle(ctx, ListRequestsQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, board.Total)
	assert.Equal(t, "req3", board.Requests[0].ID)

	own, err := handler.Handle(ctx, ListRequestsQuery{StudentID: "S-001"})
	require.NoError(t, err)
	require.Equal(t, 1, own.Total)
	assert.Equal(t, "req1", own.Requests[0].ID)

	pending, err := handler.Handle(ctx, ListRequestsQuery{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, 2, pending.Total)

	_, err = handler.Handle(ctx, ListRequestsQuery{Status: "open"})
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestListSessions_VisibilityRules(t *testing.T) {
	ctx := context.Background()
	chats := memory.NewChatRepository()
	users := memory.NewUserRepository()
	require.NoError(t, memory.Seed(ctx, memory.NewTutorRepository(), users, memory.NewRequestRepository()))

	s1, err := chat.NewSession("sess-1", "S-001", "T-001")
	require.NoError(t, err)
	require.NoError(t, chats.Create(ctx, s1))
	s2, err := chat.NewSession("sess-2", "S-002", "T-005")
	require.NoError(t, err)
	require.NoError(t, chats.Create(ctx, s2))

	handler := NewListSessionsHandler(chats, users)

	student, err := handler.Handle(ctx, ListSessionsQuery{UserID: "S-001"})
	require.NoError(t, err)
	require.Equal(t, 1, student.Total)
	assert.Equal(t, "sess-1", student.Sessions[0].ID)

	admin, err := handler.Handle(ctx, ListSessionsQuery{UserID: user.AdminID})
	require.NoError(t, err)
	assert.Equal(t, 2, admin.Total)

	stranger, err := handler.Handle(ctx, ListSessionsQuery{UserID: "S-005"})
	require.NoError(t, err)
	assert.Equal(t, 0, stranger.Total)

	_, err = handler.Handle(ctx, ListSessionsQuery{})
	assert.ErrorIs(t, err, shared.ErrValidation)
}
