package query

import (
	"context"
	"time"

	"github.com/findateacher/tutorhub/internal/domain/chat"
	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST SESSIONS QUERY
// Список чатов пользователя. Администратор видит все сессии платформы,
// остальные - только свои.
// ══════════════════════════════════════════════════════════════════════════════

// ListSessionsQuery содержит параметры выборки чатов.
type ListSessionsQuery struct {
	// UserID - чьи чаты запрашиваются.
	UserID string
}

// Validate проверяет корректность параметров.
func (q *ListSessionsQuery) Validate() error {
	if q.UserID == "" {
		return shared.NewDomainError("query", "ListSessions", shared.ErrValidation,
			"user_id is required")
	}
	return nil
}

// MessageDTO - сообщение в чате.
type MessageDTO struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionDTO - сессия чата.
type SessionDTO struct {
	ID                 string       `json:"id"`
	ParticipantIDs     [2]string    `json:"participantIds"`
	Messages           []MessageDTO `json:"messages"`
	LastMessagePreview string       `json:"lastMessagePreview,omitempty"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

// ListSessionsResult содержит чаты, отсортированные по свежести.
type ListSessionsResult struct {
	Sessions []SessionDTO `json:"sessions"`
	Total    int          `json:"total"`
}

// ListSessionsHandler обрабатывает выборку чатов.
type ListSessionsHandler struct {
	chatRepo chat.Repository
	userRepo user.Repository
}

// NewListSessionsHandler создаёт новый обработчик.
func NewListSessionsHandler(chatRepo chat.Repository, userRepo user.Repository) *ListSessionsHandler {
	return &ListSessionsHandler{chatRepo: chatRepo, userRepo: userRepo}
}

// Handle выполняет выборку.
func (h *ListSessionsHandler) Handle(ctx context.Context, query ListSessionsQuery) (*ListSessionsResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		sessions []*chat.Session
		err      error
	)
	if h.isAdmin(ctx, query.UserID) {
		sessions, err = h.chatRepo.GetAll(ctx)
	} else {
		sessions, err = h.chatRepo.GetForUser(ctx, query.UserID)
	}
	if err != nil {
		return nil, shared.WrapError("query", "ListSessions", shared.ErrNotFound,
			"failed to load sessions", err)
	}

	dtos := make([]SessionDTO, 0, len(sessions))
	for _, s := range sessions {
		dtos = append(dtos, newSessionDTO(s))
	}

	return &ListSessionsResult{Sessions: dtos, Total: len(dtos)}, nil
}

// isAdmin определяет, является ли пользователь администратором.
// Неизвестный пользователь трактуется как обычный участник.
func (h *ListSessionsHandler) isAdmin(ctx context.Context, userID string) bool {
	u, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false
	}
	return u.IsAdmin()
}

// newSessionDTO строит DTO из доменной сущности.
func newSessionDTO(s *chat.Session) SessionDTO {
	messages := make([]MessageDTO, 0, len(s.Messages))
	for _, m := range s.Messages {
		messages = append(messages, MessageDTO{
			ID:        m.ID,
			SenderID:  m.SenderID,
			Text:      m.Text,
			Timestamp: m.Timestamp,
		})
	}
	return SessionDTO{
		ID:                 s.ID,
		ParticipantIDs:     s.ParticipantIDs,
		Messages:           messages,
		LastMessagePreview: s.LastMessagePreview,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}
