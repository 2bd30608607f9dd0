package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/findateacher/tutorhub/internal/domain/chat"
	"github.com/findateacher/tutorhub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// START DIRECT CHAT COMMAND
// Пользователь открывает чат с собеседником напрямую (кнопка "Chat" на
// карточке). Сессия на пару одна: повторное открытие возвращает её же.
// ══════════════════════════════════════════════════════════════════════════════

// StartDirectChatCommand содержит пару участников.
type StartDirectChatCommand struct {
	// InitiatorID - кто открывает чат.
	InitiatorID string

	// PeerID - собеседник.
	PeerID string
}

// Validate проверяет корректность параметров.
func (c *StartDirectChatCommand) Validate() error {
	if c.InitiatorID == "" || c.PeerID == "" {
		return shared.NewDomainError("command", "StartDirectChat", shared.ErrValidation,
			"both participant ids are required")
	}
	if c.InitiatorID == c.PeerID {
		return shared.ErrSelfConversation
	}
	return nil
}

// StartDirectChatResult содержит найденную или созданную сессию.
type StartDirectChatResult struct {
	// SessionID - сессия пары.
	SessionID string `json:"sessionId"`

	// IsNew - true, если сессия создана этим вызовом.
	IsNew bool `json:"isNew"`
}

// StartDirectChatHandler обрабатывает открытие чата.
type StartDirectChatHandler struct {
	chatRepo chat.Repository
}

// NewStartDirectChatHandler создаёт новый обработчик.
func NewStartDirectChatHandler(chatRepo chat.Repository) *StartDirectChatHandler {
	return &StartDirectChatHandler{chatRepo: chatRepo}
}

// Handle находит или создаёт сессию пары. Системное приветствие при
// прямом открытии чата не добавляется.
func (h *StartDirectChatHandler) Handle(ctx context.Context, cmd StartDirectChatCommand) (*StartDirectChatResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if existing, err := h.chatRepo.FindByParticipants(ctx, cmd.InitiatorID, cmd.PeerID); err == nil {
		return &StartDirectChatResult{SessionID: existing.ID, IsNew: false}, nil
	}

	session, err := chat.NewSession(uuid.NewString(), cmd.InitiatorID, cmd.PeerID)
	if err != nil {
		return nil, shared.WrapError("command", "StartDirectChat", shared.ErrValidation,
			"cannot create session", err)
	}
	if err := h.chatRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &StartDirectChatResult{SessionID: session.ID, IsNew: true}, nil
}
