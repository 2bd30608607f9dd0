package command

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/findateacher/tutorhub/internal/domain/chat"
	"github.com/findateacher/tutorhub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// SEND MESSAGE COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// SendMessageCommand содержит параметры отправки сообщения.
type SendMessageCommand struct {
	// SessionID - сессия, в которую отправляется сообщение.
	SessionID string

	// SenderID - автор. Обязан быть участником сессии.
	SenderID string

	// Text - текст сообщения.
	Text string
}

// Validate проверяет корректность параметров.
func (c *SendMessageCommand) Validate() error {
	if c.SessionID == "" {
		return shared.NewDomainError("command", "SendMessage", shared.ErrValidation,
			"session_id is required")
	}
	if c.SenderID == "" {
		return shared.NewDomainError("command", "SendMessage", shared.ErrValidation,
			"sender_id is required")
	}
	if strings.TrimSpace(c.Text) == "" {
		return shared.NewDomainError("command", "SendMessage", shared.ErrValidation,
			"message text is required")
	}
	return nil
}

// SendMessageResult содержит добавленное сообщение.
type SendMessageResult struct {
	MessageID string    `json:"messageId"`
	SessionID string    `json:"sessionId"`
	Timestamp time.Time `json:"timestamp"`
}

// SendMessageHandler обрабатывает отправку сообщений.
type SendMessageHandler struct {
	chatRepo  chat.Repository
	publisher shared.EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewSendMessageHandler создаёт новый обработчик.
func NewSendMessageHandler(chatRepo chat.Repository, publisher shared.EventPublisher, logger *zap.Logger) *SendMessageHandler {
	if publisher == nil {
		publisher = shared.NoopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SendMessageHandler{
		chatRepo:  chatRepo,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Handle добавляет сообщение в сессию.
func (h *SendMessageHandler) Handle(ctx context.Context, cmd SendMessageCommand) (*SendMessageResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	session, err := h.chatRepo.GetByID(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	msg := chat.Message{
		ID:        uuid.NewString(),
		SenderID:  cmd.SenderID,
		Text:      cmd.Text,
		Timestamp: h.now(),
	}
	if err := session.Append(msg); err != nil {
		if errors.Is(err, chat.ErrSenderNotParticipant) {
			return nil, shared.ErrNotParticipant
		}
		return nil, shared.WrapError("command", "SendMessage", shared.ErrValidation,
			"cannot append message", err)
	}

	if err := h.chatRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	event := shared.MessageSentEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventMessageSent, session.ID),
		SenderID:  cmd.SenderID,
	}
	if err := h.publisher.Publish(ctx, event); err != nil {
		h.logger.Warn("failed to publish message sent event", zap.Error(err))
	}

	return &SendMessageResult{
		MessageID: msg.ID,
		SessionID: session.ID,
		Timestamp: msg.Timestamp,
	}, nil
}
