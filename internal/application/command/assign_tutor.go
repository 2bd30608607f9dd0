// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/findateacher/tutorhub/internal/domain/chat"
	"github.com/findateacher/tutorhub/internal/domain/request"
	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/domain/tutor"
	"github.com/findateacher/tutorhub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// ASSIGN TUTOR COMMAND
// Это КЛЮЧЕВАЯ команда проекта: администратор назначает репетитора на
// заявку студента. Три эффекта как единое целое: заявка переходит в
// matched, для пары {студент, репетитор} находится или создаётся
// чат-сессия, новая сессия получает системное приветствие.
// ══════════════════════════════════════════════════════════════════════════════

// MatchedSystemMessage - текст системного приветствия в новой сессии.
const MatchedSystemMessage = "You have been matched! You can now start chatting."

// AssignTutorCommand содержит параметры назначения.
type AssignTutorCommand struct {
	// RequestID - заявка студента.
	RequestID string

	// TutorID - назначаемый репетитор.
	TutorID string
}

// Validate проверяет корректность параметров.
func (c *AssignTutorCommand) Validate() error {
	if c.RequestID == "" {
		return shared.NewDomainError("command", "AssignTutor", shared.ErrValidation,
			"request_id is required")
	}
	if c.TutorID == "" {
		return shared.NewDomainError("command", "AssignTutor", shared.ErrValidation,
			"tutor_id is required")
	}
	return nil
}

// AssignTutorResult описывает применённые эффекты.
type AssignTutorResult struct {
	// RequestID - обработанная заявка.
	RequestID string `json:"requestId"`

	// SessionID - сессия пары студент-репетитор.
	SessionID string `json:"sessionId"`

	// SessionCreated - true, если сессия создана этим вызовом.
	SessionCreated bool `json:"sessionCreated"`
}

// AssignTutorHandler обрабатывает назначение репетитора.
type AssignTutorHandler struct {
	requestRepo request.Repository
	tutorRepo   tutor.Repository
	chatRepo    chat.Repository
	publisher   shared.EventPublisher
	logger      *zap.Logger
	now         func() time.Time
}

// NewAssignTutorHandler создаёт новый обработчик.
func NewAssignTutorHandler(
	requestRepo request.Repository,
	tutorRepo tutor.Repository,
	chatRepo chat.Repository,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *AssignTutorHandler {
	if publisher == nil {
		publisher = shared.NoopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignTutorHandler{
		requestRepo: requestRepo,
		tutorRepo:   tutorRepo,
		chatRepo:    chatRepo,
		publisher:   publisher,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Handle выполняет назначение.
func (h *AssignTutorHandler) Handle(ctx context.Context, cmd AssignTutorCommand) (*AssignTutorResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	// Обе сущности должны существовать до какой-либо мутации.
	if _, err := h.tutorRepo.GetByID(ctx, cmd.TutorID); err != nil {
		return nil, err
	}
	req, err := h.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if err := req.Assign(cmd.TutorID); err != nil {
		return nil, shared.WrapError("command", "AssignTutor", shared.ErrValidation,
			"cannot assign tutor", err)
	}
	if err := h.requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	session, created, err := h.ensureSession(ctx, req.StudentID, cmd.TutorID)
	if err != nil {
		return nil, err
	}

	h.logger.Info("tutor assigned to request",
		zap.String("request_id", req.ID),
		zap.String("tutor_id", cmd.TutorID),
		zap.String("session_id", session.ID),
		zap.Bool("session_created", created),
	)

	event := shared.RequestMatchedEvent{
		BaseEvent:      shared.NewBaseEvent(shared.EventRequestMatched, req.ID),
		StudentID:      req.StudentID,
		TutorID:        cmd.TutorID,
		SessionID:      session.ID,
		SessionCreated: created,
	}
	if err := h.publisher.Publish(ctx, event); err != nil {
		h.logger.Warn("failed to publish request matched event", zap.Error(err))
	}

	return &AssignTutorResult{
		RequestID:      req.ID,
		SessionID:      session.ID,
		SessionCreated: created,
	}, nil
}

// ensureSession находит сессию пары или создаёт новую с системным
// приветствием. Повторные назначения идемпотентны: существующая сессия
// возвращается как есть, второе приветствие не добавляется.
func (h *AssignTutorHandler) ensureSession(ctx context.Context, studentID, tutorID string) (*chat.Session, bool, error) {
	existing, err := h.chatRepo.FindByParticipants(ctx, studentID, tutorID)
	if err == nil {
		return existing, false, nil
	}

	session, err := chat.NewSession(uuid.NewString(), studentID, tutorID)
	if err != nil {
		return nil, false, shared.WrapError("command", "AssignTutor", shared.ErrValidation,
			"cannot create session", err)
	}
	session.AppendSystem(chat.Message{
		ID:        uuid.NewString(),
		SenderID:  user.AdminID,
		Text:      MatchedSystemMessage,
		Timestamp: h.now(),
	})

	if err := h.chatRepo.Create(ctx, session); err != nil {
		return nil, false, err
	}
	return session, true, nil
}
