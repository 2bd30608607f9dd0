package command

import (
	"context"

	"go.uber.org/zap"

	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// MODERATE STUDENT COMMAND
// Администратор активирует или блокирует аккаунт студента.
// ══════════════════════════════════════════════════════════════════════════════

// StudentAction - действие над аккаунтом.
type StudentAction string

const (
	ActionActivate StudentAction = "activate"
	ActionSuspend  StudentAction = "suspend"
)

// ModerateStudentCommand содержит действие над аккаунтом студента.
type ModerateStudentCommand struct {
	StudentID string
	Action    StudentAction
}

// Validate проверяет корректность параметров.
func (c *ModerateStudentCommand) Validate() error {
	if c.StudentID == "" {
		return shared.NewDomainError("command", "ModerateStudent", shared.ErrValidation,
			"student_id is required")
	}
	if c.Action != ActionActivate && c.Action != ActionSuspend {
		return shared.NewDomainError("command", "ModerateStudent", shared.ErrValidation,
			"action must be activate or suspend")
	}
	return nil
}

// ModerateStudentResult содержит новый статус аккаунта.
type ModerateStudentResult struct {
	StudentID string `json:"studentId"`
	Status    string `json:"status"`
}

// ModerateStudentHandler обрабатывает модерацию аккаунтов.
type ModerateStudentHandler struct {
	userRepo  user.Repository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewModerateStudentHandler создаёт новый обработчик.
func NewModerateStudentHandler(userRepo user.Repository, publisher shared.EventPublisher, logger *zap.Logger) *ModerateStudentHandler {
	if publisher == nil {
		publisher = shared.NoopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModerateStudentHandler{userRepo: userRepo, publisher: publisher, logger: logger}
}

// Handle применяет действие.
func (h *ModerateStudentHandler) Handle(ctx context.Context, cmd ModerateStudentCommand) (*ModerateStudentResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	u, err := h.userRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return nil, err
	}
	if u.Role != user.RoleStudent {
		return nil, shared.NewDomainError("command", "ModerateStudent", shared.ErrInvalidState,
			"only student accounts can be moderated here")
	}

	var eventType shared.EventType
	switch cmd.Action {
	case ActionActivate:
		u.Activate()
		eventType = shared.EventStudentActivated
	case ActionSuspend:
		u.Suspend()
		eventType = shared.EventStudentSuspended
	}

	if err := h.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	h.logger.Info("student account moderated",
		zap.String("student_id", u.ID),
		zap.String("action", string(cmd.Action)),
	)
	_ = h.publisher.Publish(ctx, shared.NewBaseEvent(eventType, u.ID))

	return &ModerateStudentResult{StudentID: u.ID, Status: string(u.Status)}, nil
}
