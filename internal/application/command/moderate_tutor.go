package command

import (
	"context"

	"go.uber.org/zap"

	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/domain/tutor"
)

// ══════════════════════════════════════════════════════════════════════════════
// MODERATE TUTOR COMMAND
// Администратор одобряет или отклоняет анкету. Повторная модерация
// разрешена из любого статуса.
// ══════════════════════════════════════════════════════════════════════════════

// ModerationDecision - решение администратора.
type ModerationDecision string

const (
	DecisionApprove ModerationDecision = "approve"
	DecisionReject  ModerationDecision = "reject"
)

// ModerateTutorCommand содержит решение по анкете.
type ModerateTutorCommand struct {
	// TutorID - анкета на модерации.
	TutorID string

	// Decision - approve или reject.
	Decision ModerationDecision
}

// Validate проверяет корректность параметров.
func (c *ModerateTutorCommand) Validate() error {
	if c.TutorID == "" {
		return shared.NewDomainError("command", "ModerateTutor", shared.ErrValidation,
			"tutor_id is required")
	}
	if c.Decision != DecisionApprove && c.Decision != DecisionReject {
		return shared.NewDomainError("command", "ModerateTutor", shared.ErrValidation,
			"decision must be approve or reject")
	}
	return nil
}

// ModerateTutorResult содержит новый статус анкеты.
type ModerateTutorResult struct {
	TutorID string `json:"tutorId"`
	Status  string `json:"status"`
}

// ModerateTutorHandler обрабатывает модерацию анкет.
type ModerateTutorHandler struct {
	tutorRepo tutor.Repository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewModerateTutorHandler создаёт новый обработчик.
func NewModerateTutorHandler(tutorRepo tutor.Repository, publisher shared.EventPublisher, logger *zap.Logger) *ModerateTutorHandler {
	if publisher == nil {
		publisher = shared.NoopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModerateTutorHandler{tutorRepo: tutorRepo, publisher: publisher, logger: logger}
}

// Handle применяет решение администратора.
func (h *ModerateTutorHandler) Handle(ctx context.Context, cmd ModerateTutorCommand) (*ModerateTutorResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	t, err := h.tutorRepo.GetByID(ctx, cmd.TutorID)
	if err != nil {
		return nil, err
	}

	var event shared.Event
	switch cmd.Decision {
	case DecisionApprove:
		t.Approve()
		event = shared.TutorApprovedEvent{
			BaseEvent: shared.NewBaseEvent(shared.EventTutorApproved, t.ID),
			TutorName: t.Name,
		}
	case DecisionReject:
		t.Reject()
		event = shared.TutorRejectedEvent{
			BaseEvent: shared.NewBaseEvent(shared.EventTutorRejected, t.ID),
			TutorName: t.Name,
		}
	}

	if err := h.tutorRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	h.logger.Info("tutor moderated",
		zap.String("tutor_id", t.ID),
		zap.String("decision", string(cmd.Decision)),
	)
	_ = h.publisher.Publish(ctx, event)

	return &ModerateTutorResult{TutorID: t.ID, Status: string(t.Status)}, nil
}
