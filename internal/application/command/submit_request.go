package command

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/findateacher/tutorhub/internal/domain/request"
	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/domain/tutor"
	"github.com/findateacher/tutorhub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// SUBMIT REQUEST COMMAND
// Студент публикует заявку на доску. Имя и аватар снимаются с аккаунта
// в момент публикации.
// ══════════════════════════════════════════════════════════════════════════════

// SubmitRequestCommand содержит параметры новой заявки.
type SubmitRequestCommand struct {
	// StudentID - автор заявки.
	StudentID string

	// Subject / Level / Mode - что и в каком формате нужно студенту.
	Subject string
	Level   string
	Mode    string

	// Location - локация занятий (или "Remote").
	Location string

	// Description - описание потребности своими словами.
	Description string

	// Budget - бюджет за час.
	Budget float64
}

// Validate проверяет корректность параметров.
func (c *SubmitRequestCommand) Validate() error {
	if c.StudentID == "" {
		return shared.NewDomainError("command", "SubmitRequest", shared.ErrValidation,
			"student_id is required")
	}
	if strings.TrimSpace(c.Subject) == "" {
		return shared.NewDomainError("command", "SubmitRequest", shared.ErrValidation,
			"subject is required")
	}
	if c.Mode != "" && !tutor.ClassMode(c.Mode).IsValid() {
		return shared.NewDomainError("command", "SubmitRequest", shared.ErrValidation,
			"mode must be online, offline or both")
	}
	if c.Budget < 0 {
		return shared.NewDomainError("command", "SubmitRequest", shared.ErrValidation,
			"budget cannot be negative")
	}
	return nil
}

// SubmitRequestResult содержит созданную заявку.
type SubmitRequestResult struct {
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
}

// SubmitRequestHandler обрабатывает публикацию заявки.
type SubmitRequestHandler struct {
	requestRepo request.Repository
	userRepo    user.Repository
	publisher   shared.EventPublisher
}

// NewSubmitRequestHandler создаёт новый обработчик.
func NewSubmitRequestHandler(requestRepo request.Repository, userRepo user.Repository, publisher shared.EventPublisher) *SubmitRequestHandler {
	if publisher == nil {
		publisher = shared.NoopPublisher{}
	}
	return &SubmitRequestHandler{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

// Handle создаёт заявку в статусе pending.
func (h *SubmitRequestHandler) Handle(ctx context.Context, cmd SubmitRequestCommand) (*SubmitRequestResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	student, err := h.userRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return nil, err
	}

	req, err := request.NewStudentRequest(request.NewRequestParams{
		ID:          uuid.NewString(),
		StudentID:   student.ID,
		StudentName: student.Name,
		Avatar:      student.Avatar,
		Subject:     cmd.Subject,
		Level:       cmd.Level,
		Mode:        tutor.ClassMode(cmd.Mode),
		Location:    cmd.Location,
		Description: cmd.Description,
		Budget:      cmd.Budget,
	})
	if err != nil {
		return nil, shared.WrapError("command", "SubmitRequest", shared.ErrValidation,
			"cannot create request", err)
	}

	if err := h.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(ctx, shared.NewBaseEvent(shared.EventRequestSubmitted, req.ID))

	return &SubmitRequestResult{RequestID: req.ID, Status: string(req.Status)}, nil
}
