package command

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/domain/tutor"
)

// ══════════════════════════════════════════════════════════════════════════════
// APPLY AS TUTOR COMMAND
// Кандидат подаёт анкету репетитора. Анкета всегда попадает в pending
// и не видна в публичном поиске до одобрения администратором.
// ══════════════════════════════════════════════════════════════════════════════

// ApplyAsTutorCommand содержит анкету кандидата.
type ApplyAsTutorCommand struct {
	// ApplicantUserID - если кандидат уже зарегистрирован, его профиль
	// репетитора сохраняет ID аккаунта. Пустое значение - выдаётся
	// последовательный номер анкеты.
	ApplicantUserID string

	Name            string
	Avatar          string
	Subjects        []string
	Levels          []string
	Bio             string
	City            string
	ClassMode       string
	HourlyRate      float64
	ExperienceYears int
	Availability    string
	Email           string
	Phone           string
	Address         string
	Qualifications  string
}

// Validate проверяет корректность параметров.
func (c *ApplyAsTutorCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return shared.NewDomainError("command", "ApplyAsTutor", shared.ErrValidation,
			"name is required")
	}
	if len(c.Subjects) == 0 {
		return shared.NewDomainError("command", "ApplyAsTutor", shared.ErrValidation,
			"at least one subject is required")
	}
	if c.ClassMode != "" && !tutor.ClassMode(c.ClassMode).IsValid() {
		return shared.NewDomainError("command", "ApplyAsTutor", shared.ErrValidation,
			"class mode must be online, offline or both")
	}
	return nil
}

// ApplyAsTutorResult содержит созданную анкету.
type ApplyAsTutorResult struct {
	TutorID string `json:"tutorId"`
	Status  string `json:"status"`
}

// ApplyAsTutorHandler обрабатывает подачу анкеты.
type ApplyAsTutorHandler struct {
	tutorRepo tutor.Repository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewApplyAsTutorHandler создаёт новый обработчик.
func NewApplyAsTutorHandler(tutorRepo tutor.Repository, publisher shared.EventPublisher, logger *zap.Logger) *ApplyAsTutorHandler {
	if publisher == nil {
		publisher = shared.NoopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplyAsTutorHandler{tutorRepo: tutorRepo, publisher: publisher, logger: logger}
}

// Handle создаёт анкету репетитора.
func (h *ApplyAsTutorHandler) Handle(ctx context.Context, cmd ApplyAsTutorCommand) (*ApplyAsTutorResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	id := cmd.ApplicantUserID
	if id == "" {
		next, err := h.tutorRepo.NextApplicationID(ctx)
		if err != nil {
			return nil, err
		}
		id = next
	} else if _, err := h.tutorRepo.GetByID(ctx, id); err == nil {
		return nil, shared.ErrTutorAlreadyExists
	}

	t, err := tutor.NewTutor(tutor.NewTutorParams{
		ID:              id,
		Name:            cmd.Name,
		Avatar:          cmd.Avatar,
		Subjects:        cmd.Subjects,
		Levels:          cmd.Levels,
		Bio:             cmd.Bio,
		City:            cmd.City,
		ClassMode:       tutor.ClassMode(cmd.ClassMode),
		HourlyRate:      cmd.HourlyRate,
		ExperienceYears: cmd.ExperienceYears,
		Availability:    cmd.Availability,
		Email:           cmd.Email,
		Phone:           cmd.Phone,
		Address:         cmd.Address,
		Qualifications:  cmd.Qualifications,
	})
	if err != nil {
		return nil, shared.WrapError("command", "ApplyAsTutor", shared.ErrValidation,
			"cannot create tutor profile", err)
	}

	if err := h.tutorRepo.Create(ctx, t); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.ErrTutorAlreadyExists
		}
		return nil, err
	}

	h.logger.Info("tutor application submitted",
		zap.String("tutor_id", t.ID),
		zap.String("name", t.Name),
	)

	event := shared.TutorAppliedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventTutorApplied, t.ID),
		TutorName: t.Name,
	}
	_ = h.publisher.Publish(ctx, event)

	return &ApplyAsTutorResult{TutorID: t.ID, Status: string(t.Status)}, nil
}
