package command

import (
	"context"

	"go.uber.org/zap"

	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/domain/tutor"
)

// ══════════════════════════════════════════════════════════════════════════════
// UPDATE TUTOR PROFILE COMMAND
// Репетитор редактирует свой профиль. Любая правка сбрасывает статус в
// pending: профиль уходит на повторную модерацию и исчезает из витрины.
// ══════════════════════════════════════════════════════════════════════════════

// UpdateTutorProfileCommand содержит правки профиля.
type UpdateTutorProfileCommand struct {
	TutorID string

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
	Phone           string
	Address         string
	Qualifications  string
}

// Validate проверяет корректность параметров.
func (c *UpdateTutorProfileCommand) Validate() error {
	if c.TutorID == "" {
		return shared.NewDomainError("command", "UpdateTutorProfile", shared.ErrValidation,
			"tutor_id is required")
	}
	if c.ClassMode != "" && !tutor.ClassMode(c.ClassMode).IsValid() {
		return shared.NewDomainError("command", "UpdateTutorProfile", shared.ErrValidation,
			"class mode must be online, offline or both")
	}
	return nil
}

// UpdateTutorProfileResult содержит новый статус профиля.
type UpdateTutorProfileResult struct {
	TutorID string `json:"tutorId"`
	Status  string `json:"status"`
}

// UpdateTutorProfileHandler обрабатывает правки профиля.
type UpdateTutorProfileHandler struct {
	tutorRepo tutor.Repository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewUpdateTutorProfileHandler создаёт новый обработчик.
func NewUpdateTutorProfileHandler(tutorRepo tutor.Repository, publisher shared.EventPublisher, logger *zap.Logger) *UpdateTutorProfileHandler {
	if publisher == nil {
		publisher = shared.NoopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UpdateTutorProfileHandler{tutorRepo: tutorRepo, publisher: publisher, logger: logger}
}

// Handle применяет правки.
func (h *UpdateTutorProfileHandler) Handle(ctx context.Context, cmd UpdateTutorProfileCommand) (*UpdateTutorProfileResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	t, err := h.tutorRepo.GetByID(ctx, cmd.TutorID)
	if err != nil {
		return nil, err
	}

	edit := tutor.ProfileEdit{
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
		Phone:           cmd.Phone,
		Address:         cmd.Address,
		Qualifications:  cmd.Qualifications,
	}
	if err := t.ApplyProfileEdit(edit); err != nil {
		return nil, shared.WrapError("command", "UpdateTutorProfile", shared.ErrValidation,
			"invalid profile edit", err)
	}

	if err := h.tutorRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	h.logger.Info("tutor profile updated, sent back to moderation",
		zap.String("tutor_id", t.ID),
	)
	_ = h.publisher.Publish(ctx, shared.NewBaseEvent(shared.EventTutorProfileUpdated, t.ID))

	return &UpdateTutorProfileResult{TutorID: t.ID, Status: string(t.Status)}, nil
}
